package config

import (
	"fmt"

	"github.com/spf13/viper"
	"github.com/yurifrl/consoleapp/pkg/usage"
)

type source struct {
	v *viper.Viper
}

// Source exposes v as a usage.Source. A scalar setting gives one value and a
// list gives one value per element.
func Source(v *viper.Viper) usage.Source {
	return source{v: v}
}

func (s source) Lookup(name string) ([]string, bool) {
	if !s.v.IsSet(name) {
		return nil, false
	}
	switch val := s.v.Get(name).(type) {
	case nil:
		return nil, false
	case string:
		return []string{val}, true
	case []string:
		return append([]string(nil), val...), true
	case []interface{}:
		out := make([]string, 0, len(val))
		for _, item := range val {
			out = append(out, fmt.Sprint(item))
		}
		return out, true
	default:
		return []string{fmt.Sprint(val)}, true
	}
}
