package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

// Build layers the settings of a program: bound flags, then environment
// variables prefixed with EnvPrefix(name), then the config file. cfgFile must
// exist when given; otherwise <name>.yaml is looked up in the working
// directory and in $HOME/.config/<name>, and may be absent.
func Build(cfgFile, name string, flags *pflag.FlagSet) (*viper.Viper, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	v := newEnvViper(name)
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(baseName(name))
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", baseName(name)))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}
	return v, nil
}

// Environment returns a view over the environment variables of a program,
// after loading .env. It is meant for settings needed before arguments are
// parsed.
func Environment(name string) *viper.Viper {
	_ = loadDotEnv()
	return newEnvViper(name)
}

// EnvPrefix derives the environment prefix of a program: its name without
// extension, upper-cased, with anything but letters and digits replaced by _.
func EnvPrefix(name string) string {
	base := baseName(name)
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r - 'a' + 'A'
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, base)
}

func newEnvViper(name string) *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix(name))
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

func loadDotEnv() error {
	if _, err := os.Stat(".env"); err != nil {
		return nil
	}
	if err := gotenv.Load(".env"); err != nil {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	return nil
}

func baseName(name string) string {
	base := filepath.Base(name)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
