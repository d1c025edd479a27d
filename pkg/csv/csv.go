package csv

import (
	"bytes"
	stdcsv "encoding/csv"
	"strconv"
)

// Record is one processed file of a run.
type Record interface {
	Input() string
	Output() string
	BytesIn() int
	BytesOut() int
}

type FilterFunc[T Record] func(T) bool

// Create renders the records kept by filter as a CSV report.
func Create[T Record](records []T, filter FilterFunc[T]) ([]byte, error) {
	var buf bytes.Buffer
	w := stdcsv.NewWriter(&buf)
	if err := w.Write([]string{"input", "output", "bytes_in", "bytes_out"}); err != nil {
		return nil, err
	}
	for _, r := range records {
		if filter != nil && !filter(r) {
			continue
		}
		row := []string{
			r.Input(),
			r.Output(),
			strconv.Itoa(r.BytesIn()),
			strconv.Itoa(r.BytesOut()),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
