// Package export writes statistics to CSV files.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

type Field struct {
	Key   string
	Value any
}

// Record is one CSV row. Field order is column order.
type Record []Field

// Get returns the value stored under key.
func (r Record) Get(key string) (any, bool) {
	for _, f := range r {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// CSV renders records with a header taken from the first record's keys.
// Header names are written as-is; every data cell is quoted with embedded
// quotes doubled. Rows are separated by "\n" with no trailing newline.
// Later records are matched to the header by key; missing keys are empty.
func CSV(records []Record) string {
	if len(records) == 0 {
		return ""
	}
	keys := make([]string, len(records[0]))
	for i, f := range records[0] {
		keys[i] = f.Key
	}

	rows := make([]string, 0, len(records)+1)
	rows = append(rows, strings.Join(keys, ","))
	for _, r := range records {
		cells := make([]string, len(keys))
		for i, k := range keys {
			v, _ := r.Get(k)
			cells[i] = quote(cell(v))
		}
		rows = append(rows, strings.Join(cells, ","))
	}
	return strings.Join(rows, "\n")
}

func cell(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	default:
		return fmt.Sprint(x)
	}
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// FileName is the export name for the given day.
func FileName(t time.Time) string {
	return fmt.Sprintf("api-statistics-%s.csv", t.Format("2006-01-02"))
}

// WriteFile writes records to dir under FileName(t) and returns the full path.
func WriteFile(dir string, t time.Time, records []Record) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(dir, FileName(t))
	if err := os.WriteFile(path, []byte(CSV(records)), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
