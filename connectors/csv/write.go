package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"ev-metrics/domain/metrics"
)

// WriteAllCSVs writes every table to <dir>/<name>.csv. Tables are staged
// next to their destination and only renamed into place once all of them
// were written, so a failed run leaves the previous outputs untouched.
func WriteAllCSVs(dir string, tables []metrics.Table) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	staged := make(map[string]string, len(tables))
	cleanup := func() {
		for tmp := range staged {
			_ = os.Remove(tmp)
		}
	}
	for _, t := range tables {
		path := filepath.Join(dir, t.Name+".csv")
		tmp := path + ".tmp"
		staged[tmp] = path
		if err := WriteTableCSV(tmp, t); err != nil {
			cleanup()
			return fmt.Errorf("write %s: %w", t.Name, err)
		}
	}
	for _, t := range tables {
		path := filepath.Join(dir, t.Name+".csv")
		if err := os.Rename(path+".tmp", path); err != nil {
			cleanup()
			return err
		}
		delete(staged, path+".tmp")
	}
	return nil
}

// WriteTableCSV writes one table with its header row.
func WriteTableCSV(path string, t metrics.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err := w.Write(t.Columns); err != nil {
		return err
	}
	for _, row := range t.Rows {
		rec := make([]string, len(row))
		for i, v := range row {
			rec[i] = FormatCell(v)
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}

// FormatCell renders a table cell; undefined values become empty cells.
func FormatCell(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}
