// Package csv reads the EV source tables and writes the metric tables as CSV.
package csv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	lo "github.com/samber/lo"
)

// ErrMissingColumn is returned when an input table lacks a required column.
var ErrMissingColumn = errors.New("missing column")

// table is a header-indexed CSV stream.
type table struct {
	name string
	r    *csv.Reader
	idx  map[string]int
	line int
}

func openTable(name string, src io.Reader, required ...string) (*table, error) {
	r := csv.NewReader(src)
	r.FieldsPerRecord = -1
	head, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%s: empty file", name)
		}
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	t := &table{name: name, r: r, idx: indexMap(head), line: 1}
	for _, col := range required {
		if !t.has(col) {
			return nil, fmt.Errorf("%s: %w %s", name, ErrMissingColumn, col)
		}
	}
	return t, nil
}

// next returns the following record, or io.EOF at the end.
func (t *table) next() ([]string, error) {
	rec, err := t.r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("%s: %w", t.name, err)
	}
	t.line++
	return rec, nil
}

func (t *table) has(col string) bool {
	_, ok := t.idx[normalize(col)]
	return ok
}

// get returns the trimmed cell of col, empty when the column or cell is missing.
func (t *table) get(rec []string, col string) string {
	i, ok := t.idx[normalize(col)]
	if !ok || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

// float parses a numeric cell; empty and NaN cells are undefined.
func (t *table) float(rec []string, col string) (*float64, error) {
	s := t.get(rec, col)
	if s == "" || strings.EqualFold(s, "nan") {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("%s line %d: column %s: %w", t.name, t.line, col, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, nil
	}
	return lo.ToPtr(v), nil
}

func indexMap(headers []string) map[string]int {
	m := map[string]int{}
	for i, h := range headers {
		key := normalize(h)
		if _, dup := m[key]; !dup {
			m[key] = i
		}
	}
	return m
}

func normalize(h string) string {
	return strings.TrimSpace(strings.ToLower(strings.TrimPrefix(h, "\ufeff")))
}

func openFile(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return f, nil
}
