// Package metrics derives the dashboard metric tables from the merged EV
// observations and the charging stations table.
//
// Undefined values (division by zero, missing inputs, first year of a
// series) are nil pointers and are never replaced by zero or infinity.
package metrics

import (
	"math"

	"ev-metrics/domain/ev"

	lo "github.com/samber/lo"
)

// groupKey identifies one region/year/category/mode group.
type groupKey struct {
	Region   string
	Year     int
	Category string
	Mode     string
}

func keyOf(o ev.Observation) groupKey {
	return groupKey{Region: o.Region, Year: o.Year, Category: o.Category, Mode: o.Mode}
}

// valid mirrors group-by semantics where rows with a missing key are dropped.
func (k groupKey) valid() bool {
	return k.Region != "" && k.Category != "" && k.Mode != ""
}

func (k groupKey) less(o groupKey) bool {
	if k.Region != o.Region {
		return k.Region < o.Region
	}
	if k.Year != o.Year {
		return k.Year < o.Year
	}
	if k.Category != o.Category {
		return k.Category < o.Category
	}
	return k.Mode < o.Mode
}

func plugIn(obs []ev.Observation) []ev.Observation {
	return lo.Filter(obs, func(o ev.Observation, _ int) bool { return o.IsPlugIn() })
}

// firstOf keeps the current value unless it is still missing.
func firstOf(cur, next *float64) *float64 {
	if cur != nil {
		return cur
	}
	if next == nil || math.IsNaN(*next) {
		return nil
	}
	return lo.ToPtr(*next)
}

// sumDefined adds the defined values; an all-missing group sums to zero.
func sumDefined(vals ...*float64) float64 {
	total := 0.0
	for _, v := range vals {
		if v != nil && !math.IsNaN(*v) {
			total += *v
		}
	}
	return total
}

// finite wraps v, mapping NaN and ±Inf to undefined.
func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// pctChange is the percentage change from prev to cur.
func pctChange(prev, cur *float64) *float64 {
	if prev == nil || cur == nil || *prev == 0 {
		return nil
	}
	return finite((*cur - *prev) / *prev * 100)
}

func defined(vals []*float64) []float64 {
	out := make([]float64, 0, len(vals))
	for _, v := range vals {
		if v != nil && !math.IsNaN(*v) {
			out = append(out, *v)
		}
	}
	return out
}
