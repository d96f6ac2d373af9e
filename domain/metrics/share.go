package metrics

import (
	"sort"

	"ev-metrics/domain/ev"

	lo "github.com/samber/lo"
)

// MarketShareRow splits plug-in sales of one region/year/category/mode group
// between BEV and PHEV. Columns of a powertrain absent from the group are nil.
type MarketShareRow struct {
	Region   string
	Year     int
	Category string
	Mode     string

	BEVSales           *float64
	PHEVSales          *float64
	BEVMarketSharePct  *float64
	PHEVMarketSharePct *float64
}

type shareCell struct {
	sales *float64
	share *float64
}

// MarketShare computes each powertrain's share of the group's plug-in sales
// and pivots the result to one row per group.
func MarketShare(obs []ev.Observation) []MarketShareRow {
	rows := lo.Filter(plugIn(obs), func(o ev.Observation, _ int) bool { return keyOf(o).valid() })

	totals := map[groupKey]float64{}
	for _, o := range rows {
		totals[keyOf(o)] += sumDefined(o.EVSales)
	}

	cells := map[groupKey]map[string]*shareCell{}
	for _, o := range rows {
		k := keyOf(o)
		if cells[k] == nil {
			cells[k] = map[string]*shareCell{}
		}
		c, ok := cells[k][o.Powertrain]
		if !ok {
			c = &shareCell{}
			cells[k][o.Powertrain] = c
		}
		c.sales = firstOf(c.sales, o.EVSales)
		c.share = firstOf(c.share, sharePct(o.EVSales, totals[k]))
	}

	keys := lo.Keys(cells)
	sort.Slice(keys, func(i, j int) bool { return keys[i].less(keys[j]) })
	out := make([]MarketShareRow, 0, len(keys))
	for _, k := range keys {
		row := MarketShareRow{Region: k.Region, Year: k.Year, Category: k.Category, Mode: k.Mode}
		if c := cells[k][ev.BEV]; c != nil {
			row.BEVSales, row.BEVMarketSharePct = c.sales, c.share
		}
		if c := cells[k][ev.PHEV]; c != nil {
			row.PHEVSales, row.PHEVMarketSharePct = c.sales, c.share
		}
		out = append(out, row)
	}
	return out
}

func sharePct(sales *float64, total float64) *float64 {
	if sales == nil || total <= 0 {
		return nil
	}
	return finite(*sales / total * 100)
}
