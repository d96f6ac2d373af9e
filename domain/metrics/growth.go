package metrics

import (
	"sort"

	"ev-metrics/domain/ev"

	lo "github.com/samber/lo"
)

// AggregatePowertrain labels growth rows that sum BEV and PHEV.
const AggregatePowertrain = "EV"

// StationsRatio is one region/year/category/mode group of plug-in vehicles
// with its charging infrastructure.
type StationsRatio struct {
	Region   string
	Year     int
	Category string
	Mode     string

	EVStock               float64
	TotalStations         float64
	StationsPer1000EVs    *float64
	StationsPerMillionEVs *float64
	FastChargerRatio      *float64
	AlwaysAvailableRatio  *float64
}

// GrowthRow is one year of a region/mode series with year-over-year growth.
type GrowthRow struct {
	Region     string
	Year       int
	Category   string
	Mode       string
	Powertrain string

	EVSales             *float64
	EVSalesGrowth       *float64
	EVStock             *float64
	EVStockGrowth       *float64
	TotalStations       *float64
	TotalStationsGrowth *float64
}

// StationsPer1000 returns stations per thousand vehicles, undefined without stock.
func StationsPer1000(stations, stock float64) *float64 {
	if stock <= 0 {
		return nil
	}
	return finite(stations / (stock / 1000))
}

// StockByGroup sums BEV and PHEV stock per region/year/category/mode and
// attaches the station figures of the group. Station columns are taken from
// the first row that has them. Groups without a station count are dropped.
func StockByGroup(obs []ev.Observation) []StationsRatio {
	groups := lo.GroupBy(
		lo.Filter(plugIn(obs), func(o ev.Observation, _ int) bool { return keyOf(o).valid() }),
		keyOf,
	)
	keys := lo.Keys(groups)
	sort.Slice(keys, func(i, j int) bool { return keys[i].less(keys[j]) })

	out := make([]StationsRatio, 0, len(keys))
	for _, k := range keys {
		var stock float64
		var stations, fast, avail, perMillion *float64
		for _, o := range groups[k] {
			stock += sumDefined(o.EVStock)
			stations = firstOf(stations, o.TotalStations)
			fast = firstOf(fast, o.FastChargerRatio)
			avail = firstOf(avail, o.AlwaysAvailableRatio)
			perMillion = firstOf(perMillion, o.StationsPerMillionEVs)
		}
		if stations == nil {
			continue
		}
		out = append(out, StationsRatio{
			Region:                k.Region,
			Year:                  k.Year,
			Category:              k.Category,
			Mode:                  k.Mode,
			EVStock:               stock,
			TotalStations:         *stations,
			StationsPer1000EVs:    StationsPer1000(*stations, stock),
			StationsPerMillionEVs: perMillion,
			FastChargerRatio:      fast,
			AlwaysAvailableRatio:  avail,
		})
	}
	return out
}

type seriesKey struct {
	Region string
	Mode   string
	Year   int
}

// Growth builds the region/mode/year series of plug-in sales, stock and
// stations, ordered by region, mode and year, and computes the growth of each
// year against the previous year of the same region/mode series.
func Growth(obs []ev.Observation) []GrowthRow {
	groups := lo.GroupBy(
		lo.Filter(plugIn(obs), func(o ev.Observation, _ int) bool { return o.Region != "" && o.Mode != "" }),
		func(o ev.Observation) seriesKey { return seriesKey{Region: o.Region, Mode: o.Mode, Year: o.Year} },
	)

	rows := make([]GrowthRow, 0, len(groups))
	for k, members := range groups {
		row := GrowthRow{Region: k.Region, Year: k.Year, Mode: k.Mode, Powertrain: AggregatePowertrain}
		var sales, stock float64
		for _, o := range members {
			sales += sumDefined(o.EVSales)
			stock += sumDefined(o.EVStock)
			row.TotalStations = firstOf(row.TotalStations, o.TotalStations)
			if row.Category == "" {
				row.Category = o.Category
			}
		}
		row.EVSales = lo.ToPtr(sales)
		row.EVStock = lo.ToPtr(stock)
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Region != b.Region {
			return a.Region < b.Region
		}
		if a.Mode != b.Mode {
			return a.Mode < b.Mode
		}
		return a.Year < b.Year
	})

	for start := 0; start < len(rows); {
		end := start + 1
		for end < len(rows) && rows[end].Region == rows[start].Region && rows[end].Mode == rows[start].Mode {
			end++
		}
		foldGrowth(rows[start:end])
		start = end
	}
	return rows
}

// foldGrowth carries the previous year through one ordered series.
func foldGrowth(series []GrowthRow) {
	var prev *GrowthRow
	for i := range series {
		cur := &series[i]
		if prev != nil {
			cur.EVSalesGrowth = pctChange(prev.EVSales, cur.EVSales)
			cur.EVStockGrowth = pctChange(prev.EVStock, cur.EVStock)
			cur.TotalStationsGrowth = pctChange(prev.TotalStations, cur.TotalStations)
		}
		prev = cur
	}
}
