package metrics

import lo "github.com/samber/lo"

// Table is a named, column-ordered rendition of a metric table. Cells hold
// string, int, float64 or nil for an undefined value.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]any
}

// Output table names shared with the dashboard.
const (
	TableStationsRatio   = "stations_per_ev_ratio"
	TableGrowth          = "yoy_growth_rates"
	TableAdequacy        = "infrastructure_adequacy"
	TableMarketShare     = "bev_phev_market_share"
	TableRegionalCosts   = "regional_charging_costs"
	TableSummary         = "dashboard_summary"
	TableLeaders         = "regional_leaders"
	TableChargingSummary = "charging_infrastructure_summary"
)

func cell(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

func intCell(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

var stationsRatioColumns = []string{
	"region", "year", "category", "mode",
	"ev_stock", "total_stations",
	"stations_per_1000_evs", "stations_per_million_evs",
	"fast_charger_ratio", "always_available_ratio",
}

func stationsRatioCells(r StationsRatio) []any {
	return []any{
		r.Region, r.Year, r.Category, r.Mode,
		r.EVStock, r.TotalStations,
		cell(r.StationsPer1000EVs), cell(r.StationsPerMillionEVs),
		cell(r.FastChargerRatio), cell(r.AlwaysAvailableRatio),
	}
}

// Tables renders the result in output order.
func (r Result) Tables() []Table {
	return []Table{
		{
			Name:    TableStationsRatio,
			Columns: stationsRatioColumns,
			Rows:    lo.Map(r.StationsRatio, func(s StationsRatio, _ int) []any { return stationsRatioCells(s) }),
		},
		{
			Name: TableGrowth,
			Columns: []string{
				"region", "year", "category", "mode", "powertrain",
				"ev_sales", "ev_sales_yoy_growth",
				"ev_stock", "ev_stock_yoy_growth",
				"total_stations", "total_stations_yoy_growth",
			},
			Rows: lo.Map(r.Growth, func(g GrowthRow, _ int) []any {
				return []any{
					g.Region, g.Year, g.Category, g.Mode, g.Powertrain,
					cell(g.EVSales), cell(g.EVSalesGrowth),
					cell(g.EVStock), cell(g.EVStockGrowth),
					cell(g.TotalStations), cell(g.TotalStationsGrowth),
				}
			}),
		},
		{
			Name:    TableAdequacy,
			Columns: append(append([]string{}, stationsRatioColumns...), "infrastructure_score", "adequacy_category"),
			Rows: lo.Map(r.Adequacy, func(a AdequacyRow, _ int) []any {
				return append(stationsRatioCells(a.StationsRatio), cell(a.InfrastructureScore), a.AdequacyCategory)
			}),
		},
		{
			Name: TableMarketShare,
			Columns: []string{
				"region", "year", "category", "mode",
				"bev_sales", "phev_sales", "bev_market_share_pct", "phev_market_share_pct",
			},
			Rows: lo.Map(r.MarketShare, func(m MarketShareRow, _ int) []any {
				return []any{
					m.Region, m.Year, m.Category, m.Mode,
					cell(m.BEVSales), cell(m.PHEVSales), cell(m.BEVMarketSharePct), cell(m.PHEVMarketSharePct),
				}
			}),
		},
		{
			Name: TableRegionalCosts,
			Columns: []string{
				"country",
				"avg_cost_per_full_charge", "median_cost_per_full_charge", "std_cost_per_full_charge",
				"min_cost_per_full_charge", "max_cost_per_full_charge",
				"avg_cost_per_kwh", "median_cost_per_kwh", "num_stations",
			},
			Rows: lo.Map(r.Costs, func(c RegionalCost, _ int) []any {
				return []any{
					c.Country,
					c.AvgCostPerFullCharge, c.MedianCostPerFullCharge, cell(c.StdCostPerFullCharge),
					c.MinCostPerFullCharge, c.MaxCostPerFullCharge,
					cell(c.AvgCostPerKWh), cell(c.MedianCostPerKWh), c.NumStations,
				}
			}),
		},
		{
			Name:    TableSummary,
			Columns: []string{"metric", "value", "year"},
			Rows: lo.Map(r.Summary.Rows, func(s SummaryRow, _ int) []any {
				return []any{s.Metric, s.Value, intCell(s.Year)}
			}),
		},
		{
			Name:    TableLeaders,
			Columns: []string{"region", "ev_stock", "ev_sales", "ev_sales_share", "total_stations"},
			Rows: lo.Map(r.Summary.Leaders, func(l LeaderRow, _ int) []any {
				return []any{l.Region, l.EVStock, l.EVSales, cell(l.EVSalesShare), cell(l.TotalStations)}
			}),
		},
		{
			Name: TableChargingSummary,
			Columns: []string{
				"region", "year", "ev_charging_points", "total_stations", "ev_stock",
				"evs_per_charging_point", "infrastructure_category",
			},
			Rows: lo.Map(r.Charging, func(c ChargingRow, _ int) []any {
				return []any{
					c.Region, c.Year, c.EVChargingPoints, cell(c.TotalStations), c.EVStock,
					cell(c.EVsPerChargingPoint), c.Category,
				}
			}),
		},
	}
}
