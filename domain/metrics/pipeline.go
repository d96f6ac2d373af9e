package metrics

import (
	"fmt"

	"ev-metrics/domain/ev"
)

// Result holds every derived table of one pipeline run.
type Result struct {
	StationsRatio []StationsRatio
	Growth        []GrowthRow
	Adequacy      []AdequacyRow
	MarketShare   []MarketShareRow
	Costs         []RegionalCost
	Summary       Summary
	Charging      []ChargingRow
}

// Run derives all metric tables. It fails without partial results when the
// summary cannot be built.
func Run(obs []ev.Observation, stations []ev.Station, opts SummaryOptions) (Result, error) {
	ratios := StockByGroup(obs)
	growth := Growth(obs)

	summary, err := Summarize(obs, growth, opts)
	if err != nil {
		return Result{}, fmt.Errorf("summary: %w", err)
	}

	return Result{
		StationsRatio: ratios,
		Growth:        growth,
		Adequacy:      Adequacy(ratios),
		MarketShare:   MarketShare(obs),
		Costs:         RegionalCosts(stations),
		Summary:       summary,
		Charging:      ChargingSummary(obs, summary.LatestYear),
	}, nil
}
