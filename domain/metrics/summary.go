package metrics

import (
	"errors"
	"fmt"
	"sort"

	"ev-metrics/domain/ev"

	lo "github.com/samber/lo"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	// ErrMissingWorld is returned when the latest year has no World row to
	// read the headline metrics from.
	ErrMissingWorld = errors.New("no World row for latest year")
	// ErrNoObservations is returned when there is no year to summarize.
	ErrNoObservations = errors.New("no observations to summarize")
)

// NotAvailable is printed in place of an undefined headline value.
const NotAvailable = "N/A"

var printer = message.NewPrinter(language.English)

// SummaryOptions tune the headline and leader tables.
type SummaryOptions struct {
	// GrowthWindow lists the years averaged for the growth metrics.
	GrowthWindow     []int
	Leaders          int
	AggregateRegions []string
}

// DefaultSummaryOptions returns the dashboard defaults.
func DefaultSummaryOptions() SummaryOptions {
	return SummaryOptions{
		GrowthWindow:     []int{2021, 2022, 2023},
		Leaders:          10,
		AggregateRegions: []string{ev.World, "Europe", "EU27", "Rest of the world"},
	}
}

// SummaryRow is one formatted headline metric. Year is nil for metrics that
// span several years.
type SummaryRow struct {
	Metric string
	Value  string
	Year   *int
}

// LeaderRow is a region ranked by plug-in car stock in the latest year.
type LeaderRow struct {
	Region        string
	EVStock       float64
	EVSales       float64
	EVSalesShare  *float64
	TotalStations *float64
}

// Summary holds the dashboard headline table and the regional leaders.
type Summary struct {
	LatestYear int
	Rows       []SummaryRow
	Leaders    []LeaderRow
}

// LatestYear returns the most recent year present in the observations.
func LatestYear(obs []ev.Observation) (int, error) {
	if len(obs) == 0 {
		return 0, ErrNoObservations
	}
	return lo.Max(lo.Map(obs, func(o ev.Observation, _ int) int { return o.Year })), nil
}

type regionTotals struct {
	Region        string
	EVStock       float64
	EVSales       float64
	EVSalesShare  *float64
	TotalStations *float64
	FastCharger   *float64
}

// carsByRegion totals plug-in cars per region for one year, ordered by region.
func carsByRegion(obs []ev.Observation, year int) []regionTotals {
	cars := lo.Filter(plugIn(obs), func(o ev.Observation, _ int) bool {
		return o.Year == year && o.Mode == ev.ModeCars && o.Region != ""
	})
	byRegion := lo.GroupBy(cars, func(o ev.Observation) string { return o.Region })

	out := make([]regionTotals, 0, len(byRegion))
	for region, group := range byRegion {
		t := regionTotals{Region: region}
		for _, o := range group {
			t.EVStock += sumDefined(o.EVStock)
			t.EVSales += sumDefined(o.EVSales)
			t.EVSalesShare = firstOf(t.EVSalesShare, o.EVSalesShare)
			t.TotalStations = firstOf(t.TotalStations, o.TotalStations)
			t.FastCharger = firstOf(t.FastCharger, o.FastChargerRatio)
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Region < out[j].Region })
	return out
}

// Summarize builds the headline metrics for the latest year, the regional
// leaders and the average World car growth over the configured window.
func Summarize(obs []ev.Observation, growth []GrowthRow, opts SummaryOptions) (Summary, error) {
	year, err := LatestYear(obs)
	if err != nil {
		return Summary{}, err
	}
	regions := carsByRegion(obs, year)
	world, ok := lo.Find(regions, func(r regionTotals) bool { return r.Region == ev.World })
	if !ok {
		return Summary{}, fmt.Errorf("%w: year %d", ErrMissingWorld, year)
	}

	rows := []SummaryRow{
		{Metric: "Total EV Stock (Global)", Value: printer.Sprintf("%.0f", world.EVStock)},
		{Metric: "Total Charging Stations (Global)", Value: formatOr(world.TotalStations, func(v float64) string { return printer.Sprintf("%.0f", v) })},
		{Metric: "EV Sales Share (Global)", Value: formatOr(world.EVSalesShare, func(v float64) string { return fmt.Sprintf("%.2f%%", v) })},
		{Metric: "Fast Charger Ratio (Global)", Value: formatOr(world.FastCharger, func(v float64) string { return fmt.Sprintf("%.1f%%", v*100) })},
	}
	for i := range rows {
		rows[i].Year = lo.ToPtr(year)
	}
	rows = append(rows, growthAverages(growth, opts.GrowthWindow)...)

	return Summary{
		LatestYear: year,
		Rows:       rows,
		Leaders:    leaders(regions, opts),
	}, nil
}

func leaders(regions []regionTotals, opts SummaryOptions) []LeaderRow {
	candidates := lo.Reject(regions, func(r regionTotals, _ int) bool {
		return lo.Contains(opts.AggregateRegions, r.Region)
	})
	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].EVStock > candidates[j].EVStock })
	if opts.Leaders >= 0 && len(candidates) > opts.Leaders {
		candidates = candidates[:opts.Leaders]
	}
	return lo.Map(candidates, func(r regionTotals, _ int) LeaderRow {
		return LeaderRow{
			Region:        r.Region,
			EVStock:       r.EVStock,
			EVSales:       r.EVSales,
			EVSalesShare:  r.EVSalesShare,
			TotalStations: r.TotalStations,
		}
	})
}

// growthAverages averages World car growth over the window years. Undefined
// growth values are left out of the mean.
func growthAverages(growth []GrowthRow, window []int) []SummaryRow {
	if len(window) == 0 {
		return nil
	}
	span := fmt.Sprintf("%d-%d", lo.Min(window), lo.Max(window))
	recent := lo.Filter(growth, func(g GrowthRow, _ int) bool {
		return g.Region == ev.World && g.Mode == ev.ModeCars && lo.Contains(window, g.Year)
	})
	avg := func(pick func(GrowthRow) *float64) string {
		vals := defined(lo.Map(recent, func(g GrowthRow, _ int) *float64 { return pick(g) }))
		if len(vals) == 0 {
			return NotAvailable
		}
		return fmt.Sprintf("%.1f%%", lo.Sum(vals)/float64(len(vals)))
	}
	return []SummaryRow{
		{Metric: fmt.Sprintf("Avg YoY EV Sales Growth (%s)", span), Value: avg(func(g GrowthRow) *float64 { return g.EVSalesGrowth })},
		{Metric: fmt.Sprintf("Avg YoY EV Stock Growth (%s)", span), Value: avg(func(g GrowthRow) *float64 { return g.EVStockGrowth })},
		{Metric: fmt.Sprintf("Avg YoY Stations Growth (%s)", span), Value: avg(func(g GrowthRow) *float64 { return g.TotalStationsGrowth })},
	}
}

func formatOr(v *float64, format func(float64) string) string {
	if v == nil {
		return NotAvailable
	}
	return format(*v)
}
