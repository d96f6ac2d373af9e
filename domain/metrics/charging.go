package metrics

import (
	"sort"

	"ev-metrics/domain/ev"

	lo "github.com/samber/lo"
)

// ChargingRow relates the public charging points of a region to its fleet.
type ChargingRow struct {
	Region              string
	Year                int
	EVChargingPoints    float64
	TotalStations       *float64
	EVStock             float64
	EVsPerChargingPoint *float64
	Category            string
}

// ChargingCategory buckets the number of vehicles sharing one charging point.
func ChargingCategory(evsPerPoint *float64) string {
	switch {
	case evsPerPoint == nil:
		return "No Data"
	case *evsPerPoint <= 50:
		return "Well Served (≤50 EVs/station)"
	case *evsPerPoint <= 100:
		return "Adequate (51-100 EVs/station)"
	case *evsPerPoint <= 200:
		return "Strained (101-200 EVs/station)"
	default:
		return "Insufficient (>200 EVs/station)"
	}
}

// ChargingSummary totals charging points and stock per region for one year,
// across every powertrain and mode.
func ChargingSummary(obs []ev.Observation, year int) []ChargingRow {
	rows := lo.Filter(obs, func(o ev.Observation, _ int) bool { return o.Year == year && o.Region != "" })
	byRegion := lo.GroupBy(rows, func(o ev.Observation) string { return o.Region })

	out := make([]ChargingRow, 0, len(byRegion))
	for region, group := range byRegion {
		r := ChargingRow{Region: region, Year: year}
		for _, o := range group {
			r.EVChargingPoints += sumDefined(o.EVChargingPoints)
			r.EVStock += sumDefined(o.EVStock)
			r.TotalStations = firstOf(r.TotalStations, o.TotalStations)
		}
		if r.EVChargingPoints > 0 {
			r.EVsPerChargingPoint = finite(r.EVStock / r.EVChargingPoints)
		}
		r.Category = ChargingCategory(r.EVsPerChargingPoint)
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Region < out[j].Region })
	return out
}
