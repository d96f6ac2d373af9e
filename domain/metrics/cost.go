package metrics

import (
	"sort"

	"ev-metrics/domain/ev"

	lo "github.com/samber/lo"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ReferenceBatteryKWh is the battery size assumed for a full charge.
const ReferenceBatteryKWh = 60.0

// RegionalCost summarizes charging costs across the stations of a country.
type RegionalCost struct {
	Country string

	AvgCostPerFullCharge    float64
	MedianCostPerFullCharge float64
	StdCostPerFullCharge    *float64
	MinCostPerFullCharge    float64
	MaxCostPerFullCharge    float64
	AvgCostPerKWh           *float64
	MedianCostPerKWh        *float64
	NumStations             int
}

// FullChargeCost prices a full charge of the reference battery.
func FullChargeCost(costPerKWh *float64) *float64 {
	if costPerKWh == nil {
		return nil
	}
	return finite(*costPerKWh * ReferenceBatteryKWh)
}

// RegionalCosts aggregates station costs per country, cheapest country first.
// Stations without a country or a full charge cost are ignored.
func RegionalCosts(stations []ev.Station) []RegionalCost {
	usable := lo.Filter(stations, func(s ev.Station, _ int) bool {
		return s.Country != "" && s.CostPerFullCharge != nil
	})
	byCountry := lo.GroupBy(usable, func(s ev.Station) string { return s.Country })

	out := make([]RegionalCost, 0, len(byCountry))
	for country, group := range byCountry {
		full := defined(lo.Map(group, func(s ev.Station, _ int) *float64 { return s.CostPerFullCharge }))
		perKWh := defined(lo.Map(group, func(s ev.Station, _ int) *float64 { return s.CostPerKWh }))

		rc := RegionalCost{
			Country:                 country,
			AvgCostPerFullCharge:    stat.Mean(full, nil),
			MedianCostPerFullCharge: Median(full),
			MinCostPerFullCharge:    floats.Min(full),
			MaxCostPerFullCharge:    floats.Max(full),
			NumStations:             lo.CountBy(group, func(s ev.Station) bool { return s.StationID != "" }),
		}
		if len(full) > 1 {
			rc.StdCostPerFullCharge = finite(stat.StdDev(full, nil))
		}
		if len(perKWh) > 0 {
			rc.AvgCostPerKWh = finite(stat.Mean(perKWh, nil))
			rc.MedianCostPerKWh = finite(Median(perKWh))
		}
		out = append(out, rc)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].AvgCostPerFullCharge != out[j].AvgCostPerFullCharge {
			return out[i].AvgCostPerFullCharge < out[j].AvgCostPerFullCharge
		}
		return out[i].Country < out[j].Country
	})
	return out
}
