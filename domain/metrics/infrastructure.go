package metrics

import (
	"math"

	lo "github.com/samber/lo"
)

// Infrastructure score weights. They sum to one so the score stays in [0,100].
const (
	StationDensityWeight = 0.5
	FastChargerWeight    = 0.25
	AvailabilityWeight   = 0.25

	// StationsPer1000Cap is the station density that earns the full density score.
	StationsPer1000Cap = 10.0
)

// Percentiles separating the adequacy categories.
const (
	LowerPercentile = 0.33
	UpperPercentile = 0.67
)

// Adequacy categories.
const (
	WellServed   = "Well-served"
	Strained     = "Strained"
	Insufficient = "Insufficient"
	Unknown      = "Unknown"
)

// AdequacyRow is a stations ratio row with its score and category.
type AdequacyRow struct {
	StationsRatio
	InfrastructureScore *float64
	AdequacyCategory    string
}

// Score weighs station density, fast charger share and availability share
// into a 0-100 score. A missing component contributes nothing.
func Score(r StationsRatio) float64 {
	var stations, fast, avail float64
	if r.StationsPer1000EVs != nil {
		stations = math.Min(*r.StationsPer1000EVs/StationsPer1000Cap*100, 100)
	}
	if r.FastChargerRatio != nil {
		fast = *r.FastChargerRatio * 100
	}
	if r.AlwaysAvailableRatio != nil {
		avail = *r.AlwaysAvailableRatio * 100
	}
	return stations*StationDensityWeight + fast*FastChargerWeight + avail*AvailabilityWeight
}

// Thresholds are the score cut-offs between adequacy categories.
type Thresholds struct {
	Lower float64
	Upper float64
}

// AdequacyThresholds computes the category cut-offs from the defined scores.
// ok is false when there is no score to rank against.
func AdequacyThresholds(scores []*float64) (t Thresholds, ok bool) {
	vals := defined(scores)
	if len(vals) == 0 {
		return Thresholds{}, false
	}
	return Thresholds{
		Lower: Quantile(vals, LowerPercentile),
		Upper: Quantile(vals, UpperPercentile),
	}, true
}

// Classify places a score against the thresholds.
func (t Thresholds) Classify(score *float64) string {
	switch {
	case score == nil || math.IsNaN(*score):
		return Unknown
	case *score >= t.Upper:
		return WellServed
	case *score >= t.Lower:
		return Strained
	default:
		return Insufficient
	}
}

// Adequacy scores every row and categorizes it against percentiles computed
// over the whole input. Categories depend on the set of rows passed in.
func Adequacy(ratios []StationsRatio) []AdequacyRow {
	out := lo.Map(ratios, func(r StationsRatio, _ int) AdequacyRow {
		return AdequacyRow{StationsRatio: r, InfrastructureScore: finite(Score(r))}
	})
	t, ok := AdequacyThresholds(lo.Map(out, func(r AdequacyRow, _ int) *float64 { return r.InfrastructureScore }))
	for i := range out {
		if !ok {
			out[i].AdequacyCategory = Unknown
			continue
		}
		out[i].AdequacyCategory = t.Classify(out[i].InfrastructureScore)
	}
	return out
}
