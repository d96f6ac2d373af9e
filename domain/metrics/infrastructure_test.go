package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ratioWithDensity(region string, per1000 float64) StationsRatio {
	return StationsRatio{Region: region, Year: 2023, Category: "Historical", Mode: "Cars", StationsPer1000EVs: f(per1000)}
}

func TestScoreStationDensity(t *testing.T) {
	r := StationsRatio{EVStock: 100000, TotalStations: 50}
	r.StationsPer1000EVs = StationsPer1000(r.TotalStations, r.EVStock)
	require.NotNil(t, r.StationsPer1000EVs)
	assert.InDelta(t, 0.5, *r.StationsPer1000EVs, 1e-12)

	// 0.5 stations per 1000 EVs is a 5 point density score, weighted by half.
	assert.InDelta(t, 2.5, Score(r), 1e-9)

	r.FastChargerRatio = f(0.4)
	r.AlwaysAvailableRatio = f(0.8)
	assert.InDelta(t, 2.5+10+20, Score(r), 1e-9)
}

func TestScoreCapsDensity(t *testing.T) {
	r := StationsRatio{StationsPer1000EVs: f(25), FastChargerRatio: f(1), AlwaysAvailableRatio: f(1)}
	assert.InDelta(t, 100.0, Score(r), 1e-9)
}

func TestScoreBoundsAndDegradation(t *testing.T) {
	densities := []float64{0, 0.01, 1, 9.99, 10, 50}
	ratios := []float64{0, 0.25, 0.5, 1}
	for _, d := range densities {
		for _, fc := range ratios {
			for _, av := range ratios {
				full := StationsRatio{StationsPer1000EVs: f(d), FastChargerRatio: f(fc), AlwaysAvailableRatio: f(av)}
				score := Score(full)
				assert.GreaterOrEqual(t, score, 0.0)
				assert.LessOrEqual(t, score, 100.0)

				noDensity, noFast, noAvail := full, full, full
				noDensity.StationsPer1000EVs = nil
				noFast.FastChargerRatio = nil
				noAvail.AlwaysAvailableRatio = nil
				assert.LessOrEqual(t, Score(noDensity), score)
				assert.LessOrEqual(t, Score(noFast), score)
				assert.LessOrEqual(t, Score(noAvail), score)
			}
		}
	}
	assert.Equal(t, 0.0, Score(StationsRatio{}))
}

func TestAdequacyThresholds(t *testing.T) {
	th, ok := AdequacyThresholds([]*float64{f(40), nil, f(10), f(30), f(20)})
	require.True(t, ok)
	assert.InDelta(t, 19.9, th.Lower, 1e-9)
	assert.InDelta(t, 30.1, th.Upper, 1e-9)

	_, ok = AdequacyThresholds([]*float64{nil})
	assert.False(t, ok)
}

func TestThresholdsClassify(t *testing.T) {
	th := Thresholds{Lower: 20, Upper: 30}
	tests := []struct {
		score *float64
		want  string
	}{
		{f(35), WellServed},
		{f(30), WellServed},
		{f(29.99), Strained},
		{f(20), Strained},
		{f(19.99), Insufficient},
		{f(0), Insufficient},
		{nil, Unknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, th.Classify(tt.score))
	}
}

func TestAdequacyCategorizesAgainstWholeSet(t *testing.T) {
	// Density 2, 4, 6 and 8 score 10, 20, 30 and 40.
	in := []StationsRatio{
		ratioWithDensity("A", 2),
		ratioWithDensity("B", 4),
		ratioWithDensity("C", 6),
		ratioWithDensity("D", 8),
	}
	got := categories(Adequacy(in))
	assert.Equal(t, map[string]string{"A": Insufficient, "B": Strained, "C": Strained, "D": WellServed}, got)

	reversed := []StationsRatio{in[3], in[2], in[1], in[0]}
	assert.Equal(t, got, categories(Adequacy(reversed)))

	// Dropping A moves the percentiles, so B falls to the bottom tier.
	subset := categories(Adequacy(in[1:]))
	assert.Equal(t, Insufficient, subset["B"])
}

func TestAdequacyKeepsRatioColumns(t *testing.T) {
	in := ratioWithDensity("A", 2)
	in.EVStock = 1234
	out := Adequacy([]StationsRatio{in})
	require.Len(t, out, 1)
	assert.Equal(t, in, out[0].StationsRatio)
	require.NotNil(t, out[0].InfrastructureScore)
	assert.InDelta(t, 10.0, *out[0].InfrastructureScore, 1e-9)
	// A single row is its own percentile.
	assert.Equal(t, WellServed, out[0].AdequacyCategory)
}

func TestAdequacyEmpty(t *testing.T) {
	assert.Empty(t, Adequacy(nil))
}

func categories(rows []AdequacyRow) map[string]string {
	m := map[string]string{}
	for _, r := range rows {
		m[r.Region] = r.AdequacyCategory
	}
	return m
}
