package metrics

import (
	"testing"

	"ev-metrics/domain/ev"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func station(country, id string, perKWh float64) ev.Station {
	return ev.Station{Country: country, StationID: id, CostPerKWh: f(perKWh), CostPerFullCharge: FullChargeCost(f(perKWh))}
}

func TestFullChargeCost(t *testing.T) {
	assert.InDelta(t, 15.0, *FullChargeCost(f(0.25)), 1e-9)
	assert.Nil(t, FullChargeCost(nil))
}

func TestRegionalCosts(t *testing.T) {
	rows := RegionalCosts([]ev.Station{
		station("Spain", "s1", 0.5),
		station("Spain", "s2", 0.5),
		station("Spain", "s3", 0.5),
		station("Italy", "i1", 0.1),
		station("Italy", "i2", 0.2),
		station("Italy", "i3", 0.3),
		station("Italy", "i4", 0.4),
		station("Malta", "m1", 0.3),
		{Country: "", StationID: "x", CostPerKWh: f(0.1), CostPerFullCharge: f(6)},
		{Country: "Spain", StationID: "no-cost"},
	})
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Italy", "Malta", "Spain"}, []string{rows[0].Country, rows[1].Country, rows[2].Country})

	italy := rows[0]
	assert.InDelta(t, 15.0, italy.AvgCostPerFullCharge, 1e-9)
	assert.InDelta(t, 15.0, italy.MedianCostPerFullCharge, 1e-9)
	assert.InDelta(t, 6.0, italy.MinCostPerFullCharge, 1e-9)
	assert.InDelta(t, 24.0, italy.MaxCostPerFullCharge, 1e-9)
	require.NotNil(t, italy.StdCostPerFullCharge)
	// sample standard deviation of 6, 12, 18, 24
	assert.InDelta(t, 7.745966692, *italy.StdCostPerFullCharge, 1e-6)
	assert.InDelta(t, 0.25, *italy.AvgCostPerKWh, 1e-9)
	assert.InDelta(t, 0.25, *italy.MedianCostPerKWh, 1e-9)
	assert.Equal(t, 4, italy.NumStations)

	malta := rows[1]
	assert.Nil(t, malta.StdCostPerFullCharge)
	assert.Equal(t, 1, malta.NumStations)

	spain := rows[2]
	assert.InDelta(t, 30.0, spain.MedianCostPerFullCharge, 1e-9)
	require.NotNil(t, spain.StdCostPerFullCharge)
	assert.InDelta(t, 0.0, *spain.StdCostPerFullCharge, 1e-9)
	assert.Equal(t, 3, spain.NumStations)
}

func TestRegionalCostsPrecomputedFullCharge(t *testing.T) {
	rows := RegionalCosts([]ev.Station{
		{Country: "Chile", StationID: "c1", CostPerFullCharge: f(20)},
		{Country: "Chile", CostPerFullCharge: f(30)},
	})
	require.Len(t, rows, 1)
	assert.InDelta(t, 25.0, rows[0].AvgCostPerFullCharge, 1e-9)
	assert.Nil(t, rows[0].AvgCostPerKWh)
	assert.Nil(t, rows[0].MedianCostPerKWh)
	assert.Equal(t, 1, rows[0].NumStations)
}

func TestRegionalCostsTiesOrderedByCountry(t *testing.T) {
	rows := RegionalCosts([]ev.Station{
		station("Oman", "o", 0.2),
		station("Fiji", "f", 0.2),
	})
	require.Len(t, rows, 2)
	assert.Equal(t, "Fiji", rows[0].Country)
}
