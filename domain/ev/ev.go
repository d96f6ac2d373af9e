package ev

// Powertrain labels found in the observation tables. Charging rows carry
// labels such as "Publicly available fast" and are not vehicles.
const (
	BEV  = "BEV"
	PHEV = "PHEV"
	FCEV = "FCEV"
)

// ModeCars is the transport mode used for headline metrics.
const ModeCars = "Cars"

// World is the aggregate region every headline metric is read from.
const World = "World"

// Observation is one row of the merged (or reference) dataset, keyed by
// region, year, category, mode and powertrain. Nil pointers are missing cells.
type Observation struct {
	Region     string
	Year       int
	Category   string
	Mode       string
	Powertrain string

	EVSales               *float64
	EVStock               *float64
	EVSalesShare          *float64
	TotalStations         *float64
	FastChargerRatio      *float64
	AlwaysAvailableRatio  *float64
	StationsPerMillionEVs *float64
	EVChargingPoints      *float64
}

// IsPlugIn reports whether the row counts towards EV stock and sales splits.
func (o Observation) IsPlugIn() bool {
	return o.Powertrain == BEV || o.Powertrain == PHEV
}

// Station is one physical charging station from the enhanced stations table.
type Station struct {
	Country           string
	StationID         string
	CostPerKWh        *float64
	CostPerFullCharge *float64
}
