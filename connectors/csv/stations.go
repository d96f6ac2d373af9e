package csv

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"ev-metrics/domain/ev"
	"ev-metrics/domain/metrics"
)

// Station table columns.
const (
	colCountry        = "country"
	colStationID      = "Station ID"
	colCostPerKWh     = "Cost (USD/kWh)"
	colFullChargeCost = "cost_per_full_charge"
)

// ReadStations loads the enhanced stations table. When the table has no
// cost_per_full_charge column it is derived from the per kWh cost.
func ReadStations(path string) ([]ev.Station, error) {
	f, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return decodeStations(filepath.Base(path), f)
}

func decodeStations(name string, src io.Reader) ([]ev.Station, error) {
	t, err := openTable(name, src, colCountry, colStationID)
	if err != nil {
		return nil, err
	}
	derive := !t.has(colFullChargeCost)
	if derive && !t.has(colCostPerKWh) {
		return nil, fmt.Errorf("%s: %w %s", name, ErrMissingColumn, colCostPerKWh)
	}

	var res []ev.Station
	for {
		rec, err := t.next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		s := ev.Station{
			Country:   t.get(rec, colCountry),
			StationID: t.get(rec, colStationID),
		}
		if s.CostPerKWh, err = t.float(rec, colCostPerKWh); err != nil {
			return nil, err
		}
		if derive {
			s.CostPerFullCharge = metrics.FullChargeCost(s.CostPerKWh)
		} else if s.CostPerFullCharge, err = t.float(rec, colFullChargeCost); err != nil {
			return nil, err
		}
		res = append(res, s)
	}
	return res, nil
}
