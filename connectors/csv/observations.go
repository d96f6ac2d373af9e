package csv

import (
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"

	"ev-metrics/domain/ev"
)

// ObservationColumns are the columns every observation table must carry.
var ObservationColumns = []string{
	"region", "year", "category", "mode", "powertrain",
	"ev_sales", "ev_stock", "ev_sales_share", "total_stations",
	"fast_charger_ratio", "always_available_ratio",
	"stations_per_million_evs", "ev_charging_points",
}

// ReadObservations loads a merged or reference observation table.
func ReadObservations(path string) ([]ev.Observation, error) {
	f, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return decodeObservations(filepath.Base(path), f)
}

func decodeObservations(name string, src io.Reader) ([]ev.Observation, error) {
	t, err := openTable(name, src, ObservationColumns...)
	if err != nil {
		return nil, err
	}

	var res []ev.Observation
	for {
		rec, err := t.next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		year, err := t.float(rec, "year")
		if err != nil {
			return nil, err
		}
		// Rows without a year cannot be placed in any series.
		if year == nil {
			continue
		}
		if *year != math.Trunc(*year) {
			return nil, fmt.Errorf("%s line %d: year %v is not a whole number", name, t.line, *year)
		}
		o := ev.Observation{
			Region:     t.get(rec, "region"),
			Year:       int(*year),
			Category:   t.get(rec, "category"),
			Mode:       t.get(rec, "mode"),
			Powertrain: t.get(rec, "powertrain"),
		}
		fields := []struct {
			col string
			dst **float64
		}{
			{"ev_sales", &o.EVSales},
			{"ev_stock", &o.EVStock},
			{"ev_sales_share", &o.EVSalesShare},
			{"total_stations", &o.TotalStations},
			{"fast_charger_ratio", &o.FastChargerRatio},
			{"always_available_ratio", &o.AlwaysAvailableRatio},
			{"stations_per_million_evs", &o.StationsPerMillionEVs},
			{"ev_charging_points", &o.EVChargingPoints},
		}
		for _, fl := range fields {
			v, err := t.float(rec, fl.col)
			if err != nil {
				return nil, err
			}
			*fl.dst = v
		}
		res = append(res, o)
	}
	return res, nil
}
