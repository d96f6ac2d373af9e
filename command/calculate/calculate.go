package calculate

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"ev-metrics/connectors/config"
	ccsv "ev-metrics/connectors/csv"
	"ev-metrics/connectors/xlsx"
	dconfig "ev-metrics/domain/config"
	"ev-metrics/domain/ev"
	"ev-metrics/domain/metrics"
)

// Inputs are the loaded source tables.
type Inputs struct {
	Observations []ev.Observation
	Reference    []ev.Observation
	Stations     []ev.Station
}

// Run executes the calculate command.
//
// Usage:
//
//	ev-metrics calculate [-data ./data/processed] [-out ./data/processed/metrics] [-xlsx metrics.xlsx]
func Run(args []string) error {
	fs := flag.NewFlagSet("calculate", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	dataDir := fs.String("data", "", "directory containing the processed input CSVs (overrides config)")
	outDir := fs.String("out", "", "directory receiving the metric CSVs (overrides config)")
	xlsxPath := fs.String("xlsx", "", "also write every table into this Excel workbook (optional)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 0 {
		return fmt.Errorf("calculate: unexpected arguments %v", fs.Args())
	}

	cfg, err := config.Resolve()
	if err != nil {
		return err
	}
	if *dataDir != "" {
		cfg.Data.ProcessedDir = *dataDir
	}
	if *outDir != "" {
		cfg.Data.MetricsDir = *outDir
	}

	in, err := Load(cfg)
	if err != nil {
		return err
	}
	res, err := metrics.Run(in.Observations, in.Stations, cfg.SummaryOptions())
	if err != nil {
		slog.Error("calculate.metrics.error", "error", err)
		return err
	}
	tables := res.Tables()

	if err := ccsv.WriteAllCSVs(cfg.Data.MetricsDir, tables); err != nil {
		return err
	}
	for _, t := range tables {
		slog.Info("calculate.write.table", "table", t.Name, "rows", len(t.Rows))
	}
	if *xlsxPath != "" {
		if err := xlsx.WriteWorkbook(*xlsxPath, tables); err != nil {
			return fmt.Errorf("write workbook: %w", err)
		}
		slog.Info("calculate.write.workbook", "path", *xlsxPath)
	}

	slog.Info("calculate.done", "latest_year", res.Summary.LatestYear, "dir", cfg.Data.MetricsDir, "tables", len(tables))
	return nil
}

// Load reads the three source tables named by cfg. A missing file or column
// aborts before any metric is derived.
func Load(cfg *dconfig.Config) (*Inputs, error) {
	base := cfg.Data.ProcessedDir
	obs, err := ccsv.ReadObservations(filepath.Join(base, cfg.Data.MergedFile))
	if err != nil {
		return nil, err
	}
	ref, err := ccsv.ReadObservations(filepath.Join(base, cfg.Data.ReferenceFile))
	if err != nil {
		return nil, err
	}
	stations, err := ccsv.ReadStations(filepath.Join(base, cfg.Data.StationsFile))
	if err != nil {
		return nil, err
	}
	slog.Info("calculate.load.done", "observations", len(obs), "reference", len(ref), "stations", len(stations))
	return &Inputs{Observations: obs, Reference: ref, Stations: stations}, nil
}
