package chart

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	cchart "ev-metrics/connectors/chart"
	ccsv "ev-metrics/connectors/csv"
	"ev-metrics/domain/ev"
	"ev-metrics/domain/metrics"

	lo "github.com/samber/lo"
)

// Run renders stock and station charts for the regional leaders from the
// metric CSVs written by calculate.
//
// Usage:
//
//	ev-metrics chart [-data ./data/processed/metrics] [-out ./output] [-top 10]
func Run(args []string) error {
	fs := flag.NewFlagSet("chart", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	dataDir := fs.String("data", "./data/processed/metrics", "directory containing metric CSV files")
	outDir := fs.String("out", "./output", "directory receiving the PNG charts")
	top := fs.Int("top", 10, "number of leading regions to draw")
	if err := fs.Parse(args); err != nil {
		return err
	}

	growth, err := ccsv.ReadRecords(filepath.Join(*dataDir, metrics.TableGrowth+".csv"))
	if err != nil {
		return err
	}
	leaders, err := ccsv.ReadRecords(filepath.Join(*dataDir, metrics.TableLeaders+".csv"))
	if err != nil {
		return err
	}
	regions := lo.Map(leaders, func(r map[string]string, _ int) string { return r["region"] })
	if len(regions) > *top {
		regions = regions[:*top]
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		return err
	}

	charts := []struct {
		file   string
		column string
		title  string
		ylabel string
	}{
		{"ev_stock_by_region.png", "ev_stock", "EV Stock, leading regions (Cars)", "EV stock"},
		{"charging_stations_by_region.png", "total_stations", "Charging stations, leading regions", "Stations"},
	}
	for _, c := range charts {
		series := BuildSeries(growth, regions, c.column)
		path := filepath.Join(*outDir, c.file)
		opts := cchart.DefaultSize
		opts.Title, opts.YLabel = c.title, c.ylabel
		if err := cchart.Lines(path, series, opts); err != nil {
			return fmt.Errorf("chart %s: %w", c.file, err)
		}
		slog.Info("chart.write", "path", path, "series", len(series))
	}
	return nil
}

// BuildSeries extracts one yearly series per region from growth rows of the
// Cars mode. Empty or non-numeric cells are skipped.
func BuildSeries(growth []map[string]string, regions []string, column string) []cchart.Series {
	out := make([]cchart.Series, 0, len(regions))
	for _, region := range regions {
		var pts []cchart.Point
		for _, row := range growth {
			if row["region"] != region || row["mode"] != ev.ModeCars {
				continue
			}
			year, err := strconv.Atoi(row["year"])
			if err != nil {
				continue
			}
			v, err := strconv.ParseFloat(row[column], 64)
			if err != nil {
				continue
			}
			pts = append(pts, cchart.Point{Year: year, Value: v})
		}
		sort.Slice(pts, func(i, j int) bool { return pts[i].Year < pts[j].Year })
		out = append(out, cchart.Series{Name: region, Points: pts})
	}
	return out
}
