package main

import (
	cmdcalculate "ev-metrics/command/calculate"
	cmdchart "ev-metrics/command/chart"
	cmdweb "ev-metrics/command/web"
	"fmt"
	"log/slog"
	"os"
)

// EV adoption and charging infrastructure metrics.
// Usage:
//   ev-metrics calculate [-data ./data/processed] [-out ./data/processed/metrics] [-xlsx metrics.xlsx]
//   ev-metrics web [-addr :8080] [-data ./data/processed/metrics]
//   ev-metrics chart [-data ./data/processed/metrics] [-out ./output] [-top 10]
// Notes:
// - calculate reads merged_dataset.csv, IEA_Global_EV_Data_2024_filled.csv and
//   stations_enhanced.csv and writes the dashboard metric tables.
// - CONFIG_PATH points to an optional YAML config (default ./config.yml).

func main() {
	args := os.Args
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	slog.SetDefault(slog.New(h))

	if len(args) > 1 {
		sub := args[1]
		rest := append([]string{}, args[2:]...)
		var run func([]string) error
		switch sub {
		case "calculate":
			run = cmdcalculate.Run
		case "web":
			run = cmdweb.Run
		case "chart":
			run = cmdchart.Run
		}
		if run != nil {
			if err := run(rest); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			return
		}
	}
	fmt.Fprintln(os.Stderr, "usage: ev-metrics calculate [-data <dir>] [-out <dir>] [-xlsx <file>] | web [-addr :8080] [-data <dir>] | chart [-data <dir>] [-out <dir>] [-top 10]\nENV: set CONFIG_PATH to point to a YAML config file (default ./config.yml)")
	os.Exit(2)
}
