package web

import (
	"errors"
	"flag"
	"net/http"
	"os"
	"path/filepath"

	ccsv "ev-metrics/connectors/csv"
	"ev-metrics/domain/metrics"

	"github.com/labstack/echo/v4"
)

// Routes maps API paths to metric tables.
var Routes = []struct {
	Path  string
	Table string
}{
	{"/api/stations_ratio", metrics.TableStationsRatio},
	{"/api/growth", metrics.TableGrowth},
	{"/api/adequacy", metrics.TableAdequacy},
	{"/api/market_share", metrics.TableMarketShare},
	{"/api/costs", metrics.TableRegionalCosts},
	{"/api/summary", metrics.TableSummary},
	{"/api/leaders", metrics.TableLeaders},
	{"/api/charging_summary", metrics.TableChargingSummary},
}

// Run starts a small Echo web server exposing the metric CSVs as JSON.
//
// Usage:
//
//	ev-metrics web [-addr :8080] [-data ./data/processed/metrics]
func Run(args []string) error {
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	addr := fs.String("addr", ":8080", "http listen address (host:port)")
	dataDir := fs.String("data", "./data/processed/metrics", "directory containing metric CSV files")
	if err := fs.Parse(args); err != nil {
		return err
	}
	return NewServer(*dataDir).Start(*addr)
}

// NewServer registers one GET endpoint per metric table plus /api/tables.
func NewServer(dataDir string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	serveCSV := func(route string, filename string) {
		e.GET(route, func(c echo.Context) error {
			path := filepath.Join(dataDir, filename)
			rows, err := ccsv.ReadRecords(path)
			if err != nil {
				if errors.Is(err, os.ErrNotExist) {
					return c.JSON(http.StatusNotFound, map[string]any{
						"error":   "file not found",
						"path":    path,
						"message": "CSV file is missing",
					})
				}
				return c.JSON(http.StatusInternalServerError, map[string]any{
					"error":   err.Error(),
					"path":    path,
					"message": "failed to read CSV",
				})
			}
			return c.JSON(http.StatusOK, rows)
		})
	}

	index := make(map[string]string, len(Routes))
	for _, r := range Routes {
		serveCSV(r.Path, r.Table+".csv")
		index[r.Table] = r.Path
	}
	e.GET("/api/tables", func(c echo.Context) error { return c.JSON(http.StatusOK, index) })
	return e
}
