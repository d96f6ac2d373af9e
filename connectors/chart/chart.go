// Package chart renders yearly metric series as line charts.
package chart

import (
	"errors"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// ErrNoData is returned when no series has a point to draw.
var ErrNoData = errors.New("chart: no data points")

// Point is one yearly value.
type Point struct {
	Year  int
	Value float64
}

// Series is a named line.
type Series struct {
	Name   string
	Points []Point
}

// Options describe the chart decoration and size.
type Options struct {
	Title  string
	YLabel string
	Width  vg.Length
	Height vg.Length
}

// DefaultSize matches a wide dashboard panel.
var DefaultSize = Options{Width: 16 * vg.Inch, Height: 10 * vg.Inch}

// Lines draws every non-empty series and saves the chart to path; the file
// extension selects the image format.
func Lines(path string, series []Series, opts Options) error {
	p := plot.New()
	p.Title.Text = opts.Title
	p.Title.TextStyle.Font.Size = vg.Points(16)
	p.X.Label.Text = "Year"
	p.Y.Label.Text = opts.YLabel
	p.Legend.Top = true
	p.Legend.Left = true
	p.Add(plotter.NewGrid())

	drawn := 0
	for i, s := range series {
		if len(s.Points) == 0 {
			continue
		}
		xys := make(plotter.XYs, len(s.Points))
		for j, pt := range s.Points {
			xys[j].X = float64(pt.Year)
			xys[j].Y = pt.Value
		}
		line, points, err := plotter.NewLinePoints(xys)
		if err != nil {
			return fmt.Errorf("series %s: %w", s.Name, err)
		}
		line.Color = plotutil.Color(i)
		line.Width = vg.Points(2)
		points.Color = plotutil.Color(i)
		points.Shape = plotutil.Shape(i)
		p.Add(line, points)
		p.Legend.Add(s.Name, line, points)
		drawn++
	}
	if drawn == 0 {
		return ErrNoData
	}

	w, h := opts.Width, opts.Height
	if w == 0 || h == 0 {
		w, h = DefaultSize.Width, DefaultSize.Height
	}
	return p.Save(w, h, path)
}
