package chart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"
)

func TestLinesWritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stock.png")
	series := []Series{
		{Name: "China", Points: []Point{{2021, 7.8e6}, {2022, 13.8e6}, {2023, 21.8e6}}},
		{Name: "Empty"},
		{Name: "USA", Points: []Point{{2021, 2e6}, {2022, 3e6}}},
	}
	err := Lines(path, series, Options{Title: "EV stock", YLabel: "Vehicles", Width: 6 * vg.Inch, Height: 4 * vg.Inch})
	require.NoError(t, err)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "\x89PNG", string(b[:4]))
}

func TestLinesWithoutData(t *testing.T) {
	err := Lines(filepath.Join(t.TempDir(), "empty.png"), []Series{{Name: "None"}}, Options{})
	assert.ErrorIs(t, err, ErrNoData)
}
