package config

import (
	"os"
	"path/filepath"
	"testing"

	dconfig "ev-metrics/domain/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadFillsDefaults(t *testing.T) {
	path := writeConfig(t, `
data:
  processed_dir: /srv/ev
summary:
  growth_window: [2020, 2021, 2022]
  leaders: 5
`)
	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/ev", c.Data.ProcessedDir)
	assert.Equal(t, "merged_dataset.csv", c.Data.MergedFile)
	assert.Equal(t, "stations_enhanced.csv", c.Data.StationsFile)

	opts := c.SummaryOptions()
	assert.Equal(t, []int{2020, 2021, 2022}, opts.GrowthWindow)
	assert.Equal(t, 5, opts.Leaders)
	assert.Contains(t, opts.AggregateRegions, "EU27")
}

func TestLoadRejectsInvalidYAML(t *testing.T) {
	path := writeConfig(t, "summary: [unclosed")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestResolveWithoutConfigUsesDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	c, err := Resolve()
	require.NoError(t, err)
	assert.Equal(t, dconfig.Default(), c)
}

func TestResolveExplicitMissingFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yml"))
	_, err := Resolve()
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestResolveExplicitFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", writeConfig(t, "data:\n  metrics_dir: out\n"))
	c, err := Resolve()
	require.NoError(t, err)
	assert.Equal(t, "out", c.Data.MetricsDir)
	assert.Equal(t, []int{2021, 2022, 2023}, c.Summary.GrowthWindow)
}
