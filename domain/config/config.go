package config

import "ev-metrics/domain/metrics"

// Config represents the structure of config.yml used by the tool.
// Every field is optional; zero values fall back to Default.
type Config struct {
	Data struct {
		ProcessedDir  string `yaml:"processed_dir"`
		MetricsDir    string `yaml:"metrics_dir"`
		MergedFile    string `yaml:"merged_file"`
		ReferenceFile string `yaml:"reference_file"`
		StationsFile  string `yaml:"stations_file"`
	} `yaml:"data"`
	Summary struct {
		GrowthWindow     []int    `yaml:"growth_window"`
		Leaders          int      `yaml:"leaders"`
		AggregateRegions []string `yaml:"aggregate_regions"`
	} `yaml:"summary"`
}

// Default returns the layout produced by the preprocessing notebooks.
func Default() *Config {
	c := &Config{}
	c.Data.ProcessedDir = "data/processed"
	c.Data.MetricsDir = "data/processed/metrics"
	c.Data.MergedFile = "merged_dataset.csv"
	c.Data.ReferenceFile = "IEA_Global_EV_Data_2024_filled.csv"
	c.Data.StationsFile = "stations_enhanced.csv"

	opts := metrics.DefaultSummaryOptions()
	c.Summary.GrowthWindow = opts.GrowthWindow
	c.Summary.Leaders = opts.Leaders
	c.Summary.AggregateRegions = opts.AggregateRegions
	return c
}

// WithDefaults fills every unset field from Default.
func (c *Config) WithDefaults() *Config {
	d := Default()
	if c.Data.ProcessedDir == "" {
		c.Data.ProcessedDir = d.Data.ProcessedDir
	}
	if c.Data.MetricsDir == "" {
		c.Data.MetricsDir = d.Data.MetricsDir
	}
	if c.Data.MergedFile == "" {
		c.Data.MergedFile = d.Data.MergedFile
	}
	if c.Data.ReferenceFile == "" {
		c.Data.ReferenceFile = d.Data.ReferenceFile
	}
	if c.Data.StationsFile == "" {
		c.Data.StationsFile = d.Data.StationsFile
	}
	if len(c.Summary.GrowthWindow) == 0 {
		c.Summary.GrowthWindow = d.Summary.GrowthWindow
	}
	if c.Summary.Leaders <= 0 {
		c.Summary.Leaders = d.Summary.Leaders
	}
	if len(c.Summary.AggregateRegions) == 0 {
		c.Summary.AggregateRegions = d.Summary.AggregateRegions
	}
	return c
}

// SummaryOptions converts the summary section for the metrics package.
func (c *Config) SummaryOptions() metrics.SummaryOptions {
	return metrics.SummaryOptions{
		GrowthWindow:     c.Summary.GrowthWindow,
		Leaders:          c.Summary.Leaders,
		AggregateRegions: c.Summary.AggregateRegions,
	}
}
