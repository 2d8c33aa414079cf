package main

import (
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/larschri/hgtconv/convert"
	"github.com/larschri/hgtconv/hgt"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Config holds the settings of a run. Values come from flags, then
// HGTCONV_* environment variables, then the YAML file, then defaults.
type Config struct {
	OutputDir   string   `yaml:"output_dir"`
	NoData      *float64 `yaml:"nodata"`
	RangePolicy string   `yaml:"range_policy"`
	Workers     int      `yaml:"workers"`
	Preview     bool     `yaml:"preview"`
	PreviewSize int      `yaml:"preview_size"`
	Index       string   `yaml:"index"`
	LogLevel    string   `yaml:"log_level"`
}

func defaultConfig() Config {
	return Config{
		RangePolicy: hgt.PolicyStrict.String(),
		Workers:     runtime.NumCPU(),
		PreviewSize: 512,
		LogLevel:    "info",
	}
}

// LoadConfig resolves the configuration for the flags of a parsed command
func LoadConfig(flags *pflag.FlagSet) (Config, error) {
	cfg := defaultConfig()

	if fname := getConfigString(flags, "config", "HGTCONV_CONFIG", ""); fname != "" {
		data, err := os.ReadFile(fname)
		if err != nil {
			return cfg, err
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("%s: %w", fname, err)
		}
	}

	cfg.OutputDir = getConfigString(flags, "out", "HGTCONV_OUT", cfg.OutputDir)
	cfg.RangePolicy = getConfigString(flags, "range-policy", "HGTCONV_RANGE_POLICY", cfg.RangePolicy)
	cfg.Workers = getConfigInt(flags, "workers", "HGTCONV_WORKERS", cfg.Workers)
	cfg.Preview = getConfigBool(flags, "preview", "HGTCONV_PREVIEW", cfg.Preview)
	cfg.PreviewSize = getConfigInt(flags, "preview-size", "HGTCONV_PREVIEW_SIZE", cfg.PreviewSize)
	cfg.Index = getConfigString(flags, "index", "HGTCONV_INDEX", cfg.Index)
	cfg.LogLevel = getConfigString(flags, "log-level", "HGTCONV_LOG_LEVEL", cfg.LogLevel)

	noData, err := getConfigNoData(flags, "nodata", "HGTCONV_NODATA", cfg.NoData)
	if err != nil {
		return cfg, err
	}
	cfg.NoData = noData

	if _, err := hgt.ParseRangePolicy(cfg.RangePolicy); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Options returns the conversion options
func (c *Config) Options() convert.Options {
	policy, _ := hgt.ParseRangePolicy(c.RangePolicy)
	opts := convert.Options{
		OutputDir: c.OutputDir,
		NoData:    c.NoData,
		Policy:    policy,
	}
	if c.Preview {
		opts.PreviewSize = c.PreviewSize
	}
	return opts
}

// getConfigString gets a string value from flag, then env, then fallback
func getConfigString(flags *pflag.FlagSet, flagName, envName, fallback string) string {
	if flags.Changed(flagName) {
		val, _ := flags.GetString(flagName)
		return val
	}
	if v := os.Getenv(envName); v != "" {
		return v
	}
	return fallback
}

// getConfigInt gets an int value from flag, then env, then fallback
func getConfigInt(flags *pflag.FlagSet, flagName, envName string, fallback int) int {
	if flags.Changed(flagName) {
		val, _ := flags.GetInt(flagName)
		return val
	}
	if v := os.Getenv(envName); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getConfigBool(flags *pflag.FlagSet, flagName, envName string, fallback bool) bool {
	if flags.Changed(flagName) {
		val, _ := flags.GetBool(flagName)
		return val
	}
	if v := os.Getenv(envName); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

// getConfigNoData is like getConfigFloat but distinguishes "not set". A
// malformed value is an error, since ignoring it would write data as voids.
func getConfigNoData(flags *pflag.FlagSet, flagName, envName string, fallback *float64) (*float64, error) {
	if flags.Changed(flagName) {
		val, err := flags.GetFloat64(flagName)
		if err != nil {
			return nil, err
		}
		return &val, nil
	}
	if v := os.Getenv(envName); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", envName, err)
		}
		return &f, nil
	}
	return fallback, nil
}
