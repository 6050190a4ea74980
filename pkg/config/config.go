// Package config loads the coinstats settings using Viper: defaults, an
// optional YAML file and COINSTATS_* environment variables, in rising
// priority.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/raykavin/coinstats/pkg/core"
	"github.com/spf13/viper"
)

const envPrefix = "COINSTATS"

// Config holds the application settings
type Config struct {
	Data          string
	Port          int
	Debug         bool
	DefaultCoin   string
	DefaultMetric core.Metric
	Interval      core.Interval
	CORSOrigins   []string
	FetchRetries  int
	ChartWidth    int
	ChartHeight   int
}

// New returns a viper instance with the coinstats defaults and environment
// bindings
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault("data", "data/coins.json")
	v.SetDefault("port", 8080)
	v.SetDefault("debug", false)
	v.SetDefault("default_coin", "")
	v.SetDefault("default_metric", string(core.MetricPrice))
	v.SetDefault("start", core.FormatDate(core.DatasetStart))
	v.SetDefault("end", core.FormatDate(core.DatasetEnd))
	v.SetDefault("cors_origins", []string{})
	v.SetDefault("fetch_retries", 3)
	v.SetDefault("chart_width", 800)
	v.SetDefault("chart_height", 500)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the optional file at path into v and decodes the settings
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	metric, err := core.ParseMetric(v.GetString("default_metric"))
	if err != nil {
		return nil, fmt.Errorf("default_metric: %w", err)
	}

	start, err := parseBound(v.GetString("start"))
	if err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}

	end, err := parseBound(v.GetString("end"))
	if err != nil {
		return nil, fmt.Errorf("end: %w", err)
	}

	cfg := &Config{
		Data:          v.GetString("data"),
		Port:          v.GetInt("port"),
		Debug:         v.GetBool("debug"),
		DefaultCoin:   v.GetString("default_coin"),
		DefaultMetric: metric,
		Interval:      core.Interval{Start: start, End: end},
		CORSOrigins:   v.GetStringSlice("cors_origins"),
		FetchRetries:  v.GetInt("fetch_retries"),
		ChartWidth:    v.GetInt("chart_width"),
		ChartHeight:   v.GetInt("chart_height"),
	}

	if err := cfg.Interval.Validate(); err != nil {
		return nil, err
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d", cfg.Port)
	}

	return cfg, nil
}

// Selection returns the default selection for a collection, using its
// first coin when no default coin is configured
func (c *Config) Selection(collection core.SeriesCollection) core.Selection {
	coin := c.DefaultCoin
	if coin == "" {
		if coins := collection.Coins(); len(coins) > 0 {
			coin = coins[0]
		}
	}

	return core.Selection{Coin: coin, Metric: c.DefaultMetric, Interval: c.Interval}
}

// parseBound accepts dd/mm/yyyy or yyyy-mm-dd
func parseBound(value string) (time.Time, error) {
	if t, err := time.ParseInLocation(time.DateOnly, value, time.UTC); err == nil {
		return t, nil
	}
	return core.ParseDate(value)
}
