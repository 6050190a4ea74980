package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/raykavin/coinstats/pkg/core"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(New(), "")
	require.NoError(t, err)

	require.Equal(t, "data/coins.json", cfg.Data)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, core.MetricPrice, cfg.DefaultMetric)
	require.Equal(t, core.FullInterval(), cfg.Interval)
	require.Equal(t, 3, cfg.FetchRetries)
	require.Equal(t, 800, cfg.ChartWidth)
	require.Equal(t, 500, cfg.ChartHeight)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coinstats.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
data: https://example.com/coins.json
port: 9090
default_coin: ethereum
default_metric: market_cap
start: "2017-01-01"
end: 31/3/2017
cors_origins:
  - http://localhost:3000
`), 0o600))

	cfg, err := Load(New(), path)
	require.NoError(t, err)

	require.Equal(t, "https://example.com/coins.json", cfg.Data)
	require.Equal(t, 9090, cfg.Port)
	require.Equal(t, "ethereum", cfg.DefaultCoin)
	require.Equal(t, core.MetricMarketCap, cfg.DefaultMetric)
	require.Equal(t, time.Date(2017, time.January, 1, 0, 0, 0, 0, time.UTC), cfg.Interval.Start)
	require.Equal(t, time.Date(2017, time.March, 31, 0, 0, 0, 0, time.UTC), cfg.Interval.End)
	require.Equal(t, []string{"http://localhost:3000"}, cfg.CORSOrigins)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("COINSTATS_PORT", "7070")
	t.Setenv("COINSTATS_DEFAULT_METRIC", "24h_vol")

	cfg, err := Load(New(), "")
	require.NoError(t, err)
	require.Equal(t, 7070, cfg.Port)
	require.Equal(t, core.MetricVolume, cfg.DefaultMetric)
}

func TestLoad_Invalid(t *testing.T) {
	for name, set := range map[string]func(v *viper.Viper){
		"metric":   func(v *viper.Viper) { v.Set("default_metric", "supply") },
		"start":    func(v *viper.Viper) { v.Set("start", "yesterday") },
		"interval": func(v *viper.Viper) { v.Set("start", "1/1/2018"); v.Set("end", "1/1/2017") },
		"port":     func(v *viper.Viper) { v.Set("port", 0) },
	} {
		t.Run(name, func(t *testing.T) {
			v := New()
			set(v)
			_, err := Load(v, "")
			require.Error(t, err)
		})
	}

	_, err := Load(New(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestConfig_Selection(t *testing.T) {
	collection := core.NewSeriesCollection([]string{"bitcoin", "ethereum"}, nil)

	cfg, err := Load(New(), "")
	require.NoError(t, err)
	require.Equal(t, "bitcoin", cfg.Selection(collection).Coin)

	cfg.DefaultCoin = "ethereum"
	selection := cfg.Selection(collection)
	require.Equal(t, "ethereum", selection.Coin)
	require.Equal(t, core.MetricPrice, selection.Metric)
}
