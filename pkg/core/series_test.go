package core

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSeriesPoint_Value(t *testing.T) {
	point := SeriesPoint{PriceUSD: 1, MarketCap: 2, Volume24h: 3}
	require.Equal(t, 1.0, point.Value(MetricPrice))
	require.Equal(t, 2.0, point.Value(MetricMarketCap))
	require.Equal(t, 3.0, point.Value(MetricVolume))
	require.True(t, math.IsNaN(point.Value("supply")))
}

func TestSeries_FirstLast(t *testing.T) {
	_, ok := Series{}.First()
	require.False(t, ok)
	_, ok = Series{}.Last()
	require.False(t, ok)

	day := time.Date(2017, time.January, 1, 0, 0, 0, 0, time.UTC)
	series := Series{{Date: day, PriceUSD: 1}, {Date: day.AddDate(0, 0, 1), PriceUSD: 2}}

	first, ok := series.First()
	require.True(t, ok)
	require.Equal(t, 1.0, first.PriceUSD)

	last, ok := series.Last()
	require.True(t, ok)
	require.Equal(t, 2.0, last.PriceUSD)

	require.Equal(t, []float64{1, 2}, series.Values(MetricPrice))
	require.Equal(t, []time.Time{day, day.AddDate(0, 0, 1)}, series.Dates())
}

func TestNewSeriesCollection(t *testing.T) {
	series := map[string]Series{
		"zcash":    {{PriceUSD: 1}},
		"bitcoin":  {{PriceUSD: 2}},
		"ethereum": {{PriceUSD: 3}},
		"dash":     {},
	}

	collection := NewSeriesCollection([]string{"ethereum", "bitcoin", "ethereum", "ripple"}, series)
	require.Equal(t, []string{"ethereum", "bitcoin", "ripple", "dash", "zcash"}, collection.Coins())
	require.Equal(t, 5, collection.Len())

	require.True(t, collection.Has("ripple"))
	ripple, ok := collection.Series("ripple")
	require.True(t, ok)
	require.Empty(t, ripple)

	require.False(t, collection.Has("dogecoin"))
	_, ok = collection.Series("dogecoin")
	require.False(t, ok)

	coins := collection.Coins()
	coins[0] = "changed"
	require.Equal(t, "ethereum", collection.Coins()[0])
}
