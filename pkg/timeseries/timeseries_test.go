package timeseries

import (
	"math"
	"testing"
	"time"

	"github.com/raykavin/coinstats/pkg/core"
	"github.com/stretchr/testify/require"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

// daily returns one point per day starting at start, priced by index
func daily(start time.Time, count int) core.Series {
	series := make(core.Series, count)
	for i := range series {
		series[i] = core.SeriesPoint{
			Date:      start.AddDate(0, 0, i),
			PriceUSD:  float64(i + 1),
			MarketCap: float64((i + 1) * 100),
			Volume24h: float64((i + 1) * 10),
		}
	}
	return series
}

func TestFilterRange(t *testing.T) {
	series := daily(day(2017, time.January, 1), 10)

	t.Run("bounds included", func(t *testing.T) {
		start, end := day(2017, time.January, 3), day(2017, time.January, 6)
		filtered := FilterRange(series, start, end)
		require.Len(t, filtered, 4)
		for _, point := range filtered {
			require.False(t, point.Date.Before(start))
			require.False(t, point.Date.After(end))
		}
	})

	t.Run("every in range point is kept", func(t *testing.T) {
		start, end := day(2016, time.December, 30), day(2017, time.January, 4)
		filtered := FilterRange(series, start, end)
		require.Equal(t, series[:4], filtered)
	})

	t.Run("full span returns the input", func(t *testing.T) {
		require.Equal(t, series, FilterRange(series, series[0].Date, series[len(series)-1].Date))
	})

	t.Run("order is preserved", func(t *testing.T) {
		filtered := FilterRange(series, day(2017, time.January, 2), day(2017, time.January, 9))
		for i := 1; i < len(filtered); i++ {
			require.False(t, filtered[i].Date.Before(filtered[i-1].Date))
		}
	})

	t.Run("single day", func(t *testing.T) {
		filtered := FilterRange(series, day(2017, time.January, 5), day(2017, time.January, 5))
		require.Len(t, filtered, 1)
		require.Equal(t, 5.0, filtered[0].PriceUSD)
	})

	t.Run("empty interval", func(t *testing.T) {
		require.Empty(t, FilterRange(series, day(2018, time.January, 1), day(2018, time.February, 1)))
		require.Empty(t, FilterRange(core.Series{}, day(2017, time.January, 1), day(2017, time.January, 5)))
	})

	t.Run("inverted interval", func(t *testing.T) {
		require.Empty(t, FilterRange(series, day(2017, time.January, 6), day(2017, time.January, 3)))
	})

	t.Run("result does not grow into the source", func(t *testing.T) {
		filtered := FilterRange(series, day(2017, time.January, 1), day(2017, time.January, 2))
		_ = append(filtered, core.SeriesPoint{PriceUSD: -1})
		require.Equal(t, 3.0, series[2].PriceUSD)
	})
}

func TestComputeDomains(t *testing.T) {
	series := daily(day(2017, time.January, 1), 5)

	domains, err := ComputeDomains(series, core.MetricPrice)
	require.NoError(t, err)
	require.Equal(t, day(2017, time.January, 1), domains.Time.Min)
	require.Equal(t, day(2017, time.January, 5), domains.Time.Max)
	require.InDelta(t, 1/Padding, domains.Value.Min, 1e-12)
	require.InDelta(t, 5*Padding, domains.Value.Max, 1e-12)

	// every value lies strictly inside the padded extent
	for _, v := range series.Values(core.MetricPrice) {
		require.Greater(t, v, domains.Value.Min)
		require.Less(t, v, domains.Value.Max)
	}

	domains, err = ComputeDomains(series, core.MetricMarketCap)
	require.NoError(t, err)
	require.InDelta(t, 100/Padding, domains.Value.Min, 1e-9)
	require.InDelta(t, 500*Padding, domains.Value.Max, 1e-9)
}

func TestComputeDomains_IgnoresNaN(t *testing.T) {
	series := daily(day(2017, time.January, 1), 3)
	series[1].Volume24h = math.NaN()

	domains, err := ComputeDomains(series, core.MetricVolume)
	require.NoError(t, err)
	require.InDelta(t, 10/Padding, domains.Value.Min, 1e-9)
	require.InDelta(t, 30*Padding, domains.Value.Max, 1e-9)
}

func TestComputeDomains_NoValues(t *testing.T) {
	series := daily(day(2017, time.January, 1), 2)
	series[0].MarketCap = math.NaN()
	series[1].MarketCap = math.NaN()

	domains, err := ComputeDomains(series, core.MetricMarketCap)
	require.ErrorIs(t, err, core.ErrNoValues)
	require.Equal(t, day(2017, time.January, 2), domains.Time.Max)
}

func TestComputeDomains_Errors(t *testing.T) {
	_, err := ComputeDomains(core.Series{}, core.MetricPrice)
	require.ErrorIs(t, err, core.ErrEmptySeries)

	_, err = ComputeDomains(daily(day(2017, time.January, 1), 2), "supply")
	require.ErrorIs(t, err, core.ErrUnknownMetric)
}

func TestNearest(t *testing.T) {
	series := core.Series{
		{Date: day(2017, time.January, 1), PriceUSD: 1},
		{Date: day(2017, time.January, 3), PriceUSD: 3},
		{Date: day(2017, time.January, 7), PriceUSD: 7},
	}

	for name, tc := range map[string]struct {
		target   time.Time
		expected float64
	}{
		"before first":     {day(2016, time.December, 1), 1},
		"after last":       {day(2017, time.February, 1), 7},
		"exact match":      {day(2017, time.January, 3), 3},
		"closer to before": {day(2017, time.January, 4), 3},
		"closer to after":  {day(2017, time.January, 6), 7},
		"tie picks before": {day(2017, time.January, 5), 3},
		"within the day":   {day(2017, time.January, 2).Add(time.Hour), 3},
	} {
		t.Run(name, func(t *testing.T) {
			point, err := Nearest(series, tc.target)
			require.NoError(t, err)
			require.Equal(t, tc.expected, point.PriceUSD)

			// no other point is strictly closer
			distance := absDuration(point.Date.Sub(tc.target))
			for _, other := range series {
				require.GreaterOrEqual(t, absDuration(other.Date.Sub(tc.target)), distance)
			}
		})
	}
}

func TestNearest_Between(t *testing.T) {
	series := core.Series{
		{Date: day(2017, time.January, 1), PriceUSD: 1},
		{Date: day(2017, time.January, 5), PriceUSD: 5},
		{Date: day(2017, time.January, 10), PriceUSD: 10},
	}

	point, err := Nearest(series, day(2017, time.January, 7))
	require.NoError(t, err)
	require.Equal(t, 5.0, point.PriceUSD)
}

func TestNearest_Empty(t *testing.T) {
	_, err := Nearest(core.Series{}, day(2017, time.January, 1))
	require.ErrorIs(t, err, core.ErrOutOfRange)
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
