package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Run("single digit day and month", func(t *testing.T) {
		date, err := ParseDate("5/12/2013")
		require.NoError(t, err)
		require.Equal(t, time.Date(2013, time.December, 5, 0, 0, 0, 0, time.UTC), date)
	})

	t.Run("padded day and month", func(t *testing.T) {
		date, err := ParseDate("05/02/2017")
		require.NoError(t, err)
		require.Equal(t, time.Date(2017, time.February, 5, 0, 0, 0, 0, time.UTC), date)
	})

	for _, value := range []string{"", "2017-02-05", "32/1/2017", "1/13/2017", "yesterday"} {
		t.Run("rejects "+value, func(t *testing.T) {
			_, err := ParseDate(value)
			require.ErrorIs(t, err, ErrDateFormat)
		})
	}
}

func TestFormatDate(t *testing.T) {
	require.Equal(t, "05/12/2013", FormatDate(DatasetStart))
	require.Equal(t, "31/10/2017", FormatDate(DatasetEnd))
}

func TestInterval_Validate(t *testing.T) {
	require.NoError(t, FullInterval().Validate())
	require.NoError(t, Interval{Start: DatasetEnd, End: DatasetEnd}.Validate())
	require.ErrorIs(t, Interval{Start: DatasetEnd, End: DatasetStart}.Validate(), ErrInvalidInterval)
}

func TestInterval_Contains(t *testing.T) {
	interval := FullInterval()
	require.True(t, interval.Contains(DatasetStart))
	require.True(t, interval.Contains(DatasetEnd))
	require.True(t, interval.Contains(DatasetStart.AddDate(1, 0, 0)))
	require.False(t, interval.Contains(DatasetStart.Add(-time.Nanosecond)))
	require.False(t, interval.Contains(DatasetEnd.AddDate(0, 0, 1)))
}

func TestParseMetric(t *testing.T) {
	for _, metric := range Metrics() {
		parsed, err := ParseMetric(metric.String())
		require.NoError(t, err)
		require.Equal(t, metric, parsed)
	}

	_, err := ParseMetric("price")
	require.ErrorIs(t, err, ErrUnknownMetric)
}
