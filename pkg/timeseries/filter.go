// Package timeseries holds the read paths of a date ordered series: range
// filtering, axis domains and nearest point lookup.
package timeseries

import (
	"time"

	"github.com/raykavin/coinstats/pkg/core"
	"golang.org/x/exp/slices"
)

// FilterRange returns the points dated within [start, end], bounds
// included. The result is a view sharing the input backing array.
func FilterRange(series core.Series, start, end time.Time) core.Series {
	if start.After(end) {
		return core.Series{}
	}

	from := lowerBound(series, start)
	to := upperBound(series, end)
	if from >= to {
		return core.Series{}
	}

	return series[from:to:to]
}

// lowerBound returns the first index whose date is not before t
func lowerBound(series core.Series, t time.Time) int {
	i, _ := slices.BinarySearchFunc(series, t, func(point core.SeriesPoint, target time.Time) int {
		return point.Date.Compare(target)
	})
	return i
}

// upperBound returns the first index whose date is after t
func upperBound(series core.Series, t time.Time) int {
	i, _ := slices.BinarySearchFunc(series, t, func(point core.SeriesPoint, target time.Time) int {
		if point.Date.After(target) {
			return 1
		}
		return -1
	})
	return i
}
