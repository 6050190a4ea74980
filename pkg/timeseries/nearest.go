package timeseries

import (
	"time"

	"github.com/raykavin/coinstats/pkg/core"
)

// Nearest returns the point dated closest to target. Points must be sorted
// by date. Equal distances resolve to the earlier neighbor.
func Nearest(points core.Series, target time.Time) (core.SeriesPoint, error) {
	if len(points) == 0 {
		return core.SeriesPoint{}, core.ErrOutOfRange
	}

	i := lowerBound(points, target)
	switch {
	case i == 0:
		return points[0], nil
	case i == len(points):
		return points[len(points)-1], nil
	}

	before, after := points[i-1], points[i]
	if target.Sub(before.Date) > after.Date.Sub(target) {
		return after, nil
	}
	return before, nil
}
