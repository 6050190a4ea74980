package timeseries

import (
	"fmt"
	"math"
	"time"

	"github.com/raykavin/coinstats/pkg/core"
	"github.com/samber/lo"
	"gonum.org/v1/gonum/floats"
)

// Padding keeps the line off the top and bottom edges of the plot
const Padding = 1.005

// TimeDomain is the time extent of the x axis
type TimeDomain struct {
	Min time.Time
	Max time.Time
}

// ValueDomain is the value extent of the y axis
type ValueDomain struct {
	Min float64
	Max float64
}

// Domains holds both axis extents
type Domains struct {
	Time  TimeDomain
	Value ValueDomain
}

// ComputeDomains derives the axis extents of points for a metric. The value
// extent ignores NaN and is padded by Padding on both sides. When every value
// is NaN the time extent is still returned along with ErrNoValues.
func ComputeDomains(points core.Series, metric core.Metric) (Domains, error) {
	if !metric.Valid() {
		return Domains{}, fmt.Errorf("%w: %q", core.ErrUnknownMetric, metric)
	}
	if len(points) == 0 {
		return Domains{}, core.ErrEmptySeries
	}

	domains := Domains{
		Time: TimeDomain{
			Min: lo.MinBy(points, func(a, b core.SeriesPoint) bool { return a.Date.Before(b.Date) }).Date,
			Max: lo.MaxBy(points, func(a, b core.SeriesPoint) bool { return a.Date.After(b.Date) }).Date,
		},
	}

	values := lo.Filter(points.Values(metric), func(v float64, _ int) bool {
		return !math.IsNaN(v)
	})
	if len(values) == 0 {
		return domains, fmt.Errorf("%w: %s", core.ErrNoValues, metric)
	}

	domains.Value = ValueDomain{
		Min: floats.Min(values) / Padding,
		Max: floats.Max(values) * Padding,
	}

	return domains, nil
}
