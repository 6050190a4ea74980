// Package render draws a chart.RenderPlan as an image, a terminal chart or
// a summary table.
package render

import (
	"errors"
	"math"
	"time"

	"github.com/raykavin/coinstats/pkg/chart"
)

// ErrTooFewPoints is returned when a plan has less than two drawable points
var ErrTooFewPoints = errors.New("at least two points with a value are needed to draw a line")

// drawable returns the path vertices with a finite value. Points whose
// metric could not be parsed are skipped, leaving a straight segment.
func drawable(plan chart.RenderPlan) ([]time.Time, []float64) {
	dates := make([]time.Time, 0, len(plan.PathPoints))
	values := make([]float64, 0, len(plan.PathPoints))

	for _, point := range plan.PathPoints {
		if math.IsNaN(point.Value) || math.IsInf(point.Value, 0) {
			continue
		}
		dates = append(dates, point.Date)
		values = append(values, point.Value)
	}

	return dates, values
}
