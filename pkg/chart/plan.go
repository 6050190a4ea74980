// Package chart turns a selection over a series collection into a toolkit
// agnostic description of what to draw.
package chart

import (
	"errors"
	"fmt"
	"time"

	"github.com/raykavin/coinstats/pkg/core"
	"github.com/raykavin/coinstats/pkg/timeseries"
)

var axisLabels = map[core.Metric]string{
	core.MetricPrice:     "Price (USD)",
	core.MetricMarketCap: "Market Capitalization (USD)",
	core.MetricVolume:    "24 Hour Trading Volume (USD)",
}

// AxisLabel returns the y axis title of a metric
func AxisLabel(metric core.Metric) string {
	return axisLabels[metric]
}

// PathPoint is one vertex of the line, in series order
type PathPoint struct {
	Date  time.Time
	Value float64
}

// RenderPlan is everything a renderer needs for one redraw
type RenderPlan struct {
	Coin           string
	Metric         core.Metric
	Interval       core.Interval
	FilteredPoints core.Series
	TimeDomain     timeseries.TimeDomain
	ValueDomain    timeseries.ValueDomain
	PathPoints     []PathPoint
	AxisLabel      string
}

// Empty reports whether no point fell inside the interval
func (p RenderPlan) Empty() bool {
	return len(p.FilteredPoints) == 0
}

// Redraw computes the plan of a selection. It has no side effects.
func Redraw(collection core.SeriesCollection, selection core.Selection) (RenderPlan, error) {
	series, ok := collection.Series(selection.Coin)
	if !ok {
		return RenderPlan{}, fmt.Errorf("%w: %q", core.ErrUnknownCoin, selection.Coin)
	}
	if !selection.Metric.Valid() {
		return RenderPlan{}, fmt.Errorf("%w: %q", core.ErrUnknownMetric, selection.Metric)
	}
	if err := selection.Interval.Validate(); err != nil {
		return RenderPlan{}, err
	}

	filtered := timeseries.FilterRange(series, selection.Interval.Start, selection.Interval.End)

	plan := RenderPlan{
		Coin:           selection.Coin,
		Metric:         selection.Metric,
		Interval:       selection.Interval,
		FilteredPoints: filtered,
		PathPoints:     make([]PathPoint, len(filtered)),
		AxisLabel:      AxisLabel(selection.Metric),
	}

	for i, point := range filtered {
		plan.PathPoints[i] = PathPoint{Date: point.Date, Value: point.Value(selection.Metric)}
	}

	domains, err := timeseries.ComputeDomains(filtered, selection.Metric)
	switch {
	case err == nil, errors.Is(err, core.ErrNoValues):
		plan.TimeDomain = domains.Time
		plan.ValueDomain = domains.Value
	case errors.Is(err, core.ErrEmptySeries):
		// empty plan, zero domains
	default:
		return RenderPlan{}, err
	}

	return plan, nil
}
