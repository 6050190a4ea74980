package core

import (
	"math"
	"sort"
	"time"
)

// SeriesPoint is a normalized observation of one coin on one day
type SeriesPoint struct {
	Date      time.Time
	PriceUSD  float64
	MarketCap float64
	Volume24h float64
}

// Value returns the point value for the given metric, NaN for unknown metrics
func (p SeriesPoint) Value(metric Metric) float64 {
	switch metric {
	case MetricPrice:
		return p.PriceUSD
	case MetricMarketCap:
		return p.MarketCap
	case MetricVolume:
		return p.Volume24h
	default:
		return math.NaN()
	}
}

// Series is an ordered run of points, non-decreasing by date
type Series []SeriesPoint

// Length returns the number of points in the series
func (s Series) Length() int {
	return len(s)
}

// First returns the earliest point, ok is false for an empty series
func (s Series) First() (SeriesPoint, bool) {
	if len(s) == 0 {
		return SeriesPoint{}, false
	}
	return s[0], true
}

// Last returns the latest point, ok is false for an empty series
func (s Series) Last() (SeriesPoint, bool) {
	if len(s) == 0 {
		return SeriesPoint{}, false
	}
	return s[len(s)-1], true
}

// Values returns the metric values in series order
func (s Series) Values(metric Metric) []float64 {
	values := make([]float64, len(s))
	for i, point := range s {
		values[i] = point.Value(metric)
	}
	return values
}

// Dates returns the point dates in series order
func (s Series) Dates() []time.Time {
	dates := make([]time.Time, len(s))
	for i, point := range s {
		dates[i] = point.Date
	}
	return dates
}

// SeriesCollection maps coin identifiers to their series. It is built once
// at load time and only read afterwards.
type SeriesCollection struct {
	coins  []string
	series map[string]Series
}

// NewSeriesCollection builds a collection keeping coins in the given order.
// Coins listed in order but missing from series get an empty series, and
// coins present in series but absent from order are appended in name order.
func NewSeriesCollection(order []string, series map[string]Series) SeriesCollection {
	collection := SeriesCollection{
		coins:  make([]string, 0, len(series)),
		series: make(map[string]Series, len(series)),
	}

	for _, coin := range order {
		if _, seen := collection.series[coin]; seen {
			continue
		}
		collection.coins = append(collection.coins, coin)
		collection.series[coin] = series[coin]
	}

	extra := make([]string, 0)
	for coin := range series {
		if _, seen := collection.series[coin]; !seen {
			extra = append(extra, coin)
		}
	}

	sort.Strings(extra)
	for _, coin := range extra {
		collection.coins = append(collection.coins, coin)
		collection.series[coin] = series[coin]
	}

	return collection
}

// Coins returns the coin identifiers in document order
func (c SeriesCollection) Coins() []string {
	coins := make([]string, len(c.coins))
	copy(coins, c.coins)
	return coins
}

// Series returns the series of a coin
func (c SeriesCollection) Series(coin string) (Series, bool) {
	s, ok := c.series[coin]
	return s, ok
}

// Has reports whether the coin is part of the collection
func (c SeriesCollection) Has(coin string) bool {
	_, ok := c.series[coin]
	return ok
}

// Len returns the number of coins
func (c SeriesCollection) Len() int {
	return len(c.coins)
}
