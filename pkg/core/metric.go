package core

import "fmt"

// Metric names one of the plottable numeric fields of a point
type Metric string

const (
	MetricPrice     Metric = "price_usd"
	MetricMarketCap Metric = "market_cap"
	MetricVolume    Metric = "24h_vol"
)

// Metrics returns every supported metric in display order
func Metrics() []Metric {
	return []Metric{MetricPrice, MetricMarketCap, MetricVolume}
}

// Valid reports whether m is a supported metric
func (m Metric) Valid() bool {
	switch m {
	case MetricPrice, MetricMarketCap, MetricVolume:
		return true
	}
	return false
}

func (m Metric) String() string {
	return string(m)
}

// ParseMetric converts a metric name into a Metric
func ParseMetric(name string) (Metric, error) {
	metric := Metric(name)
	if !metric.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownMetric, name)
	}
	return metric, nil
}
