package plot

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/raykavin/coinstats/pkg/core"
)

// errBadParameter marks query values that cannot be parsed
var errBadParameter = errors.New("bad parameter")

// parseSelection reads coin, metric, start and end from the query, falling
// back to defaults for the missing ones.
func parseSelection(query url.Values, defaults core.Selection) (core.Selection, error) {
	selection := defaults

	if coin := query.Get("coin"); coin != "" {
		selection.Coin = coin
	}

	if name := query.Get("metric"); name != "" {
		metric, err := core.ParseMetric(name)
		if err != nil {
			return core.Selection{}, err
		}
		selection.Metric = metric
	}

	var err error
	if value := query.Get("start"); value != "" {
		if selection.Interval.Start, err = parseTime(value); err != nil {
			return core.Selection{}, fmt.Errorf("%w: start: %v", errBadParameter, err)
		}
	}

	if value := query.Get("end"); value != "" {
		if selection.Interval.End, err = parseTime(value); err != nil {
			return core.Selection{}, fmt.Errorf("%w: end: %v", errBadParameter, err)
		}
	}

	return selection, nil
}

// parseTime accepts a dd/mm/yyyy date or unix milliseconds
func parseTime(value string) (time.Time, error) {
	if ms, err := strconv.ParseInt(value, 10, 64); err == nil {
		return time.UnixMilli(ms).UTC(), nil
	}
	return core.ParseDate(value)
}
