package core

import (
	"fmt"
	"time"
)

// Date layouts of the coins dataset. DateLayout accepts one or two digit
// days and months, DisplayDateLayout always pads them.
const (
	DateLayout        = "2/1/2006"
	DisplayDateLayout = "02/01/2006"
)

// Known bounds of the coins dataset
var (
	DatasetStart = time.Date(2013, time.December, 5, 0, 0, 0, 0, time.UTC)
	DatasetEnd   = time.Date(2017, time.October, 31, 0, 0, 0, 0, time.UTC)
)

// Interval is a closed date range
type Interval struct {
	Start time.Time
	End   time.Time
}

// FullInterval returns the interval covering the whole dataset
func FullInterval() Interval {
	return Interval{Start: DatasetStart, End: DatasetEnd}
}

// Contains reports whether t lies inside the interval, bounds included
func (i Interval) Contains(t time.Time) bool {
	return !t.Before(i.Start) && !t.After(i.End)
}

// Validate fails with ErrInvalidInterval when the start is after the end
func (i Interval) Validate() error {
	if i.Start.After(i.End) {
		return fmt.Errorf("%w: %s > %s", ErrInvalidInterval,
			i.Start.Format(DisplayDateLayout), i.End.Format(DisplayDateLayout))
	}
	return nil
}

// Selection is the chart state chosen by the user
type Selection struct {
	Coin     string
	Metric   Metric
	Interval Interval
}

// ParseDate parses a day/month/year date at UTC midnight
func ParseDate(value string) (time.Time, error) {
	date, err := time.ParseInLocation(DateLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrDateFormat, value)
	}
	return date, nil
}

// FormatDate formats a date as dd/mm/yyyy
func FormatDate(date time.Time) string {
	return date.Format(DisplayDateLayout)
}
