package core

import "errors"

var (
	ErrDateFormat        = errors.New("date does not match day/month/year")
	ErrMalformedDocument = errors.New("malformed coins document")
	ErrUnknownCoin       = errors.New("unknown coin")
	ErrUnknownMetric     = errors.New("unknown metric")
	ErrInvalidInterval   = errors.New("interval start is after end")
	ErrOutOfRange        = errors.New("no points to search")
	ErrEmptySeries       = errors.New("empty series")
	ErrNoValues          = errors.New("no numeric values in series")
)
