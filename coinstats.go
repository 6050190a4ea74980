// Package coinstats charts cryptocurrency price, market capitalization and
// trading volume over a selectable date range.
package coinstats

import (
	"context"

	"github.com/raykavin/coinstats/pkg/core"
	"github.com/raykavin/coinstats/pkg/dataset"
	"github.com/raykavin/coinstats/pkg/logger"
)

// Version of the coinstats tools
const Version = "1.0.0"

// DefaultLog is configured from the COINSTATS_LOG_* environment variables
var DefaultLog logger.Logger

// Load reads and normalizes a coins document with the default logger
func Load(ctx context.Context, source string, options ...dataset.Option) (core.SeriesCollection, error) {
	return dataset.NewLoader(DefaultLog, options...).Load(ctx, source)
}
