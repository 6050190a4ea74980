package chart

import (
	"fmt"
	"sync"
	"time"

	"github.com/raykavin/coinstats/pkg/core"
	"github.com/raykavin/coinstats/pkg/logger"
	"github.com/raykavin/coinstats/pkg/timeseries"
)

// Tooltip describes the hover decoration for the point under the pointer
type Tooltip struct {
	Point    core.SeriesPoint
	Date     time.Time
	Value    float64
	Text     string
	DateText string
}

// Controller owns the current selection and the last plan drawn for it.
// A failed change leaves both untouched so the previous chart stays up.
type Controller struct {
	sync.RWMutex
	collection core.SeriesCollection
	selection  core.Selection
	plan       RenderPlan
	log        logger.Logger
}

// Option configures the initial selection of a Controller
type Option func(*core.Selection)

// WithDefaultCoin selects the coin drawn first
func WithDefaultCoin(coin string) Option {
	return func(s *core.Selection) {
		s.Coin = coin
	}
}

// WithDefaultMetric selects the metric drawn first
func WithDefaultMetric(metric core.Metric) Option {
	return func(s *core.Selection) {
		s.Metric = metric
	}
}

// WithInterval selects the interval drawn first
func WithInterval(interval core.Interval) Option {
	return func(s *core.Selection) {
		s.Interval = interval
	}
}

// NewController draws the default selection: the first coin of the
// collection, the price metric and the whole dataset interval.
func NewController(collection core.SeriesCollection, log logger.Logger, options ...Option) (*Controller, error) {
	selection := core.Selection{
		Metric:   core.MetricPrice,
		Interval: core.FullInterval(),
	}
	if coins := collection.Coins(); len(coins) > 0 {
		selection.Coin = coins[0]
	}

	for _, option := range options {
		option(&selection)
	}

	plan, err := Redraw(collection, selection)
	if err != nil {
		return nil, fmt.Errorf("failed to draw initial selection: %w", err)
	}

	return &Controller{
		collection: collection,
		selection:  selection,
		plan:       plan,
		log:        log,
	}, nil
}

// Select replaces the whole selection and redraws
func (c *Controller) Select(selection core.Selection) (RenderPlan, error) {
	c.Lock()
	defer c.Unlock()

	plan, err := Redraw(c.collection, selection)
	if err != nil {
		c.log.WithError(err).WithField("coin", selection.Coin).Warn("Redraw rejected, keeping previous chart")
		return c.plan, err
	}

	c.selection = selection
	c.plan = plan
	c.log.WithFields(map[string]any{
		"coin":   selection.Coin,
		"metric": selection.Metric.String(),
		"points": len(plan.FilteredPoints),
	}).Debug("Chart redrawn")

	return plan, nil
}

// SetCoin changes the coin and redraws
func (c *Controller) SetCoin(coin string) (RenderPlan, error) {
	selection := c.Selection()
	selection.Coin = coin
	return c.Select(selection)
}

// SetMetric changes the metric and redraws
func (c *Controller) SetMetric(metric core.Metric) (RenderPlan, error) {
	selection := c.Selection()
	selection.Metric = metric
	return c.Select(selection)
}

// SetInterval changes the date interval and redraws
func (c *Controller) SetInterval(start, end time.Time) (RenderPlan, error) {
	selection := c.Selection()
	selection.Interval = core.Interval{Start: start, End: end}
	return c.Select(selection)
}

// Selection returns the current selection
func (c *Controller) Selection() core.Selection {
	c.RLock()
	defer c.RUnlock()
	return c.selection
}

// Plan returns the last successfully drawn plan
func (c *Controller) Plan() RenderPlan {
	c.RLock()
	defer c.RUnlock()
	return c.plan
}

// Hover locates the point of the current plan closest to target
func (c *Controller) Hover(target time.Time) (Tooltip, error) {
	c.RLock()
	plan := c.plan
	c.RUnlock()

	return TooltipAt(plan, target)
}

// TooltipAt locates the point of plan closest to target
func TooltipAt(plan RenderPlan, target time.Time) (Tooltip, error) {
	point, err := timeseries.Nearest(plan.FilteredPoints, target)
	if err != nil {
		return Tooltip{}, err
	}

	value := point.Value(plan.Metric)
	return Tooltip{
		Point:    point,
		Date:     point.Date,
		Value:    value,
		Text:     FormatCurrency(value),
		DateText: core.FormatDate(point.Date),
	}, nil
}
