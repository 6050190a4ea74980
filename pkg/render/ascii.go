package render

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
	"github.com/raykavin/coinstats/pkg/chart"
	"github.com/raykavin/coinstats/pkg/core"
)

// ASCII draws the plan as a terminal line chart of the given size in cells
func ASCII(plan chart.RenderPlan, width, height int) (string, error) {
	dates, values := drawable(plan)
	if len(values) < 2 {
		return "", ErrTooFewPoints
	}

	caption := fmt.Sprintf("%s %s, %s - %s", plan.Coin, plan.AxisLabel,
		core.FormatDate(dates[0]), core.FormatDate(dates[len(dates)-1]))

	color := asciigraph.Cyan
	switch {
	case values[len(values)-1] > values[0]:
		color = asciigraph.Green
	case values[len(values)-1] < values[0]:
		color = asciigraph.Red
	}

	return asciigraph.Plot(values,
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.LowerBound(plan.ValueDomain.Min),
		asciigraph.UpperBound(plan.ValueDomain.Max),
		asciigraph.Caption(caption),
		asciigraph.SeriesColors(color),
	), nil
}
