package plot

import (
	"math"

	"github.com/raykavin/coinstats/pkg/chart"
	"github.com/raykavin/coinstats/pkg/core"
	"github.com/raykavin/coinstats/pkg/render"
)

// point is the JSON form of a path vertex. Value is null for NaN since JSON
// has no representation for it.
type point struct {
	Date  string   `json:"date"`
	Time  int64    `json:"time"`
	Value *float64 `json:"value"`
}

// plan is the JSON form of chart.RenderPlan
type plan struct {
	Coin        string      `json:"coin"`
	Metric      core.Metric `json:"metric"`
	AxisLabel   string      `json:"axis_label"`
	Start       string      `json:"start"`
	End         string      `json:"end"`
	Empty       bool        `json:"empty"`
	TimeDomain  [2]int64    `json:"time_domain"`
	ValueDomain [2]*float64 `json:"value_domain"`
	Ticks       []string    `json:"ticks"`
	Points      []point     `json:"points"`

	// PlotArea locates the time axis inside /chart.svg; it is absent when
	// the plan has too few points to draw
	PlotArea *render.PlotArea `json:"plot_area,omitempty"`
}

// tooltip is the JSON form of chart.Tooltip
type tooltip struct {
	Date  string   `json:"date"`
	Time  int64    `json:"time"`
	Value *float64 `json:"value"`
	Text  string   `json:"text"`
}

// message is the envelope of every WebSocket frame
type message struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

const tickCount = 6

func newPlan(p chart.RenderPlan) plan {
	out := plan{
		Coin:      p.Coin,
		Metric:    p.Metric,
		AxisLabel: p.AxisLabel,
		Start:     core.FormatDate(p.Interval.Start),
		End:       core.FormatDate(p.Interval.End),
		Empty:     p.Empty(),
		Points:    make([]point, len(p.PathPoints)),
	}

	if !p.Empty() {
		out.TimeDomain = [2]int64{p.TimeDomain.Min.UnixMilli(), p.TimeDomain.Max.UnixMilli()}
		out.ValueDomain = [2]*float64{finite(p.ValueDomain.Min), finite(p.ValueDomain.Max)}
		if out.ValueDomain[0] != nil && out.ValueDomain[1] != nil {
			out.Ticks = ticks(p.ValueDomain.Min, p.ValueDomain.Max)
		}
	}

	for i, vertex := range p.PathPoints {
		out.Points[i] = point{
			Date:  core.FormatDate(vertex.Date),
			Time:  vertex.Date.UnixMilli(),
			Value: finite(vertex.Value),
		}
	}

	return out
}

// describePlan is newPlan plus the plot area renderer gives to p
func describePlan(renderer *render.ImageRenderer, p chart.RenderPlan) plan {
	out := newPlan(p)
	if area, err := renderer.Layout(p); err == nil {
		out.PlotArea = &area
	}
	return out
}

func newTooltip(t chart.Tooltip) tooltip {
	return tooltip{
		Date:  t.DateText,
		Time:  t.Date.UnixMilli(),
		Value: finite(t.Value),
		Text:  t.Text,
	}
}

// ticks returns evenly spaced y axis labels from min to max
func ticks(low, high float64) []string {
	labels := make([]string, tickCount)
	step := (high - low) / float64(tickCount-1)
	for i := range labels {
		labels[i] = chart.FormatAbbreviation(low + float64(i)*step)
	}
	return labels
}

func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
