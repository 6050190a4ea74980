package render

import (
	"fmt"
	"io"

	"github.com/raykavin/coinstats/pkg/chart"
	"github.com/raykavin/coinstats/pkg/core"
	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Format is an image encoding understood by the image renderer
type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
)

// ContentType returns the MIME type of the format
func (f Format) ContentType() string {
	if f == FormatPNG {
		return "image/png"
	}
	return "image/svg+xml"
}

// ImageRenderer draws plans with go-chart
type ImageRenderer struct {
	width  int
	height int
	color  drawing.Color
}

// ImageOption configures an ImageRenderer
type ImageOption func(*ImageRenderer)

// WithSize sets the image size in pixels
func WithSize(width, height int) ImageOption {
	return func(r *ImageRenderer) {
		r.width = width
		r.height = height
	}
}

// WithLineColor sets the line color as a hex string, e.g. "4682b4"
func WithLineColor(hex string) ImageOption {
	return func(r *ImageRenderer) {
		r.color = drawing.ColorFromHex(hex)
	}
}

// NewImageRenderer creates an 800x500 steel blue renderer
func NewImageRenderer(options ...ImageOption) *ImageRenderer {
	renderer := &ImageRenderer{
		width:  800,
		height: 500,
		color:  drawing.ColorFromHex("4682b4"),
	}

	for _, option := range options {
		option(renderer)
	}

	return renderer
}

// PlotArea is the pixel box of the line inside an image of Width x Height.
// The time domain spans Left to Right.
type PlotArea struct {
	Left   int `json:"left"`
	Top    int `json:"top"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Render writes the plan to w in the given format
func (r *ImageRenderer) Render(w io.Writer, plan chart.RenderPlan, format Format) error {
	graph, err := r.build(plan)
	if err != nil {
		return err
	}

	encoder := gochart.SVG
	if format == FormatPNG {
		encoder = gochart.PNG
	}

	if err := graph.Render(encoder, w); err != nil {
		return fmt.Errorf("chart render failed: %w", err)
	}

	return nil
}

// Layout returns where Render places the plot area of the plan, once the
// padding and the axis labels are taken out of the image
func (r *ImageRenderer) Layout(plan chart.RenderPlan) (PlotArea, error) {
	graph, err := r.build(plan)
	if err != nil {
		return PlotArea{}, err
	}

	var canvas gochart.Box
	graph.Elements = append(graph.Elements, func(_ gochart.Renderer, box gochart.Box, _ gochart.Style) {
		canvas = box
	})

	if err := graph.Render(gochart.SVG, io.Discard); err != nil {
		return PlotArea{}, fmt.Errorf("chart layout failed: %w", err)
	}

	return PlotArea{
		Left:   canvas.Left,
		Top:    canvas.Top,
		Right:  canvas.Right,
		Bottom: canvas.Bottom,
		Width:  r.width,
		Height: r.height,
	}, nil
}

func (r *ImageRenderer) build(plan chart.RenderPlan) (gochart.Chart, error) {
	dates, values := drawable(plan)
	if len(values) < 2 {
		return gochart.Chart{}, ErrTooFewPoints
	}

	return gochart.Chart{
		Title:  plan.Coin,
		Width:  r.width,
		Height: r.height,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 50, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: gochart.XAxis{
			Range: &gochart.ContinuousRange{
				Min: gochart.TimeToFloat64(plan.TimeDomain.Min),
				Max: gochart.TimeToFloat64(plan.TimeDomain.Max),
			},
			ValueFormatter: func(v interface{}) string {
				if t, ok := v.(float64); ok {
					return core.FormatDate(gochart.TimeFromFloat64(t))
				}
				return ""
			},
		},
		YAxis: gochart.YAxis{
			Name: plan.AxisLabel,
			Range: &gochart.ContinuousRange{
				Min: plan.ValueDomain.Min,
				Max: plan.ValueDomain.Max,
			},
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return chart.FormatAbbreviation(f)
				}
				return ""
			},
		},
		Series: []gochart.Series{
			gochart.TimeSeries{
				Name: plan.AxisLabel,
				Style: gochart.Style{
					StrokeColor: r.color,
					StrokeWidth: 2,
				},
				XValues: dates,
				YValues: values,
			},
		},
	}, nil
}
