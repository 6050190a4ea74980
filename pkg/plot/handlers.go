package plot

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/raykavin/coinstats/pkg/chart"
	"github.com/raykavin/coinstats/pkg/core"
	"github.com/raykavin/coinstats/pkg/render"
	"github.com/samber/lo"
)

// statusFor maps core errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, core.ErrUnknownCoin),
		errors.Is(err, core.ErrUnknownMetric),
		errors.Is(err, core.ErrOutOfRange):
		return http.StatusNotFound
	case errors.Is(err, core.ErrInvalidInterval),
		errors.Is(err, core.ErrDateFormat),
		errors.Is(err, errBadParameter),
		errors.Is(err, render.ErrTooFewPoints):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.log.WithError(err).Error("Request failed")
	}
	http.Error(w, err.Error(), status)
}

// writeJSON encodes value before writing so a failed encoding becomes a 500
// instead of an empty 200
func (s *Server) writeJSON(w http.ResponseWriter, value any) {
	buffer := bytes.NewBuffer(nil)
	if err := json.NewEncoder(buffer).Encode(value); err != nil {
		s.log.WithError(err).Error("JSON encoding failed")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(buffer.Bytes()); err != nil {
		s.log.Error("Failed writing response: ", err)
	}
}

// handleIndex renders the chart page with the coin and metric choices
func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	metrics := lo.Map(core.Metrics(), func(metric core.Metric, _ int) map[string]string {
		return map[string]string{
			"value": metric.String(),
			"label": chart.AxisLabel(metric),
		}
	})

	buffer := bytes.NewBuffer(nil)
	err := s.indexHTML.Execute(buffer, map[string]any{
		"coins":   s.collection.Coins(),
		"metrics": metrics,
		"coin":    s.defaults.Coin,
		"metric":  s.defaults.Metric.String(),
		"min":     s.defaults.Interval.Start.Format("2006-01-02"),
		"max":     s.defaults.Interval.End.Format("2006-01-02"),
	})
	if err != nil {
		s.log.Error("Template execution failed: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buffer.Bytes())
}

func (s *Server) handleScript(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/javascript")
	fmt.Fprint(w, s.scriptContent)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(strconv.Itoa(s.collection.Len())))
}

func (s *Server) handleCoins(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, s.collection.Coins())
}

// redraw computes the plan of the selection found in the query
func (s *Server) redraw(r *http.Request) (chart.RenderPlan, error) {
	selection, err := parseSelection(r.URL.Query(), s.defaults)
	if err != nil {
		return chart.RenderPlan{}, err
	}
	return chart.Redraw(s.collection, selection)
}

func (s *Server) handlePlan(w http.ResponseWriter, r *http.Request) {
	p, err := s.redraw(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, describePlan(s.renderer, p))
}

func (s *Server) handleNearest(w http.ResponseWriter, r *http.Request) {
	at := r.URL.Query().Get("at")
	if at == "" {
		s.writeError(w, fmt.Errorf("%w: missing at", errBadParameter))
		return
	}

	target, err := parseTime(at)
	if err != nil {
		s.writeError(w, fmt.Errorf("%w: at: %v", errBadParameter, err))
		return
	}

	p, err := s.redraw(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	t, err := chart.TooltipAt(p, target)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, newTooltip(t))
}

// handleImage renders the plan of the query with go-chart
func (s *Server) handleImage(format render.Format) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := s.redraw(r)
		if err != nil {
			s.writeError(w, err)
			return
		}

		buffer := bytes.NewBuffer(nil)
		if err := s.renderer.Render(buffer, p, format); err != nil {
			s.writeError(w, err)
			return
		}

		w.Header().Set("Content-Type", format.ContentType())
		if _, err := w.Write(buffer.Bytes()); err != nil {
			s.log.Error("Failed writing chart image: ", err)
		}
	}
}
