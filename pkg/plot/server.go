package plot

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/raykavin/coinstats/pkg/chart"
	"github.com/raykavin/coinstats/pkg/core"
	"github.com/raykavin/coinstats/pkg/logger"
	"github.com/raykavin/coinstats/pkg/render"
)

// Static assets embedded in the binary
var (
	//go:embed assets
	staticFiles embed.FS
)

// Server exposes redraw and nearest over HTTP and WebSocket for the chart page
type Server struct {
	port          int
	debug         bool
	corsOrigins   []string
	collection    core.SeriesCollection
	defaults      core.Selection
	renderer      *render.ImageRenderer
	websocket     *WebSocketManager
	indexHTML     *template.Template
	scriptContent string
	log           logger.Logger
}

// Option configures a Server
type Option func(*Server)

// WithPort sets the HTTP listen port
func WithPort(port int) Option {
	return func(s *Server) {
		s.port = port
	}
}

// WithDebug serves the page script without minification
func WithDebug() Option {
	return func(s *Server) {
		s.debug = true
	}
}

// WithCORSOrigins restricts cross origin requests; empty allows all
func WithCORSOrigins(origins ...string) Option {
	return func(s *Server) {
		s.corsOrigins = origins
	}
}

// WithDefaults sets the selection used for missing query parameters
func WithDefaults(selection core.Selection) Option {
	return func(s *Server) {
		s.defaults = selection
	}
}

// WithRenderer sets the image renderer behind /chart.svg and /chart.png
func WithRenderer(renderer *render.ImageRenderer) Option {
	return func(s *Server) {
		s.renderer = renderer
	}
}

// NewServer prepares the page template and script for a collection
func NewServer(collection core.SeriesCollection, log logger.Logger, options ...Option) (*Server, error) {
	server := &Server{
		port:       8080,
		collection: collection,
		defaults: core.Selection{
			Metric:   core.MetricPrice,
			Interval: core.FullInterval(),
		},
		renderer: render.NewImageRenderer(),
		log:      log,
	}
	if coins := collection.Coins(); len(coins) > 0 {
		server.defaults.Coin = coins[0]
	}

	for _, option := range options {
		option(server)
	}

	var err error
	server.indexHTML, err = template.ParseFS(staticFiles, "assets/index.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse chart template: %w", err)
	}

	script, err := staticFiles.ReadFile("assets/chart.js")
	if err != nil {
		return nil, fmt.Errorf("failed to read chart.js: %w", err)
	}

	result := api.Transform(string(script), api.TransformOptions{
		Loader:            api.LoaderJS,
		Target:            api.ES2015,
		MinifySyntax:      !server.debug,
		MinifyIdentifiers: !server.debug,
		MinifyWhitespace:  !server.debug,
	})
	if len(result.Errors) > 0 {
		return nil, fmt.Errorf("chart script failed with: %v", result.Errors)
	}
	server.scriptContent = string(result.Code)

	server.websocket = NewWebSocketManager(collection, server.renderer, log, server.controllerDefaults()...)

	return server, nil
}

// Router builds the HTTP routes of the chart page
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(s.log))

	origins := s.corsOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/", s.handleIndex)
	r.Get("/assets/chart.js", s.handleScript)
	r.Get("/health", s.handleHealth)
	r.Get("/coins", s.handleCoins)
	r.Get("/plan", s.handlePlan)
	r.Get("/nearest", s.handleNearest)
	r.Get("/chart.svg", s.handleImage(render.FormatSVG))
	r.Get("/chart.png", s.handleImage(render.FormatPNG))
	r.Get("/ws", s.websocket.HandleWebSocket)

	return r
}

// Start serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.port),
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		s.log.Infof("Chart available at http://localhost:%d", s.port)
		errs <- srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.log.Info("Shutting down chart server")
		return srv.Shutdown(shutdownCtx)
	}
}

// requestLogger logs every request with the structured logger
func requestLogger(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			log.WithFields(map[string]any{
				"method":   r.Method,
				"path":     r.URL.Path,
				"status":   ww.Status(),
				"duration": time.Since(start).String(),
			}).Debug("request served")
		})
	}
}

// controllerDefaults turns the server defaults into controller options
func (s *Server) controllerDefaults() []chart.Option {
	return []chart.Option{
		chart.WithDefaultCoin(s.defaults.Coin),
		chart.WithDefaultMetric(s.defaults.Metric),
		chart.WithInterval(s.defaults.Interval),
	}
}
