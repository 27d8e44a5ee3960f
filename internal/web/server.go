// Package web serves the calculators as HTML pages and a JSON API.
package web

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rpgo/fedcalc/internal/calculation"
	"github.com/rpgo/fedcalc/internal/domain"
	"github.com/rpgo/fedcalc/internal/output"
	"github.com/rpgo/fedcalc/internal/ratelimit"
	"github.com/rpgo/fedcalc/internal/recorder"
)

//go:embed templates/*.html
var templateFS embed.FS

const shutdownTimeout = 10 * time.Second

// Server wires the calculation engine to HTTP.
type Server struct {
	Engine   *calculation.CalculationEngine
	Limiter  ratelimit.Limiter
	Recorder recorder.Recorder
	Logger   calculation.Logger

	router *gin.Engine
}

// NewServer builds the router. A nil limiter disables rate limiting, a nil
// recorder records nothing and a nil logger logs nothing.
func NewServer(engine *calculation.CalculationEngine, limiter ratelimit.Limiter, rec recorder.Recorder, logger calculation.Logger) *Server {
	if rec == nil {
		rec = recorder.NewNoopRecorder()
	}
	if logger == nil {
		logger = calculation.NopLogger{}
	}
	s := &Server{Engine: engine, Limiter: limiter, Recorder: rec, Logger: logger}
	s.router = s.routes()
	return s
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	tmpl := template.Must(template.New("").Funcs(output.TemplateFuncs).ParseFS(templateFS, "templates/*.html"))
	r.SetHTMLTemplate(tmpl)

	r.GET("/", s.index)
	r.GET("/healthz", s.healthz)
	r.GET("/calculators/:kind", s.calculatorPage)

	api := r.Group("/api/v1")
	api.GET("/calculators", s.listCalculators)
	api.GET("/calculators/:kind/defaults", s.defaults)

	limited := []gin.HandlerFunc{}
	if s.Limiter != nil {
		limited = append(limited, RateLimitMiddleware(s.Limiter, s.Logger))
	}
	r.POST("/calculators/:kind", append(limited, s.calculateForm)...)
	api.POST("/calculators/:kind", append(limited, s.calculateJSON)...)

	return r
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler { return s.router }

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	server := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		s.Logger.Infof("listening on %s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
		s.Logger.Infof("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.Logger.Infof("server exited")
	return nil
}

// record stores an anonymous usage event. Failures are logged only.
func (s *Server) record(ctx context.Context, r *domain.Report, source recorder.Source, started time.Time) {
	evt := recorder.NewCalculationEvent(r, source, time.Since(started))
	if err := s.Recorder.RecordCalculation(ctx, evt); err != nil {
		s.Logger.Warnf("record calculation: %v", err)
	}
}
