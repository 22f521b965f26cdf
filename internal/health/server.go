// Package health serves the operations listener of the dashboard: liveness,
// readiness, an aggregated component report and Prometheus metrics.
package health

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/davijvasconcellos-senai/ProjetoFinal/internal/lib/logger/sl"
)

const (
	machineName  = "Duplotech 6040"
	checkTimeout = 2 * time.Second
)

type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusDegraded  Status = "degraded"
	StatusUnhealthy Status = "unhealthy"
)

// rank orders statuses from best to worst.
func (s Status) rank() int {
	switch s {
	case StatusHealthy:
		return 0
	case StatusDegraded:
		return 1
	default:
		return 2
	}
}

type Component struct {
	Name    string `json:"name"`
	Status  Status `json:"status"`
	Message string `json:"message,omitempty"`
}

type Report struct {
	Machine    string      `json:"machine"`
	Status     Status      `json:"status"`
	Uptime     string      `json:"uptime"`
	Components []Component `json:"components"`
	CheckedAt  time.Time   `json:"checked_at"`
}

// Checker inspects one part of the dashboard.
type Checker interface {
	Name() string
	Check(ctx context.Context) (Status, string)
}

type Server struct {
	log      *slog.Logger
	address  string
	gatherer prometheus.Gatherer
	started  time.Time
	now      func() time.Time

	mu       sync.RWMutex
	checkers []Checker

	srv *http.Server
}

func NewServer(log *slog.Logger, address string, gatherer prometheus.Gatherer) *Server {
	return &Server{
		log:      log.With(slog.String("component", "ops")),
		address:  address,
		gatherer: gatherer,
		started:  time.Now(),
		now:      time.Now,
	}
}

func (s *Server) AddChecker(c Checker) {
	s.mu.Lock()
	s.checkers = append(s.checkers, c)
	s.mu.Unlock()
}

func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Get("/live", func(w http.ResponseWriter, _ *http.Request) {
		writeText(w, http.StatusOK, "OK")
	})
	r.Get("/ready", s.ready)
	r.Get("/health", s.health)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))

	return r
}

// Start binds the listener synchronously so address errors surface at boot,
// then serves in the background.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.address, err)
	}

	s.srv = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      10 * time.Second,
	}

	s.log.Info("ops server listening", slog.String("address", ln.Addr().String()))

	go func() {
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error("ops server stopped", sl.Err(err))
		}
	}()

	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}

// evaluate runs every checker and folds the worst status into the report.
func (s *Server) evaluate(ctx context.Context) Report {
	s.mu.RLock()
	checkers := append([]Checker(nil), s.checkers...)
	s.mu.RUnlock()

	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	now := s.now()
	report := Report{
		Machine:    machineName,
		Status:     StatusHealthy,
		Uptime:     now.Sub(s.started).Truncate(time.Second).String(),
		Components: make([]Component, 0, len(checkers)),
		CheckedAt:  now.UTC(),
	}

	for _, c := range checkers {
		status, msg := c.Check(ctx)
		report.Components = append(report.Components, Component{Name: c.Name(), Status: status, Message: msg})
		if status.rank() > report.Status.rank() {
			report.Status = status
		}
	}

	return report
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	report := s.evaluate(r.Context())

	code := http.StatusOK
	if report.Status == StatusUnhealthy {
		code = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(report); err != nil {
		s.log.Error("failed to encode health report", sl.Err(err))
	}
}

// ready accepts traffic unless some component is unhealthy; a degraded
// machine still serves its dashboard.
func (s *Server) ready(w http.ResponseWriter, r *http.Request) {
	if s.evaluate(r.Context()).Status == StatusUnhealthy {
		writeText(w, http.StatusServiceUnavailable, "NOT READY")
		return
	}
	writeText(w, http.StatusOK, "OK")
}

func writeText(w http.ResponseWriter, code int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write([]byte(body))
}
