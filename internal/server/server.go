// Package server wires the dashboard routes: public pages, the login flow,
// pages and JSON endpoints gated on an authenticated session.
package server

import (
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/davijvasconcellos-senai/ProjetoFinal/internal/auth"
	"github.com/davijvasconcellos-senai/ProjetoFinal/internal/health"
	"github.com/davijvasconcellos-senai/ProjetoFinal/internal/session"
	"github.com/davijvasconcellos-senai/ProjetoFinal/internal/telemetry"
	"github.com/davijvasconcellos-senai/ProjetoFinal/internal/web"
)

// Telemetry is the machine data source behind the dashboard and the API.
type Telemetry interface {
	Refresh()
	Read() telemetry.Snapshot
}

type Dependencies struct {
	Log       *slog.Logger
	Telemetry Telemetry
	Verifier  auth.Verifier
	Sessions  *session.Store
	Renderer  *web.Renderer
	Assets    fs.FS

	// Optional.
	Metrics *health.HTTPMetrics
	Now     func() time.Time
	NewID   func() string
}

type Handler struct {
	log       *slog.Logger
	telemetry Telemetry
	verifier  auth.Verifier
	sessions  *session.Store
	renderer  *web.Renderer
	now       func() time.Time
	newID     func() string
}

func NewRouter(deps Dependencies) (*chi.Mux, error) {
	static, err := web.StaticHandler(deps.Assets)
	if err != nil {
		return nil, fmt.Errorf("failed to mount static assets: %w", err)
	}

	h := &Handler{
		log:       deps.Log,
		telemetry: deps.Telemetry,
		verifier:  deps.Verifier,
		sessions:  deps.Sessions,
		renderer:  deps.Renderer,
		now:       deps.Now,
		newID:     deps.NewID,
	}
	if h.now == nil {
		h.now = time.Now
	}
	if h.newID == nil {
		h.newID = uuid.NewString
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.GetHead)
	r.Use(requestLogger(h.log))
	if deps.Metrics != nil {
		r.Use(deps.Metrics.Middleware)
	}
	r.Use(session.Middleware(h.log, h.sessions))
	r.Use(h.recoverer)

	r.NotFound(h.notFound)

	r.Handle("/static/*", http.StripPrefix("/static/", static))

	r.Get("/", h.index)
	r.Get("/ajuda", h.page(web.PageHelp))
	r.Get("/sobre", h.page(web.PageAbout))
	r.Get("/contato", h.page(web.PageContact))
	r.Get("/documentacao", h.page(web.PageDocumentation))

	r.With(h.requireLogin("Por favor, faça login para acessar o dashboard.")).
		Get("/dashboard", h.dashboard)
	r.With(h.requireLogin("Por favor, faça login para acessar as análises.")).
		Get("/analises", h.page(web.PageAnalyses))
	r.With(h.requireLogin("Por favor, faça login para acessar as configurações.")).
		Get("/configuracoes", h.page(web.PageSettings))

	r.Get("/login", h.loginForm)
	r.Post("/login", h.login)
	r.Get("/registro", h.registerForm)
	r.Post("/registro", h.register)
	r.Get("/logout", h.logout)

	// Gated per route so unknown /api paths fall through to the 404 page
	// and metrics see the resolved pattern.
	api := r.With(h.requireAPISession)
	api.Get("/api/machine-status", h.machineStatus)
	api.Get("/api/alertas", h.alerts)

	return r, nil
}
