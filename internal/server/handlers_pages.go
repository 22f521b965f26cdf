package server

import (
	"net/http"

	"github.com/davijvasconcellos-senai/ProjetoFinal/internal/web"
)

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	h.telemetry.Refresh()
	snap := h.telemetry.Read()

	h.render(w, r, http.StatusOK, web.PageIndex, web.NewHomeView(snap, h.now()))
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	h.telemetry.Refresh()
	snap := h.telemetry.Read()

	h.render(w, r, http.StatusOK, web.PageDashboard, web.NewDashboardView(snap))
}

// page serves a template with no payload of its own.
func (h *Handler) page(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.render(w, r, http.StatusOK, name, nil)
	}
}
