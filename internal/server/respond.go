package server

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/davijvasconcellos-senai/ProjetoFinal/internal/lib/logger/sl"
	"github.com/davijvasconcellos-senai/ProjetoFinal/internal/session"
	"github.com/davijvasconcellos-senai/ProjetoFinal/internal/web"
)

// render writes page with the global context. Pending flashes are consumed
// and the trimmed session is written back.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, page string, payload any) {
	sess := session.FromContext(r.Context())

	var flashes []session.Flash
	if len(sess.Flashes) > 0 {
		flashes = sess.TakeFlashes()
		h.saveSession(w, r, sess)
	}

	data := web.NewPageData(web.NewCurrentUser(sess), flashes, h.now(), payload)

	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, page, data); err != nil {
		h.log.Error("failed to render page",
			slog.String("page", page),
			slog.String("request_id", middleware.GetReqID(r.Context())),
			sl.Err(err),
		)
		h.serverError(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// serverError renders the static 500 page, falling back to plain text when
// even that fails.
func (h *Handler) serverError(w http.ResponseWriter, r *http.Request) {
	data := web.NewPageData(web.NewCurrentUser(session.FromContext(r.Context())), nil, h.now(), nil)

	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, web.PageServerError, data); err != nil {
		h.log.Error("failed to render error page", sl.Err(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	buf.WriteTo(w)
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusNotFound, web.PageNotFound, nil)
}

func (h *Handler) redirect(w http.ResponseWriter, r *http.Request, sess *session.Session, location string) {
	h.saveSession(w, r, sess)
	http.Redirect(w, r, location, http.StatusFound)
}

// saveSession logs failures instead of aborting: the response can still
// be served, only the cookie update is lost.
func (h *Handler) saveSession(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	if err := h.sessions.Save(w, sess); err != nil {
		h.log.Error("failed to save session",
			slog.String("path", r.URL.Path),
			sl.Err(err),
		)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
