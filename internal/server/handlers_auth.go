package server

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/davijvasconcellos-senai/ProjetoFinal/internal/auth"
	"github.com/davijvasconcellos-senai/ProjetoFinal/internal/lib/logger/sl"
	"github.com/davijvasconcellos-senai/ProjetoFinal/internal/model"
	"github.com/davijvasconcellos-senai/ProjetoFinal/internal/session"
	"github.com/davijvasconcellos-senai/ProjetoFinal/internal/web"
)

const defaultLogoutName = "Usuário"

func (h *Handler) loginForm(w http.ResponseWriter, r *http.Request) {
	if session.FromContext(r.Context()).Authenticated {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
		return
	}
	h.render(w, r, http.StatusOK, web.PageLogin, nil)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())
	if sess.Authenticated {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	role, err := h.verifier.Verify(username, password)
	if err != nil {
		if !errors.Is(err, auth.ErrInvalidCredentials) {
			h.log.Error("credential lookup failed", sl.Err(err))
			h.serverError(w, r)
			return
		}

		h.log.Info("login rejected", slog.String("username", username))
		sess.AddFlash(model.SeverityError, "Credenciais inválidas. Tente novamente.")
		h.render(w, r, http.StatusOK, web.PageLogin, nil)
		return
	}

	sess.Login(h.newID(), username, role, h.now())
	sess.AddFlash(model.SeveritySuccess, fmt.Sprintf("Login realizado com sucesso! Bem-vindo, %s.", username))

	h.log.Info("user logged in",
		slog.String("username", username),
		slog.String("role", string(role)),
		slog.String("session_id", sess.ID),
	)

	h.redirect(w, r, sess, "/dashboard")
}

func (h *Handler) registerForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, web.PageRegister, nil)
}

// register validates the sign-up form. Accepted accounts are not stored, so
// they cannot log in afterwards.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())

	form := auth.Registration{
		Username:        r.PostFormValue("username"),
		Email:           r.PostFormValue("email"),
		Password:        r.PostFormValue("password"),
		ConfirmPassword: r.PostFormValue("confirm_password"),
		Role:            r.PostFormValue("role"),
	}

	if err := auth.ValidateRegistration(form); err != nil {
		var verr *auth.ValidationError
		if !errors.As(err, &verr) {
			h.log.Error("registration validation failed", sl.Err(err))
			h.serverError(w, r)
			return
		}

		sess.AddFlash(model.SeverityError, verr.Message)
		h.render(w, r, http.StatusOK, web.PageRegister, nil)
		return
	}

	h.log.Info("registration accepted", slog.String("username", form.Username))

	sess.AddFlash(model.SeveritySuccess, "Conta criada com sucesso! Faça login para continuar.")
	h.redirect(w, r, sess, "/login")
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())

	name := sess.Username
	if name == "" {
		name = defaultLogoutName
	}
	if sess.Authenticated {
		h.log.Info("user logged out",
			slog.String("username", sess.Username),
			slog.String("session_id", sess.ID),
		)
	}

	sess.Clear()
	sess.AddFlash(model.SeverityInfo, fmt.Sprintf("Logout realizado com sucesso! Até logo, %s.", name))
	h.redirect(w, r, sess, "/")
}
