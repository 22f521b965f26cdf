package session

import (
	"time"

	"github.com/davijvasconcellos-senai/ProjetoFinal/internal/auth"
	"github.com/davijvasconcellos-senai/ProjetoFinal/internal/model"
)

// Flash is a one-shot notice shown on the next rendered page.
type Flash struct {
	Category model.Severity `json:"category"`
	Message  string         `json:"message"`
}

// Session is the per-client state carried in the signed cookie.
type Session struct {
	Authenticated bool      `json:"user_authenticated"`
	Username      string    `json:"username,omitempty"`
	Role          auth.Role `json:"user_role,omitempty"`
	ID            string    `json:"sid,omitempty"`
	IssuedAt      time.Time `json:"issued_at,omitempty"`
	Flashes       []Flash   `json:"flashes,omitempty"`
}

func (s *Session) Login(id, username string, role auth.Role, now time.Time) {
	s.Authenticated = true
	s.Username = username
	s.Role = role
	s.ID = id
	s.IssuedAt = now.UTC()
}

// Clear drops every field, pending flashes included.
func (s *Session) Clear() {
	*s = Session{}
}

func (s *Session) AddFlash(category model.Severity, message string) {
	s.Flashes = append(s.Flashes, Flash{Category: category, Message: message})
}

// TakeFlashes returns pending flashes and removes them from the session.
func (s *Session) TakeFlashes() []Flash {
	flashes := s.Flashes
	s.Flashes = nil
	return flashes
}

// Expired reports whether an authenticated session is older than lifetime.
func (s *Session) Expired(now time.Time, lifetime time.Duration) bool {
	if !s.Authenticated {
		return false
	}
	return now.Sub(s.IssuedAt) > lifetime
}
