package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/securecookie"
)

var ErrExpired = errors.New("session expired")

// Store persists sessions in an HMAC-signed cookie. Nothing is kept
// server-side.
type Store struct {
	codec    *securecookie.SecureCookie
	name     string
	lifetime time.Duration
	secure   bool
	now      func() time.Time
}

type Option func(*Store)

// WithClock sets the clock used for expiry checks and cookie expiration.
// It should match the clock that stamps IssuedAt at login.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

func NewStore(secret []byte, cookieName string, lifetime time.Duration, secure bool, opts ...Option) *Store {
	codec := securecookie.New(secret, nil)
	codec.MaxAge(int(lifetime.Seconds()))
	codec.SetSerializer(securecookie.JSONEncoder{})

	s := &Store{
		codec:    codec,
		name:     cookieName,
		lifetime: lifetime,
		secure:   secure,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load decodes the session cookie. It always returns a usable session: a
// missing, tampered or expired cookie yields an empty one, with the
// decoding problem reported as the error.
func (s *Store) Load(r *http.Request) (*Session, error) {
	cookie, err := r.Cookie(s.name)
	if err != nil {
		return &Session{}, nil
	}

	var sess Session
	if err := s.codec.Decode(s.name, cookie.Value, &sess); err != nil {
		return &Session{}, fmt.Errorf("failed to decode session cookie: %w", err)
	}

	if sess.Expired(s.now(), s.lifetime) {
		return &Session{}, ErrExpired
	}

	return &sess, nil
}

func (s *Store) Save(w http.ResponseWriter, sess *Session) error {
	value, err := s.codec.Encode(s.name, sess)
	if err != nil {
		return fmt.Errorf("failed to encode session cookie: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(s.lifetime.Seconds()),
		Expires:  s.now().Add(s.lifetime),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

type ctxKey struct{}

func NewContext(ctx context.Context, sess *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, sess)
}

// FromContext returns the request session, or an empty one when the
// middleware did not run.
func FromContext(ctx context.Context) *Session {
	if sess, ok := ctx.Value(ctxKey{}).(*Session); ok {
		return sess
	}
	return &Session{}
}
