// Package session keeps one-shot flash messages for page visitors,
// keyed by a session_id cookie and stored in a cache.Store.
package session

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/meeting-action-tracker/internal/infrastructure/cache"
)

// CookieName is the cookie carrying the session id
const CookieName = "session_id"

// Flash kinds rendered by the page templates
const (
	KindSuccess = "success"
	KindError   = "error"
)

// Message is a flash message shown once
type Message struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

// Flash stores flash messages per session
type Flash struct {
	store  cache.Store
	ttl    time.Duration
	secure bool
}

// NewFlash creates a Flash; secure marks the session cookie HTTPS only
func NewFlash(store cache.Store, ttl time.Duration, secure bool) *Flash {
	return &Flash{store: store, ttl: ttl, secure: secure}
}

// Set stores a message for the visitor, issuing a session cookie when needed.
// A later message replaces an unread one.
func (f *Flash) Set(c echo.Context, kind, text string) error {
	sid := f.sessionID(c)

	payload, err := json.Marshal(Message{Kind: kind, Text: text})
	if err != nil {
		return fmt.Errorf("failed to encode flash: %w", err)
	}
	if err := f.store.Set(c.Request().Context(), key(sid), string(payload), f.ttl); err != nil {
		return fmt.Errorf("failed to store flash: %w", err)
	}
	return nil
}

// Pop returns the pending message and deletes it. It returns nil when
// the visitor has no session or no message.
func (f *Flash) Pop(c echo.Context) (*Message, error) {
	cookie, err := c.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return nil, nil
	}

	raw, ok, err := f.store.Pop(c.Request().Context(), key(cookie.Value))
	if err != nil {
		return nil, fmt.Errorf("failed to read flash: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var msg Message
	if err := json.Unmarshal([]byte(raw), &msg); err != nil {
		return nil, fmt.Errorf("failed to decode flash: %w", err)
	}
	return &msg, nil
}

func (f *Flash) sessionID(c echo.Context) string {
	if cookie, err := c.Cookie(CookieName); err == nil {
		if _, err := uuid.Parse(cookie.Value); err == nil {
			return cookie.Value
		}
	}

	sid := uuid.NewString()
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    sid,
		Path:     "/",
		HttpOnly: true,
		Secure:   f.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return sid
}

func key(sid string) string {
	return "flash:" + sid
}
