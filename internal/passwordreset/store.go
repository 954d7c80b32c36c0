package passwordreset

import (
	"fmt"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

// DefaultSessionName is the cookie session holding the view state.
const DefaultSessionName = "password-reset"

const (
	emailKey = "email"
	phaseKey = "phase"
)

// SessionStore keeps a View in the browser's cookie session so the state
// survives the redirect between a submit and the next render.
type SessionStore struct {
	name string
}

// NewSessionStore creates a store writing to the named session.
func NewSessionStore(name string) *SessionStore {
	if name == "" {
		name = DefaultSessionName
	}
	return &SessionStore{name: name}
}

// Load returns the view stored in the session, or a fresh view when there
// is none or it cannot be decoded.
func (s *SessionStore) Load(c echo.Context) View {
	sess, err := session.Get(s.name, c)
	if err != nil {
		return NewView()
	}

	v := NewView()
	if email, ok := sess.Values[emailKey].(string); ok {
		v.Email = email
	}
	if raw, ok := sess.Values[phaseKey].(string); ok {
		v.Phase, _ = ParsePhase(raw)
	}
	return v
}

// Save writes the view to the session cookie.
func (s *SessionStore) Save(c echo.Context, v View) error {
	// A cookie that fails to decode still yields a usable fresh session.
	sess, err := session.Get(s.name, c)
	if sess == nil {
		return fmt.Errorf("load %s session: %w", s.name, err)
	}

	sess.Values[emailKey] = v.Email
	sess.Values[phaseKey] = v.Phase.String()
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return fmt.Errorf("save %s session: %w", s.name, err)
	}
	return nil
}

// Discard expires the stored view.
func (s *SessionStore) Discard(c echo.Context) error {
	sess, err := session.Get(s.name, c)
	if sess == nil {
		return fmt.Errorf("load %s session: %w", s.name, err)
	}

	delete(sess.Values, emailKey)
	delete(sess.Values, phaseKey)
	if sess.Options == nil {
		sess.Options = &sessions.Options{Path: "/"}
	}
	sess.Options.MaxAge = -1
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return fmt.Errorf("discard %s session: %w", s.name, err)
	}
	return nil
}
