package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"members-portal/internal/domain"
)

const (
	ctxSession   = "session"
	ctxSessionID = "sessionID"
)

// CurrentSession returns the session resolved by ResolveSession. Handlers
// behind it always get a non-nil session, anonymous at worst.
func CurrentSession(c echo.Context) *domain.Session {
	if sess, ok := c.Get(ctxSession).(*domain.Session); ok {
		return sess
	}
	return domain.NewSession()
}

func currentSessionID(c echo.Context) string {
	id, _ := c.Get(ctxSessionID).(string)
	return id
}

// ResolveSession loads the request's session entry into the echo context
// and re-arms the store TTL for live sessions, so activity keeps a session
// alive up to its own expiry. A store read error degrades to an anonymous
// session rather than failing the request.
func (h *Handler) ResolveSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess, id, err := h.sessions.Load(c.Request())
		if err != nil {
			c.Logger().Errorf("session load failed: %v", err)
		}
		c.Set(ctxSession, sess)
		c.Set(ctxSessionID, id)

		if sess.IsValid() {
			if err := h.sessions.Touch(c.Request().Context(), id, sess); err != nil {
				c.Logger().Errorf("session refresh failed: %v", err)
			}
		}
		return next(c)
	}
}

// RequireSession is the session-validity guard: authenticated sessions
// pass, everything else is redirected to the login page and the request
// ends there. The session itself is never mutated.
func (h *Handler) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !CurrentSession(c).IsValid() {
			return c.Redirect(http.StatusFound, "/login")
		}
		return next(c)
	}
}

// RequireAdmin is the role guard. It must run after RequireSession; it
// only inspects the role captured at login.
func (h *Handler) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !CurrentSession(c).IsAdmin() {
			return c.Render(http.StatusForbidden, "accessdenied", map[string]interface{}{
				"Title": "Access denied",
				"Error": "admin access only",
			})
		}
		return next(c)
	}
}
