package http

import (
	"net/http"
	"time"

	"booking/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

const (
	SessionHeader = "X-Session-ID"
	SessionCookie = "session_id"

	sessionContextKey = "session_id"
	sessionCookieAge  = 30 * 24 * time.Hour
)

// SessionMiddleware resolves the visitor session from the X-Session-ID header
// or the session cookie, issuing a fresh one when neither carries a valid id.
// The id is echoed back in both the header and the cookie.
func SessionMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, ok := sessionFromRequest(c.Request())
			if !ok {
				id = kernel.NewSessionID()
			}

			c.Set(sessionContextKey, id)
			c.Response().Header().Set(SessionHeader, id.String())
			c.SetCookie(&http.Cookie{
				Name:     SessionCookie,
				Value:    id.String(),
				Path:     "/",
				MaxAge:   int(sessionCookieAge.Seconds()),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
			return next(c)
		}
	}
}

func sessionFromRequest(r *http.Request) (kernel.SessionID, bool) {
	if raw := r.Header.Get(SessionHeader); raw != "" {
		if id, err := kernel.SessionIDFromString(raw); err == nil {
			return id, true
		}
	}
	if cookie, err := r.Cookie(SessionCookie); err == nil {
		if id, err := kernel.SessionIDFromString(cookie.Value); err == nil {
			return id, true
		}
	}
	return kernel.SessionID{}, false
}

// sessionID returns the id stored by SessionMiddleware.
func sessionID(c echo.Context) kernel.SessionID {
	id, _ := c.Get(sessionContextKey).(kernel.SessionID)
	return id
}
