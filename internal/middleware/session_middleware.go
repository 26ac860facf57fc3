package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Morgpo/Grub-N-Go/internal/model"
	"github.com/Morgpo/Grub-N-Go/internal/services"
)

const sessionContextKey = "session"

// RequireSession rejects requests until the user has logged in, and puts the
// session on the echo context for handlers.
func RequireSession(sessions *services.SessionService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, ok := sessions.Current()
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthenticated"})
			}
			c.Set(sessionContextKey, sess)
			return next(c)
		}
	}
}

// GetSession returns the session set by RequireSession.
func GetSession(c echo.Context) model.Session {
	sess, _ := c.Get(sessionContextKey).(model.Session)
	return sess
}
