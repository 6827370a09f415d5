package handler

import (
	"net/http"
	"time"

	"authgate/config"

	"github.com/labstack/echo/v4"
)

// sessionCookie writes and clears the cookie carrying the session token.
type sessionCookie struct {
	name   string
	ttl    time.Duration
	secure bool
}

func newSessionCookie(cfg *config.SessionConfig) sessionCookie {
	return sessionCookie{
		name:   cfg.CookieName,
		ttl:    cfg.TTL,
		secure: cfg.Secure,
	}
}

func (s sessionCookie) set(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     s.name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.ttl / time.Second),
		Expires:  time.Now().Add(s.ttl),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s sessionCookie) clear(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     s.name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// read returns the token from the request cookie, or "".
func (s sessionCookie) read(c echo.Context) string {
	cookie, err := c.Cookie(s.name)
	if err != nil {
		return ""
	}

	return cookie.Value
}
