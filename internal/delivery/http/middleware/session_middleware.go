package middleware

import (
	"log/slog"

	"authgate/config"
	deliverycontext "authgate/internal/delivery/context"
	domainerrors "authgate/internal/domain/errors"
	"authgate/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SessionMiddleware resolves the session cookie into a user id on the request context.
type SessionMiddleware struct {
	sessions   usecase.SessionUsecase
	cookieName string
	logger     *slog.Logger
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(sessions usecase.SessionUsecase, cfg *config.Config, logger *slog.Logger) *SessionMiddleware {
	return &SessionMiddleware{
		sessions:   sessions,
		cookieName: cfg.Session.CookieName,
		logger:     logger,
	}
}

// Load attaches the signed-in user when the cookie names a live session.
// Requests without one continue anonymously; handlers decide what that means.
func (m *SessionMiddleware) Load(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(m.cookieName)
		if err != nil || cookie.Value == "" {
			return next(c)
		}

		ctx := c.Request().Context()
		session, err := m.sessions.Resolve(ctx, cookie.Value)
		if errors.Is(err, domainerrors.ErrUnauthenticated) {
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Debug("Ignoring stale session cookie", slog.Any("reason", err))

			return next(c)
		}
		if err != nil {
			return errors.Wrap(err, "failed to resolve session")
		}

		ctx = deliverycontext.WithUserID(ctx, session.UserID)
		ctx = deliverycontext.WithLogger(ctx,
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).With(slog.String("user_id", session.UserID.String())))
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
