// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"authgate/config"
	deliverycontext "authgate/internal/delivery/context"
	"authgate/internal/delivery/http/response"
	"authgate/internal/domain/entity"
	domainerrors "authgate/internal/domain/errors"
	"authgate/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CredentialsRequest is the body of signup and signin.
type CredentialsRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse is the public view of an account. It never carries the password hash.
type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

func newUserResponse(user *entity.User) UserResponse {
	return UserResponse{ID: user.ID, Email: user.Email}
}

// AuthHandler serves the /auth routes.
type AuthHandler struct {
	auth     usecase.AuthUsecase
	sessions usecase.SessionUsecase
	cookie   sessionCookie
	logger   *slog.Logger
}

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	Auth     usecase.AuthUsecase
	Sessions usecase.SessionUsecase
	Config   *config.Config
	Logger   *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		auth:     params.Auth,
		sessions: params.Sessions,
		cookie:   newSessionCookie(params.Config.Session),
		logger:   params.Logger,
	}
}

// Signup creates an account and signs it in.
func (h *AuthHandler) Signup(c echo.Context) error {
	req, err := bindCredentials(c)
	if err != nil {
		return err
	}

	user, err := h.auth.Signup(c.Request().Context(), &usecase.SignupInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.startSession(c, user); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, newUserResponse(user))
}

// Signin checks credentials and starts a session.
func (h *AuthHandler) Signin(c echo.Context) error {
	req, err := bindCredentials(c)
	if err != nil {
		return err
	}

	user, err := h.auth.Signin(c.Request().Context(), &usecase.SigninInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.startSession(c, user); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newUserResponse(user))
}

// Whoami returns the signed-in account, or an empty 200 when there is none.
func (h *AuthHandler) Whoami(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := deliverycontext.GetUserID(ctx)
	if !ok {
		return c.NoContent(http.StatusOK)
	}

	user, err := h.auth.CurrentUser(ctx, userID)
	if errors.Is(err, domainerrors.ErrUserNotFound) {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("Session refers to a missing user", slog.Any("user_id", userID))

		return c.NoContent(http.StatusOK)
	}
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, newUserResponse(user))
}

// Signout ends the current session, if any, and clears the cookie.
func (h *AuthHandler) Signout(c echo.Context) error {
	if err := h.sessions.End(c.Request().Context(), h.cookie.read(c)); err != nil {
		return errors.WithStack(err)
	}
	h.cookie.clear(c)

	return response.Success(c, http.StatusOK, nil, "Signed out")
}

func (h *AuthHandler) startSession(c echo.Context, user *entity.User) error {
	req := c.Request()

	token, _, err := h.sessions.Start(req.Context(), user.ID, req.UserAgent(), c.RealIP())
	if err != nil {
		return errors.WithStack(err)
	}
	h.cookie.set(c, token)

	return nil
}

func bindCredentials(c echo.Context) (*CredentialsRequest, error) {
	var req CredentialsRequest
	if err := c.Bind(&req); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("request body must be a JSON object with email and password")
	}
	if err := c.Validate(&req); err != nil {
		return nil, err
	}

	return &req, nil
}
