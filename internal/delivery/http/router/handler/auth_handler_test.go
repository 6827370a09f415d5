package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"authgate/config"
	deliverycontext "authgate/internal/delivery/context"
	"authgate/internal/delivery/http/middleware"
	"authgate/internal/delivery/http/response"
	"authgate/internal/delivery/http/validator"
	"authgate/internal/domain/entity"
	domainerrors "authgate/internal/domain/errors"
	mockUsecase "authgate/internal/mocks/usecase"
	"authgate/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type handlerFixture struct {
	echo     *echo.Echo
	errMW    *middleware.ErrorMiddleware
	auth     *mockUsecase.MockAuthUsecase
	sessions *mockUsecase.MockSessionUsecase
	handler  *AuthHandler
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()

	cfg := &config.Config{}
	cfg.Session = &config.SessionConfig{CookieName: "sid", TTL: time.Hour, Secure: true}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := echo.New()
	e.Validator = validator.New()

	auth := mockUsecase.NewMockAuthUsecase(t)
	sessions := mockUsecase.NewMockSessionUsecase(t)

	return &handlerFixture{
		echo:     e,
		errMW:    middleware.NewErrorMiddleware(logger),
		auth:     auth,
		sessions: sessions,
		handler: NewAuthHandler(AuthHandlerParams{
			Auth:     auth,
			Sessions: sessions,
			Config:   cfg,
			Logger:   logger,
		}),
	}
}

// serve runs fn the way echo would, routing its error through the error middleware.
func (f *handlerFixture) serve(req *http.Request, fn echo.HandlerFunc) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	c := f.echo.NewContext(req, rec)
	if err := fn(c); err != nil {
		f.errMW.HandleHTTPError(err, c)
	}

	return rec
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("User-Agent", "handler-test")

	return req
}

func testUser() *entity.User {
	return &entity.User{
		ID:           uuid.MustParse("0190c1a2-0000-7000-8000-000000000001"),
		Email:        "a@example.com",
		PasswordHash: "00ff.aabb",
		CreatedAt:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestAuthHandler_Signup(t *testing.T) {
	f := newHandlerFixture(t)
	user := testUser()

	f.auth.EXPECT().
		Signup(mock.Anything, &usecase.SignupInput{Email: "a@example.com", Password: "pw"}).
		Return(user, nil)
	f.sessions.EXPECT().
		Start(mock.Anything, user.ID, "handler-test", mock.AnythingOfType("string")).
		Return("token-1", &entity.Session{UserID: user.ID}, nil)

	rec := f.serve(jsonRequest(http.MethodPost, "/auth/signup", `{"email":"a@example.com","password":"pw"}`), f.handler.Signup)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":"0190c1a2-0000-7000-8000-000000000001","email":"a@example.com"}`, rec.Body.String())

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "sid", cookies[0].Name)
	assert.Equal(t, "token-1", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.True(t, cookies[0].Secure)
	assert.Equal(t, 3600, cookies[0].MaxAge)
}

func TestAuthHandler_SignupValidation(t *testing.T) {
	f := newHandlerFixture(t)

	rec := f.serve(jsonRequest(http.MethodPost, "/auth/signup", `{"email":"a@example.com"}`), f.handler.Signup)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "VALIDATION_FAILED", resp.Error.Code)
	assert.Equal(t, "password is required", resp.Error.Details)
}

func TestAuthHandler_SigninErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "user not found", err: domainerrors.ErrUserNotFound, wantStatus: http.StatusNotFound, wantCode: "USER_NOT_FOUND"},
		{name: "bad password", err: domainerrors.ErrInvalidCredentials, wantStatus: http.StatusBadRequest, wantCode: "INVALID_CREDENTIALS"},
		{name: "malformed hash", err: errors.Wrap(domainerrors.ErrMalformedStoredHash, "verify"), wantStatus: http.StatusInternalServerError, wantCode: "MALFORMED_STORED_HASH"},
		{name: "duplicate account", err: domainerrors.ErrDuplicateAccount.WrapMessage("a@example.com"), wantStatus: http.StatusInternalServerError, wantCode: "DUPLICATE_ACCOUNT"},
		{name: "unexpected", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantCode: "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHandlerFixture(t)
			f.auth.EXPECT().Signin(mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := f.serve(jsonRequest(http.MethodPost, "/auth/signin", `{"email":"a@example.com","password":"pw"}`), f.handler.Signin)

			require.Equal(t, tt.wantStatus, rec.Code)

			var resp response.Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantCode, resp.Error.Code)
			assert.NotContains(t, rec.Body.String(), "boom")
			assert.Empty(t, rec.Result().Cookies())
		})
	}
}

func TestAuthHandler_SigninSessionFailure(t *testing.T) {
	f := newHandlerFixture(t)
	user := testUser()

	f.auth.EXPECT().Signin(mock.Anything, mock.Anything).Return(user, nil)
	f.sessions.EXPECT().Start(mock.Anything, user.ID, mock.Anything, mock.Anything).
		Return("", nil, errors.New("store down"))

	rec := f.serve(jsonRequest(http.MethodPost, "/auth/signin", `{"email":"a@example.com","password":"pw"}`), f.handler.Signin)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Empty(t, rec.Result().Cookies())
}

func TestAuthHandler_Whoami(t *testing.T) {
	user := testUser()

	t.Run("anonymous", func(t *testing.T) {
		f := newHandlerFixture(t)

		rec := f.serve(httptest.NewRequest(http.MethodGet, "/auth/whoami", nil), f.handler.Whoami)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("signed in", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.auth.EXPECT().CurrentUser(mock.Anything, user.ID).Return(user, nil)

		req := httptest.NewRequest(http.MethodGet, "/auth/whoami", nil)
		req = req.WithContext(deliverycontext.WithUserID(context.Background(), user.ID))
		rec := f.serve(req, f.handler.Whoami)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"id":"0190c1a2-0000-7000-8000-000000000001","email":"a@example.com"}`, rec.Body.String())
		assert.NotContains(t, rec.Body.String(), user.PasswordHash)
	})

	t.Run("user vanished", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.auth.EXPECT().CurrentUser(mock.Anything, user.ID).Return(nil, domainerrors.ErrUserNotFound)

		req := httptest.NewRequest(http.MethodGet, "/auth/whoami", nil)
		req = req.WithContext(deliverycontext.WithUserID(context.Background(), user.ID))
		rec := f.serve(req, f.handler.Whoami)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Body.String())
	})
}

func TestAuthHandler_Signout(t *testing.T) {
	f := newHandlerFixture(t)
	f.sessions.EXPECT().End(mock.Anything, "token-1").Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/auth/signout", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: "token-1"})
	rec := f.serve(req, f.handler.Signout)

	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestAuthHandler_SignoutWithoutCookie(t *testing.T) {
	f := newHandlerFixture(t)
	f.sessions.EXPECT().End(mock.Anything, "").Return(nil)

	rec := f.serve(httptest.NewRequest(http.MethodPost, "/auth/signout", nil), f.handler.Signout)

	assert.Equal(t, http.StatusOK, rec.Code)
}
