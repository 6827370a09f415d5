// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "authgate/internal/delivery/context"
	"authgate/internal/domain/entity"
	domainerrors "authgate/internal/domain/errors"
	"authgate/internal/domain/repository"
	"authgate/internal/domain/service"
	"authgate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	metrics   service.AuthMetrics
	logger    *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Metrics   service.AuthMetrics `optional:"true"`
	Logger    *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	metrics := params.Metrics
	if metrics == nil {
		metrics = nopMetrics{}
	}

	return &authService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		metrics:   metrics,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup creates an account. The lookup and insert share one transaction, and the
// store's unique constraint on email settles concurrent signups for the same address.
func (srv *authService) Signup(ctx context.Context, input *usecase.SignupInput) (*entity.User, error) {
	srv.log(ctx).Info("Starting signup", slog.String("email", input.Email))

	var created *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		// 1. Reject emails that already have an account
		users, err := userRepo.Find(ctx, input.Email)
		if err != nil {
			return errors.Wrap(err, "failed to find users by email")
		}
		if len(users) > 0 {
			return domainerrors.ErrEmailInUse.WrapMessage("account already exists for email")
		}

		// 2. Hash the password
		hash, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return errors.Wrapf(domainerrors.ErrPasswordHashFailed, "hash password: %v", err)
		}

		// 3. Persist; losing a race to a concurrent signup surfaces as ErrEmailTaken
		user, err := userRepo.Create(ctx, input.Email, hash)
		if errors.Is(err, repository.ErrEmailTaken) {
			return domainerrors.ErrEmailInUse.WrapMessage("account created concurrently for email")
		}
		if err != nil {
			return errors.Wrap(err, "failed to create user")
		}

		created = user

		return nil
	})
	srv.metrics.RecordSignup(err)

	if err != nil {
		srv.logFailure(ctx, "Signup failed", err, slog.String("email", input.Email))

		return nil, errors.Wrap(err, "failed to sign up")
	}
	srv.log(ctx).Info("Signup completed", slog.Any("user_id", created.ID))

	return created, nil
}

// Signin checks the password against the single account registered for the email.
func (srv *authService) Signin(ctx context.Context, input *usecase.SigninInput) (*entity.User, error) {
	user, err := srv.signin(ctx, input)
	srv.metrics.RecordSignin(err)

	if err != nil {
		srv.logFailure(ctx, "Signin failed", err, slog.String("email", input.Email))

		return nil, errors.Wrap(err, "failed to sign in")
	}
	srv.log(ctx).Info("Signin succeeded", slog.Any("user_id", user.ID))

	return user, nil
}

func (srv *authService) signin(ctx context.Context, input *usecase.SigninInput) (*entity.User, error) {
	users, err := srv.userRepo.Find(ctx, input.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find users by email")
	}

	switch len(users) {
	case 0:
		return nil, domainerrors.ErrUserNotFound.WrapMessage("no account for email")
	case 1:
	default:
		return nil, errors.Wrapf(domainerrors.ErrDuplicateAccount, "%d accounts share one email", len(users))
	}

	user := users[0]
	ok, err := srv.hasher.Verify(input.Password, user.PasswordHash)
	if err != nil {
		if errors.Is(err, domainerrors.ErrMalformedStoredHash) {
			return nil, errors.Wrapf(err, "stored hash for user %s", user.ID)
		}

		return nil, errors.Wrap(err, "failed to verify password")
	}
	if !ok {
		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("password does not match")
	}

	return user, nil
}

// CurrentUser loads the account behind a resolved session.
func (srv *authService) CurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("session user no longer exists")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// logFailure logs client errors at warn level and everything else at error level.
func (srv *authService) logFailure(ctx context.Context, msg string, err error, attrs ...slog.Attr) {
	level := slog.LevelError
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPCode() < 500 {
		level = slog.LevelWarn
	}

	attrs = append(attrs, slog.Any("error", err))
	srv.log(ctx).LogAttrs(ctx, level, msg, attrs...)
}

type nopMetrics struct{}

func (nopMetrics) RecordSignup(error)        {}
func (nopMetrics) RecordSignin(error)        {}
func (nopMetrics) RecordSessionsSwept(int64) {}
