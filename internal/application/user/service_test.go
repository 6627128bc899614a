package user

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	domainuser "github.com/readytocook/v1/internal/domain/user"
	"github.com/readytocook/v1/internal/infrastructure/config"
	"github.com/readytocook/v1/internal/infrastructure/security"
	"github.com/readytocook/v1/internal/ports/inbound"
	"github.com/readytocook/v1/pkg/errors"
)

type fakeUserRepo struct {
	byID    map[uuid.UUID]*domainuser.User
	byEmail map[string]*domainuser.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    make(map[uuid.UUID]*domainuser.User),
		byEmail: make(map[string]*domainuser.User),
	}
}

func (r *fakeUserRepo) Create(_ context.Context, u *domainuser.User) error {
	if _, ok := r.byEmail[strings.ToLower(u.Email())]; ok {
		return domainuser.ErrEmailTaken
	}
	r.byID[u.ID()] = u
	r.byEmail[strings.ToLower(u.Email())] = u
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *domainuser.User) error {
	r.byID[u.ID()] = u
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*domainuser.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domainuser.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*domainuser.User, error) {
	u, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, domainuser.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) Exists(_ context.Context, email string) (bool, error) {
	_, ok := r.byEmail[strings.ToLower(email)]
	return ok, nil
}

func newAuthService(repo *fakeUserRepo) inbound.AuthService {
	tokens := security.NewTokenService(&config.Config{
		Auth: config.AuthConfig{
			JWTSecret:         "test-secret-key-for-testing-only-32-bytes",
			JWTExpiration:     time.Hour,
			RefreshExpiration: 24 * time.Hour,
		},
	}, zap.NewNop())
	return NewService(repo, tokens, zap.NewNop())
}

func TestRegister(t *testing.T) {
	t.Run("new account gets a token pair", func(t *testing.T) {
		svc := newAuthService(newFakeUserRepo())

		result, err := svc.Register(context.Background(), inbound.RegisterUserCommand{
			Email:    "ana@example.com",
			Name:     "Ana",
			Password: "secret-password",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, result.AccessToken)
		assert.NotEmpty(t, result.RefreshToken)
		assert.Equal(t, "ana@example.com", result.Email)
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := newAuthService(repo)
		cmd := inbound.RegisterUserCommand{
			Email:    "ana@example.com",
			Name:     "Ana",
			Password: "secret-password",
		}

		_, err := svc.Register(context.Background(), cmd)
		require.NoError(t, err)

		_, err = svc.Register(context.Background(), cmd)
		appErr, ok := err.(*errors.AppError)
		require.True(t, ok)
		assert.Equal(t, errors.CodeEmailAlreadyExists, appErr.Code)
	})
}

func TestLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthService(repo)

	_, err := svc.Register(context.Background(), inbound.RegisterUserCommand{
		Email:    "ana@example.com",
		Name:     "Ana",
		Password: "secret-password",
	})
	require.NoError(t, err)

	t.Run("valid credentials sign in", func(t *testing.T) {
		result, err := svc.Login(context.Background(), "ana@example.com", "secret-password")

		require.NoError(t, err)
		assert.NotEmpty(t, result.AccessToken)
	})

	t.Run("wrong password and unknown email answer alike", func(t *testing.T) {
		_, errWrongPass := svc.Login(context.Background(), "ana@example.com", "not-it")
		_, errNoUser := svc.Login(context.Background(), "nadie@example.com", "whatever")

		for _, err := range []error{errWrongPass, errNoUser} {
			appErr, ok := err.(*errors.AppError)
			require.True(t, ok)
			assert.Equal(t, errors.CodeInvalidCredentials, appErr.Code)
		}
	})

	t.Run("deactivated account cannot sign in", func(t *testing.T) {
		account, err := repo.FindByEmail(context.Background(), "ana@example.com")
		require.NoError(t, err)
		account.Deactivate()

		_, err = svc.Login(context.Background(), "ana@example.com", "secret-password")
		assert.Error(t, err)
	})
}

func TestRefresh(t *testing.T) {
	svc := newAuthService(newFakeUserRepo())

	result, err := svc.Register(context.Background(), inbound.RegisterUserCommand{
		Email:    "ana@example.com",
		Name:     "Ana",
		Password: "secret-password",
	})
	require.NoError(t, err)

	t.Run("refresh token yields a new pair", func(t *testing.T) {
		renewed, err := svc.Refresh(context.Background(), result.RefreshToken)

		require.NoError(t, err)
		assert.NotEmpty(t, renewed.AccessToken)
		assert.Equal(t, result.UserID, renewed.UserID)
	})

	t.Run("access token is not accepted as refresh", func(t *testing.T) {
		_, err := svc.Refresh(context.Background(), result.AccessToken)
		assert.Error(t, err)
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		_, err := svc.Refresh(context.Background(), "not-a-token")
		assert.Error(t, err)
	})
}

func TestPasswordReset(t *testing.T) {
	register := func(t *testing.T, svc inbound.AuthService) *inbound.AuthResultDTO {
		t.Helper()
		result, err := svc.Register(context.Background(), inbound.RegisterUserCommand{
			Email:    "ana@example.com",
			Name:     "Ana",
			Password: "old-password-123",
		})
		require.NoError(t, err)
		return result
	}

	t.Run("reset token lets the user set a new password", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := newAuthService(repo)
		register(t, svc)

		token, err := svc.RequestPasswordReset(context.Background(), "ana@example.com")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		require.NoError(t, svc.ResetPassword(context.Background(), token, "new-password-123"))

		_, err = svc.Login(context.Background(), "ana@example.com", "old-password-123")
		assert.Equal(t, errors.CodeInvalidCredentials, errors.GetCode(err))

		result, err := svc.Login(context.Background(), "ana@example.com", "new-password-123")
		require.NoError(t, err)
		assert.Equal(t, "ana@example.com", result.Email)
	})

	t.Run("unknown email yields no token and no error", func(t *testing.T) {
		svc := newAuthService(newFakeUserRepo())

		token, err := svc.RequestPasswordReset(context.Background(), "nadie@example.com")
		require.NoError(t, err)
		assert.Empty(t, token)
	})

	t.Run("access token is not accepted as a reset token", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := newAuthService(repo)
		result := register(t, svc)

		err := svc.ResetPassword(context.Background(), result.AccessToken, "new-password-123")
		assert.Equal(t, errors.CodeUnauthorized, errors.GetCode(err))
	})

	t.Run("too-short replacement password is rejected", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := newAuthService(repo)
		register(t, svc)

		token, err := svc.RequestPasswordReset(context.Background(), "ana@example.com")
		require.NoError(t, err)

		err = svc.ResetPassword(context.Background(), token, "short")
		assert.Equal(t, errors.CodeValidationFailed, errors.GetCode(err))
	})
}
