// Package user provides account registration, login and token refresh.
package user

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/readytocook/v1/internal/domain/user"
	"github.com/readytocook/v1/internal/infrastructure/security"
	"github.com/readytocook/v1/internal/ports/inbound"
	"github.com/readytocook/v1/internal/ports/outbound"
	"github.com/readytocook/v1/pkg/errors"
)

// Service implements the authentication use cases
type Service struct {
	userRepo outbound.UserRepository
	tokens   *security.TokenService
	validate *validator.Validate
	logger   *zap.Logger
}

// NewService creates a new auth service
func NewService(userRepo outbound.UserRepository, tokens *security.TokenService, logger *zap.Logger) inbound.AuthService {
	return &Service{
		userRepo: userRepo,
		tokens:   tokens,
		validate: validator.New(),
		logger:   logger.Named("auth-service"),
	}
}

// Register creates an account and signs the user in.
func (s *Service) Register(ctx context.Context, cmd inbound.RegisterUserCommand) (*inbound.AuthResultDTO, error) {
	if err := s.validate.Struct(cmd); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	taken, err := s.userRepo.Exists(ctx, cmd.Email)
	if err != nil {
		return nil, errors.NewDatabaseError("check email", err)
	}
	if taken {
		return nil, errors.NewEmailAlreadyExistsError(cmd.Email)
	}

	account, err := user.NewUser(cmd.Email, cmd.Name, cmd.Password)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.userRepo.Create(ctx, account); err != nil {
		if err == user.ErrEmailTaken {
			return nil, errors.NewEmailAlreadyExistsError(cmd.Email)
		}
		return nil, errors.NewDatabaseError("create user", err)
	}

	s.logger.Info("user registered",
		zap.String("user_id", account.ID().String()),
		zap.String("email", account.Email()),
	)
	return s.issueTokens(account)
}

// Login verifies credentials and returns a fresh token pair.
func (s *Service) Login(ctx context.Context, email, password string) (*inbound.AuthResultDTO, error) {
	account, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if err == user.ErrUserNotFound {
			// Same response as a wrong password so the endpoint
			// does not reveal which emails are registered.
			return nil, errors.NewInvalidCredentialsError()
		}
		return nil, errors.NewDatabaseError("find user", err)
	}

	if err := account.CheckPassword(password); err != nil {
		return nil, errors.NewInvalidCredentialsError()
	}
	if !account.IsActive() {
		return nil, errors.NewUnauthorizedError(user.ErrInactiveAccount.Error())
	}

	account.RecordLogin()
	if err := s.userRepo.Update(ctx, account); err != nil {
		s.logger.Warn("failed to record login time", zap.Error(err))
	}

	return s.issueTokens(account)
}

// Refresh exchanges a valid refresh token for a new token pair.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*inbound.AuthResultDTO, error) {
	claims, err := s.tokens.ValidateToken(refreshToken, security.RefreshToken)
	if err != nil {
		return nil, errors.NewUnauthorizedError("invalid refresh token")
	}

	userID, err := claims.ParsedUserID()
	if err != nil {
		return nil, errors.NewUnauthorizedError("invalid refresh token")
	}

	account, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if err == user.ErrUserNotFound {
			return nil, errors.NewUnauthorizedError("invalid refresh token")
		}
		return nil, errors.NewDatabaseError("find user", err)
	}
	if !account.IsActive() {
		return nil, errors.NewUnauthorizedError(user.ErrInactiveAccount.Error())
	}

	return s.issueTokens(account)
}

// RequestPasswordReset issues a reset token for a registered email.
// Unknown emails return an empty token so the caller's reply looks the
// same either way.
func (s *Service) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	account, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if err == user.ErrUserNotFound {
			return "", nil
		}
		return "", errors.NewDatabaseError("find user", err)
	}
	if !account.IsActive() {
		return "", nil
	}

	token, err := s.tokens.GenerateResetToken(account.ID(), account.Email())
	if err != nil {
		return "", errors.NewInternalError("failed to issue reset token")
	}

	s.logger.Info("password reset requested",
		zap.String("user_id", account.ID().String()),
	)
	return token, nil
}

// ResetPassword sets a new password for the account named by a valid
// reset token.
func (s *Service) ResetPassword(ctx context.Context, token, newPassword string) error {
	claims, err := s.tokens.ValidateToken(token, security.ResetToken)
	if err != nil {
		return errors.NewUnauthorizedError("invalid reset token")
	}

	userID, err := claims.ParsedUserID()
	if err != nil {
		return errors.NewUnauthorizedError("invalid reset token")
	}

	account, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if err == user.ErrUserNotFound {
			return errors.NewUnauthorizedError("invalid reset token")
		}
		return errors.NewDatabaseError("find user", err)
	}

	if err := account.UpdatePassword(newPassword); err != nil {
		return errors.NewValidationError(err.Error())
	}
	if err := s.userRepo.Update(ctx, account); err != nil {
		return errors.NewDatabaseError("update user", err)
	}

	s.logger.Info("password reset completed",
		zap.String("user_id", account.ID().String()),
	)
	return nil
}

func (s *Service) issueTokens(account *user.User) (*inbound.AuthResultDTO, error) {
	access, err := s.tokens.GenerateAccessToken(account.ID(), account.Email())
	if err != nil {
		return nil, errors.NewInternalError("failed to issue tokens")
	}
	refresh, err := s.tokens.GenerateRefreshToken(account.ID(), account.Email())
	if err != nil {
		return nil, errors.NewInternalError("failed to issue tokens")
	}

	return &inbound.AuthResultDTO{
		UserID:       account.ID(),
		Email:        account.Email(),
		Name:         account.Name(),
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}
