// Package security provides JWT token issuance and validation.
package security

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/readytocook/v1/internal/infrastructure/config"
)

// TokenType represents different types of JWT tokens
type TokenType string

const (
	AccessToken  TokenType = "access"
	RefreshToken TokenType = "refresh"
	ResetToken   TokenType = "reset"
)

const resetTokenLifetime = time.Hour

// Claims represents JWT claims structure
type Claims struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	TokenType TokenType `json:"token_type"`
	jwt.RegisteredClaims
}

// TokenService issues and validates JWT tokens
type TokenService struct {
	config    *config.Config
	logger    *zap.Logger
	jwtSecret []byte
}

// NewTokenService creates a new token service
func NewTokenService(cfg *config.Config, logger *zap.Logger) *TokenService {
	return &TokenService{
		config:    cfg,
		logger:    logger.Named("security"),
		jwtSecret: []byte(cfg.Auth.JWTSecret),
	}
}

// GenerateAccessToken creates a new access token
func (s *TokenService) GenerateAccessToken(userID uuid.UUID, email string) (string, error) {
	return s.generate(userID, email, AccessToken, s.config.Auth.JWTExpiration)
}

// GenerateRefreshToken creates a new refresh token
func (s *TokenService) GenerateRefreshToken(userID uuid.UUID, email string) (string, error) {
	return s.generate(userID, email, RefreshToken, s.config.Auth.RefreshExpiration)
}

// GenerateResetToken creates a short-lived password-reset token
func (s *TokenService) GenerateResetToken(userID uuid.UUID, email string) (string, error) {
	return s.generate(userID, email, ResetToken, resetTokenLifetime)
}

func (s *TokenService) generate(userID uuid.UUID, email string, tokenType TokenType, lifetime time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:    userID.String(),
		Email:     email,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "readytocook",
			Subject:   userID.String(),
			Audience:  []string{"readytocook-api"},
			ExpiresAt: jwt.NewNumericDate(now.Add(lifetime)),
			NotBefore: jwt.NewNumericDate(now),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken validates and parses a JWT token
func (s *TokenService) ValidateToken(tokenString string, expectedType TokenType) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	if claims.TokenType != expectedType {
		return nil, fmt.Errorf("invalid token type: expected %s, got %s", expectedType, claims.TokenType)
	}

	return claims, nil
}

// UserID extracts the subject as a UUID.
func (c *Claims) ParsedUserID() (uuid.UUID, error) {
	return uuid.Parse(c.UserID)
}
