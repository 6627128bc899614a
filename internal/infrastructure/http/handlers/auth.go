package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/readytocook/v1/internal/ports/inbound"
)

// AuthHandlers handles account and token endpoints
type AuthHandlers struct {
	authService inbound.AuthService
	logger      *zap.Logger
}

// NewAuthHandlers creates a new auth handlers instance
func NewAuthHandlers(authService inbound.AuthService, logger *zap.Logger) *AuthHandlers {
	return &AuthHandlers{
		authService: authService,
		logger:      logger.Named("auth-handlers"),
	}
}

type registerRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

type resetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

// Register handles POST /api/v1/auth/register
func (h *AuthHandlers) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	result, err := h.authService.Register(r.Context(), inbound.RegisterUserCommand{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, APIResponse{Success: true, Data: result})
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	result, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: result})
}

// ForgotPassword handles POST /api/v1/auth/forgot-password. The reply
// is identical whether or not the email is registered.
func (h *AuthHandlers) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req forgotPasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	token, err := h.authService.RequestPasswordReset(r.Context(), req.Email)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	if token != "" {
		// TODO: deliver the token by email once an SMTP sender is
		// configured. Until then it lands in the server log.
		h.logger.Info("password reset token issued",
			zap.String("email", req.Email),
			zap.String("token", token),
		)
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Message: "If the email is registered, a reset link has been sent",
	})
}

// ResetPassword handles POST /api/v1/auth/reset-password
func (h *AuthHandlers) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetPasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	if err := h.authService.ResetPassword(r.Context(), req.Token, req.NewPassword); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Message: "Password updated"})
}

// Refresh handles POST /api/v1/auth/refresh
func (h *AuthHandlers) Refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	result, err := h.authService.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: result})
}
