// Package handlers provides HTTP handlers for the REST API
package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/readytocook/v1/internal/infrastructure/http/middleware"
	"github.com/readytocook/v1/pkg/errors"
)

// APIResponse is the envelope every endpoint answers with
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, logger *zap.Logger, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, r *http.Request, logger *zap.Logger, err error) {
	appErr, ok := err.(*errors.AppError)
	if !ok {
		appErr = errors.NewInternalError("an unexpected error occurred").WithCause(err)
	}

	if appErr.StatusCode() >= http.StatusInternalServerError {
		logger.Error("request failed",
			zap.String("path", r.URL.Path),
			zap.Error(appErr),
		)
	}

	requestID := chimiddleware.GetReqID(r.Context())
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.StatusCode())
	if encErr := json.NewEncoder(w).Encode(errors.ToErrorResponse(appErr, requestID)); encErr != nil {
		logger.Error("failed to encode error response", zap.Error(encErr))
	}
}

func decodeJSON(r *http.Request, dest interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		return errors.NewBadRequestError("invalid JSON body")
	}
	return nil
}

func authenticatedUser(w http.ResponseWriter, r *http.Request, logger *zap.Logger) (uuid.UUID, bool) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, logger, errors.NewUnauthorizedError("authentication required"))
		return uuid.Nil, false
	}
	return userID, true
}

func parseFloat(raw string) (float64, error) {
	return strconv.ParseFloat(raw, 64)
}

func pathUUID(w http.ResponseWriter, r *http.Request, logger *zap.Logger, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, param))
	if err != nil {
		writeError(w, r, logger, errors.NewBadRequestError("invalid "+param))
		return uuid.Nil, false
	}
	return id, true
}
