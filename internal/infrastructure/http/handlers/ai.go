package handlers

import (
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/readytocook/v1/internal/ports/outbound"
)

const maxProxyBodyBytes = 1 << 20

// AIHandlers exposes the raw chat-completion proxy. The provider key
// never leaves the server; clients send the completion payload and get
// the provider's answer back verbatim.
type AIHandlers struct {
	ai     outbound.AIService
	logger *zap.Logger
}

func NewAIHandlers(ai outbound.AIService, logger *zap.Logger) *AIHandlers {
	return &AIHandlers{ai: ai, logger: logger.Named("ai-handlers")}
}

// Proxy handles POST /api/openai.
func (h *AIHandlers) Proxy(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(io.LimitReader(r.Body, maxProxyBodyBytes))
	if err != nil {
		h.writeProxyError(w, http.StatusBadRequest, "unable to read request body")
		return
	}

	status, body, err := h.ai.ProxyChatCompletion(r.Context(), payload)
	if err != nil {
		h.logger.Error("chat completion proxy failed", zap.Error(err))
		h.writeProxyError(w, http.StatusInternalServerError, "Error al generar la receta")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		h.logger.Warn("failed to write proxy response", zap.Error(err))
	}
}

func (h *AIHandlers) writeProxyError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write([]byte(fmt.Sprintf(`{"error":%q}`, msg))); err != nil {
		h.logger.Warn("failed to write proxy error", zap.Error(err))
	}
}
