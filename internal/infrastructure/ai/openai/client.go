// Package openai provides OpenAI GPT integration for recipe generation
// and cooked-dish shelf-life estimation.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/readytocook/v1/internal/domain/dish"
	"github.com/readytocook/v1/internal/infrastructure/config"
	"github.com/readytocook/v1/internal/ports/outbound"
	"github.com/readytocook/v1/pkg/errors"
)

const defaultShelfLifeDays = 3

// Client implements the AIService interface using the OpenAI API.
type Client struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
	logger  *zap.Logger
}

// NewClient creates a new OpenAI client.
func NewClient(cfg config.AIConfig, logger *zap.Logger) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		model:   cfg.Model,
		client:  &http.Client{Timeout: timeout},
		logger:  logger.Named("openai"),
	}
}

// OpenAI API structures
type chatCompletionRequest struct {
	Model            string    `json:"model"`
	Messages         []message `json:"messages"`
	Temperature      float64   `json:"temperature"`
	TopP             float64   `json:"top_p,omitempty"`
	PresencePenalty  float64   `json:"presence_penalty,omitempty"`
	FrequencyPenalty float64   `json:"frequency_penalty,omitempty"`
	MaxTokens        int       `json:"max_tokens"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []choice `json:"choices"`
	Usage   usage    `json:"usage"`
}

type choice struct {
	Message      message `json:"message"`
	FinishReason string  `json:"finish_reason"`
}

type usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// recipeEnvelope is the wire shape the prompt demands from the model.
// Either Error or Recipe is set, never both.
type recipeEnvelope struct {
	Error  string                 `json:"error"`
	Recipe []dish.GeneratedRecipe `json:"recipe"`
}

// GenerateRecipes asks the model for recipe proposals. Regeneration
// raises the sampling parameters so a second ask lands on a genuinely
// different dish.
func (c *Client) GenerateRecipes(ctx context.Context, req outbound.GenerationRequest) ([]dish.GeneratedRecipe, error) {
	reqBody := chatCompletionRequest{
		Model: c.model,
		Messages: []message{
			{Role: "system", Content: recipeSystemPrompt},
			{Role: "user", Content: buildRecipePrompt(req)},
		},
		Temperature:      0.6,
		TopP:             0.95,
		PresencePenalty:  0.2,
		FrequencyPenalty: 0.2,
		MaxTokens:        700,
	}
	if req.Regenerate {
		reqBody.Temperature = 0.75
		reqBody.PresencePenalty = 0.8
		reqBody.FrequencyPenalty = 0.6
	}

	content, err := c.chatCompletion(ctx, reqBody)
	if err != nil {
		return nil, errors.NewExternalServiceError("openai", err)
	}

	return c.parseRecipes(content)
}

// parseRecipes extracts the JSON envelope from a model reply. The model
// occasionally wraps the JSON in prose, so parsing starts at the first
// opening brace and runs to the end of the reply.
func (c *Client) parseRecipes(content string) ([]dish.GeneratedRecipe, error) {
	content = strings.TrimSpace(content)

	start := strings.Index(content, "{")
	if start == -1 {
		c.logger.Error("no JSON found in model reply", zap.String("content", content))
		return nil, errors.NewMalformedAIResponseError(fmt.Errorf("no JSON object in reply"))
	}
	jsonStr := content[start:]

	var envelope recipeEnvelope
	if err := json.Unmarshal([]byte(jsonStr), &envelope); err != nil {
		c.logger.Error("malformed JSON in model reply", zap.Error(err), zap.String("json", jsonStr))
		return nil, errors.NewMalformedAIResponseError(err)
	}

	// The model reports category conflicts through an error payload.
	// Its message is shown to the user verbatim.
	if envelope.Error != "" {
		return nil, errors.NewRecipeGenerationError(envelope.Error)
	}

	if len(envelope.Recipe) == 0 {
		return nil, errors.NewMalformedAIResponseError(fmt.Errorf("reply carries neither recipes nor an error"))
	}

	recipes := make([]dish.GeneratedRecipe, 0, len(envelope.Recipe))
	for i := range envelope.Recipe {
		r := envelope.Recipe[i]
		if err := r.Normalize(); err != nil {
			return nil, errors.NewMalformedAIResponseError(err)
		}
		recipes = append(recipes, r)
	}
	return recipes, nil
}

// EstimateShelfLife asks how many days a cooked dish keeps refrigerated.
// Any failure yields the conservative default of 3 days.
func (c *Client) EstimateShelfLife(ctx context.Context, ingredientNames []string) int {
	reqBody := chatCompletionRequest{
		Model: c.model,
		Messages: []message{
			{Role: "system", Content: shelfLifeSystemPrompt},
			{Role: "user", Content: buildShelfLifePrompt(ingredientNames)},
		},
		Temperature: 0.3,
		MaxTokens:   10,
	}

	content, err := c.chatCompletion(ctx, reqBody)
	if err != nil {
		c.logger.Warn("shelf-life estimation failed, using default",
			zap.Error(err),
			zap.Int("default_days", defaultShelfLifeDays))
		return defaultShelfLifeDays
	}

	days, err := strconv.Atoi(strings.TrimSpace(content))
	if err != nil || days < 1 {
		c.logger.Warn("unparseable shelf-life reply, using default",
			zap.String("content", content),
			zap.Int("default_days", defaultShelfLifeDays))
		return defaultShelfLifeDays
	}
	return days
}

// ProxyChatCompletion forwards a client-supplied chat-completion payload
// to the provider under the server-held key. The provider's status code
// and body pass through untouched so proxy callers see exactly what the
// provider answered.
func (c *Client) ProxyChatCompletion(ctx context.Context, payload []byte) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read response: %w", err)
	}
	return resp.StatusCode, body, nil
}

// chatCompletion makes the actual API call.
func (c *Client) chatCompletion(ctx context.Context, reqBody chatCompletionRequest) (string, error) {
	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API error %d: %s", resp.StatusCode, string(body))
	}

	var chatResp chatCompletionResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("no response choices returned")
	}

	c.logger.Debug("chat completion succeeded",
		zap.Int("prompt_tokens", chatResp.Usage.PromptTokens),
		zap.Int("completion_tokens", chatResp.Usage.CompletionTokens),
	)

	return chatResp.Choices[0].Message.Content, nil
}
