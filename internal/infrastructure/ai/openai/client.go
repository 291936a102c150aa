// Package openai implements the outbound AI service port against the
// OpenAI chat-completions API.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/wellplate/v1/internal/infrastructure/config"
	"github.com/wellplate/v1/internal/ports/outbound"
)

// System personas per completion kind. The diet persona is a clinical
// nutritionist; the meal-plan persona is a chef who must emit complete
// JSON.
const (
	dietPersona = "You are an expert clinical nutritionist and medical diet specialist with deep knowledge of therapeutic diets for various health conditions (PCOS, diabetes, thyroid disorders, digestive issues, etc.). Your recommendations should be evidence-based, medically sound, and prioritize healing and disease management over personal preferences. Always respond in valid JSON format."

	mealPersona = "You are an expert chef and nutritionist specializing in creating healthy, therapeutic recipes. Generate meal recommendations that align with specific diet plans and health conditions. CRITICAL: Always respond with COMPLETE and valid JSON format. Ensure all JSON objects are properly closed."
)

// Client calls the chat-completions endpoint. One synchronous request
// per completion, no retries: the caller decides whether a failure is
// fatal or falls back.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	cfg        config.AIConfig
	logger     *zap.Logger
}

var _ outbound.AIService = (*Client)(nil)

// NewClient creates an OpenAI client from configuration.
func NewClient(cfg *config.Config, logger *zap.Logger) *Client {
	var limiter *rate.Limiter
	if cfg.RateLimit.Enable {
		limiter = rate.NewLimiter(
			rate.Limit(float64(cfg.RateLimit.RequestsPerMin)/60.0),
			cfg.RateLimit.BurstSize)
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.AI.TimeoutSeconds) * time.Second,
		},
		limiter: limiter,
		cfg:     cfg.AI,
		logger:  logger,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Complete sends one chat completion and returns the raw text body.
func (c *Client) Complete(ctx context.Context, kind outbound.CompletionKind, prompt string) (string, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("openai: rate limit wait: %w", err)
		}
	}

	persona := dietPersona
	maxTokens := c.cfg.DietMaxTokens
	if kind == outbound.CompletionMealPlan {
		persona = mealPersona
		maxTokens = c.cfg.MealMaxTokens
	}

	body, err := json.Marshal(chatRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: persona},
			{Role: "user", Content: prompt},
		},
		Temperature: c.cfg.Temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("openai: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.APIURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("openai: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("openai: request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("openai: read response: %w", err)
	}

	c.logger.Debug("completion finished",
		zap.String("kind", string(kind)),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("openai: decode response (status %d): %w", resp.StatusCode, err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("openai: api error (status %d): %s", resp.StatusCode, parsed.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("openai: unexpected status %d", resp.StatusCode)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("openai: empty choices")
	}
	return parsed.Choices[0].Message.Content, nil
}
