package llm

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/TolikMuradov/AstroCalendar/internal/domain"
	"github.com/TolikMuradov/AstroCalendar/internal/ports/service"
	"golang.org/x/time/rate"
)

const chatCompletionsPath = "chat/completions"

var errMissingAPIKey = errors.New("llm api key is not configured")

// truncateString обрезает строку до указанной длины
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

// Client OpenAI-совместимый chat completions клиент
type Client struct {
	cfg        *Config
	HTTPClient *http.Client
	limiter    *rate.Limiter
	Log        *slog.Logger
}

var _ service.ILLMClient = (*Client)(nil)

func NewClient(cfg *Config, log *slog.Logger) *Client {
	return &Client{
		cfg:        cfg,
		HTTPClient: newHTTPClient(cfg),
		limiter:    newLimiter(cfg.RPM, cfg.Burst),
		Log:        log,
	}
}

func newHTTPClient(cfg *Config) *http.Client {
	transport := &http.Transport{}
	if cfg.ShouldSkipSSL() {
		transport.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true,
		}
	}
	return &http.Client{
		Transport: transport,
		Timeout:   cfg.RequestTimeout(),
	}
}

func (c *Client) buildURL() string {
	return strings.TrimSuffix(c.cfg.BaseURL, "/") + "/" + chatCompletionsPath
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
}

// Complete отправляет запрос с response_format=json_object и возвращает текст первого ответа
func (c *Client) Complete(ctx context.Context, req service.CompletionRequest) (string, error) {
	if c.cfg.APIKey == "" {
		return "", domain.WrapGenerationError(errMissingAPIKey)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return "", domain.WrapGenerationError(fmt.Errorf("rate limiter: %w", err))
	}

	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = c.cfg.MaxTokens
	}
	temperature := req.Temperature
	if temperature <= 0 {
		temperature = c.cfg.Temperature
	}

	payload := chatRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: req.System},
			{Role: "user", Content: req.User},
		},
		Temperature:    temperature,
		MaxTokens:      maxTokens,
		ResponseFormat: &responseFormat{Type: "json_object"},
	}
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return "", domain.WrapGenerationError(fmt.Errorf("marshal request: %w", err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.buildURL(), bytes.NewBuffer(jsonData))
	if err != nil {
		return "", domain.WrapGenerationError(fmt.Errorf("build request: %w", err))
	}
	c.setHeaders(httpReq)

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return "", domain.WrapGenerationError(fmt.Errorf("do request: %w", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", domain.WrapGenerationError(fmt.Errorf("read response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.Log.Debug("llm API returned non-2xx status",
			"status_code", resp.StatusCode,
			"body_preview", truncateString(string(body), 200),
		)
		return "", statusError(resp.StatusCode, body)
	}

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		c.Log.Debug("failed to unmarshal llm API response",
			"error", err,
			"body_preview", truncateString(string(body), 200),
		)
		return "", domain.WrapGenerationError(fmt.Errorf("llm API unmarshal failed: %w", err))
	}
	if len(chatResp.Choices) == 0 || strings.TrimSpace(chatResp.Choices[0].Message.Content) == "" {
		return "", domain.WrapGenerationError(errors.New("empty response from llm API"))
	}

	return chatResp.Choices[0].Message.Content, nil
}

// statusError 429 и сигнал исчерпанной квоты - RateLimited, остальное - общая неудача
func statusError(status int, body []byte) error {
	message := truncateString(string(body), 500)
	var apiErr apiErrorResponse
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Message != "" {
		message = apiErr.Error.Message
	}

	err := fmt.Errorf("llm API error [status=%d]: %s", status, message)
	if status == http.StatusTooManyRequests || apiErr.Error.Status == "RESOURCE_EXHAUSTED" {
		return domain.NewRateLimitedError(err)
	}
	return domain.WrapGenerationError(err)
}
