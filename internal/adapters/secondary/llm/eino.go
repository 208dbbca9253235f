package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/TolikMuradov/AstroCalendar/internal/domain"
	"github.com/TolikMuradov/AstroCalendar/internal/ports/service"
	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"golang.org/x/time/rate"
)

// EinoClient транспорт через eino ChatModel
type EinoClient struct {
	cfg     *Config
	model   model.BaseChatModel
	limiter *rate.Limiter
	log     *slog.Logger
}

var _ service.ILLMClient = (*EinoClient)(nil)

func NewEinoClient(ctx context.Context, cfg *Config, log *slog.Logger) (*EinoClient, error) {
	if cfg.APIKey == "" {
		return nil, errMissingAPIKey
	}
	chatModel, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		BaseURL:    cfg.BaseURL,
		APIKey:     cfg.APIKey,
		Model:      cfg.Model,
		HTTPClient: newHTTPClient(cfg),
	})
	if err != nil {
		return nil, fmt.Errorf("init eino chat model: %w", err)
	}
	return NewEinoClientWith(chatModel, cfg, log), nil
}

// NewEinoClientWith оборачивает готовую модель
func NewEinoClientWith(m model.BaseChatModel, cfg *Config, log *slog.Logger) *EinoClient {
	return &EinoClient{
		cfg:     cfg,
		model:   m,
		limiter: newLimiter(cfg.RPM, cfg.Burst),
		log:     log,
	}
}

func (c *EinoClient) Complete(ctx context.Context, req service.CompletionRequest) (string, error) {
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

	messages := []*schema.Message{
		schema.SystemMessage(req.System),
		schema.UserMessage(req.User),
	}
	resp, err := c.model.Generate(ctx, messages,
		model.WithTemperature(temperature),
		model.WithMaxTokens(maxTokens),
	)
	if err != nil {
		c.log.Debug("eino generate failed", "error", err, "model", c.cfg.Model)
		if isRateLimitMessage(err.Error()) {
			return "", domain.NewRateLimitedError(err)
		}
		return "", domain.WrapGenerationError(err)
	}
	if resp == nil || strings.TrimSpace(resp.Content) == "" {
		return "", domain.WrapGenerationError(errors.New("empty response from chat model"))
	}
	return resp.Content, nil
}

// rateLimitMessage код 429 отдельным числом, а не частью другого
var rateLimitMessage = regexp.MustCompile(`(?i)\b429\b|too many requests|resource_exhausted`)

func isRateLimitMessage(msg string) bool {
	return rateLimitMessage.MatchString(msg)
}

// New выбирает транспорт по Provider
func New(ctx context.Context, cfg *Config, log *slog.Logger) (service.ILLMClient, error) {
	switch cfg.Provider {
	case "", ProviderHTTP:
		return NewClient(cfg, log), nil
	case ProviderEino:
		return NewEinoClient(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}
