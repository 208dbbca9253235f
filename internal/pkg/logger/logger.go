package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

type Config struct {
	Encoding  string `envconfig:"ENCODING" default:"console"`
	Level     string `envconfig:"LEVEL" default:"info"`
	AddSource bool   `envconfig:"ADD_SOURCE" default:"false"`
}

// New логгер приложения; json пишет в stdout, console в stderr.
// Неверная конфигурация - паника, логгер создаётся до всего остального
func New(app string, cfg *Config) *slog.Logger {
	var w io.Writer = os.Stderr
	if cfg != nil && cfg.Encoding == "json" {
		w = os.Stdout
	}

	handler, err := NewHandler(w, cfg)
	if err != nil {
		panic(fmt.Errorf("invalid logger config: %w", err))
	}

	return slog.New(handler).With(
		"app", app,
	)
}

// NewHandler собирает обработчик по конфигурации и пишет в w
func NewHandler(w io.Writer, cfg *Config) (slog.Handler, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	encoding := cfg.Encoding
	if encoding == "" {
		encoding = "console"
	}

	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: cfg.AddSource,
	}

	switch encoding {
	case "json":
		return NewContextHandler(slog.NewJSONHandler(w, opts)), nil
	case "console":
		return NewContextHandler(slog.NewTextHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("encoding %s is not supported", encoding)
	}
}

// ParseLevel парсит строковый уровень в slog.Level, пустая строка - info
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("level %s is not supported", level)
	}
}

type requestIDKey struct{}

// WithRequestID кладёт id запроса в контекст, логгер добавит его к записям
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func RequestID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey{}).(string)
	return id, ok && id != ""
}

// ContextHandler добавляет к записи атрибуты из контекста
type ContextHandler struct {
	handler slog.Handler
}

func NewContextHandler(h slog.Handler) *ContextHandler {
	return &ContextHandler{handler: h}
}

func (h *ContextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

func (h *ContextHandler) Handle(ctx context.Context, record slog.Record) error {
	if ctx != nil {
		if id, ok := RequestID(ctx); ok {
			record.AddAttrs(slog.String("request_id", id))
		}
	}
	return h.handler.Handle(ctx, record)
}

func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ContextHandler{
		handler: h.handler.WithAttrs(attrs),
	}
}

func (h *ContextHandler) WithGroup(name string) slog.Handler {
	return &ContextHandler{
		handler: h.handler.WithGroup(name),
	}
}

// SetDefault устанавливает логгер по умолчанию
func SetDefault(logger *slog.Logger) {
	slog.SetDefault(logger)
}
