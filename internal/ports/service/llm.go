package service

import "context"

// CompletionRequest запрос к языковой модели, ответ ожидается JSON-объектом
type CompletionRequest struct {
	System      string
	User        string
	MaxTokens   int
	Temperature float32
}

// ILLMClient транспорт до языковой модели
type ILLMClient interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}
