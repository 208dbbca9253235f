package generator

import (
	"context"
	"sync"

	"github.com/TolikMuradov/AstroCalendar/internal/ports/service"
)

var _ service.ILLMClient = &llmClientMock{}

type llmClientMock struct {
	CompleteFunc func(ctx context.Context, req service.CompletionRequest) (string, error)

	calls struct {
		Complete []struct {
			Req service.CompletionRequest
		}
	}
	lockComplete sync.RWMutex
}

func (mock *llmClientMock) Complete(ctx context.Context, req service.CompletionRequest) (string, error) {
	if mock.CompleteFunc == nil {
		panic("llmClientMock.CompleteFunc: method is nil but ILLMClient.Complete was just called")
	}
	mock.lockComplete.Lock()
	mock.calls.Complete = append(mock.calls.Complete, struct {
		Req service.CompletionRequest
	}{Req: req})
	mock.lockComplete.Unlock()
	return mock.CompleteFunc(ctx, req)
}

func (mock *llmClientMock) CompleteCalls() []struct {
	Req service.CompletionRequest
} {
	mock.lockComplete.RLock()
	defer mock.lockComplete.RUnlock()
	return mock.calls.Complete
}

func respondWith(content string) *llmClientMock {
	return &llmClientMock{
		CompleteFunc: func(ctx context.Context, req service.CompletionRequest) (string, error) {
			return content, nil
		},
	}
}
