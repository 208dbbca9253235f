package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/TolikMuradov/AstroCalendar/internal/domain"
	"github.com/TolikMuradov/AstroCalendar/internal/ports/service"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChatModel struct {
	resp     *schema.Message
	err      error
	messages []*schema.Message
	options  *model.Options
}

func (f *fakeChatModel) Generate(_ context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error) {
	f.messages = input
	f.options = model.GetCommonOptions(nil, opts...)
	return f.resp, f.err
}

func (f *fakeChatModel) Stream(context.Context, []*schema.Message, ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("not supported")
}

func TestEinoClient_Complete(t *testing.T) {
	t.Parallel()

	fake := &fakeChatModel{resp: schema.AssistantMessage(`{"title":"x"}`, nil)}
	client := NewEinoClientWith(fake, &Config{Model: "m", Temperature: 0.8, MaxTokens: 2048}, testLogger())

	got, err := client.Complete(context.Background(), service.CompletionRequest{System: "sys", User: "usr", MaxTokens: 8192})
	require.NoError(t, err)
	assert.Equal(t, `{"title":"x"}`, got)

	require.Len(t, fake.messages, 2)
	assert.Equal(t, schema.System, fake.messages[0].Role)
	assert.Equal(t, "usr", fake.messages[1].Content)
	require.NotNil(t, fake.options.MaxTokens)
	assert.Equal(t, 8192, *fake.options.MaxTokens)
	require.NotNil(t, fake.options.Temperature)
	assert.InDelta(t, 0.8, *fake.options.Temperature, 0.0001)
}

func TestEinoClient_Complete_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		model       *fakeChatModel
		rateLimited bool
	}{
		{"429", &fakeChatModel{err: errors.New("error, status code: 429, message: rate limit")}, true},
		{"too many requests", &fakeChatModel{err: errors.New("Too Many Requests")}, true},
		{"resource exhausted", &fakeChatModel{err: errors.New("rpc error: code = RESOURCE_EXHAUSTED")}, true},
		{"number containing 429", &fakeChatModel{err: errors.New("context length exceeded: 4290 tokens requested")}, false},
		{"other", &fakeChatModel{err: errors.New("connection reset")}, false},
		{"empty", &fakeChatModel{resp: schema.AssistantMessage("", nil)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewEinoClientWith(tt.model, &Config{}, testLogger())
			_, err := client.Complete(context.Background(), service.CompletionRequest{User: "x"})
			require.ErrorIs(t, err, domain.ErrGenerationFailed)
			assert.Equal(t, tt.rateLimited, domain.IsRateLimited(err))
		})
	}
}

func TestNew_UnknownProvider(t *testing.T) {
	t.Parallel()

	_, err := New(context.Background(), &Config{Provider: "carrier-pigeon"}, testLogger())
	assert.Error(t, err)

	c, err := New(context.Background(), &Config{Provider: ProviderHTTP}, testLogger())
	require.NoError(t, err)
	assert.IsType(t, &Client{}, c)
}
