package llm

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/TolikMuradov/AstroCalendar/internal/domain"
	"github.com/TolikMuradov/AstroCalendar/internal/ports/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(&Config{
		BaseURL:     srv.URL + "/openai/v1/",
		APIKey:      "secret",
		Model:       "test-model",
		Temperature: 0.8,
		MaxTokens:   2048,
	}, testLogger())
}

func TestClient_Complete(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/openai/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req.Model)
		assert.Equal(t, 4096, req.MaxTokens)
		assert.InDelta(t, 0.8, req.Temperature, 0.0001)
		require.NotNil(t, req.ResponseFormat)
		assert.Equal(t, "json_object", req.ResponseFormat.Type)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Equal(t, "hello", req.Messages[1].Content)

		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"{\"ok\":true}"}}]}`))
	})

	got, err := client.Complete(context.Background(), service.CompletionRequest{System: "json only", User: "hello", MaxTokens: 4096})
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, got)
}

func TestClient_Complete_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		status      int
		body        string
		rateLimited bool
	}{
		{"too many requests", http.StatusTooManyRequests, `{"error":{"message":"slow down"}}`, true},
		{"quota exhausted", http.StatusForbidden, `{"error":{"message":"quota","status":"RESOURCE_EXHAUSTED"}}`, true},
		{"server error", http.StatusInternalServerError, `oops`, false},
		{"empty choices", http.StatusOK, `{"choices":[]}`, false},
		{"blank content", http.StatusOK, `{"choices":[{"message":{"content":"  "}}]}`, false},
		{"not json", http.StatusOK, `<html>`, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.Complete(context.Background(), service.CompletionRequest{User: "x"})
			require.ErrorIs(t, err, domain.ErrGenerationFailed)
			assert.Equal(t, tt.rateLimited, domain.IsRateLimited(err))
		})
	}
}

func TestClient_Complete_MissingKey(t *testing.T) {
	t.Parallel()

	client := NewClient(&Config{BaseURL: "http://127.0.0.1:1"}, testLogger())
	_, err := client.Complete(context.Background(), service.CompletionRequest{User: "x"})
	require.ErrorIs(t, err, domain.ErrGenerationFailed)
	assert.ErrorIs(t, err, errMissingAPIKey)
}
