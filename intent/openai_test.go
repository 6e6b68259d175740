package intent

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAIClientComplete(t *testing.T) {
	ctx := context.Background()

	t.Run("sends a deterministic JSON-mode request", func(t *testing.T) {
		var got chatRequest
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

			_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"{\"intent\":\"GET_ALL_TASKS\",\"entities\":{}}"}}]}`))
		}))
		defer srv.Close()

		client := NewOpenAIClient("test-key", "gpt-3.5-turbo")
		client.Endpoint = srv.URL

		raw, err := client.Complete(ctx, "system instruction", "list all my tasks")
		require.NoError(t, err)
		assert.JSONEq(t, `{"intent":"GET_ALL_TASKS","entities":{}}`, string(raw))

		assert.Equal(t, "gpt-3.5-turbo", got.Model)
		assert.Zero(t, got.Temperature)
		assert.Equal(t, "json_object", got.ResponseFormat.Type)
		require.Len(t, got.Messages, 2)
		assert.Equal(t, "system", got.Messages[0].Role)
		assert.Equal(t, "system instruction", got.Messages[0].Content)
		assert.Equal(t, "user", got.Messages[1].Role)
		assert.Equal(t, "list all my tasks", got.Messages[1].Content)
	})

	t.Run("non-200 is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error":"invalid api key"}`, http.StatusUnauthorized)
		}))
		defer srv.Close()

		client := NewOpenAIClient("bad-key", "gpt-3.5-turbo")
		client.Endpoint = srv.URL

		_, err := client.Complete(ctx, "system", "user")
		assert.ErrorContains(t, err, "401")
	})

	t.Run("empty choices is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"choices":[]}`))
		}))
		defer srv.Close()

		client := NewOpenAIClient("test-key", "gpt-3.5-turbo")
		client.Endpoint = srv.URL

		_, err := client.Complete(ctx, "system", "user")
		assert.ErrorContains(t, err, "no choices")
	})
}
