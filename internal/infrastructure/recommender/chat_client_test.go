package recommender

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestChatClient_Suggest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		var req ChatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "test-model", req.Model)
		require.Len(t, req.Messages, 2)
		require.Contains(t, req.Messages[1].Content, "622 Kcal")

		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"[{\"name\":\"Paneer Bhurji\",\"reason\":\"High protein\",\"macros\":\"30g P\"},{\"name\":\"Chicken Tikka\",\"reason\":\"Lean\",\"macros\":\"40g P\"}]"}}]}`))
	}))
	defer srv.Close()

	c := NewChatClient(srv.URL, "secret", "test-model", zap.NewNop())
	got, err := c.Suggest(context.Background(), 622)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "Paneer Bhurji", got[0].Name)
	require.Equal(t, "Lean", got[1].Reason)
}

func TestChatClient_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewChatClient(srv.URL, "", "m", zap.NewNop())
	_, err := c.Suggest(context.Background(), 500)
	require.Error(t, err)
	require.Contains(t, err.Error(), "429")
}

func TestChatClient_ErrorInBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error":{"message":"model overloaded","type":"server_error"}}`))
	}))
	defer srv.Close()

	c := NewChatClient(srv.URL, "", "m", zap.NewNop())
	_, err := c.Suggest(context.Background(), 500)
	require.ErrorContains(t, err, "model overloaded")
}

func TestChatClient_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewChatClient(srv.URL, "", "m", zap.NewNop())
	_, err := c.Suggest(ctx, 500)
	require.Error(t, err)
}

func TestParseSuggestions(t *testing.T) {
	got, err := ParseSuggestions("```json\n[{\"name\":\"Tofu Bowl\",\"reason\":\"r\",\"macros\":\"m\"}]\n```")
	require.NoError(t, err)
	require.Equal(t, "Tofu Bowl", got[0].Name)

	got, err = ParseSuggestions(`{"suggestions":[{"name":"Dal","reason":"r","macros":"m"},{"name":"","reason":"x","macros":"y"}]}`)
	require.NoError(t, err)
	require.Len(t, got, 1)

	_, err = ParseSuggestions("sorry, I cannot help")
	require.Error(t, err)

	_, err = ParseSuggestions("[]")
	require.Error(t, err)
}

func TestUnavailable(t *testing.T) {
	_, err := Unavailable{}.Suggest(context.Background(), 622)
	require.Error(t, err)
}
