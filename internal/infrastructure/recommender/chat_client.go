// Package recommender предоставляет клиент LLM для подбора блюд под цель по калориям.
package recommender

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"boketto-bot/internal/domain/entity"
	"boketto-bot/internal/domain/port"
)

// ChatClient обращается к OpenAI-совместимому /chat/completions.
type ChatClient struct {
	apiURL     string
	apiKey     string
	model      string
	httpClient *http.Client
	log        *zap.Logger
}

// ChatRequest: запрос к чату.
type ChatRequest struct {
	Model          string          `json:"model"`
	Messages       []ChatMessage   `json:"messages"`
	ResponseFormat *ResponseFormat `json:"response_format,omitempty"`
}

// ChatMessage: сообщение.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ResponseFormat просит модель вернуть JSON.
type ResponseFormat struct {
	Type string `json:"type"`
}

// ChatResponse: ответ модели.
type ChatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// NewChatClient создаёт клиент.
func NewChatClient(apiURL, apiKey, model string, log *zap.Logger) *ChatClient {
	return &ChatClient{
		apiURL: apiURL,
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: log.Named("recommender"),
	}
}

// Suggest просит модель предложить три ужина под goalKcal.
func (c *ChatClient) Suggest(ctx context.Context, goalKcal int) ([]entity.Suggestion, error) {
	chatReq := ChatRequest{
		Model: c.model,
		Messages: []ChatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: buildUserPrompt(goalKcal)},
		},
		ResponseFormat: &ResponseFormat{Type: "json_object"},
	}

	reqBody, err := json.Marshal(chatReq)
	if err != nil {
		return nil, fmt.Errorf("marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call chat completions: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read chat response: %w", err)
	}

	c.log.Debug("chat completions answered",
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(body)),
	)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("chat completions status %d: %s", resp.StatusCode, truncate(string(body), 200))
	}

	var chatResp ChatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return nil, fmt.Errorf("decode chat response: %w", err)
	}
	// Иногда приходит 200 с ошибкой в теле.
	if chatResp.Error != nil && chatResp.Error.Message != "" {
		return nil, fmt.Errorf("model error: %s (type: %s)", chatResp.Error.Message, chatResp.Error.Type)
	}
	if len(chatResp.Choices) == 0 {
		return nil, errors.New("no choices in chat response")
	}

	return ParseSuggestions(chatResp.Choices[0].Message.Content)
}

// ParseSuggestions разбирает массив {name, reason, macros}. Допускает обёртку
// в markdown-блок и объект вида {"suggestions": [...]}.
func ParseSuggestions(content string) ([]entity.Suggestion, error) {
	content = stripFence(content)
	if content == "" {
		return nil, errors.New("empty content")
	}

	var list []entity.Suggestion
	if err := json.Unmarshal([]byte(content), &list); err != nil {
		var wrapped struct {
			Suggestions []entity.Suggestion `json:"suggestions"`
		}
		if err2 := json.Unmarshal([]byte(content), &wrapped); err2 != nil {
			return nil, fmt.Errorf("decode suggestions: %w", err)
		}
		list = wrapped.Suggestions
	}

	out := list[:0]
	for _, s := range list {
		if strings.TrimSpace(s.Name) == "" {
			continue
		}
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil, errors.New("no suggestions in content")
	}
	return out, nil
}

func stripFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

var _ port.Recommender = (*ChatClient)(nil)
