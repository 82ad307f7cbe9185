package llm

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
)

const (
	DefaultBaseURL       = "https://openrouter.ai/api/v1"
	DefaultModel         = "openai/gpt-4"
	DefaultSystemMessage = "You are an agricultural assistant"
)

// ServiceError is any failure of the completion call: transport, non-2xx, bad JSON.
// It is always returned as the error value, never folded into the reply text.
type ServiceError struct {
	StatusCode int
	Err        error
}

func (e *ServiceError) Error() string {
	return "AI Error: " + e.Err.Error()
}

func (e *ServiceError) Unwrap() error { return e.Err }

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}

type ChatResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// ChatClient talks to an OpenAI compatible /chat/completions endpoint (OpenRouter by default).
type ChatClient struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewChatClient(apiKey, baseURL, model string, timeout time.Duration, logger *zap.Logger) *ChatClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if model == "" {
		model = DefaultModel
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChatClient{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		model:      model,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Complete sends one system + user exchange and returns the first choice's content.
func (c *ChatClient) Complete(ctx context.Context, systemMessage, prompt string) (string, error) {
	if systemMessage == "" {
		systemMessage = DefaultSystemMessage
	}
	reqBody, err := json.Marshal(ChatRequest{
		Model: c.model,
		Messages: []Message{
			{Role: "system", Content: systemMessage},
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return "", &ServiceError{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(reqBody))
	if err != nil {
		return "", &ServiceError{Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("ChatClient.Complete(): request failed", zap.Error(err))
		return "", &ServiceError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return "", &ServiceError{StatusCode: resp.StatusCode, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("ChatClient.Complete(): non-2xx status", zap.Int("status", resp.StatusCode))
		return "", &ServiceError{
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("%d %s: %s", resp.StatusCode, http.StatusText(resp.StatusCode), strings.TrimSpace(string(body))),
		}
	}

	var chatResp ChatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", &ServiceError{StatusCode: resp.StatusCode, Err: fmt.Errorf("decode completion: %w", err)}
	}
	if chatResp.Error != nil {
		return "", &ServiceError{StatusCode: resp.StatusCode, Err: errors.New(chatResp.Error.Message)}
	}
	if len(chatResp.Choices) == 0 {
		return "", &ServiceError{StatusCode: resp.StatusCode, Err: errors.New("no completion returned")}
	}

	c.logger.Debug("ChatClient.Complete(): done", zap.String("model", c.model), zap.Duration("took", time.Since(start)))
	return chatResp.Choices[0].Message.Content, nil
}
