package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Murali-kartheekeyan/skillpath-backend/internal/logger"
	"github.com/Murali-kartheekeyan/skillpath-backend/internal/utils"
)

// AIClient sends one prompt to the hosted completion model and returns the
// raw text. Failures never surface as Go errors: the model is one of several
// in-band result producers, so transport and provider failures are encoded
// as an error JSON string that the normalizer recognizes downstream. One
// best-effort call per invocation; no retry, no rate limiting.
type AIClient interface {
	Complete(ctx context.Context, prompt string) string
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float32       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type aiClient struct {
	log        *logger.Logger
	httpClient *http.Client
	apiKey     string
	baseURL    string
	model      string
}

func NewAIClient(log *logger.Logger) (AIClient, error) {
	serviceLog := log.With("service", "AIClient")
	apiKey := utils.GetEnv("OPENAI_API_KEY", "", log)
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is not set")
	}
	baseURL := utils.GetEnv("OPENAI_BASE_URL", "https://api.openai.com/v1", log)
	model := utils.GetEnv("OPENAI_CHAT_MODEL", "gpt-4o-mini", log)
	timeoutSec := utils.GetEnvAsInt("OPENAI_TIMEOUT_SECONDS", 60, log)
	return &aiClient{
		log: serviceLog,
		httpClient: &http.Client{
			Timeout: time.Duration(timeoutSec) * time.Second,
		},
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   model,
	}, nil
}

func (c *aiClient) Complete(ctx context.Context, prompt string) string {
	body, err := json.Marshal(chatRequest{
		Model:       c.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: 0.5,
	})
	if err != nil {
		return aiErrorPayload(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return aiErrorPayload(err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("Completion call failed", "error", err)
		return aiErrorPayload(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return aiErrorPayload(err)
	}
	if resp.StatusCode != http.StatusOK {
		c.log.Warn("Completion call returned non-200", "status", resp.StatusCode)
		return aiErrorPayload(fmt.Errorf("model endpoint returned status %d", resp.StatusCode))
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return aiErrorPayload(err)
	}
	if len(parsed.Choices) == 0 {
		return aiErrorPayload(fmt.Errorf("model returned no choices"))
	}

	return CleanModelOutput(parsed.Choices[0].Message.Content)
}

// aiErrorPayload encodes a failure as the in-band error object every agent
// checks for before treating output as structured data.
func aiErrorPayload(err error) string {
	payload, marshalErr := json.Marshal(map[string]string{
		"error": fmt.Sprintf("AI Error: %v", err),
	})
	if marshalErr != nil {
		return `{"error": "AI Error: unknown"}`
	}
	return string(payload)
}
