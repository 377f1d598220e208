package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// SystemPreamble is the fixed instruction sent ahead of every forwarded
// conversation.
const SystemPreamble = "You are Jolli, the supportive companion inside the JolliVille " +
	"journaling app. Be warm, encouraging and brief. Never give medical advice; " +
	"suggest professional help for anything serious. When journal context is " +
	"provided, weave it in gently without quoting it back verbatim."

type LLMService struct {
	baseURL string
	token   string
	model   string
	client  *http.Client
}

var llmService *LLMService

func GetLLMService() *LLMService {
	if llmService == nil {
		llmService = &LLMService{
			baseURL: os.Getenv("LLM_BASE_URL"),
			token:   os.Getenv("LLM_TOKEN"),
			model:   os.Getenv("LLM_MODEL"),
			client:  &http.Client{Timeout: 30 * time.Second},
		}
	}
	return llmService
}

// Message is one turn in the provider wire format.
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
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete forwards the message list to the completion provider and
// returns the single reply. No retry, no backoff; the caller surfaces a
// generic error to the client.
func (s *LLMService) Complete(messages []Message) (string, error) {
	if s.baseURL == "" || s.token == "" {
		return "", fmt.Errorf("LLM not configured: missing LLM_BASE_URL or LLM_TOKEN")
	}

	reqBody := ChatRequest{
		Model:    s.model,
		Messages: messages,
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequest("POST", s.baseURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("completion request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("completion API returned %d", resp.StatusCode)
	}

	var chatResp ChatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", fmt.Errorf("parse response: %w", err)
	}
	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("completion API returned no choices")
	}

	return chatResp.Choices[0].Message.Content, nil
}
