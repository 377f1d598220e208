package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
)

func TestComplete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" {
			t.Errorf("Expected POST request, got %s", r.Method)
		}
		if r.Header.Get("Authorization") != "Bearer test-token" {
			t.Errorf("Expected Bearer test-token, got %s", r.Header.Get("Authorization"))
		}

		var req ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("Failed to decode request: %v", err)
		}
		if req.Model != "test-model" {
			t.Errorf("Expected test-model, got %s", req.Model)
		}
		if len(req.Messages) == 0 || req.Messages[0].Role != "system" {
			t.Errorf("Expected system preamble first, got %+v", req.Messages)
		}

		resp := ChatResponse{
			Choices: []struct {
				Message struct {
					Content string `json:"content"`
				} `json:"message"`
			}{
				{
					Message: struct {
						Content string `json:"content"`
					}{Content: "You are doing great. Keep journaling!"},
				},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	os.Setenv("LLM_BASE_URL", server.URL)
	os.Setenv("LLM_TOKEN", "test-token")
	os.Setenv("LLM_MODEL", "test-model")

	// Reset the singleton so it re-reads the env.
	llmService = nil
	s := GetLLMService()

	reply, err := s.Complete([]Message{
		{Role: "system", Content: SystemPreamble},
		{Role: "user", Content: "I had a rough day."},
	})
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if reply != "You are doing great. Keep journaling!" {
		t.Errorf("Unexpected reply: %s", reply)
	}
}

func TestCompleteUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	os.Setenv("LLM_BASE_URL", server.URL)
	os.Setenv("LLM_TOKEN", "test-token")
	os.Setenv("LLM_MODEL", "test-model")

	llmService = nil
	s := GetLLMService()

	if _, err := s.Complete([]Message{{Role: "user", Content: "hi"}}); err == nil {
		t.Error("expected error on upstream 500")
	}
}

func TestCompleteNotConfigured(t *testing.T) {
	os.Setenv("LLM_BASE_URL", "")
	os.Setenv("LLM_TOKEN", "")

	llmService = nil
	s := GetLLMService()

	if _, err := s.Complete([]Message{{Role: "user", Content: "hi"}}); err == nil {
		t.Error("expected error when LLM env is missing")
	}
}

func TestDetectIntent(t *testing.T) {
	cases := []struct {
		message string
		want    Intent
	}{
		{"show me my journal", IntentJournalRecap},
		{"What was my last entry?", IntentJournalRecap},
		{"how is my mood lately", IntentMoodSummary},
		{"Feelings check!", IntentMoodSummary},
		{"I had a rough day at work", IntentNone},
		// Whole-word match: substrings must not trigger commands.
		{"we adjourned the meeting", IntentNone},
		{"the moody weather", IntentNone},
		{"", IntentNone},
	}
	for _, tc := range cases {
		if got := DetectIntent(tc.message); got != tc.want {
			t.Errorf("DetectIntent(%q) = %d, want %d", tc.message, got, tc.want)
		}
	}
}
