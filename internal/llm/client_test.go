package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNewClient(t *testing.T) {
	client := NewClient("http://localhost:8081/", "test-key")
	if client == nil {
		t.Fatal("NewClient() returned nil")
	}
	if client.BaseURL != "http://localhost:8081" {
		t.Errorf("NewClient() BaseURL = %v, want http://localhost:8081", client.BaseURL)
	}
	if client.APIKey != "test-key" {
		t.Errorf("NewClient() APIKey = %v, want test-key", client.APIKey)
	}
	if client.client == nil {
		t.Error("NewClient() client should not be nil")
	}
}

func writeCompletion(w http.ResponseWriter, content string) {
	resp := chatResponse{
		ID:     "test-id",
		Object: "chat.completion",
		Choices: []chatChoice{
			{Index: 0, FinishReason: "stop"},
		},
	}
	resp.Choices[0].Message.Role = "assistant"
	resp.Choices[0].Message.Content = content
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func TestClient_Complete(t *testing.T) {
	tests := []struct {
		name        string
		serverResp  func(w http.ResponseWriter, r *http.Request)
		wantReply   string
		wantOutcome Outcome
		wantStatus  int
	}{
		{
			name: "successful completion",
			serverResp: func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPost {
					t.Errorf("expected POST, got %s", r.Method)
				}
				if r.URL.Path != "/chat/completions" {
					t.Errorf("expected /chat/completions, got %s", r.URL.Path)
				}
				if r.Header.Get("Authorization") != "Bearer test-key" {
					t.Errorf("Authorization = %q, want Bearer test-key", r.Header.Get("Authorization"))
				}

				var payload chatRequest
				if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
					t.Fatalf("decode payload: %v", err)
				}
				if payload.Model != "model-a" {
					t.Errorf("payload model = %q, want model-a", payload.Model)
				}
				if payload.Temperature != DefaultTemperature {
					t.Errorf("payload temperature = %v, want %v", payload.Temperature, DefaultTemperature)
				}
				if payload.MaxTokens != DefaultMaxTokens {
					t.Errorf("payload max_tokens = %d, want %d", payload.MaxTokens, DefaultMaxTokens)
				}
				if len(payload.Messages) != 2 || payload.Messages[0].Role != RoleSystem {
					t.Errorf("payload messages = %+v", payload.Messages)
				}
				writeCompletion(w, "Hi there!")
			},
			wantReply: "Hi there!",
		},
		{
			name: "rate limited",
			serverResp: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
			},
			wantOutcome: OutcomeRateLimited,
			wantStatus:  http.StatusTooManyRequests,
		},
		{
			name: "server error",
			serverResp: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("overloaded"))
			},
			wantOutcome: OutcomeServerError,
			wantStatus:  http.StatusServiceUnavailable,
		},
		{
			name: "client error keeps body",
			serverResp: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"error":"model decommissioned"}`))
			},
			wantOutcome: OutcomeClientError,
			wantStatus:  http.StatusBadRequest,
		},
		{
			name: "no choices returned",
			serverResp: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"id":"x","choices":[]}`))
			},
			wantOutcome: OutcomeEmpty,
			wantStatus:  http.StatusOK,
		},
		{
			name: "blank content",
			serverResp: func(w http.ResponseWriter, r *http.Request) {
				writeCompletion(w, "   ")
			},
			wantOutcome: OutcomeEmpty,
			wantStatus:  http.StatusOK,
		},
		{
			name: "invalid JSON body",
			serverResp: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("not json"))
			},
			wantOutcome: OutcomeDecode,
			wantStatus:  http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(tt.serverResp))
			defer server.Close()

			client := NewClient(server.URL, "test-key")
			reply, err := client.Complete(context.Background(), "model-a", GenerationRequest{
				Messages: []Message{
					{Role: RoleSystem, Content: "be brief"},
					{Role: RoleUser, Content: "Hello"},
				},
			})

			if tt.wantOutcome == "" {
				if err != nil {
					t.Fatalf("Complete() unexpected error: %v", err)
				}
				if reply != tt.wantReply {
					t.Errorf("Complete() reply = %v, want %v", reply, tt.wantReply)
				}
				return
			}

			var providerErr *ProviderError
			if !errors.As(err, &providerErr) {
				t.Fatalf("Complete() error = %v, want *ProviderError", err)
			}
			if providerErr.Outcome != tt.wantOutcome {
				t.Errorf("Complete() outcome = %v, want %v", providerErr.Outcome, tt.wantOutcome)
			}
			if providerErr.StatusCode != tt.wantStatus {
				t.Errorf("Complete() status = %d, want %d", providerErr.StatusCode, tt.wantStatus)
			}
			if providerErr.Model != "model-a" {
				t.Errorf("Complete() model = %q, want model-a", providerErr.Model)
			}
		})
	}
}

func TestClient_Complete_ClientErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("model not found"))
	}))
	defer server.Close()

	_, err := NewClient(server.URL, "k").Complete(context.Background(), "ghost", GenerationRequest{})
	if err == nil {
		t.Fatal("Complete() expected error, got nil")
	}
	if !strings.Contains(err.Error(), "model not found") {
		t.Errorf("Complete() error = %q, want body included", err.Error())
	}
	if errors.Is(err, ErrRetryableProvider) {
		t.Error("404 should not be classified as retryable")
	}
}

func TestClient_Complete_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := NewClient(url, "k").Complete(context.Background(), "model-a", GenerationRequest{})
	var providerErr *ProviderError
	if !errors.As(err, &providerErr) {
		t.Fatalf("Complete() error = %v, want *ProviderError", err)
	}
	if providerErr.Outcome != OutcomeTransport {
		t.Errorf("Complete() outcome = %v, want %v", providerErr.Outcome, OutcomeTransport)
	}
	if !errors.Is(err, ErrRetryableProvider) {
		t.Error("transport failure should be retryable")
	}
}
