package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func testAnthropic(serverURL string) *Anthropic {
	return &Anthropic{
		apiKey:  "test-key",
		model:   "claude-3-7-sonnet-20250219",
		baseURL: serverURL,
		client:  http.DefaultClient,
	}
}

func TestAnthropic_Invoke(t *testing.T) {
	var gotReq anthropicRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-api-key") != "test-key" {
			t.Error("missing x-api-key header")
		}
		if r.Header.Get("anthropic-version") != anthropicAPIVersion {
			t.Error("missing anthropic-version header")
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decoding request: %v", err)
		}

		resp := anthropicResponse{
			Content: []anthropicBlock{
				{Type: "text", Text: `{"issues":`},
				{Type: "text", Text: `[]}`},
			},
			Usage: anthropicUsage{InputTokens: 100, OutputTokens: 10},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	a := testAnthropic(server.URL)
	resp, err := a.Invoke(context.Background(), Request{Prompt: "analyze this", MaxTokens: 4000})
	if err != nil {
		t.Fatalf("Invoke error: %v", err)
	}
	if resp.Content != `{"issues":[]}` {
		t.Errorf("Content = %q, want concatenated text blocks", resp.Content)
	}
	if resp.TokensUsed != 110 {
		t.Errorf("TokensUsed = %d, want 110", resp.TokensUsed)
	}
	if len(gotReq.Messages) != 1 || gotReq.Messages[0].Role != "user" {
		t.Errorf("Messages = %v, want a single user message", gotReq.Messages)
	}
	if gotReq.MaxTokens != 4000 {
		t.Errorf("MaxTokens = %d, want 4000", gotReq.MaxTokens)
	}
}

func TestAnthropic_SkipsNonTextBlocks(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := anthropicResponse{
			Content: []anthropicBlock{
				{Type: "thinking", Text: "hmm"},
				{Type: "text", Text: "{}"},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	resp, err := testAnthropic(server.URL).Invoke(context.Background(), Request{Prompt: "p"})
	if err != nil {
		t.Fatalf("Invoke error: %v", err)
	}
	if resp.Content != "{}" {
		t.Errorf("Content = %q, want %q", resp.Content, "{}")
	}
}

func TestAnthropic_AuthError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(401)
		w.Write([]byte(`{"error":"unauthorized"}`))
	}))
	defer server.Close()

	_, err := testAnthropic(server.URL).Invoke(context.Background(), Request{Prompt: "p"})
	if err == nil {
		t.Fatal("expected error for 401")
	}
	if !IsAuthError(err) {
		t.Errorf("error %v should classify as auth error", err)
	}
}

func TestAnthropic_ThrottleError(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(429)
		w.Write([]byte(`{"error":"rate_limit"}`))
	}))
	defer server.Close()

	_, err := testAnthropic(server.URL).Invoke(context.Background(), Request{Prompt: "p"})
	if err == nil {
		t.Fatal("expected error for 429")
	}
	if !IsThrottle(err) {
		t.Errorf("error %v should classify as throttle", err)
	}
	// Single attempt: the provider must not retry on its own.
	if calls != 1 {
		t.Errorf("server hit %d times, want 1", calls)
	}
}

func TestAnthropic_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(500)
		w.Write([]byte("boom"))
	}))
	defer server.Close()

	_, err := testAnthropic(server.URL).Invoke(context.Background(), Request{Prompt: "p"})
	if err == nil {
		t.Fatal("expected error for 500")
	}
	if IsAuthError(err) || IsThrottle(err) {
		t.Errorf("plain server error misclassified: %v", err)
	}
}

func TestNewAnthropic_MissingKey(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")
	if _, err := NewAnthropic("claude-3-7-sonnet-20250219"); err == nil {
		t.Fatal("expected error when ANTHROPIC_API_KEY is unset")
	}
}

func TestNewAnthropic_BaseURLOverride(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "k")
	t.Setenv("PILLARSCAN_ANTHROPIC_BASE_URL", "http://localhost:9999/v1/messages")
	a, err := NewAnthropic("claude-3-7-sonnet-20250219")
	if err != nil {
		t.Fatalf("NewAnthropic error: %v", err)
	}
	if a.baseURL != "http://localhost:9999/v1/messages" {
		t.Errorf("baseURL = %q, want the override", a.baseURL)
	}
}
