package providers

import (
	"context"
	"errors"
	"fmt"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

func TestNew_UnknownProvider(t *testing.T) {
	_, err := New(context.Background(), "gemini", Options{Model: "m"})
	if err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestNew_Anthropic(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "k")
	p, err := New(context.Background(), "anthropic", Options{Model: "claude-3-7-sonnet-20250219"})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if p.Name() != "anthropic" {
		t.Errorf("Name() = %q, want anthropic", p.Name())
	}
	if p.Model() != "claude-3-7-sonnet-20250219" {
		t.Errorf("Model() = %q", p.Model())
	}
}

func TestNew_OpenAI(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "k")
	p, err := New(context.Background(), "openai", Options{Model: "gpt-4o"})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if p.Name() != "openai" {
		t.Errorf("Name() = %q, want openai", p.Name())
	}
}

func TestNewOpenAI_MissingKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	if _, err := NewOpenAI("gpt-4o"); err == nil {
		t.Fatal("expected error when OPENAI_API_KEY is unset")
	}
}

func TestClassifyOpenAIError(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		wantAuth     bool
		wantThrottle bool
	}{
		{"throttle", 429, false, true},
		{"unauthorized", 401, true, false},
		{"forbidden", 403, true, false},
		{"bad request", 400, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classifyOpenAIError(&openai.APIError{HTTPStatusCode: tt.status, Message: "m"})
			if got := IsAuthError(err); got != tt.wantAuth {
				t.Errorf("IsAuthError = %v, want %v", got, tt.wantAuth)
			}
			if got := IsThrottle(err); got != tt.wantThrottle {
				t.Errorf("IsThrottle = %v, want %v", got, tt.wantThrottle)
			}
		})
	}
}

func TestErrorClassifiers(t *testing.T) {
	auth := &authError{message: "bad key"}
	throttle := &throttleError{message: "slow down"}
	plain := fmt.Errorf("other")

	if !IsAuthError(auth) || IsAuthError(throttle) || IsAuthError(plain) {
		t.Error("IsAuthError misclassifies")
	}
	if !IsThrottle(throttle) || IsThrottle(auth) || IsThrottle(plain) {
		t.Error("IsThrottle misclassifies")
	}

	wrapped := fmt.Errorf("invoking: %w", auth)
	if !IsAuthError(wrapped) {
		t.Error("IsAuthError should see through wrapping")
	}
	if IsAuthError(nil) || IsThrottle(nil) {
		t.Error("nil should not classify as anything")
	}
	if IsAuthError(errors.New("authentication error: lookalike")) {
		t.Error("classification must be by type, not message text")
	}
}
