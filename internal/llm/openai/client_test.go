package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Saubhagya1707/crying-tailor/internal/llm"
)

func TestIsGPT5(t *testing.T) {
	tests := []struct {
		name  string
		model string
		want  bool
	}{
		{name: "gpt5", model: "gpt-5", want: true},
		{name: "gpt5 variant", model: "gpt-5-mini", want: true},
		{name: "gpt5 uppercase", model: " GPT-5o ", want: true},
		{name: "gpt4", model: "gpt-4o", want: false},
		{name: "empty", model: "", want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := isGPT5(tt.model); got != tt.want {
				t.Fatalf("isGPT5(%q) = %v, want %v", tt.model, got, tt.want)
			}
		})
	}
}

func TestCompleteSendsJSONModeAndTemperature(t *testing.T) {
	var got map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("missing bearer token")
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"{\"profile\":{}}"}}]}`))
	}))
	defer server.Close()
	restore := apiURL
	apiURL = server.URL
	t.Cleanup(func() { apiURL = restore })

	client := NewClient("test-key", "gpt-4o-mini")
	out, err := client.Complete(context.Background(), llm.Request{Prompt: "p", JSON: true, Temperature: llm.Temperature(0.1)})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if out != `{"profile":{}}` {
		t.Fatalf("unexpected content %q", out)
	}
	format, _ := got["response_format"].(map[string]any)
	if format["type"] != "json_object" {
		t.Fatalf("expected json_object response format, got %v", got["response_format"])
	}
	if _, ok := got["temperature"]; !ok {
		t.Fatalf("expected temperature to be sent")
	}
}

func TestCompleteOmitsTemperatureForGPT5AndTextMode(t *testing.T) {
	var got map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"Jane Doe"}}]}`))
	}))
	defer server.Close()
	restore := apiURL
	apiURL = server.URL
	t.Cleanup(func() { apiURL = restore })

	client := NewClient("test-key", "gpt-5-mini")
	if _, err := client.Complete(context.Background(), llm.Request{Prompt: "p", Temperature: llm.Temperature(0.1)}); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if _, ok := got["temperature"]; ok {
		t.Fatalf("temperature must be omitted for gpt-5")
	}
	if _, ok := got["response_format"]; ok {
		t.Fatalf("response_format must be omitted in text mode")
	}
}

func TestCompleteSurfacesHTTPErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"rate limited","type":"requests"}}`))
	}))
	defer server.Close()
	restore := apiURL
	apiURL = server.URL
	t.Cleanup(func() { apiURL = restore })

	_, err := NewClient("test-key", "").Complete(context.Background(), llm.Request{Prompt: "p"})
	if err == nil || !strings.Contains(err.Error(), "rate limited") {
		t.Fatalf("expected provider error, got %v", err)
	}
}

func TestUnconfiguredClientMakesNoRequest(t *testing.T) {
	client := NewClient("  ", "")
	if client.Configured() {
		t.Fatalf("expected unconfigured client")
	}
	_, err := client.Complete(context.Background(), llm.Request{Prompt: "p"})
	if !errors.Is(err, llm.ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}
