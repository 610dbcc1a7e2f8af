package openai_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mini-ai-chat/pkg/openai"
)

func newClient(t *testing.T, baseURL string) openai.IOpenAI {
	t.Helper()
	client, err := openai.New(openai.Config{
		APIKey:  "test-key",
		Model:   "gpt-4o-mini",
		BaseURL: baseURL,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return client
}

func TestNewRequiresAPIKey(t *testing.T) {
	_, err := openai.New(openai.Config{})
	if err == nil {
		t.Fatal("expected error for missing API key")
	}
}

func TestChatCompletion(t *testing.T) {
	var lastBody map[string]interface{}

	mux := http.NewServeMux()
	mux.HandleFunc("/chat/completions", func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewDecoder(r.Body).Decode(&lastBody)

		var payload string
		switch {
		case strings.Contains(fmt.Sprint(lastBody["messages"]), "use-text-shape"):
			payload = `{"choices":[{"text":"from text field"}]}`
		case strings.Contains(fmt.Sprint(lastBody["messages"]), "no-shape"):
			payload = `{"choices":[{"finish_reason":"stop"}]}`
		case strings.Contains(fmt.Sprint(lastBody["messages"]), "no-choices"):
			payload = `{"choices":[]}`
		case strings.Contains(fmt.Sprint(lastBody["messages"]), "upstream-error"):
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":{"message":"boom"}}`))
			return
		default:
			payload = `{"choices":[{"message":{"role":"assistant","content":"from message field"}}]}`
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(payload))
	})

	ts := httptest.NewServer(mux)
	defer ts.Close()

	client := newClient(t, ts.URL)
	ctx := context.Background()

	ask := func(text string) (*openai.Response, error) {
		return client.ChatCompletion(ctx, &openai.Request{
			Messages: []openai.Message{{Role: "user", Content: text}},
		})
	}

	t.Run("message shape", func(t *testing.T) {
		resp, err := ask("hello")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text != "from message field" {
			t.Errorf("unexpected text: %q", resp.Text)
		}
	})

	t.Run("bare text shape", func(t *testing.T) {
		resp, err := ask("use-text-shape")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text != "from text field" {
			t.Errorf("unexpected text: %q", resp.Text)
		}
	})

	t.Run("neither shape is an error", func(t *testing.T) {
		_, err := ask("no-shape")
		var apiErr *openai.APIError
		if !errors.As(err, &apiErr) {
			t.Errorf("expected APIError, got %v", err)
		}
	})

	t.Run("no choices is an error", func(t *testing.T) {
		_, err := ask("no-choices")
		var apiErr *openai.APIError
		if !errors.As(err, &apiErr) {
			t.Errorf("expected APIError, got %v", err)
		}
	})

	t.Run("upstream error carries status", func(t *testing.T) {
		_, err := ask("upstream-error")
		var apiErr *openai.APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected APIError, got %v", err)
		}
		if apiErr.StatusCode != http.StatusInternalServerError {
			t.Errorf("expected status 500, got %d", apiErr.StatusCode)
		}
		if strings.Contains(apiErr.Error(), "test-key") {
			t.Error("error message leaks credential")
		}
	})

	t.Run("request wire format", func(t *testing.T) {
		ask("hello")
		if lastBody["model"] != "gpt-4o-mini" {
			t.Errorf("unexpected model: %v", lastBody["model"])
		}
		if _, ok := lastBody["stream"]; ok {
			t.Error("batch request must not set stream")
		}
	})
}

func TestChatCompletionTimeout(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer ts.Close()

	client, err := openai.New(openai.Config{
		APIKey:  "test-key",
		BaseURL: ts.URL,
		Timeout: 20 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = client.ChatCompletion(context.Background(), &openai.Request{
		Messages: []openai.Message{{Role: "user", Content: "hello"}},
	})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected deadline exceeded, got %v", err)
	}
}

func TestStreamChatCompletion(t *testing.T) {
	stream := func(w http.ResponseWriter, lines ...string) {
		w.Header().Set("Content-Type", "text/event-stream")
		for _, line := range lines {
			fmt.Fprintf(w, "data: %s\n\n", line)
		}
	}

	t.Run("fragments in arrival order", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			stream(w,
				`{"choices":[{"delta":{"content":"He"}}]}`,
				`{"choices":[{"delta":{"content":"llo"}}]}`,
				`[DONE]`,
			)
		}))
		defer ts.Close()

		var fragments []string
		resp, err := newClient(t, ts.URL).StreamChatCompletion(context.Background(),
			&openai.Request{Messages: []openai.Message{{Role: "user", Content: "hi"}}},
			func(fragment string) error {
				fragments = append(fragments, fragment)
				return nil
			})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text != "Hello" {
			t.Errorf("expected %q, got %q", "Hello", resp.Text)
		}
		if len(fragments) != 2 || fragments[0] != "He" || fragments[1] != "llo" {
			t.Errorf("unexpected fragments: %v", fragments)
		}
	})

	t.Run("missing done marker", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			stream(w, `{"choices":[{"delta":{"content":"partial"}}]}`)
		}))
		defer ts.Close()

		_, err := newClient(t, ts.URL).StreamChatCompletion(context.Background(),
			&openai.Request{Messages: []openai.Message{{Role: "user", Content: "hi"}}},
			func(string) error { return nil })
		if !errors.Is(err, openai.ErrStreamInterrupted) {
			t.Errorf("expected ErrStreamInterrupted, got %v", err)
		}
	})

	t.Run("consumer abort", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			stream(w,
				`{"choices":[{"delta":{"content":"one"}}]}`,
				`{"choices":[{"delta":{"content":"two"}}]}`,
				`[DONE]`,
			)
		}))
		defer ts.Close()

		_, err := newClient(t, ts.URL).StreamChatCompletion(context.Background(),
			&openai.Request{Messages: []openai.Message{{Role: "user", Content: "hi"}}},
			func(string) error { return errors.New("client went away") })
		if !errors.Is(err, openai.ErrStreamInterrupted) {
			t.Errorf("expected ErrStreamInterrupted, got %v", err)
		}
	})

	t.Run("non-200 before any fragment", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error":{"message":"rate limited"}}`))
		}))
		defer ts.Close()

		_, err := newClient(t, ts.URL).StreamChatCompletion(context.Background(),
			&openai.Request{Messages: []openai.Message{{Role: "user", Content: "hi"}}},
			func(string) error { return nil })
		var apiErr *openai.APIError
		if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusTooManyRequests {
			t.Errorf("expected APIError 429, got %v", err)
		}
	})
}
