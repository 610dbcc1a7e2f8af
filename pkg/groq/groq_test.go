package groq_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mini-ai-chat/pkg/groq"
)

func TestNew(t *testing.T) {
	if _, err := groq.New(groq.Config{}); err == nil {
		t.Error("expected error for missing API key")
	}

	client, err := groq.New(groq.Config{APIKey: "key"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.Model() != groq.DefaultModel {
		t.Errorf("expected default model, got %s", client.Model())
	}
}

func TestChatCompletion(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":{"message":"bad key"}}`))
			return
		}
		w.Write([]byte(`{"id":"cmpl-1","choices":[{"index":0,"message":{"role":"assistant","content":"pong"},"finish_reason":"stop"}]}`))
	}))
	defer ts.Close()

	client, err := groq.New(groq.Config{APIKey: "test-key", BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp, err := client.ChatCompletion(context.Background(), &groq.Request{
		Messages: []groq.Message{{Role: "user", Content: "ping"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text, err := resp.AssistantText()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "pong" {
		t.Errorf("expected %q, got %q", "pong", text)
	}
}

func TestAssistantText(t *testing.T) {
	bare := "bare text"
	cases := []struct {
		name    string
		resp    groq.Response
		want    string
		wantErr bool
	}{
		{"message shape", groq.Response{Choices: []groq.Choice{{Message: &groq.Message{Content: "hi"}}}}, "hi", false},
		{"text shape", groq.Response{Choices: []groq.Choice{{Text: &bare}}}, "bare text", false},
		{"neither shape", groq.Response{Choices: []groq.Choice{{}}}, "", true},
		{"no choices", groq.Response{}, "", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.resp.AssistantText()
			if tc.wantErr != (err != nil) {
				t.Fatalf("wantErr=%t, got err=%v", tc.wantErr, err)
			}
			if got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestStreamChatCompletion(t *testing.T) {
	t.Run("accumulates fragments", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, payload := range []string{
				`{"choices":[{"delta":{"content":"He"}}]}`,
				`{"choices":[{"delta":{"content":"llo"}}]}`,
				`[DONE]`,
			} {
				fmt.Fprintf(w, "data: %s\n\n", payload)
			}
		}))
		defer ts.Close()

		client, _ := groq.New(groq.Config{APIKey: "test-key", BaseURL: ts.URL})

		var got []string
		reply, err := client.StreamChatCompletion(context.Background(),
			&groq.Request{Messages: []groq.Message{{Role: "user", Content: "hi"}}},
			func(fragment string) error {
				got = append(got, fragment)
				return nil
			})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if reply != "Hello" {
			t.Errorf("expected %q, got %q", "Hello", reply)
		}
		if strings.Join(got, "") != "Hello" {
			t.Errorf("unexpected fragments: %v", got)
		}
	})

	t.Run("truncated stream", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, "data: {\"choices\":[{\"delta\":{\"content\":\"partial\"}}]}\n\n")
		}))
		defer ts.Close()

		client, _ := groq.New(groq.Config{APIKey: "test-key", BaseURL: ts.URL})

		_, err := client.StreamChatCompletion(context.Background(),
			&groq.Request{Messages: []groq.Message{{Role: "user", Content: "hi"}}},
			func(string) error { return nil })
		if !errors.Is(err, groq.ErrStreamInterrupted) {
			t.Errorf("expected ErrStreamInterrupted, got %v", err)
		}
	})
}

func TestUpstreamError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"message":"boom","type":"server_error"}}`))
	}))
	defer ts.Close()

	client, _ := groq.New(groq.Config{APIKey: "test-key", BaseURL: ts.URL})

	_, err := client.ChatCompletion(context.Background(), &groq.Request{
		Messages: []groq.Message{{Role: "user", Content: "hi"}},
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("expected upstream message in error, got %v", err)
	}
	if strings.Contains(err.Error(), "test-key") {
		t.Error("error message leaks credential")
	}
}
