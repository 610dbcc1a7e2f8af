package openai

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// newOpenAIImpl creates a new OpenAI implementation
func newOpenAIImpl(cfg Config) *openAIImpl {
	return &openAIImpl{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		model:      cfg.Model,
		timeout:    cfg.Timeout,
		httpClient: cfg.HTTPClient,
	}
}

// ChatCompletion sends a batch completion request to the OpenAI API
func (o *openAIImpl) ChatCompletion(ctx context.Context, req *Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	resp, err := o.send(ctx, o.transformRequest(req, false))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return nil, &APIError{Message: fmt.Sprintf("failed to decode response: %v", err)}
	}

	return o.transformResponse(&chatResp)
}

// StreamChatCompletion sends a streaming completion request, forwarding
// each fragment to onFragment while accumulating the finalized text.
func (o *openAIImpl) StreamChatCompletion(ctx context.Context, req *Request, onFragment func(string) error) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	resp, err := o.send(ctx, o.transformRequest(req, true))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var reply strings.Builder
	done := false

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || !strings.HasPrefix(line, "data:") {
			continue
		}
		payload := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		if payload == streamDoneMarker {
			done = true
			break
		}

		var chunk streamChunk
		if err := json.Unmarshal([]byte(payload), &chunk); err != nil {
			return nil, fmt.Errorf("openai: malformed stream chunk: %v: %w", err, ErrStreamInterrupted)
		}

		fragment := extractFragment(&chunk)
		if fragment == "" {
			continue
		}
		reply.WriteString(fragment)
		if onFragment != nil {
			if cbErr := onFragment(fragment); cbErr != nil {
				return nil, fmt.Errorf("openai: deliver fragment: %v: %w", cbErr, ErrStreamInterrupted)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("openai: read stream: %v: %w", err, ErrStreamInterrupted)
	}
	if !done {
		return nil, fmt.Errorf("openai: stream ended without done marker: %w", ErrStreamInterrupted)
	}

	return &Response{Text: reply.String()}, nil
}

// Model returns the model being used
func (o *openAIImpl) Model() string {
	return o.model
}

// send issues the HTTP request and rejects non-200 responses.
func (o *openAIImpl) send(ctx context.Context, chatReq *chatRequest) (*http.Response, error) {
	body, err := json.Marshal(chatReq)
	if err != nil {
		return nil, fmt.Errorf("openai: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		o.baseURL+"/chat/completions", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("openai: failed to create request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+o.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")
	if chatReq.Stream {
		httpReq.Header.Set("Accept", "text/event-stream")
	}

	resp, err := o.httpClient.Do(httpReq)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, fmt.Errorf("openai: request timed out after %s: %w", o.timeout, context.DeadlineExceeded)
		}
		return nil, fmt.Errorf("openai: API call failed: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, &APIError{StatusCode: resp.StatusCode, Message: string(bodyBytes)}
	}

	return resp, nil
}

// transformRequest converts the normalized request to the wire format
func (o *openAIImpl) transformRequest(req *Request, stream bool) *chatRequest {
	chatReq := &chatRequest{
		Model:       o.model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Stream:      stream,
		Messages:    make([]chatMessage, 0, len(req.Messages)),
	}
	for _, msg := range req.Messages {
		chatReq.Messages = append(chatReq.Messages, chatMessage{
			Role:    msg.Role,
			Content: msg.Content,
		})
	}
	return chatReq
}

// transformResponse extracts the assistant text from the first choice.
// Both known nesting shapes are accepted; a choice carrying neither is
// rejected rather than silently read as an empty reply.
func (o *openAIImpl) transformResponse(resp *chatResponse) (*Response, error) {
	if len(resp.Choices) == 0 {
		return nil, &APIError{Message: "response has no choices"}
	}

	choice := resp.Choices[0]
	switch {
	case choice.Message != nil:
		return &Response{Text: choice.Message.Content}, nil
	case choice.Text != nil:
		return &Response{Text: *choice.Text}, nil
	default:
		return nil, &APIError{Message: "choice carries neither message nor text"}
	}
}

func extractFragment(chunk *streamChunk) string {
	if len(chunk.Choices) == 0 {
		return ""
	}
	choice := chunk.Choices[0]
	if choice.Delta != nil {
		return choice.Delta.Content
	}
	if choice.Text != nil {
		return *choice.Text
	}
	return ""
}
