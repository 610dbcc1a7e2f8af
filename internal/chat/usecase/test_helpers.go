package usecase

import (
	"context"

	"mini-ai-chat/pkg/llmprovider"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

// Mock provider for testing
type mockProvider struct {
	reply     string
	fragments []string
	err       error

	// captured state
	lastRequest *llmprovider.Request
	calls       int
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.lastRequest = req
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return &llmprovider.Response{Text: m.reply, ProviderName: m.Name(), ModelName: m.Model()}, nil
}

func (m *mockProvider) StreamContent(ctx context.Context, req *llmprovider.Request, onFragment llmprovider.OnFragment) (*llmprovider.Response, error) {
	m.lastRequest = req
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	var full string
	for _, fragment := range m.fragments {
		if err := onFragment(fragment); err != nil {
			return nil, err
		}
		full += fragment
	}
	return &llmprovider.Response{Text: full, ProviderName: m.Name(), ModelName: m.Model()}, nil
}

func (m *mockProvider) Name() string  { return "mock" }
func (m *mockProvider) Model() string { return "mock-model" }
