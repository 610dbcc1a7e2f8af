package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"mini-ai-chat/config"
	_ "mini-ai-chat/docs" // Swagger docs
	"mini-ai-chat/internal/httpserver"
	"mini-ai-chat/pkg/llmprovider"
	"mini-ai-chat/pkg/log"
)

// @title       Mini AI Chat API
// @description Conversational relay: bounded per-session history forwarded to a chat-completion provider.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Mini AI Chat...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Completion provider. A missing credential fails here, at
	// startup, never per-request.
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	// Highest priority wins; the relay never falls back or retries.
	provider := providers[0]
	logger.Infof(ctx, "Completion provider: %s (model %s)", provider.Name(), provider.Model())

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Provider:    provider,
		Chat:        cfg.Chat,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
