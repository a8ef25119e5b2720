package main

import (
	"context"
	"log"
	"log/slog"
	"net"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tagtemanin/internal/config"
	"tagtemanin/internal/http"
	"tagtemanin/internal/llm"
	"tagtemanin/internal/service"
)

//go:generate swagger generate spec -o swagger.json

// General API information
//
// This API generates social media captions and hashtag sets for Indonesian small businesses.
//
// swagger:meta
//
// ---
// swagger: '2.0'
// info:
//   title: TagTemanin API
//   description: |
//     Caption and hashtag generation backed by an OpenAI-compatible chat completion provider.
//     Each request walks an ordered chain of models until one returns a usable completion.
//   version: 1.0.0
// schemes:
//   - http
//   - https
// consumes:
//   - application/json
// produces:
//   - application/json

// shutdownGracePeriod covers a full model chain of attempts.
const shutdownGracePeriod = 3 * time.Minute

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	if cfg.LLMAPIKey == "" {
		slog.Warn("GROQ_API_KEY is not set; generation requests will fail until it is configured")
	}

	// Create LLM client and fallback caller (external service layer)
	llmClient := llm.NewClient(cfg.LLMBaseURL, cfg.LLMAPIKey)
	caller := llm.NewFallbackCaller(
		llmClient,
		cfg.ModelChain,
		llm.WithAttemptTimeout(cfg.AttemptTimeout),
		llm.WithFailFastOnClientError(cfg.FailFastClientErrors),
	)
	slog.Info("Model chain configured", "models", cfg.ModelChain, "attempt_timeout", cfg.AttemptTimeout)

	// Create router with dependencies
	deps := &http.Deps{
		CaptionService:   service.NewCaptionService(caller),
		HashtagService:   service.NewHashtagService(caller),
		APIKeyConfigured: cfg.LLMAPIKey != "",
		ModelChain:       caller.Chain(),
	}
	router, err := http.NewRouter(deps)
	if err != nil {
		log.Fatalf("Failed to create router: %v", err)
	}

	srv := &nethttp.Server{
		Addr:              ":" + cfg.APIPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		log.Fatalf("API server failed to start: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start API server
	slog.Info("Starting API server", "addr", srv.Addr)
	slog.Debug("LLM configuration", "base_url", cfg.LLMBaseURL)
	if err := http.Serve(ctx, srv, ln, shutdownGracePeriod); err != nil {
		log.Fatalf("API server failed: %v", err)
	}
	slog.Info("API server stopped")
}
