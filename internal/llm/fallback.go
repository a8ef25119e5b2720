package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"tagtemanin/internal/contextutil"
)

// DefaultAttemptTimeout bounds a single model attempt.
const DefaultAttemptTimeout = 20 * time.Second

// FallbackCaller calls a chain of models in order and returns the first usable
// completion. It holds no mutable state and is safe for concurrent use.
type FallbackCaller struct {
	client         *Client
	chain          ModelChain
	attemptTimeout time.Duration
	// failFastOnClientError aborts the chain on 4xx responses other than
	// 408 and 429 instead of advancing to the next model.
	failFastOnClientError bool
}

// Option configures a FallbackCaller.
type Option func(*FallbackCaller)

// WithAttemptTimeout sets the per-attempt timeout. Zero disables it.
func WithAttemptTimeout(d time.Duration) Option {
	return func(f *FallbackCaller) {
		f.attemptTimeout = d
	}
}

// WithFailFastOnClientError stops the chain on non-retryable 4xx responses.
func WithFailFastOnClientError(enabled bool) Option {
	return func(f *FallbackCaller) {
		f.failFastOnClientError = enabled
	}
}

// NewFallbackCaller creates a caller over the given chain. The chain is copied.
func NewFallbackCaller(client *Client, chain ModelChain, opts ...Option) *FallbackCaller {
	f := &FallbackCaller{
		client:         client,
		chain:          chain.Clone(),
		attemptTimeout: DefaultAttemptTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Chain returns a copy of the configured model chain.
func (f *FallbackCaller) Chain() ModelChain {
	return f.chain.Clone()
}

// Call tries each model in the chain until one returns a non-empty completion.
//
// A missing API key fails immediately with a *ConfigurationError. When every
// model fails the error is an *ExhaustedChainError carrying the last failure.
// Cancelling ctx aborts the current attempt and skips the rest of the chain.
func (f *FallbackCaller) Call(ctx context.Context, req GenerationRequest) (string, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if f.client == nil || strings.TrimSpace(f.client.APIKey) == "" {
		logger.ErrorContext(ctx, "llm api key is not configured")
		return "", &ConfigurationError{Key: "GROQ_API_KEY", Message: "is not set"}
	}
	if err := f.chain.Validate(); err != nil {
		return "", &ConfigurationError{Key: "LLM_MODEL_CHAIN", Message: err.Error()}
	}

	req = req.WithDefaults()
	attempts := make([]Attempt, 0, len(f.chain))
	var lastErr error

	for i, model := range f.chain {
		if err := ctx.Err(); err != nil {
			logger.WarnContext(ctx, "fallback chain aborted", "next_model", model, "attempts", len(attempts), "error", err)
			return "", fmt.Errorf("fallback chain aborted after %d attempts: %w", len(attempts), err)
		}

		logger.DebugContext(ctx, "trying model", "model", model, "attempt", i+1, "chain_length", len(f.chain))
		start := time.Now()
		text, err := f.attempt(ctx, model, req)
		duration := time.Since(start)

		if err == nil {
			attempts = append(attempts, Attempt{Model: model, Outcome: OutcomeSuccess})
			logger.InfoContext(ctx, "model attempt succeeded",
				"model", model,
				"attempt", i+1,
				"outcome", OutcomeSuccess,
				"duration", duration,
				"reply_length", len(text),
			)
			return text, nil
		}

		outcome := OutcomeTransport
		status := 0
		var providerErr *ProviderError
		if errors.As(err, &providerErr) {
			outcome = providerErr.Outcome
			status = providerErr.StatusCode
		}

		// The parent context ended; this is not a provider fault.
		if ctxErr := ctx.Err(); ctxErr != nil {
			logger.WarnContext(ctx, "fallback chain aborted", "model", model, "attempts", len(attempts)+1, "error", ctxErr)
			return "", fmt.Errorf("fallback chain aborted during model %s: %w", model, ctxErr)
		}

		attempts = append(attempts, Attempt{Model: model, Outcome: outcome, Err: err})
		lastErr = err
		logger.WarnContext(ctx, "model attempt failed",
			"model", model,
			"attempt", i+1,
			"outcome", outcome,
			"status", status,
			"duration", duration,
			"error", err,
		)

		if f.failFastOnClientError && isFatalClientStatus(outcome, status) {
			return "", fmt.Errorf("model %s rejected request: %w", model, err)
		}
	}

	logger.ErrorContext(ctx, "all models in fallback chain failed", "attempts", len(attempts), "error", lastErr)
	return "", &ExhaustedChainError{Attempts: attempts, Last: lastErr}
}

func (f *FallbackCaller) attempt(ctx context.Context, model string, req GenerationRequest) (string, error) {
	if f.attemptTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.attemptTimeout)
		defer cancel()
	}
	return f.client.Complete(ctx, model, req)
}

func isFatalClientStatus(outcome Outcome, status int) bool {
	return outcome == OutcomeClientError && status != http.StatusRequestTimeout
}
