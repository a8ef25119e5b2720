package llm

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrConfiguration is returned when the caller is missing local configuration
	// such as the API credential. It is never retried.
	ErrConfiguration = errors.New("llm configuration error")
	// ErrRetryableProvider matches provider failures that advance the model chain:
	// transport faults, rate limiting, server errors and empty completions.
	ErrRetryableProvider = errors.New("retryable provider error")
	// ErrExhaustedChain is returned when every model in the chain failed.
	ErrExhaustedChain = errors.New("all models in fallback chain failed")
)

// ConfigurationError reports a missing or invalid configuration value.
type ConfigurationError struct {
	Key     string
	Message string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error on %s: %s", e.Key, e.Message)
}

// Is reports whether target is ErrConfiguration.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// Outcome classifies the result of one model attempt.
type Outcome string

const (
	OutcomeSuccess     Outcome = "success"
	OutcomeTransport   Outcome = "transport_error"
	OutcomeRateLimited Outcome = "rate_limited"
	OutcomeServerError Outcome = "server_error"
	OutcomeClientError Outcome = "client_error"
	OutcomeEmpty       Outcome = "empty_completion"
	OutcomeDecode      Outcome = "decode_error"
	OutcomeCanceled    Outcome = "canceled"
)

// ProviderError describes a failed attempt against one model.
type ProviderError struct {
	Model      string
	Outcome    Outcome
	StatusCode int
	// Body holds the provider's response body for non-success statuses.
	Body string
	Err  error
}

func (e *ProviderError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "model %s: %s", e.Model, e.Outcome)
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, " (HTTP %d)", e.StatusCode)
	}
	if e.Body != "" {
		fmt.Fprintf(&b, ": %s", e.Body)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrRetryableProvider and the failure is transient.
func (e *ProviderError) Is(target error) bool {
	return target == ErrRetryableProvider && e.Retryable()
}

// Retryable reports whether the failure is transient.
func (e *ProviderError) Retryable() bool {
	switch e.Outcome {
	case OutcomeTransport, OutcomeRateLimited, OutcomeServerError, OutcomeEmpty, OutcomeDecode:
		return true
	default:
		return false
	}
}

// Attempt records the outcome of one model attempt in a chain.
type Attempt struct {
	Model   string
	Outcome Outcome
	Err     error
}

// ExhaustedChainError is returned when no model in the chain produced a completion.
type ExhaustedChainError struct {
	Attempts []Attempt
	// Last is the most recent attempt error.
	Last error
}

func (e *ExhaustedChainError) Error() string {
	if e.Last == nil {
		return fmt.Sprintf("%s after %d attempts", ErrExhaustedChain, len(e.Attempts))
	}
	return fmt.Sprintf("%s after %d attempts: %v", ErrExhaustedChain, len(e.Attempts), e.Last)
}

func (e *ExhaustedChainError) Unwrap() error {
	return e.Last
}

// Is reports whether target is ErrExhaustedChain.
func (e *ExhaustedChainError) Is(target error) bool {
	return target == ErrExhaustedChain
}
