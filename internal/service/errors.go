package service

import (
	"errors"
	"fmt"

	"tagtemanin/internal/llm"
)

var (
	// ErrInvalidInput is returned when input validation fails.
	ErrInvalidInput = errors.New("invalid input")
	// ErrConfiguration is returned when the server is missing required configuration.
	ErrConfiguration = errors.New("server configuration error")
	// ErrExternalService is returned when the model provider could not produce
	// a completion.
	ErrExternalService = errors.New("external service error")
)

// ValidationError represents a validation error with a field name.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field %s: %s", e.Field, e.Message)
}

// Is reports whether target is ErrInvalidInput.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// WrapError wraps an error with additional context.
func WrapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// classifyCallError maps model caller failures onto service sentinels while
// keeping the original error in the chain.
func classifyCallError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, llm.ErrConfiguration):
		return fmt.Errorf("%w: %w", ErrConfiguration, err)
	case errors.Is(err, llm.ErrExhaustedChain):
		return fmt.Errorf("%w: %w", ErrExternalService, err)
	case errors.As(err, new(*llm.ProviderError)):
		// a provider rejection that stopped the chain early
		return fmt.Errorf("%w: %w", ErrExternalService, err)
	default:
		return err
	}
}
