package variant

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every configuration validation failure.
var ErrInvalidConfig = errors.New("invalid node configuration")

// ValidationError reports why a requested combination of axes was rejected.
type ValidationError struct {
	// Variant is the best-effort name of the rejected variant.
	Variant string
	// Reason is the human-readable rejection reason.
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Variant == "" {
		return fmt.Sprintf("%s: %s", ErrInvalidConfig, e.Reason)
	}

	return fmt.Sprintf("%s %s: %s", ErrInvalidConfig, e.Variant, e.Reason)
}

// Unwrap makes errors.Is(err, ErrInvalidConfig) hold.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidConfig
}

func invalid(variant, format string, args ...any) error {
	return &ValidationError{Variant: variant, Reason: fmt.Sprintf(format, args...)}
}
