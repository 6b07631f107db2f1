package core

import "fmt"

// ValidationError reports malformed process descriptors supplied by the
// caller. An empty process list is not an error.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ConfigurationError reports unusable engine parameters, such as a
// non-positive time quantum.
type ConfigurationError struct {
	Message string
}

func (e ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// InvariantViolation indicates an engine bug. It is fatal for the run and
// never recovered from.
type InvariantViolation struct {
	Message string
}

func (e InvariantViolation) Error() string {
	return fmt.Sprintf("invariant violation: %s", e.Message)
}

func ErrInvalidJob(format string, args ...any) error {
	return ValidationError{Message: fmt.Sprintf(format, args...)}
}

func ErrNonPositiveQuantum(quantum int) error {
	return ConfigurationError{Message: fmt.Sprintf("time quantum must be positive, got %d", quantum)}
}

func ErrNegativeRemaining(id, remaining int) error {
	return InvariantViolation{Message: fmt.Sprintf("process %d reached a decision point with remaining time %d", id, remaining)}
}

func ErrUnsetResponse(id int) error {
	return InvariantViolation{Message: fmt.Sprintf("process %d finished without ever being dispatched", id)}
}
