package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Category errors
	ErrMsgUnknownCategory = "unknown item category"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrUnknownCategory = errors.New(ErrMsgUnknownCategory)
)
