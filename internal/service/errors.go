package service

import "errors"

// Common service errors - sentinel errors used across service implementations.
// These errors represent common conditions that callers may want to check for with errors.Is().
//
// Error handling principles:
// 1. Service methods return sentinel or domain errors for expected conditions
// 2. Input problems are reported as *domain.ValidationError wrapping domain.ErrValidation
// 3. Callers use errors.Is/errors.As to check for specific error conditions
// 4. The API layer maps service errors to appropriate HTTP status codes
var (
	// ErrTooManyLabels indicates a normalize/group request exceeded MaxLabels.
	// API layer should map this to HTTP 413 Request Entity Too Large.
	ErrTooManyLabels = errors.New("too many labels")
)
