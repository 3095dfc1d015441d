package models

import (
	"errors"
	"fmt"
)

// Custom errors
var (
	ErrMissingMarketSpread = errors.New("game record is missing market spread")
	ErrMissingTeam         = errors.New("game record is missing a team")
	ErrNotFound            = errors.New("record not found")
	ErrDuplicateKey        = errors.New("duplicate key violation")
	ErrStaleSequence       = errors.New("rating update sequence is stale or replayed")
)

// ValidationError represents a named validation failure on an input record
type ValidationError struct {
	Code    string
	Message string
}

// NewValidationError creates a new validation error with a stable code
func NewValidationError(code, message string) *ValidationError {
	return &ValidationError{Code: code, Message: message}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}
