package domain

import (
	"errors"  // Sentinel errors
	"fmt"     // Error formatting
	"sort"    // Stable field order
	"strings" // Message joining
)

var (
	ErrCardNotFound      = errors.New("card not found")     // No card with the given number
	ErrInsufficientFunds = errors.New("insufficient funds") // Balance below amount plus fee
)

// ValidationError maps each failing input field to its messages.
type ValidationError struct {
	Fields map[string][]string // Field name to messages
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields) // Map order is random

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+strings.Join(e.Fields[f], "; "))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// CardNotFoundError reports which side of a transfer did not resolve.
type CardNotFoundError struct {
	Field  string // "source" or "destination"
	Number string // Normalized card number
}

func (e *CardNotFoundError) Error() string {
	return fmt.Sprintf("%s card %s: %v", e.Field, e.Number, ErrCardNotFound)
}

func (e *CardNotFoundError) Is(target error) bool {
	return target == ErrCardNotFound
}
