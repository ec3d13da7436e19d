package pricing

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is the root of every caller-input error raised by this package.
	ErrValidation = errors.New("validation error")
	// ErrDataIntegrity means stored pricing data cannot produce a quote.
	ErrDataIntegrity = errors.New("pricing data integrity error")
)

// ValidationError describes a single rejected input field.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func invalid(field, value, reason string) error {
	return &ValidationError{Field: field, Value: value, Reason: reason}
}

// WarningKind classifies a non-fatal ambiguity found while pricing.
type WarningKind string

const (
	WarningOverlappingTiers WarningKind = "overlapping_tiers"
	WarningTiedSeasons      WarningKind = "tied_seasons"
)

// Warning is returned alongside a successful result; it never aborts pricing.
type Warning struct {
	Kind   WarningKind
	Detail string
}

func (w Warning) String() string {
	return string(w.Kind) + ": " + w.Detail
}
