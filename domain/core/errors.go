package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Misuse errors: the caller asked for an operation the domain cannot perform
	ErrNotNegatable         = errors.New("value set not negatable")
	ErrAlphabetNotNegatable = fmt.Errorf("%w: pulse alphabet", ErrNotNegatable)
	ErrStatesNotNegatable   = fmt.Errorf("%w: state set", ErrNotNegatable)
	ErrInvalidTransform     = errors.New("invalid symmetry transform")
	ErrUnsupportedCategory  = errors.New("unsupported device category")

	// Invariant errors: internal bookkeeping disagrees with itself
	ErrCountMismatch  = errors.New("permutation count mismatch")
	ErrNotRegistered  = errors.New("function not registered")
	ErrInvalidMapping = errors.New("invalid transition mapping")

	// Symbol errors: a pulse or state fell outside its declared set
	ErrUnknownSymbol = errors.New("unknown symbol")
)

// Error constructors with context
func NewUnknownSymbolError(set string, symbol string) error {
	return fmt.Errorf("%w: %q not in %s", ErrUnknownSymbol, symbol, set)
}

func NewCountMismatchError(expected, actual uint64) error {
	return fmt.Errorf("%w: expected %d, enumerated %d", ErrCountMismatch, expected, actual)
}

func NewTransformError(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidTransform, reason)
}

func NewMappingError(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidMapping, reason)
}

// Error checking helpers
func IsMisuseError(err error) bool {
	return errors.Is(err, ErrNotNegatable) ||
		errors.Is(err, ErrInvalidTransform) ||
		errors.Is(err, ErrUnsupportedCategory)
}

func IsInvariantError(err error) bool {
	return errors.Is(err, ErrCountMismatch) ||
		errors.Is(err, ErrNotRegistered) ||
		errors.Is(err, ErrInvalidMapping)
}

func IsSymbolError(err error) bool {
	return errors.Is(err, ErrUnknownSymbol)
}
