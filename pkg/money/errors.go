package money

import (
	"errors"
	"fmt"
)

// Common money package errors
var (
	// ErrUnsupportedCurrency is returned when a code is not in the currency catalog.
	ErrUnsupportedCurrency = errors.New("unsupported currency")

	// ErrInvalidCurrencyDefinition is returned when a catalog entry has an empty
	// code or a negative number of decimals.
	ErrInvalidCurrencyDefinition = errors.New("invalid currency definition")

	// ErrNullCurrency is returned when a currency is required but the zero Currency was given.
	ErrNullCurrency = errors.New("currency is required")

	// ErrNullAmount is returned when an amount is required but none was given.
	ErrNullAmount = errors.New("amount is required")

	// ErrInvalidAmount is returned when an amount string is not a decimal number.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrFractionalMinorUnit is returned when a rounded amount still has a
	// fraction of the smallest currency unit.
	ErrFractionalMinorUnit = errors.New("amount has a fractional minor unit")

	// ErrPrecisionInvariantViolated is returned when minor units cannot be
	// converted back to an exact decimal amount.
	ErrPrecisionInvariantViolated = errors.New("precision invariant violated")

	// ErrCurrencyMismatch is returned when performing operations on money with
	// different currencies.
	ErrCurrencyMismatch = errors.New("currency mismatch")

	// ErrArithmeticOverflow is returned when a result does not fit in int64 minor units.
	ErrArithmeticOverflow = errors.New("arithmetic overflow")
)

// CurrencyMismatchError reports a binary operation between two different currencies.
// It matches ErrCurrencyMismatch with errors.Is.
type CurrencyMismatchError struct {
	Op    string // "add", "subtract" or "compare"
	Left  Currency
	Right Currency
}

func (e *CurrencyMismatchError) Error() string {
	return fmt.Sprintf("cannot %s different currencies: %s and %s", e.Op, e.Left, e.Right)
}

// Is reports whether target is ErrCurrencyMismatch.
func (e *CurrencyMismatchError) Is(target error) bool {
	return target == ErrCurrencyMismatch
}
