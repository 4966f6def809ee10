// Package money provides functionality for handling monetary values.
//
// It is a value object that represents a monetary value in a specific currency.
// Invariants:
//   - Amount is always stored as an int64 count of the smallest currency unit
//     (e.g., cents for USD).
//   - Currencies come from a fixed catalog and are looked up by code.
//   - All arithmetic and comparison operations require matching currencies.
//   - Arithmetic never wraps; results outside the int64 range are errors.
package money

import (
	"cmp"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// displayDecimals is the number of decimals String renders for every currency.
const displayDecimals = 2

// Money represents a monetary value in a specific currency.
// Money values are immutable; every operation returns a new value.
type Money struct {
	minorUnits int64
	currency   Currency
}

// Zero creates a Money object with zero amount in the specified currency.
func Zero(currency Currency) Money {
	return Money{currency: currency}
}

// FromDecimal creates a Money object from a decimal amount.
// The amount is rounded half to even to the currency's decimals and converted
// to the smallest currency unit.
func FromDecimal(amount decimal.Decimal, currency Currency) (Money, error) {
	if currency.IsZero() {
		return Money{}, ErrNullCurrency
	}

	places := int32(currency.decimals)
	units := amount.RoundBank(places).Shift(places)
	if !units.IsInteger() {
		return Money{}, fmt.Errorf("%w: %s %s", ErrFractionalMinorUnit, amount, currency)
	}
	if !units.BigInt().IsInt64() {
		return Money{}, fmt.Errorf(
			"%w: %s %s does not fit in minor units",
			ErrArithmeticOverflow,
			amount,
			currency,
		)
	}

	return Money{minorUnits: units.IntPart(), currency: currency}, nil
}

// FromNullDecimal is like FromDecimal but reports ErrNullAmount when amount is not valid.
func FromNullDecimal(amount decimal.NullDecimal, currency Currency) (Money, error) {
	if !amount.Valid {
		return Money{}, ErrNullAmount
	}
	return FromDecimal(amount.Decimal, currency)
}

// FromString parses a plain decimal literal such as "10.50" or "-0.00000001".
// Grouping separators and locale formats are not accepted.
func FromString(amount string, currency Currency) (Money, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return Money{}, ErrNullAmount
	}
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}
	return FromDecimal(d, currency)
}

// FromMinorUnits creates a Money object directly from the smallest currency unit.
func FromMinorUnits(units int64, currency Currency) (Money, error) {
	if currency.IsZero() {
		return Money{}, ErrNullCurrency
	}
	return Money{minorUnits: units, currency: currency}, nil
}

// MinorUnits returns the amount in the smallest currency unit.
func (m Money) MinorUnits() int64 {
	return m.minorUnits
}

// Currency returns the currency of the Money object.
func (m Money) Currency() Currency {
	return m.currency
}

// ToDecimal returns the amount in the main currency unit with exactly
// Currency().Decimals() decimal places.
func (m Money) ToDecimal() (decimal.Decimal, error) {
	if m.currency.IsZero() {
		return decimal.Decimal{}, ErrNullCurrency
	}
	places := int32(m.currency.decimals)
	d := m.decimal()
	back := d.Shift(places)
	if !back.IsInteger() || !back.Equal(decimal.NewFromInt(m.minorUnits)) {
		return decimal.Decimal{}, fmt.Errorf(
			"%w: %d minor units of %s",
			ErrPrecisionInvariantViolated,
			m.minorUnits,
			m.currency,
		)
	}
	return d, nil
}

func (m Money) decimal() decimal.Decimal {
	return decimal.New(m.minorUnits, -int32(m.currency.decimals))
}

// IsSameCurrency checks if the current Money object has the same currency as another Money object.
func (m Money) IsSameCurrency(other Money) bool {
	return m.currency == other.currency
}

// checkOperand validates that m and other can be combined by op.
func (m Money) checkOperand(op string, other Money) error {
	if m.currency.IsZero() || other.currency.IsZero() {
		return ErrNullCurrency
	}
	if !m.IsSameCurrency(other) {
		return &CurrencyMismatchError{Op: op, Left: m.currency, Right: other.currency}
	}
	return nil
}

// Add returns a new Money object with the sum of amounts.
// Invariants enforced:
//   - Currencies must match.
//   - The sum must fit in int64.
func (m Money) Add(other Money) (Money, error) {
	if err := m.checkOperand("add", other); err != nil {
		return Money{}, err
	}
	sum, ok := addInt64(m.minorUnits, other.minorUnits)
	if !ok {
		return Money{}, fmt.Errorf(
			"%w: %d + %d %s",
			ErrArithmeticOverflow,
			m.minorUnits,
			other.minorUnits,
			m.currency,
		)
	}
	return Money{minorUnits: sum, currency: m.currency}, nil
}

// Subtract returns a new Money object with the difference of amounts.
// The result can be negative if the subtrahend is larger than the minuend.
// Invariants enforced:
//   - Currencies must match.
//   - The difference must fit in int64.
func (m Money) Subtract(other Money) (Money, error) {
	if err := m.checkOperand("subtract", other); err != nil {
		return Money{}, err
	}
	diff, ok := subInt64(m.minorUnits, other.minorUnits)
	if !ok {
		return Money{}, fmt.Errorf(
			"%w: %d - %d %s",
			ErrArithmeticOverflow,
			m.minorUnits,
			other.minorUnits,
			m.currency,
		)
	}
	return Money{minorUnits: diff, currency: m.currency}, nil
}

// Negate returns the Money object with the opposite sign.
func (m Money) Negate() (Money, error) {
	return Zero(m.currency).Subtract(m)
}

// Compare returns -1, 0 or +1 depending on whether m is less than, equal to
// or greater than other.
// Returns an error if currencies do not match.
func (m Money) Compare(other Money) (int, error) {
	if err := m.checkOperand("compare", other); err != nil {
		return 0, err
	}
	return cmp.Compare(m.minorUnits, other.minorUnits), nil
}

// GreaterThan checks if the current Money object is greater than another Money object.
func (m Money) GreaterThan(other Money) (bool, error) {
	c, err := m.Compare(other)
	return c > 0, err
}

// GreaterThanOrEqual checks if the current Money object is greater than or equal to another.
func (m Money) GreaterThanOrEqual(other Money) (bool, error) {
	c, err := m.Compare(other)
	return err == nil && c >= 0, err
}

// LessThan checks if the current Money object is less than another Money object.
func (m Money) LessThan(other Money) (bool, error) {
	c, err := m.Compare(other)
	return c < 0, err
}

// Equals checks if both amount and currency are equal.
func (m Money) Equals(other Money) bool {
	return m == other
}

// IsPositive returns true if the amount is greater than zero.
func (m Money) IsPositive() bool {
	return m.minorUnits > 0
}

// IsNegative returns true if the amount is less than zero.
func (m Money) IsNegative() bool {
	return m.minorUnits < 0
}

// IsZero returns true if the amount is zero.
func (m Money) IsZero() bool {
	return m.minorUnits == 0
}

// String returns "<CODE> <amount>" with two decimals for every currency,
// so JPY 12345 renders as "JPY 12345.00" and BTC 0.12345678 as "BTC 0.12".
// Use ExactString for the currency's own precision.
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.currency, m.decimal().StringFixed(displayDecimals))
}

// ExactString returns "<CODE> <amount>" with the currency's decimals.
func (m Money) ExactString() string {
	return fmt.Sprintf("%s %s", m.currency, m.decimal().StringFixed(int32(m.currency.decimals)))
}

// MarshalJSON implements json.Marshaler interface.
// The amount is an exact decimal string, e.g. {"amount":"10.50","currency":"USD"}.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Amount   string `json:"amount"`
		Currency string `json:"currency"`
	}{
		Amount:   m.decimal().StringFixed(int32(m.currency.decimals)),
		Currency: m.currency.String(),
	})
}

// UnmarshalJSON implements json.Unmarshaler interface.
// The currency must be supported and the amount is rounded like FromDecimal.
func (m *Money) UnmarshalJSON(data []byte) error {
	var aux struct {
		Amount   decimal.NullDecimal `json:"amount"`
		Currency string              `json:"currency"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	currency, err := Lookup(aux.Currency)
	if err != nil {
		return err
	}
	parsed, err := FromNullDecimal(aux.Amount, currency)
	if err != nil {
		return err
	}

	*m = parsed
	return nil
}
