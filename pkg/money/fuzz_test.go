package money_test

import (
	"errors"
	"testing"

	"github.com/amirasaad/ledger/pkg/money"
	"github.com/shopspring/decimal"
)

// FuzzFromString tests FromString invariants with random input.
func FuzzFromString(f *testing.F) {
	f.Add("100", "USD")
	f.Add("-50.125", "EUR")
	f.Add("0", "JPY")
	f.Add("0.123456789", "BTC")
	f.Add("1e12", "KWD")

	f.Fuzz(func(t *testing.T, amount string, code string) {
		currency, err := money.Lookup(code)
		if err != nil {
			t.Skip("Skipping unsupported currency code")
		}

		m, err := money.FromString(amount, currency)
		if err != nil {
			if errors.Is(err, money.ErrInvalidAmount) ||
				errors.Is(err, money.ErrNullAmount) ||
				errors.Is(err, money.ErrArithmeticOverflow) {
				return
			}
			t.Fatalf("unexpected error for %q %s: %v", amount, code, err)
		}

		d, err := m.ToDecimal()
		if err != nil {
			t.Fatalf("ToDecimal failed for %q %s: %v", amount, code, err)
		}
		parsed, _ := decimal.NewFromString(amount)
		want := parsed.RoundBank(int32(currency.Decimals()))
		if !want.Equal(d) {
			t.Errorf("round trip of %q %s: got %s, want %s", amount, code, d, want)
		}
	})
}

// FuzzAddSubtract tests the inverse and commutativity laws.
func FuzzAddSubtract(f *testing.F) {
	f.Add(int64(1000), int64(550))
	f.Add(int64(-1), int64(1))
	f.Add(int64(9223372036854775807), int64(1))

	f.Fuzz(func(t *testing.T, a, b int64) {
		m1, _ := money.FromMinorUnits(a, usd)
		m2, _ := money.FromMinorUnits(b, usd)

		sum, err := m1.Add(m2)
		if err != nil {
			if !errors.Is(err, money.ErrArithmeticOverflow) {
				t.Fatalf("unexpected error: %v", err)
			}
			if m1.MinorUnits() != a || m2.MinorUnits() != b {
				t.Fatalf("operands changed after overflow")
			}
			return
		}
		swapped, err := m2.Add(m1)
		if err != nil || swapped != sum {
			t.Errorf("Add is not commutative for %d, %d", a, b)
		}
		back, err := sum.Subtract(m2)
		if err != nil || back != m1 {
			t.Errorf("Subtract does not invert Add for %d, %d", a, b)
		}
	})
}
