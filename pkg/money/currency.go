package money

import (
	"fmt"
	"slices"
	"strings"
)

// Currency represents a monetary unit with its number of decimal places
// (the scale of one minor unit, e.g. 2 for cents).
//
// Currencies are only obtained from the catalog through Lookup, so every
// non-zero Currency is valid. Two currencies are equal iff both code and
// decimals match, which is what == compares.
type Currency struct {
	code     Code
	decimals int
}

// Code returns the currency code.
func (c Currency) Code() Code { return c.code }

// Decimals returns the number of decimal places of one minor unit.
func (c Currency) Decimals() int { return c.decimals }

// IsZero reports whether c is the zero Currency, i.e. no currency at all.
func (c Currency) IsZero() bool { return c == Currency{} }

// String returns the currency code as a string
func (c Currency) String() string { return string(c.code) }

// newCurrency validates a catalog entry.
func newCurrency(code string, decimals int) (Currency, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return Currency{}, fmt.Errorf("%w: empty code", ErrInvalidCurrencyDefinition)
	}
	if decimals < 0 {
		return Currency{}, fmt.Errorf(
			"%w: %s has negative decimals %d",
			ErrInvalidCurrencyDefinition,
			code,
			decimals,
		)
	}
	return Currency{code: Code(strings.ToUpper(code)), decimals: decimals}, nil
}

type definition struct {
	code     Code
	decimals int
}

var definitions = []definition{
	{USD, 2},
	{EUR, 2},
	{GBP, 2},
	{JPY, 0},
	{KWD, 3},
	{BTC, 8},
}

// catalog is built once at package initialization and never written afterwards.
var catalog = mustBuildCatalog(definitions)

func buildCatalog(defs []definition) (map[Code]Currency, error) {
	out := make(map[Code]Currency, len(defs))
	for _, d := range defs {
		c, err := newCurrency(string(d.code), d.decimals)
		if err != nil {
			return nil, err
		}
		if _, dup := out[c.code]; dup {
			return nil, fmt.Errorf("%w: duplicate code %s", ErrInvalidCurrencyDefinition, c.code)
		}
		out[c.code] = c
	}
	return out, nil
}

func mustBuildCatalog(defs []definition) map[Code]Currency {
	c, err := buildCatalog(defs)
	if err != nil {
		panic(fmt.Sprintf("money: %v", err))
	}
	return c
}

// Lookup returns the catalog currency for code. The match ignores case and
// surrounding whitespace.
func Lookup(code string) (Currency, error) {
	c, ok := catalog[Code(strings.ToUpper(strings.TrimSpace(code)))]
	if !ok {
		return Currency{}, fmt.Errorf("%w: %q", ErrUnsupportedCurrency, code)
	}
	return c, nil
}

// MustLookup is like Lookup but panics for unsupported codes.
func MustLookup(code Code) Currency {
	c, err := Lookup(string(code))
	if err != nil {
		panic(fmt.Sprintf("money.MustLookup(%s): %v", code, err))
	}
	return c
}

// Supported returns the supported currency codes in sorted order.
func Supported() []Code {
	codes := make([]Code, 0, len(catalog))
	for code := range catalog {
		codes = append(codes, code)
	}
	slices.Sort(codes)
	return codes
}
