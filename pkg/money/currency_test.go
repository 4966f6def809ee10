package money

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		want     Code
		decimals int
		wantErr  error
	}{
		{"USD", "USD", USD, 2, nil},
		{"EUR lower case", "eur", EUR, 2, nil},
		{"JPY mixed case", "jPy", JPY, 0, nil},
		{"BTC with spaces", "  btc ", BTC, 8, nil},
		{"KWD", "KWD", KWD, 3, nil},
		{"GBP", "GBP", GBP, 2, nil},
		{"unknown code", "XYZ", "", 0, ErrUnsupportedCurrency},
		{"empty code", "", "", 0, ErrUnsupportedCurrency},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Lookup(tt.code)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.True(t, c.IsZero())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Code())
			assert.Equal(t, tt.decimals, c.Decimals())
			assert.Equal(t, string(tt.want), c.String())
		})
	}
}

func TestLookup_ErrorNamesCode(t *testing.T) {
	_, err := Lookup("doge")
	require.Error(t, err)
	assert.EqualError(t, err, `unsupported currency: "doge"`)
}

func TestCurrency_Equality(t *testing.T) {
	a := MustLookup(USD)
	b, err := Lookup("usd")
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.True(t, a == b)
	assert.NotEqual(t, a, MustLookup(EUR))
	// same code with another scale is a different currency
	assert.NotEqual(t, a, Currency{code: USD, decimals: 3})
}

func TestMustLookup_Panics(t *testing.T) {
	assert.Panics(t, func() { MustLookup("XXX") })
	assert.NotPanics(t, func() { MustLookup(BTC) })
}

func TestSupported(t *testing.T) {
	assert.Equal(t, []Code{BTC, EUR, GBP, JPY, KWD, USD}, Supported())
}

func TestNewCurrency(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		decimals int
		want     Currency
		wantErr  bool
	}{
		{"valid", "USD", 2, Currency{code: USD, decimals: 2}, false},
		{"trimmed and upper cased", " eur ", 2, Currency{code: EUR, decimals: 2}, false},
		{"zero decimals", "JPY", 0, Currency{code: JPY, decimals: 0}, false},
		{"empty code", "", 2, Currency{}, true},
		{"blank code", "   ", 2, Currency{}, true},
		{"negative decimals", "USD", -1, Currency{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := newCurrency(tt.code, tt.decimals)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidCurrencyDefinition)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, c)
		})
	}
}

func TestBuildCatalog(t *testing.T) {
	t.Run("valid definitions", func(t *testing.T) {
		c, err := buildCatalog([]definition{{USD, 2}, {JPY, 0}})
		require.NoError(t, err)
		assert.Len(t, c, 2)
	})

	t.Run("invalid definition", func(t *testing.T) {
		_, err := buildCatalog([]definition{{USD, 2}, {"", 2}})
		require.ErrorIs(t, err, ErrInvalidCurrencyDefinition)
	})

	t.Run("duplicate code", func(t *testing.T) {
		_, err := buildCatalog([]definition{{USD, 2}, {"usd", 2}})
		require.ErrorIs(t, err, ErrInvalidCurrencyDefinition)
	})

	t.Run("must build panics", func(t *testing.T) {
		assert.Panics(t, func() { mustBuildCatalog([]definition{{"EUR", -2}}) })
	})
}

func TestLookup_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, code := range Supported() {
				c, err := Lookup(string(code))
				assert.NoError(t, err)
				assert.Equal(t, code, c.Code())
			}
		}()
	}
	wg.Wait()
}
