package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCurrency(t *testing.T) {
	tests := []struct {
		in      string
		want    Currency
		wantErr bool
	}{
		{in: "USD", want: CurrencyUSD},
		{in: "myr", want: CurrencyMYR},
		{in: " sgd ", want: CurrencySGD},
		{in: "BTC", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCurrency(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTheme(t *testing.T) {
	for _, in := range []string{"light", "Dark", "auto"} {
		_, err := ParseTheme(in)
		assert.NoError(t, err, in)
	}

	_, err := ParseTheme("sepia")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCurrencyCatalog(t *testing.T) {
	assert.Len(t, Currencies, 9)

	cad, ok := LookupCurrency(CurrencyCAD)
	assert.True(t, ok)
	assert.Equal(t, "C$", cad.Symbol)
	assert.Equal(t, "Canadian Dollar", cad.Name)

	_, ok = LookupCurrency("XYZ")
	assert.False(t, ok)
}
