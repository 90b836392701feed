package valueobject

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCurrency(t *testing.T) {
	assert.Equal(t, Currency("INR"), ParseCurrency("inr"))
	assert.Equal(t, Currency("EUR"), ParseCurrency(" EUR "))
	assert.Equal(t, DefaultCurrency, ParseCurrency(""))
	assert.Equal(t, DefaultCurrency, ParseCurrency("XYZ"))
}

func TestCurrency_ConvertBase(t *testing.T) {
	tests := []struct {
		currency Currency
		base     float64
		expected float64
	}{
		{"USD", 20, 20},
		{"INR", 20, 1660},
		{"JPY", 20, 3000},
		{"EUR", 20, 18.4},
		{"CAD", 20, 27},
		{"XYZ", 20, 20},
	}

	for _, tt := range tests {
		t.Run(string(tt.currency), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.currency.ConvertBase(tt.base))
		})
	}
}

func TestCurrency_Format(t *testing.T) {
	assert.Equal(t, "$1,234.50", Currency("USD").Format(1234.5))
	assert.Equal(t, "$0.00", Currency("USD").Format(0))
	assert.Equal(t, "₹1,660", Currency("INR").Format(1660))
	assert.Equal(t, "-€5.25", Currency("EUR").Format(-5.25))
	assert.Equal(t, "$1,000,000.00", Currency("USD").Format(1000000))
}

func TestSupportedCurrencies(t *testing.T) {
	codes := SupportedCurrencies()

	assert.Len(t, codes, 25)
	assert.Equal(t, Currency("AED"), codes[0])
	assert.Contains(t, codes, DefaultCurrency)
}
