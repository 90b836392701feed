// Package valueobject contains domain value objects for the SpendXP system.
package valueobject

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Currency is an ISO-like currency code supported by the app.
type Currency string

// DefaultCurrency is used whenever a stored currency is missing or unknown.
const DefaultCurrency Currency = "USD"

// CurrencyInfo holds display and conversion rules for a currency.
type CurrencyInfo struct {
	Symbol     string
	Name       string
	Multiplier decimal.Decimal // Scale factor from USD base amounts
	Precision  int32           // Fraction digits used for display and rounding
}

func info(symbol, name, multiplier string, precision int32) CurrencyInfo {
	return CurrencyInfo{
		Symbol:     symbol,
		Name:       name,
		Multiplier: decimal.RequireFromString(multiplier),
		Precision:  precision,
	}
}

var currencies = map[Currency]CurrencyInfo{
	"USD": info("$", "US Dollar", "1", 2),
	"CAD": info("CA$", "Canadian Dollar", "1.35", 2),
	"INR": info("₹", "Indian Rupee", "83", 0),
	"AUD": info("A$", "Australian Dollar", "1.5", 2),
	"SAR": info("SR", "Saudi Riyal", "3.75", 2),
	"EUR": info("€", "Euro", "0.92", 2),
	"GBP": info("£", "British Pound", "0.79", 2),
	"JPY": info("¥", "Japanese Yen", "150", 0),
	"CNY": info("¥", "Chinese Yuan", "7.2", 2),
	"NZD": info("NZ$", "New Zealand Dollar", "1.6", 2),
	"BRL": info("R$", "Brazilian Real", "5", 2),
	"AED": info("AED", "UAE Dirham", "3.67", 2),
	"SGD": info("S$", "Singapore Dollar", "1.35", 2),
	"ZAR": info("R", "South African Rand", "19", 2),
	"MXN": info("Mex$", "Mexican Peso", "17", 2),
	"HKD": info("HK$", "Hong Kong Dollar", "7.8", 2),
	"KRW": info("₩", "South Korean Won", "1300", 0),
	"PHP": info("₱", "Philippine Peso", "56", 2),
	"IDR": info("Rp", "Indonesian Rupiah", "15500", 0),
	"THB": info("฿", "Thai Baht", "36", 2),
	"VND": info("₫", "Vietnamese Dong", "24500", 0),
	"MYR": info("RM", "Malaysian Ringgit", "4.7", 2),
	"TRY": info("₺", "Turkish Lira", "31", 2),
	"NGN": info("₦", "Nigerian Naira", "1500", 2),
	"RUB": info("₽", "Russian Ruble", "92", 2),
}

// ParseCurrency returns the currency for a code, falling back to USD when the
// code is empty or unsupported.
func ParseCurrency(code string) Currency {
	c := Currency(strings.ToUpper(strings.TrimSpace(code)))
	if c.IsSupported() {
		return c
	}
	return DefaultCurrency
}

// SupportedCurrencies returns every supported currency code in alphabetical order.
func SupportedCurrencies() []Currency {
	out := make([]Currency, 0, len(currencies))
	for c := range currencies {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// IsSupported reports whether the currency has a rules entry.
func (c Currency) IsSupported() bool {
	_, ok := currencies[c]
	return ok
}

// Info returns the rules for the currency. Unsupported codes get USD rules.
func (c Currency) Info() CurrencyInfo {
	if i, ok := currencies[c]; ok {
		return i
	}
	return currencies[DefaultCurrency]
}

// ConvertBase scales a USD base amount into this currency and rounds it to the
// currency precision (precision 0 rounds to the nearest whole unit).
func (c Currency) ConvertBase(base float64) float64 {
	i := c.Info()
	converted := decimal.NewFromFloat(base).Mul(i.Multiplier).Round(i.Precision)
	return converted.InexactFloat64()
}

// Format renders an amount with the currency symbol, thousands grouping and
// exactly Precision fraction digits, e.g. "$1,234.50".
func (c Currency) Format(amount float64) string {
	i := c.Info()
	fixed := decimal.NewFromFloat(amount).StringFixed(i.Precision)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}

	whole, frac, hasFrac := strings.Cut(fixed, ".")
	var sb strings.Builder
	sb.WriteString(sign)
	sb.WriteString(i.Symbol)
	for idx, r := range whole {
		if idx > 0 && (len(whole)-idx)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(r)
	}
	if hasFrac {
		sb.WriteByte('.')
		sb.WriteString(frac)
	}
	return sb.String()
}
