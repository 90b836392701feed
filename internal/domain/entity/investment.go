package entity

import (
	"strings"

	"github.com/google/uuid"
)

// InvestmentType classifies a holding.
type InvestmentType string

const (
	InvestmentTypeStocks  InvestmentType = "Stocks"
	InvestmentTypeCrypto  InvestmentType = "Crypto"
	InvestmentTypeSavings InvestmentType = "Savings"
	InvestmentTypeOther   InvestmentType = "Other"
)

// IsValid reports whether t is a known investment type.
func (t InvestmentType) IsValid() bool {
	switch t {
	case InvestmentTypeStocks, InvestmentTypeCrypto, InvestmentTypeSavings, InvestmentTypeOther:
		return true
	}
	return false
}

// Investment is a holding tracked by the user.
type Investment struct {
	ID              string
	AccountName     string
	Ticker          string
	Type            InvestmentType
	CurrentValue    float64
	ProjectedGrowth float64 // Annual percentage
}

// NewInvestment creates a new investment. Tickers are stored upper case.
func NewInvestment(accountName, ticker string, investmentType InvestmentType, currentValue, projectedGrowth float64) *Investment {
	return &Investment{
		ID:              uuid.NewString(),
		AccountName:     strings.TrimSpace(accountName),
		Ticker:          strings.ToUpper(strings.TrimSpace(ticker)),
		Type:            investmentType,
		CurrentValue:    currentValue,
		ProjectedGrowth: projectedGrowth,
	}
}

// Subject describes the investment to the analyst: the ticker when known,
// otherwise the account name.
func (i *Investment) Subject() string {
	if i.Ticker != "" {
		return "$" + i.Ticker
	}
	return i.AccountName
}

// Investments is the investment collection of an account.
type Investments []*Investment

// ByID returns the investment with the given ID, or nil.
func (is Investments) ByID(id string) *Investment {
	for _, i := range is {
		if i.ID == id {
			return i
		}
	}
	return nil
}

// Remove returns the collection without the investment id and whether it was present.
func (is Investments) Remove(id string) (Investments, bool) {
	out := make(Investments, 0, len(is))
	found := false
	for _, i := range is {
		if i.ID == id {
			found = true
			continue
		}
		out = append(out, i)
	}
	return out, found
}
