package model

import (
	"github.com/spendxp/backend/internal/domain/entity"
)

// InvestmentDocument is the stored JSON shape of an investment.
type InvestmentDocument struct {
	ID              string  `json:"id"`
	AccountName     string  `json:"accountName"`
	Ticker          string  `json:"ticker,omitempty"`
	Type            string  `json:"type"`
	CurrentValue    float64 `json:"currentValue"`
	ProjectedGrowth float64 `json:"projectedGrowth"`
}

// ToEntity converts an InvestmentDocument to a domain Investment entity.
func (d *InvestmentDocument) ToEntity() *entity.Investment {
	return &entity.Investment{
		ID:              d.ID,
		AccountName:     d.AccountName,
		Ticker:          d.Ticker,
		Type:            entity.InvestmentType(d.Type),
		CurrentValue:    d.CurrentValue,
		ProjectedGrowth: d.ProjectedGrowth,
	}
}

// InvestmentDocumentFromEntity creates an InvestmentDocument from a domain Investment entity.
func InvestmentDocumentFromEntity(i *entity.Investment) InvestmentDocument {
	return InvestmentDocument{
		ID:              i.ID,
		AccountName:     i.AccountName,
		Ticker:          i.Ticker,
		Type:            string(i.Type),
		CurrentValue:    i.CurrentValue,
		ProjectedGrowth: i.ProjectedGrowth,
	}
}
