package dto

import "github.com/spendxp/backend/internal/domain/entity"

// CreateInvestmentRequest represents the request body for recording an investment.
type CreateInvestmentRequest struct {
	AccountName     string  `json:"account_name" binding:"required"`
	Ticker          string  `json:"ticker,omitempty"`
	Type            string  `json:"type" binding:"required"`
	CurrentValue    float64 `json:"current_value"`
	ProjectedGrowth float64 `json:"projected_growth"`
}

// InvestmentResponse represents a single investment.
type InvestmentResponse struct {
	ID              string  `json:"id"`
	AccountName     string  `json:"account_name"`
	Ticker          string  `json:"ticker,omitempty"`
	Type            string  `json:"type"`
	CurrentValue    float64 `json:"current_value"`
	ProjectedGrowth float64 `json:"projected_growth"`
}

// InvestmentListResponse represents the portfolio.
type InvestmentListResponse struct {
	Investments []InvestmentResponse `json:"investments"`
	TotalValue  float64              `json:"total_value"`
}

// AnalysisResponse carries the advice service's analysis text.
type AnalysisResponse struct {
	Subject  string `json:"subject"`
	Analysis string `json:"analysis"`
}

// AskRequest represents a question to the money coach.
type AskRequest struct {
	Prompt string `json:"prompt"`
}

// AskResponse carries the coach's reply.
type AskResponse struct {
	Reply string `json:"reply"`
}

// ToInvestmentResponse converts a domain Investment entity to its DTO.
func ToInvestmentResponse(i *entity.Investment) InvestmentResponse {
	return InvestmentResponse{
		ID:              i.ID,
		AccountName:     i.AccountName,
		Ticker:          i.Ticker,
		Type:            string(i.Type),
		CurrentValue:    i.CurrentValue,
		ProjectedGrowth: i.ProjectedGrowth,
	}
}
