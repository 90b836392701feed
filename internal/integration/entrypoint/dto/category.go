package dto

import (
	"github.com/spendxp/backend/internal/application/usecase/category"
	"github.com/spendxp/backend/internal/domain/entity"
)

// CreateCategoryRequest represents the request body for category creation.
type CreateCategoryRequest struct {
	Name  string `json:"name" binding:"required"`
	Emoji string `json:"emoji,omitempty"`
	Color string `json:"color,omitempty"`
}

// SetBudgetRequest sets a budget, or clears it when budget is null.
type SetBudgetRequest struct {
	Budget *float64 `json:"budget"`
}

// CategoryResponse represents a single category in API responses.
type CategoryResponse struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Emoji  string   `json:"emoji"`
	Color  string   `json:"color"`
	Role   string   `json:"role"`
	Budget *float64 `json:"budget"`
	Spent  *float64 `json:"spent_this_month,omitempty"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToCategoryResponse converts a domain Category entity to a CategoryResponse DTO.
func ToCategoryResponse(c *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:     c.ID,
		Name:   c.Name,
		Emoji:  c.Emoji,
		Color:  c.Color,
		Role:   string(c.Role),
		Budget: c.Budget,
	}
}

// ToCategoryListResponse converts the list use case output.
func ToCategoryListResponse(output *category.ListCategoriesOutput) CategoryListResponse {
	categories := make([]CategoryResponse, 0, len(output.Categories))
	for i := range output.Categories {
		item := output.Categories[i]
		response := ToCategoryResponse(&item.Category)
		response.Spent = &item.Spent
		categories = append(categories, response)
	}
	return CategoryListResponse{Categories: categories}
}
