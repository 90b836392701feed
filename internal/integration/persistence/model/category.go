package model

import (
	"github.com/spendxp/backend/internal/domain/entity"
)

// CategoryDocument is the stored JSON shape of a category.
type CategoryDocument struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Emoji  string   `json:"emoji"`
	Color  string   `json:"color"`
	Budget *float64 `json:"budget,omitempty"`
	Role   string   `json:"role"`
}

// ToEntity converts a CategoryDocument to a domain Category entity.
func (d *CategoryDocument) ToEntity() *entity.Category {
	role := entity.CategoryRole(d.Role)
	if role == "" {
		role = entity.RoleForName(d.Name)
	}
	return &entity.Category{
		ID:     d.ID,
		Name:   d.Name,
		Emoji:  d.Emoji,
		Color:  d.Color,
		Budget: d.Budget,
		Role:   role,
	}
}

// CategoryDocumentFromEntity creates a CategoryDocument from a domain Category entity.
func CategoryDocumentFromEntity(c *entity.Category) CategoryDocument {
	return CategoryDocument{
		ID:     c.ID,
		Name:   c.Name,
		Emoji:  c.Emoji,
		Color:  c.Color,
		Budget: c.Budget,
		Role:   string(c.Role),
	}
}
