// Package entity defines the core business entities for the domain layer.
package entity

import (
	"github.com/google/uuid"
)

// CategoryRole is the semantic classification of a category. It decides which
// aggregates include the category and how transactions against it earn XP.
type CategoryRole string

const (
	CategoryRoleStandard CategoryRole = "standard"
	CategoryRoleIncome   CategoryRole = "income"
	CategoryRoleSavings  CategoryRole = "savings"
)

const (
	// IncomeCategoryName is the reserved name of the income category.
	IncomeCategoryName = "Income"
	// SavingsCategoryName is the reserved name of the savings category.
	SavingsCategoryName = "Savings"
)

// DefaultCategoryColor is the default color token for categories.
const DefaultCategoryColor = "bg-gray-500"

// DefaultCategoryEmoji is the default emoji for categories.
const DefaultCategoryEmoji = "🏷️"

// RoleForName resolves the role of a category from its name.
func RoleForName(name string) CategoryRole {
	switch name {
	case IncomeCategoryName:
		return CategoryRoleIncome
	case SavingsCategoryName:
		return CategoryRoleSavings
	default:
		return CategoryRoleStandard
	}
}

// IsSpending reports whether transactions with this role count as spending.
func (r CategoryRole) IsSpending() bool {
	return r != CategoryRoleIncome && r != CategoryRoleSavings
}

// Category represents a spending category, optionally carrying a monthly budget.
type Category struct {
	ID     string
	Name   string
	Emoji  string
	Color  string
	Budget *float64 // Monthly budget; nil when none is set
	Role   CategoryRole
}

// NewCategory creates a custom category. The role is resolved once here.
func NewCategory(name, emoji, color string) *Category {
	return &Category{
		ID:    "custom-" + uuid.NewString(),
		Name:  name,
		Emoji: emoji,
		Color: color,
		Role:  RoleForName(name),
	}
}

// HasBudget reports whether a positive budget is set.
func (c *Category) HasBudget() bool {
	return c.Budget != nil && *c.Budget > 0
}

// DefaultCategories returns the categories every new account starts with.
func DefaultCategories() Categories {
	seed := []struct{ id, name, emoji, color string }{
		{"cat-income", IncomeCategoryName, "💰", "bg-brand-green"},
		{"cat-food", "Food", "🍔", "bg-brand-yellow"},
		{"cat-gaming", "Gaming", "🎮", "bg-brand-purple"},
		{"cat-shopping", "Shopping", "🛍️", "bg-brand-pink"},
		{"cat-transport", "Transport", "🚌", "bg-gray-500"},
		{"cat-entertainment", "Entertainment", "🎬", "bg-brand-teal"},
		{"cat-savings", SavingsCategoryName, "🏦", "bg-blue-500"},
		{"cat-other", "Other", "💸", "bg-gray-500"},
	}

	cats := make(Categories, 0, len(seed))
	for _, s := range seed {
		cats = append(cats, &Category{ID: s.id, Name: s.name, Emoji: s.emoji, Color: s.color, Role: RoleForName(s.name)})
	}
	return cats
}

// Categories is the ordered category store of an account.
type Categories []*Category

// ByID returns the category with the given ID, or nil.
func (cs Categories) ByID(id string) *Category {
	for _, c := range cs {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// ByRole returns the first category with the given role, or nil.
func (cs Categories) ByRole(role CategoryRole) *Category {
	for _, c := range cs {
		if c.Role == role {
			return c
		}
	}
	return nil
}

// RoleOf returns the role of the category with the given ID.
// Unknown categories are treated as standard spending.
func (cs Categories) RoleOf(id string) CategoryRole {
	if c := cs.ByID(id); c != nil {
		return c.Role
	}
	return CategoryRoleStandard
}

// Add appends a category and returns the updated store.
func (cs Categories) Add(c *Category) Categories {
	return append(cs, c)
}

// SetBudget replaces the budget of a category. It returns the previous budget
// and false when the category does not exist.
func (cs Categories) SetBudget(id string, budget *float64) (previous *float64, ok bool) {
	c := cs.ByID(id)
	if c == nil {
		return nil, false
	}
	previous = c.Budget
	c.Budget = budget
	return previous, true
}
