package entity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCategories(t *testing.T) {
	cats := DefaultCategories()

	require.Len(t, cats, 8)
	assert.Equal(t, CategoryRoleIncome, cats.RoleOf("cat-income"))
	assert.Equal(t, CategoryRoleSavings, cats.RoleOf("cat-savings"))
	assert.Equal(t, CategoryRoleStandard, cats.RoleOf("cat-food"))
	assert.Equal(t, "cat-savings", cats.ByRole(CategoryRoleSavings).ID)
}

func TestCategories_RoleOfUnknownIsStandard(t *testing.T) {
	assert.Equal(t, CategoryRoleStandard, DefaultCategories().RoleOf("missing"))
	assert.True(t, CategoryRoleStandard.IsSpending())
	assert.False(t, CategoryRoleSavings.IsSpending())
}

func TestNewCategory_ResolvesRoleFromName(t *testing.T) {
	assert.Equal(t, CategoryRoleSavings, NewCategory("Savings", "🏦", "bg-blue-500").Role)
	assert.Equal(t, CategoryRoleStandard, NewCategory("Snacks", "🍿", DefaultCategoryColor).Role)
}

func TestNewCategory_UniqueIDs(t *testing.T) {
	a := NewCategory("Snacks", "🍿", DefaultCategoryColor)
	b := NewCategory("Snacks", "🍿", DefaultCategoryColor)

	assert.True(t, strings.HasPrefix(a.ID, "custom-"))
	assert.NotEqual(t, a.ID, b.ID)
}

func TestCategories_SetBudget(t *testing.T) {
	cats := DefaultCategories()
	budget := 100.0

	previous, ok := cats.SetBudget("cat-food", &budget)
	require.True(t, ok)
	assert.Nil(t, previous)
	assert.True(t, cats.ByID("cat-food").HasBudget())

	previous, ok = cats.SetBudget("cat-food", nil)
	require.True(t, ok)
	assert.Equal(t, 100.0, *previous)
	assert.False(t, cats.ByID("cat-food").HasBudget())

	_, ok = cats.SetBudget("missing", &budget)
	assert.False(t, ok)
}

func TestCategory_ZeroBudgetIsNotABudget(t *testing.T) {
	zero := 0.0
	c := &Category{Budget: &zero}
	assert.False(t, c.HasBudget())
}
