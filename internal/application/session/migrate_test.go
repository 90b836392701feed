package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_LegacyDocument(t *testing.T) {
	user := map[string]any{
		"email":    "teen@example.com",
		"name":     "Teen",
		"currency": "XYZ",
		"xp":       float64(40),
	}
	categories := []map[string]any{
		{"id": "cat-income", "name": "Income"},
		{"id": "cat-savings", "name": "Savings"},
		{"id": "custom-1", "name": "Snacks"},
		{"id": "custom-2", "name": "Savings", "role": "standard"},
	}

	changed := Migrate(user, categories)

	require.True(t, changed)
	assert.Equal(t, float64(2), user["schemaVersion"])
	assert.Equal(t, "USD", user["currency"])
	assert.Equal(t, float64(40), user["xp"])
	assert.Equal(t, float64(1), user["level"])
	assert.Equal(t, float64(100), user["xpToNextLevel"])
	assert.Equal(t, map[string]any{"notifications": true}, user["preferences"])
	assert.Equal(t, []any{}, user["linkedAccounts"])

	assert.Equal(t, "income", categories[0]["role"])
	assert.Equal(t, "savings", categories[1]["role"])
	assert.Equal(t, "standard", categories[2]["role"])
	assert.Equal(t, "standard", categories[3]["role"])
}

func TestMigrate_CurrentDocumentIsUntouched(t *testing.T) {
	user := map[string]any{
		"schemaVersion": float64(2),
		"currency":      "EUR",
	}

	assert.False(t, Migrate(user, nil))
	assert.Equal(t, "EUR", user["currency"])
}

func TestMigrate_InvalidCurrencyOnCurrentVersion(t *testing.T) {
	user := map[string]any{
		"schemaVersion": float64(2),
		"currency":      "",
	}

	assert.True(t, Migrate(user, nil))
	assert.Equal(t, "USD", user["currency"])
}
