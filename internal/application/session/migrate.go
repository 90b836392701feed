package session

import (
	"github.com/spendxp/backend/internal/domain/entity"
	"github.com/spendxp/backend/internal/domain/valueobject"
)

type migration struct {
	version int
	apply   func(user map[string]any, categories []map[string]any)
}

var migrations = []migration{
	{version: 1, apply: fillOptionalUserFields},
	{version: 2, apply: assignCategoryRoles},
}

// Migrate upgrades raw user and category documents to the current schema
// version in place. It reports whether anything was changed. Currency is
// validated on every load regardless of version.
func Migrate(user map[string]any, categories []map[string]any) bool {
	changed := false

	version := 0
	if v, ok := user["schemaVersion"].(float64); ok {
		version = int(v)
	}

	for _, m := range migrations {
		if version >= m.version {
			continue
		}
		m.apply(user, categories)
		version = m.version
		changed = true
	}
	user["schemaVersion"] = float64(version)

	code, _ := user["currency"].(string)
	if currency := valueobject.ParseCurrency(code); string(currency) != code {
		user["currency"] = string(currency)
		changed = true
	}

	return changed
}

func fillOptionalUserFields(user map[string]any, _ []map[string]any) {
	if _, ok := user["preferences"].(map[string]any); !ok {
		user["preferences"] = map[string]any{"notifications": true}
	}
	if _, ok := user["security"].(map[string]any); !ok {
		user["security"] = map[string]any{"twoFactorEnabled": false}
	}
	if _, ok := user["linkedAccounts"].([]any); !ok {
		user["linkedAccounts"] = []any{}
	}
	if _, ok := user["parentalControls"].(map[string]any); !ok {
		user["parentalControls"] = map[string]any{"spendingLimitEnabled": false}
	}
	progressionDefaults := map[string]any{"level": float64(1), "xp": float64(0), "xpToNextLevel": float64(valueobject.InitialXPToNextLevel), "streak": float64(0)}
	for k, v := range progressionDefaults {
		if _, ok := user[k].(float64); !ok {
			user[k] = v
		}
	}
}

func assignCategoryRoles(_ map[string]any, categories []map[string]any) {
	for _, c := range categories {
		if role, ok := c["role"].(string); ok && role != "" {
			continue
		}
		name, _ := c["name"].(string)
		c["role"] = string(entity.RoleForName(name))
	}
}
