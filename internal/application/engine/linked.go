package engine

import (
	"time"

	"github.com/spendxp/backend/internal/domain/entity"
)

// LinkAccount records an external account and imports its recent
// transactions. Imported transactions skip the spending gate and earn no XP
// or streak. They are prepended in import order, so the ledger's insertion
// order can disagree with their dates.
func LinkAccount(acct *entity.Account, provider string, accountType entity.LinkedAccountType, now time.Time) *entity.LinkedAccount {
	linked := entity.NewLinkedAccount(provider, accountType, now)
	acct.User.LinkedAccounts = append(acct.User.LinkedAccounts, linked)

	imported := linked.ImportedTransactions(now)
	ledger := make(entity.Ledger, 0, len(imported)+len(acct.Ledger))
	ledger = append(ledger, imported...)
	acct.Ledger = append(ledger, acct.Ledger...)

	return linked
}
