package entity

// Account is the full snapshot of one user's data. It is loaded, mutated and
// persisted as a unit.
type Account struct {
	User             *User
	Categories       Categories
	Ledger           Ledger
	Goals            Goals
	Investments      Investments
	ClaimedQuests    IDSet
	CompletedModules IDSet
}

// NewAccount creates the snapshot of a freshly registered user.
func NewAccount(user *User) *Account {
	return &Account{
		User:             user,
		Categories:       DefaultCategories(),
		Ledger:           Ledger{},
		Goals:            Goals{},
		Investments:      Investments{},
		ClaimedQuests:    NewIDSet(),
		CompletedModules: NewIDSet(),
	}
}

// Key returns the storage namespace of the account.
func (a *Account) Key() string {
	return a.User.AccountKey()
}
