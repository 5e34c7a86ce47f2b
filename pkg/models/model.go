package models

import (
	"github.com/pocketledger/dashboard/pkg/normalize"
)

// Backend resource paths.
const (
	AccountsResource     = "Accounts"
	CategoriesResource   = "Categories"
	BudgetsResource      = "Budgets"
	GoalsResource        = "Goals"
	DebtsResource        = "Debts"
	InvestmentsResource  = "Investments"
	LoansResource        = "Loans"
	TransactionsResource = "Transactions"
)

// Reference is a foreign key of a submitted record.
type Reference struct {
	Field    string // Name of the payload field
	Resource string // Resource the key points into
	ID       int64
}

// Payload is the wire form of a record submitted to the backend.
type Payload interface {
	References() []Reference
}

// identify returns the first positive integer id. Records without one
// cannot be addressed and are dropped.
func identify(r normalize.Record, keys ...string) (int64, bool) {
	id, ok := r.Int64(keys...)
	if !ok || id <= 0 {
		return 0, false
	}
	return id, true
}

// clampDay keeps a day of month within 1 to 31.
func clampDay(day int64, ok bool) int {
	if !ok || day < 1 {
		return 1
	}
	if day > 31 {
		return 31
	}
	return int(day)
}
