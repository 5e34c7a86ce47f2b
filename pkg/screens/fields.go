package screens

import (
	"strings"

	"github.com/pocketledger/dashboard/internal/types"
	"github.com/pocketledger/dashboard/pkg/models"
)

func byName(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

func byDate(a, b types.Date) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	}
	return 0
}

func merchant(t models.Transaction) string {
	if t.Merchant == nil {
		return ""
	}
	return *t.Merchant
}

func byID(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

var accountFields = Fields[models.Account]{
	Name: func(a models.Account) string { return a.Name },
	Type: func(a models.Account) string { return a.Type },
	Sort: map[string]func(a, b models.Account) int{
		"name":      func(a, b models.Account) int { return byName(a.Name, b.Name) },
		"balance":   func(a, b models.Account) int { return a.Balance.Cmp(b.Balance) },
		"createdAt": func(a, b models.Account) int { return a.CreatedAt.Compare(b.CreatedAt) },
	},
	DefaultSort: "name",
}

var categoryFields = Fields[models.Category]{
	Name: func(c models.Category) string { return c.Name },
	Type: func(c models.Category) string { return c.Type },
	Sort: map[string]func(a, b models.Category) int{
		"name": func(a, b models.Category) int { return byName(a.Name, b.Name) },
	},
	DefaultSort: "name",
}

var budgetFields = Fields[models.Budget]{
	Name: func(b models.Budget) string { return b.Name },
	Type: func(b models.Budget) string { return b.Period },
	Sort: map[string]func(a, b models.Budget) int{
		"name":      func(a, b models.Budget) int { return byName(a.Name, b.Name) },
		"amount":    func(a, b models.Budget) int { return a.Amount.Cmp(b.Amount) },
		"startDate": func(a, b models.Budget) int { return byDate(a.StartDate, b.StartDate) },
		"endDate":   func(a, b models.Budget) int { return byDate(a.EndDate, b.EndDate) },
	},
	DefaultSort: "name",
}

var goalFields = Fields[models.Goal]{
	Name: func(g models.Goal) string { return g.Name },
	Type: func(g models.Goal) string { return g.Type },
	Sort: map[string]func(a, b models.Goal) int{
		"name":         func(a, b models.Goal) int { return byName(a.Name, b.Name) },
		"targetAmount": func(a, b models.Goal) int { return a.TargetAmount.Cmp(b.TargetAmount) },
		"targetDate":   func(a, b models.Goal) int { return byDate(a.TargetDate, b.TargetDate) },
	},
	DefaultSort: "targetDate",
}

var debtFields = Fields[models.Debt]{
	Name: func(d models.Debt) string { return d.Name },
	Type: func(d models.Debt) string { return d.Type },
	Sort: map[string]func(a, b models.Debt) int{
		"name":            func(a, b models.Debt) int { return byName(a.Name, b.Name) },
		"currentBalance":  func(a, b models.Debt) int { return a.CurrentBalance.Cmp(b.CurrentBalance) },
		"interestRate":    func(a, b models.Debt) int { return a.InterestRate.Cmp(b.InterestRate) },
		"nextPaymentDate": func(a, b models.Debt) int { return byDate(a.NextPaymentDate, b.NextPaymentDate) },
	},
	DefaultSort: "nextPaymentDate",
}

var investmentFields = Fields[models.Investment]{
	Name: func(i models.Investment) string { return i.Name },
	Type: func(i models.Investment) string { return i.Type },
	Sort: map[string]func(a, b models.Investment) int{
		"name":         func(a, b models.Investment) int { return byName(a.Name, b.Name) },
		"currentValue": func(a, b models.Investment) int { return a.CurrentValue.Cmp(b.CurrentValue) },
		"gain":         func(a, b models.Investment) int { return a.Gain().Cmp(b.Gain()) },
		"purchaseDate": func(a, b models.Investment) int { return byDate(a.PurchaseDate, b.PurchaseDate) },
	},
	DefaultSort: "name",
}

var loanFields = Fields[models.Loan]{
	Name: func(l models.Loan) string { return l.Name + " " + l.Borrower },
	Type: func(l models.Loan) string { return l.Type },
	Sort: map[string]func(a, b models.Loan) int{
		"name":           func(a, b models.Loan) int { return byName(a.Name, b.Name) },
		"borrower":       func(a, b models.Loan) int { return byName(a.Borrower, b.Borrower) },
		"currentBalance": func(a, b models.Loan) int { return a.CurrentBalance.Cmp(b.CurrentBalance) },
		"startDate":      func(a, b models.Loan) int { return byDate(a.StartDate, b.StartDate) },
	},
	DefaultSort: "startDate",
}

// Transactions are listed newest first unless the query says otherwise.
var transactionFields = Fields[models.Transaction]{
	Name: func(t models.Transaction) string { return t.Description + " " + merchant(t) },
	Type: func(t models.Transaction) string { return t.Type },
	Sort: map[string]func(a, b models.Transaction) int{
		"date": func(a, b models.Transaction) int {
			if c := byDate(b.Date, a.Date); c != 0 {
				return c
			}
			return byID(b.ID, a.ID)
		},
		"amount":      func(a, b models.Transaction) int { return a.Amount.Cmp(b.Amount) },
		"description": func(a, b models.Transaction) int { return byName(a.Description, b.Description) },
	},
	DefaultSort: "date",
}
