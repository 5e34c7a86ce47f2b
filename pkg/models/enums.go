package models

import (
	"github.com/pocketledger/dashboard/internal/types"
)

const (
	Income  = "income"
	Expense = "expense"
)

// FlowTypes are the directions of money for categories and transactions.
var FlowTypes = []string{Income, Expense}

const (
	Daily   = "Daily"
	Weekly  = "Weekly"
	Monthly = "Monthly"
	Yearly  = "Yearly"
)

// Periods are the budget periods and recurring transaction frequencies.
var Periods = []string{Daily, Weekly, Monthly, Yearly}

// PeriodEnd returns the last day of the period starting at start.
func PeriodEnd(start types.Date, period string) types.Date {
	switch period {
	case Daily:
		return start
	case Weekly:
		return start.AddDate(0, 0, 6)
	case Yearly:
		return start.AddDate(1, 0, -1)
	default:
		return start.AddDate(0, 1, -1)
	}
}

const (
	Low    = "Low"
	Medium = "Medium"
	High   = "High"
)

var Priorities = []string{Low, Medium, High}

var (
	AccountTypes    = []string{"Checking", "Savings", "CreditCard", "Cash", "Investment", "Other"}
	GoalTypes       = []string{"Savings", "Emergency", "Retirement", "Purchase", "DebtPayoff", "Other"}
	DebtTypes       = []string{"CreditCard", "PersonalLoan", "Mortgage", "AutoLoan", "StudentLoan", "Medical", "Other"}
	InvestmentTypes = []string{"Stock", "Bond", "MutualFund", "ETF", "Crypto", "RealEstate", "Other"}
	LoanTypes       = []string{"Personal", "Family", "Business", "Other"}
)

// DefaultCurrency is used when neither the record nor the form names one.
const DefaultCurrency = "USD"
