package screens

import (
	"context"

	"github.com/pocketledger/dashboard/internal/types"
	"github.com/pocketledger/dashboard/pkg/models"
)

const (
	recentTransactions = 5
	upcomingDays       = 30
)

// Overview is the landing screen. It shows the records as the backend
// returns them, balances and totals included; nothing is summed here.
type Overview struct {
	Accounts           []models.Account     `json:"accounts"`
	Budgets            []models.Budget      `json:"budgets"`
	Goals              []models.Goal        `json:"goals"`
	Investments        []models.Investment  `json:"investments"`
	Loans              []models.Loan        `json:"loans"`
	UpcomingPayments   []models.Debt        `json:"upcomingPayments"`   // Active debts due within 30 days, soonest first
	RecentTransactions []models.Transaction `json:"recentTransactions"` // The five newest transactions
	Warnings           []Warning            `json:"warnings"`
}

// Overview loads every resource and picks what the landing screen shows.
func (sc *Screens) Overview(ctx context.Context) (Overview, error) {
	var (
		o            Overview
		debts        []models.Debt
		transactions []models.Transaction
	)

	l := NewLoader(ctx)
	Part(l, "accounts", &o.Accounts, sc.services.Accounts.List)
	Part(l, "transactions", &transactions, sc.services.Transactions.List)
	Part(l, "budgets", &o.Budgets, sc.services.Budgets.List)
	Part(l, "goals", &o.Goals, sc.services.Goals.List)
	Part(l, "debts", &debts, sc.services.Debts.List)
	Part(l, "investments", &o.Investments, sc.services.Investments.List)
	Part(l, "loans", &o.Loans, sc.services.Loans.List)

	warnings, err := l.Wait()
	if err != nil {
		return Overview{}, err
	}
	o.Warnings = warnings

	o.Accounts = Apply(o.Accounts, Query{}, accountFields)
	o.Budgets = Apply(o.Budgets, Query{}, budgetFields)
	o.Goals = Apply(o.Goals, Query{}, goalFields)
	o.Investments = Apply(o.Investments, Query{}, investmentFields)
	o.Loans = Apply(o.Loans, Query{}, loanFields)

	today := types.DateOf(sc.now())
	horizon := today.AddDate(0, 0, upcomingDays)

	o.UpcomingPayments = []models.Debt{}
	for _, d := range Apply(debts, Query{}, debtFields) {
		if d.IsActive && !d.NextPaymentDate.Before(today) && !d.NextPaymentDate.After(horizon) {
			o.UpcomingPayments = append(o.UpcomingPayments, d)
		}
	}

	recent := Apply(transactions, Query{}, transactionFields)
	if len(recent) > recentTransactions {
		recent = recent[:recentTransactions]
	}
	o.RecentTransactions = recent

	return o, nil
}
