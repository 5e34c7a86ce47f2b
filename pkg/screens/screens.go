package screens

import (
	"context"
	"time"

	"github.com/pocketledger/dashboard/pkg/models"
	"github.com/pocketledger/dashboard/pkg/services"
)

// Screen is the data of a list screen. Accounts and Categories are only
// set for screens whose records reference them.
type Screen[T any] struct {
	Items      []T               `json:"items"`
	Accounts   []models.Account  `json:"accounts,omitempty"`
	Categories []models.Category `json:"categories,omitempty"`
	Warnings   []Warning         `json:"warnings"`
}

// Screens loads the data of every dashboard screen.
type Screens struct {
	services *services.Services
	now      func() time.Time
}

// New returns Screens backed by the services. now defaults to time.Now.
func New(s *services.Services, now func() time.Time) *Screens {
	if now == nil {
		now = time.Now
	}
	return &Screens{services: s, now: now}
}

type lookups struct {
	accounts   bool
	categories bool
}

// load fetches the records of a list screen together with the lookups it
// needs, then filters and sorts the records.
func load[T any](ctx context.Context, sc *Screens, name string, list func(context.Context) ([]T, error), q Query, f Fields[T], with lookups) (Screen[T], error) {
	var screen Screen[T]

	l := NewLoader(ctx)
	Part(l, name, &screen.Items, list)
	if with.accounts {
		Part(l, "accounts", &screen.Accounts, sc.services.Accounts.List)
	}
	if with.categories {
		Part(l, "categories", &screen.Categories, sc.services.Categories.List)
	}

	warnings, err := l.Wait()
	if err != nil {
		return Screen[T]{}, err
	}

	screen.Items = Apply(screen.Items, q, f)
	screen.Warnings = warnings
	return screen, nil
}

func (sc *Screens) Accounts(ctx context.Context, q Query) (Screen[models.Account], error) {
	return load(ctx, sc, "accounts", sc.services.Accounts.List, q, accountFields, lookups{})
}

func (sc *Screens) Categories(ctx context.Context, q Query) (Screen[models.Category], error) {
	return load(ctx, sc, "categories", sc.services.Categories.List, q, categoryFields, lookups{})
}

// Budgets loads the budgets and the categories they are assigned to.
func (sc *Screens) Budgets(ctx context.Context, q Query) (Screen[models.Budget], error) {
	return load(ctx, sc, "budgets", sc.services.Budgets.List, q, budgetFields, lookups{categories: true})
}

func (sc *Screens) Goals(ctx context.Context, q Query) (Screen[models.Goal], error) {
	return load(ctx, sc, "goals", sc.services.Goals.List, q, goalFields, lookups{})
}

// Debts loads the debts and the accounts they are paid from.
func (sc *Screens) Debts(ctx context.Context, q Query) (Screen[models.Debt], error) {
	return load(ctx, sc, "debts", sc.services.Debts.List, q, debtFields, lookups{accounts: true})
}

func (sc *Screens) Investments(ctx context.Context, q Query) (Screen[models.Investment], error) {
	return load(ctx, sc, "investments", sc.services.Investments.List, q, investmentFields, lookups{accounts: true})
}

func (sc *Screens) Loans(ctx context.Context, q Query) (Screen[models.Loan], error) {
	return load(ctx, sc, "loans", sc.services.Loans.List, q, loanFields, lookups{accounts: true})
}

// Transactions loads the transactions with the accounts and categories
// needed to show and edit them.
func (sc *Screens) Transactions(ctx context.Context, q Query) (Screen[models.Transaction], error) {
	return load(ctx, sc, "transactions", sc.services.Transactions.List, q, transactionFields, lookups{accounts: true, categories: true})
}
