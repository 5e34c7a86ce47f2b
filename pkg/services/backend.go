// Package services implements the data access of every dashboard feature.
//
// Each service validates input locally, talks to one resource of the finance
// backend and returns canonical records or a classified *apierrors.Error.
package services

import (
	"context"
	"time"

	"github.com/pocketledger/dashboard/pkg/apiclient"
	"github.com/pocketledger/dashboard/pkg/apierrors"
	"github.com/pocketledger/dashboard/pkg/credentials"
	"github.com/pocketledger/dashboard/pkg/models"
)

// Backend holds what every service needs to reach the finance backend.
type Backend struct {
	URL        string
	Store      credentials.Store
	Classifier *apierrors.Classifier
	Options    apiclient.Options
	Now        func() time.Time // Defaults to time.Now
}

func (b Backend) client(resource string) *apiclient.Client {
	return apiclient.New(b.URL, resource, b.Store, b.Options)
}

func (b Backend) classify(ctx context.Context, err error) error {
	return b.Classifier.Classify(ctx, err)
}

func (b Backend) now() time.Time {
	if b.Now == nil {
		return time.Now()
	}
	return b.Now()
}

// Services bundles the data services of all features.
type Services struct {
	Accounts     *Resource[models.Account, models.AccountEditable]
	Categories   *Resource[models.Category, models.CategoryEditable]
	Budgets      *Resource[models.Budget, models.BudgetEditable]
	Goals        *Resource[models.Goal, models.GoalEditable]
	Debts        *Debts
	Investments  *Resource[models.Investment, models.InvestmentEditable]
	Loans        *Resource[models.Loan, models.LoanEditable]
	Transactions *Transactions
	Auth         *Auth
}

// New creates all services. A nil classifier is replaced by one that clears
// the backend's credential store on authentication failures.
func New(b Backend) *Services {
	if b.Classifier == nil {
		c := apierrors.NewClassifier(b.Store)
		b.Classifier = &c
	}

	s := &Services{
		Accounts: newResource[models.Account, models.AccountEditable](b, models.AccountsResource, "accounts", models.NormalizeAccount,
			func(a models.Account) int64 { return a.ID }),
		Categories: newResource[models.Category, models.CategoryEditable](b, models.CategoriesResource, "categories", models.NormalizeCategory,
			func(c models.Category) int64 { return c.ID }),
		Budgets: newResource[models.Budget, models.BudgetEditable](b, models.BudgetsResource, "budgets", models.NormalizeBudget,
			func(budget models.Budget) int64 { return budget.ID }),
		Goals: newResource[models.Goal, models.GoalEditable](b, models.GoalsResource, "goals", models.NormalizeGoal,
			func(g models.Goal) int64 { return g.ID }),
		Debts: &Debts{newResource[models.Debt, models.DebtEditable](b, models.DebtsResource, "debts", models.NormalizeDebt,
			func(d models.Debt) int64 { return d.ID })},
		Investments: newResource[models.Investment, models.InvestmentEditable](b, models.InvestmentsResource, "investments", models.NormalizeInvestment,
			func(i models.Investment) int64 { return i.ID }),
		Loans: newResource[models.Loan, models.LoanEditable](b, models.LoansResource, "loans", models.NormalizeLoan,
			func(l models.Loan) int64 { return l.ID }),
		Transactions: &Transactions{newResource[models.Transaction, models.TransactionEditable](b, models.TransactionsResource, "transactions", models.NormalizeTransaction,
			func(t models.Transaction) int64 { return t.ID })},
		Auth: newAuth(b),
	}

	listers := map[string]lister{
		models.AccountsResource:     s.Accounts,
		models.CategoriesResource:   s.Categories,
		models.BudgetsResource:      s.Budgets,
		models.GoalsResource:        s.Goals,
		models.DebtsResource:        s.Debts,
		models.InvestmentsResource:  s.Investments,
		models.LoansResource:        s.Loans,
		models.TransactionsResource: s.Transactions,
	}

	refs := references{listers: listers}
	s.Accounts.refs = refs
	s.Categories.refs = refs
	s.Budgets.refs = refs
	s.Goals.refs = refs
	s.Debts.refs = refs
	s.Investments.refs = refs
	s.Loans.refs = refs
	s.Transactions.refs = refs

	return s
}
