package models

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/pocketledger/dashboard/internal/types"
	"github.com/pocketledger/dashboard/pkg/normalize"
	"github.com/shopspring/decimal"
)

// Loan is money the user lent to someone else.
type Loan struct {
	ID             int64           `json:"id" example:"5"`
	Name           string          `json:"name" example:"Car repair for Sam"`
	Type           string          `json:"type" example:"Personal"`
	Borrower       string          `json:"borrower" example:"Sam Doe"`
	BorrowerEmail  *string         `json:"borrowerEmail,omitempty" example:"sam@example.com"`
	BorrowerPhone  *string         `json:"borrowerPhone,omitempty" example:"+1 555 0100"`
	OriginalAmount decimal.Decimal `json:"originalAmount" example:"800"`
	CurrentBalance decimal.Decimal `json:"currentBalance" example:"350"`
	InterestRate   decimal.Decimal `json:"interestRate" example:"0"`
	PaymentDueDay  int             `json:"paymentDueDay" example:"1" minimum:"1" maximum:"31"`
	StartDate      types.Date      `json:"startDate" swaggertype:"string" example:"2024-02-01"`
	DueDate        *types.Date     `json:"dueDate,omitempty" swaggertype:"string" example:"2024-12-01"`
	IsActive       bool            `json:"isActive" example:"true"`
	AccountID      int64           `json:"accountId" example:"1"`
}

// LoanEditable is a loan as submitted by the user interface.
type LoanEditable struct {
	Name           string    `json:"name" example:"Car repair for Sam"`
	Type           string    `json:"type" example:"Personal"`
	Borrower       string    `json:"borrower" example:"Sam Doe"`
	BorrowerEmail  string    `json:"borrowerEmail" example:"sam@example.com"`
	BorrowerPhone  string    `json:"borrowerPhone" example:"+1 555 0100"`
	OriginalAmount FormValue `json:"originalAmount" swaggertype:"string" example:"800"`
	CurrentBalance FormValue `json:"currentBalance" swaggertype:"string" example:"350"`
	InterestRate   FormValue `json:"interestRate" swaggertype:"string" example:"0"`
	PaymentDueDay  FormValue `json:"paymentDueDay" swaggertype:"string" example:"1"`
	StartDate      string    `json:"startDate" example:"2024-02-01"`
	DueDate        string    `json:"dueDate" example:"2024-12-01"`
	IsActive       FormValue `json:"isActive" swaggertype:"boolean" example:"true"`
	AccountID      FormValue `json:"accountId" swaggertype:"string" example:"1"`
}

type loanPayload struct {
	ID             int64       `json:"loanId,omitempty"`
	Name           string      `json:"loanName"`
	Type           string      `json:"loanType"`
	Borrower       string      `json:"borrowerName"`
	BorrowerEmail  *string     `json:"borrowerEmail,omitempty"`
	BorrowerPhone  *string     `json:"borrowerPhone,omitempty"`
	OriginalAmount json.Number `json:"originalAmount"`
	CurrentBalance json.Number `json:"currentBalance"`
	InterestRate   json.Number `json:"interestRate"`
	PaymentDueDay  int         `json:"paymentDueDay"`
	StartDate      types.Date  `json:"startDate"`
	DueDate        *types.Date `json:"dueDate,omitempty"`
	IsActive       bool        `json:"isActive"`
	AccountID      int64       `json:"accountId"`
}

func (p loanPayload) References() []Reference {
	return []Reference{{Field: "accountId", Resource: AccountsResource, ID: p.AccountID}}
}

// NormalizeLoan builds a Loan from a backend record.
func NormalizeLoan(r normalize.Record, now time.Time) (Loan, bool) {
	id, ok := identify(r, "loanId", "id")
	if !ok {
		return Loan{}, false
	}

	original := r.Amount("originalAmount", "principalAmount", "amount")
	day, ok := r.Int64("paymentDueDay", "dueDay")
	account, _ := r.Int64("accountId", "account")

	return Loan{
		ID:             id,
		Name:           r.StringOr("", "loanName", "name"),
		Type:           r.Enum(LoanTypes, LoanTypes[0], "loanType", "type"),
		Borrower:       r.StringOr("", "borrowerName", "borrower"),
		BorrowerEmail:  r.OptionalString("borrowerEmail"),
		BorrowerPhone:  r.OptionalString("borrowerPhone"),
		OriginalAmount: original,
		CurrentBalance: clampBalance(r.Amount("currentBalance", "balance"), original),
		InterestRate:   r.Amount("interestRate", "rate"),
		PaymentDueDay:  clampDay(day, ok),
		StartDate:      r.DateOr(types.DateOf(now), "startDate", "loanDate"),
		DueDate:        r.OptionalDate("dueDate"),
		IsActive:       r.BoolOr(true, "isActive", "active"),
		AccountID:      account,
	}, true
}

// Editable returns the loan as it would be submitted again.
func (l Loan) Editable() LoanEditable {
	return LoanEditable{
		Name:           l.Name,
		Type:           l.Type,
		Borrower:       l.Borrower,
		BorrowerEmail:  deref(l.BorrowerEmail),
		BorrowerPhone:  deref(l.BorrowerPhone),
		OriginalAmount: Decimal(l.OriginalAmount),
		CurrentBalance: Decimal(l.CurrentBalance),
		InterestRate:   Decimal(l.InterestRate),
		PaymentDueDay:  Int(int64(l.PaymentDueDay)),
		StartDate:      l.StartDate.String(),
		DueDate:        optionalDate(l.DueDate),
		IsActive:       FormValue(strconv.FormatBool(l.IsActive)),
		AccountID:      Int(l.AccountID),
	}
}

// Payload validates the loan and returns its wire form.
func (e LoanEditable) Payload(id int64) (Payload, error) {
	var c check

	p := loanPayload{
		ID:            id,
		Name:          c.text("loanName", e.Name),
		Type:          c.enum("loanType", e.Type, LoanTypes, LoanTypes[0]),
		Borrower:      c.text("borrowerName", e.Borrower),
		BorrowerEmail: optional(e.BorrowerEmail),
		BorrowerPhone: optional(e.BorrowerPhone),
		InterestRate:  number(c.money("interestRate", e.InterestRate, false)),
		PaymentDueDay: c.integer("paymentDueDay", e.PaymentDueDay, 1, 31, 1),
		StartDate:     c.date("startDate", e.StartDate),
		DueDate:       c.optionalDate("dueDate", e.DueDate),
		IsActive:      c.boolean("isActive", e.IsActive, true),
		AccountID:     c.id("accountId", e.AccountID),
	}

	if p.DueDate != nil {
		c.notBefore("dueDate", *p.DueDate, p.StartDate, "startDate")
	}

	original := c.money("originalAmount", e.OriginalAmount, true)
	balance := original
	if e.CurrentBalance != "" {
		balance = c.money("currentBalance", e.CurrentBalance, false)
	}
	if balance.GreaterThan(original) {
		c.fail("currentBalance", "must not exceed originalAmount")
	}
	p.OriginalAmount = number(original)
	p.CurrentBalance = number(balance)

	if c.err != nil {
		return nil, c.err
	}
	return p, nil
}
