package models

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/pocketledger/dashboard/internal/types"
	"github.com/pocketledger/dashboard/pkg/normalize"
	"github.com/shopspring/decimal"
)

// Debt is money the user owes.
type Debt struct {
	ID              int64           `json:"id" example:"4"`
	Name            string          `json:"name" example:"Visa card"`
	Type            string          `json:"type" example:"CreditCard"`
	Creditor        string          `json:"creditor" example:"First Bank"`
	OriginalAmount  decimal.Decimal `json:"originalAmount" example:"5000"`
	CurrentBalance  decimal.Decimal `json:"currentBalance" example:"3200.40"`
	InterestRate    decimal.Decimal `json:"interestRate" example:"19.99"` // Annual rate in percent
	MinimumPayment  decimal.Decimal `json:"minimumPayment" example:"75"`
	PaymentDueDay   int             `json:"paymentDueDay" example:"15" minimum:"1" maximum:"31"`
	NextPaymentDate types.Date      `json:"nextPaymentDate" swaggertype:"string" example:"2024-06-15"`
	PayoffDate      *types.Date     `json:"payoffDate,omitempty" swaggertype:"string" example:"2026-01-15"`
	IsActive        bool            `json:"isActive" example:"true"`
	AccountID       int64           `json:"accountId" example:"1"`
}

// DebtEditable is a debt as submitted by the user interface.
type DebtEditable struct {
	Name            string    `json:"name" example:"Visa card"`
	Type            string    `json:"type" example:"CreditCard"`
	Creditor        string    `json:"creditor" example:"First Bank"`
	OriginalAmount  FormValue `json:"originalAmount" swaggertype:"string" example:"5000"`
	CurrentBalance  FormValue `json:"currentBalance" swaggertype:"string" example:"3200.40"`
	InterestRate    FormValue `json:"interestRate" swaggertype:"string" example:"19.99"`
	MinimumPayment  FormValue `json:"minimumPayment" swaggertype:"string" example:"75"`
	PaymentDueDay   FormValue `json:"paymentDueDay" swaggertype:"string" example:"15"`
	NextPaymentDate string    `json:"nextPaymentDate" example:"2024-06-15"`
	PayoffDate      string    `json:"payoffDate" example:"2026-01-15"`
	IsActive        FormValue `json:"isActive" swaggertype:"boolean" example:"true"`
	AccountID       FormValue `json:"accountId" swaggertype:"string" example:"1"`
}

type debtPayload struct {
	ID              int64       `json:"debtId,omitempty"`
	Name            string      `json:"debtName"`
	Type            string      `json:"debtType"`
	Creditor        string      `json:"creditor"`
	OriginalAmount  json.Number `json:"originalAmount"`
	CurrentBalance  json.Number `json:"currentBalance"`
	InterestRate    json.Number `json:"interestRate"`
	MinimumPayment  json.Number `json:"minimumPayment"`
	PaymentDueDay   int         `json:"paymentDueDay"`
	NextPaymentDate types.Date  `json:"nextPaymentDate"`
	PayoffDate      *types.Date `json:"payoffDate,omitempty"`
	IsActive        bool        `json:"isActive"`
	AccountID       int64       `json:"accountId"`
}

func (p debtPayload) References() []Reference {
	return []Reference{{Field: "accountId", Resource: AccountsResource, ID: p.AccountID}}
}

// NormalizeDebt builds a Debt from a backend record.
func NormalizeDebt(r normalize.Record, now time.Time) (Debt, bool) {
	id, ok := identify(r, "debtId", "id")
	if !ok {
		return Debt{}, false
	}

	original := r.Amount("originalAmount", "amount")
	day, ok := r.Int64("paymentDueDay", "dueDay")
	account, _ := r.Int64("accountId", "account")

	return Debt{
		ID:              id,
		Name:            r.StringOr("", "debtName", "name"),
		Type:            r.Enum(DebtTypes, DebtTypes[0], "debtType", "type"),
		Creditor:        r.StringOr("", "creditor", "lender"),
		OriginalAmount:  original,
		CurrentBalance:  clampBalance(r.Amount("currentBalance", "balance"), original),
		InterestRate:    r.Amount("interestRate", "rate"),
		MinimumPayment:  r.Amount("minimumPayment"),
		PaymentDueDay:   clampDay(day, ok),
		NextPaymentDate: r.DateOr(types.DateOf(now), "nextPaymentDate"),
		PayoffDate:      r.OptionalDate("payoffDate"),
		IsActive:        r.BoolOr(true, "isActive", "active"),
		AccountID:       account,
	}, true
}

// clampBalance keeps an outstanding balance within zero and the original
// amount. Balances are non-negative already.
func clampBalance(balance, original decimal.Decimal) decimal.Decimal {
	if balance.GreaterThan(original) {
		return original
	}
	return balance
}

// Editable returns the debt as it would be submitted again.
func (d Debt) Editable() DebtEditable {
	return DebtEditable{
		Name:            d.Name,
		Type:            d.Type,
		Creditor:        d.Creditor,
		OriginalAmount:  Decimal(d.OriginalAmount),
		CurrentBalance:  Decimal(d.CurrentBalance),
		InterestRate:    Decimal(d.InterestRate),
		MinimumPayment:  Decimal(d.MinimumPayment),
		PaymentDueDay:   Int(int64(d.PaymentDueDay)),
		NextPaymentDate: d.NextPaymentDate.String(),
		PayoffDate:      optionalDate(d.PayoffDate),
		IsActive:        FormValue(strconv.FormatBool(d.IsActive)),
		AccountID:       Int(d.AccountID),
	}
}

// Payload validates the debt and returns its wire form.
func (e DebtEditable) Payload(id int64) (Payload, error) {
	var c check

	p := debtPayload{
		ID:              id,
		Name:            c.text("debtName", e.Name),
		Type:            c.enum("debtType", e.Type, DebtTypes, DebtTypes[0]),
		Creditor:        c.text("creditor", e.Creditor),
		InterestRate:    number(c.money("interestRate", e.InterestRate, false)),
		MinimumPayment:  number(c.money("minimumPayment", e.MinimumPayment, false)),
		PaymentDueDay:   c.integer("paymentDueDay", e.PaymentDueDay, 1, 31, 1),
		NextPaymentDate: c.date("nextPaymentDate", e.NextPaymentDate),
		PayoffDate:      c.optionalDate("payoffDate", e.PayoffDate),
		IsActive:        c.boolean("isActive", e.IsActive, true),
		AccountID:       c.id("accountId", e.AccountID),
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
