package models

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/pocketledger/dashboard/pkg/normalize"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// Account is a bank, card or cash account.
type Account struct {
	ID        int64           `json:"id" example:"1"`
	Name      string          `json:"name" example:"Checking"`
	Type      string          `json:"type" example:"Checking"`
	BankName  *string         `json:"bankName,omitempty" example:"Community Credit Union"`
	Balance   decimal.Decimal `json:"balance" example:"1520.75"`
	Currency  string          `json:"currency" example:"USD"` // ISO 4217 code
	IsActive  bool            `json:"isActive" example:"true"`
	CreatedAt time.Time       `json:"createdAt" example:"2024-04-02T19:28:44.491514Z"`
}

// AccountEditable is an account as submitted by the user interface.
type AccountEditable struct {
	Name     string    `json:"name" example:"Checking"`
	Type     string    `json:"type" example:"Checking"`
	BankName string    `json:"bankName" example:"Community Credit Union"`
	Balance  FormValue `json:"balance" swaggertype:"string" example:"1520.75"`
	Currency string    `json:"currency" example:"USD"`
	IsActive FormValue `json:"isActive" swaggertype:"boolean" example:"true"`
}

type accountPayload struct {
	ID       int64       `json:"accountId,omitempty"`
	Name     string      `json:"accountName"`
	Type     string      `json:"accountType"`
	BankName *string     `json:"bankName,omitempty"`
	Balance  json.Number `json:"balance"`
	Currency string      `json:"currency"`
	IsActive bool        `json:"isActive"`
}

func (accountPayload) References() []Reference {
	return nil
}

// NormalizeAccount builds an Account from a backend record.
func NormalizeAccount(r normalize.Record, now time.Time) (Account, bool) {
	id, ok := identify(r, "accountId", "id")
	if !ok {
		return Account{}, false
	}

	created, ok := r.Time("createdAt", "created")
	if !ok {
		created = now.UTC()
	}

	code, _ := r.String("currency", "currencyCode")

	return Account{
		ID:        id,
		Name:      r.StringOr("", "accountName", "name"),
		Type:      r.Enum(AccountTypes, AccountTypes[0], "accountType", "type"),
		BankName:  r.OptionalString("bankName", "bank"),
		Balance:   r.Amount("balance", "currentBalance"),
		Currency:  currencyOr(code, DefaultCurrency),
		IsActive:  r.BoolOr(true, "isActive", "active"),
		CreatedAt: created,
	}, true
}

// Editable returns the account as it would be submitted again.
func (a Account) Editable() AccountEditable {
	return AccountEditable{
		Name:     a.Name,
		Type:     a.Type,
		BankName: deref(a.BankName),
		Balance:  Decimal(a.Balance),
		Currency: a.Currency,
		IsActive: FormValue(strconv.FormatBool(a.IsActive)),
	}
}

// Payload validates the account and returns its wire form. A zero id is
// omitted.
func (e AccountEditable) Payload(id int64) (Payload, error) {
	var c check

	p := accountPayload{
		ID:       id,
		Name:     c.text("accountName", e.Name),
		Type:     c.enum("accountType", e.Type, AccountTypes, AccountTypes[0]),
		BankName: optional(e.BankName),
		Balance:  number(c.money("balance", e.Balance, false)),
		Currency: c.currency("currency", e.Currency),
		IsActive: c.boolean("isActive", e.IsActive, true),
	}

	if c.err != nil {
		return nil, c.err
	}
	return p, nil
}

// currencyOr returns the canonical ISO 4217 code or the fallback.
func currencyOr(code, fallback string) string {
	unit, err := currency.ParseISO(strings.TrimSpace(code))
	if err != nil {
		return fallback
	}
	return unit.String()
}

func (c *check) currency(field, code string) string {
	if strings.TrimSpace(code) == "" {
		return DefaultCurrency
	}

	unit, err := currency.ParseISO(strings.TrimSpace(code))
	if err != nil {
		c.fail(field, "must be an ISO 4217 currency code")
		return DefaultCurrency
	}
	return unit.String()
}
