package models

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/pocketledger/dashboard/internal/types"
	"github.com/pocketledger/dashboard/pkg/normalize"
	"github.com/shopspring/decimal"
)

// Transaction is income or an expense on an account.
//
// Amount is always non-negative, the direction is carried by Type.
type Transaction struct {
	ID                 int64           `json:"id" example:"120"`
	Amount             decimal.Decimal `json:"amount" example:"42.10"`
	Type               string          `json:"type" example:"expense" enums:"income,expense"`
	Date               types.Date      `json:"date" swaggertype:"string" example:"2024-05-14"`
	CategoryID         int64           `json:"categoryId" example:"3"`
	AccountID          int64           `json:"accountId" example:"1"`
	Description        string          `json:"description" example:"Weekly groceries"`
	Merchant           *string         `json:"merchant,omitempty" example:"Corner Market"`
	Tags               []string        `json:"tags" example:"food,weekly"`
	IsRecurring        bool            `json:"isRecurring" example:"false"`
	RecurringFrequency *string         `json:"recurringFrequency,omitempty" example:"Weekly" enums:"Daily,Weekly,Monthly,Yearly"`
}

// TransactionEditable is a transaction as submitted by the user interface.
type TransactionEditable struct {
	Amount             FormValue `json:"amount" swaggertype:"string" example:"42.10"`
	Type               string    `json:"type" example:"expense"`
	Date               string    `json:"date" example:"2024-05-14"`
	CategoryID         FormValue `json:"categoryId" swaggertype:"string" example:"3"`
	AccountID          FormValue `json:"accountId" swaggertype:"string" example:"1"`
	Description        string    `json:"description" example:"Weekly groceries"`
	Merchant           string    `json:"merchant" example:"Corner Market"`
	Tags               string    `json:"tags" example:"food, weekly"` // Comma separated
	IsRecurring        FormValue `json:"isRecurring" swaggertype:"boolean" example:"false"`
	RecurringFrequency string    `json:"recurringFrequency" example:"Weekly"`
}

type transactionPayload struct {
	ID                 int64       `json:"transactionId,omitempty"`
	Amount             json.Number `json:"amount"`
	Type               string      `json:"transactionType"`
	Date               types.Date  `json:"transactionDate"`
	CategoryID         int64       `json:"categoryId"`
	AccountID          int64       `json:"accountId"`
	Description        string      `json:"description"`
	Merchant           *string     `json:"merchant,omitempty"`
	Tags               string      `json:"tags"`
	IsRecurring        bool        `json:"isRecurring"`
	RecurringFrequency *string     `json:"recurringFrequency,omitempty"`
}

func (p transactionPayload) References() []Reference {
	return []Reference{
		{Field: "categoryId", Resource: CategoriesResource, ID: p.CategoryID},
		{Field: "accountId", Resource: AccountsResource, ID: p.AccountID},
	}
}

// NormalizeTransaction builds a Transaction from a backend record.
func NormalizeTransaction(r normalize.Record, now time.Time) (Transaction, bool) {
	id, ok := identify(r, "transactionId", "id")
	if !ok {
		return Transaction{}, false
	}

	tags, ok := r.Strings("tags")
	if !ok {
		tags = []string{}
	}

	var frequency *string
	if f := r.Enum(Periods, "", "recurringFrequency", "frequency"); f != "" {
		frequency = &f
	}

	category, _ := r.Int64("categoryId", "category")
	account, _ := r.Int64("accountId", "account")

	return Transaction{
		ID:                 id,
		Amount:             r.Amount("amount", "transactionAmount"),
		Type:               r.Enum(FlowTypes, Expense, "transactionType", "type"),
		Date:               r.DateOr(types.DateOf(now), "transactionDate", "date"),
		CategoryID:         category,
		AccountID:          account,
		Description:        r.StringOr("", "description"),
		Merchant:           r.OptionalString("merchant"),
		Tags:               tags,
		IsRecurring:        r.BoolOr(false, "isRecurring", "recurring"),
		RecurringFrequency: frequency,
	}, true
}

// Signed returns the amount with the sign of its direction.
func (t Transaction) Signed() decimal.Decimal {
	if t.Type == Income {
		return t.Amount
	}
	return t.Amount.Neg()
}

// Editable returns the transaction as it would be submitted again.
func (t Transaction) Editable() TransactionEditable {
	return TransactionEditable{
		Amount:             Decimal(t.Amount),
		Type:               t.Type,
		Date:               t.Date.String(),
		CategoryID:         Int(t.CategoryID),
		AccountID:          Int(t.AccountID),
		Description:        t.Description,
		Merchant:           deref(t.Merchant),
		Tags:               strings.Join(t.Tags, ","),
		IsRecurring:        FormValue(strconv.FormatBool(t.IsRecurring)),
		RecurringFrequency: deref(t.RecurringFrequency),
	}
}

// Payload validates the transaction and returns its wire form.
func (e TransactionEditable) Payload(id int64) (Payload, error) {
	var c check

	p := transactionPayload{
		ID:          id,
		Amount:      number(c.money("amount", e.Amount, true)),
		Type:        c.enum("transactionType", e.Type, FlowTypes, Expense),
		Date:        c.date("transactionDate", e.Date),
		CategoryID:  c.id("categoryId", e.CategoryID),
		AccountID:   c.id("accountId", e.AccountID),
		Description: c.text("description", e.Description),
		Merchant:    optional(e.Merchant),
		Tags:        strings.Join(splitTags(e.Tags), ","),
		IsRecurring: c.boolean("isRecurring", e.IsRecurring, false),
	}

	if p.IsRecurring {
		if strings.TrimSpace(e.RecurringFrequency) == "" {
			c.fail("recurringFrequency", "is required for recurring transactions")
		}
		f := c.enum("recurringFrequency", e.RecurringFrequency, Periods, Monthly)
		p.RecurringFrequency = &f
	}

	if c.err != nil {
		return nil, c.err
	}
	return p, nil
}

func splitTags(s string) []string {
	tags := []string{}
	for _, tag := range strings.Split(s, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
