package models

import (
	"encoding/json"
	"strings"

	"github.com/pocketledger/dashboard/internal/types"
)

// Transfer moves money between two accounts of the user.
type Transfer struct {
	FromAccountID FormValue `json:"fromAccountId" swaggertype:"string" example:"1"`
	ToAccountID   FormValue `json:"toAccountId" swaggertype:"string" example:"2"`
	Amount        FormValue `json:"amount" swaggertype:"string" example:"250"`
	Description   string    `json:"description" example:"Move to savings"`
	Date          string    `json:"date" example:"2024-05-14"`
}

type transferPayload struct {
	FromAccountID int64       `json:"fromAccountId"`
	ToAccountID   int64       `json:"toAccountId"`
	Amount        json.Number `json:"amount"`
	Description   string      `json:"description"`
	Date          types.Date  `json:"date"`
}

func (p transferPayload) References() []Reference {
	return []Reference{
		{Field: "fromAccountId", Resource: AccountsResource, ID: p.FromAccountID},
		{Field: "toAccountId", Resource: AccountsResource, ID: p.ToAccountID},
	}
}

// Payload validates the transfer and returns its wire form.
func (t Transfer) Payload() (Payload, error) {
	var c check

	p := transferPayload{
		FromAccountID: c.id("fromAccountId", t.FromAccountID),
		ToAccountID:   c.id("toAccountId", t.ToAccountID),
		Amount:        number(c.money("amount", t.Amount, true)),
		Description:   strings.TrimSpace(t.Description),
		Date:          c.date("date", t.Date),
	}

	if p.FromAccountID != 0 && p.FromAccountID == p.ToAccountID {
		c.fail("toAccountId", "must differ from fromAccountId")
	}
	if p.Description == "" {
		p.Description = "Transfer"
	}

	if c.err != nil {
		return nil, c.err
	}
	return p, nil
}

// DebtPayment is a payment towards a debt.
type DebtPayment struct {
	PaymentDate   string    `json:"paymentDate" example:"2024-05-15"`
	PaymentAmount FormValue `json:"paymentAmount" swaggertype:"string" example:"75"`
}

type debtPaymentPayload struct {
	PaymentDate   types.Date  `json:"paymentDate"`
	PaymentAmount json.Number `json:"paymentAmount"`
}

func (debtPaymentPayload) References() []Reference {
	return nil
}

// Payload validates the payment and returns its wire form.
func (d DebtPayment) Payload() (Payload, error) {
	var c check

	p := debtPaymentPayload{
		PaymentDate:   c.date("paymentDate", d.PaymentDate),
		PaymentAmount: number(c.money("paymentAmount", d.PaymentAmount, true)),
	}

	if c.err != nil {
		return nil, c.err
	}
	return p, nil
}
