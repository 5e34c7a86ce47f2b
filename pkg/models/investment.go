package models

import (
	"encoding/json"
	"time"

	"github.com/pocketledger/dashboard/internal/types"
	"github.com/pocketledger/dashboard/pkg/normalize"
	"github.com/shopspring/decimal"
)

// Investment is a holding of a security or other asset.
type Investment struct {
	ID            int64           `json:"id" example:"9"`
	Name          string          `json:"name" example:"World index fund"`
	Type          string          `json:"type" example:"ETF"`
	Symbol        *string         `json:"symbol,omitempty" example:"VT"`
	Quantity      decimal.Decimal `json:"quantity" example:"12.5"`
	PurchasePrice decimal.Decimal `json:"purchasePrice" example:"98.20"`
	CurrentPrice  decimal.Decimal `json:"currentPrice" example:"104.75"`
	PurchaseDate  types.Date      `json:"purchaseDate" swaggertype:"string" example:"2023-11-02"`
	TotalInvested decimal.Decimal `json:"totalInvested" example:"1227.50"`
	CurrentValue  decimal.Decimal `json:"currentValue" example:"1309.38"`
	Broker        *string         `json:"broker,omitempty" example:"Example Brokerage"`
	AccountID     *int64          `json:"accountId,omitempty" example:"1"`
}

// InvestmentEditable is an investment as submitted by the user interface.
type InvestmentEditable struct {
	Name          string    `json:"name" example:"World index fund"`
	Type          string    `json:"type" example:"ETF"`
	Symbol        string    `json:"symbol" example:"VT"`
	Quantity      FormValue `json:"quantity" swaggertype:"string" example:"12.5"`
	PurchasePrice FormValue `json:"purchasePrice" swaggertype:"string" example:"98.20"`
	CurrentPrice  FormValue `json:"currentPrice" swaggertype:"string" example:"104.75"`
	PurchaseDate  string    `json:"purchaseDate" example:"2023-11-02"`
	Broker        string    `json:"broker" example:"Example Brokerage"`
	AccountID     FormValue `json:"accountId" swaggertype:"string" example:"1"`
}

type investmentPayload struct {
	ID            int64       `json:"investmentId,omitempty"`
	Name          string      `json:"investmentName"`
	Type          string      `json:"investmentType"`
	Symbol        *string     `json:"symbol,omitempty"`
	Quantity      json.Number `json:"quantity"`
	PurchasePrice json.Number `json:"purchasePrice"`
	CurrentPrice  json.Number `json:"currentPrice"`
	PurchaseDate  types.Date  `json:"purchaseDate"`
	Broker        *string     `json:"broker,omitempty"`
	AccountID     *int64      `json:"accountId,omitempty"`
}

func (p investmentPayload) References() []Reference {
	if p.AccountID == nil {
		return nil
	}
	return []Reference{{Field: "accountId", Resource: AccountsResource, ID: *p.AccountID}}
}

// NormalizeInvestment builds an Investment from a backend record. Totals
// the backend leaves out are computed from quantity and prices.
func NormalizeInvestment(r normalize.Record, now time.Time) (Investment, bool) {
	id, ok := identify(r, "investmentId", "id")
	if !ok {
		return Investment{}, false
	}

	quantity := r.Amount("quantity", "shares")
	purchase := r.Amount("purchasePrice")
	current, ok := r.Decimal("currentPrice", "price")
	if !ok {
		current = purchase
	}
	current = current.Abs()

	invested, ok := r.Decimal("totalInvested")
	if !ok {
		invested = quantity.Mul(purchase)
	}

	value, ok := r.Decimal("currentValue", "value")
	if !ok {
		value = quantity.Mul(current)
	}

	var account *int64
	if a, ok := identify(r, "accountId"); ok {
		account = &a
	}

	return Investment{
		ID:            id,
		Name:          r.StringOr("", "investmentName", "name"),
		Type:          r.Enum(InvestmentTypes, InvestmentTypes[0], "investmentType", "type"),
		Symbol:        r.OptionalString("symbol", "ticker"),
		Quantity:      quantity,
		PurchasePrice: purchase,
		CurrentPrice:  current,
		PurchaseDate:  r.DateOr(types.DateOf(now), "purchaseDate", "date"),
		TotalInvested: invested.Abs(),
		CurrentValue:  value.Abs(),
		Broker:        r.OptionalString("broker"),
		AccountID:     account,
	}, true
}

// Gain returns the current value minus the amount invested. It is the only
// signed amount in the dashboard.
func (i Investment) Gain() decimal.Decimal {
	return i.CurrentValue.Sub(i.TotalInvested)
}

// Editable returns the investment as it would be submitted again.
func (i Investment) Editable() InvestmentEditable {
	return InvestmentEditable{
		Name:          i.Name,
		Type:          i.Type,
		Symbol:        deref(i.Symbol),
		Quantity:      Decimal(i.Quantity),
		PurchasePrice: Decimal(i.PurchasePrice),
		CurrentPrice:  Decimal(i.CurrentPrice),
		PurchaseDate:  i.PurchaseDate.String(),
		Broker:        deref(i.Broker),
		AccountID:     optionalInt(i.AccountID),
	}
}

// Payload validates the investment and returns its wire form.
func (e InvestmentEditable) Payload(id int64) (Payload, error) {
	var c check

	p := investmentPayload{
		ID:           id,
		Name:         c.text("investmentName", e.Name),
		Type:         c.enum("investmentType", e.Type, InvestmentTypes, InvestmentTypes[0]),
		Symbol:       optional(e.Symbol),
		Quantity:     number(c.money("quantity", e.Quantity, true)),
		PurchaseDate: c.date("purchaseDate", e.PurchaseDate),
		Broker:       optional(e.Broker),
		AccountID:    c.optionalID("accountId", e.AccountID),
	}

	purchase := c.money("purchasePrice", e.PurchasePrice, false)
	current := purchase
	if e.CurrentPrice != "" {
		current = c.money("currentPrice", e.CurrentPrice, false)
	}
	p.PurchasePrice = number(purchase)
	p.CurrentPrice = number(current)

	if c.err != nil {
		return nil, c.err
	}
	return p, nil
}
