package models

import (
	"encoding/json"
	"time"

	"github.com/pocketledger/dashboard/internal/types"
	"github.com/pocketledger/dashboard/pkg/normalize"
	"github.com/shopspring/decimal"
)

// DefaultAlertThreshold is the share of a budget in percent at which the
// user is warned.
const DefaultAlertThreshold = 80

// Budget is a spending limit for a category over a period.
type Budget struct {
	ID             int64           `json:"id" example:"7"`
	Name           string          `json:"name" example:"Food"`
	Amount         decimal.Decimal `json:"amount" example:"150.5"`
	Period         string          `json:"period" example:"Monthly" enums:"Daily,Weekly,Monthly,Yearly"`
	StartDate      types.Date      `json:"startDate" swaggertype:"string" example:"2024-05-01"`
	EndDate        types.Date      `json:"endDate" swaggertype:"string" example:"2024-05-31"`
	AlertThreshold decimal.Decimal `json:"alertThreshold" example:"80"`
	CategoryID     int64           `json:"categoryId" example:"3"`
}

// BudgetEditable is a budget as submitted by the user interface.
type BudgetEditable struct {
	Name           string    `json:"name" example:"Food"`
	Amount         FormValue `json:"amount" swaggertype:"string" example:"150.5"`
	Period         string    `json:"period" example:"Monthly"`
	StartDate      string    `json:"startDate" example:"2024-05-01"`
	EndDate        string    `json:"endDate" example:"2024-05-31"`
	AlertThreshold FormValue `json:"alertThreshold" swaggertype:"string" example:"80"`
	CategoryID     FormValue `json:"categoryId" swaggertype:"string" example:"3"`
}

type budgetPayload struct {
	ID             int64       `json:"budgetId,omitempty"`
	Name           string      `json:"budgetName"`
	Amount         json.Number `json:"budgetAmount"`
	Period         string      `json:"budgetPeriod"`
	StartDate      types.Date  `json:"startDate"`
	EndDate        types.Date  `json:"endDate"`
	AlertThreshold json.Number `json:"alertThreshold"`
	CategoryID     int64       `json:"categoryId"`
}

func (p budgetPayload) References() []Reference {
	return []Reference{{Field: "categoryId", Resource: CategoriesResource, ID: p.CategoryID}}
}

// NormalizeBudget builds a Budget from a backend record.
func NormalizeBudget(r normalize.Record, now time.Time) (Budget, bool) {
	id, ok := identify(r, "budgetId", "id")
	if !ok {
		return Budget{}, false
	}

	period := r.Enum(Periods, Monthly, "budgetPeriod", "period")
	start := r.DateOr(types.DateOf(now), "startDate", "start")

	end, ok := r.Date("endDate", "end")
	if !ok {
		end = PeriodEnd(start, period)
	} else if end.Before(start) {
		end = start
	}

	threshold, ok := r.Decimal("alertThreshold", "threshold")
	if !ok {
		threshold = decimal.NewFromInt(DefaultAlertThreshold)
	}

	category, _ := r.Int64("categoryId", "category")

	return Budget{
		ID:             id,
		Name:           r.StringOr("", "budgetName", "name"),
		Amount:         r.Amount("budgetAmount", "amount"),
		Period:         period,
		StartDate:      start,
		EndDate:        end,
		AlertThreshold: threshold.Abs(),
		CategoryID:     category,
	}, true
}

// Editable returns the budget as it would be submitted again.
func (b Budget) Editable() BudgetEditable {
	return BudgetEditable{
		Name:           b.Name,
		Amount:         Decimal(b.Amount),
		Period:         b.Period,
		StartDate:      b.StartDate.String(),
		EndDate:        b.EndDate.String(),
		AlertThreshold: Decimal(b.AlertThreshold),
		CategoryID:     Int(b.CategoryID),
	}
}

// Payload validates the budget and returns its wire form.
func (e BudgetEditable) Payload(id int64) (Payload, error) {
	var c check

	p := budgetPayload{
		ID:         id,
		Name:       c.text("budgetName", e.Name),
		Amount:     number(c.money("budgetAmount", e.Amount, true)),
		Period:     c.enum("budgetPeriod", e.Period, Periods, Monthly),
		StartDate:  c.date("startDate", e.StartDate),
		CategoryID: c.id("categoryId", e.CategoryID),
	}

	if e.EndDate == "" {
		p.EndDate = PeriodEnd(p.StartDate, p.Period)
	} else {
		p.EndDate = c.date("endDate", e.EndDate)
		c.notBefore("endDate", p.EndDate, p.StartDate, "startDate")
	}

	threshold := decimal.NewFromInt(DefaultAlertThreshold)
	if e.AlertThreshold != "" {
		threshold = c.money("alertThreshold", e.AlertThreshold, false)
	}
	p.AlertThreshold = number(threshold)

	if c.err != nil {
		return nil, c.err
	}
	return p, nil
}
