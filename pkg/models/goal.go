package models

import (
	"encoding/json"
	"time"

	"github.com/pocketledger/dashboard/internal/types"
	"github.com/pocketledger/dashboard/pkg/normalize"
	"github.com/shopspring/decimal"
)

// Goal is an amount the user wants to save up to by a date.
type Goal struct {
	ID            int64           `json:"id" example:"2"`
	Name          string          `json:"name" example:"Emergency fund"`
	Description   *string         `json:"description,omitempty" example:"Three months of expenses"`
	Type          string          `json:"type" example:"Savings"`
	TargetAmount  decimal.Decimal `json:"targetAmount" example:"6000"`
	CurrentAmount decimal.Decimal `json:"currentAmount" example:"1250"` // Progress as reported by the backend
	TargetDate    types.Date      `json:"targetDate" swaggertype:"string" example:"2025-12-31"`
	Priority      string          `json:"priority" example:"Medium" enums:"Low,Medium,High"`
}

// GoalEditable is a goal as submitted by the user interface.
type GoalEditable struct {
	Name          string    `json:"name" example:"Emergency fund"`
	Description   string    `json:"description" example:"Three months of expenses"`
	Type          string    `json:"type" example:"Savings"`
	TargetAmount  FormValue `json:"targetAmount" swaggertype:"string" example:"6000"`
	CurrentAmount FormValue `json:"currentAmount" swaggertype:"string" example:"1250"`
	TargetDate    string    `json:"targetDate" example:"2025-12-31"`
	Priority      string    `json:"priority" example:"Medium"`
}

type goalPayload struct {
	ID            int64       `json:"goalId,omitempty"`
	Name          string      `json:"goalName"`
	Description   *string     `json:"description,omitempty"`
	Type          string      `json:"goalType"`
	TargetAmount  json.Number `json:"targetAmount"`
	CurrentAmount json.Number `json:"currentAmount"`
	TargetDate    types.Date  `json:"targetDate"`
	Priority      string      `json:"priority"`
}

func (goalPayload) References() []Reference {
	return nil
}

// NormalizeGoal builds a Goal from a backend record.
func NormalizeGoal(r normalize.Record, now time.Time) (Goal, bool) {
	id, ok := identify(r, "goalId", "id")
	if !ok {
		return Goal{}, false
	}

	return Goal{
		ID:            id,
		Name:          r.StringOr("", "goalName", "name"),
		Description:   r.OptionalString("description"),
		Type:          r.Enum(GoalTypes, GoalTypes[0], "goalType", "type"),
		TargetAmount:  r.Amount("targetAmount", "amount"),
		CurrentAmount: r.Amount("currentAmount", "savedAmount"),
		TargetDate:    r.DateOr(types.DateOf(now), "targetDate", "date"),
		Priority:      r.Enum(Priorities, Medium, "priority"),
	}, true
}

// Editable returns the goal as it would be submitted again.
func (g Goal) Editable() GoalEditable {
	return GoalEditable{
		Name:          g.Name,
		Description:   deref(g.Description),
		Type:          g.Type,
		TargetAmount:  Decimal(g.TargetAmount),
		CurrentAmount: Decimal(g.CurrentAmount),
		TargetDate:    g.TargetDate.String(),
		Priority:      g.Priority,
	}
}

// Payload validates the goal and returns its wire form.
func (e GoalEditable) Payload(id int64) (Payload, error) {
	var c check

	p := goalPayload{
		ID:            id,
		Name:          c.text("goalName", e.Name),
		Description:   optional(e.Description),
		Type:          c.enum("goalType", e.Type, GoalTypes, GoalTypes[0]),
		TargetAmount:  number(c.money("targetAmount", e.TargetAmount, true)),
		CurrentAmount: number(c.money("currentAmount", e.CurrentAmount, false)),
		TargetDate:    c.date("targetDate", e.TargetDate),
		Priority:      c.enum("priority", e.Priority, Priorities, Medium),
	}

	if c.err != nil {
		return nil, c.err
	}
	return p, nil
}
