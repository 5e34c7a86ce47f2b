package models

import (
	"time"

	"github.com/pocketledger/dashboard/pkg/normalize"
)

// Default colors and icons per category type.
const (
	IncomeColor  = "#10B981"
	ExpenseColor = "#EF4444"
	IncomeIcon   = "wallet"
	ExpenseIcon  = "tag"
)

// Category groups transactions and budgets.
type Category struct {
	ID          int64   `json:"id" example:"3"`
	Name        string  `json:"name" example:"Groceries"`
	Type        string  `json:"type" example:"expense" enums:"income,expense"`
	Description *string `json:"description,omitempty" example:"Food and household supplies"`
	Color       string  `json:"color" example:"#EF4444"`
	Icon        string  `json:"icon" example:"tag"`
	IsDefault   bool    `json:"isDefault" example:"false"`
}

// CategoryEditable is a category as submitted by the user interface.
type CategoryEditable struct {
	Name        string `json:"name" example:"Groceries"`
	Type        string `json:"type" example:"expense"`
	Description string `json:"description" example:"Food and household supplies"`
	Color       string `json:"color" example:"#EF4444"`
	Icon        string `json:"icon" example:"tag"`
}

type categoryPayload struct {
	ID          int64   `json:"categoryId,omitempty"`
	Name        string  `json:"categoryName"`
	Type        string  `json:"categoryType"`
	Description *string `json:"description,omitempty"`
	Color       string  `json:"color"`
	Icon        string  `json:"icon"`
}

func (categoryPayload) References() []Reference {
	return nil
}

func categoryDefaults(kind string) (color, icon string) {
	if kind == Income {
		return IncomeColor, IncomeIcon
	}
	return ExpenseColor, ExpenseIcon
}

// NormalizeCategory builds a Category from a backend record.
func NormalizeCategory(r normalize.Record, _ time.Time) (Category, bool) {
	id, ok := identify(r, "categoryId", "id")
	if !ok {
		return Category{}, false
	}

	kind := r.Enum(FlowTypes, Expense, "categoryType", "type")
	color, icon := categoryDefaults(kind)

	return Category{
		ID:          id,
		Name:        r.StringOr("", "categoryName", "name"),
		Type:        kind,
		Description: r.OptionalString("description"),
		Color:       hexColorOr(r.StringOr("", "color"), color),
		Icon:        r.StringOr(icon, "icon"),
		IsDefault:   r.BoolOr(false, "isDefault"),
	}, true
}

// Editable returns the category as it would be submitted again.
func (c Category) Editable() CategoryEditable {
	return CategoryEditable{
		Name:        c.Name,
		Type:        c.Type,
		Description: deref(c.Description),
		Color:       c.Color,
		Icon:        c.Icon,
	}
}

// Payload validates the category and returns its wire form.
func (e CategoryEditable) Payload(id int64) (Payload, error) {
	var c check

	kind := c.enum("categoryType", e.Type, FlowTypes, Expense)
	color, icon := categoryDefaults(kind)

	p := categoryPayload{
		ID:          id,
		Name:        c.text("categoryName", e.Name),
		Type:        kind,
		Description: optional(e.Description),
		Color:       c.color("color", e.Color, color),
		Icon:        deref(optional(e.Icon)),
	}
	if p.Icon == "" {
		p.Icon = icon
	}

	if c.err != nil {
		return nil, c.err
	}
	return p, nil
}
