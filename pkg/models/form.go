package models

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/pocketledger/dashboard/internal/types"
	"github.com/pocketledger/dashboard/pkg/apierrors"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// FormValue is a form field as submitted by the user interface. Strings,
// numbers and booleans are all accepted and kept in their text form.
type FormValue string

// UnmarshalJSON implements the json.Unmarshaler interface.
func (v *FormValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*v = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = FormValue(strings.TrimSpace(s))
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*v = FormValue(n.String())
		return nil
	}

	var b bool
	if err := json.Unmarshal(data, &b); err != nil {
		return err
	}
	*v = FormValue(strconv.FormatBool(b))
	return nil
}

func (v FormValue) String() string {
	return string(v)
}

// Decimal returns a FormValue holding the decimal.
func Decimal(d decimal.Decimal) FormValue {
	return FormValue(d.String())
}

// Int returns a FormValue holding the integer.
func Int(i int64) FormValue {
	return FormValue(strconv.FormatInt(i, 10))
}

func optionalInt(i *int64) FormValue {
	if i == nil {
		return ""
	}
	return Int(*i)
}

func optionalDate(d *types.Date) string {
	if d == nil {
		return ""
	}
	return d.String()
}

// number formats a decimal as a JSON number so that the backend never
// receives a quoted amount.
func number(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// check validates form input. Only the first failure is kept, it becomes the
// LocalError returned to the caller.
type check struct {
	err *apierrors.Error
}

func (c *check) fail(field, msg string) {
	if c.err == nil {
		c.err = apierrors.Local("%s: %s", field, msg)
	}
}

// text returns the trimmed value and fails if it is empty.
func (c *check) text(field, value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		c.fail(field, "is required")
	}
	return value
}

// money parses an amount and returns its magnitude. A missing value is zero
// unless positive is set.
func (c *check) money(field string, value FormValue, positive bool) decimal.Decimal {
	if value == "" {
		if positive {
			c.fail(field, "is required")
		}
		return decimal.Zero
	}

	d, err := decimal.NewFromString(string(value))
	if err != nil {
		c.fail(field, "must be a number")
		return decimal.Zero
	}

	d = d.Abs()
	if positive && d.IsZero() {
		c.fail(field, "must be greater than zero")
	}
	return d
}

// id parses a reference to another record.
func (c *check) id(field string, value FormValue) int64 {
	if value == "" {
		c.fail(field, "is required")
		return 0
	}

	i, err := strconv.ParseInt(string(value), 10, 64)
	if err != nil || i <= 0 {
		c.fail(field, "must be a positive integer")
		return 0
	}
	return i
}

func (c *check) optionalID(field string, value FormValue) *int64 {
	if value == "" {
		return nil
	}

	i := c.id(field, value)
	return &i
}

func (c *check) date(field, value string) types.Date {
	if strings.TrimSpace(value) == "" {
		c.fail(field, "is required")
		return types.Date{}
	}

	d, err := types.ParseDate(value)
	if err != nil {
		c.fail(field, "must be a date in YYYY-MM-DD format")
	}
	return d
}

func (c *check) optionalDate(field, value string) *types.Date {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	d := c.date(field, value)
	return &d
}

// notBefore fails if end is before start.
func (c *check) notBefore(field string, end, start types.Date, startField string) {
	if end.Before(start) {
		c.fail(field, "must not be before "+startField)
	}
}

// enum returns the allowed spelling of the value. An empty value returns the
// fallback.
func (c *check) enum(field, value string, allowed []string, fallback string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}

	i := slices.IndexFunc(allowed, func(a string) bool {
		return strings.EqualFold(a, value)
	})
	if i < 0 {
		c.fail(field, "must be one of "+strings.Join(allowed, ", "))
		return fallback
	}
	return allowed[i]
}

// integer parses a whole number within [min, max]. An empty value returns
// the fallback.
func (c *check) integer(field string, value FormValue, min, max, fallback int) int {
	if value == "" {
		return fallback
	}

	i, err := strconv.Atoi(string(value))
	if err != nil || i < min || i > max {
		c.fail(field, "must be a whole number from "+strconv.Itoa(min)+" to "+strconv.Itoa(max))
		return fallback
	}
	return i
}

func (c *check) boolean(field string, value FormValue, fallback bool) bool {
	if value == "" {
		return fallback
	}

	b, err := strconv.ParseBool(string(value))
	if err != nil {
		c.fail(field, "must be true or false")
		return fallback
	}
	return b
}

func (c *check) color(field, value, fallback string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}

	if !hexColor.MatchString(value) {
		c.fail(field, "must be a hex color like #10B981")
		return fallback
	}
	return strings.ToUpper(value)
}

// hexColorOr returns the color in upper case, or the fallback if it is not a
// hex color like #10B981.
func hexColorOr(value, fallback string) string {
	value = strings.TrimSpace(value)
	if !hexColor.MatchString(value) {
		return fallback
	}
	return strings.ToUpper(value)
}

// optional returns nil for blank strings.
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
