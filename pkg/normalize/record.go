package normalize

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/pocketledger/dashboard/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// Record is one raw record of a response.
//
// All accessors take a list of keys that are tried in order. A key counts as
// present if its value is not null and has the expected shape. Accessors
// never fail, they report whether a usable value was found.
type Record map[string]json.RawMessage

// Parse parses a raw record. It reports false if raw is not a JSON object.
func Parse(raw json.RawMessage) (Record, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return nil, false
	}

	var r Record
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, false
	}

	return r, true
}

// each calls try with the value of every key that is present and not null
// until try reports success.
func (r Record) each(keys []string, try func(json.RawMessage) bool) bool {
	for _, key := range keys {
		v, ok := r[key]
		if !ok || isNull(v) {
			continue
		}

		if try(v) {
			return true
		}
	}

	return false
}

// String returns the first non-blank string. Numbers are accepted and
// returned in their JSON representation.
func (r Record) String(keys ...string) (string, bool) {
	var result string
	ok := r.each(keys, func(v json.RawMessage) bool {
		var s string
		if json.Unmarshal(v, &s) == nil {
			s = strings.TrimSpace(s)
			result = s
			return s != ""
		}

		var n json.Number
		if json.Unmarshal(v, &n) == nil {
			result = n.String()
			return true
		}

		return false
	})

	return result, ok
}

// StringOr returns the first string or the fallback.
func (r Record) StringOr(fallback string, keys ...string) string {
	if s, ok := r.String(keys...); ok {
		return s
	}
	return fallback
}

// OptionalString returns a pointer to the first string, or nil.
func (r Record) OptionalString(keys ...string) *string {
	if s, ok := r.String(keys...); ok {
		return &s
	}
	return nil
}

// Decimal returns the first number. Numeric strings are accepted.
func (r Record) Decimal(keys ...string) (decimal.Decimal, bool) {
	var result decimal.Decimal
	ok := r.each(keys, func(v json.RawMessage) bool {
		var s string
		if json.Unmarshal(v, &s) == nil {
			d, err := decimal.NewFromString(strings.TrimSpace(s))
			if err != nil {
				return false
			}
			result = d
			return true
		}

		var n json.Number
		if json.Unmarshal(v, &n) == nil {
			d, err := decimal.NewFromString(n.String())
			if err != nil {
				return false
			}
			result = d
			return true
		}

		return false
	})

	return result, ok
}

// Amount returns the magnitude of the first number, or zero. The sign of
// monetary values is carried by a separate field, never by the number.
func (r Record) Amount(keys ...string) decimal.Decimal {
	d, _ := r.Decimal(keys...)
	return d.Abs()
}

// OptionalAmount returns the magnitude of the first number, or nil.
func (r Record) OptionalAmount(keys ...string) *decimal.Decimal {
	d, ok := r.Decimal(keys...)
	if !ok {
		return nil
	}

	d = d.Abs()
	return &d
}

// Int64 returns the first integral number. Numeric strings are accepted.
func (r Record) Int64(keys ...string) (int64, bool) {
	var result int64
	ok := r.each(keys, func(v json.RawMessage) bool {
		s := strings.Trim(string(v), `" `)
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			d, derr := decimal.NewFromString(s)
			if derr != nil || !d.IsInteger() || !d.BigInt().IsInt64() {
				return false
			}
			i = d.IntPart()
		}
		result = i
		return true
	})

	return result, ok
}

// OptionalInt64 returns a pointer to the first integral number, or nil.
func (r Record) OptionalInt64(keys ...string) *int64 {
	if i, ok := r.Int64(keys...); ok {
		return &i
	}
	return nil
}

// Bool returns the first boolean. The strings "true" and "false" and the
// numbers 0 and 1 are accepted.
func (r Record) Bool(keys ...string) (bool, bool) {
	var result bool
	ok := r.each(keys, func(v json.RawMessage) bool {
		switch strings.ToLower(strings.Trim(string(v), `" `)) {
		case "true", "1":
			result = true
			return true
		case "false", "0":
			result = false
			return true
		}
		return false
	})

	return result, ok
}

// BoolOr returns the first boolean or the fallback.
func (r Record) BoolOr(fallback bool, keys ...string) bool {
	if b, ok := r.Bool(keys...); ok {
		return b
	}
	return fallback
}

// Date returns the first calendar date. Timestamps are cut to their day.
func (r Record) Date(keys ...string) (types.Date, bool) {
	var result types.Date
	ok := r.each(keys, func(v json.RawMessage) bool {
		var s string
		if json.Unmarshal(v, &s) != nil {
			return false
		}

		d, err := types.ParseDate(s)
		if err != nil {
			return false
		}
		result = d
		return true
	})

	return result, ok
}

// DateOr returns the first calendar date or the fallback.
func (r Record) DateOr(fallback types.Date, keys ...string) types.Date {
	if d, ok := r.Date(keys...); ok {
		return d
	}
	return fallback
}

// OptionalDate returns a pointer to the first calendar date, or nil.
func (r Record) OptionalDate(keys ...string) *types.Date {
	if d, ok := r.Date(keys...); ok {
		return &d
	}
	return nil
}

// Time returns the first timestamp in UTC.
func (r Record) Time(keys ...string) (time.Time, bool) {
	var result time.Time
	ok := r.each(keys, func(v json.RawMessage) bool {
		var s string
		if json.Unmarshal(v, &s) != nil {
			return false
		}

		t, err := types.ParseTime(s)
		if err != nil {
			return false
		}
		result = t
		return true
	})

	return result, ok
}

// Strings returns the first list of strings. A comma separated string is
// accepted as well. Blank entries are dropped.
func (r Record) Strings(keys ...string) ([]string, bool) {
	var result []string
	ok := r.each(keys, func(v json.RawMessage) bool {
		var list []string
		if json.Unmarshal(v, &list) != nil {
			var s string
			if json.Unmarshal(v, &s) != nil {
				return false
			}
			list = strings.Split(s, ",")
		}

		result = []string{}
		for _, entry := range list {
			if entry = strings.TrimSpace(entry); entry != "" {
				result = append(result, entry)
			}
		}
		return true
	})

	return result, ok
}

// Enum returns the first string that matches one of the allowed values,
// ignoring case. The allowed spelling is returned. If no key matches, the
// fallback is returned.
func (r Record) Enum(allowed []string, fallback string, keys ...string) string {
	var result string
	ok := r.each(keys, func(v json.RawMessage) bool {
		var s string
		if json.Unmarshal(v, &s) != nil {
			return false
		}

		i := slices.IndexFunc(allowed, func(a string) bool {
			return strings.EqualFold(a, strings.TrimSpace(s))
		})
		if i < 0 {
			return false
		}

		result = allowed[i]
		return true
	})

	if !ok {
		return fallback
	}
	return result
}

func isNull(v json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(v), []byte("null"))
}
