// Package normalize turns heterogeneous backend payloads into records that
// can be mapped onto canonical entities.
package normalize

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var ErrNotIterable = errors.New("the response body is neither a list nor an object")

// Kind is the shape of the outer JSON of a list response.
type Kind int

const (
	// Unrecognized bodies yield no records.
	Unrecognized Kind = iota
	// Direct bodies are a bare list of records.
	Direct
	// Wrapped bodies are an object holding the list in a named field.
	Wrapped
)

func (k Kind) String() string {
	switch k {
	case Direct:
		return "direct"
	case Wrapped:
		return "wrapped"
	}
	return "unrecognized"
}

// Envelope is the resolved outer shape of a list response.
type Envelope struct {
	Kind    Kind
	Field   string // Name of the field holding the records, only set for Wrapped
	Records []json.RawMessage
}

// Unwrap resolves the envelope of a list response body.
//
// A bare list is used as is. An object is searched for the first of fields
// that holds a list. Everything else that is still JSON, including an empty
// body and null, resolves to Unrecognized with no records. Only bodies that
// are scalars or not JSON at all are an error.
func Unwrap(body []byte, fields ...string) (Envelope, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return Envelope{Kind: Unrecognized}, nil
	}

	switch body[0] {
	case '[':
		var records []json.RawMessage
		if err := json.Unmarshal(body, &records); err != nil {
			return Envelope{}, fmt.Errorf("%w: %w", ErrNotIterable, err)
		}
		return Envelope{Kind: Direct, Records: nonNil(records)}, nil

	case '{':
		var object map[string]json.RawMessage
		if err := json.Unmarshal(body, &object); err != nil {
			return Envelope{}, fmt.Errorf("%w: %w", ErrNotIterable, err)
		}

		for _, field := range fields {
			value, ok := object[field]
			if !ok {
				continue
			}

			var records []json.RawMessage
			if err := json.Unmarshal(value, &records); err != nil || records == nil {
				continue
			}

			return Envelope{Kind: Wrapped, Field: field, Records: records}, nil
		}

		return Envelope{Kind: Unrecognized}, nil
	}

	if bytes.Equal(body, []byte("null")) {
		return Envelope{Kind: Unrecognized}, nil
	}

	return Envelope{}, ErrNotIterable
}

func nonNil(records []json.RawMessage) []json.RawMessage {
	if records == nil {
		return []json.RawMessage{}
	}
	return records
}
