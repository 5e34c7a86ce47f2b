package apierrors

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/pocketledger/dashboard/pkg/apiclient"
	"github.com/pocketledger/dashboard/pkg/credentials"
	"github.com/rs/zerolog"
)

const (
	DefaultLoginPath     = "/login"
	DefaultRedirectDelay = 2 * time.Second

	networkMessage = "Unable to reach the server. Please check your internet connection and try again."
	authMessage    = "Your session has expired. Please log in again."
)

// messageFields are the body fields that carry a human readable message, in
// order of preference.
var messageFields = []string{"message", "title", "error"}

// Classifier turns errors into classified errors.
type Classifier struct {
	// Store is cleared when the backend rejects the credentials.
	Store credentials.Store

	LoginPath     string
	RedirectDelay time.Duration
}

// NewClassifier creates a Classifier with the default login path and delay.
func NewClassifier(store credentials.Store) Classifier {
	return Classifier{
		Store:         store,
		LoginPath:     DefaultLoginPath,
		RedirectDelay: DefaultRedirectDelay,
	}
}

// Classify maps err to a classified error. The first matching rule wins:
//
//  1. a request was sent but no response received: NetworkError
//  2. the response status is 401: AuthError, the credentials are cleared
//  3. the body has a non-empty "errors" map: ValidationError
//  4. the body has a message, title or error string: ServerMessageError
//  5. any other response: ServerError
//  6. nothing was sent: LocalError
//
// Errors that are already classified are returned unchanged.
func (c Classifier) Classify(ctx context.Context, err error) *Error {
	if err == nil {
		return nil
	}

	var classified *Error
	if errors.As(err, &classified) {
		return classified
	}

	var exchange *apiclient.ExchangeError
	if !errors.As(err, &exchange) {
		return &Error{Category: LocalError, Message: err.Error(), Err: err}
	}

	if exchange.Response == nil {
		if exchange.Sent {
			return &Error{Category: NetworkError, Message: networkMessage, Err: err}
		}
		return &Error{Category: LocalError, Message: exchange.Error(), Err: err}
	}

	status := exchange.Response.Status
	body := exchange.Response.Body

	if status == http.StatusUnauthorized {
		return c.auth(ctx, err)
	}

	if field, msg, ok := firstValidationError(body); ok {
		return &Error{Category: ValidationError, Message: fmt.Sprintf("%s: %s", field, msg), Status: status, Err: err}
	}

	if msg, ok := bodyMessage(body); ok {
		return &Error{Category: ServerMessageError, Message: msg, Status: status, Err: err}
	}

	return &Error{Category: ServerError, Message: fmt.Sprintf("Server error (%d)", status), Status: status, Err: err}
}

// auth clears the credentials and builds the AuthError.
func (c Classifier) auth(ctx context.Context, err error) *Error {
	if c.Store != nil {
		if clearErr := c.Store.Clear(ctx); clearErr != nil {
			zerolog.Ctx(ctx).Error().Err(clearErr).Msg("could not clear credentials after authentication failure")
		}
	}

	location := c.LoginPath
	if location == "" {
		location = DefaultLoginPath
	}

	return &Error{
		Category: AuthError,
		Message:  authMessage,
		Status:   http.StatusUnauthorized,
		Redirect: &Redirect{Location: location, After: c.RedirectDelay},
		Err:      err,
	}
}

// firstValidationError returns the first field of the "errors" object in
// document order together with its first message.
//
// The body is streamed since the order of keys in a decoded map is lost.
func firstValidationError(body []byte) (string, string, bool) {
	dec := json.NewDecoder(bytes.NewReader(body))

	if !expectDelim(dec, '{') {
		return "", "", false
	}

	for dec.More() {
		key, ok := nextKey(dec)
		if !ok {
			return "", "", false
		}

		if key != "errors" {
			var skip json.RawMessage
			if dec.Decode(&skip) != nil {
				return "", "", false
			}
			continue
		}

		if !expectDelim(dec, '{') {
			return "", "", false
		}

		for dec.More() {
			field, ok := nextKey(dec)
			if !ok {
				return "", "", false
			}

			var value json.RawMessage
			if dec.Decode(&value) != nil {
				return "", "", false
			}

			if msg, ok := firstMessage(value); ok {
				return field, msg, true
			}
		}

		return "", "", false
	}

	return "", "", false
}

// firstMessage accepts a single message or a list of messages.
func firstMessage(value json.RawMessage) (string, bool) {
	var list []string
	if json.Unmarshal(value, &list) == nil {
		for _, msg := range list {
			if strings.TrimSpace(msg) != "" {
				return msg, true
			}
		}
		return "", false
	}

	var single string
	if json.Unmarshal(value, &single) == nil && strings.TrimSpace(single) != "" {
		return single, true
	}

	return "", false
}

func bodyMessage(body []byte) (string, bool) {
	var fields map[string]json.RawMessage
	if json.Unmarshal(body, &fields) != nil {
		return "", false
	}

	for _, name := range messageFields {
		var msg string
		if json.Unmarshal(fields[name], &msg) == nil && strings.TrimSpace(msg) != "" {
			return msg, true
		}
	}

	return "", false
}

func expectDelim(dec *json.Decoder, delim json.Delim) bool {
	t, err := dec.Token()
	if err != nil {
		return false
	}

	d, ok := t.(json.Delim)
	return ok && d == delim
}

func nextKey(dec *json.Decoder) (string, bool) {
	t, err := dec.Token()
	if err != nil {
		return "", false
	}

	key, ok := t.(string)
	return key, ok
}
