// Package apierrors classifies failed exchanges with the finance backend.
package apierrors

import (
	"errors"
	"fmt"
	"time"
)

// Category is the class of a failure.
type Category string

const (
	NetworkError       Category = "NetworkError"
	AuthError          Category = "AuthError"
	ValidationError    Category = "ValidationError"
	ServerMessageError Category = "ServerMessageError"
	ServerError        Category = "ServerError"
	ShapeError         Category = "ShapeError"
	LocalError         Category = "LocalError"
)

// Redirect tells the user interface where to navigate and when.
type Redirect struct {
	Location string
	After    time.Duration
}

// Error is a classified error with a message that can be shown to the user.
type Error struct {
	Category Category
	Message  string
	Status   int       // HTTP status of the backend response, 0 if there was none
	Redirect *Redirect // Set for AuthError
	Err      error     // The underlying error, if any
}

// Error returns the user facing message.
func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is a classified error of the same category.
// This allows errors.Is(err, &apierrors.Error{Category: apierrors.AuthError}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Category == e.Category && (t.Message == "" || t.Message == e.Message)
}

// Local creates a LocalError. It is used for preconditions checked before
// any request is sent.
func Local(msgAndArgs ...any) *Error {
	return &Error{Category: LocalError, Message: format(msgAndArgs...)}
}

// Shape creates a ShapeError for a response body that does not have the
// expected structure.
func Shape(err error) *Error {
	return &Error{Category: ShapeError, Message: "The server sent a response in an unexpected format", Err: err}
}

// CategoryOf returns the category of err, or the empty Category if err has
// not been classified.
func CategoryOf(err error) Category {
	var e *Error
	if errors.As(err, &e) {
		return e.Category
	}
	return ""
}

// IsAuth reports whether err is an AuthError.
func IsAuth(err error) bool {
	return CategoryOf(err) == AuthError
}

// format builds a message from a string or a format string and its arguments.
func format(msgAndArgs ...any) string {
	if len(msgAndArgs) == 0 {
		return ""
	}

	if len(msgAndArgs) == 1 {
		if msgAsStr, ok := msgAndArgs[0].(string); ok {
			return msgAsStr
		}
		return fmt.Sprintf("%+v", msgAndArgs[0])
	}

	return fmt.Sprintf(msgAndArgs[0].(string), msgAndArgs[1:]...)
}
