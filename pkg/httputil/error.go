package httputil

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/pocketledger/dashboard/pkg/apierrors"
	"github.com/rs/zerolog/log"
)

// HTTPError is used for error responses.
type HTTPError struct {
	Error    string             `json:"error" example:"budgetName: is required"`
	Category apierrors.Category `json:"category,omitempty" example:"LocalError"`
	Redirect *Redirect          `json:"redirect,omitempty"`
}

// Redirect tells the user interface to navigate to Location after the delay.
type Redirect struct {
	Location string `json:"location" example:"/login"`
	After    int64  `json:"after" example:"2000"` // Delay in milliseconds
}

// Status returns the HTTP status the dashboard responds with for a
// classified error.
func Status(e *apierrors.Error) int {
	switch e.Category {
	case apierrors.LocalError:
		return http.StatusBadRequest
	case apierrors.ValidationError:
		if e.Status >= 400 && e.Status < 500 {
			return e.Status
		}
		return http.StatusBadRequest
	case apierrors.AuthError:
		return http.StatusUnauthorized
	case apierrors.ServerMessageError:
		if e.Status >= 400 {
			return e.Status
		}
		return http.StatusBadGateway
	default:
		return http.StatusBadGateway
	}
}

// ErrorResponse aborts the request with the error rendered as HTTPError.
//
// Errors that have not been classified are server side problems of the
// dashboard itself and are logged.
func ErrorResponse(c *gin.Context, err error) {
	var e *apierrors.Error
	if !errors.As(err, &e) {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		NewError(c, http.StatusInternalServerError, fmt.Errorf("an error occurred on the server during your request, please contact your server administrator. The request id is '%v', send this to your server administrator to help them finding the problem", requestid.Get(c)))
		return
	}

	body := HTTPError{
		Error:    e.Message,
		Category: e.Category,
	}

	if e.Redirect != nil {
		body.Redirect = &Redirect{
			Location: e.Redirect.Location,
			After:    e.Redirect.After.Milliseconds(),
		}

		seconds := strconv.FormatFloat(e.Redirect.After.Seconds(), 'f', -1, 64)
		c.Header("Refresh", fmt.Sprintf("%s; url=%s", seconds, e.Redirect.Location))
	}

	if e.Category == apierrors.ServerError || e.Category == apierrors.ShapeError {
		log.Warn().Str("request-id", requestid.Get(c)).Str("category", string(e.Category)).Err(e.Err).Msg(e.Message)
	}

	c.AbortWithStatusJSON(Status(e), body)
}

// NewError aborts the request with an HTTPError carrying only the message.
func NewError(c *gin.Context, status int, err error) {
	c.AbortWithStatusJSON(status, HTTPError{
		Error: err.Error(),
	})
}
