package httputil

import (
	"errors"
	"io"
	"strconv"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/pocketledger/dashboard/pkg/apierrors"
	"github.com/rs/zerolog/log"
)

var (
	ErrRequestBodyEmpty = apierrors.Local("request body must not be empty")
	ErrInvalidBody      = apierrors.Local("the body of your request contains invalid or un-parseable data. Please check and try again")
	ErrInvalidID        = apierrors.Local("id: must be a positive integer")
	ErrInvalidQuery     = apierrors.Local("The query string contains unparseable data. Please check the values")
)

// BindData binds the JSON body of the request to data.
func BindData(c *gin.Context, data any) error {
	if err := c.ShouldBindJSON(data); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrRequestBodyEmpty
		}

		log.Debug().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return ErrInvalidBody
	}

	return nil
}

// BindQuery binds the query string of the request to data.
func BindQuery(c *gin.Context, data any) error {
	if err := c.ShouldBindQuery(data); err != nil {
		log.Debug().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return ErrInvalidQuery
	}

	return nil
}

// ParseID reads the numeric record id from the "id" path parameter.
func ParseID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}

	return id, nil
}
