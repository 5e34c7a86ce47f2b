package controllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/pocketledger/dashboard/pkg/httputil"
	"github.com/rs/zerolog/log"
)

// RegisterHealthzRoutes registers the routes for the healthz endpoint.
func (co Controller) RegisterHealthzRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsHealthz)
	r.GET("", co.GetHealthz)
}

// OptionsHealthz returns the allowed HTTP verbs
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			General
//	@Success		204
//	@Router			/healthz [options]
func (co Controller) OptionsHealthz(c *gin.Context) {
	httputil.OptionsGet(c)
}

type pinger interface {
	Ping(ctx context.Context) error
}

// GetHealthz returns data about the application health
//
//	@Summary		Get health
//	@Description	Returns the application health and, if not healthy, an error
//	@Tags			General
//	@Produce		json
//	@Success		204
//	@Failure		500	{object}	httputil.HTTPError
//	@Router			/healthz [get]
func (co Controller) GetHealthz(c *gin.Context) {
	if p, ok := co.Store.(pinger); ok {
		if err := p.Ping(c.Request.Context()); err != nil {
			log.Error().Str("request-id", requestid.Get(c)).Err(err).Msg("Healthz")
			httputil.NewError(c, http.StatusInternalServerError, errors.New("There is a problem with the credential database"))
			return
		}
	}

	c.Status(http.StatusNoContent)
}
