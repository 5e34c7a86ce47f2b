package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pocketledger/dashboard/pkg/httputil"
)

// RegisterOverviewRoutes registers the routes for the overview screen.
func (co Controller) RegisterOverviewRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsOverview)
	r.GET("", co.GetOverview)
}

//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Overview
//	@Success		204
//	@Router			/v1/overview [options]
func (co Controller) OptionsOverview(c *gin.Context) {
	httputil.OptionsGet(c)
}

// GetOverview returns the overview screen
//
//	@Summary		Overview
//	@Description	Returns all lists as the backend reports them together with the debts due within 30 days and the newest transactions
//	@Tags			Overview
//	@Produce		json
//	@Success		200	{object}	screens.Overview
//	@Failure		401	{object}	httputil.HTTPError
//	@Router			/v1/overview [get]
func (co Controller) GetOverview(c *gin.Context) {
	overview, err := co.Screens.Overview(c.Request.Context())
	if err != nil {
		httputil.ErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, overview)
}
