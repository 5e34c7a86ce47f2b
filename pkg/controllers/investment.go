package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/pocketledger/dashboard/pkg/httputil"
)

// RegisterInvestmentRoutes registers the routes for investments with
// the RouterGroup that is passed.
func (co Controller) RegisterInvestmentRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsInvestmentList)
		r.GET("", co.GetInvestments)
		r.POST("", co.CreateInvestment)
	}

	// Investment with ID
	{
		r.OPTIONS("/:id", co.OptionsInvestmentDetail)
		r.PUT("/:id", co.UpdateInvestment)
		r.DELETE("/:id", co.DeleteInvestment)
	}
}

//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Investments
//	@Success		204
//	@Router			/v1/investments [options]
func (co Controller) OptionsInvestmentList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Investments
//	@Success		204
//	@Param			id	path	int	true	"ID of the investment"
//	@Router			/v1/investments/{id} [options]
func (co Controller) OptionsInvestmentDetail(c *gin.Context) {
	httputil.OptionsPutDelete(c)
}

// GetInvestments returns the investments screen
//
//	@Summary		List investments
//	@Description	Returns the investments screen. Lookups that fail to load are reported as warnings.
//	@Tags			Investments
//	@Produce		json
//	@Success		200		{object}	screens.Screen[models.Investment]
//	@Failure		400		{object}	httputil.HTTPError
//	@Failure		401		{object}	httputil.HTTPError
//	@Param			name	query		string	false	"Filter by name, supports * wildcards"
//	@Param			type	query		string	false	"Filter by type"
//	@Param			sort	query		string	false	"Field to sort by"
//	@Param			order	query		string	false	"asc or desc"
//	@Router			/v1/investments [get]
func (co Controller) GetInvestments(c *gin.Context) {
	list(c, co.Screens.Investments)
}

// CreateInvestment creates a investment
//
//	@Summary		Create investment
//	@Description	Creates a new investment and returns it together with the reloaded screen
//	@Tags			Investments
//	@Produce		json
//	@Success		201		{object}	Response[models.Investment, models.Investment]
//	@Failure		400		{object}	httputil.HTTPError
//	@Failure		401		{object}	httputil.HTTPError
//	@Failure		502		{object}	httputil.HTTPError
//	@Param			investment	body		models.InvestmentEditable	true	"Investment"
//	@Router			/v1/investments [post]
func (co Controller) CreateInvestment(c *gin.Context) {
	create(c, co.Services.Investments, co.Screens.Investments)
}

// UpdateInvestment updates a investment
//
//	@Summary		Update investment
//	@Description	Replaces a investment and returns it together with the reloaded screen
//	@Tags			Investments
//	@Produce		json
//	@Success		200		{object}	Response[models.Investment, models.Investment]
//	@Failure		400		{object}	httputil.HTTPError
//	@Failure		401		{object}	httputil.HTTPError
//	@Failure		502		{object}	httputil.HTTPError
//	@Param			id		path		int					true	"ID of the investment"
//	@Param			investment	body		models.InvestmentEditable	true	"Investment"
//	@Router			/v1/investments/{id} [put]
func (co Controller) UpdateInvestment(c *gin.Context) {
	update(c, co.Services.Investments, co.Screens.Investments)
}

// DeleteInvestment deletes a investment
//
//	@Summary		Delete investment
//	@Description	Deletes a investment and returns the reloaded screen
//	@Tags			Investments
//	@Produce		json
//	@Success		200	{object}	Response[models.Investment, models.Investment]
//	@Failure		400	{object}	httputil.HTTPError
//	@Failure		401	{object}	httputil.HTTPError
//	@Failure		502	{object}	httputil.HTTPError
//	@Param			id	path		int	true	"ID of the investment"
//	@Router			/v1/investments/{id} [delete]
func (co Controller) DeleteInvestment(c *gin.Context) {
	remove(c, co.Services.Investments, co.Screens.Investments)
}
