package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pocketledger/dashboard/pkg/httputil"
	"github.com/pocketledger/dashboard/pkg/models"
)

// RegisterDebtRoutes registers the routes for debts with
// the RouterGroup that is passed.
func (co Controller) RegisterDebtRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsDebtList)
		r.GET("", co.GetDebts)
		r.POST("", co.CreateDebt)
	}

	// Debt with ID
	{
		r.OPTIONS("/:id", co.OptionsDebtDetail)
		r.PUT("/:id", co.UpdateDebt)
		r.DELETE("/:id", co.DeleteDebt)
	}

	{
		r.OPTIONS("/:id/payments", co.OptionsDebtPayments)
		r.POST("/:id/payments", co.ProcessDebtPayment)
	}
}

//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Debts
//	@Success		204
//	@Router			/v1/debts [options]
func (co Controller) OptionsDebtList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Debts
//	@Success		204
//	@Param			id	path	int	true	"ID of the debt"
//	@Router			/v1/debts/{id} [options]
func (co Controller) OptionsDebtDetail(c *gin.Context) {
	httputil.OptionsPutDelete(c)
}

// GetDebts returns the debts screen
//
//	@Summary		List debts
//	@Description	Returns the debts screen. Lookups that fail to load are reported as warnings.
//	@Tags			Debts
//	@Produce		json
//	@Success		200		{object}	screens.Screen[models.Debt]
//	@Failure		400		{object}	httputil.HTTPError
//	@Failure		401		{object}	httputil.HTTPError
//	@Param			name	query		string	false	"Filter by name, supports * wildcards"
//	@Param			type	query		string	false	"Filter by type"
//	@Param			sort	query		string	false	"Field to sort by"
//	@Param			order	query		string	false	"asc or desc"
//	@Router			/v1/debts [get]
func (co Controller) GetDebts(c *gin.Context) {
	list(c, co.Screens.Debts)
}

// CreateDebt creates a debt
//
//	@Summary		Create debt
//	@Description	Creates a new debt and returns it together with the reloaded screen
//	@Tags			Debts
//	@Produce		json
//	@Success		201		{object}	Response[models.Debt, models.Debt]
//	@Failure		400		{object}	httputil.HTTPError
//	@Failure		401		{object}	httputil.HTTPError
//	@Failure		502		{object}	httputil.HTTPError
//	@Param			debt	body		models.DebtEditable	true	"Debt"
//	@Router			/v1/debts [post]
func (co Controller) CreateDebt(c *gin.Context) {
	create(c, co.Services.Debts.Resource, co.Screens.Debts)
}

// UpdateDebt updates a debt
//
//	@Summary		Update debt
//	@Description	Replaces a debt and returns it together with the reloaded screen
//	@Tags			Debts
//	@Produce		json
//	@Success		200		{object}	Response[models.Debt, models.Debt]
//	@Failure		400		{object}	httputil.HTTPError
//	@Failure		401		{object}	httputil.HTTPError
//	@Failure		502		{object}	httputil.HTTPError
//	@Param			id		path		int					true	"ID of the debt"
//	@Param			debt	body		models.DebtEditable	true	"Debt"
//	@Router			/v1/debts/{id} [put]
func (co Controller) UpdateDebt(c *gin.Context) {
	update(c, co.Services.Debts.Resource, co.Screens.Debts)
}

// DeleteDebt deletes a debt
//
//	@Summary		Delete debt
//	@Description	Deletes a debt and returns the reloaded screen
//	@Tags			Debts
//	@Produce		json
//	@Success		200	{object}	Response[models.Debt, models.Debt]
//	@Failure		400	{object}	httputil.HTTPError
//	@Failure		401	{object}	httputil.HTTPError
//	@Failure		502	{object}	httputil.HTTPError
//	@Param			id	path		int	true	"ID of the debt"
//	@Router			/v1/debts/{id} [delete]
func (co Controller) DeleteDebt(c *gin.Context) {
	remove(c, co.Services.Debts.Resource, co.Screens.Debts)
}

//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Debts
//	@Success		204
//	@Param			id	path	int	true	"ID of the debt"
//	@Router			/v1/debts/{id}/payments [options]
func (co Controller) OptionsDebtPayments(c *gin.Context) {
	httputil.OptionsPost(c)
}

// ProcessDebtPayment records a payment towards a debt
//
//	@Summary		Pay debt
//	@Description	Records a payment towards the debt and returns the debt with its updated balance
//	@Tags			Debts
//	@Produce		json
//	@Success		200		{object}	Response[models.Debt, models.Debt]
//	@Failure		400		{object}	httputil.HTTPError
//	@Failure		401		{object}	httputil.HTTPError
//	@Failure		502		{object}	httputil.HTTPError
//	@Param			id		path		int					true	"ID of the debt"
//	@Param			payment	body		models.DebtPayment	true	"Payment"
//	@Router			/v1/debts/{id}/payments [post]
func (co Controller) ProcessDebtPayment(c *gin.Context) {
	id, err := httputil.ParseID(c)
	if err != nil {
		httputil.ErrorResponse(c, err)
		return
	}

	var payment models.DebtPayment
	if err := httputil.BindData(c, &payment); err != nil {
		httputil.ErrorResponse(c, err)
		return
	}

	debt, err := co.Services.Debts.ProcessPayment(c.Request.Context(), id, payment)
	if err != nil {
		httputil.ErrorResponse(c, err)
		return
	}

	respond(c, http.StatusOK, debt, co.Screens.Debts)
}
