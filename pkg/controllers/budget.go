package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/pocketledger/dashboard/pkg/httputil"
)

// RegisterBudgetRoutes registers the routes for budgets with
// the RouterGroup that is passed.
func (co Controller) RegisterBudgetRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsBudgetList)
		r.GET("", co.GetBudgets)
		r.POST("", co.CreateBudget)
	}

	// Budget with ID
	{
		r.OPTIONS("/:id", co.OptionsBudgetDetail)
		r.PUT("/:id", co.UpdateBudget)
		r.DELETE("/:id", co.DeleteBudget)
	}
}

//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Budgets
//	@Success		204
//	@Router			/v1/budgets [options]
func (co Controller) OptionsBudgetList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Budgets
//	@Success		204
//	@Param			id	path	int	true	"ID of the budget"
//	@Router			/v1/budgets/{id} [options]
func (co Controller) OptionsBudgetDetail(c *gin.Context) {
	httputil.OptionsPutDelete(c)
}

// GetBudgets returns the budgets screen
//
//	@Summary		List budgets
//	@Description	Returns the budgets screen. Lookups that fail to load are reported as warnings.
//	@Tags			Budgets
//	@Produce		json
//	@Success		200		{object}	screens.Screen[models.Budget]
//	@Failure		400		{object}	httputil.HTTPError
//	@Failure		401		{object}	httputil.HTTPError
//	@Param			name	query		string	false	"Filter by name, supports * wildcards"
//	@Param			type	query		string	false	"Filter by type"
//	@Param			sort	query		string	false	"Field to sort by"
//	@Param			order	query		string	false	"asc or desc"
//	@Router			/v1/budgets [get]
func (co Controller) GetBudgets(c *gin.Context) {
	list(c, co.Screens.Budgets)
}

// CreateBudget creates a budget
//
//	@Summary		Create budget
//	@Description	Creates a new budget and returns it together with the reloaded screen
//	@Tags			Budgets
//	@Produce		json
//	@Success		201		{object}	Response[models.Budget, models.Budget]
//	@Failure		400		{object}	httputil.HTTPError
//	@Failure		401		{object}	httputil.HTTPError
//	@Failure		502		{object}	httputil.HTTPError
//	@Param			budget	body		models.BudgetEditable	true	"Budget"
//	@Router			/v1/budgets [post]
func (co Controller) CreateBudget(c *gin.Context) {
	create(c, co.Services.Budgets, co.Screens.Budgets)
}

// UpdateBudget updates a budget
//
//	@Summary		Update budget
//	@Description	Replaces a budget and returns it together with the reloaded screen
//	@Tags			Budgets
//	@Produce		json
//	@Success		200		{object}	Response[models.Budget, models.Budget]
//	@Failure		400		{object}	httputil.HTTPError
//	@Failure		401		{object}	httputil.HTTPError
//	@Failure		502		{object}	httputil.HTTPError
//	@Param			id		path		int					true	"ID of the budget"
//	@Param			budget	body		models.BudgetEditable	true	"Budget"
//	@Router			/v1/budgets/{id} [put]
func (co Controller) UpdateBudget(c *gin.Context) {
	update(c, co.Services.Budgets, co.Screens.Budgets)
}

// DeleteBudget deletes a budget
//
//	@Summary		Delete budget
//	@Description	Deletes a budget and returns the reloaded screen
//	@Tags			Budgets
//	@Produce		json
//	@Success		200	{object}	Response[models.Budget, models.Budget]
//	@Failure		400	{object}	httputil.HTTPError
//	@Failure		401	{object}	httputil.HTTPError
//	@Failure		502	{object}	httputil.HTTPError
//	@Param			id	path		int	true	"ID of the budget"
//	@Router			/v1/budgets/{id} [delete]
func (co Controller) DeleteBudget(c *gin.Context) {
	remove(c, co.Services.Budgets, co.Screens.Budgets)
}
