package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/pocketledger/dashboard/pkg/httputil"
)

// RegisterLoanRoutes registers the routes for loans with
// the RouterGroup that is passed.
func (co Controller) RegisterLoanRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsLoanList)
		r.GET("", co.GetLoans)
		r.POST("", co.CreateLoan)
	}

	// Loan with ID
	{
		r.OPTIONS("/:id", co.OptionsLoanDetail)
		r.PUT("/:id", co.UpdateLoan)
		r.DELETE("/:id", co.DeleteLoan)
	}
}

//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Loans
//	@Success		204
//	@Router			/v1/loans [options]
func (co Controller) OptionsLoanList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Loans
//	@Success		204
//	@Param			id	path	int	true	"ID of the loan"
//	@Router			/v1/loans/{id} [options]
func (co Controller) OptionsLoanDetail(c *gin.Context) {
	httputil.OptionsPutDelete(c)
}

// GetLoans returns the loans screen
//
//	@Summary		List loans
//	@Description	Returns the loans screen. Lookups that fail to load are reported as warnings.
//	@Tags			Loans
//	@Produce		json
//	@Success		200		{object}	screens.Screen[models.Loan]
//	@Failure		400		{object}	httputil.HTTPError
//	@Failure		401		{object}	httputil.HTTPError
//	@Param			name	query		string	false	"Filter by name, supports * wildcards"
//	@Param			type	query		string	false	"Filter by type"
//	@Param			sort	query		string	false	"Field to sort by"
//	@Param			order	query		string	false	"asc or desc"
//	@Router			/v1/loans [get]
func (co Controller) GetLoans(c *gin.Context) {
	list(c, co.Screens.Loans)
}

// CreateLoan creates a loan
//
//	@Summary		Create loan
//	@Description	Creates a new loan and returns it together with the reloaded screen
//	@Tags			Loans
//	@Produce		json
//	@Success		201		{object}	Response[models.Loan, models.Loan]
//	@Failure		400		{object}	httputil.HTTPError
//	@Failure		401		{object}	httputil.HTTPError
//	@Failure		502		{object}	httputil.HTTPError
//	@Param			loan	body		models.LoanEditable	true	"Loan"
//	@Router			/v1/loans [post]
func (co Controller) CreateLoan(c *gin.Context) {
	create(c, co.Services.Loans, co.Screens.Loans)
}

// UpdateLoan updates a loan
//
//	@Summary		Update loan
//	@Description	Replaces a loan and returns it together with the reloaded screen
//	@Tags			Loans
//	@Produce		json
//	@Success		200		{object}	Response[models.Loan, models.Loan]
//	@Failure		400		{object}	httputil.HTTPError
//	@Failure		401		{object}	httputil.HTTPError
//	@Failure		502		{object}	httputil.HTTPError
//	@Param			id		path		int					true	"ID of the loan"
//	@Param			loan	body		models.LoanEditable	true	"Loan"
//	@Router			/v1/loans/{id} [put]
func (co Controller) UpdateLoan(c *gin.Context) {
	update(c, co.Services.Loans, co.Screens.Loans)
}

// DeleteLoan deletes a loan
//
//	@Summary		Delete loan
//	@Description	Deletes a loan and returns the reloaded screen
//	@Tags			Loans
//	@Produce		json
//	@Success		200	{object}	Response[models.Loan, models.Loan]
//	@Failure		400	{object}	httputil.HTTPError
//	@Failure		401	{object}	httputil.HTTPError
//	@Failure		502	{object}	httputil.HTTPError
//	@Param			id	path		int	true	"ID of the loan"
//	@Router			/v1/loans/{id} [delete]
func (co Controller) DeleteLoan(c *gin.Context) {
	remove(c, co.Services.Loans, co.Screens.Loans)
}
