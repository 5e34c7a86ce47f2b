package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/pocketledger/dashboard/pkg/httputil"
)

// RegisterAccountRoutes registers the routes for accounts with
// the RouterGroup that is passed.
func (co Controller) RegisterAccountRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsAccountList)
		r.GET("", co.GetAccounts)
		r.POST("", co.CreateAccount)
	}

	// Account with ID
	{
		r.OPTIONS("/:id", co.OptionsAccountDetail)
		r.PUT("/:id", co.UpdateAccount)
		r.DELETE("/:id", co.DeleteAccount)
	}
}

//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Accounts
//	@Success		204
//	@Router			/v1/accounts [options]
func (co Controller) OptionsAccountList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Accounts
//	@Success		204
//	@Param			id	path	int	true	"ID of the account"
//	@Router			/v1/accounts/{id} [options]
func (co Controller) OptionsAccountDetail(c *gin.Context) {
	httputil.OptionsPutDelete(c)
}

// GetAccounts returns the accounts screen
//
//	@Summary		List accounts
//	@Description	Returns the accounts screen. Lookups that fail to load are reported as warnings.
//	@Tags			Accounts
//	@Produce		json
//	@Success		200		{object}	screens.Screen[models.Account]
//	@Failure		400		{object}	httputil.HTTPError
//	@Failure		401		{object}	httputil.HTTPError
//	@Param			name	query		string	false	"Filter by name, supports * wildcards"
//	@Param			type	query		string	false	"Filter by type"
//	@Param			sort	query		string	false	"Field to sort by"
//	@Param			order	query		string	false	"asc or desc"
//	@Router			/v1/accounts [get]
func (co Controller) GetAccounts(c *gin.Context) {
	list(c, co.Screens.Accounts)
}

// CreateAccount creates a account
//
//	@Summary		Create account
//	@Description	Creates a new account and returns it together with the reloaded screen
//	@Tags			Accounts
//	@Produce		json
//	@Success		201		{object}	Response[models.Account, models.Account]
//	@Failure		400		{object}	httputil.HTTPError
//	@Failure		401		{object}	httputil.HTTPError
//	@Failure		502		{object}	httputil.HTTPError
//	@Param			account	body		models.AccountEditable	true	"Account"
//	@Router			/v1/accounts [post]
func (co Controller) CreateAccount(c *gin.Context) {
	create(c, co.Services.Accounts, co.Screens.Accounts)
}

// UpdateAccount updates a account
//
//	@Summary		Update account
//	@Description	Replaces a account and returns it together with the reloaded screen
//	@Tags			Accounts
//	@Produce		json
//	@Success		200		{object}	Response[models.Account, models.Account]
//	@Failure		400		{object}	httputil.HTTPError
//	@Failure		401		{object}	httputil.HTTPError
//	@Failure		502		{object}	httputil.HTTPError
//	@Param			id		path		int					true	"ID of the account"
//	@Param			account	body		models.AccountEditable	true	"Account"
//	@Router			/v1/accounts/{id} [put]
func (co Controller) UpdateAccount(c *gin.Context) {
	update(c, co.Services.Accounts, co.Screens.Accounts)
}

// DeleteAccount deletes a account
//
//	@Summary		Delete account
//	@Description	Deletes a account and returns the reloaded screen
//	@Tags			Accounts
//	@Produce		json
//	@Success		200	{object}	Response[models.Account, models.Account]
//	@Failure		400	{object}	httputil.HTTPError
//	@Failure		401	{object}	httputil.HTTPError
//	@Failure		502	{object}	httputil.HTTPError
//	@Param			id	path		int	true	"ID of the account"
//	@Router			/v1/accounts/{id} [delete]
func (co Controller) DeleteAccount(c *gin.Context) {
	remove(c, co.Services.Accounts, co.Screens.Accounts)
}
