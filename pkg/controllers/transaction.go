package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pocketledger/dashboard/pkg/httputil"
	"github.com/pocketledger/dashboard/pkg/models"
)

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func (co Controller) RegisterTransactionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsTransactionList)
		r.GET("", co.GetTransactions)
		r.POST("", co.CreateTransaction)
	}

	// Transaction with ID
	{
		r.OPTIONS("/:id", co.OptionsTransactionDetail)
		r.PUT("/:id", co.UpdateTransaction)
		r.DELETE("/:id", co.DeleteTransaction)
	}

	{
		r.OPTIONS("/transfer", co.OptionsTransfer)
		r.POST("/transfer", co.CreateTransfer)
	}
}

//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Transactions
//	@Success		204
//	@Router			/v1/transactions [options]
func (co Controller) OptionsTransactionList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Transactions
//	@Success		204
//	@Param			id	path	int	true	"ID of the transaction"
//	@Router			/v1/transactions/{id} [options]
func (co Controller) OptionsTransactionDetail(c *gin.Context) {
	httputil.OptionsPutDelete(c)
}

// GetTransactions returns the transactions screen
//
//	@Summary		List transactions
//	@Description	Returns the transactions screen. Lookups that fail to load are reported as warnings.
//	@Tags			Transactions
//	@Produce		json
//	@Success		200		{object}	screens.Screen[models.Transaction]
//	@Failure		400		{object}	httputil.HTTPError
//	@Failure		401		{object}	httputil.HTTPError
//	@Param			name	query		string	false	"Filter by name, supports * wildcards"
//	@Param			type	query		string	false	"Filter by type"
//	@Param			sort	query		string	false	"Field to sort by"
//	@Param			order	query		string	false	"asc or desc"
//	@Router			/v1/transactions [get]
func (co Controller) GetTransactions(c *gin.Context) {
	list(c, co.Screens.Transactions)
}

// CreateTransaction creates a transaction
//
//	@Summary		Create transaction
//	@Description	Creates a new transaction and returns it together with the reloaded screen
//	@Tags			Transactions
//	@Produce		json
//	@Success		201		{object}	Response[models.Transaction, models.Transaction]
//	@Failure		400		{object}	httputil.HTTPError
//	@Failure		401		{object}	httputil.HTTPError
//	@Failure		502		{object}	httputil.HTTPError
//	@Param			transaction	body		models.TransactionEditable	true	"Transaction"
//	@Router			/v1/transactions [post]
func (co Controller) CreateTransaction(c *gin.Context) {
	create(c, co.Services.Transactions.Resource, co.Screens.Transactions)
}

// UpdateTransaction updates a transaction
//
//	@Summary		Update transaction
//	@Description	Replaces a transaction and returns it together with the reloaded screen
//	@Tags			Transactions
//	@Produce		json
//	@Success		200		{object}	Response[models.Transaction, models.Transaction]
//	@Failure		400		{object}	httputil.HTTPError
//	@Failure		401		{object}	httputil.HTTPError
//	@Failure		502		{object}	httputil.HTTPError
//	@Param			id		path		int					true	"ID of the transaction"
//	@Param			transaction	body		models.TransactionEditable	true	"Transaction"
//	@Router			/v1/transactions/{id} [put]
func (co Controller) UpdateTransaction(c *gin.Context) {
	update(c, co.Services.Transactions.Resource, co.Screens.Transactions)
}

// DeleteTransaction deletes a transaction
//
//	@Summary		Delete transaction
//	@Description	Deletes a transaction and returns the reloaded screen
//	@Tags			Transactions
//	@Produce		json
//	@Success		200	{object}	Response[models.Transaction, models.Transaction]
//	@Failure		400	{object}	httputil.HTTPError
//	@Failure		401	{object}	httputil.HTTPError
//	@Failure		502	{object}	httputil.HTTPError
//	@Param			id	path		int	true	"ID of the transaction"
//	@Router			/v1/transactions/{id} [delete]
func (co Controller) DeleteTransaction(c *gin.Context) {
	remove(c, co.Services.Transactions.Resource, co.Screens.Transactions)
}

//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Transactions
//	@Success		204
//	@Router			/v1/transactions/transfer [options]
func (co Controller) OptionsTransfer(c *gin.Context) {
	httputil.OptionsPost(c)
}

// CreateTransfer moves money between two accounts
//
//	@Summary		Transfer
//	@Description	Moves money between two accounts. The transactions created by the backend are returned, the list may be empty.
//	@Tags			Transactions
//	@Produce		json
//	@Success		201			{object}	Response[[]models.Transaction, models.Transaction]
//	@Failure		400			{object}	httputil.HTTPError
//	@Failure		401			{object}	httputil.HTTPError
//	@Failure		502			{object}	httputil.HTTPError
//	@Param			transfer	body		models.Transfer	true	"Transfer"
//	@Router			/v1/transactions/transfer [post]
func (co Controller) CreateTransfer(c *gin.Context) {
	var transfer models.Transfer
	if err := httputil.BindData(c, &transfer); err != nil {
		httputil.ErrorResponse(c, err)
		return
	}

	transactions, err := co.Services.Transactions.Transfer(c.Request.Context(), transfer)
	if err != nil {
		httputil.ErrorResponse(c, err)
		return
	}

	if transactions == nil {
		transactions = []models.Transaction{}
	}

	respond(c, http.StatusCreated, transactions, co.Screens.Transactions)
}
