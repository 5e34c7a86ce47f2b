package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/pocketledger/dashboard/pkg/httputil"
)

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func (co Controller) RegisterCategoryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsCategoryList)
		r.GET("", co.GetCategories)
		r.POST("", co.CreateCategory)
	}

	// Category with ID
	{
		r.OPTIONS("/:id", co.OptionsCategoryDetail)
		r.PUT("/:id", co.UpdateCategory)
		r.DELETE("/:id", co.DeleteCategory)
	}
}

//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Categories
//	@Success		204
//	@Router			/v1/categories [options]
func (co Controller) OptionsCategoryList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Categories
//	@Success		204
//	@Param			id	path	int	true	"ID of the category"
//	@Router			/v1/categories/{id} [options]
func (co Controller) OptionsCategoryDetail(c *gin.Context) {
	httputil.OptionsPutDelete(c)
}

// GetCategories returns the categories screen
//
//	@Summary		List categories
//	@Description	Returns the categories screen. Lookups that fail to load are reported as warnings.
//	@Tags			Categories
//	@Produce		json
//	@Success		200		{object}	screens.Screen[models.Category]
//	@Failure		400		{object}	httputil.HTTPError
//	@Failure		401		{object}	httputil.HTTPError
//	@Param			name	query		string	false	"Filter by name, supports * wildcards"
//	@Param			type	query		string	false	"Filter by type"
//	@Param			sort	query		string	false	"Field to sort by"
//	@Param			order	query		string	false	"asc or desc"
//	@Router			/v1/categories [get]
func (co Controller) GetCategories(c *gin.Context) {
	list(c, co.Screens.Categories)
}

// CreateCategory creates a category
//
//	@Summary		Create category
//	@Description	Creates a new category and returns it together with the reloaded screen
//	@Tags			Categories
//	@Produce		json
//	@Success		201		{object}	Response[models.Category, models.Category]
//	@Failure		400		{object}	httputil.HTTPError
//	@Failure		401		{object}	httputil.HTTPError
//	@Failure		502		{object}	httputil.HTTPError
//	@Param			category	body		models.CategoryEditable	true	"Category"
//	@Router			/v1/categories [post]
func (co Controller) CreateCategory(c *gin.Context) {
	create(c, co.Services.Categories, co.Screens.Categories)
}

// UpdateCategory updates a category
//
//	@Summary		Update category
//	@Description	Replaces a category and returns it together with the reloaded screen
//	@Tags			Categories
//	@Produce		json
//	@Success		200		{object}	Response[models.Category, models.Category]
//	@Failure		400		{object}	httputil.HTTPError
//	@Failure		401		{object}	httputil.HTTPError
//	@Failure		502		{object}	httputil.HTTPError
//	@Param			id		path		int					true	"ID of the category"
//	@Param			category	body		models.CategoryEditable	true	"Category"
//	@Router			/v1/categories/{id} [put]
func (co Controller) UpdateCategory(c *gin.Context) {
	update(c, co.Services.Categories, co.Screens.Categories)
}

// DeleteCategory deletes a category
//
//	@Summary		Delete category
//	@Description	Deletes a category and returns the reloaded screen
//	@Tags			Categories
//	@Produce		json
//	@Success		200	{object}	Response[models.Category, models.Category]
//	@Failure		400	{object}	httputil.HTTPError
//	@Failure		401	{object}	httputil.HTTPError
//	@Failure		502	{object}	httputil.HTTPError
//	@Param			id	path		int	true	"ID of the category"
//	@Router			/v1/categories/{id} [delete]
func (co Controller) DeleteCategory(c *gin.Context) {
	remove(c, co.Services.Categories, co.Screens.Categories)
}
