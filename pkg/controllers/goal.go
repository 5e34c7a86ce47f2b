package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/pocketledger/dashboard/pkg/httputil"
)

// RegisterGoalRoutes registers the routes for goals with
// the RouterGroup that is passed.
func (co Controller) RegisterGoalRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsGoalList)
		r.GET("", co.GetGoals)
		r.POST("", co.CreateGoal)
	}

	// Goal with ID
	{
		r.OPTIONS("/:id", co.OptionsGoalDetail)
		r.PUT("/:id", co.UpdateGoal)
		r.DELETE("/:id", co.DeleteGoal)
	}
}

//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Goals
//	@Success		204
//	@Router			/v1/goals [options]
func (co Controller) OptionsGoalList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Goals
//	@Success		204
//	@Param			id	path	int	true	"ID of the goal"
//	@Router			/v1/goals/{id} [options]
func (co Controller) OptionsGoalDetail(c *gin.Context) {
	httputil.OptionsPutDelete(c)
}

// GetGoals returns the goals screen
//
//	@Summary		List goals
//	@Description	Returns the goals screen. Lookups that fail to load are reported as warnings.
//	@Tags			Goals
//	@Produce		json
//	@Success		200		{object}	screens.Screen[models.Goal]
//	@Failure		400		{object}	httputil.HTTPError
//	@Failure		401		{object}	httputil.HTTPError
//	@Param			name	query		string	false	"Filter by name, supports * wildcards"
//	@Param			type	query		string	false	"Filter by type"
//	@Param			sort	query		string	false	"Field to sort by"
//	@Param			order	query		string	false	"asc or desc"
//	@Router			/v1/goals [get]
func (co Controller) GetGoals(c *gin.Context) {
	list(c, co.Screens.Goals)
}

// CreateGoal creates a goal
//
//	@Summary		Create goal
//	@Description	Creates a new goal and returns it together with the reloaded screen
//	@Tags			Goals
//	@Produce		json
//	@Success		201		{object}	Response[models.Goal, models.Goal]
//	@Failure		400		{object}	httputil.HTTPError
//	@Failure		401		{object}	httputil.HTTPError
//	@Failure		502		{object}	httputil.HTTPError
//	@Param			goal	body		models.GoalEditable	true	"Goal"
//	@Router			/v1/goals [post]
func (co Controller) CreateGoal(c *gin.Context) {
	create(c, co.Services.Goals, co.Screens.Goals)
}

// UpdateGoal updates a goal
//
//	@Summary		Update goal
//	@Description	Replaces a goal and returns it together with the reloaded screen
//	@Tags			Goals
//	@Produce		json
//	@Success		200		{object}	Response[models.Goal, models.Goal]
//	@Failure		400		{object}	httputil.HTTPError
//	@Failure		401		{object}	httputil.HTTPError
//	@Failure		502		{object}	httputil.HTTPError
//	@Param			id		path		int					true	"ID of the goal"
//	@Param			goal	body		models.GoalEditable	true	"Goal"
//	@Router			/v1/goals/{id} [put]
func (co Controller) UpdateGoal(c *gin.Context) {
	update(c, co.Services.Goals, co.Screens.Goals)
}

// DeleteGoal deletes a goal
//
//	@Summary		Delete goal
//	@Description	Deletes a goal and returns the reloaded screen
//	@Tags			Goals
//	@Produce		json
//	@Success		200	{object}	Response[models.Goal, models.Goal]
//	@Failure		400	{object}	httputil.HTTPError
//	@Failure		401	{object}	httputil.HTTPError
//	@Failure		502	{object}	httputil.HTTPError
//	@Param			id	path		int	true	"ID of the goal"
//	@Router			/v1/goals/{id} [delete]
func (co Controller) DeleteGoal(c *gin.Context) {
	remove(c, co.Services.Goals, co.Screens.Goals)
}
