package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pocketledger/dashboard/pkg/httputil"
	"github.com/pocketledger/dashboard/pkg/models"
)

// RegisterSettingsRoutes registers the profile and password routes.
func (co Controller) RegisterSettingsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/profile", co.OptionsProfile)
	r.GET("/profile", co.GetProfile)
	r.PUT("/profile", co.UpdateProfile)
	r.OPTIONS("/password", co.OptionsPassword)
	r.POST("/password", co.ChangePassword)
}

//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Settings
//	@Success		204
//	@Router			/v1/settings/profile [options]
func (co Controller) OptionsProfile(c *gin.Context) {
	httputil.OptionsGetPut(c)
}

//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Settings
//	@Success		204
//	@Router			/v1/settings/password [options]
func (co Controller) OptionsPassword(c *gin.Context) {
	httputil.OptionsPost(c)
}

// GetProfile returns the signed in user
//
//	@Summary		Get profile
//	@Description	Returns the profile of the signed in user
//	@Tags			Settings
//	@Produce		json
//	@Success		200	{object}	UserResponse
//	@Failure		401	{object}	httputil.HTTPError
//	@Failure		502	{object}	httputil.HTTPError
//	@Router			/v1/settings/profile [get]
func (co Controller) GetProfile(c *gin.Context) {
	user, err := co.Services.Auth.Profile(c.Request.Context())
	if err != nil {
		httputil.ErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, UserResponse{Data: user})
}

// UpdateProfile changes name and currency
//
//	@Summary		Update profile
//	@Description	Changes the name and the preferred currency of the signed in user
//	@Tags			Settings
//	@Produce		json
//	@Success		200		{object}	UserResponse
//	@Failure		400		{object}	httputil.HTTPError
//	@Failure		401		{object}	httputil.HTTPError
//	@Failure		502		{object}	httputil.HTTPError
//	@Param			profile	body		models.ProfileEditable	true	"Profile"
//	@Router			/v1/settings/profile [put]
func (co Controller) UpdateProfile(c *gin.Context) {
	var profile models.ProfileEditable
	if err := httputil.BindData(c, &profile); err != nil {
		httputil.ErrorResponse(c, err)
		return
	}

	user, err := co.Services.Auth.UpdateProfile(c.Request.Context(), profile)
	if err != nil {
		httputil.ErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, UserResponse{Data: user})
}

// ChangePassword replaces the password
//
//	@Summary		Change password
//	@Description	Replaces the password of the signed in user
//	@Tags			Settings
//	@Success		204
//	@Failure		400			{object}	httputil.HTTPError
//	@Failure		401			{object}	httputil.HTTPError
//	@Failure		502			{object}	httputil.HTTPError
//	@Param			password	body		models.PasswordChange	true	"Password change"
//	@Router			/v1/settings/password [post]
func (co Controller) ChangePassword(c *gin.Context) {
	var change models.PasswordChange
	if err := httputil.BindData(c, &change); err != nil {
		httputil.ErrorResponse(c, err)
		return
	}

	if err := co.Services.Auth.ChangePassword(c.Request.Context(), change); err != nil {
		httputil.ErrorResponse(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
