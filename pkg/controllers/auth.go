package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pocketledger/dashboard/pkg/httputil"
	"github.com/pocketledger/dashboard/pkg/models"
)

// RegisterAuthRoutes registers the sign in, sign up and sign out routes.
func (co Controller) RegisterAuthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/login", co.OptionsAuth)
	r.POST("/login", co.Login)
	r.OPTIONS("/register", co.OptionsAuth)
	r.POST("/register", co.Register)
	r.OPTIONS("/logout", co.OptionsAuth)
	r.POST("/logout", co.Logout)
}

//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Auth
//	@Success		204
//	@Router			/v1/auth/login [options]
//	@Router			/v1/auth/register [options]
//	@Router			/v1/auth/logout [options]
func (co Controller) OptionsAuth(c *gin.Context) {
	httputil.OptionsPost(c)
}

// Login signs in and stores the session token
//
//	@Summary		Sign in
//	@Description	Signs in with email and password. The bearer token is kept by the dashboard.
//	@Tags			Auth
//	@Produce		json
//	@Success		200		{object}	UserResponse
//	@Failure		400		{object}	httputil.HTTPError
//	@Failure		401		{object}	httputil.HTTPError
//	@Failure		502		{object}	httputil.HTTPError
//	@Param			login	body		models.Login	true	"Credentials"
//	@Router			/v1/auth/login [post]
func (co Controller) Login(c *gin.Context) {
	var login models.Login
	if err := httputil.BindData(c, &login); err != nil {
		httputil.ErrorResponse(c, err)
		return
	}

	user, err := co.Services.Auth.Login(c.Request.Context(), login)
	if err != nil {
		httputil.ErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, UserResponse{Data: user})
}

// Register creates an account at the backend
//
//	@Summary		Sign up
//	@Description	Registers a new user. If the backend answers with a token, the user is signed in right away.
//	@Tags			Auth
//	@Produce		json
//	@Success		201				{object}	UserResponse
//	@Failure		400				{object}	httputil.HTTPError
//	@Failure		502				{object}	httputil.HTTPError
//	@Param			registration	body		models.Registration	true	"Registration"
//	@Router			/v1/auth/register [post]
func (co Controller) Register(c *gin.Context) {
	var registration models.Registration
	if err := httputil.BindData(c, &registration); err != nil {
		httputil.ErrorResponse(c, err)
		return
	}

	user, err := co.Services.Auth.Register(c.Request.Context(), registration)
	if err != nil {
		httputil.ErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, UserResponse{Data: user})
}

// Logout forgets the session token
//
//	@Summary		Sign out
//	@Description	Removes the stored session token
//	@Tags			Auth
//	@Success		204
//	@Failure		400	{object}	httputil.HTTPError
//	@Router			/v1/auth/logout [post]
func (co Controller) Logout(c *gin.Context) {
	if err := co.Services.Auth.Logout(c.Request.Context()); err != nil {
		httputil.ErrorResponse(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
