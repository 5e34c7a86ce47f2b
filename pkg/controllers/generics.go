package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pocketledger/dashboard/pkg/httputil"
	"github.com/pocketledger/dashboard/pkg/screens"
	"github.com/pocketledger/dashboard/pkg/services"
)

type screenFunc[T any] func(context.Context, screens.Query) (screens.Screen[T], error)

// list renders the list screen for the query string of the request.
func list[T any](c *gin.Context, screen screenFunc[T]) {
	var q screens.Query
	if err := httputil.BindQuery(c, &q); err != nil {
		httputil.ErrorResponse(c, err)
		return
	}

	s, err := screen(c.Request.Context(), q)
	if err != nil {
		httputil.ErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, s)
}

func create[T any, E services.Editable](c *gin.Context, r *services.Resource[T, E], screen screenFunc[T]) {
	var editable E
	if err := httputil.BindData(c, &editable); err != nil {
		httputil.ErrorResponse(c, err)
		return
	}

	record, err := r.Create(c.Request.Context(), editable)
	if err != nil {
		httputil.ErrorResponse(c, err)
		return
	}

	respond(c, http.StatusCreated, record, screen)
}

func update[T any, E services.Editable](c *gin.Context, r *services.Resource[T, E], screen screenFunc[T]) {
	id, err := httputil.ParseID(c)
	if err != nil {
		httputil.ErrorResponse(c, err)
		return
	}

	var editable E
	if err := httputil.BindData(c, &editable); err != nil {
		httputil.ErrorResponse(c, err)
		return
	}

	record, err := r.Update(c.Request.Context(), id, editable)
	if err != nil {
		httputil.ErrorResponse(c, err)
		return
	}

	respond(c, http.StatusOK, record, screen)
}

func remove[T any, E services.Editable](c *gin.Context, r *services.Resource[T, E], screen screenFunc[T]) {
	id, err := httputil.ParseID(c)
	if err != nil {
		httputil.ErrorResponse(c, err)
		return
	}

	if err := r.Remove(c.Request.Context(), id); err != nil {
		httputil.ErrorResponse(c, err)
		return
	}

	respond[*T](c, http.StatusOK, nil, screen)
}

// respond reloads the full screen after a mutation and sends it together
// with the mutation result.
func respond[D any, T any](c *gin.Context, status int, data D, screen screenFunc[T]) {
	s, err := screen(c.Request.Context(), screens.Query{})
	if err != nil {
		httputil.ErrorResponse(c, err)
		return
	}

	c.JSON(status, Response[D, T]{Data: data, Screen: s})
}
