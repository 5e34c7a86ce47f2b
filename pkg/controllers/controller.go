// Package controllers implements the HTTP handlers of the dashboard API.
package controllers

import (
	"github.com/pocketledger/dashboard/pkg/credentials"
	"github.com/pocketledger/dashboard/pkg/models"
	"github.com/pocketledger/dashboard/pkg/screens"
	"github.com/pocketledger/dashboard/pkg/services"
)

// Controller holds everything the handlers need.
type Controller struct {
	Services *services.Services
	Screens  *screens.Screens
	Store    credentials.Store
}

// Response is returned by every mutation. Screen is the list screen of the
// resource, reloaded after the mutation succeeded.
type Response[D any, T any] struct {
	Data   D                 `json:"data"`
	Screen screens.Screen[T] `json:"screen"`
}

// UserResponse wraps the signed in user.
type UserResponse struct {
	Data models.User `json:"data"`
}

