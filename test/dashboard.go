package test

import (
	"context"
	"net/url"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pocketledger/dashboard/internal/config"
	"github.com/pocketledger/dashboard/pkg/apierrors"
	"github.com/pocketledger/dashboard/pkg/controllers"
	"github.com/pocketledger/dashboard/pkg/credentials"
	"github.com/pocketledger/dashboard/pkg/router"
	"github.com/pocketledger/dashboard/pkg/screens"
	"github.com/pocketledger/dashboard/pkg/services"
	"github.com/stretchr/testify/require"
)

// Now is the fixed time the dashboard under test runs at.
var Now = time.Date(2024, time.May, 14, 16, 30, 0, 0, time.UTC)

// TmpFile returns the path to a unique file to be used in tests
func TmpFile(t *testing.T) string {
	dir := t.TempDir()
	return filepath.Join(dir, uuid.New().String())
}

// Config returns the configuration for a dashboard talking to backendURL.
func Config(t *testing.T, backendURL string) *config.Config {
	apiURL, err := url.Parse("http://example.com")
	require.Nil(t, err)

	backend, err := url.Parse(backendURL)
	require.Nil(t, err)

	return &config.Config{
		APIURL:            apiURL,
		BackendURL:        backend,
		LoginPath:         "/login",
		AuthRedirectDelay: 2 * time.Second,
	}
}

// Controller wires services and screens for backendURL onto the store.
func Controller(cfg *config.Config, store credentials.Store) controllers.Controller {
	s := services.New(services.Backend{
		URL:   cfg.BackendURL.String(),
		Store: store,
		Now:   func() time.Time { return Now },
		Classifier: &apierrors.Classifier{
			Store:         store,
			LoginPath:     cfg.LoginPath,
			RedirectDelay: cfg.AuthRedirectDelay,
		},
	})

	return controllers.Controller{
		Services: s,
		Screens:  screens.New(s, func() time.Time { return Now }),
		Store:    store,
	}
}

// Dashboard returns the full dashboard router in front of the fake backend.
// The store holds a signed in session unless signedIn is false.
func Dashboard(t *testing.T, backend *Backend, signedIn bool) (*gin.Engine, *credentials.MemoryStore) {
	store := credentials.NewMemoryStore()
	if signedIn {
		require.Nil(t, store.Set(context.Background(), credentials.Credentials{Token: "token", UserID: "1"}))
	}

	cfg := Config(t, backend.URL)
	r, err := router.Config(cfg)
	require.Nil(t, err, "Router could not be initialized")

	router.AttachRoutes(Controller(cfg, store), r.Group("/"))
	return r, store
}
