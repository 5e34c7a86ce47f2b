package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pocketledger/dashboard/internal/config"
	"github.com/pocketledger/dashboard/pkg/apiclient"
	"github.com/pocketledger/dashboard/pkg/apierrors"
	"github.com/pocketledger/dashboard/pkg/controllers"
	"github.com/pocketledger/dashboard/pkg/credentials"
	"github.com/pocketledger/dashboard/pkg/router"
	"github.com/pocketledger/dashboard/pkg/screens"
	"github.com/pocketledger/dashboard/pkg/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	// Services log with the logger of the request context and fall back
	// to the global one
	zerolog.DefaultContextLogger = &log.Logger

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Create data directory
	err = os.MkdirAll(cfg.DataDir, os.ModePerm)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	store, err := credentials.Open(filepath.Join(cfg.DataDir, "credentials.db"), cfg.CredentialKey)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	defer store.Close()

	s := services.New(services.Backend{
		URL:   cfg.BackendURL.String(),
		Store: store,
		Classifier: &apierrors.Classifier{
			Store:         store,
			LoginPath:     cfg.LoginPath,
			RedirectDelay: cfg.AuthRedirectDelay,
		},
		Options: apiclient.Options{
			IncludeContentType: true,
			HTTPClient:         &http.Client{Timeout: cfg.HTTPTimeout},
		},
	})

	r, err := router.Config(cfg)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	router.AttachRoutes(controllers.Controller{
		Services: s,
		Screens:  screens.New(s, nil),
		Store:    store,
	}, r.Group("/"))

	port, ok := os.LookupEnv("PORT")
	if !ok {
		port = "8080"
	}

	server := &http.Server{
		Addr:              ":" + port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Str("backend", cfg.BackendURL.String()).Msg("Starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msg(err.Error())
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
}
