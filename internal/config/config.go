// Package config loads the dashboard configuration from the environment.
package config

import (
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"
)

var (
	ErrBackendURLMissing = errors.New("BACKEND_URL is required")
	ErrCredentialKey     = errors.New("CREDENTIAL_KEY must be 32 bytes encoded as 64 hex characters")
)

// Config holds the dashboard configuration.
type Config struct {
	// URL the dashboard itself is reachable at
	APIURL *url.URL

	// Root of the remote finance REST backend
	BackendURL *url.URL

	DataDir string

	// Key used to seal the stored bearer token. Empty disables sealing.
	CredentialKey []byte

	LoginPath         string
	AuthRedirectDelay time.Duration

	// Timeout for requests to the backend. Zero means no explicit timeout.
	HTTPTimeout time.Duration

	CORSAllowOrigins []string
	EnablePprof      bool
}

// Load reads the configuration from environment variables.
func Load() (*Config, error) {
	apiURL, err := url.Parse(getEnv("API_URL", "http://localhost:8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid API_URL: %w", err)
	}

	backend, ok := os.LookupEnv("BACKEND_URL")
	if !ok || backend == "" {
		return nil, ErrBackendURLMissing
	}

	backendURL, err := url.Parse(strings.TrimRight(backend, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid BACKEND_URL: %w", err)
	}

	if backendURL.Scheme == "" || backendURL.Host == "" {
		return nil, fmt.Errorf("invalid BACKEND_URL: %q is not an absolute URL", backend)
	}

	delay, err := time.ParseDuration(getEnv("AUTH_REDIRECT_DELAY", "2s"))
	if err != nil {
		return nil, fmt.Errorf("invalid AUTH_REDIRECT_DELAY: %w", err)
	}

	timeout, err := time.ParseDuration(getEnv("HTTP_TIMEOUT", "0s"))
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}

	var key []byte
	if k := getEnv("CREDENTIAL_KEY", ""); k != "" {
		key, err = hex.DecodeString(k)
		if err != nil || len(key) != 32 {
			return nil, ErrCredentialKey
		}
	}

	return &Config{
		APIURL:            apiURL,
		BackendURL:        backendURL,
		DataDir:           getEnv("DATA_DIR", "data"),
		CredentialKey:     key,
		LoginPath:         getEnv("LOGIN_PATH", "/login"),
		AuthRedirectDelay: delay,
		HTTPTimeout:       timeout,
		CORSAllowOrigins:  strings.Fields(getEnv("CORS_ALLOW_ORIGINS", "")),
		EnablePprof:       getEnv("ENABLE_PPROF", "false") == "true",
	}, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
