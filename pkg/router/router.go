package router

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	docs "github.com/pocketledger/dashboard/api"
	"github.com/pocketledger/dashboard/internal/config"
	"github.com/pocketledger/dashboard/pkg/controllers"
	"github.com/pocketledger/dashboard/pkg/httputil"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// This is set at build time with -ldflags "-X github.com/pocketledger/dashboard/pkg/router.version=..."
var version = "0.0.0"

// Config sets up the router with all middlewares and the operational
// endpoints (metrics, profiling).
func Config(cfg *config.Config) (*gin.Engine, error) {
	r := gin.New()

	// Client IPs are never used
	r.ForwardedByClientIP = false

	// Known paths called with an unsupported method get a 405, not a 404
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(URLMiddleware(cfg.APIURL))
	r.Use(ContextMiddleware())
	r.NoMethod(func(c *gin.Context) {
		httputil.NewError(c, http.StatusMethodNotAllowed, errors.New("This HTTP method is not allowed for the endpoint you called"))
	})
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithSkipPath([]string{"/metrics", "/healthz"}),
		logger.WithLogger(func(c *gin.Context, logger zerolog.Logger) zerolog.Logger {
			return logger.With().
				Str("request-id", requestid.Get(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	// The browser dashboard may be served from a different origin
	if len(cfg.CORSAllowOrigins) > 0 {
		log.Debug().Strs("CORS Allowed Origins", cfg.CORSAllowOrigins).Msg("Router")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORSAllowOrigins,
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "PUT", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type"},
			ExposeHeaders:    []string{"Refresh", "X-Request-ID"},
			AllowCredentials: true,
		}))
	}

	registry, err := newRegistry()
	if err != nil {
		return nil, err
	}
	r.Use(MetricsMiddleware())
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	if cfg.EnablePprof {
		pprof.Register(r)
	}

	// Route registration is not worth a log line per route
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// No proxy is trusted since client IPs are never used
	_ = r.SetTrustedProxies([]string{})

	log.Debug().Str("API Base URL", cfg.APIURL.String()).Str("Host", cfg.APIURL.Host).Str("Path", cfg.APIURL.Path).Msg("Router")
	log.Debug().Str("Backend URL", cfg.BackendURL.String()).Msg("Router")
	log.Info().Str("version", version).Msg("Router")

	docs.SwaggerInfo.Host = cfg.APIURL.Host
	docs.SwaggerInfo.BasePath = cfg.APIURL.Path
	docs.SwaggerInfo.Title = "Pocketledger Dashboard"
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Description = "The dashboard API of Pocketledger. It signs in to the finance backend and serves the data of every screen of the personal finance dashboard."

	return r, nil
}

// AttachRoutes mounts the dashboard API below group. It is separate from
// Config so that the API can live under a path prefix.
func AttachRoutes(co controllers.Controller, group *gin.RouterGroup) {
	group.GET("", GetRoot)
	group.OPTIONS("", OptionsRoot)
	group.GET("/version", GetVersion)
	group.OPTIONS("/version", OptionsVersion)
	co.RegisterHealthzRoutes(group.Group("/healthz"))

	group.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := group.Group("/v1")
	{
		v1.GET("", GetV1)
		v1.OPTIONS("", OptionsV1)
	}

	co.RegisterAuthRoutes(v1.Group("/auth"))
	co.RegisterSettingsRoutes(v1.Group("/settings"))
	co.RegisterOverviewRoutes(v1.Group("/overview"))
	co.RegisterAccountRoutes(v1.Group("/accounts"))
	co.RegisterCategoryRoutes(v1.Group("/categories"))
	co.RegisterBudgetRoutes(v1.Group("/budgets"))
	co.RegisterGoalRoutes(v1.Group("/goals"))
	co.RegisterDebtRoutes(v1.Group("/debts"))
	co.RegisterInvestmentRoutes(v1.Group("/investments"))
	co.RegisterLoanRoutes(v1.Group("/loans"))
	co.RegisterTransactionRoutes(v1.Group("/transactions"))
}

type RootResponse struct {
	Links RootLinks `json:"links"`
}

type RootLinks struct {
	Docs    string `json:"docs" example:"https://example.com/api/docs/index.html"` // Swagger API documentation
	Healthz string `json:"healthz" example:"https://example.com/api/healthz"`      // Endpoint returning the health of the API
	Version string `json:"version" example:"https://example.com/api/version"`      // Endpoint returning the version of the dashboard
	V1      string `json:"v1" example:"https://example.com/api/v1"`                // List endpoint for all v1 endpoints
}

// GetRoot links to the top level endpoints
//
//	@Summary		API root
//	@Description	Entrypoint of the dashboard API, linking to documentation, health, version and v1
//	@Tags			General
//	@Success		200	{object}	RootResponse
//	@Router			/ [get]
func GetRoot(c *gin.Context) {
	url := c.GetString(contextURL)

	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Docs:    url + "/docs/index.html",
			Healthz: url + "/healthz",
			Version: url + "/version",
			V1:      url + "/v1",
		},
	})
}

type VersionResponse struct {
	Data VersionObject `json:"data"` // Data object for the version endpoint
}

type VersionObject struct {
	Version string `json:"version" example:"1.1.0"` // the running version of the dashboard
}

// GetVersion reports the running version
//
//	@Summary		API version
//	@Description	Returns the version of the running dashboard
//	@Tags			General
//	@Success		200	{object}	VersionResponse
//	@Router			/version [get]
func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, VersionResponse{
		Data: VersionObject{
			Version: version,
		},
	})
}

// OptionsRoot returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			General
//	@Success		204
//	@Router			/ [options]
func OptionsRoot(c *gin.Context) {
	httputil.OptionsGet(c)
}

// OptionsVersion returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			General
//	@Success		204
//	@Router			/version [options]
func OptionsVersion(c *gin.Context) {
	httputil.OptionsGet(c)
}

type V1Response struct {
	Links V1Links `json:"links"` // Links for the v1 API
}

type V1Links struct {
	Login        string `json:"login" example:"https://example.com/api/v1/auth/login"`               // URL of the sign in endpoint
	Register     string `json:"register" example:"https://example.com/api/v1/auth/register"`         // URL of the sign up endpoint
	Logout       string `json:"logout" example:"https://example.com/api/v1/auth/logout"`             // URL of the sign out endpoint
	Profile      string `json:"profile" example:"https://example.com/api/v1/settings/profile"`       // URL of the profile endpoint
	Password     string `json:"password" example:"https://example.com/api/v1/settings/password"`     // URL of the change password endpoint
	Overview     string `json:"overview" example:"https://example.com/api/v1/overview"`              // URL of the overview screen
	Accounts     string `json:"accounts" example:"https://example.com/api/v1/accounts"`              // URL of account list endpoint
	Categories   string `json:"categories" example:"https://example.com/api/v1/categories"`          // URL of category list endpoint
	Budgets      string `json:"budgets" example:"https://example.com/api/v1/budgets"`                // URL of budget list endpoint
	Goals        string `json:"goals" example:"https://example.com/api/v1/goals"`                    // URL of goal list endpoint
	Debts        string `json:"debts" example:"https://example.com/api/v1/debts"`                    // URL of debt list endpoint
	Investments  string `json:"investments" example:"https://example.com/api/v1/investments"`        // URL of investment list endpoint
	Loans        string `json:"loans" example:"https://example.com/api/v1/loans"`                    // URL of loan list endpoint
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions"`      // URL of transaction list endpoint
	Transfer     string `json:"transfer" example:"https://example.com/api/v1/transactions/transfer"` // URL of the transfer endpoint
}

// GetV1 links to every screen and action of the v1 API
//
//	@Summary		v1 API
//	@Description	Links to the auth, settings, overview and resource endpoints of v1
//	@Tags			v1
//	@Success		200	{object}	V1Response
//	@Router			/v1 [get]
func GetV1(c *gin.Context) {
	url := c.GetString(contextURL) + "/v1"

	c.JSON(http.StatusOK, V1Response{
		Links: V1Links{
			Login:        url + "/auth/login",
			Register:     url + "/auth/register",
			Logout:       url + "/auth/logout",
			Profile:      url + "/settings/profile",
			Password:     url + "/settings/password",
			Overview:     url + "/overview",
			Accounts:     url + "/accounts",
			Categories:   url + "/categories",
			Budgets:      url + "/budgets",
			Goals:        url + "/goals",
			Debts:        url + "/debts",
			Investments:  url + "/investments",
			Loans:        url + "/loans",
			Transactions: url + "/transactions",
			Transfer:     url + "/transactions/transfer",
		},
	})
}

// OptionsV1 returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func OptionsV1(c *gin.Context) {
	httputil.OptionsGet(c)
}
