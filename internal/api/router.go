package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/zerosmoke/health-portal/internal/api/handler"
	"github.com/zerosmoke/health-portal/internal/api/middleware"
	"github.com/zerosmoke/health-portal/internal/core/domain"
	"github.com/zerosmoke/health-portal/internal/core/ports"
)

// Dependencies carries everything the router wires into handlers.
type Dependencies struct {
	Auth     ports.AuthService
	Users    ports.UserService
	Articles ports.ArticleService
	Messages ports.MessageService
	FAQs     ports.FAQService
	Tokens   middleware.TokenVerifier
	Health   *handler.HealthHandler
	Logger   zerolog.Logger

	// CORSOrigins are the browser origins allowed to call the API. Empty allows any.
	CORSOrigins []string

	// Registry receives the HTTP metrics. Nil means the process-wide default.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Secure())
	e.Use(cors(deps.CORSOrigins))
	e.Use(requestLogger(deps.Logger))
	var registerer prometheus.Registerer = prometheus.DefaultRegisterer
	var gatherer prometheus.Gatherer = prometheus.DefaultGatherer
	if deps.Registry != nil {
		registerer, gatherer = deps.Registry, deps.Registry
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "healthportal",
		Subsystem:  "http",
		Registerer: registerer,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))

	// --- Gate ---
	authenticated := middleware.Authenticate(deps.Tokens)
	adminOnly := []echo.MiddlewareFunc{authenticated, middleware.Authorize(domain.RoleAdmin)}

	// --- Auth ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/profile", authHandler.Profile, authenticated)
	e.PUT("/auth/password", authHandler.ChangePassword, authenticated)

	// --- Users (admin) ---
	userHandler := handler.NewUserHandler(deps.Users)
	users := e.Group("/users", adminOnly...)
	users.GET("", userHandler.List)
	users.POST("", userHandler.Create)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	// --- Articles ---
	articleHandler := handler.NewArticleHandler(deps.Articles, deps.Users)
	e.GET("/articles", articleHandler.ListPublished)
	e.GET("/articles/:id", articleHandler.GetPublished)
	e.POST("/articles", articleHandler.Create, adminOnly...)
	e.PUT("/articles/:id", articleHandler.Update, adminOnly...)
	e.DELETE("/articles/:id", articleHandler.Delete, adminOnly...)
	e.POST("/articles/:id/publish", articleHandler.Publish, adminOnly...)
	e.POST("/articles/:id/unpublish", articleHandler.Unpublish, adminOnly...)

	adminArticles := e.Group("/admin/articles", adminOnly...)
	adminArticles.GET("", articleHandler.ListAll)
	adminArticles.GET("/:id", articleHandler.GetAny)

	// --- Messages ---
	messageHandler := handler.NewMessageHandler(deps.Messages)
	e.POST("/messages", messageHandler.Submit)
	messages := e.Group("/messages", adminOnly...)
	messages.GET("", messageHandler.List)
	messages.GET("/:id", messageHandler.Get)
	messages.POST("/:id/reply", messageHandler.Reply)
	messages.POST("/:id/respond", messageHandler.Reply)
	messages.DELETE("/:id", messageHandler.Delete)

	// --- FAQs ---
	faqHandler := handler.NewFAQHandler(deps.FAQs)
	e.GET("/faqs", faqHandler.List)
	e.GET("/faqs/:id", faqHandler.Get)
	e.POST("/faqs", faqHandler.Create, adminOnly...)
	e.PUT("/faqs/:id", faqHandler.Update, adminOnly...)
	e.DELETE("/faqs/:id", faqHandler.Delete, adminOnly...)

	// --- Operations (no auth required) ---
	if deps.Health != nil {
		e.GET("/health", deps.Health.Liveness)
		e.GET("/health/ready", deps.Health.Readiness)
	}
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// cors answers preflight requests before any route middleware runs, so the
// admin groups never see them.
func cors(origins []string) echo.MiddlewareFunc {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:  origins,
		AllowMethods:  []string{http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders:  []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		ExposeHeaders: []string{echo.HeaderXRequestID},
		MaxAge:        600,
	})
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Status >= http.StatusInternalServerError {
				ev = log.Error().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
