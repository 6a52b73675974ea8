// routes.go - Route and middleware registration
package api

import (
	"net/http"
	"strings"

	"github.com/docqanda/backend/internal/config"
	"github.com/docqanda/backend/internal/storage"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/phuslu/log"
)

// Dependencies holds all handler dependencies
type Dependencies struct {
	Store          storage.Store
	Querier        Querier
	MaxUploadBytes int64
	Provider       string
	Version        string
	Logger         *log.Logger
}

// Handlers holds all handler instances
type Handlers struct {
	Health HealthHandler
	Upload UploadHandler
	Query  QueryHandler
}

// NewHandlers creates all handler instances
func NewHandlers(deps *Dependencies) *Handlers {
	return &Handlers{
		Health: NewHealthHandler(deps.Version, deps.Provider),
		Upload: NewUploadHandler(deps.Store, deps.MaxUploadBytes, deps.Logger),
		Query:  NewQueryHandler(deps.Querier),
	}
}

// RegisterRoutes registers all API routes with the Echo instance.
// Each document route answers with and without the trailing slash.
func RegisterRoutes(e *echo.Echo, handlers *Handlers) {
	// Health check
	e.GET("/health", handlers.Health.HandleHealth)

	for _, prefix := range []string{"/upload", "/upload/"} {
		e.POST(prefix, handlers.Upload.HandleUpload)
	}
	for _, prefix := range []string{"/documents", "/documents/"} {
		e.GET(prefix, handlers.Upload.HandleListDocuments)
	}
	for _, prefix := range []string{"/query", "/query/"} {
		e.POST(prefix, handlers.Query.HandleQuery)
	}
}

// SetupMiddleware configures the error handler, validator and common middleware
func SetupMiddleware(e *echo.Echo, cfg *config.AppConfig, logger *log.Logger) {
	e.HTTPErrorHandler = ErrorHandler(logger)
	e.Validator = NewValidator()

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		Skipper: func(c echo.Context) bool {
			// Skip logging if disabled in config
			if !cfg.Logging.EnableRequestLogging {
				return true
			}
			return c.Request().URL.Path == "/health"
		},
		HandleError:  true,
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			entry := logger.Info()
			if v.Error != nil {
				entry = logger.Warn().Err(v.Error)
			}
			entry.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	}))

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 1024 * 4,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error().Err(err).Bytes("stack", stack).Msg("panic recovered")
			return err
		},
	}))

	// Compression middleware
	if cfg.Server.EnableCompression {
		e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
			Level: cfg.Server.CompressionLevel,
		}))
	}

	// Body limit middleware
	e.Use(middleware.BodyLimit(cfg.Server.BodyLimit))

	// CORS configuration
	if cfg.Server.EnableCORS {
		origins := strings.Split(cfg.Server.AllowOrigins, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
		if len(origins) == 0 || (len(origins) == 1 && origins[0] == "") {
			origins = []string{"*"}
		}
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: origins,
			AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		}))
	}
}
