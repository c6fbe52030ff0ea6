package api

import (
	"database/sql"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/openvillage/village-api/internal/api/handler"
	"github.com/openvillage/village-api/internal/api/middleware"
	"github.com/openvillage/village-api/internal/core/ports"
	"github.com/openvillage/village-api/internal/infrastructure/http/handlers"
)

// Deps carries the collaborators the router wires into handlers. Services are
// constructed once at startup and passed in explicitly; nothing is resolved
// from globals at request time.
type Deps struct {
	AuthService    ports.AuthService
	VillageService ports.VillageService
	DB             *sql.DB
	JWTSecret      string
	Logger         zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("village"))

	authHandler := handler.NewAuthHandler(deps.AuthService)
	villageHandler := handler.NewVillageHandler(deps.VillageService)
	authMiddleware := middleware.Auth(deps.JWTSecret)

	// --- Auth routes ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)

	// --- Village routes (bearer token required) ---
	villages := e.Group("/villages", authMiddleware)
	villages.POST("", villageHandler.Create)
	villages.GET("", villageHandler.List)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(deps.DB)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – is the database up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
