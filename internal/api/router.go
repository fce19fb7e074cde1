package api

import (
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	"github.com/bizhub/business-backend/internal/api/handler"
	"github.com/bizhub/business-backend/internal/api/middleware"
	"github.com/bizhub/business-backend/internal/core/auth"
	"github.com/bizhub/business-backend/internal/core/domain"
	"github.com/bizhub/business-backend/internal/core/service"
	"github.com/bizhub/business-backend/internal/infrastructure/db/postgres"

	_ "github.com/bizhub/business-backend/docs" // swagger docs
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(pool *pgxpool.Pool, issuer *auth.TokenIssuer, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("business"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(pool)
	authService := service.NewAuthService(userRepo, issuer)
	userService := service.NewUserService(userRepo)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	dashboardHandler := handler.NewDashboardHandler()

	authenticated := middleware.Auth(issuer)
	adminOnly := middleware.RBAC(domain.RoleAdministrator)
	companyRoles := middleware.RBAC(domain.RoleAdministrator, domain.RoleOrganization)

	// --- Public routes ---
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Welcome to the business application backend!")
	})
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)

	// --- Token-gated routes ---
	e.GET("/profile", dashboardHandler.Profile, authenticated)
	e.GET("/admin-dashboard", dashboardHandler.AdminDashboard, authenticated, adminOnly)
	e.GET("/company-data", dashboardHandler.CompanyData, authenticated, companyRoles)
	e.GET("/users", userHandler.List, authenticated, adminOnly)
	e.POST("/users", userHandler.Create, authenticated, adminOnly)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(pool)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
