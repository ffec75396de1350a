package api

import (
	"database/sql"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/reportlab/account-service/internal/api/handler"
	"github.com/reportlab/account-service/internal/api/middleware"
	"github.com/reportlab/account-service/internal/core/domain"
	"github.com/reportlab/account-service/internal/core/service"
	"github.com/reportlab/account-service/internal/infrastructure/db/postgres"
	redisdb "github.com/reportlab/account-service/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *sql.DB, rdb *redis.Client, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("accounts"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(db, log)
	accountRepo := postgres.NewAccountRepository(db, log)
	pageCache := redisdb.NewPageCache(rdb, log)

	authService := service.NewAuthService(userRepo, jwtSecret, 24*time.Hour)
	userService := service.NewUserService(userRepo, log)
	accountService := service.NewAccountService(userRepo, accountRepo, log)
	adminService := service.NewAdminService(userRepo, pageCache, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	accountHandler := handler.NewAccountHandler(accountService)
	adminHandler := handler.NewAdminHandler(adminService)

	authMiddleware := middleware.Auth(jwtSecret)

	// --- Public routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/users", userHandler.Create)

	// --- Self-service routes ---
	users := e.Group("/users", authMiddleware)
	users.GET("", userHandler.Me)
	users.PUT("/change_password", userHandler.ChangePassword)
	users.PUT("/update_info", userHandler.UpdateInfo)
	users.POST("/new_role_request", userHandler.NewRoleRequest)

	// --- Client/partner registration (role policy enforced in the service) ---
	client := e.Group("/client", authMiddleware)
	client.POST("/create_client_info", accountHandler.CreateClientInfo)
	client.POST("/create_partner_info", accountHandler.CreatePartnerInfo)

	// --- Admin routes ---
	admin := e.Group("/admin", authMiddleware, middleware.RBAC(domain.RoleAdmin))
	admin.GET("/users", adminHandler.ListUsers)
	admin.PUT("/users/activate/:user_id", adminHandler.Activate)
	admin.PUT("/users/deactivate/:user_id", adminHandler.Deactivate)
	admin.PUT("/approve_new_role/:user_id", adminHandler.ApproveNewRole)

	// --- Observability (no auth required) ---
	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	return e
}
