package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/savoria/ordering-system/internal/api/handler"
	"github.com/savoria/ordering-system/internal/api/middleware"
	"github.com/savoria/ordering-system/internal/core/ports"
	"github.com/savoria/ordering-system/internal/core/service"
	mongostore "github.com/savoria/ordering-system/internal/infrastructure/db/mongo"
	redisstore "github.com/savoria/ordering-system/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, charges ports.ChargeService, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("ordering"))

	// --- Repositories ---
	users := mongostore.NewUserRepository(db)
	menu := mongostore.NewMenuRepository(db)
	reviews := mongostore.NewReviewRepository(db)
	carts := mongostore.NewCartRepository(db)
	payments := mongostore.NewPaymentRepository(db)
	dedup := redisstore.NewSettleDedup(rdb)

	// --- Services ---
	codec := service.NewTokenCodec(jwtSecret, time.Hour)
	userService := service.NewUserService(users, log)
	cartService := service.NewCartService(carts, log)
	checkoutService := service.NewCheckoutService(payments, carts, charges, dedup, log)
	statsService := service.NewStatsService(payments, users, menu, log)

	// --- Gates ---
	auth := middleware.Auth(codec)
	admin := middleware.RequireAdmin(users)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(codec)
	userHandler := handler.NewUserHandler(userService)
	menuHandler := handler.NewMenuHandler(menu, reviews)
	cartHandler := handler.NewCartHandler(cartService)
	paymentHandler := handler.NewPaymentHandler(checkoutService, payments)
	statsHandler := handler.NewStatsHandler(statsService)

	// --- Identity ---
	e.POST("/jwt", authHandler.IssueToken)

	// --- Users / role directory ---
	e.POST("/users", userHandler.Register)
	e.GET("/users", userHandler.List, auth, admin)
	e.GET("/users/admin/:email", userHandler.AdminStatus, auth)
	e.PATCH("/users/admin/:id", userHandler.Promote, auth, admin)
	e.DELETE("/users/:id", userHandler.Delete, auth, admin)

	// --- Catalog ---
	e.GET("/menu", menuHandler.List)
	e.POST("/menu", menuHandler.Create, auth, admin)
	e.DELETE("/menu/:id", menuHandler.Delete, auth, admin)
	e.GET("/reviews", menuHandler.ListReviews)

	// --- Carts ---
	e.GET("/carts", cartHandler.List, auth)
	e.POST("/carts", cartHandler.Add, auth)
	e.PUT("/carts/:id", cartHandler.UpdateQuantity, auth)
	e.DELETE("/carts/:id", cartHandler.Remove, auth)

	// --- Checkout & history ---
	e.POST("/create-payment-intent", paymentHandler.CreateIntent, auth)
	e.POST("/payments", paymentHandler.Settle, auth)
	e.GET("/payments", paymentHandler.History, auth)
	e.GET("/orders", paymentHandler.History, auth)

	// --- Statistics ---
	e.GET("/admin-stats", statsHandler.AdminStats, auth, admin)
	e.GET("/order-stats", statsHandler.OrderStats, auth, admin)
	e.GET("/user-stats", statsHandler.UserStats, auth)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	return e
}
