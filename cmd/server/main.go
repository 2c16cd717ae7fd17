package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	cartapp "github.com/storefront/backend/internal/application/cart"
	catalogapp "github.com/storefront/backend/internal/application/catalog"
	customerapp "github.com/storefront/backend/internal/application/customer"
	identityapp "github.com/storefront/backend/internal/application/identity"
	orderapp "github.com/storefront/backend/internal/application/order"
	reviewapp "github.com/storefront/backend/internal/application/review"
	"github.com/storefront/backend/internal/infrastructure/auth"
	"github.com/storefront/backend/internal/infrastructure/config"
	"github.com/storefront/backend/internal/infrastructure/logger"
	"github.com/storefront/backend/internal/infrastructure/persistence"
	"github.com/storefront/backend/internal/interfaces/http/handler"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
	"github.com/storefront/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

//	@title			Storefront Backend API
//	@version		1.0
//	@description	E-commerce backend API: catalog, carts, reviews and orders

//	@host		localhost:8080
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting storefront backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))

	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	blacklist, err := auth.NewRedisTokenBlacklist(cfg.Redis)
	if err != nil {
		log.Fatal("Failed to connect to redis", zap.Error(err))
	}
	defer func() {
		if err := blacklist.Close(); err != nil {
			log.Error("Error closing redis connection", zap.Error(err))
		}
	}()
	log.Info("Redis connected")

	// Repositories
	productRepo := persistence.NewGormProductRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	cartRepo := persistence.NewGormCartRepository(db.DB)
	reviewRepo := persistence.NewGormReviewRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	checkoutRepo := persistence.NewGormCheckoutRepository(db.DB)
	accountLifecycle := persistence.NewGormAccountLifecycle(db.DB)

	// Application services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, customerRepo, accountLifecycle, jwtService, blacklist, log)
	productService := catalogapp.NewProductService(productRepo, orderRepo)
	customerService := customerapp.NewCustomerService(customerRepo, accountLifecycle, orderRepo, log)
	cartService := cartapp.NewCartService(cartRepo, productRepo, log)
	reviewService := reviewapp.NewReviewService(reviewRepo, productRepo, log)
	orderService := orderapp.NewOrderService(orderRepo, checkoutRepo, cartRepo, productRepo, log)

	// HTTP handlers
	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(productService)
	customerHandler := handler.NewCustomerHandler(customerService)
	cartHandler := handler.NewCartHandler(cartService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	orderHandler := handler.NewOrderHandler(orderService)

	// Gin engine
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Invalid trusted proxies", zap.Error(err))
		}
	}

	middleware.SetupValidator()

	engine.Use(middleware.RequestID())
	engine.Use(logger.GinMiddleware(log))
	engine.Use(logger.Recovery(log))

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	engine.GET("/health", healthHandler(db))

	// Authentication middleware; staff-only routes additionally pass StaffOnly
	authMW := middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{
		JWTService:     jwtService,
		TokenBlacklist: blacklist,
		Logger:         log,
	})
	staffMW := middleware.StaffOnly()

	// Public auth endpoints plus logout for authenticated sessions
	authRoutes := router.NewDomainGroup("/auth")
	authRoutes.POST("/register", authHandler.Register)
	authRoutes.POST("/login", authHandler.Login)
	authRoutes.POST("/refresh", authHandler.Refresh)
	authRoutes.POST("/logout", authMW, authHandler.Logout)

	// Catalog is world-readable; writes are staff-only. Reviews nest
	// under their product and require a customer session to write.
	productRoutes := router.NewDomainGroup("/products")
	productRoutes.GET("", productHandler.List)
	productRoutes.GET("/:id", productHandler.GetByID)
	productRoutes.POST("", authMW, staffMW, productHandler.Create)
	productRoutes.PUT("/:id", authMW, staffMW, productHandler.Update)
	productRoutes.DELETE("/:id", authMW, staffMW, productHandler.Delete)
	productRoutes.GET("/:id/reviews", reviewHandler.List)
	productRoutes.GET("/:id/reviews/:review_id", reviewHandler.Get)
	productRoutes.POST("/:id/reviews", authMW, reviewHandler.Create)
	productRoutes.PUT("/:id/reviews/:review_id", authMW, reviewHandler.Update)
	productRoutes.DELETE("/:id/reviews/:review_id", authMW, reviewHandler.Delete)

	// Profile endpoints; the collection views are staff-only
	customerRoutes := router.NewDomainGroup("/customers")
	customerRoutes.Use(authMW)
	customerRoutes.GET("/me", customerHandler.GetMe)
	customerRoutes.PUT("/me", customerHandler.UpdateMe)
	customerRoutes.DELETE("/me", customerHandler.DeleteMe)
	customerRoutes.GET("", staffMW, customerHandler.List)
	customerRoutes.GET("/:id", staffMW, customerHandler.GetByID)

	// Carts are anonymous and addressed by UUID only
	cartRoutes := router.NewDomainGroup("/carts")
	cartRoutes.POST("", cartHandler.Create)
	cartRoutes.GET("/:id", cartHandler.Get)
	cartRoutes.DELETE("/:id", cartHandler.Delete)
	cartRoutes.POST("/:id/items", cartHandler.AddItem)
	cartRoutes.PUT("/:id/items/:item_id", cartHandler.UpdateItem)
	cartRoutes.DELETE("/:id/items/:item_id", cartHandler.RemoveItem)

	// Orders require a session; status changes and deletion are staff-only
	orderRoutes := router.NewDomainGroup("/orders")
	orderRoutes.Use(authMW)
	orderRoutes.POST("", orderHandler.Place)
	orderRoutes.GET("", orderHandler.List)
	orderRoutes.GET("/:id", orderHandler.Get)
	orderRoutes.PATCH("/:id", staffMW, orderHandler.UpdateStatus)
	orderRoutes.DELETE("/:id", staffMW, orderHandler.Delete)

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(authRoutes).
		Register(productRoutes).
		Register(customerRoutes).
		Register(cartRoutes).
		Register(orderRoutes)
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler reports liveness, including database reachability
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			logger.GetGinLogger(c).Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
