package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	agreementapp "github.com/gestionale/backend/internal/application/agreement"
	identityapp "github.com/gestionale/backend/internal/application/identity"
	registryapp "github.com/gestionale/backend/internal/application/registry"
	"github.com/gestionale/backend/internal/infrastructure/auth"
	"github.com/gestionale/backend/internal/infrastructure/config"
	"github.com/gestionale/backend/internal/infrastructure/logger"
	"github.com/gestionale/backend/internal/infrastructure/persistence"
	"github.com/gestionale/backend/internal/interfaces/http/handler"
	"github.com/gestionale/backend/internal/interfaces/http/middleware"
	"github.com/gestionale/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const version = "1.0.0"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Gestionale Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Token blacklist: Redis in production, in-memory fallback otherwise
	var blacklist auth.TokenBlacklist
	redisBlacklist, err := auth.NewRedisTokenBlacklist(auth.RedisTokenBlacklistConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		if cfg.App.Env == "production" {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		log.Warn("Redis unavailable, falling back to in-memory token blacklist", zap.Error(err))
		blacklist = auth.NewInMemoryTokenBlacklist()
	} else {
		blacklist = redisBlacklist
	}

	// Shared (non tenant-scoped) repositories and services
	tenantRepo := persistence.NewGormTenantRepository(db.DB)
	directory := persistence.NewGormUserDirectory(db.DB)
	agreementRepo := persistence.NewGormAgreementRepository(db.DB)

	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(directory, tenantRepo, jwtService, blacklist, log)
	tenantService := identityapp.NewTenantService(tenantRepo, directory, log)
	agreementService := agreementapp.NewService(agreementRepo)

	// Tenant-scoped service factories. The tenant is resolved from the JWT
	// claims on each request, so repositories are built per request.
	companyServices := func(tenantID uuid.UUID) (*registryapp.CompanyService, error) {
		companyRepo, err := persistence.NewGormCompanyRepository(db.DB, tenantID)
		if err != nil {
			return nil, err
		}
		personRepo, err := persistence.NewGormPersonRepository(db.DB, tenantID)
		if err != nil {
			return nil, err
		}
		return registryapp.NewCompanyService(tenantID, companyRepo, personRepo), nil
	}
	personServices := func(tenantID uuid.UUID) (*registryapp.PersonService, error) {
		personRepo, err := persistence.NewGormPersonRepository(db.DB, tenantID)
		if err != nil {
			return nil, err
		}
		return registryapp.NewPersonService(tenantID, personRepo), nil
	}
	userServices := func(tenantID uuid.UUID) (*identityapp.UserService, error) {
		userRepo, err := persistence.NewGormUserRepository(db.DB, tenantID)
		if err != nil {
			return nil, err
		}
		return identityapp.NewUserService(tenantID, userRepo, directory), nil
	}

	// Initialize HTTP handlers
	authHandler := handler.NewAuthHandler(authService)
	tenantHandler := handler.NewTenantHandler(tenantService)
	userHandler := handler.NewUserHandler(userServices)
	companyHandler := handler.NewCompanyHandler(companyServices)
	personHandler := handler.NewPersonHandler(personServices)
	ccnlHandler := handler.NewCCNLHandler(agreementService)
	systemHandler := handler.NewSystemHandler(cfg.App.Name, version)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware stack, outermost first
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	engine.Use(middleware.BodyLimit(1 << 20))

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(db))

	// Setup API routes
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	jwtConfig := middleware.JWTMiddlewareConfig{
		JWTService:     jwtService,
		TokenBlacklist: blacklist,
		SkipPaths: []string{
			"/api/v1/auth/login",
			"/api/v1/auth/refresh",
			"/api/v1/tenants/register",
			"/api/v1/system/ping",
			"/api/v1/system/info",
		},
		Logger: log,
	}
	r.Use(middleware.JWTAuthMiddlewareWithConfig(jwtConfig))

	// Authentication
	authRoutes := router.NewDomainGroup("auth", "/auth")
	authRoutes.POST("/login", authHandler.Login)
	authRoutes.POST("/refresh", authHandler.Refresh)
	authRoutes.POST("/logout", authHandler.Logout)

	// Tenant accounts and users
	identityRoutes := router.NewDomainGroup("identity", "")
	identityRoutes.POST("/tenants/register", tenantHandler.Register)
	identityRoutes.GET("/tenants/current", tenantHandler.GetCurrent)
	identityRoutes.POST("/users", userHandler.Create)
	identityRoutes.GET("/users/me", userHandler.Me)
	identityRoutes.PUT("/users/me/password", userHandler.ChangePassword)
	identityRoutes.GET("/users/:id", userHandler.GetByID)
	identityRoutes.POST("/users/:id/deactivate", userHandler.Deactivate)

	// Company registry
	registryRoutes := router.NewDomainGroup("registry", "")
	registryRoutes.POST("/companies", companyHandler.Create)
	registryRoutes.GET("/companies", companyHandler.List)
	registryRoutes.GET("/companies/:id", companyHandler.GetByID)
	registryRoutes.PUT("/companies/:id", companyHandler.Update)
	registryRoutes.DELETE("/companies/:id", companyHandler.Delete)
	registryRoutes.GET("/companies/:id/employees", companyHandler.ListEmployees)
	registryRoutes.GET("/company-bases/:base_id", companyHandler.GetBase)
	registryRoutes.GET("/company-bases/:base_id/employees", companyHandler.ListBaseEmployees)
	registryRoutes.POST("/company-bases/:base_id/employees/:person_id", companyHandler.AssignEmployee)
	registryRoutes.DELETE("/company-bases/:base_id/employees/:person_id", companyHandler.ReleaseEmployee)

	// People
	registryRoutes.POST("/people", personHandler.Create)
	registryRoutes.GET("/people", personHandler.List)
	registryRoutes.GET("/people/:id", personHandler.GetByID)
	registryRoutes.PUT("/people/:id", personHandler.Update)
	registryRoutes.DELETE("/people/:id", personHandler.Delete)

	// Labor agreements (shared reference data)
	agreementRoutes := router.NewDomainGroup("agreement", "")
	agreementRoutes.POST("/ccnls", ccnlHandler.Create)
	agreementRoutes.GET("/ccnls", ccnlHandler.List)
	agreementRoutes.GET("/ccnls/:id", ccnlHandler.GetByID)
	agreementRoutes.GET("/ccnls/:id/levels", ccnlHandler.ListLevels)

	// System
	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/info", systemHandler.GetSystemInfo)
	systemRoutes.GET("/ping", systemHandler.Ping)

	r.Register(authRoutes).
		Register(identityRoutes).
		Register(registryRoutes).
		Register(agreementRoutes).
		Register(systemRoutes)

	r.Setup()

	// Create HTTP server with config
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

	// Graceful shutdown
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

// healthHandler returns a handler for the health check endpoint
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
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
