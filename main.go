package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/grootan/ems/api/audit"
	"github.com/grootan/ems/api/auth"
	"github.com/grootan/ems/api/cache"
	"github.com/grootan/ems/api/config"
	"github.com/grootan/ems/api/controller"
	"github.com/grootan/ems/api/dao"
	"github.com/grootan/ems/api/db"
	logger "github.com/grootan/ems/api/logging"
	"github.com/grootan/ems/api/router"
	"github.com/grootan/ems/api/service"
	"github.com/grootan/ems/api/util"
)

func main() {
	// Initialize configuration
	if err := config.InitConfig(); err != nil {
		log.Fatalf("Failed to initialize config: %v", err)
	}

	// Initialize logger
	logger.InitLogger(config.GetString("log.dir"))
	defer logger.Sync()

	// Initialize Postgres
	if err := db.InitPostgres(); err != nil {
		logger.Fatal("Failed to initialize Postgres", zap.Error(err))
	}
	defer db.ClosePostgres()

	// Initialize Redis
	if err := db.InitRedis(); err != nil {
		logger.Fatal("Failed to initialize Redis", zap.Error(err))
	}
	defer db.CloseRedis()

	// Initialize EventBus
	eventBus := util.NewEventBus()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	eventBus.Start(ctx)

	// Initialize utilities
	validationUtil := util.NewValidationUtil()
	notificationService := util.NewNotificationService()

	cacheService := cache.NewService(cache.NewRedisStore(db.RedisClient), cache.TTLConfig{
		Department:     config.GetDuration("cache.departmentTTL"),
		DepartmentList: config.GetDuration("cache.departmentListTTL"),
		Employee:       config.GetDuration("cache.employeeTTL"),
		EmployeeSearch: config.GetDuration("cache.employeeSearchTTL"),
	})

	auditService := audit.Service(audit.NopService{})
	if esURL := config.GetString("elasticsearch.url"); esURL != "" {
		auditRepository, err := audit.NewElasticsearchRepository(esURL)
		if err != nil {
			logger.Warn("Audit trail disabled, Elasticsearch unreachable", zap.Error(err))
		} else {
			auditService = audit.NewService(auditRepository)
		}
	}

	// Token service and identity resolution
	tokenService, err := auth.NewTokenService(config.GetString("jwt.secret"), config.GetInt("jwt.expiryMinutes"))
	if err != nil {
		logger.Fatal("Failed to initialize token service", zap.Error(err))
	}
	identityResolver := auth.NewIdentityResolver(dao.NewUserDAO(db.DB))

	// Initialize services
	services, err := service.InitializeServices(
		db.DB,
		tokenService,
		auditService,
		validationUtil,
		cacheService,
		notificationService,
		eventBus,
	)
	if err != nil {
		logger.Fatal("Failed to initialize services", zap.Error(err))
	}

	// Initialize controllers
	controllers := controller.InitializeControllers(services)

	// Set up Gin
	gin.SetMode(gin.ReleaseMode)
	engine := router.SetupRouter(
		controllers,
		tokenService,
		identityResolver,
		auth.DefaultPolicy(),
		config.GetInt("ratelimit.requests"),
		config.GetDuration("ratelimit.window"),
	)

	// Set up the server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", config.GetString("server.port")),
		Handler: engine,
	}

	// Start the server in a goroutine
	go func() {
		logger.Info("Starting server", zap.String("port", config.GetString("server.port")))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	// The context is used to inform the server it has 5 seconds to finish
	// the request it is currently handling
	ctx, cancel = context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exiting")
}
