package app

import (
	"fmt"

	"mentorlink_backend/database"
	"mentorlink_backend/internal/config"
	"mentorlink_backend/internal/handlers"
	"mentorlink_backend/internal/logger"
	"mentorlink_backend/internal/middleware"
	"mentorlink_backend/internal/repositories"
	"mentorlink_backend/internal/routes"
	"mentorlink_backend/internal/services"
	"mentorlink_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB := OpenDatabase(cfg.Database.DSN)

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}
	logger.Info("Migrations applied")

	ginRouter := SetupRouter(gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// OpenDatabase connects to Postgres. TranslateError is required so that
// unique index violations surface as gorm.ErrDuplicatedKey, which the
// repositories rely on.
func OpenDatabase(dsn string) *gorm.DB {
	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	return gormDB
}

// SetupRouter wires repositories, services and handlers onto a gin engine.
func SetupRouter(gormDB *gorm.DB) *gin.Engine {
	repoContainer := repositories.NewRepositoryContainer()
	serviceContainer := services.NewServiceContainer(repoContainer)

	customValidator := validator.New()
	appHandlers := handlers.NewAppHandlers(customValidator, serviceContainer)

	ginRouter := initializeGinRouter(gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}
