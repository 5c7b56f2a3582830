package app

import (
	"database/sql"

	"stock-m/internal/auth"
	"stock-m/internal/company"
	"stock-m/internal/inventory"
	"stock-m/internal/messaging/kafka"
	"stock-m/internal/notification"
	"stock-m/internal/rbac"
	"stock-m/internal/sale"
	"stock-m/internal/shared/counter"
	"stock-m/internal/stats"
	"stock-m/internal/upload"
	"stock-m/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	companyRepo := company.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	inventoryRepo := inventory.NewRepository(gormDB)
	notificationRepo := notification.NewRepository(gormDB, db)
	outboxRepo := kafka.NewOutboxRepository(db)
	saleRepo := sale.NewRepository(gormDB, db)
	statsRepo := stats.NewRepository(gormDB)
	userRepo := user.NewRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := rbac.NewEnforcer()
	if err != nil {
		return err
	}

	// --- Services ---
	authService := auth.NewService(userRepo)
	companyService := company.NewService(companyRepo)
	inventoryService := inventory.NewService(inventoryRepo, companyRepo, counterRepo)
	notificationService := notification.NewService(db, notificationRepo, inventoryRepo, companyRepo, outboxRepo)
	saleService := sale.NewService(db, saleRepo, outboxRepo)
	statsService := stats.NewService(statsRepo, companyRepo, rdb)
	userService := user.NewService(userRepo)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	companyHandler := company.NewHandler(companyService)
	inventoryHandler := inventory.NewHandler(inventoryService)
	notificationHandler := notification.NewHandler(notificationService)
	saleHandler := sale.NewHandler(saleService, rdb)
	statsHandler := stats.NewHandler(statsService)
	uploadHandler := upload.NewHandler()
	userHandler := user.NewHandler(userService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		company.RegisterRoutes(api, companyHandler, enforcer)
		inventory.RegisterRoutes(api, inventoryHandler, enforcer)
		notification.RegisterRoutes(api, notificationHandler, enforcer)
		sale.RegisterRoutes(api, saleHandler, enforcer, rdb)
		stats.RegisterRoutes(api, statsHandler, enforcer)
		upload.RegisterRoutes(api, uploadHandler, enforcer)
		user.RegisterRoutes(api, userHandler, enforcer)
	}

	return nil
}
