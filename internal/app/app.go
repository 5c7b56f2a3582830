package app

import (
	"os"
	"path/filepath"

	"stock-m/internal/company"
	"stock-m/internal/customer"
	"stock-m/internal/inventory"
	"stock-m/internal/middleware"
	"stock-m/internal/notification"
	"stock-m/internal/sale"
	"stock-m/internal/shared/connection"
	"stock-m/internal/shared/counter"
	"stock-m/internal/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func BuildApp(router *gin.Engine) error {
	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}
	zap.L().Info("database connection established")

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	if err := migrate(gormDB); err != nil {
		return err
	}

	rdb, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	zap.L().Info("redis connection established")

	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(zap.L()))

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = filepath.Join("public", "uploads")
	}
	router.Static("/uploads", uploadDir)

	return registerModules(router, sqlDB, gormDB, rdb)
}

func migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&company.Company{},
		&user.User{},
		&inventory.Inventory{},
		&customer.Customer{},
		&sale.Sell{},
		&notification.Notification{},
		&counter.CompanyCounter{},
	); err != nil {
		return err
	}

	// Outbox rows are written with raw SQL, so the table is created here
	// instead of through a gorm model.
	return db.Exec(`
CREATE TABLE IF NOT EXISTS outbox_events (
	id UUID PRIMARY KEY,
	request_id TEXT,
	aggregate_type TEXT NOT NULL,
	aggregate_id UUID NOT NULL,
	event_type TEXT NOT NULL,
	topic TEXT NOT NULL,
	payload JSONB NOT NULL,
	status TEXT NOT NULL DEFAULT 'pending',
	retry_count INT NOT NULL DEFAULT 0,
	error_message TEXT,
	next_retry_at TIMESTAMPTZ,
	processed_at TIMESTAMPTZ,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`).Error
}
