package stats

import (
	"context"
	"time"

	"stock-m/internal/inventory"
	"stock-m/internal/sale"
	"stock-m/internal/tenant"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

//go:generate mockgen -source=stats_repo.go -destination=mock/stats_repo_mock.go -package=mock
type Repository interface {
	CountProducts(ctx context.Context, companyID string) (int64, error)
	CountLowStock(ctx context.Context, companyID string, threshold int) (int64, error)
	CountExpired(ctx context.Context, companyID string, now time.Time) (int64, error)
	RevenueSince(ctx context.Context, companyID, userID string, isAdmin bool, since time.Time) (decimal.Decimal, int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CountProducts(ctx context.Context, companyID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&inventory.Inventory{}).
		Scopes(tenant.Scope(companyID)).
		Count(&count).Error
	return count, err
}

func (r *repository) CountLowStock(ctx context.Context, companyID string, threshold int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&inventory.Inventory{}).
		Scopes(tenant.Scope(companyID)).
		Where("quantity < ?", threshold).
		Count(&count).Error
	return count, err
}

func (r *repository) CountExpired(ctx context.Context, companyID string, now time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&inventory.Inventory{}).
		Scopes(tenant.Scope(companyID)).
		Where("expiration_date IS NOT NULL AND expiration_date <= ?", now).
		Count(&count).Error
	return count, err
}

func (r *repository) RevenueSince(
	ctx context.Context,
	companyID, userID string,
	isAdmin bool,
	since time.Time,
) (decimal.Decimal, int64, error) {
	db := r.db.WithContext(ctx).
		Model(&sale.Sell{}).
		Scopes(tenant.Scope(companyID)).
		Where("status = ?", sale.StatusCompleted).
		Where("created_at >= ?", since)

	if !isAdmin {
		db = db.Where("user_id = ?", userID)
	}

	var row struct {
		Revenue decimal.Decimal
		Sales   int64
	}
	err := db.
		Select("COALESCE(SUM(total_amount), 0) AS revenue, COUNT(*) AS sales").
		Scan(&row).Error
	return row.Revenue, row.Sales, err
}
