package counter

import (
	"context"

	"gorm.io/gorm"
)

// CounterTypeSKU numbers newly created inventory items per company.
const CounterTypeSKU = "sku"

type CompanyCounter struct {
	CompanyID   string `gorm:"type:uuid;primaryKey"`
	CounterType string `gorm:"type:varchar(30);primaryKey"`
	LastValue   int64  `gorm:"not null;default:0"`
	UpdatedAt   string `gorm:"type:timestamptz;default:now()"`
}

//go:generate mockgen -destination=mock/counter_repo_mock.go -package=mock . Repository
type Repository interface {
	GetNextValue(ctx context.Context, companyID string, counterType string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetNextValue(ctx context.Context, companyID string, counterType string) (int64, error) {
	var nextValue int64

	// Atomic UPSERT-and-increment; two requests racing on the same
	// company/type can never hand out the same value.
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO company_counters (company_id, counter_type, last_value, updated_at)
		VALUES (?, ?, 1, now())
		ON CONFLICT (company_id, counter_type) DO UPDATE
		SET last_value = company_counters.last_value + 1, updated_at = now()
		RETURNING last_value
	`, companyID, counterType).Scan(&nextValue).Error

	if err != nil {
		return 0, err
	}

	return nextValue, nil
}
