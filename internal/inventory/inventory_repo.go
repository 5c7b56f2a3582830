package inventory

import (
	"context"
	"time"

	"stock-m/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=inventory_repo.go -destination=mock/inventory_repo_mock.go -package=mock

type Repository interface {
	Create(ctx context.Context, item *Inventory) error
	FindAllByCompany(ctx context.Context, companyID string) ([]Inventory, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*Inventory, error)
	FindInStock(ctx context.Context, companyID string) ([]Inventory, error)
	FindLowStock(ctx context.Context, companyID string, threshold int) ([]Inventory, error)
	FindExpired(ctx context.Context, companyID string, now time.Time) ([]Inventory, error)
	Update(ctx context.Context, item *Inventory) error
	Delete(ctx context.Context, companyID, id string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, item *Inventory) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]Inventory, error) {
	var items []Inventory
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*Inventory, error) {
	var item Inventory
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&item, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *repository) FindInStock(ctx context.Context, companyID string) ([]Inventory, error) {
	var items []Inventory
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("quantity > 0").
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

func (r *repository) FindLowStock(ctx context.Context, companyID string, threshold int) ([]Inventory, error) {
	var items []Inventory
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("quantity <= ?", threshold).
		Order("quantity ASC").
		Find(&items).Error
	return items, err
}

func (r *repository) FindExpired(ctx context.Context, companyID string, now time.Time) ([]Inventory, error) {
	var items []Inventory
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("expiration_date IS NOT NULL AND expiration_date <= ?", now).
		Order("expiration_date ASC").
		Find(&items).Error
	return items, err
}

func (r *repository) Update(ctx context.Context, item *Inventory) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *repository) Delete(ctx context.Context, companyID, id string) (int64, error) {
	res := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&Inventory{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
