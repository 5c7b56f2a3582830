package notification

import (
	"context"
	"database/sql"
	"time"

	"stock-m/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=notification_repo.go -destination=mock/notification_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, n *Notification) error
	HasRecent(ctx context.Context, companyID, title string, since time.Time) (bool, error)
	FindNewest(ctx context.Context, companyID string, limit int) ([]Notification, error)
	DeleteByID(ctx context.Context, companyID, id string) (int64, error)
}

type repository struct {
	gdb *gorm.DB
	db  *sql.DB
	tx  *sql.Tx
}

func NewRepository(gdb *gorm.DB, db *sql.DB) Repository {
	return &repository{gdb: gdb, db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{gdb: r.gdb, db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, n *Notification) error {
	query := `
        INSERT INTO notifications (
            id, company_id, title, message, type, entity, entity_id, read, created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
    `
	_, err := r.execer().ExecContext(
		ctx, query,
		n.ID, n.CompanyID, n.Title, n.Message, n.Type, n.Entity, n.EntityID, n.Read,
	)
	return err
}

func (r *repository) HasRecent(ctx context.Context, companyID, title string, since time.Time) (bool, error) {
	var count int64
	err := r.gdb.WithContext(ctx).
		Model(&Notification{}).
		Scopes(tenant.Scope(companyID)).
		Where("title = ?", title).
		Where("created_at > ?", since).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) FindNewest(ctx context.Context, companyID string, limit int) ([]Notification, error) {
	var notifications []Notification
	err := r.gdb.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("created_at DESC").
		Limit(limit).
		Find(&notifications).Error
	return notifications, err
}

func (r *repository) DeleteByID(ctx context.Context, companyID, id string) (int64, error) {
	res := r.gdb.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&Notification{}, "id = ?", id)
	return res.RowsAffected, res.Error
}

func (r *repository) execer() interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
} {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}
