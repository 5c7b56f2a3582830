package sale

import (
	"context"
	"database/sql"
	"time"

	"stock-m/internal/customer"
	"stock-m/internal/tenant"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductRow is the slice of an inventory record the sale flow needs.
type ProductRow struct {
	ID           string
	ProductName  string
	Quantity     int
	SellingPrice decimal.Decimal
}

//go:generate mockgen -source=sale_repo.go -destination=mock/sale_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	CreateCustomer(ctx context.Context, c *customer.Customer) error
	FindProductForSale(ctx context.Context, companyID, productID string) (*ProductRow, error)
	DecrementStock(ctx context.Context, companyID, productID string, qty int) (bool, error)
	CreateSell(ctx context.Context, sell *Sell) error
	FindAllByCompany(ctx context.Context, companyID, userID string, isAdmin bool, since, until *time.Time) ([]Sell, error)
	DeleteByID(ctx context.Context, companyID, id, userID string, isAdmin bool) (int64, error)
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

func (r *repository) CreateCustomer(ctx context.Context, c *customer.Customer) error {
	query := `
        INSERT INTO customers (id, customer_name, customer_phone, company_id, created_at, updated_at)
        VALUES ($1, $2, $3, $4, NOW(), NOW())
    `
	_, err := r.execer().ExecContext(ctx, query, c.ID, c.CustomerName, c.CustomerPhone, c.CompanyID)
	return err
}

func (r *repository) FindProductForSale(ctx context.Context, companyID, productID string) (*ProductRow, error) {
	query := `
        SELECT id::text, product_name, quantity, selling_price
        FROM inventories
        WHERE id = $1 AND company_id = $2
    `
	var row ProductRow
	err := r.querier().QueryRowContext(ctx, query, productID, companyID).
		Scan(&row.ID, &row.ProductName, &row.Quantity, &row.SellingPrice)
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// DecrementStock subtracts qty only when enough stock remains. The
// guard in the WHERE clause makes concurrent sales of the same product
// serialize correctly without an explicit row lock.
func (r *repository) DecrementStock(ctx context.Context, companyID, productID string, qty int) (bool, error) {
	query := `
        UPDATE inventories
        SET quantity = quantity - $3, updated_at = NOW()
        WHERE id = $1 AND company_id = $2 AND quantity >= $3
    `
	res, err := r.execer().ExecContext(ctx, query, productID, companyID, qty)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *repository) CreateSell(ctx context.Context, sell *Sell) error {
	query := `
        INSERT INTO sells (
            id, company_id, user_id, inventory_id, customer_id,
            quantity, price, total_amount, status, created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
    `
	_, err := r.execer().ExecContext(
		ctx, query,
		sell.ID, sell.CompanyID, sell.UserID, sell.InventoryID, sell.CustomerID,
		sell.Quantity, sell.Price, sell.TotalAmount, sell.Status,
	)
	return err
}

func (r *repository) FindAllByCompany(
	ctx context.Context,
	companyID, userID string,
	isAdmin bool,
	since, until *time.Time,
) ([]Sell, error) {
	db := r.gdb.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("Customer").
		Preload("Inventory").
		Order("created_at DESC")

	if !isAdmin {
		db = db.Where("user_id = ?", userID)
	}
	if since != nil {
		db = db.Where("created_at >= ?", *since)
	}
	if until != nil {
		db = db.Where("created_at < ?", *until)
	}

	var sells []Sell
	err := db.Find(&sells).Error
	return sells, err
}

func (r *repository) DeleteByID(
	ctx context.Context,
	companyID, id, userID string,
	isAdmin bool,
) (int64, error) {
	db := r.gdb.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id)

	if !isAdmin {
		db = db.Where("user_id = ?", userID)
	}

	res := db.Delete(&Sell{})
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

func (r *repository) querier() interface {
	QueryRowContext(context.Context, string, ...any) *sql.Row
} {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}
