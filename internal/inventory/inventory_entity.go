package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Inventory struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index:idx_inventories_company"`

	// Optional numeric identifier; assigned from the company counter
	// when the client does not provide one.
	SKU *int64 `gorm:"index"`

	ProductName string `gorm:"type:varchar(255);not null"`

	// Never negative; the conditional decrement in the sale flow and
	// this constraint back each other up.
	Quantity int `gorm:"not null;default:0;check:chk_inventories_quantity,quantity >= 0"`

	PurchasePrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	SellingPrice  decimal.Decimal `gorm:"type:numeric(12,2);not null"`

	PurchaseDate   *time.Time `gorm:"type:date"`
	ExpirationDate *time.Time `gorm:"type:date"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
