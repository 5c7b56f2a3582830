package sale

import (
	"time"

	"stock-m/internal/customer"
	"stock-m/internal/inventory"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	StatusPending   = "Pending"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
	StatusFailed    = "Failed"
)

type Sell struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CompanyID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"companyId"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"userId"`
	InventoryID uuid.UUID       `gorm:"type:uuid;not null;index" json:"inventoryId"`
	CustomerID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"customerId"`
	Quantity    int             `gorm:"not null" json:"quantity"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`
	TotalAmount decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"totalAmount"`
	Status      string          `gorm:"size:20;not null;default:Pending" json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`

	Customer  *customer.Customer   `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Inventory *inventory.Inventory `gorm:"foreignKey:InventoryID" json:"inventory,omitempty"`
}

func (Sell) TableName() string {
	return "sells"
}
