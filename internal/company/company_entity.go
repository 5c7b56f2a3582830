package company

import (
	"time"

	"github.com/google/uuid"
)

type Company struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name    string    `gorm:"type:varchar(255);not null"`
	Address string    `gorm:"type:varchar(255)"`
	Logo    string    `gorm:"type:varchar(512)"`

	// Inventory at or below this quantity counts as low stock.
	LowStockLevel int `gorm:"not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
