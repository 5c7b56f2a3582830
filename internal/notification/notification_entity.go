package notification

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeWarning = "Warning"

	EntityInventory = "Inventory"

	TitleLowStock = "Low Stock Alert"
	TitleExpired  = "Expiration Alert"
)

type Notification struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CompanyID uuid.UUID  `gorm:"type:uuid;not null;index" json:"companyId"`
	Title     string     `gorm:"size:100;not null" json:"title"`
	Message   string     `gorm:"size:500;not null" json:"message"`
	Type      string     `gorm:"size:20;not null;default:Warning" json:"type"`
	Entity    string     `gorm:"size:50;not null" json:"entity"`
	EntityID  *uuid.UUID `gorm:"type:uuid" json:"entityId,omitempty"`
	Read      bool       `gorm:"not null;default:false" json:"read"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}
