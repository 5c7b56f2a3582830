package customer

import (
	"time"

	"github.com/google/uuid"
)

type Customer struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CustomerName  string    `gorm:"size:150;not null" json:"customerName"`
	CustomerPhone string    `gorm:"size:30;not null" json:"customerPhone"`
	CompanyID     uuid.UUID `gorm:"type:uuid;not null;index" json:"companyId"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
