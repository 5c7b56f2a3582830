package user

import (
	"time"

	"stock-m/internal/company"

	"github.com/google/uuid"
)

const (
	RoleAdmin  = "Admin"
	RoleUser   = "User"
	RoleSeller = "Seller"

	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

type User struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`

	// Nullable only transiently, for accounts not yet assigned to a company.
	CompanyID *uuid.UUID `gorm:"type:uuid;index"`

	FirstName string `gorm:"type:varchar(100);not null"`
	LastName  string `gorm:"type:varchar(100);not null"`
	Email     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Phone     string `gorm:"type:varchar(30)"`
	Role      string `gorm:"type:varchar(20);not null;default:'Seller'"`
	Password  string `gorm:"type:varchar(255);not null"`
	Status    string `gorm:"type:varchar(10);not null;default:'Active'"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Company *company.Company `gorm:"foreignKey:CompanyID"`
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
