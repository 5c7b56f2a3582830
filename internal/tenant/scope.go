package tenant

import "gorm.io/gorm"

// Scope restricts a query to one company's rows. Every tenant-owned
// repository applies it instead of hand-writing the where clause.
func Scope(companyID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("company_id = ?", companyID)
	}
}
