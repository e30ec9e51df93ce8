package tenant

import "gorm.io/gorm"

func Scope(organizationID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("organization_id = ?", organizationID)
	}
}

// VisibleTo matches global rows (no organization) plus rows owned by organizationID.
func VisibleTo(organizationID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if organizationID == "" {
			return db.Where("organization_id IS NULL")
		}
		return db.Where("organization_id IS NULL OR organization_id = ?", organizationID)
	}
}

// SameScope matches rows sharing organizationID, where nil means the global scope.
func SameScope(organizationID *string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if organizationID == nil || *organizationID == "" {
			return db.Where("organization_id IS NULL")
		}
		return db.Where("organization_id = ?", *organizationID)
	}
}
