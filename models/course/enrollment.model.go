package course

import "gorm.io/gorm"

// Enrollment links one user to one module. The composite unique index is
// the storage-level guarantee that a pair can never be enrolled twice,
// regardless of what the application pre-checks saw.
type Enrollment struct {
	gorm.Model
	UserID   uint `json:"user_id" gorm:"not null;uniqueIndex:idx_enrollment_user_module"`
	ModuleID uint `json:"module_id" gorm:"not null;uniqueIndex:idx_enrollment_user_module"`

	Module Module `json:"module" gorm:"foreignKey:ModuleID;constraint:OnDelete:CASCADE"`
}
