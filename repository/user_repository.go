package repository

import (
	"context"

	"coursereg/models"
	"coursereg/services/enrollment"

	"gorm.io/gorm"
)

// UserRepository implements enrollment.UserDirectory over GORM.
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

var _ enrollment.UserDirectory = (*UserRepository)(nil)

// WithTx returns a directory bound to the given transaction handle.
func (r *UserRepository) WithTx(tx *gorm.DB) enrollment.UserDirectory {
	return &UserRepository{db: tx}
}

// Exists reports whether a non-deleted user with the given ID exists.
func (r *UserRepository) Exists(ctx context.Context, userID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ? AND is_deleted = ?", userID, false).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
