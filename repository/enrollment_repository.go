package repository

import (
	"context"
	"errors"

	"coursereg/models/course"
	"coursereg/services/enrollment"

	"gorm.io/gorm"
)

// EnrollmentRepository implements enrollment.EnrollmentStore over GORM.
type EnrollmentRepository struct {
	db *gorm.DB
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(db *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

var _ enrollment.EnrollmentStore = (*EnrollmentRepository)(nil)

// WithTx returns a store bound to the given transaction handle.
func (r *EnrollmentRepository) WithTx(tx *gorm.DB) enrollment.EnrollmentStore {
	return &EnrollmentRepository{db: tx}
}

// Create inserts an enrollment row. A violation of the (user_id, module_id)
// unique index is reported as ErrAlreadyEnrolled; the index, not the caller's
// pre-check, is what makes the uniqueness invariant hold under concurrency.
func (r *EnrollmentRepository) Create(ctx context.Context, e *course.Enrollment) error {
	err := r.db.WithContext(ctx).Create(e).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return enrollment.ErrAlreadyEnrolled
	}
	return err
}

// Exists reports whether the (user, module) pair is already enrolled.
func (r *EnrollmentRepository) Exists(ctx context.Context, userID, moduleID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&course.Enrollment{}).
		Where("user_id = ? AND module_id = ?", userID, moduleID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListByUser fetches a user's enrollments with module, course and instructor
// records preloaded for presentation.
func (r *EnrollmentRepository) ListByUser(ctx context.Context, userID uint) ([]course.Enrollment, error) {
	var enrollments []course.Enrollment
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Module").
		Preload("Module.Course").
		Preload("Module.Instructor").
		Find(&enrollments).Error
	if err != nil {
		return nil, err
	}
	return enrollments, nil
}
