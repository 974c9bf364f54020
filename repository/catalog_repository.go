package repository

import (
	"context"
	"errors"

	"coursereg/models/course"
	"coursereg/services/enrollment"

	"gorm.io/gorm"
)

// CatalogRepository implements enrollment.ModuleCatalog over GORM. It is the
// only writer of the enrolled counter.
type CatalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository creates a new module catalog repository
func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

var _ enrollment.ModuleCatalog = (*CatalogRepository)(nil)

// WithTx returns a catalog bound to the given transaction handle.
func (r *CatalogRepository) WithTx(tx *gorm.DB) enrollment.ModuleCatalog {
	return &CatalogRepository{db: tx}
}

// GetModule fetches one module by ID.
func (r *CatalogRepository) GetModule(ctx context.Context, moduleID uint) (*course.Module, error) {
	var module course.Module
	err := r.db.WithContext(ctx).Where("id = ?", moduleID).First(&module).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, enrollment.ErrModuleNotFound
	}
	if err != nil {
		return nil, err
	}
	return &module, nil
}

// IncrementEnrolled bumps the enrolled counter by one, but only while a seat
// remains. The guard lives in the WHERE clause so the check and the write are
// a single atomic statement for the storage engine; zero affected rows means
// the module either filled up concurrently or no longer exists.
func (r *CatalogRepository) IncrementEnrolled(ctx context.Context, moduleID uint) error {
	res := r.db.WithContext(ctx).
		Model(&course.Module{}).
		Where("id = ? AND enrolled < capacity", moduleID).
		UpdateColumn("enrolled", gorm.Expr("enrolled + 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&course.Module{}).Where("id = ?", moduleID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return enrollment.ErrModuleNotFound
		}
		return enrollment.ErrCapacityExceeded
	}
	return nil
}
