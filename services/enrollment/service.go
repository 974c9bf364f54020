package enrollment

import (
	"context"
	"fmt"
	"log"
	"time"

	"coursereg/models/course"

	"gorm.io/gorm"
)

// UserDirectory answers whether a user identifier refers to a live account.
// Backed by the user store; this service never writes users.
type UserDirectory interface {
	WithTx(tx *gorm.DB) UserDirectory
	Exists(ctx context.Context, userID uint) (bool, error)
}

// ModuleCatalog gives read access to module records and owns the only write
// path for the enrolled counter. IncrementEnrolled must be an atomic
// conditional update: it succeeds only while enrolled < capacity.
type ModuleCatalog interface {
	WithTx(tx *gorm.DB) ModuleCatalog
	GetModule(ctx context.Context, moduleID uint) (*course.Module, error)
	IncrementEnrolled(ctx context.Context, moduleID uint) error
}

// EnrollmentStore persists enrollment rows. Create must rely on the storage
// unique index for (user_id, module_id) and report duplicates as
// ErrAlreadyEnrolled.
type EnrollmentStore interface {
	WithTx(tx *gorm.DB) EnrollmentStore
	Create(ctx context.Context, e *course.Enrollment) error
	Exists(ctx context.Context, userID, moduleID uint) (bool, error)
	ListByUser(ctx context.Context, userID uint) ([]course.Enrollment, error)
}

// RetryConfig bounds the local retry loop for transient storage conflicts.
type RetryConfig struct {
	MaxAttempts int
	Backoff     time.Duration
}

const (
	defaultMaxAttempts = 3
	defaultBackoff     = 50 * time.Millisecond
)

// Service owns the enrollment invariants: enrolled <= capacity per module,
// and at most one enrollment per (user, module).
type Service struct {
	db          *gorm.DB
	users       UserDirectory
	catalog     ModuleCatalog
	enrollments EnrollmentStore
	retry       RetryConfig
}

// New creates an enrollment service. Zero retry values fall back to defaults.
func New(db *gorm.DB, users UserDirectory, catalog ModuleCatalog, enrollments EnrollmentStore, retry RetryConfig) *Service {
	if retry.MaxAttempts < 1 {
		retry.MaxAttempts = defaultMaxAttempts
	}
	if retry.Backoff <= 0 {
		retry.Backoff = defaultBackoff
	}
	return &Service{
		db:          db,
		users:       users,
		catalog:     catalog,
		enrollments: enrollments,
		retry:       retry,
	}
}

// Register enrolls a user into a module. Preconditions are checked in order:
// module exists, user exists, seats remain, not already enrolled. On success
// the enrollment insert and the counter increment commit together; any
// failure rolls both back. Transient storage conflicts re-run the whole
// check-and-act sequence from scratch, up to the configured bound.
func (s *Service) Register(ctx context.Context, userID, moduleID uint) (*course.Enrollment, error) {
	var created *course.Enrollment

	attempt := func() error {
		created = nil
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			users := s.users.WithTx(tx)
			catalog := s.catalog.WithTx(tx)
			store := s.enrollments.WithTx(tx)

			module, err := catalog.GetModule(ctx, moduleID)
			if err != nil {
				return err
			}

			ok, err := users.Exists(ctx, userID)
			if err != nil {
				return err
			}
			if !ok {
				return ErrUserNotFound
			}

			// Fast-path checks for friendly errors. The insert and the
			// conditional increment below are the real guarantees.
			if module.Enrolled >= module.Capacity {
				return ErrCapacityExceeded
			}
			enrolled, err := store.Exists(ctx, userID, moduleID)
			if err != nil {
				return err
			}
			if enrolled {
				return ErrAlreadyEnrolled
			}

			e := &course.Enrollment{UserID: userID, ModuleID: moduleID}
			if err := store.Create(ctx, e); err != nil {
				return err
			}
			if err := catalog.IncrementEnrolled(ctx, moduleID); err != nil {
				return err
			}

			created = e
			return nil
		})
	}

	var lastErr error
	for i := 1; i <= s.retry.MaxAttempts; i++ {
		err := attempt()
		if err == nil {
			return created, nil
		}
		if IsClientError(err) {
			return nil, err
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		lastErr = err
		if i < s.retry.MaxAttempts {
			log.Printf("[ENROLLMENT] register user=%d module=%d attempt %d/%d failed: %v",
				userID, moduleID, i, s.retry.MaxAttempts, err)
			time.Sleep(s.retry.Backoff * time.Duration(i))
		}
	}

	return nil, fmt.Errorf("%w: register failed after %d attempts: %v", ErrTransient, s.retry.MaxAttempts, lastErr)
}

// ListEnrollments returns all enrollments for a user, each joined with its
// module, course and instructor records. An unknown user simply yields an
// empty slice; no directory lookup happens here.
func (s *Service) ListEnrollments(ctx context.Context, userID uint) ([]course.Enrollment, error) {
	return s.enrollments.ListByUser(ctx, userID)
}
