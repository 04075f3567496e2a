// internal/repository/class.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/arenalabs/courtbook/internal/domain"
	"github.com/arenalabs/courtbook/internal/model"
)

type ClassRepositoryIface interface {
	Create(ctx context.Context, class *model.Class) error
	FindByID(ctx context.Context, orgID, id uuid.UUID) (*model.Class, error)
	FindAll(ctx context.Context, orgID uuid.UUID, includeInactive bool) ([]model.Class, error)
	Update(ctx context.Context, class *model.Class) error
	Deactivate(ctx context.Context, orgID, id uuid.UUID) error

	FindActiveEnrollment(ctx context.Context, classID, studentID uuid.UUID) (*model.ClassStudent, error)
	CreateEnrollment(ctx context.Context, enrollment *model.ClassStudent) error
	EndEnrollment(ctx context.Context, classID, studentID uuid.UUID, leftAt time.Time) error
}

type ClassRepository struct {
	db *gorm.DB
}

func NewClassRepository(db *gorm.DB) *ClassRepository {
	return &ClassRepository{db: db}
}

func (r *ClassRepository) Create(ctx context.Context, class *model.Class) error {
	if err := r.db.WithContext(ctx).Create(class).Error; err != nil {
		return fmt.Errorf("failed to create class: %w", translatePgError(err))
	}
	return nil
}

func (r *ClassRepository) FindByID(ctx context.Context, orgID, id uuid.UUID) (*model.Class, error) {
	var class model.Class
	result := r.db.WithContext(ctx).
		Preload("Teacher").
		Preload("Court").
		Preload("Students", "left_at IS NULL").
		Preload("Students.Student").
		Where("organization_id = ?", orgID).
		First(&class, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrClassNotFound
		}
		return nil, fmt.Errorf("failed to find class: %w", translatePgError(result.Error))
	}
	return &class, nil
}

func (r *ClassRepository) FindAll(ctx context.Context, orgID uuid.UUID, includeInactive bool) ([]model.Class, error) {
	q := r.db.WithContext(ctx).
		Preload("Teacher").
		Preload("Court").
		Preload("Students", "left_at IS NULL").
		Preload("Students.Student").
		Where("organization_id = ?", orgID)
	if !includeInactive {
		q = q.Where("is_active = ?", true)
	}
	var classes []model.Class
	if err := q.Order("created_at DESC").Find(&classes).Error; err != nil {
		return nil, fmt.Errorf("failed to list classes: %w", translatePgError(err))
	}
	return classes, nil
}

func (r *ClassRepository) Update(ctx context.Context, class *model.Class) error {
	result := r.db.WithContext(ctx).
		Model(&model.Class{}).
		Where("id = ? AND organization_id = ?", class.ID, class.OrganizationID).
		Select("name", "description", "court_id", "teacher_id", "day_of_week",
			"start_time", "end_time", "start_date", "end_date",
			"monthly_price", "max_students", "is_active").
		Updates(class)
	if result.Error != nil {
		return fmt.Errorf("failed to update class: %w", translatePgError(result.Error))
	}
	if result.RowsAffected == 0 {
		return domain.ErrClassNotFound
	}
	return nil
}

func (r *ClassRepository) Deactivate(ctx context.Context, orgID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&model.Class{}).
		Where("id = ? AND organization_id = ?", id, orgID).
		Update("is_active", false)
	if result.Error != nil {
		return fmt.Errorf("failed to deactivate class: %w", translatePgError(result.Error))
	}
	if result.RowsAffected == 0 {
		return domain.ErrClassNotFound
	}
	return nil
}

func (r *ClassRepository) FindActiveEnrollment(ctx context.Context, classID, studentID uuid.UUID) (*model.ClassStudent, error) {
	var enrollment model.ClassStudent
	result := r.db.WithContext(ctx).
		Where("class_id = ? AND student_id = ? AND left_at IS NULL", classID, studentID).
		First(&enrollment)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrStudentNotFound
		}
		return nil, fmt.Errorf("failed to find enrollment: %w", translatePgError(result.Error))
	}
	return &enrollment, nil
}

func (r *ClassRepository) CreateEnrollment(ctx context.Context, enrollment *model.ClassStudent) error {
	if err := r.db.WithContext(ctx).Create(enrollment).Error; err != nil {
		return fmt.Errorf("failed to enroll student: %w", translatePgError(err))
	}
	return nil
}

func (r *ClassRepository) EndEnrollment(ctx context.Context, classID, studentID uuid.UUID, leftAt time.Time) error {
	err := r.db.WithContext(ctx).
		Model(&model.ClassStudent{}).
		Where("class_id = ? AND student_id = ?", classID, studentID).
		Update("left_at", leftAt).Error
	if err != nil {
		return fmt.Errorf("failed to end enrollment: %w", translatePgError(err))
	}
	return nil
}
