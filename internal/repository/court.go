// internal/repository/court.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/arenalabs/courtbook/internal/domain"
	"github.com/arenalabs/courtbook/internal/model"
)

type CourtRepositoryIface interface {
	Create(ctx context.Context, court *model.Court) error
	FindByID(ctx context.Context, orgID, id uuid.UUID) (*model.Court, error)
	FindAll(ctx context.Context, orgID uuid.UUID, includeInactive bool) ([]model.Court, error)
	Update(ctx context.Context, court *model.Court) error
	Deactivate(ctx context.Context, orgID, id uuid.UUID) error
}

type CourtRepository struct {
	db *gorm.DB
}

func NewCourtRepository(db *gorm.DB) *CourtRepository {
	return &CourtRepository{db: db}
}

func (r *CourtRepository) Create(ctx context.Context, court *model.Court) error {
	if err := r.db.WithContext(ctx).Create(court).Error; err != nil {
		return fmt.Errorf("failed to create court: %w", translatePgError(err))
	}
	return nil
}

func (r *CourtRepository) FindByID(ctx context.Context, orgID, id uuid.UUID) (*model.Court, error) {
	var court model.Court
	result := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		First(&court, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCourtNotFound
		}
		return nil, fmt.Errorf("failed to find court: %w", translatePgError(result.Error))
	}
	return &court, nil
}

func (r *CourtRepository) FindAll(ctx context.Context, orgID uuid.UUID, includeInactive bool) ([]model.Court, error) {
	var courts []model.Court
	q := r.db.WithContext(ctx).Where("organization_id = ?", orgID)
	if !includeInactive {
		q = q.Where("is_active = ?", true)
	}
	if err := q.Order("name ASC").Find(&courts).Error; err != nil {
		return nil, fmt.Errorf("failed to list courts: %w", translatePgError(err))
	}
	return courts, nil
}

func (r *CourtRepository) Update(ctx context.Context, court *model.Court) error {
	result := r.db.WithContext(ctx).
		Model(&model.Court{}).
		Where("id = ? AND organization_id = ?", court.ID, court.OrganizationID).
		Select("name", "description", "sport_type", "image_url", "is_active", "default_price", "premium_price").
		Updates(court)
	if result.Error != nil {
		return fmt.Errorf("failed to update court: %w", translatePgError(result.Error))
	}
	if result.RowsAffected == 0 {
		return domain.ErrCourtNotFound
	}
	return nil
}

// Deactivate soft-deletes; availability rules and bookings stay in place.
func (r *CourtRepository) Deactivate(ctx context.Context, orgID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&model.Court{}).
		Where("id = ? AND organization_id = ?", id, orgID).
		Update("is_active", false)
	if result.Error != nil {
		return fmt.Errorf("failed to deactivate court: %w", translatePgError(result.Error))
	}
	if result.RowsAffected == 0 {
		return domain.ErrCourtNotFound
	}
	return nil
}
