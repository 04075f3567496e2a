// internal/repository/availability.go
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/arenalabs/courtbook/internal/model"
)

type AvailabilityRepositoryIface interface {
	// ListForCourt returns every rule on both axes.
	ListForCourt(ctx context.Context, courtID uuid.UUID) ([]model.AvailabilityRule, error)
	// ListRecurring returns all weekday rules (SpecificDate null).
	ListRecurring(ctx context.Context, courtID uuid.UUID) ([]model.AvailabilityRule, error)
	// ListByWeekday returns the weekday rules for one day.
	ListByWeekday(ctx context.Context, courtID uuid.UUID, dayOfWeek int) ([]model.AvailabilityRule, error)
	// ListOverrides returns the override rules for one exact date.
	ListOverrides(ctx context.Context, courtID uuid.UUID, date time.Time) ([]model.AvailabilityRule, error)

	// ReplaceRecurring atomically deletes every weekday rule for the court
	// and inserts the given set. Duplicate (day, slot) pairs are dropped.
	ReplaceRecurring(ctx context.Context, courtID uuid.UUID, rules []model.AvailabilityRule) error
	// ReplaceOverrides does the same on the override axis for one date.
	ReplaceOverrides(ctx context.Context, courtID uuid.UUID, date time.Time, rules []model.AvailabilityRule) error
	// ReplaceAll wipes both axes and inserts the given set (used by copy).
	ReplaceAll(ctx context.Context, courtID uuid.UUID, rules []model.AvailabilityRule) error

	AddRule(ctx context.Context, rule *model.AvailabilityRule) error
	RemoveRecurringSlot(ctx context.Context, courtID uuid.UUID, dayOfWeek int, slot string) error

	// SetPremiumRecurring/Override flip the premium flag without touching
	// rule membership.
	SetPremiumRecurring(ctx context.Context, courtID uuid.UUID, dayOfWeek int, slot string, premium bool) error
	SetPremiumOverride(ctx context.Context, courtID uuid.UUID, date time.Time, slot string, premium bool) error

	// FutureOverrideDates lists the distinct override dates >= from.
	FutureOverrideDates(ctx context.Context, courtID uuid.UUID, from time.Time) ([]time.Time, error)
}

type AvailabilityRepository struct {
	db *gorm.DB
}

func NewAvailabilityRepository(db *gorm.DB) *AvailabilityRepository {
	return &AvailabilityRepository{db: db}
}

func (r *AvailabilityRepository) ListForCourt(ctx context.Context, courtID uuid.UUID) ([]model.AvailabilityRule, error) {
	var rules []model.AvailabilityRule
	err := r.db.WithContext(ctx).
		Where("court_id = ?", courtID).
		Order("day_of_week ASC, specific_date ASC, time_slot ASC").
		Find(&rules).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list availability: %w", translatePgError(err))
	}
	return rules, nil
}

func (r *AvailabilityRepository) ListRecurring(ctx context.Context, courtID uuid.UUID) ([]model.AvailabilityRule, error) {
	var rules []model.AvailabilityRule
	err := r.db.WithContext(ctx).
		Where("court_id = ? AND specific_date IS NULL", courtID).
		Order("day_of_week ASC, time_slot ASC").
		Find(&rules).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list recurring availability: %w", translatePgError(err))
	}
	return rules, nil
}

func (r *AvailabilityRepository) ListByWeekday(ctx context.Context, courtID uuid.UUID, dayOfWeek int) ([]model.AvailabilityRule, error) {
	var rules []model.AvailabilityRule
	err := r.db.WithContext(ctx).
		Where("court_id = ? AND day_of_week = ? AND specific_date IS NULL", courtID, dayOfWeek).
		Order("time_slot ASC").
		Find(&rules).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list weekday availability: %w", translatePgError(err))
	}
	return rules, nil
}

func (r *AvailabilityRepository) ListOverrides(ctx context.Context, courtID uuid.UUID, date time.Time) ([]model.AvailabilityRule, error) {
	var rules []model.AvailabilityRule
	err := r.db.WithContext(ctx).
		Where("court_id = ? AND specific_date = ?", courtID, date.UTC()).
		Order("time_slot ASC").
		Find(&rules).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list override availability: %w", translatePgError(err))
	}
	return rules, nil
}

func (r *AvailabilityRepository) ReplaceRecurring(ctx context.Context, courtID uuid.UUID, rules []model.AvailabilityRule) error {
	return r.replace(ctx, rules, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("court_id = ? AND specific_date IS NULL", courtID)
	})
}

func (r *AvailabilityRepository) ReplaceOverrides(ctx context.Context, courtID uuid.UUID, date time.Time, rules []model.AvailabilityRule) error {
	return r.replace(ctx, rules, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("court_id = ? AND specific_date = ?", courtID, date.UTC())
	})
}

func (r *AvailabilityRepository) ReplaceAll(ctx context.Context, courtID uuid.UUID, rules []model.AvailabilityRule) error {
	return r.replace(ctx, rules, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("court_id = ?", courtID)
	})
}

// replace runs the delete-then-insert swap in one transaction. The insert
// skips conflicting rows (ON CONFLICT DO NOTHING) so duplicate slot pairs
// submitted together collapse idempotently instead of failing the batch.
func (r *AvailabilityRepository) replace(ctx context.Context, rules []model.AvailabilityRule, scope func(*gorm.DB) *gorm.DB) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := scope(tx).Delete(&model.AvailabilityRule{}).Error; err != nil {
			return err
		}
		if len(rules) == 0 {
			return nil
		}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&rules).Error
	})
	if err != nil {
		return fmt.Errorf("failed to replace availability: %w", translatePgError(err))
	}
	return nil
}

func (r *AvailabilityRepository) AddRule(ctx context.Context, rule *model.AvailabilityRule) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(rule).Error
	if err != nil {
		return fmt.Errorf("failed to add availability rule: %w", translatePgError(err))
	}
	return nil
}

func (r *AvailabilityRepository) RemoveRecurringSlot(ctx context.Context, courtID uuid.UUID, dayOfWeek int, slot string) error {
	err := r.db.WithContext(ctx).
		Where("court_id = ? AND day_of_week = ? AND time_slot = ? AND specific_date IS NULL", courtID, dayOfWeek, slot).
		Delete(&model.AvailabilityRule{}).Error
	if err != nil {
		return fmt.Errorf("failed to remove availability rule: %w", translatePgError(err))
	}
	return nil
}

func (r *AvailabilityRepository) SetPremiumRecurring(ctx context.Context, courtID uuid.UUID, dayOfWeek int, slot string, premium bool) error {
	err := r.db.WithContext(ctx).
		Model(&model.AvailabilityRule{}).
		Where("court_id = ? AND day_of_week = ? AND time_slot = ? AND specific_date IS NULL", courtID, dayOfWeek, slot).
		Update("is_premium", premium).Error
	if err != nil {
		return fmt.Errorf("failed to set premium flag: %w", translatePgError(err))
	}
	return nil
}

func (r *AvailabilityRepository) SetPremiumOverride(ctx context.Context, courtID uuid.UUID, date time.Time, slot string, premium bool) error {
	err := r.db.WithContext(ctx).
		Model(&model.AvailabilityRule{}).
		Where("court_id = ? AND specific_date = ? AND time_slot = ?", courtID, date.UTC(), slot).
		Update("is_premium", premium).Error
	if err != nil {
		return fmt.Errorf("failed to set premium flag: %w", translatePgError(err))
	}
	return nil
}

func (r *AvailabilityRepository) FutureOverrideDates(ctx context.Context, courtID uuid.UUID, from time.Time) ([]time.Time, error) {
	var dates []time.Time
	err := r.db.WithContext(ctx).
		Model(&model.AvailabilityRule{}).
		Where("court_id = ? AND specific_date >= ?", courtID, from.UTC()).
		Distinct("specific_date").
		Order("specific_date ASC").
		Pluck("specific_date", &dates).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list override dates: %w", translatePgError(err))
	}
	return dates, nil
}
