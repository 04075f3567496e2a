// internal/repository/booking.go
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

// BookingFilter narrows ListAll; zero values mean "no filter".
type BookingFilter struct {
	CourtID uuid.UUID
	UserID  uuid.UUID
	Date    time.Time
	Status  model.BookingStatus
}

type BookingRepositoryIface interface {
	// Create persists the booking. A unique-index violation on the
	// non-cancelled slot tuple surfaces as domain.ErrSlotTaken so races
	// behave exactly like a guard rejection.
	Create(ctx context.Context, booking *model.Booking) error
	FindByID(ctx context.Context, orgID, id uuid.UUID) (*model.Booking, error)
	// FindActiveBySlot returns the non-CANCELLED booking occupying the
	// slot, or domain.ErrBookingNotFound.
	FindActiveBySlot(ctx context.Context, orgID, courtID uuid.UUID, date time.Time, startTime string) (*model.Booking, error)
	// ListActiveByCourtAndDate returns all non-CANCELLED bookings for the
	// court on one date.
	ListActiveByCourtAndDate(ctx context.Context, orgID, courtID uuid.UUID, date time.Time) ([]model.Booking, error)
	ListByUser(ctx context.Context, orgID, userID uuid.UUID) ([]model.Booking, error)
	ListAll(ctx context.Context, orgID uuid.UUID, filter BookingFilter) ([]model.Booking, error)
	Update(ctx context.Context, booking *model.Booking) error
}

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	if err := r.db.WithContext(ctx).Create(booking).Error; err != nil {
		translated := translatePgError(err)
		// The slot index is the only unique constraint on bookings, so any
		// duplicate on insert is a lost slot race.
		if errors.Is(translated, domain.ErrSlotTaken) || errors.Is(translated, domain.ErrDuplicate) {
			return domain.ErrSlotTaken
		}
		return fmt.Errorf("failed to create booking: %w", translated)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, orgID, id uuid.UUID) (*model.Booking, error) {
	var booking model.Booking
	result := r.db.WithContext(ctx).
		Preload("User").
		Preload("Court").
		Where("organization_id = ?", orgID).
		First(&booking, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to find booking: %w", translatePgError(result.Error))
	}
	return &booking, nil
}

func (r *BookingRepository) FindActiveBySlot(ctx context.Context, orgID, courtID uuid.UUID, date time.Time, startTime string) (*model.Booking, error) {
	var booking model.Booking
	result := r.db.WithContext(ctx).
		Where("organization_id = ? AND court_id = ? AND date = ? AND start_time = ? AND status <> ?",
			orgID, courtID, date.UTC(), startTime, model.BookingCancelled).
		First(&booking)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to find booking: %w", translatePgError(result.Error))
	}
	return &booking, nil
}

func (r *BookingRepository) ListActiveByCourtAndDate(ctx context.Context, orgID, courtID uuid.UUID, date time.Time) ([]model.Booking, error) {
	var bookings []model.Booking
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("organization_id = ? AND court_id = ? AND date = ? AND status <> ?",
			orgID, courtID, date.UTC(), model.BookingCancelled).
		Order("start_time ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", translatePgError(err))
	}
	return bookings, nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, orgID, userID uuid.UUID) ([]model.Booking, error) {
	var bookings []model.Booking
	err := r.db.WithContext(ctx).
		Preload("Court").
		Where("organization_id = ? AND user_id = ?", orgID, userID).
		Order("date ASC, start_time ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list user bookings: %w", translatePgError(err))
	}
	return bookings, nil
}

func (r *BookingRepository) ListAll(ctx context.Context, orgID uuid.UUID, filter BookingFilter) ([]model.Booking, error) {
	q := r.db.WithContext(ctx).
		Preload("User").
		Preload("Court").
		Where("organization_id = ?", orgID)

	if filter.CourtID != uuid.Nil {
		q = q.Where("court_id = ?", filter.CourtID)
	}
	if filter.UserID != uuid.Nil {
		q = q.Where("user_id = ?", filter.UserID)
	}
	if !filter.Date.IsZero() {
		q = q.Where("date = ?", filter.Date.UTC())
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var bookings []model.Booking
	if err := q.Order("date ASC, start_time ASC").Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", translatePgError(err))
	}
	return bookings, nil
}

// Update persists status/notes changes; other columns are immutable after
// creation.
func (r *BookingRepository) Update(ctx context.Context, booking *model.Booking) error {
	result := r.db.WithContext(ctx).
		Model(&model.Booking{}).
		Where("id = ? AND organization_id = ?", booking.ID, booking.OrganizationID).
		Select("status", "notes").
		Updates(booking)
	if result.Error != nil {
		return fmt.Errorf("failed to update booking: %w", translatePgError(result.Error))
	}
	if result.RowsAffected == 0 {
		return domain.ErrBookingNotFound
	}
	return nil
}
