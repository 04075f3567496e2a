// internal/service/booking.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/arenalabs/courtbook/internal/domain"
	"github.com/arenalabs/courtbook/internal/messaging"
	"github.com/arenalabs/courtbook/internal/model"
	"github.com/arenalabs/courtbook/internal/repository"
	"github.com/arenalabs/courtbook/internal/timeslot"
)

// Resolver is the availability capability the booking flow consumes;
// implemented by AvailabilityService.
type Resolver interface {
	Resolve(ctx context.Context, orgID, courtID uuid.UUID, date time.Time) (Resolution, error)
	IsAvailable(ctx context.Context, orgID, courtID uuid.UUID, date time.Time, slot string) (bool, error)
	IsPremium(ctx context.Context, orgID, courtID uuid.UUID, date time.Time, slot string) (bool, error)
}

//go:generate mockgen -source=./booking.go -destination=../mocks/mock_resolver.go -package=mocks -mock_names=Resolver=MockResolver Resolver

// BookingService is the reservation ledger: it guards slot conflicts,
// persists bookings, prices them and produces the per-date availability
// view.
type BookingService struct {
	bookings repository.BookingRepositoryIface
	courts   repository.CourtRepositoryIface
	users    repository.UserRepositoryIface
	resolver Resolver
	notifier messaging.Notifier
	mailer   Mailer
	clock    timeslot.Clock
	validate *validator.Validate
}

// Mailer is the optional email side of booking confirmations.
type Mailer interface {
	Send(to, subject, body string) bool
}

func NewBookingService(
	bookings repository.BookingRepositoryIface,
	courts repository.CourtRepositoryIface,
	users repository.UserRepositoryIface,
	resolver Resolver,
	notifier messaging.Notifier,
	clock timeslot.Clock,
) *BookingService {
	return &BookingService{
		bookings: bookings,
		courts:   courts,
		users:    users,
		resolver: resolver,
		notifier: notifier,
		clock:    clock,
		validate: validator.New(),
	}
}

// WithMailer enables email confirmations alongside the WhatsApp text.
func (s *BookingService) WithMailer(mailer Mailer) *BookingService {
	s.mailer = mailer
	return s
}

// CanBook decides whether a booking may be created for the slot. The
// check-then-act pair here is not atomic under concurrency; the partial
// unique index behind BookingRepository.Create is the invariant that holds
// regardless, and its violation surfaces as the same ErrSlotTaken.
func (s *BookingService) CanBook(ctx context.Context, orgID, courtID uuid.UUID, date time.Time, startTime string) error {
	available, err := s.resolver.IsAvailable(ctx, orgID, courtID, date, startTime)
	if err != nil {
		return err
	}
	if !available {
		return domain.ErrSlotUnavailable
	}

	_, err = s.bookings.FindActiveBySlot(ctx, orgID, courtID, date, startTime)
	if err == nil {
		return domain.ErrSlotTaken
	}
	if !errors.Is(err, domain.ErrBookingNotFound) {
		return err
	}
	return nil
}

type CreateBookingInput struct {
	CourtID   uuid.UUID `json:"courtId" validate:"required"`
	Date      string    `json:"date" validate:"required"`
	StartTime string    `json:"startTime" validate:"required"`
	Notes     string    `json:"notes"`
}

// Create validates the slot, runs the conflict guard, computes the end time
// and persists a PENDING booking. Confirmation messages go out best-effort
// after the write.
func (s *BookingService) Create(ctx context.Context, orgID, userID uuid.UUID, input CreateBookingInput) (*model.Booking, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}

	date, err := timeslot.ParseDate(input.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}
	endTime, err := timeslot.AddHour(input.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}

	if err := s.CanBook(ctx, orgID, input.CourtID, date, input.StartTime); err != nil {
		return nil, err
	}

	booking := &model.Booking{
		OrganizationID: orgID,
		CourtID:        input.CourtID,
		UserID:         userID,
		Date:           date,
		StartTime:      input.StartTime,
		EndTime:        endTime,
		Status:         model.BookingPending,
		Notes:          input.Notes,
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}

	s.sendConfirmation(ctx, orgID, booking)
	return booking, nil
}

// sendConfirmation is fire-and-forget; failures never affect the booking.
func (s *BookingService) sendConfirmation(ctx context.Context, orgID uuid.UUID, booking *model.Booking) {
	if s.notifier == nil && s.mailer == nil {
		return
	}
	user, err := s.users.FindByID(ctx, orgID, booking.UserID)
	if err != nil {
		return
	}
	court, err := s.courts.FindByID(ctx, orgID, booking.CourtID)
	if err != nil {
		return
	}
	text := fmt.Sprintf("Your booking is confirmed: %s on %s at %s.",
		court.Name, timeslot.FormatDate(booking.Date), booking.StartTime)

	if s.notifier != nil && user.Phone != "" {
		if !s.notifier.Notify(ctx, user.Phone, text) {
			slog.Warn("booking confirmation not delivered", "booking_id", booking.ID)
		}
	}
	if s.mailer != nil && user.Email != "" {
		if !s.mailer.Send(user.Email, "Booking confirmed", text) {
			slog.Warn("booking confirmation email not delivered", "booking_id", booking.ID)
		}
	}
}

// BookedSlot is one occupied slot in the availability view.
type BookedSlot struct {
	Time      string              `json:"time"`
	BookingID uuid.UUID           `json:"bookingId"`
	UserID    uuid.UUID           `json:"userId"`
	UserName  string              `json:"userName,omitempty"`
	Status    model.BookingStatus `json:"status"`
}

// AvailabilityView combines configured slots with the day's bookings. A
// slot may appear in both lists; the caller renders booked over available.
type AvailabilityView struct {
	AvailableSlots []string     `json:"availableSlots"`
	PremiumSlots   []string     `json:"premiumSlots"`
	BookedSlots    []BookedSlot `json:"bookedSlots"`
}

// FindAvailability resolves the bookable slots for the date and overlays
// the existing non-cancelled bookings. Past-slot filtering follows the
// resolver's today rule.
func (s *BookingService) FindAvailability(ctx context.Context, orgID, courtID uuid.UUID, dateStr string) (*AvailabilityView, error) {
	date, err := timeslot.ParseDate(dateStr)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}

	resolution, err := s.resolver.Resolve(ctx, orgID, courtID, date)
	if err != nil {
		return nil, err
	}

	bookings, err := s.bookings.ListActiveByCourtAndDate(ctx, orgID, courtID, date)
	if err != nil {
		return nil, err
	}

	view := &AvailabilityView{
		AvailableSlots: resolution.AvailableSlots,
		PremiumSlots:   resolution.PremiumSlots,
		BookedSlots:    []BookedSlot{},
	}
	for _, b := range bookings {
		slot := BookedSlot{
			Time:      b.StartTime,
			BookingID: b.ID,
			UserID:    b.UserID,
			Status:    b.Status,
		}
		if b.User != nil {
			slot.UserName = b.User.Name
		}
		view.BookedSlots = append(view.BookedSlots, slot)
	}
	return view, nil
}

// PriceFor selects the slot price for a booking: the court's premium price
// when the effective rule is premium and the premium price is configured,
// else the default price when configured, else nil (no price known).
func (s *BookingService) PriceFor(ctx context.Context, orgID uuid.UUID, booking *model.Booking) (*float64, error) {
	court, err := s.courts.FindByID(ctx, orgID, booking.CourtID)
	if err != nil {
		return nil, err
	}

	premium, err := s.resolver.IsPremium(ctx, orgID, booking.CourtID, booking.Date, booking.StartTime)
	if err != nil {
		return nil, err
	}

	if premium && court.PremiumPrice != nil {
		return court.PremiumPrice, nil
	}
	return court.DefaultPrice, nil
}

func (s *BookingService) FindByID(ctx context.Context, orgID, id uuid.UUID) (*model.Booking, error) {
	return s.bookings.FindByID(ctx, orgID, id)
}

type UpdateBookingInput struct {
	Status *model.BookingStatus `json:"status"`
	Notes  *string              `json:"notes"`
}

var validStatuses = map[model.BookingStatus]struct{}{
	model.BookingPending:   {},
	model.BookingConfirmed: {},
	model.BookingCancelled: {},
	model.BookingCompleted: {},
}

// Update changes status and/or notes; all other booking fields are
// immutable after creation.
func (s *BookingService) Update(ctx context.Context, orgID, id uuid.UUID, input UpdateBookingInput) (*model.Booking, error) {
	booking, err := s.bookings.FindByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}

	if input.Status != nil {
		if _, ok := validStatuses[*input.Status]; !ok {
			return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, *input.Status)
		}
		booking.Status = *input.Status
	}
	if input.Notes != nil {
		booking.Notes = *input.Notes
	}

	if err := s.bookings.Update(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// Cancel releases the slot; cancelled bookings no longer block new ones.
func (s *BookingService) Cancel(ctx context.Context, orgID, id uuid.UUID) (*model.Booking, error) {
	cancelled := model.BookingCancelled
	return s.Update(ctx, orgID, id, UpdateBookingInput{Status: &cancelled})
}

func (s *BookingService) ListMine(ctx context.Context, orgID, userID uuid.UUID) ([]model.Booking, error) {
	return s.bookings.ListByUser(ctx, orgID, userID)
}

func (s *BookingService) ListAll(ctx context.Context, orgID uuid.UUID, filter repository.BookingFilter) ([]model.Booking, error) {
	return s.bookings.ListAll(ctx, orgID, filter)
}
