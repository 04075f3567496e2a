// internal/service/class.go
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
	"github.com/arenalabs/courtbook/internal/model"
	"github.com/arenalabs/courtbook/internal/repository"
	"github.com/arenalabs/courtbook/internal/timeslot"
)

// ClassService manages recurring classes and materializes their sessions
// as bookings on the class court.
type ClassService struct {
	classes  repository.ClassRepositoryIface
	courts   repository.CourtRepositoryIface
	users    repository.UserRepositoryIface
	bookings repository.BookingRepositoryIface
	invoices repository.InvoiceRepositoryIface
	clock    timeslot.Clock
	validate *validator.Validate
}

func NewClassService(
	classes repository.ClassRepositoryIface,
	courts repository.CourtRepositoryIface,
	users repository.UserRepositoryIface,
	bookings repository.BookingRepositoryIface,
	invoices repository.InvoiceRepositoryIface,
	clock timeslot.Clock,
) *ClassService {
	return &ClassService{
		classes:  classes,
		courts:   courts,
		users:    users,
		bookings: bookings,
		invoices: invoices,
		clock:    clock,
		validate: validator.New(),
	}
}

type CreateClassInput struct {
	Name         string    `json:"name" validate:"required"`
	Description  string    `json:"description"`
	CourtID      uuid.UUID `json:"courtId" validate:"required"`
	TeacherID    uuid.UUID `json:"teacherId" validate:"required"`
	DayOfWeek    int       `json:"dayOfWeek" validate:"min=0,max=6"`
	StartTime    string    `json:"startTime" validate:"required"`
	EndTime      string    `json:"endTime" validate:"required"`
	StartDate    string    `json:"startDate" validate:"required"`
	EndDate      string    `json:"endDate"`
	MonthlyPrice float64   `json:"monthlyPrice" validate:"min=0"`
	MaxStudents  int       `json:"maxStudents" validate:"min=0"`
}

// Create persists the class and immediately generates its session bookings.
// Generation failures for individual dates are logged, never fatal.
func (s *ClassService) Create(ctx context.Context, orgID uuid.UUID, input CreateClassInput) (*model.Class, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}

	court, err := s.courts.FindByID(ctx, orgID, input.CourtID)
	if err != nil {
		return nil, err
	}
	if !court.IsActive {
		return nil, domain.ErrCourtInactive
	}

	teacher, err := s.users.FindByID(ctx, orgID, input.TeacherID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrTeacherNotFound
		}
		return nil, err
	}

	startDate, err := timeslot.ParseDate(input.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: startDate: %s", domain.ErrInvalidInput, err)
	}
	var endDate *time.Time
	if input.EndDate != "" {
		d, err := timeslot.ParseDate(input.EndDate)
		if err != nil {
			return nil, fmt.Errorf("%w: endDate: %s", domain.ErrInvalidInput, err)
		}
		if d.Before(startDate) {
			return nil, fmt.Errorf("%w: endDate precedes startDate", domain.ErrInvalidInput)
		}
		endDate = &d
	}
	if _, _, err := timeslot.ParseClock(input.StartTime); err != nil {
		return nil, fmt.Errorf("%w: startTime: %s", domain.ErrInvalidInput, err)
	}
	if _, _, err := timeslot.ParseClock(input.EndTime); err != nil {
		return nil, fmt.Errorf("%w: endTime: %s", domain.ErrInvalidInput, err)
	}

	class := &model.Class{
		OrganizationID: orgID,
		Name:           input.Name,
		Description:    input.Description,
		CourtID:        input.CourtID,
		TeacherID:      teacher.ID,
		DayOfWeek:      input.DayOfWeek,
		StartTime:      input.StartTime,
		EndTime:        input.EndTime,
		StartDate:      startDate,
		EndDate:        endDate,
		MonthlyPrice:   input.MonthlyPrice,
		MaxStudents:    input.MaxStudents,
		IsActive:       true,
	}
	if err := s.classes.Create(ctx, class); err != nil {
		return nil, err
	}

	created := s.generateBookings(ctx, class)
	slog.Info("class sessions generated",
		"class_id", class.ID, "bookings", created)

	return s.classes.FindByID(ctx, orgID, class.ID)
}

// generateBookings walks every date from the class start to its end (or one
// year out when open-ended), and books the matching weekdays for the
// teacher. Occupied slots are skipped, so re-running after a partial
// failure only fills the gaps. Returns how many bookings were created.
func (s *ClassService) generateBookings(ctx context.Context, class *model.Class) int {
	until := class.StartDate.AddDate(1, 0, 0)
	if class.EndDate != nil {
		until = *class.EndDate
	}

	created := 0
	for d := class.StartDate; !d.After(until); d = d.AddDate(0, 0, 1) {
		if timeslot.DayOfWeek(d) != class.DayOfWeek {
			continue
		}

		_, err := s.bookings.FindActiveBySlot(ctx, class.OrganizationID, class.CourtID, d, class.StartTime)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrBookingNotFound) {
			slog.Error("class generator: slot lookup failed",
				"class_id", class.ID, "date", timeslot.FormatDate(d), "error", err)
			continue
		}

		booking := &model.Booking{
			OrganizationID: class.OrganizationID,
			CourtID:        class.CourtID,
			UserID:         class.TeacherID,
			Date:           d,
			StartTime:      class.StartTime,
			EndTime:        class.EndTime,
			Status:         model.BookingConfirmed,
			Notes:          "Class: " + class.Name,
		}
		if err := s.bookings.Create(ctx, booking); err != nil {
			slog.Error("class generator: booking failed",
				"class_id", class.ID, "date", timeslot.FormatDate(d), "error", err)
			continue
		}
		created++
	}
	return created
}

func (s *ClassService) FindAll(ctx context.Context, orgID uuid.UUID, includeInactive bool) ([]model.Class, error) {
	return s.classes.FindAll(ctx, orgID, includeInactive)
}

func (s *ClassService) FindByID(ctx context.Context, orgID, id uuid.UUID) (*model.Class, error) {
	return s.classes.FindByID(ctx, orgID, id)
}

type UpdateClassInput struct {
	Name         *string  `json:"name"`
	Description  *string  `json:"description"`
	StartTime    *string  `json:"startTime"`
	EndTime      *string  `json:"endTime"`
	MonthlyPrice *float64 `json:"monthlyPrice"`
	MaxStudents  *int     `json:"maxStudents"`
	IsActive     *bool    `json:"isActive"`
}

// Update edits class metadata. Existing session bookings are left as they
// are; schedule changes apply to future regenerations only.
func (s *ClassService) Update(ctx context.Context, orgID, id uuid.UUID, input UpdateClassInput) (*model.Class, error) {
	class, err := s.classes.FindByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		class.Name = *input.Name
	}
	if input.Description != nil {
		class.Description = *input.Description
	}
	if input.StartTime != nil {
		if _, _, err := timeslot.ParseClock(*input.StartTime); err != nil {
			return nil, fmt.Errorf("%w: startTime: %s", domain.ErrInvalidInput, err)
		}
		class.StartTime = *input.StartTime
	}
	if input.EndTime != nil {
		if _, _, err := timeslot.ParseClock(*input.EndTime); err != nil {
			return nil, fmt.Errorf("%w: endTime: %s", domain.ErrInvalidInput, err)
		}
		class.EndTime = *input.EndTime
	}
	if input.MonthlyPrice != nil {
		class.MonthlyPrice = *input.MonthlyPrice
	}
	if input.MaxStudents != nil {
		class.MaxStudents = *input.MaxStudents
	}
	if input.IsActive != nil {
		class.IsActive = *input.IsActive
	}

	if err := s.classes.Update(ctx, class); err != nil {
		return nil, err
	}
	return class, nil
}

func (s *ClassService) Deactivate(ctx context.Context, orgID, id uuid.UUID) error {
	return s.classes.Deactivate(ctx, orgID, id)
}

// AddStudent enrolls a student and raises the first monthly invoice, due on
// the first of the next month. Invoice failures are logged and tolerated;
// the enrollment stands.
func (s *ClassService) AddStudent(ctx context.Context, orgID, classID, studentID uuid.UUID) (*model.Class, error) {
	class, err := s.classes.FindByID(ctx, orgID, classID)
	if err != nil {
		return nil, err
	}

	student, err := s.users.FindByID(ctx, orgID, studentID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrStudentNotFound
		}
		return nil, err
	}

	_, err = s.classes.FindActiveEnrollment(ctx, classID, studentID)
	if err == nil {
		return nil, domain.ErrAlreadyEnrolled
	}
	if !errors.Is(err, domain.ErrStudentNotFound) {
		return nil, err
	}

	enrollment := &model.ClassStudent{
		ClassID:   classID,
		StudentID: student.ID,
		JoinedAt:  s.clock.UTCNow(),
	}
	if err := s.classes.CreateEnrollment(ctx, enrollment); err != nil {
		return nil, err
	}

	if class.MonthlyPrice > 0 {
		now := s.clock.UTCNow()
		due := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
		invoice := &model.Invoice{
			OrganizationID: orgID,
			UserID:         student.ID,
			ClassID:        &classID,
			Amount:         class.MonthlyPrice,
			Description:    "Monthly fee: " + class.Name,
			DueDate:        due,
			Status:         model.InvoicePending,
		}
		if err := s.invoices.Create(ctx, invoice); err != nil {
			slog.Error("enrollment invoice failed",
				"class_id", classID, "student_id", studentID, "error", err)
		}
	}

	return s.classes.FindByID(ctx, orgID, classID)
}

// RemoveStudent closes the active enrollment; history is kept via left_at.
func (s *ClassService) RemoveStudent(ctx context.Context, orgID, classID, studentID uuid.UUID) (*model.Class, error) {
	if _, err := s.classes.FindByID(ctx, orgID, classID); err != nil {
		return nil, err
	}

	if _, err := s.classes.FindActiveEnrollment(ctx, classID, studentID); err != nil {
		return nil, err
	}
	if err := s.classes.EndEnrollment(ctx, classID, studentID, s.clock.UTCNow()); err != nil {
		return nil, err
	}

	return s.classes.FindByID(ctx, orgID, classID)
}
