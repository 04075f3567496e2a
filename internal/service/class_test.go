package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/arenalabs/courtbook/internal/domain"
	"github.com/arenalabs/courtbook/internal/mocks"
	"github.com/arenalabs/courtbook/internal/model"
	"github.com/arenalabs/courtbook/internal/service"
)

type classMocks struct {
	classes  *mocks.MockClassRepositoryIface
	courts   *mocks.MockCourtRepositoryIface
	users    *mocks.MockUserRepositoryIface
	bookings *mocks.MockBookingRepositoryIface
	invoices *mocks.MockInvoiceRepositoryIface
}

func newClassMocks(ctrl *gomock.Controller) classMocks {
	return classMocks{
		classes:  mocks.NewMockClassRepositoryIface(ctrl),
		courts:   mocks.NewMockCourtRepositoryIface(ctrl),
		users:    mocks.NewMockUserRepositoryIface(ctrl),
		bookings: mocks.NewMockBookingRepositoryIface(ctrl),
		invoices: mocks.NewMockInvoiceRepositoryIface(ctrl),
	}
}

func (m classMocks) service() *service.ClassService {
	return service.NewClassService(m.classes, m.courts, m.users, m.bookings, m.invoices, farClock())
}

func TestClassCreateGeneratesBookings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	courtID := uuid.New()
	teacherID := uuid.New()
	court := &model.Court{ID: courtID, OrganizationID: orgID, IsActive: true}
	teacher := &model.User{ID: teacherID, OrganizationID: orgID, Role: model.RoleTeacher}

	// Four Mondays: June 2, 9, 16, 23 of 2025.
	input := service.CreateClassInput{
		Name:      "Beginners Tennis",
		CourtID:   courtID,
		TeacherID: teacherID,
		DayOfWeek: 1,
		StartTime: "18:00",
		EndTime:   "19:00",
		StartDate: "2025-06-02",
		EndDate:   "2025-06-23",
	}

	t.Run("books every matching weekday in the range", func(t *testing.T) {
		m := newClassMocks(ctrl)

		m.courts.EXPECT().FindByID(gomock.Any(), orgID, courtID).Return(court, nil)
		m.users.EXPECT().FindByID(gomock.Any(), orgID, teacherID).Return(teacher, nil)
		m.classes.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c *model.Class) error {
				c.ID = uuid.New()
				return nil
			})

		m.bookings.EXPECT().
			FindActiveBySlot(gomock.Any(), orgID, courtID, gomock.Any(), "18:00").
			Return(nil, domain.ErrBookingNotFound).
			Times(4)

		var bookedDates []string
		m.bookings.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, b *model.Booking) error {
				assert.Equal(t, teacherID, b.UserID)
				assert.Equal(t, model.BookingConfirmed, b.Status)
				assert.Equal(t, "Class: Beginners Tennis", b.Notes)
				assert.Equal(t, "19:00", b.EndTime)
				bookedDates = append(bookedDates, b.Date.Format("2006-01-02"))
				return nil
			}).
			Times(4)

		m.classes.EXPECT().
			FindByID(gomock.Any(), orgID, gomock.Any()).
			Return(&model.Class{Name: "Beginners Tennis"}, nil)

		_, err := m.service().Create(context.Background(), orgID, input)

		require.NoError(t, err)
		assert.Equal(t, []string{"2025-06-02", "2025-06-09", "2025-06-16", "2025-06-23"}, bookedDates)
	})

	t.Run("occupied sessions are skipped, the rest still book", func(t *testing.T) {
		m := newClassMocks(ctrl)

		m.courts.EXPECT().FindByID(gomock.Any(), orgID, courtID).Return(court, nil)
		m.users.EXPECT().FindByID(gomock.Any(), orgID, teacherID).Return(teacher, nil)
		m.classes.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c *model.Class) error {
				c.ID = uuid.New()
				return nil
			})

		june9 := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)
		m.bookings.EXPECT().
			FindActiveBySlot(gomock.Any(), orgID, courtID, gomock.Any(), "18:00").
			DoAndReturn(func(_ context.Context, _, _ uuid.UUID, d time.Time, _ string) (*model.Booking, error) {
				if d.Equal(june9) {
					return &model.Booking{ID: uuid.New()}, nil
				}
				return nil, domain.ErrBookingNotFound
			}).
			Times(4)
		m.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(3)

		m.classes.EXPECT().
			FindByID(gomock.Any(), orgID, gomock.Any()).
			Return(&model.Class{}, nil)

		_, err := m.service().Create(context.Background(), orgID, input)

		require.NoError(t, err)
	})

	t.Run("a failed session booking does not abort the walk", func(t *testing.T) {
		m := newClassMocks(ctrl)

		m.courts.EXPECT().FindByID(gomock.Any(), orgID, courtID).Return(court, nil)
		m.users.EXPECT().FindByID(gomock.Any(), orgID, teacherID).Return(teacher, nil)
		m.classes.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c *model.Class) error {
				c.ID = uuid.New()
				return nil
			})

		m.bookings.EXPECT().
			FindActiveBySlot(gomock.Any(), orgID, courtID, gomock.Any(), "18:00").
			Return(nil, domain.ErrBookingNotFound).
			Times(4)

		calls := 0
		m.bookings.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *model.Booking) error {
				calls++
				if calls == 2 {
					return errors.New("connection reset")
				}
				return nil
			}).
			Times(4)

		m.classes.EXPECT().
			FindByID(gomock.Any(), orgID, gomock.Any()).
			Return(&model.Class{}, nil)

		_, err := m.service().Create(context.Background(), orgID, input)

		require.NoError(t, err)
		assert.Equal(t, 4, calls)
	})

	t.Run("inactive court rejects the class", func(t *testing.T) {
		m := newClassMocks(ctrl)

		m.courts.EXPECT().
			FindByID(gomock.Any(), orgID, courtID).
			Return(&model.Court{ID: courtID, IsActive: false}, nil)

		_, err := m.service().Create(context.Background(), orgID, input)

		assert.ErrorIs(t, err, domain.ErrCourtInactive)
	})

	t.Run("unknown teacher rejects the class", func(t *testing.T) {
		m := newClassMocks(ctrl)

		m.courts.EXPECT().FindByID(gomock.Any(), orgID, courtID).Return(court, nil)
		m.users.EXPECT().
			FindByID(gomock.Any(), orgID, teacherID).
			Return(nil, domain.ErrUserNotFound)

		_, err := m.service().Create(context.Background(), orgID, input)

		assert.ErrorIs(t, err, domain.ErrTeacherNotFound)
	})
}

func TestClassCreateOpenEndedRunsOneYear(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	courtID := uuid.New()
	teacherID := uuid.New()
	court := &model.Court{ID: courtID, OrganizationID: orgID, IsActive: true}
	teacher := &model.User{ID: teacherID, OrganizationID: orgID}

	m := newClassMocks(ctrl)

	m.courts.EXPECT().FindByID(gomock.Any(), orgID, courtID).Return(court, nil)
	m.users.EXPECT().FindByID(gomock.Any(), orgID, teacherID).Return(teacher, nil)
	m.classes.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *model.Class) error {
			c.ID = uuid.New()
			return nil
		})

	sessions := 0
	m.bookings.EXPECT().
		FindActiveBySlot(gomock.Any(), orgID, courtID, gomock.Any(), "07:00").
		Return(nil, domain.ErrBookingNotFound).
		AnyTimes()
	m.bookings.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *model.Booking) error {
			sessions++
			return nil
		}).
		AnyTimes()

	m.classes.EXPECT().
		FindByID(gomock.Any(), orgID, gomock.Any()).
		Return(&model.Class{}, nil)

	_, err := m.service().Create(context.Background(), orgID, service.CreateClassInput{
		Name:      "Morning Drills",
		CourtID:   courtID,
		TeacherID: teacherID,
		DayOfWeek: 3,
		StartTime: "07:00",
		EndTime:   "08:00",
		StartDate: "2025-06-04",
	})

	require.NoError(t, err)
	// One Wednesday per week for a year, inclusive of both endpoints.
	assert.Equal(t, 53, sessions)
}

func TestClassEnrollment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	classID := uuid.New()
	studentID := uuid.New()
	class := &model.Class{
		ID:             classID,
		OrganizationID: orgID,
		Name:           "Beginners Tennis",
		MonthlyPrice:   250,
	}
	student := &model.User{ID: studentID, OrganizationID: orgID}

	t.Run("enrolls and invoices for the first of next month", func(t *testing.T) {
		m := newClassMocks(ctrl)

		m.classes.EXPECT().FindByID(gomock.Any(), orgID, classID).Return(class, nil)
		m.users.EXPECT().FindByID(gomock.Any(), orgID, studentID).Return(student, nil)
		m.classes.EXPECT().
			FindActiveEnrollment(gomock.Any(), classID, studentID).
			Return(nil, domain.ErrStudentNotFound)
		m.classes.EXPECT().CreateEnrollment(gomock.Any(), gomock.Any()).Return(nil)
		m.invoices.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, inv *model.Invoice) error {
				assert.Equal(t, 250.0, inv.Amount)
				assert.Equal(t, studentID, inv.UserID)
				require.NotNil(t, inv.ClassID)
				assert.Equal(t, classID, *inv.ClassID)
				// farClock pins local time in January 2020.
				assert.Equal(t, time.Date(2020, 2, 1, 0, 0, 0, 0, time.UTC), inv.DueDate)
				assert.Equal(t, model.InvoicePending, inv.Status)
				return nil
			})
		m.classes.EXPECT().FindByID(gomock.Any(), orgID, classID).Return(class, nil)

		_, err := m.service().AddStudent(context.Background(), orgID, classID, studentID)

		require.NoError(t, err)
	})

	t.Run("a failed invoice does not undo the enrollment", func(t *testing.T) {
		m := newClassMocks(ctrl)

		m.classes.EXPECT().FindByID(gomock.Any(), orgID, classID).Return(class, nil)
		m.users.EXPECT().FindByID(gomock.Any(), orgID, studentID).Return(student, nil)
		m.classes.EXPECT().
			FindActiveEnrollment(gomock.Any(), classID, studentID).
			Return(nil, domain.ErrStudentNotFound)
		m.classes.EXPECT().CreateEnrollment(gomock.Any(), gomock.Any()).Return(nil)
		m.invoices.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(errors.New("connection reset"))
		m.classes.EXPECT().FindByID(gomock.Any(), orgID, classID).Return(class, nil)

		_, err := m.service().AddStudent(context.Background(), orgID, classID, studentID)

		assert.NoError(t, err)
	})

	t.Run("double enrollment is rejected", func(t *testing.T) {
		m := newClassMocks(ctrl)

		m.classes.EXPECT().FindByID(gomock.Any(), orgID, classID).Return(class, nil)
		m.users.EXPECT().FindByID(gomock.Any(), orgID, studentID).Return(student, nil)
		m.classes.EXPECT().
			FindActiveEnrollment(gomock.Any(), classID, studentID).
			Return(&model.ClassStudent{ID: uuid.New()}, nil)

		_, err := m.service().AddStudent(context.Background(), orgID, classID, studentID)

		assert.ErrorIs(t, err, domain.ErrAlreadyEnrolled)
	})

	t.Run("free classes skip the invoice", func(t *testing.T) {
		freeClass := &model.Class{ID: classID, OrganizationID: orgID, Name: "Open Play"}

		m := newClassMocks(ctrl)

		m.classes.EXPECT().FindByID(gomock.Any(), orgID, classID).Return(freeClass, nil)
		m.users.EXPECT().FindByID(gomock.Any(), orgID, studentID).Return(student, nil)
		m.classes.EXPECT().
			FindActiveEnrollment(gomock.Any(), classID, studentID).
			Return(nil, domain.ErrStudentNotFound)
		m.classes.EXPECT().CreateEnrollment(gomock.Any(), gomock.Any()).Return(nil)
		m.classes.EXPECT().FindByID(gomock.Any(), orgID, classID).Return(freeClass, nil)

		_, err := m.service().AddStudent(context.Background(), orgID, classID, studentID)

		assert.NoError(t, err)
	})

	t.Run("removal closes the active enrollment", func(t *testing.T) {
		m := newClassMocks(ctrl)

		m.classes.EXPECT().FindByID(gomock.Any(), orgID, classID).Return(class, nil)
		m.classes.EXPECT().
			FindActiveEnrollment(gomock.Any(), classID, studentID).
			Return(&model.ClassStudent{ID: uuid.New(), ClassID: classID, StudentID: studentID}, nil)
		m.classes.EXPECT().
			EndEnrollment(gomock.Any(), classID, studentID, gomock.Any()).
			Return(nil)
		m.classes.EXPECT().FindByID(gomock.Any(), orgID, classID).Return(class, nil)

		_, err := m.service().RemoveStudent(context.Background(), orgID, classID, studentID)

		assert.NoError(t, err)
	})
}

func TestClassUpdateDoesNotRegenerate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	classID := uuid.New()

	m := newClassMocks(ctrl)

	stored := &model.Class{
		ID:             classID,
		OrganizationID: orgID,
		Name:           "Beginners Tennis",
		StartTime:      "18:00",
		EndTime:        "19:00",
	}
	m.classes.EXPECT().FindByID(gomock.Any(), orgID, classID).Return(stored, nil)
	m.classes.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
	// No booking expectations: schedule edits leave existing sessions alone.

	newStart := "19:00"
	updated, err := m.service().Update(context.Background(), orgID, classID, service.UpdateClassInput{
		StartTime: &newStart,
	})

	require.NoError(t, err)
	assert.Equal(t, "19:00", updated.StartTime)
}
