package service_test

import (
	"context"
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

func TestBookingCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	courtID := uuid.New()
	userID := uuid.New()
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	input := service.CreateBookingInput{
		CourtID:   courtID,
		Date:      "2025-06-02",
		StartTime: "14:00",
	}

	t.Run("books a free configured slot", func(t *testing.T) {
		bookings := mocks.NewMockBookingRepositoryIface(ctrl)
		courts := mocks.NewMockCourtRepositoryIface(ctrl)
		users := mocks.NewMockUserRepositoryIface(ctrl)
		resolver := mocks.NewMockResolver(ctrl)

		resolver.EXPECT().
			IsAvailable(gomock.Any(), orgID, courtID, date, "14:00").
			Return(true, nil)
		bookings.EXPECT().
			FindActiveBySlot(gomock.Any(), orgID, courtID, date, "14:00").
			Return(nil, domain.ErrBookingNotFound)
		bookings.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, b *model.Booking) error {
				assert.Equal(t, "15:00", b.EndTime)
				assert.Equal(t, model.BookingPending, b.Status)
				assert.Equal(t, userID, b.UserID)
				b.ID = uuid.New()
				return nil
			})

		svc := service.NewBookingService(bookings, courts, users, resolver, nil, farClock())
		booking, err := svc.Create(context.Background(), orgID, userID, input)

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, booking.ID)
	})

	t.Run("rejects a slot outside the configuration", func(t *testing.T) {
		bookings := mocks.NewMockBookingRepositoryIface(ctrl)
		courts := mocks.NewMockCourtRepositoryIface(ctrl)
		users := mocks.NewMockUserRepositoryIface(ctrl)
		resolver := mocks.NewMockResolver(ctrl)

		resolver.EXPECT().
			IsAvailable(gomock.Any(), orgID, courtID, date, "14:00").
			Return(false, nil)

		svc := service.NewBookingService(bookings, courts, users, resolver, nil, farClock())
		_, err := svc.Create(context.Background(), orgID, userID, input)

		assert.ErrorIs(t, err, domain.ErrSlotUnavailable)
	})

	t.Run("rejects a court from another organization", func(t *testing.T) {
		bookings := mocks.NewMockBookingRepositoryIface(ctrl)
		courts := mocks.NewMockCourtRepositoryIface(ctrl)
		users := mocks.NewMockUserRepositoryIface(ctrl)
		resolver := mocks.NewMockResolver(ctrl)

		// The availability check itself refuses a court outside the caller's
		// organization. No slot lookup and no insert may follow.
		resolver.EXPECT().
			IsAvailable(gomock.Any(), orgID, courtID, date, "14:00").
			Return(false, domain.ErrCourtNotFound)

		svc := service.NewBookingService(bookings, courts, users, resolver, nil, farClock())
		_, err := svc.Create(context.Background(), orgID, userID, input)

		assert.ErrorIs(t, err, domain.ErrCourtNotFound)
	})

	t.Run("rejects an occupied slot", func(t *testing.T) {
		bookings := mocks.NewMockBookingRepositoryIface(ctrl)
		courts := mocks.NewMockCourtRepositoryIface(ctrl)
		users := mocks.NewMockUserRepositoryIface(ctrl)
		resolver := mocks.NewMockResolver(ctrl)

		resolver.EXPECT().
			IsAvailable(gomock.Any(), orgID, courtID, date, "14:00").
			Return(true, nil)
		bookings.EXPECT().
			FindActiveBySlot(gomock.Any(), orgID, courtID, date, "14:00").
			Return(&model.Booking{ID: uuid.New(), Status: model.BookingConfirmed}, nil)

		svc := service.NewBookingService(bookings, courts, users, resolver, nil, farClock())
		_, err := svc.Create(context.Background(), orgID, userID, input)

		assert.ErrorIs(t, err, domain.ErrSlotTaken)
	})

	t.Run("surfaces a lost insert race as the same conflict", func(t *testing.T) {
		bookings := mocks.NewMockBookingRepositoryIface(ctrl)
		courts := mocks.NewMockCourtRepositoryIface(ctrl)
		users := mocks.NewMockUserRepositoryIface(ctrl)
		resolver := mocks.NewMockResolver(ctrl)

		resolver.EXPECT().
			IsAvailable(gomock.Any(), orgID, courtID, date, "14:00").
			Return(true, nil)
		bookings.EXPECT().
			FindActiveBySlot(gomock.Any(), orgID, courtID, date, "14:00").
			Return(nil, domain.ErrBookingNotFound)
		bookings.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(domain.ErrSlotTaken)

		svc := service.NewBookingService(bookings, courts, users, resolver, nil, farClock())
		_, err := svc.Create(context.Background(), orgID, userID, input)

		assert.ErrorIs(t, err, domain.ErrSlotTaken)
	})

	t.Run("rejects malformed dates and times", func(t *testing.T) {
		bookings := mocks.NewMockBookingRepositoryIface(ctrl)
		courts := mocks.NewMockCourtRepositoryIface(ctrl)
		users := mocks.NewMockUserRepositoryIface(ctrl)
		resolver := mocks.NewMockResolver(ctrl)

		svc := service.NewBookingService(bookings, courts, users, resolver, nil, farClock())

		_, err := svc.Create(context.Background(), orgID, userID, service.CreateBookingInput{
			CourtID: courtID, Date: "06/02/2025", StartTime: "14:00",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)

		_, err = svc.Create(context.Background(), orgID, userID, service.CreateBookingInput{
			CourtID: courtID, Date: "2025-06-02", StartTime: "25:00",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("midnight wrap keeps the booking on the start date", func(t *testing.T) {
		bookings := mocks.NewMockBookingRepositoryIface(ctrl)
		courts := mocks.NewMockCourtRepositoryIface(ctrl)
		users := mocks.NewMockUserRepositoryIface(ctrl)
		resolver := mocks.NewMockResolver(ctrl)

		resolver.EXPECT().
			IsAvailable(gomock.Any(), orgID, courtID, date, "23:30").
			Return(true, nil)
		bookings.EXPECT().
			FindActiveBySlot(gomock.Any(), orgID, courtID, date, "23:30").
			Return(nil, domain.ErrBookingNotFound)
		bookings.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, b *model.Booking) error {
				assert.Equal(t, "00:30", b.EndTime)
				assert.Equal(t, date, b.Date)
				return nil
			})

		svc := service.NewBookingService(bookings, courts, users, resolver, nil, farClock())
		_, err := svc.Create(context.Background(), orgID, userID, service.CreateBookingInput{
			CourtID: courtID, Date: "2025-06-02", StartTime: "23:30",
		})

		require.NoError(t, err)
	})

	t.Run("notifies the booker after the write", func(t *testing.T) {
		bookings := mocks.NewMockBookingRepositoryIface(ctrl)
		courts := mocks.NewMockCourtRepositoryIface(ctrl)
		users := mocks.NewMockUserRepositoryIface(ctrl)
		resolver := mocks.NewMockResolver(ctrl)
		notifier := mocks.NewMockNotifier(ctrl)

		resolver.EXPECT().
			IsAvailable(gomock.Any(), orgID, courtID, date, "14:00").
			Return(true, nil)
		bookings.EXPECT().
			FindActiveBySlot(gomock.Any(), orgID, courtID, date, "14:00").
			Return(nil, domain.ErrBookingNotFound)
		bookings.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		users.EXPECT().
			FindByID(gomock.Any(), orgID, userID).
			Return(&model.User{ID: userID, Phone: "5511999990000"}, nil)
		courts.EXPECT().
			FindByID(gomock.Any(), orgID, courtID).
			Return(&model.Court{ID: courtID, Name: "Court 1"}, nil)
		notifier.EXPECT().
			Notify(gomock.Any(), "5511999990000", gomock.Any()).
			Return(true)

		svc := service.NewBookingService(bookings, courts, users, resolver, notifier, farClock())
		_, err := svc.Create(context.Background(), orgID, userID, input)

		require.NoError(t, err)
	})
}

func TestCancelledSlotIsBookableAgain(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	courtID := uuid.New()
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	bookings := mocks.NewMockBookingRepositoryIface(ctrl)
	courts := mocks.NewMockCourtRepositoryIface(ctrl)
	users := mocks.NewMockUserRepositoryIface(ctrl)
	resolver := mocks.NewMockResolver(ctrl)

	resolver.EXPECT().
		IsAvailable(gomock.Any(), orgID, courtID, date, "14:00").
		Return(true, nil)
	// The active-slot lookup excludes CANCELLED rows, so a cancelled
	// booking never surfaces here.
	bookings.EXPECT().
		FindActiveBySlot(gomock.Any(), orgID, courtID, date, "14:00").
		Return(nil, domain.ErrBookingNotFound)

	svc := service.NewBookingService(bookings, courts, users, resolver, nil, farClock())
	err := svc.CanBook(context.Background(), orgID, courtID, date, "14:00")

	assert.NoError(t, err)
}

func TestFindAvailability(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	courtID := uuid.New()
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	bookings := mocks.NewMockBookingRepositoryIface(ctrl)
	courts := mocks.NewMockCourtRepositoryIface(ctrl)
	users := mocks.NewMockUserRepositoryIface(ctrl)
	resolver := mocks.NewMockResolver(ctrl)

	resolver.EXPECT().
		Resolve(gomock.Any(), orgID, courtID, date).
		Return(service.Resolution{
			AvailableSlots: []string{"09:00", "10:00", "11:00"},
			PremiumSlots:   []string{"11:00"},
		}, nil)

	taken := model.Booking{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		StartTime: "10:00",
		Status:    model.BookingConfirmed,
		User:      &model.User{Name: "Ana"},
	}
	bookings.EXPECT().
		ListActiveByCourtAndDate(gomock.Any(), orgID, courtID, date).
		Return([]model.Booking{taken}, nil)

	svc := service.NewBookingService(bookings, courts, users, resolver, nil, farClock())
	view, err := svc.FindAvailability(context.Background(), orgID, courtID, "2025-06-02")

	require.NoError(t, err)
	// A booked slot stays in the available list; the caller overlays them.
	assert.Equal(t, []string{"09:00", "10:00", "11:00"}, view.AvailableSlots)
	assert.Equal(t, []string{"11:00"}, view.PremiumSlots)
	require.Len(t, view.BookedSlots, 1)
	assert.Equal(t, "10:00", view.BookedSlots[0].Time)
	assert.Equal(t, "Ana", view.BookedSlots[0].UserName)
}

func TestPriceFor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	courtID := uuid.New()
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	defaultPrice := 80.0
	premiumPrice := 120.0
	booking := &model.Booking{CourtID: courtID, Date: date, StartTime: "18:00"}

	cases := []struct {
		name    string
		court   model.Court
		premium bool
		want    *float64
	}{
		{"premium slot with premium price", model.Court{DefaultPrice: &defaultPrice, PremiumPrice: &premiumPrice}, true, &premiumPrice},
		{"premium slot without premium price falls back", model.Court{DefaultPrice: &defaultPrice}, true, &defaultPrice},
		{"normal slot uses default price", model.Court{DefaultPrice: &defaultPrice, PremiumPrice: &premiumPrice}, false, &defaultPrice},
		{"no prices configured", model.Court{}, false, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bookings := mocks.NewMockBookingRepositoryIface(ctrl)
			courts := mocks.NewMockCourtRepositoryIface(ctrl)
			users := mocks.NewMockUserRepositoryIface(ctrl)
			resolver := mocks.NewMockResolver(ctrl)

			court := tc.court
			court.ID = courtID
			courts.EXPECT().FindByID(gomock.Any(), orgID, courtID).Return(&court, nil)
			resolver.EXPECT().
				IsPremium(gomock.Any(), orgID, courtID, date, "18:00").
				Return(tc.premium, nil)

			svc := service.NewBookingService(bookings, courts, users, resolver, nil, farClock())
			price, err := svc.PriceFor(context.Background(), orgID, booking)

			require.NoError(t, err)
			if tc.want == nil {
				assert.Nil(t, price)
			} else {
				require.NotNil(t, price)
				assert.Equal(t, *tc.want, *price)
			}
		})
	}
}

func TestBookingUpdateAndCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	bookingID := uuid.New()

	t.Run("cancel flips status only", func(t *testing.T) {
		bookings := mocks.NewMockBookingRepositoryIface(ctrl)
		courts := mocks.NewMockCourtRepositoryIface(ctrl)
		users := mocks.NewMockUserRepositoryIface(ctrl)
		resolver := mocks.NewMockResolver(ctrl)

		stored := &model.Booking{
			ID:             bookingID,
			OrganizationID: orgID,
			Status:         model.BookingConfirmed,
			Notes:          "weekly game",
		}
		bookings.EXPECT().FindByID(gomock.Any(), orgID, bookingID).Return(stored, nil)
		bookings.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, b *model.Booking) error {
				assert.Equal(t, model.BookingCancelled, b.Status)
				assert.Equal(t, "weekly game", b.Notes)
				return nil
			})

		svc := service.NewBookingService(bookings, courts, users, resolver, nil, farClock())
		booking, err := svc.Cancel(context.Background(), orgID, bookingID)

		require.NoError(t, err)
		assert.Equal(t, model.BookingCancelled, booking.Status)
	})

	t.Run("rejects unknown statuses", func(t *testing.T) {
		bookings := mocks.NewMockBookingRepositoryIface(ctrl)
		courts := mocks.NewMockCourtRepositoryIface(ctrl)
		users := mocks.NewMockUserRepositoryIface(ctrl)
		resolver := mocks.NewMockResolver(ctrl)

		bookings.EXPECT().
			FindByID(gomock.Any(), orgID, bookingID).
			Return(&model.Booking{ID: bookingID, OrganizationID: orgID}, nil)

		bogus := model.BookingStatus("ARCHIVED")
		svc := service.NewBookingService(bookings, courts, users, resolver, nil, farClock())
		_, err := svc.Update(context.Background(), orgID, bookingID, service.UpdateBookingInput{Status: &bogus})

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}
