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
	"github.com/arenalabs/courtbook/internal/timeslot"
)

func fixedClock(utcNow time.Time) timeslot.Clock {
	return timeslot.Clock{
		OffsetHours: -3,
		Now:         func() time.Time { return utcNow },
	}
}

// farClock pins "now" long before any test date so nothing is filtered.
func farClock() timeslot.Clock {
	return fixedClock(time.Date(2020, 1, 1, 12, 0, 0, 0, time.UTC))
}

func TestResolveOverridePrecedence(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	courtID := uuid.New()
	court := &model.Court{ID: courtID, OrganizationID: orgID, Name: "Court 1", IsActive: true}

	// 2025-06-02 is a Monday.
	monday := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	t.Run("override rules fully replace weekday rules", func(t *testing.T) {
		courts := mocks.NewMockCourtRepositoryIface(ctrl)
		rules := mocks.NewMockAvailabilityRepositoryIface(ctrl)

		courts.EXPECT().FindByID(gomock.Any(), orgID, courtID).Return(court, nil)
		rules.EXPECT().
			ListOverrides(gomock.Any(), courtID, monday).
			Return([]model.AvailabilityRule{
				override(courtID, monday, "14:00", false),
			}, nil)

		svc := service.NewAvailabilityService(courts, rules, farClock())
		res, err := svc.Resolve(context.Background(), orgID, courtID, monday)

		require.NoError(t, err)
		assert.Equal(t, []string{"14:00"}, res.AvailableSlots)
		assert.Empty(t, res.PremiumSlots)
	})

	t.Run("weekday rules apply when no override exists", func(t *testing.T) {
		courts := mocks.NewMockCourtRepositoryIface(ctrl)
		rules := mocks.NewMockAvailabilityRepositoryIface(ctrl)

		courts.EXPECT().FindByID(gomock.Any(), orgID, courtID).Return(court, nil)
		rules.EXPECT().
			ListOverrides(gomock.Any(), courtID, monday).
			Return(nil, nil)
		rules.EXPECT().
			ListByWeekday(gomock.Any(), courtID, 1).
			Return([]model.AvailabilityRule{
				recurring(courtID, 1, "09:00", false),
				recurring(courtID, 1, "10:00", true),
			}, nil)

		svc := service.NewAvailabilityService(courts, rules, farClock())
		res, err := svc.Resolve(context.Background(), orgID, courtID, monday)

		require.NoError(t, err)
		assert.Equal(t, []string{"09:00", "10:00"}, res.AvailableSlots)
		assert.Equal(t, []string{"10:00"}, res.PremiumSlots)
	})

	t.Run("unknown court resolves to nothing", func(t *testing.T) {
		courts := mocks.NewMockCourtRepositoryIface(ctrl)
		rules := mocks.NewMockAvailabilityRepositoryIface(ctrl)

		courts.EXPECT().
			FindByID(gomock.Any(), orgID, courtID).
			Return(nil, domain.ErrCourtNotFound)

		svc := service.NewAvailabilityService(courts, rules, farClock())
		_, err := svc.Resolve(context.Background(), orgID, courtID, monday)

		assert.ErrorIs(t, err, domain.ErrCourtNotFound)
	})
}

func TestResolvePastSlotFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	courtID := uuid.New()
	court := &model.Court{ID: courtID, OrganizationID: orgID, IsActive: true}

	// Local time at UTC-3 is 2025-06-02 14:00 when UTC is 17:00.
	monday := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	clock := fixedClock(time.Date(2025, 6, 2, 17, 0, 0, 0, time.UTC))

	weekdayRules := []model.AvailabilityRule{
		recurring(courtID, 1, "12:00", false),
		recurring(courtID, 1, "13:00", false),
		recurring(courtID, 1, "14:00", false),
		recurring(courtID, 1, "15:00", true),
	}

	t.Run("elapsed slots are dropped for today", func(t *testing.T) {
		courts := mocks.NewMockCourtRepositoryIface(ctrl)
		rules := mocks.NewMockAvailabilityRepositoryIface(ctrl)

		courts.EXPECT().FindByID(gomock.Any(), orgID, courtID).Return(court, nil)
		rules.EXPECT().ListOverrides(gomock.Any(), courtID, monday).Return(nil, nil)
		rules.EXPECT().ListByWeekday(gomock.Any(), courtID, 1).Return(weekdayRules, nil)

		svc := service.NewAvailabilityService(courts, rules, clock)
		res, err := svc.Resolve(context.Background(), orgID, courtID, monday)

		require.NoError(t, err)
		// 12:00 and 13:00 have ended by 14:00 local; 14:00 is in progress
		// and stays listed until its end.
		assert.Equal(t, []string{"14:00", "15:00"}, res.AvailableSlots)
		assert.Equal(t, []string{"15:00"}, res.PremiumSlots)
	})

	t.Run("future dates keep every slot", func(t *testing.T) {
		tuesday := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)
		tuesdayRules := []model.AvailabilityRule{
			recurring(courtID, 2, "08:00", false),
		}

		courts := mocks.NewMockCourtRepositoryIface(ctrl)
		rules := mocks.NewMockAvailabilityRepositoryIface(ctrl)

		courts.EXPECT().FindByID(gomock.Any(), orgID, courtID).Return(court, nil)
		rules.EXPECT().ListOverrides(gomock.Any(), courtID, tuesday).Return(nil, nil)
		rules.EXPECT().ListByWeekday(gomock.Any(), courtID, 2).Return(tuesdayRules, nil)

		svc := service.NewAvailabilityService(courts, rules, clock)
		res, err := svc.Resolve(context.Background(), orgID, courtID, tuesday)

		require.NoError(t, err)
		assert.Equal(t, []string{"08:00"}, res.AvailableSlots)
	})
}

func TestIsAvailableMatchesResolve(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	courtID := uuid.New()
	court := &model.Court{ID: courtID, OrganizationID: orgID, IsActive: true}
	monday := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	t.Run("override suppresses weekday slot for point check too", func(t *testing.T) {
		courts := mocks.NewMockCourtRepositoryIface(ctrl)
		rules := mocks.NewMockAvailabilityRepositoryIface(ctrl)

		// The weekday set contains 09:00 but the date has an override
		// without it, so the point check must say no.
		courts.EXPECT().FindByID(gomock.Any(), orgID, courtID).Return(court, nil)
		rules.EXPECT().
			ListOverrides(gomock.Any(), courtID, monday).
			Return([]model.AvailabilityRule{
				override(courtID, monday, "14:00", false),
			}, nil)

		svc := service.NewAvailabilityService(courts, rules, farClock())
		ok, err := svc.IsAvailable(context.Background(), orgID, courtID, monday, "09:00")

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("premium flag follows the effective rule", func(t *testing.T) {
		courts := mocks.NewMockCourtRepositoryIface(ctrl)
		rules := mocks.NewMockAvailabilityRepositoryIface(ctrl)

		courts.EXPECT().FindByID(gomock.Any(), orgID, courtID).Return(court, nil)
		rules.EXPECT().
			ListOverrides(gomock.Any(), courtID, monday).
			Return([]model.AvailabilityRule{
				override(courtID, monday, "18:00", true),
			}, nil)

		svc := service.NewAvailabilityService(courts, rules, farClock())
		premium, err := svc.IsPremium(context.Background(), orgID, courtID, monday, "18:00")

		require.NoError(t, err)
		assert.True(t, premium)
	})
}

// A court UUID belonging to another organization must be invisible on every
// resolver entry point: no rule reads, just the not-found error the caller
// would get for a court that does not exist.
func TestResolverScopedToOrganization(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	attackerOrg := uuid.New()
	foreignCourtID := uuid.New()
	monday := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	courts := mocks.NewMockCourtRepositoryIface(ctrl)
	rules := mocks.NewMockAvailabilityRepositoryIface(ctrl)

	courts.EXPECT().
		FindByID(gomock.Any(), attackerOrg, foreignCourtID).
		Return(nil, domain.ErrCourtNotFound).
		Times(3)

	svc := service.NewAvailabilityService(courts, rules, farClock())

	_, err := svc.Resolve(context.Background(), attackerOrg, foreignCourtID, monday)
	assert.ErrorIs(t, err, domain.ErrCourtNotFound)

	_, err = svc.IsAvailable(context.Background(), attackerOrg, foreignCourtID, monday, "14:00")
	assert.ErrorIs(t, err, domain.ErrCourtNotFound)

	_, err = svc.IsPremium(context.Background(), attackerOrg, foreignCourtID, monday, "14:00")
	assert.ErrorIs(t, err, domain.ErrCourtNotFound)
}

func TestSetAvailability(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	courtID := uuid.New()
	court := &model.Court{ID: courtID, OrganizationID: orgID, IsActive: true}

	t.Run("replaces the recurring set and drops empty slots", func(t *testing.T) {
		courts := mocks.NewMockCourtRepositoryIface(ctrl)
		rules := mocks.NewMockAvailabilityRepositoryIface(ctrl)

		courts.EXPECT().FindByID(gomock.Any(), orgID, courtID).Return(court, nil).Times(2)
		rules.EXPECT().
			ReplaceRecurring(gomock.Any(), courtID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, rs []model.AvailabilityRule) error {
				require.Len(t, rs, 2)
				assert.Equal(t, "09:00", rs[0].TimeSlot)
				assert.Equal(t, "10:00", rs[1].TimeSlot)
				return nil
			})
		rules.EXPECT().ListForCourt(gomock.Any(), courtID).Return(nil, nil)

		svc := service.NewAvailabilityService(courts, rules, farClock())
		_, err := svc.SetAvailability(context.Background(), orgID, courtID, []service.DayRules{
			{DayOfWeek: 1, TimeSlots: []string{"09:00", "", "  ", "10:00"}},
		}, "")

		require.NoError(t, err)
	})

	t.Run("targets the override axis when a date is given", func(t *testing.T) {
		date := time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC)

		courts := mocks.NewMockCourtRepositoryIface(ctrl)
		rules := mocks.NewMockAvailabilityRepositoryIface(ctrl)

		courts.EXPECT().FindByID(gomock.Any(), orgID, courtID).Return(court, nil).Times(2)
		rules.EXPECT().
			ReplaceOverrides(gomock.Any(), courtID, date, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, _ time.Time, rs []model.AvailabilityRule) error {
				require.Len(t, rs, 1)
				assert.True(t, rs[0].IsOverride())
				assert.Equal(t, "11:00", rs[0].TimeSlot)
				return nil
			})
		rules.EXPECT().ListForCourt(gomock.Any(), courtID).Return(nil, nil)

		svc := service.NewAvailabilityService(courts, rules, farClock())
		_, err := svc.SetAvailability(context.Background(), orgID, courtID, []service.DayRules{
			{TimeSlots: []string{"11:00"}},
		}, "2025-07-10")

		require.NoError(t, err)
	})

	t.Run("rejects out-of-range weekdays", func(t *testing.T) {
		courts := mocks.NewMockCourtRepositoryIface(ctrl)
		rules := mocks.NewMockAvailabilityRepositoryIface(ctrl)

		courts.EXPECT().FindByID(gomock.Any(), orgID, courtID).Return(court, nil)

		svc := service.NewAvailabilityService(courts, rules, farClock())
		_, err := svc.SetAvailability(context.Background(), orgID, courtID, []service.DayRules{
			{DayOfWeek: 7, TimeSlots: []string{"09:00"}},
		}, "")

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("an empty set clears the axis", func(t *testing.T) {
		courts := mocks.NewMockCourtRepositoryIface(ctrl)
		rules := mocks.NewMockAvailabilityRepositoryIface(ctrl)

		courts.EXPECT().FindByID(gomock.Any(), orgID, courtID).Return(court, nil).Times(2)
		rules.EXPECT().
			ReplaceRecurring(gomock.Any(), courtID, gomock.Len(0)).
			Return(nil)
		rules.EXPECT().ListForCourt(gomock.Any(), courtID).Return(nil, nil)

		svc := service.NewAvailabilityService(courts, rules, farClock())
		_, err := svc.SetAvailability(context.Background(), orgID, courtID, nil, "")

		require.NoError(t, err)
	})
}

func TestReplicateWeekdayWeekend(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	courtID := uuid.New()
	court := &model.Court{ID: courtID, OrganizationID: orgID, IsActive: true}

	courts := mocks.NewMockCourtRepositoryIface(ctrl)
	rules := mocks.NewMockAvailabilityRepositoryIface(ctrl)

	courts.EXPECT().FindByID(gomock.Any(), orgID, courtID).Return(court, nil).Times(2)
	rules.EXPECT().
		ReplaceRecurring(gomock.Any(), courtID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, rs []model.AvailabilityRule) error {
			// 5 weekdays x (1 normal + 1 premium) + 2 weekend days x 1 normal.
			byDay := map[int][]model.AvailabilityRule{}
			for _, r := range rs {
				require.NotNil(t, r.DayOfWeek)
				byDay[*r.DayOfWeek] = append(byDay[*r.DayOfWeek], r)
			}
			for day := 1; day <= 5; day++ {
				require.Len(t, byDay[day], 2, "weekday %d", day)
			}
			require.Len(t, byDay[6], 1)
			require.Len(t, byDay[0], 1)

			// The premium slot is carved out of the weekday normal set.
			for _, r := range byDay[1] {
				if r.TimeSlot == "18:00" {
					assert.True(t, r.IsPremium)
				} else {
					assert.Equal(t, "09:00", r.TimeSlot)
					assert.False(t, r.IsPremium)
				}
			}
			return nil
		})
	rules.EXPECT().ListForCourt(gomock.Any(), courtID).Return(nil, nil)

	svc := service.NewAvailabilityService(courts, rules, farClock())
	_, err := svc.ReplicateWeekdayWeekend(context.Background(), orgID, courtID,
		[]string{"09:00", "18:00"}, []string{"10:00"}, []string{"18:00"}, nil)

	require.NoError(t, err)
}

func TestCopyFrom(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	sourceID := uuid.New()
	targetID := uuid.New()
	source := &model.Court{ID: sourceID, OrganizationID: orgID, IsActive: true}
	target := &model.Court{ID: targetID, OrganizationID: orgID, IsActive: true}

	date := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)

	t.Run("clones both axes onto the target", func(t *testing.T) {
		courts := mocks.NewMockCourtRepositoryIface(ctrl)
		rules := mocks.NewMockAvailabilityRepositoryIface(ctrl)

		courts.EXPECT().FindByID(gomock.Any(), orgID, sourceID).Return(source, nil)
		courts.EXPECT().FindByID(gomock.Any(), orgID, targetID).Return(target, nil)
		rules.EXPECT().
			ListForCourt(gomock.Any(), sourceID).
			Return([]model.AvailabilityRule{
				recurring(sourceID, 1, "09:00", false),
				override(sourceID, date, "10:00", true),
			}, nil)
		rules.EXPECT().
			ReplaceAll(gomock.Any(), targetID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, rs []model.AvailabilityRule) error {
				require.Len(t, rs, 2)
				for _, r := range rs {
					assert.Equal(t, targetID, r.CourtID)
				}
				return nil
			})

		svc := service.NewAvailabilityService(courts, rules, farClock())
		copied, err := svc.CopyFrom(context.Background(), orgID, sourceID, targetID)

		require.NoError(t, err)
		assert.Equal(t, 2, copied)
	})

	t.Run("empty source leaves the target untouched", func(t *testing.T) {
		courts := mocks.NewMockCourtRepositoryIface(ctrl)
		rules := mocks.NewMockAvailabilityRepositoryIface(ctrl)

		courts.EXPECT().FindByID(gomock.Any(), orgID, sourceID).Return(source, nil)
		courts.EXPECT().FindByID(gomock.Any(), orgID, targetID).Return(target, nil)
		rules.EXPECT().ListForCourt(gomock.Any(), sourceID).Return(nil, nil)

		svc := service.NewAvailabilityService(courts, rules, farClock())
		copied, err := svc.CopyFrom(context.Background(), orgID, sourceID, targetID)

		require.NoError(t, err)
		assert.Zero(t, copied)
	})
}

func recurring(courtID uuid.UUID, day int, slot string, premium bool) model.AvailabilityRule {
	return model.Recurring(courtID, day, slot, premium)
}

func override(courtID uuid.UUID, date time.Time, slot string, premium bool) model.AvailabilityRule {
	return model.Override(courtID, date, slot, premium)
}
