// internal/service/availability.go
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/arenalabs/courtbook/internal/domain"
	"github.com/arenalabs/courtbook/internal/model"
	"github.com/arenalabs/courtbook/internal/repository"
	"github.com/arenalabs/courtbook/internal/timeslot"
)

// AvailabilityService owns the per-court slot configuration and resolves
// the effective bookable slots for a date. Override rules for an exact date
// fully replace the weekday rules for that date; both the bulk Resolve and
// the point IsAvailable go through the same precedence path so they cannot
// disagree.
type AvailabilityService struct {
	courts repository.CourtRepositoryIface
	rules  repository.AvailabilityRepositoryIface
	clock  timeslot.Clock
}

func NewAvailabilityService(
	courts repository.CourtRepositoryIface,
	rules repository.AvailabilityRepositoryIface,
	clock timeslot.Clock,
) *AvailabilityService {
	return &AvailabilityService{courts: courts, rules: rules, clock: clock}
}

// DayRules is one row of a setAvailability request: a weekday (ignored when
// the request targets a specific date) plus its slots and premium flag.
type DayRules struct {
	DayOfWeek int      `json:"dayOfWeek" validate:"min=0,max=6"`
	TimeSlots []string `json:"timeSlots"`
	IsPremium bool     `json:"isPremium"`
}

// Resolution is the effective slot set for one court and date.
type Resolution struct {
	AvailableSlots []string `json:"availableSlots"`
	PremiumSlots   []string `json:"premiumSlots"`
}

// WeeklySchedule mirrors the availability read model of the admin UI:
// recurring slots grouped by weekday plus override slots grouped by date.
type WeeklySchedule struct {
	Weekly               map[int][]string    `json:"weekly"`
	SpecificDates        map[string][]string `json:"specificDates"`
	Premium              map[int][]string    `json:"premium"`
	PremiumSpecificDates map[string][]string `json:"premiumSpecificDates"`
}

// effectiveRules applies override-beats-recurring precedence for one date.
// It is the single source of truth for Resolve, IsAvailable and IsPremium,
// and it verifies the court belongs to the organization before reading any
// rules: a court UUID from another tenant resolves to ErrCourtNotFound, not
// to that tenant's configuration.
func (s *AvailabilityService) effectiveRules(ctx context.Context, orgID, courtID uuid.UUID, date time.Time) ([]model.AvailabilityRule, error) {
	if _, err := s.courts.FindByID(ctx, orgID, courtID); err != nil {
		return nil, err
	}

	overrides, err := s.rules.ListOverrides(ctx, courtID, date)
	if err != nil {
		return nil, err
	}
	if len(overrides) > 0 {
		// Even a single-slot override suppresses the whole weekday rule set.
		return overrides, nil
	}
	return s.rules.ListByWeekday(ctx, courtID, timeslot.DayOfWeek(date))
}

// Resolve returns the bookable and premium slots for the date. When the
// date is "today" at the reference offset, slots whose end time has already
// elapsed are dropped from both lists.
func (s *AvailabilityService) Resolve(ctx context.Context, orgID, courtID uuid.UUID, date time.Time) (Resolution, error) {
	rules, err := s.effectiveRules(ctx, orgID, courtID, date)
	if err != nil {
		return Resolution{}, err
	}

	res := Resolution{AvailableSlots: []string{}, PremiumSlots: []string{}}
	for _, rule := range rules {
		if s.clock.SlotInPast(date, rule.TimeSlot) {
			continue
		}
		res.AvailableSlots = append(res.AvailableSlots, rule.TimeSlot)
		if rule.IsPremium {
			res.PremiumSlots = append(res.PremiumSlots, rule.TimeSlot)
		}
	}
	return res, nil
}

// IsAvailable is the point form of Resolve for the conflict guard. It does
// not filter past slots; the guard's concern is configuration, not timing.
func (s *AvailabilityService) IsAvailable(ctx context.Context, orgID, courtID uuid.UUID, date time.Time, slot string) (bool, error) {
	rules, err := s.effectiveRules(ctx, orgID, courtID, date)
	if err != nil {
		return false, err
	}
	for _, rule := range rules {
		if rule.TimeSlot == slot {
			return true, nil
		}
	}
	return false, nil
}

// IsPremium reports whether the effective rule for the slot carries the
// premium flag. A slot with no rule is not premium.
func (s *AvailabilityService) IsPremium(ctx context.Context, orgID, courtID uuid.UUID, date time.Time, slot string) (bool, error) {
	rules, err := s.effectiveRules(ctx, orgID, courtID, date)
	if err != nil {
		return false, err
	}
	for _, rule := range rules {
		if rule.TimeSlot == slot {
			return rule.IsPremium, nil
		}
	}
	return false, nil
}

// SetAvailability replaces the full rule set on one axis: the recurring
// rules of the court when specificDate is empty, or the overrides for that
// exact date. Empty slot strings are silently dropped and duplicate
// (day|date, slot) pairs collapse to one row.
func (s *AvailabilityService) SetAvailability(ctx context.Context, orgID, courtID uuid.UUID, days []DayRules, specificDate string) (*WeeklySchedule, error) {
	if _, err := s.courts.FindByID(ctx, orgID, courtID); err != nil {
		return nil, err
	}

	if specificDate != "" {
		date, err := timeslot.ParseDate(specificDate)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
		}
		var rules []model.AvailabilityRule
		for _, day := range days {
			for _, slot := range day.TimeSlots {
				slot = strings.TrimSpace(slot)
				if slot == "" {
					continue
				}
				rules = append(rules, model.Override(courtID, date, slot, day.IsPremium))
			}
		}
		if err := s.rules.ReplaceOverrides(ctx, courtID, date, rules); err != nil {
			return nil, err
		}
		return s.GetSchedule(ctx, orgID, courtID)
	}

	var rules []model.AvailabilityRule
	for _, day := range days {
		if day.DayOfWeek < 0 || day.DayOfWeek > 6 {
			return nil, fmt.Errorf("%w: dayOfWeek must be 0-6", domain.ErrInvalidInput)
		}
		for _, slot := range day.TimeSlots {
			slot = strings.TrimSpace(slot)
			if slot == "" {
				continue
			}
			rules = append(rules, model.Recurring(courtID, day.DayOfWeek, slot, day.IsPremium))
		}
	}
	if err := s.rules.ReplaceRecurring(ctx, courtID, rules); err != nil {
		return nil, err
	}
	return s.GetSchedule(ctx, orgID, courtID)
}

// GetSchedule returns the stored configuration on both axes, grouped the
// way the admin calendar consumes it.
func (s *AvailabilityService) GetSchedule(ctx context.Context, orgID, courtID uuid.UUID) (*WeeklySchedule, error) {
	if _, err := s.courts.FindByID(ctx, orgID, courtID); err != nil {
		return nil, err
	}

	rules, err := s.rules.ListForCourt(ctx, courtID)
	if err != nil {
		return nil, err
	}

	schedule := &WeeklySchedule{
		Weekly:               map[int][]string{},
		SpecificDates:        map[string][]string{},
		Premium:              map[int][]string{},
		PremiumSpecificDates: map[string][]string{},
	}
	for _, rule := range rules {
		if rule.IsOverride() {
			key := timeslot.FormatDate(*rule.SpecificDate)
			schedule.SpecificDates[key] = append(schedule.SpecificDates[key], rule.TimeSlot)
			if rule.IsPremium {
				schedule.PremiumSpecificDates[key] = append(schedule.PremiumSpecificDates[key], rule.TimeSlot)
			}
			continue
		}
		if rule.DayOfWeek == nil {
			continue
		}
		day := *rule.DayOfWeek
		schedule.Weekly[day] = append(schedule.Weekly[day], rule.TimeSlot)
		if rule.IsPremium {
			schedule.Premium[day] = append(schedule.Premium[day], rule.TimeSlot)
		}
	}
	return schedule, nil
}

// ReplicateWeekdayWeekend applies one slot set to Monday-Friday and another
// to Saturday/Sunday, splitting each into premium and normal sub-rules.
func (s *AvailabilityService) ReplicateWeekdayWeekend(ctx context.Context, orgID, courtID uuid.UUID, weekdaySlots, weekendSlots, weekdayPremium, weekendPremium []string) (*WeeklySchedule, error) {
	weekdays := []int{1, 2, 3, 4, 5}
	weekend := []int{6, 0}

	weekdayNormal := subtract(weekdaySlots, weekdayPremium)
	weekendNormal := subtract(weekendSlots, weekendPremium)

	var days []DayRules
	for _, day := range weekdays {
		days = append(days,
			DayRules{DayOfWeek: day, TimeSlots: weekdayNormal, IsPremium: false},
			DayRules{DayOfWeek: day, TimeSlots: weekdayPremium, IsPremium: true},
		)
	}
	for _, day := range weekend {
		days = append(days,
			DayRules{DayOfWeek: day, TimeSlots: weekendNormal, IsPremium: false},
			DayRules{DayOfWeek: day, TimeSlots: weekendPremium, IsPremium: true},
		)
	}

	filtered := days[:0]
	for _, day := range days {
		if len(day.TimeSlots) > 0 {
			filtered = append(filtered, day)
		}
	}
	return s.SetAvailability(ctx, orgID, courtID, filtered, "")
}

// CopyFrom wipes the target court's full rule set and clones the source's.
func (s *AvailabilityService) CopyFrom(ctx context.Context, orgID, sourceCourtID, targetCourtID uuid.UUID) (int, error) {
	if _, err := s.courts.FindByID(ctx, orgID, sourceCourtID); err != nil {
		return 0, err
	}
	if _, err := s.courts.FindByID(ctx, orgID, targetCourtID); err != nil {
		return 0, err
	}

	source, err := s.rules.ListForCourt(ctx, sourceCourtID)
	if err != nil {
		return 0, err
	}
	if len(source) == 0 {
		return 0, nil
	}

	clones := make([]model.AvailabilityRule, 0, len(source))
	for _, rule := range source {
		clone := model.AvailabilityRule{
			CourtID:      targetCourtID,
			DayOfWeek:    rule.DayOfWeek,
			SpecificDate: rule.SpecificDate,
			TimeSlot:     rule.TimeSlot,
			IsPremium:    rule.IsPremium,
		}
		clones = append(clones, clone)
	}
	if err := s.rules.ReplaceAll(ctx, targetCourtID, clones); err != nil {
		return 0, err
	}
	return len(clones), nil
}

// PremiumSlotRef addresses one stored rule on either axis.
type PremiumSlotRef struct {
	DayOfWeek    *int   `json:"dayOfWeek,omitempty"`
	SpecificDate string `json:"specificDate,omitempty"`
	TimeSlot     string `json:"timeSlot" validate:"required"`
}

// SetPremium bulk-flips the premium flag on the referenced slots without
// changing rule membership.
func (s *AvailabilityService) SetPremium(ctx context.Context, orgID, courtID uuid.UUID, slots []PremiumSlotRef, premium bool) (int, error) {
	if _, err := s.courts.FindByID(ctx, orgID, courtID); err != nil {
		return 0, err
	}

	updated := 0
	for _, ref := range slots {
		switch {
		case ref.SpecificDate != "":
			date, err := timeslot.ParseDate(ref.SpecificDate)
			if err != nil {
				return updated, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
			}
			if err := s.rules.SetPremiumOverride(ctx, courtID, date, ref.TimeSlot, premium); err != nil {
				return updated, err
			}
		case ref.DayOfWeek != nil:
			if err := s.rules.SetPremiumRecurring(ctx, courtID, *ref.DayOfWeek, ref.TimeSlot, premium); err != nil {
				return updated, err
			}
		default:
			return updated, fmt.Errorf("%w: slot needs a dayOfWeek or specificDate", domain.ErrInvalidInput)
		}
		updated++
	}
	return updated, nil
}

// AddTimeSlot inserts one recurring slot, idempotently.
func (s *AvailabilityService) AddTimeSlot(ctx context.Context, orgID, courtID uuid.UUID, dayOfWeek int, slot string) error {
	if _, err := s.courts.FindByID(ctx, orgID, courtID); err != nil {
		return err
	}
	if dayOfWeek < 0 || dayOfWeek > 6 {
		return fmt.Errorf("%w: dayOfWeek must be 0-6", domain.ErrInvalidInput)
	}
	rule := model.Recurring(courtID, dayOfWeek, slot, false)
	return s.rules.AddRule(ctx, &rule)
}

// RemoveTimeSlot deletes one recurring slot.
func (s *AvailabilityService) RemoveTimeSlot(ctx context.Context, orgID, courtID uuid.UUID, dayOfWeek int, slot string) error {
	if _, err := s.courts.FindByID(ctx, orgID, courtID); err != nil {
		return err
	}
	return s.rules.RemoveRecurringSlot(ctx, courtID, dayOfWeek, slot)
}

// SpecificDates lists the future override dates configured for the court.
func (s *AvailabilityService) SpecificDates(ctx context.Context, orgID, courtID uuid.UUID) ([]string, error) {
	if _, err := s.courts.FindByID(ctx, orgID, courtID); err != nil {
		return nil, err
	}

	now := s.clock.UTCNow()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	dates, err := s.rules.FutureOverrideDates(ctx, courtID, today)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(dates))
	for _, d := range dates {
		out = append(out, timeslot.FormatDate(d))
	}
	return out, nil
}

func subtract(slots, remove []string) []string {
	removeSet := make(map[string]struct{}, len(remove))
	for _, s := range remove {
		removeSet[s] = struct{}{}
	}
	var out []string
	for _, s := range slots {
		if _, ok := removeSet[s]; !ok {
			out = append(out, s)
		}
	}
	return out
}
