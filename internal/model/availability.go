// internal/model/availability.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// AvailabilityRule is one bookable time slot for a court, on exactly one of
// two axes: a recurring weekday rule (DayOfWeek set, SpecificDate null) or a
// one-off override for an exact calendar date (SpecificDate set, DayOfWeek
// null). The storage row keeps both columns nullable; code constructs rows
// only through Recurring/Override so the exclusivity cannot be violated.
//
// Overrides for a date fully replace the weekday rules when resolving that
// date, they never merge.
type AvailabilityRule struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CourtID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_avail_recurring;uniqueIndex:idx_avail_override" json:"courtId"`

	// 0=Sunday .. 6=Saturday, recurring axis only.
	DayOfWeek *int `gorm:"uniqueIndex:idx_avail_recurring" json:"dayOfWeek,omitempty"`
	// UTC midnight, override axis only.
	SpecificDate *time.Time `gorm:"type:date;uniqueIndex:idx_avail_override" json:"specificDate,omitempty"`

	TimeSlot  string `gorm:"type:varchar(5);not null;uniqueIndex:idx_avail_recurring;uniqueIndex:idx_avail_override" json:"timeSlot"`
	IsPremium bool   `gorm:"not null;default:false" json:"isPremium"`

	CreatedAt time.Time `json:"createdAt"`

	Court *Court `gorm:"foreignKey:CourtID;constraint:OnDelete:CASCADE" json:"-"`
}

// Recurring builds a weekday rule.
func Recurring(courtID uuid.UUID, dayOfWeek int, slot string, premium bool) AvailabilityRule {
	d := dayOfWeek
	return AvailabilityRule{CourtID: courtID, DayOfWeek: &d, TimeSlot: slot, IsPremium: premium}
}

// Override builds a specific-date rule. date must be UTC midnight.
func Override(courtID uuid.UUID, date time.Time, slot string, premium bool) AvailabilityRule {
	d := date
	return AvailabilityRule{CourtID: courtID, SpecificDate: &d, TimeSlot: slot, IsPremium: premium}
}

// IsOverride reports which axis the rule lives on.
func (r AvailabilityRule) IsOverride() bool {
	return r.SpecificDate != nil
}
