// internal/model/booking.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCancelled BookingStatus = "CANCELLED"
	BookingCompleted BookingStatus = "COMPLETED"
)

// Booking is one reserved 1-hour slot. At most one non-CANCELLED booking may
// exist per (organization, court, date, start_time); the partial unique
// index installed by the migrate command is the durable backstop for that
// invariant, the conflict guard only provides the friendly error path.
type Booking struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;index" json:"organizationId"`
	CourtID        uuid.UUID `gorm:"type:uuid;not null;index" json:"courtId"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index" json:"userId"`

	// UTC midnight calendar date.
	Date      time.Time     `gorm:"type:date;not null;index" json:"date"`
	StartTime string        `gorm:"type:varchar(5);not null" json:"startTime"`
	EndTime   string        `gorm:"type:varchar(5);not null" json:"endTime"`
	Status    BookingStatus `gorm:"type:varchar(16);not null;default:'PENDING';index" json:"status"`
	Notes     string        `gorm:"type:text" json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	User  *User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Court *Court `gorm:"foreignKey:CourtID" json:"court,omitempty"`
}

// Active reports whether the booking blocks its slot.
func (b Booking) Active() bool {
	return b.Status != BookingCancelled
}
