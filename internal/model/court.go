// internal/model/court.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Court is never hard-deleted once bookings reference it; Deactivate flips
// IsActive instead.
type Court struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;index" json:"organizationId"`
	Name           string    `gorm:"type:string;not null" json:"name"`
	Description    string    `gorm:"type:text" json:"description,omitempty"`
	SportType      string    `gorm:"type:string" json:"sportType,omitempty"`
	ImageURL       string    `gorm:"type:string" json:"imageUrl,omitempty"`
	IsActive       bool      `gorm:"not null;default:true" json:"isActive"`

	// Prices are per 1-hour slot; either may be absent. PremiumPrice applies
	// to slots flagged premium in the availability configuration.
	DefaultPrice *float64 `gorm:"type:decimal(10,2)" json:"defaultPrice,omitempty"`
	PremiumPrice *float64 `gorm:"type:decimal(10,2)" json:"premiumPrice,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Organization *Organization `gorm:"foreignKey:OrganizationID" json:"-"`
}
