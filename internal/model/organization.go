// internal/model/organization.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Organization is the tenancy boundary. Every other entity carries an
// OrganizationID and every query filters by it.
type Organization struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"type:string;not null" json:"name"`
	Subdomain string    `gorm:"type:string;uniqueIndex" json:"subdomain"`
	Phone     string    `gorm:"type:string" json:"phone,omitempty"`
	LogoURL   string    `gorm:"type:string" json:"logoUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
