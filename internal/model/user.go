// internal/model/user.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	RoleAdmin   UserRole = "ADMIN"
	RoleTeacher UserRole = "TEACHER"
	RoleMember  UserRole = "MEMBER"
)

type User struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_users_org_email" json:"organizationId"`
	Name           string    `gorm:"type:string;not null" json:"name"`
	Email          string    `gorm:"type:string;not null;uniqueIndex:idx_users_org_email" json:"email"`
	PasswordHash   string    `gorm:"type:string;not null" json:"-"`
	Phone          string    `gorm:"type:string" json:"phone,omitempty"`
	Role           UserRole  `gorm:"type:varchar(16);not null;default:'MEMBER'" json:"role"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`

	Organization *Organization `gorm:"foreignKey:OrganizationID" json:"-"`
}
