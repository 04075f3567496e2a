// internal/model/invoice.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type InvoiceStatus string

const (
	InvoicePending InvoiceStatus = "PENDING"
	InvoicePaid    InvoiceStatus = "PAID"
	InvoiceOverdue InvoiceStatus = "OVERDUE"
)

type Invoice struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganizationID uuid.UUID  `gorm:"type:uuid;not null;index" json:"organizationId"`
	UserID         uuid.UUID  `gorm:"type:uuid;not null;index" json:"userId"`
	ClassID        *uuid.UUID `gorm:"type:uuid;index" json:"classId,omitempty"`

	Description string        `gorm:"type:text;not null" json:"description"`
	Amount      float64       `gorm:"type:decimal(10,2);not null" json:"amount"`
	DueDate     time.Time     `gorm:"type:date;not null;index" json:"dueDate"`
	Status      InvoiceStatus `gorm:"type:varchar(16);not null;default:'PENDING'" json:"status"`
	PaidDate    *time.Time    `json:"paidDate,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	User  *User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Class *Class `gorm:"foreignKey:ClassID" json:"class,omitempty"`
}
