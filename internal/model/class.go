// internal/model/class.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Class is a recurring weekly lesson on a court. Creating a class
// materializes one CONFIRMED booking per matching weekday between StartDate
// and EndDate (or one year from StartDate when EndDate is null). Editing a
// class later does not regenerate those bookings.
type Class struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;index" json:"organizationId"`
	Name           string    `gorm:"type:string;not null" json:"name"`
	Description    string    `gorm:"type:text" json:"description,omitempty"`
	CourtID        uuid.UUID `gorm:"type:uuid;not null;index" json:"courtId"`
	TeacherID      uuid.UUID `gorm:"type:uuid;not null;index" json:"teacherId"`

	// 0=Sunday .. 6=Saturday.
	DayOfWeek int    `gorm:"not null" json:"dayOfWeek"`
	StartTime string `gorm:"type:varchar(5);not null" json:"startTime"`
	EndTime   string `gorm:"type:varchar(5);not null" json:"endTime"`

	StartDate time.Time  `gorm:"type:date;not null" json:"startDate"`
	EndDate   *time.Time `gorm:"type:date" json:"endDate,omitempty"`

	MonthlyPrice float64 `gorm:"type:decimal(10,2);not null;default:0" json:"monthlyPrice"`
	MaxStudents  int     `gorm:"not null;default:0" json:"maxStudents"`
	IsActive     bool    `gorm:"not null;default:true" json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Teacher  *User          `gorm:"foreignKey:TeacherID" json:"teacher,omitempty"`
	Court    *Court         `gorm:"foreignKey:CourtID" json:"court,omitempty"`
	Students []ClassStudent `gorm:"foreignKey:ClassID" json:"students,omitempty"`
}

// ClassStudent is an enrollment; LeftAt marks a soft removal.
type ClassStudent struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ClassID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"classId"`
	StudentID uuid.UUID  `gorm:"type:uuid;not null;index" json:"studentId"`
	JoinedAt  time.Time  `gorm:"not null;default:now()" json:"joinedAt"`
	LeftAt    *time.Time `json:"leftAt,omitempty"`

	Student *User `gorm:"foreignKey:StudentID" json:"student,omitempty"`
}
