// internal/domain/errors.go
package domain

import "errors"

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrDuplicate    = errors.New("record already exists")

	// Court-related errors
	ErrCourtNotFound = errors.New("court not found")
	ErrCourtInactive = errors.New("court is inactive")

	// Availability-related errors
	ErrSlotUnavailable = errors.New("time slot is not available for this court")

	// Booking-related errors
	ErrBookingNotFound = errors.New("booking not found")
	ErrSlotTaken       = errors.New("a booking already exists for this time slot")

	// Class-related errors
	ErrClassNotFound   = errors.New("class not found")
	ErrTeacherNotFound = errors.New("teacher not found")
	ErrAlreadyEnrolled = errors.New("student is already enrolled in this class")
	ErrStudentNotFound = errors.New("student not found")

	// Invoice-related errors
	ErrInvoiceNotFound = errors.New("invoice not found")

	// Organization/user-related errors
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrInvalidCredentials   = errors.New("invalid credentials")

	// ErrMigrationMissing signals a schema/code mismatch (e.g. a column the
	// code expects is absent) and carries a remediation hint for operators
	// instead of being swallowed.
	ErrMigrationMissing = errors.New("schema out of date: run `courtbook migrate`")
)
