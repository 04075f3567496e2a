// internal/repository/repository.go
package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/arenalabs/courtbook/internal/domain"
)

// Postgres error codes the repositories care about.
const (
	pgUniqueViolation = "23505"
	pgUndefinedColumn = "42703"
	pgUndefinedTable  = "42P01"
)

// bookingSlotIndex is the partial unique index on non-cancelled bookings,
// created by the migrate CLI. Only violations of this index mean "slot
// taken"; any other unique index (user email, availability rule) is a plain
// duplicate.
const bookingSlotIndex = "idx_bookings_active_slot"

// translatePgError maps low-level storage failures onto domain errors.
// Unique violations become caller-facing conflict errors; a missing column
// or table means the schema lags the code and is surfaced with a
// remediation hint rather than a generic 500.
func translatePgError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			if pgErr.ConstraintName == bookingSlotIndex {
				return domain.ErrSlotTaken
			}
			return domain.ErrDuplicate
		case pgUndefinedColumn, pgUndefinedTable:
			return domain.ErrMigrationMissing
		}
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrDuplicate
	}
	return err
}
