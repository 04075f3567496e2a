package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/arenalabs/courtbook/internal/domain"
)

func TestTranslatePgError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{
			name: "slot index violation is a slot conflict",
			in:   &pgconn.PgError{Code: "23505", ConstraintName: "idx_bookings_active_slot"},
			want: domain.ErrSlotTaken,
		},
		{
			name: "email uniqueness is a plain duplicate",
			in:   &pgconn.PgError{Code: "23505", ConstraintName: "idx_users_org_email"},
			want: domain.ErrDuplicate,
		},
		{
			name: "availability rule uniqueness is a plain duplicate",
			in:   &pgconn.PgError{Code: "23505", ConstraintName: "idx_avail_recurring"},
			want: domain.ErrDuplicate,
		},
		{
			name: "missing column points at the migration",
			in:   &pgconn.PgError{Code: "42703", ColumnName: "monthly_price"},
			want: domain.ErrMigrationMissing,
		},
		{
			name: "missing table points at the migration",
			in:   &pgconn.PgError{Code: "42P01"},
			want: domain.ErrMigrationMissing,
		},
		{
			name: "gorm duplicate without constraint detail stays generic",
			in:   gorm.ErrDuplicatedKey,
			want: domain.ErrDuplicate,
		},
		{
			name: "wrapped driver errors still translate",
			in:   fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "idx_bookings_active_slot"}),
			want: domain.ErrSlotTaken,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, translatePgError(tc.in), tc.want)
		})
	}

	t.Run("unknown errors pass through unchanged", func(t *testing.T) {
		err := errors.New("connection reset")
		assert.Equal(t, err, translatePgError(err))
	})

	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, translatePgError(nil))
	})
}
