package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arenalabs/courtbook/internal/domain"
)

func TestHandleErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"unconfigured slot is a bad request", domain.ErrSlotUnavailable, http.StatusBadRequest},
		{"invalid input is a bad request", domain.ErrInvalidInput, http.StatusBadRequest},
		{"taken slot is a conflict", domain.ErrSlotTaken, http.StatusConflict},
		{"duplicate record is a conflict", domain.ErrDuplicate, http.StatusConflict},
		{"double enrollment is a conflict", domain.ErrAlreadyEnrolled, http.StatusConflict},
		{"missing court is not found", domain.ErrCourtNotFound, http.StatusNotFound},
		{"missing booking is not found", domain.ErrBookingNotFound, http.StatusNotFound},
		{"inactive court is unprocessable", domain.ErrCourtInactive, http.StatusUnprocessableEntity},
		{"bad credentials are unauthorized", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"wrapped errors keep their mapping", fmt.Errorf("creating booking: %w", domain.ErrSlotUnavailable), http.StatusBadRequest},
		{"anything else is internal", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handleError(rec, tc.err)
			assert.Equal(t, tc.want, rec.Code)
		})
	}
}
