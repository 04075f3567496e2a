// internal/service/invoice.go
package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/arenalabs/courtbook/internal/domain"
	"github.com/arenalabs/courtbook/internal/model"
	"github.com/arenalabs/courtbook/internal/repository"
	"github.com/arenalabs/courtbook/internal/timeslot"
)

type InvoiceService struct {
	invoices repository.InvoiceRepositoryIface
	users    repository.UserRepositoryIface
	clock    timeslot.Clock
	validate *validator.Validate
}

func NewInvoiceService(
	invoices repository.InvoiceRepositoryIface,
	users repository.UserRepositoryIface,
	clock timeslot.Clock,
) *InvoiceService {
	return &InvoiceService{
		invoices: invoices,
		users:    users,
		clock:    clock,
		validate: validator.New(),
	}
}

type CreateInvoiceInput struct {
	UserID      uuid.UUID  `json:"userId" validate:"required"`
	ClassID     *uuid.UUID `json:"classId"`
	Description string     `json:"description" validate:"required"`
	Amount      float64    `json:"amount" validate:"gt=0"`
	DueDate     string     `json:"dueDate" validate:"required"`
}

func (s *InvoiceService) Create(ctx context.Context, orgID uuid.UUID, input CreateInvoiceInput) (*model.Invoice, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}

	if _, err := s.users.FindByID(ctx, orgID, input.UserID); err != nil {
		return nil, err
	}
	dueDate, err := timeslot.ParseDate(input.DueDate)
	if err != nil {
		return nil, fmt.Errorf("%w: dueDate: %s", domain.ErrInvalidInput, err)
	}

	invoice := &model.Invoice{
		OrganizationID: orgID,
		UserID:         input.UserID,
		ClassID:        input.ClassID,
		Description:    input.Description,
		Amount:         input.Amount,
		DueDate:        dueDate,
		Status:         model.InvoicePending,
	}
	if err := s.invoices.Create(ctx, invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

func (s *InvoiceService) FindAll(ctx context.Context, orgID uuid.UUID) ([]model.Invoice, error) {
	return s.invoices.FindAll(ctx, orgID)
}

func (s *InvoiceService) FindByID(ctx context.Context, orgID, id uuid.UUID) (*model.Invoice, error) {
	return s.invoices.FindByID(ctx, orgID, id)
}

// MarkPaid stamps the invoice PAID with the current time.
func (s *InvoiceService) MarkPaid(ctx context.Context, orgID, id uuid.UUID) (*model.Invoice, error) {
	if err := s.invoices.MarkPaid(ctx, orgID, id, s.clock.UTCNow()); err != nil {
		return nil, err
	}
	return s.invoices.FindByID(ctx, orgID, id)
}
