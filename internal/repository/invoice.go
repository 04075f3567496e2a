// internal/repository/invoice.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/arenalabs/courtbook/internal/domain"
	"github.com/arenalabs/courtbook/internal/model"
)

type InvoiceRepositoryIface interface {
	Create(ctx context.Context, invoice *model.Invoice) error
	FindByID(ctx context.Context, orgID, id uuid.UUID) (*model.Invoice, error)
	FindAll(ctx context.Context, orgID uuid.UUID) ([]model.Invoice, error)
	MarkPaid(ctx context.Context, orgID, id uuid.UUID, paidAt time.Time) error
}

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

func (r *InvoiceRepository) Create(ctx context.Context, invoice *model.Invoice) error {
	if err := r.db.WithContext(ctx).Create(invoice).Error; err != nil {
		return fmt.Errorf("failed to create invoice: %w", translatePgError(err))
	}
	return nil
}

func (r *InvoiceRepository) FindByID(ctx context.Context, orgID, id uuid.UUID) (*model.Invoice, error) {
	var invoice model.Invoice
	result := r.db.WithContext(ctx).
		Preload("User").
		Preload("Class").
		Where("organization_id = ?", orgID).
		First(&invoice, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("failed to find invoice: %w", translatePgError(result.Error))
	}
	return &invoice, nil
}

func (r *InvoiceRepository) FindAll(ctx context.Context, orgID uuid.UUID) ([]model.Invoice, error) {
	var invoices []model.Invoice
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("organization_id = ?", orgID).
		Order("due_date ASC").
		Find(&invoices).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", translatePgError(err))
	}
	return invoices, nil
}

func (r *InvoiceRepository) MarkPaid(ctx context.Context, orgID, id uuid.UUID, paidAt time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&model.Invoice{}).
		Where("id = ? AND organization_id = ?", id, orgID).
		Updates(map[string]any{"status": model.InvoicePaid, "paid_date": paidAt})
	if result.Error != nil {
		return fmt.Errorf("failed to mark invoice paid: %w", translatePgError(result.Error))
	}
	if result.RowsAffected == 0 {
		return domain.ErrInvoiceNotFound
	}
	return nil
}
