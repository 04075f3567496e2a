// internal/service/court.go
package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/arenalabs/courtbook/internal/domain"
	"github.com/arenalabs/courtbook/internal/model"
	"github.com/arenalabs/courtbook/internal/repository"
)

// CourtService is the court catalog: CRUD with soft deletion so history
// stays attached to deactivated courts.
type CourtService struct {
	courts   repository.CourtRepositoryIface
	validate *validator.Validate
}

func NewCourtService(courts repository.CourtRepositoryIface) *CourtService {
	return &CourtService{courts: courts, validate: validator.New()}
}

type CreateCourtInput struct {
	Name         string   `json:"name" validate:"required"`
	Description  string   `json:"description"`
	SportType    string   `json:"sportType" validate:"required"`
	ImageURL     string   `json:"imageUrl"`
	DefaultPrice *float64 `json:"defaultPrice"`
	PremiumPrice *float64 `json:"premiumPrice"`
}

func (s *CourtService) Create(ctx context.Context, orgID uuid.UUID, input CreateCourtInput) (*model.Court, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}

	court := &model.Court{
		OrganizationID: orgID,
		Name:           input.Name,
		Description:    input.Description,
		SportType:      input.SportType,
		ImageURL:       input.ImageURL,
		IsActive:       true,
		DefaultPrice:   input.DefaultPrice,
		PremiumPrice:   input.PremiumPrice,
	}
	if err := s.courts.Create(ctx, court); err != nil {
		return nil, err
	}
	return court, nil
}

func (s *CourtService) FindAll(ctx context.Context, orgID uuid.UUID, includeInactive bool) ([]model.Court, error) {
	return s.courts.FindAll(ctx, orgID, includeInactive)
}

func (s *CourtService) FindByID(ctx context.Context, orgID, id uuid.UUID) (*model.Court, error) {
	return s.courts.FindByID(ctx, orgID, id)
}

type UpdateCourtInput struct {
	Name         *string  `json:"name"`
	Description  *string  `json:"description"`
	SportType    *string  `json:"sportType"`
	ImageURL     *string  `json:"imageUrl"`
	IsActive     *bool    `json:"isActive"`
	DefaultPrice *float64 `json:"defaultPrice"`
	PremiumPrice *float64 `json:"premiumPrice"`
}

func (s *CourtService) Update(ctx context.Context, orgID, id uuid.UUID, input UpdateCourtInput) (*model.Court, error) {
	court, err := s.courts.FindByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		court.Name = *input.Name
	}
	if input.Description != nil {
		court.Description = *input.Description
	}
	if input.SportType != nil {
		court.SportType = *input.SportType
	}
	if input.ImageURL != nil {
		court.ImageURL = *input.ImageURL
	}
	if input.IsActive != nil {
		court.IsActive = *input.IsActive
	}
	if input.DefaultPrice != nil {
		court.DefaultPrice = input.DefaultPrice
	}
	if input.PremiumPrice != nil {
		court.PremiumPrice = input.PremiumPrice
	}

	if err := s.courts.Update(ctx, court); err != nil {
		return nil, err
	}
	return court, nil
}

// Deactivate soft-deletes the court; its availability rules and bookings
// remain queryable.
func (s *CourtService) Deactivate(ctx context.Context, orgID, id uuid.UUID) error {
	return s.courts.Deactivate(ctx, orgID, id)
}
