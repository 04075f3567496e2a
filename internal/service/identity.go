// internal/service/identity.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/arenalabs/courtbook/internal/auth"
	"github.com/arenalabs/courtbook/internal/domain"
	"github.com/arenalabs/courtbook/internal/model"
	"github.com/arenalabs/courtbook/internal/repository"
)

// IdentityService covers login and user administration within a tenant.
type IdentityService struct {
	users    repository.UserRepositoryIface
	hasher   *auth.PasswordHasher
	tokens   *auth.TokenManager
	validate *validator.Validate
}

func NewIdentityService(
	users repository.UserRepositoryIface,
	hasher *auth.PasswordHasher,
	tokens *auth.TokenManager,
) *IdentityService {
	return &IdentityService{
		users:    users,
		hasher:   hasher,
		tokens:   tokens,
		validate: validator.New(),
	}
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResult struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

// Login verifies credentials and issues a tenant-scoped token. Unknown
// email and wrong password are indistinguishable to the caller.
func (s *IdentityService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}

	user, err := s.users.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	ok, err := s.hasher.Verify(input.Password, user.PasswordHash)
	if err != nil || !ok {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(
		user.ID.String(), user.OrganizationID.String(), user.Email, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &LoginResult{Token: token, User: user}, nil
}

type CreateUserInput struct {
	Name     string         `json:"name" validate:"required"`
	Email    string         `json:"email" validate:"required,email"`
	Phone    string         `json:"phone"`
	Password string         `json:"password" validate:"required,min=8"`
	Role     model.UserRole `json:"role" validate:"required,oneof=ADMIN TEACHER MEMBER"`
}

func (s *IdentityService) CreateUser(ctx context.Context, orgID uuid.UUID, input CreateUserInput) (*model.User, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		OrganizationID: orgID,
		Name:           input.Name,
		Email:          input.Email,
		Phone:          input.Phone,
		PasswordHash:   hash,
		Role:           input.Role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *IdentityService) FindUser(ctx context.Context, orgID, id uuid.UUID) (*model.User, error) {
	return s.users.FindByID(ctx, orgID, id)
}

func (s *IdentityService) ListUsers(ctx context.Context, orgID uuid.UUID) ([]model.User, error) {
	return s.users.FindAll(ctx, orgID)
}
