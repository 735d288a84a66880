package service

import (
	"context"

	"dario.cat/mergo"
	"github.com/google/uuid"

	"github.com/aidar/workday-backend/internal/domain"
	"github.com/aidar/workday-backend/internal/repository"
)

// UserService handles business logic for users
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// CreateUser validates and inserts a new user document
func (s *UserService) CreateUser(ctx context.Context, user *domain.User) (*domain.InsertOneResult, error) {
	if user.Email == "" {
		return nil, domain.ErrEmailRequired
	}

	return s.userRepo.Create(ctx, user)
}

// GetByEmail retrieves a single user by email
func (s *UserService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.userRepo.GetByEmail(ctx, email)
}

// GetAll retrieves all users
func (s *UserService) GetAll(ctx context.Context) ([]*domain.User, error) {
	return s.userRepo.GetAll(ctx)
}

// UpdateProfile merges the submitted fields into the stored user document.
// Fields absent from the patch keep their stored values.
func (s *UserService) UpdateProfile(ctx context.Context, id string, patch *domain.User) (*domain.UpdateResult, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	existing, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Merge non-empty patch fields over the stored document
	if err := mergo.Merge(existing, *patch, mergo.WithOverride); err != nil {
		return nil, err
	}
	existing.ID = userID

	return s.userRepo.Update(ctx, existing)
}
