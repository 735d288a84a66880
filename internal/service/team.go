package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/aidar/workday-backend/internal/domain"
	"github.com/aidar/workday-backend/internal/repository"
)

// TeamService handles business logic for team memberships
type TeamService struct {
	teamRepo repository.TeamRepository
}

// NewTeamService creates a new TeamService
func NewTeamService(teamRepo repository.TeamRepository) *TeamService {
	return &TeamService{
		teamRepo: teamRepo,
	}
}

// AddMember admits a membership record. Only the "employee" role is accepted.
func (s *TeamService) AddMember(ctx context.Context, m *domain.TeamMembership) (*domain.InsertOneResult, error) {
	if m.Email == "" || m.UserEmail == "" {
		return nil, domain.ErrEmailRequired
	}
	if m.Role != domain.RoleEmployee {
		return nil, domain.ErrInvalidRole
	}

	return s.teamRepo.Create(ctx, m)
}

// GetByEmployer lists memberships created by the given employer email
func (s *TeamService) GetByEmployer(ctx context.Context, employerEmail string) ([]*domain.TeamMembership, error) {
	return s.teamRepo.GetByEmployer(ctx, employerEmail)
}

// GetMyTeam lists the colleagues of a member: every membership that shares
// the member's employer
func (s *TeamService) GetMyTeam(ctx context.Context, memberEmail string) ([]*domain.TeamMembership, error) {
	membership, err := s.teamRepo.GetByMember(ctx, memberEmail)
	if err != nil {
		return nil, err
	}

	return s.teamRepo.GetByEmployer(ctx, membership.UserEmail)
}

// GetMembership retrieves the membership record of a member, carrying the
// employer (HR) email reference
func (s *TeamService) GetMembership(ctx context.Context, memberEmail string) (*domain.TeamMembership, error) {
	return s.teamRepo.GetByMember(ctx, memberEmail)
}

// RemoveMember deletes a membership record by id
func (s *TeamService) RemoveMember(ctx context.Context, id string) (*domain.DeleteResult, error) {
	memberID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	return s.teamRepo.Delete(ctx, memberID)
}
