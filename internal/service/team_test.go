package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidar/workday-backend/internal/domain"
)

// fakeTeamRepo реализует repository.TeamRepository в памяти
type fakeTeamRepo struct {
	memberships []*domain.TeamMembership
}

func (f *fakeTeamRepo) Create(_ context.Context, m *domain.TeamMembership) (*domain.InsertOneResult, error) {
	stored := *m
	stored.ID = uuid.New()
	f.memberships = append(f.memberships, &stored)
	return &domain.InsertOneResult{InsertedID: stored.ID.String()}, nil
}

func (f *fakeTeamRepo) GetByEmployer(_ context.Context, employerEmail string) ([]*domain.TeamMembership, error) {
	result := make([]*domain.TeamMembership, 0)
	for _, m := range f.memberships {
		if m.UserEmail == employerEmail {
			result = append(result, m)
		}
	}
	return result, nil
}

func (f *fakeTeamRepo) GetByMember(_ context.Context, memberEmail string) (*domain.TeamMembership, error) {
	for _, m := range f.memberships {
		if m.Email == memberEmail {
			return m, nil
		}
	}
	return nil, domain.ErrMembershipNotFound
}

func (f *fakeTeamRepo) Delete(_ context.Context, id uuid.UUID) (*domain.DeleteResult, error) {
	for i, m := range f.memberships {
		if m.ID == id {
			f.memberships = append(f.memberships[:i], f.memberships[i+1:]...)
			return &domain.DeleteResult{DeletedCount: 1}, nil
		}
	}
	return &domain.DeleteResult{}, nil
}

func TestTeamService_AddMember_RejectsNonEmployeeRole(t *testing.T) {
	repo := &fakeTeamRepo{}
	svc := NewTeamService(repo)

	_, err := svc.AddMember(context.Background(), &domain.TeamMembership{
		Email:     "bob@office.io",
		UserEmail: "hr@office.io",
		Role:      "manager",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidRole)
	assert.Empty(t, repo.memberships)
}

func TestTeamService_AddMember_RequiresEmails(t *testing.T) {
	svc := NewTeamService(&fakeTeamRepo{})

	_, err := svc.AddMember(context.Background(), &domain.TeamMembership{Role: domain.RoleEmployee})

	assert.ErrorIs(t, err, domain.ErrEmailRequired)
}

func TestTeamService_AddMember_AdmitsEmployee(t *testing.T) {
	repo := &fakeTeamRepo{}
	svc := NewTeamService(repo)

	result, err := svc.AddMember(context.Background(), &domain.TeamMembership{
		Email:     "bob@office.io",
		UserEmail: "hr@office.io",
		Role:      domain.RoleEmployee,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, result.InsertedID)
	assert.Len(t, repo.memberships, 1)
}

func TestTeamService_GetMyTeam_ListsColleagues(t *testing.T) {
	repo := &fakeTeamRepo{}
	svc := NewTeamService(repo)
	ctx := context.Background()

	for _, email := range []string{"bob@office.io", "carol@office.io"} {
		_, err := svc.AddMember(ctx, &domain.TeamMembership{
			Email:     email,
			UserEmail: "hr@office.io",
			Role:      domain.RoleEmployee,
		})
		require.NoError(t, err)
	}
	_, err := svc.AddMember(ctx, &domain.TeamMembership{
		Email:     "dave@other.io",
		UserEmail: "hr@other.io",
		Role:      domain.RoleEmployee,
	})
	require.NoError(t, err)

	team, err := svc.GetMyTeam(ctx, "bob@office.io")
	require.NoError(t, err)

	assert.Len(t, team, 2, "only memberships sharing bob's employer")
	for _, m := range team {
		assert.Equal(t, "hr@office.io", m.UserEmail)
	}
}

func TestTeamService_GetMyTeam_UnknownMember(t *testing.T) {
	svc := NewTeamService(&fakeTeamRepo{})

	_, err := svc.GetMyTeam(context.Background(), "ghost@office.io")

	assert.ErrorIs(t, err, domain.ErrMembershipNotFound)
}

func TestTeamService_RemoveMember_InvalidID(t *testing.T) {
	svc := NewTeamService(&fakeTeamRepo{})

	_, err := svc.RemoveMember(context.Background(), "42")

	assert.ErrorIs(t, err, domain.ErrInvalidID)
}
