package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidar/workday-backend/internal/domain"
)

// fakeUserRepo реализует repository.UserRepository в памяти
type fakeUserRepo struct {
	byEmail     map[string]*domain.User
	byID        map[uuid.UUID]*domain.User
	lastUpdated *domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: make(map[string]*domain.User),
		byID:    make(map[uuid.UUID]*domain.User),
	}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) (*domain.InsertOneResult, error) {
	if _, ok := f.byEmail[user.Email]; ok {
		return nil, domain.ErrUserExists
	}

	stored := *user
	stored.ID = uuid.New()
	f.byEmail[stored.Email] = &stored
	f.byID[stored.ID] = &stored

	return &domain.InsertOneResult{InsertedID: stored.ID.String()}, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	user, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) GetAll(_ context.Context) ([]*domain.User, error) {
	users := make([]*domain.User, 0, len(f.byID))
	for _, u := range f.byID {
		copied := *u
		users = append(users, &copied)
	}
	return users, nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *domain.User) (*domain.UpdateResult, error) {
	if _, ok := f.byID[user.ID]; !ok {
		return nil, domain.ErrUserNotFound
	}

	stored := *user
	f.byID[stored.ID] = &stored
	f.byEmail[stored.Email] = &stored
	f.lastUpdated = &stored

	return &domain.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func TestUserService_CreateUser_RequiresEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	_, err := svc.CreateUser(context.Background(), &domain.User{})

	assert.ErrorIs(t, err, domain.ErrEmailRequired)
	assert.Empty(t, repo.byEmail, "nothing should reach the store")
}

func TestUserService_CreateUser_DuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)
	ctx := context.Background()

	first, err := svc.CreateUser(ctx, &domain.User{Email: "alice@office.io"})
	require.NoError(t, err)
	require.NotEmpty(t, first.InsertedID)

	_, err = svc.CreateUser(ctx, &domain.User{Email: "alice@office.io"})
	assert.ErrorIs(t, err, domain.ErrUserExists)
	assert.Len(t, repo.byEmail, 1, "store must contain exactly one document for the email")
}

func TestUserService_UpdateProfile_MergesFields(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)
	ctx := context.Background()

	name := "Alice"
	created, err := svc.CreateUser(ctx, &domain.User{Email: "alice@office.io", Name: &name})
	require.NoError(t, err)

	designation := "HR Manager"
	_, err = svc.UpdateProfile(ctx, created.InsertedID, &domain.User{Designation: &designation})
	require.NoError(t, err)

	updated := repo.lastUpdated
	require.NotNil(t, updated)
	assert.Equal(t, "alice@office.io", updated.Email, "fields absent from the patch keep stored values")
	require.NotNil(t, updated.Name)
	assert.Equal(t, "Alice", *updated.Name)
	require.NotNil(t, updated.Designation)
	assert.Equal(t, "HR Manager", *updated.Designation)
}

func TestUserService_UpdateProfile_InvalidID(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	_, err := svc.UpdateProfile(context.Background(), "not-a-uuid", &domain.User{})

	assert.ErrorIs(t, err, domain.ErrInvalidID)
}

func TestUserService_UpdateProfile_NotFound(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	_, err := svc.UpdateProfile(context.Background(), uuid.NewString(), &domain.User{})

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
