package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/aidar/workday-backend/internal/domain"
)

// UserRepository определяет методы для работы с данными пользователей
type UserRepository interface {
	// Create вставляет нового пользователя; email должен быть уникален
	Create(ctx context.Context, user *domain.User) (*domain.InsertOneResult, error)

	// GetByEmail получает пользователя по email
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// GetByID получает пользователя по идентификатору
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetAll возвращает всех пользователей
	GetAll(ctx context.Context) ([]*domain.User, error)

	// Update перезаписывает документ пользователя целиком
	Update(ctx context.Context, user *domain.User) (*domain.UpdateResult, error)
}

// TeamRepository определяет методы для работы с записями о членстве
type TeamRepository interface {
	// Create вставляет новую запись о членстве
	Create(ctx context.Context, m *domain.TeamMembership) (*domain.InsertOneResult, error)

	// GetByEmployer возвращает все записи, созданные работодателем
	GetByEmployer(ctx context.Context, employerEmail string) ([]*domain.TeamMembership, error)

	// GetByMember получает запись о членстве участника
	GetByMember(ctx context.Context, memberEmail string) (*domain.TeamMembership, error)

	// Delete удаляет запись о членстве по идентификатору
	Delete(ctx context.Context, id uuid.UUID) (*domain.DeleteResult, error)
}

// AssetRepository определяет методы для работы с активами
type AssetRepository interface {
	// Create вставляет новый актив
	Create(ctx context.Context, a *domain.Asset) (*domain.InsertOneResult, error)

	// GetByID получает актив по идентификатору
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Asset, error)

	// List возвращает активы по фильтру (поиск, наличие, категория, сортировка)
	List(ctx context.Context, f domain.AssetFilter) ([]*domain.Asset, error)

	// Replace перезаписывает актив целиком, вставляя документ если его нет (upsert)
	Replace(ctx context.Context, id uuid.UUID, a *domain.Asset) (*domain.UpdateResult, error)

	// UpdateFields применяет частичное обновление: только заполненные поля
	UpdateFields(ctx context.Context, id uuid.UUID, upd domain.AssetUpdate) (*domain.UpdateResult, error)

	// DecrementQuantity атомарно уменьшает количество на 1, но не ниже нуля
	DecrementQuantity(ctx context.Context, id uuid.UUID) (*domain.UpdateResult, error)

	// Delete удаляет актив по идентификатору
	Delete(ctx context.Context, id uuid.UUID) (*domain.DeleteResult, error)
}
