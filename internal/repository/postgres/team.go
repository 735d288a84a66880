package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aidar/workday-backend/internal/domain"
)

// TeamRepository реализует repository.TeamRepository для PostgreSQL
type TeamRepository struct {
	db *pgxpool.Pool
}

// NewTeamRepository создает новый экземпляр TeamRepository
func NewTeamRepository(db *pgxpool.Pool) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create вставляет новую запись о членстве
func (r *TeamRepository) Create(ctx context.Context, m *domain.TeamMembership) (*domain.InsertOneResult, error) {
	query := `
		INSERT INTO team_members (email, user_email, role, member_name, photo_url, company_name)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query,
		m.Email,
		m.UserEmail,
		m.Role,
		m.MemberName,
		m.PhotoURL,
		m.CompanyName,
	).Scan(&id)
	if err != nil {
		return nil, err
	}

	return &domain.InsertOneResult{InsertedID: id.String()}, nil
}

// GetByEmployer возвращает все записи, созданные работодателем
func (r *TeamRepository) GetByEmployer(ctx context.Context, employerEmail string) ([]*domain.TeamMembership, error) {
	query := `
		SELECT id, email, user_email, role, member_name, photo_url, company_name, joined_at
		FROM team_members
		WHERE user_email = $1
		ORDER BY joined_at
	`

	rows, err := r.db.Query(ctx, query, employerEmail)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanMemberships(rows)
}

// GetByMember получает запись о членстве участника.
// Если участник состоит в нескольких командах, возвращается самая ранняя.
func (r *TeamRepository) GetByMember(ctx context.Context, memberEmail string) (*domain.TeamMembership, error) {
	query := `
		SELECT id, email, user_email, role, member_name, photo_url, company_name, joined_at
		FROM team_members
		WHERE email = $1
		ORDER BY joined_at
		LIMIT 1
	`

	var m domain.TeamMembership
	err := r.db.QueryRow(ctx, query, memberEmail).Scan(
		&m.ID,
		&m.Email,
		&m.UserEmail,
		&m.Role,
		&m.MemberName,
		&m.PhotoURL,
		&m.CompanyName,
		&m.JoinedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMembershipNotFound
		}
		return nil, err
	}

	return &m, nil
}

// Delete удаляет запись о членстве по идентификатору
func (r *TeamRepository) Delete(ctx context.Context, id uuid.UUID) (*domain.DeleteResult, error) {
	query := `DELETE FROM team_members WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return nil, err
	}

	return &domain.DeleteResult{DeletedCount: result.RowsAffected()}, nil
}

func scanMemberships(rows pgx.Rows) ([]*domain.TeamMembership, error) {
	members := make([]*domain.TeamMembership, 0)
	for rows.Next() {
		var m domain.TeamMembership
		if err := rows.Scan(
			&m.ID,
			&m.Email,
			&m.UserEmail,
			&m.Role,
			&m.MemberName,
			&m.PhotoURL,
			&m.CompanyName,
			&m.JoinedAt,
		); err != nil {
			return nil, err
		}
		members = append(members, &m)
	}

	return members, rows.Err()
}
