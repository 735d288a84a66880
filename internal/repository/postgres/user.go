package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aidar/workday-backend/internal/domain"
)

// UserRepository реализует repository.UserRepository для PostgreSQL
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository создает новый экземпляр UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// Create вставляет нового пользователя; дубликат email превращается в ErrUserExists
func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.InsertOneResult, error) {
	query := `
		INSERT INTO users (email, name, photo_url, role, designation, bank_account_no, salary, work_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query,
		user.Email,
		user.Name,
		user.PhotoURL,
		user.Role,
		user.Designation,
		user.BankAccountNo,
		user.Salary,
		user.WorkAt,
	).Scan(&id)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrUserExists
		}
		return nil, err
	}

	return &domain.InsertOneResult{InsertedID: id.String()}, nil
}

// GetByEmail получает пользователя по email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT id, email, name, photo_url, role, designation, bank_account_no, salary, work_at, created_at
		FROM users
		WHERE email = $1
	`

	return r.scanUser(r.db.QueryRow(ctx, query, email))
}

// GetByID получает пользователя по идентификатору
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := `
		SELECT id, email, name, photo_url, role, designation, bank_account_no, salary, work_at, created_at
		FROM users
		WHERE id = $1
	`

	return r.scanUser(r.db.QueryRow(ctx, query, id))
}

// GetAll возвращает всех пользователей
func (r *UserRepository) GetAll(ctx context.Context) ([]*domain.User, error) {
	query := `
		SELECT id, email, name, photo_url, role, designation, bank_account_no, salary, work_at, created_at
		FROM users
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]*domain.User, 0)
	for rows.Next() {
		user, err := r.scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, rows.Err()
}

// Update перезаписывает документ пользователя целиком по id
func (r *UserRepository) Update(ctx context.Context, user *domain.User) (*domain.UpdateResult, error) {
	query := `
		UPDATE users
		SET email = $2,
		    name = $3,
		    photo_url = $4,
		    role = $5,
		    designation = $6,
		    bank_account_no = $7,
		    salary = $8,
		    work_at = $9
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		user.ID,
		user.Email,
		user.Name,
		user.PhotoURL,
		user.Role,
		user.Designation,
		user.BankAccountNo,
		user.Salary,
		user.WorkAt,
	)
	if err != nil {
		return nil, err
	}

	if result.RowsAffected() == 0 {
		return nil, domain.ErrUserNotFound
	}

	return &domain.UpdateResult{
		MatchedCount:  result.RowsAffected(),
		ModifiedCount: result.RowsAffected(),
	}, nil
}

func (r *UserRepository) scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.PhotoURL,
		&user.Role,
		&user.Designation,
		&user.BankAccountNo,
		&user.Salary,
		&user.WorkAt,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}
