package postgres

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aidar/workday-backend/internal/domain"
)

// AssetRepository реализует repository.AssetRepository для PostgreSQL
type AssetRepository struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

// NewAssetRepository создает новый экземпляр AssetRepository
func NewAssetRepository(db *pgxpool.Pool) *AssetRepository {
	return &AssetRepository{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Create вставляет новый актив
func (r *AssetRepository) Create(ctx context.Context, a *domain.Asset) (*domain.InsertOneResult, error) {
	query := `
		INSERT INTO assets (asset_name, category, quantity, description, company_name)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query,
		a.AssetName,
		a.Category,
		a.Quantity,
		a.Description,
		a.CompanyName,
	).Scan(&id)
	if err != nil {
		return nil, err
	}

	return &domain.InsertOneResult{InsertedID: id.String()}, nil
}

// GetByID получает актив по идентификатору
func (r *AssetRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Asset, error) {
	query := `
		SELECT id, asset_name, category, quantity, description, company_name, added_at
		FROM assets
		WHERE id = $1
	`

	var a domain.Asset
	err := r.db.QueryRow(ctx, query, id).Scan(
		&a.ID,
		&a.AssetName,
		&a.Category,
		&a.Quantity,
		&a.Description,
		&a.CompanyName,
		&a.AddedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAssetNotFound
		}
		return nil, err
	}

	return &a, nil
}

// List возвращает активы по фильтру. Запрос собирается динамически:
// каждый присланный параметр добавляет свое условие или сортировку.
func (r *AssetRepository) List(ctx context.Context, f domain.AssetFilter) ([]*domain.Asset, error) {
	builder := r.sb.
		Select("id", "asset_name", "category", "quantity", "description", "company_name", "added_at").
		From("assets")

	if f.Search != "" {
		builder = builder.Where(sq.ILike{"asset_name": "%" + f.Search + "%"})
	}

	switch f.StockStatus {
	case domain.StockStatusAvailable:
		builder = builder.Where(sq.Gt{"quantity": 0})
	case domain.StockStatusOutOfStock:
		builder = builder.Where(sq.Eq{"quantity": 0})
	}

	if f.Category != "" {
		builder = builder.Where(sq.Eq{"category": f.Category})
	}

	switch f.SortOrder {
	case domain.SortOrderLowToHigh:
		builder = builder.OrderBy("quantity ASC")
	case domain.SortOrderHighToLow:
		builder = builder.OrderBy("quantity DESC")
	default:
		builder = builder.OrderBy("added_at")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assets := make([]*domain.Asset, 0)
	for rows.Next() {
		var a domain.Asset
		if err := rows.Scan(
			&a.ID,
			&a.AssetName,
			&a.Category,
			&a.Quantity,
			&a.Description,
			&a.CompanyName,
			&a.AddedAt,
		); err != nil {
			return nil, err
		}
		assets = append(assets, &a)
	}

	return assets, rows.Err()
}

// Replace перезаписывает актив целиком; если документа нет — вставляет его
// с переданным id (upsert)
func (r *AssetRepository) Replace(ctx context.Context, id uuid.UUID, a *domain.Asset) (*domain.UpdateResult, error) {
	update := `
		UPDATE assets
		SET asset_name = $2,
		    category = $3,
		    quantity = $4,
		    description = $5,
		    company_name = $6
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, update, id, a.AssetName, a.Category, a.Quantity, a.Description, a.CompanyName)
	if err != nil {
		return nil, err
	}

	if result.RowsAffected() > 0 {
		return &domain.UpdateResult{
			MatchedCount:  result.RowsAffected(),
			ModifiedCount: result.RowsAffected(),
		}, nil
	}

	insert := `
		INSERT INTO assets (id, asset_name, category, quantity, description, company_name)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	if _, err := r.db.Exec(ctx, insert, id, a.AssetName, a.Category, a.Quantity, a.Description, a.CompanyName); err != nil {
		return nil, err
	}

	upsertedID := id.String()
	return &domain.UpdateResult{UpsertedID: &upsertedID}, nil
}

// UpdateFields применяет частичное обновление: в SET попадают только
// заполненные поля патча
func (r *AssetRepository) UpdateFields(ctx context.Context, id uuid.UUID, upd domain.AssetUpdate) (*domain.UpdateResult, error) {
	fields := map[string]interface{}{}
	if upd.AssetName != nil {
		fields["asset_name"] = *upd.AssetName
	}
	if upd.Category != nil {
		fields["category"] = *upd.Category
	}
	if upd.Quantity != nil {
		fields["quantity"] = *upd.Quantity
	}
	if upd.Description != nil {
		fields["description"] = *upd.Description
	}
	if upd.CompanyName != nil {
		fields["company_name"] = *upd.CompanyName
	}

	// Пустой патч: документ не меняется, но matched считается как при
	// обычном обновлении
	if len(fields) == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return nil, err
		}
		return &domain.UpdateResult{MatchedCount: 1}, nil
	}

	query, args, err := r.sb.Update("assets").SetMap(fields).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	if result.RowsAffected() == 0 {
		return nil, domain.ErrAssetNotFound
	}

	return &domain.UpdateResult{
		MatchedCount:  result.RowsAffected(),
		ModifiedCount: result.RowsAffected(),
	}, nil
}

// DecrementQuantity уменьшает количество на 1 одним условным UPDATE:
// при quantity == 0 строка не затрагивается, поэтому значение никогда
// не уходит в минус даже при конкурентных запросах
func (r *AssetRepository) DecrementQuantity(ctx context.Context, id uuid.UUID) (*domain.UpdateResult, error) {
	query := `
		UPDATE assets
		SET quantity = quantity - 1
		WHERE id = $1 AND quantity > 0
	`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return nil, err
	}

	if result.RowsAffected() > 0 {
		return &domain.UpdateResult{
			MatchedCount:  result.RowsAffected(),
			ModifiedCount: result.RowsAffected(),
		}, nil
	}

	// Ничего не обновили: либо актива нет, либо количество уже на нуле
	if _, err := r.GetByID(ctx, id); err != nil {
		return nil, err
	}

	return &domain.UpdateResult{MatchedCount: 1}, nil
}

// Delete удаляет актив по идентификатору
func (r *AssetRepository) Delete(ctx context.Context, id uuid.UUID) (*domain.DeleteResult, error) {
	query := `DELETE FROM assets WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return nil, err
	}

	return &domain.DeleteResult{DeletedCount: result.RowsAffected()}, nil
}
