package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/finhaus/home_finance_app/internal/apperrors"
	"github.com/finhaus/home_finance_app/internal/core/domain"
	portsrepo "github.com/finhaus/home_finance_app/internal/core/ports/repositories"
	"github.com/finhaus/home_finance_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCategoryRepository struct {
	db *pgxpool.Pool
}

func newPgxCategoryRepository(db *pgxpool.Pool) portsrepo.CategoryRepository {
	return &PgxCategoryRepository{db: db}
}

// Ensure PgxCategoryRepository implements portsrepo.CategoryRepository
var _ portsrepo.CategoryRepository = (*PgxCategoryRepository)(nil)

func toDomainCategory(m models.Category) domain.Category {
	return domain.Category{
		CategoryID: m.CategoryID,
		Name:       m.Name,
		Type:       domain.CategoryType(m.Type),
		Color:      m.Color,
		IsArchived: m.IsArchived,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

func scanCategoryRow(row pgx.Row, m *models.Category) error {
	return row.Scan(
		&m.CategoryID,
		&m.Name,
		&m.Type,
		&m.Color,
		&m.IsArchived,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
}

const categoryColumns = `category_id, name, type, color, is_archived, created_at, created_by, last_updated_at, last_updated_by`

func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	query := `
        INSERT INTO categories (category_id, name, type, color, is_archived, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `
	_, err := r.db.Exec(ctx, query,
		category.CategoryID,
		category.Name,
		string(category.Type),
		category.Color,
		category.IsArchived,
		category.CreatedAt,
		category.CreatedBy,
		category.LastUpdatedAt,
		category.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return fmt.Errorf("%w: category name already exists for this type", apperrors.ErrDuplicate)
			}
		}
		return fmt.Errorf("failed to save category: %w", err)
	}
	return nil
}

func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE category_id = $1;`
	var m models.Category
	if err := scanCategoryRow(r.db.QueryRow(ctx, query, categoryID), &m); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find category %s: %w", categoryID, err)
	}
	category := toDomainCategory(m)
	return &category, nil
}

func (r *PgxCategoryRepository) ListCategories(ctx context.Context, includeArchived bool) ([]domain.Category, error) {
	query := `
        SELECT ` + categoryColumns + `
        FROM categories
        WHERE ($1 OR NOT is_archived)
        ORDER BY type ASC, name ASC;
    `
	rows, err := r.db.Query(ctx, query, includeArchived)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var m models.Category
		if err := scanCategoryRow(rows, &m); err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		categories = append(categories, toDomainCategory(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating category rows: %w", rows.Err())
	}
	return categories, nil
}

func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	// Type is immutable; it is deliberately absent from the SET list.
	query := `
        UPDATE categories
        SET name = $2, color = $3, last_updated_at = $4, last_updated_by = $5
        WHERE category_id = $1;
    `
	tag, err := r.db.Exec(ctx, query,
		category.CategoryID,
		category.Name,
		category.Color,
		category.LastUpdatedAt,
		category.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update category %s: %w", category.CategoryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxCategoryRepository) ArchiveCategory(ctx context.Context, categoryID string, userID string, now time.Time) error {
	query := `
        UPDATE categories
        SET is_archived = TRUE, last_updated_at = $2, last_updated_by = $3
        WHERE category_id = $1 AND NOT is_archived;
    `
	tag, err := r.db.Exec(ctx, query, categoryID, now, userID)
	if err != nil {
		return fmt.Errorf("failed to archive category %s: %w", categoryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
