package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/parasport-hub/content-api/internal/database"
	"github.com/parasport-hub/content-api/internal/models"
)

// tagRepo is the concrete implementation of TagRepository
type tagRepo struct {
	db *database.DB
}

// NewTagRepo creates a new tag repository
func NewTagRepo(db *database.DB) TagRepository {
	return &tagRepo{db: db}
}

// Create inserts a new tag
func (r *tagRepo) Create(ctx context.Context, tag *models.Tag) error {
	query := `
		INSERT INTO tags (name, is_active)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRowContext(ctx, query, tag.Name, tag.IsActive).
		Scan(&tag.ID, &tag.CreatedAt, &tag.UpdatedAt)
}

// Update overwrites a tag's fields; returns false if the id is unknown
func (r *tagRepo) Update(ctx context.Context, tag *models.Tag) (bool, error) {
	query := `
		UPDATE tags SET name = $1, is_active = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING updated_at
	`
	err := r.db.QueryRowContext(ctx, query, tag.Name, tag.IsActive, tag.ID).Scan(&tag.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Delete removes a tag and its news assignments
func (r *tagRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM news_tags WHERE tag_id = $1", id); err != nil {
		return false, err
	}

	res, err := tx.ExecContext(ctx, "DELETE FROM tags WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}
	return affected > 0, nil
}

// GetByID retrieves a tag by id, or (nil, nil) if absent
func (r *tagRepo) GetByID(ctx context.Context, id int64) (*models.Tag, error) {
	query := "SELECT id, name, is_active, created_at, updated_at FROM tags WHERE id = $1"

	var t models.Tag
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&t.ID, &t.Name, &t.IsActive, &t.CreatedAt, &t.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// List retrieves tags by name, optionally active ones only
func (r *tagRepo) List(ctx context.Context, activeOnly bool) ([]*models.Tag, error) {
	query := "SELECT id, name, is_active, created_at, updated_at FROM tags"
	if activeOnly {
		query += " WHERE is_active"
	}
	query += " ORDER BY name"

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tags []*models.Tag
	for rows.Next() {
		var t models.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.IsActive, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		tags = append(tags, &t)
	}
	return tags, rows.Err()
}
