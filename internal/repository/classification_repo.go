package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/parasport-hub/content-api/internal/database"
	"github.com/parasport-hub/content-api/internal/models"
)

// classificationRepo is the concrete implementation of ClassificationRepository
type classificationRepo struct {
	db *database.DB
}

// NewClassificationRepo creates a new classification repository
func NewClassificationRepo(db *database.DB) ClassificationRepository {
	return &classificationRepo{db: db}
}

// Create inserts a new classification
func (r *classificationRepo) Create(ctx context.Context, classification *models.Classification) error {
	query := `
		INSERT INTO classifications (name, priority, is_active)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRowContext(ctx, query,
		classification.Name, classification.Priority, classification.IsActive,
	).Scan(&classification.ID, &classification.CreatedAt, &classification.UpdatedAt)
}

// Update overwrites a classification's fields; returns false if the id
// is unknown
func (r *classificationRepo) Update(ctx context.Context, classification *models.Classification) (bool, error) {
	query := `
		UPDATE classifications
		SET name = $1, priority = $2, is_active = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		classification.Name, classification.Priority, classification.IsActive, classification.ID,
	).Scan(&classification.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Delete removes a classification and its news assignments
func (r *classificationRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM news_classifications WHERE classification_id = $1", id); err != nil {
		return false, err
	}

	res, err := tx.ExecContext(ctx, "DELETE FROM classifications WHERE id = $1", id)
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

// GetByID retrieves a classification by id, or (nil, nil) if absent
func (r *classificationRepo) GetByID(ctx context.Context, id int64) (*models.Classification, error) {
	query := "SELECT id, name, priority, is_active, created_at, updated_at FROM classifications WHERE id = $1"

	var cl models.Classification
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&cl.ID, &cl.Name, &cl.Priority, &cl.IsActive, &cl.CreatedAt, &cl.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cl, nil
}

// List retrieves classifications ordered by priority ascending,
// optionally active ones only
func (r *classificationRepo) List(ctx context.Context, activeOnly bool) ([]*models.Classification, error) {
	query := "SELECT id, name, priority, is_active, created_at, updated_at FROM classifications"
	if activeOnly {
		query += " WHERE is_active"
	}
	query += " ORDER BY priority ASC, name"

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classifications []*models.Classification
	for rows.Next() {
		var cl models.Classification
		if err := rows.Scan(&cl.ID, &cl.Name, &cl.Priority, &cl.IsActive, &cl.CreatedAt, &cl.UpdatedAt); err != nil {
			return nil, err
		}
		classifications = append(classifications, &cl)
	}
	return classifications, rows.Err()
}
