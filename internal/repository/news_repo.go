package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/parasport-hub/content-api/internal/database"
	"github.com/parasport-hub/content-api/internal/models"
)

// newsColumns lists the news columns in scan order
const newsColumns = `id, title, slug, excerpt, content, featured_image, other_images,
		status, read_time, view_count, meta_description, meta_keywords,
		category_id, published_at, created_at, updated_at`

// newsSelect joins the owning category so listings carry its name
const newsSelect = `
	SELECT n.id, n.title, n.slug, n.excerpt, n.content, n.featured_image, n.other_images,
		n.status, n.read_time, n.view_count, n.meta_description, n.meta_keywords,
		n.category_id, n.published_at, n.created_at, n.updated_at, c.name
	FROM news n
	LEFT JOIN categories c ON c.id = n.category_id`

// sortColumns maps API sort fields to news columns
var sortColumns = map[string]string{
	"createdAt":   "n.created_at",
	"updatedAt":   "n.updated_at",
	"publishedAt": "n.published_at",
	"title":       "n.title",
	"viewCount":   "n.view_count",
}

// newsRepo is the concrete implementation of NewsRepository
type newsRepo struct {
	db *database.DB
}

// NewNewsRepo creates a new news repository
func NewNewsRepo(db *database.DB) NewsRepository {
	return &newsRepo{db: db}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanNews scans a row produced by newsSelect (category name included)
func scanNews(row rowScanner) (*models.News, error) {
	n, categoryName, err := scanNewsInto(row, true)
	if err != nil {
		return nil, err
	}
	if categoryName.Valid {
		n.CategoryName = categoryName.String
	}
	return n, nil
}

// scanNewsRow scans a bare news row (RETURNING clauses, no category join)
func scanNewsRow(row rowScanner) (*models.News, error) {
	n, _, err := scanNewsInto(row, false)
	return n, err
}

func scanNewsInto(row rowScanner, withCategory bool) (*models.News, sql.NullString, error) {
	var n models.News
	var featuredImage, metaDescription, metaKeywords, categoryName sql.NullString
	var publishedAt sql.NullTime
	var otherImages pq.StringArray

	dest := []interface{}{
		&n.ID, &n.Title, &n.Slug, &n.Excerpt, &n.Content, &featuredImage, &otherImages,
		&n.Status, &n.ReadTime, &n.ViewCount, &metaDescription, &metaKeywords,
		&n.CategoryID, &publishedAt, &n.CreatedAt, &n.UpdatedAt,
	}
	if withCategory {
		dest = append(dest, &categoryName)
	}
	if err := row.Scan(dest...); err != nil {
		return nil, categoryName, err
	}

	n.OtherImages = []string(otherImages)
	if featuredImage.Valid {
		n.FeaturedImage = &featuredImage.String
	}
	if metaDescription.Valid {
		n.MetaDescription = &metaDescription.String
	}
	if metaKeywords.Valid {
		n.MetaKeywords = &metaKeywords.String
	}
	if publishedAt.Valid {
		t := publishedAt.Time
		n.PublishedAt = &t
	}
	return &n, categoryName, nil
}

// Create inserts the news row and its tag/classification join rows in
// one transaction. The store-assigned id and timestamps are written
// back onto n.
func (r *newsRepo) Create(ctx context.Context, n *models.News, tagIDs, classificationIDs []int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	otherImages := n.OtherImages
	if otherImages == nil {
		otherImages = []string{}
	}

	query := `
		INSERT INTO news (title, slug, excerpt, content, featured_image, other_images,
			status, read_time, meta_description, meta_keywords, category_id, published_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, view_count, created_at, updated_at
	`
	err = tx.QueryRowContext(ctx, query,
		n.Title, n.Slug, n.Excerpt, n.Content, n.FeaturedImage, pq.Array(otherImages),
		n.Status, n.ReadTime, n.MetaDescription, n.MetaKeywords, n.CategoryID, n.PublishedAt,
	).Scan(&n.ID, &n.ViewCount, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return err
	}

	if len(tagIDs) > 0 {
		if err := insertJoinRows(ctx, tx, "news_tags", "tag_id", n.ID, tagIDs); err != nil {
			return err
		}
	}
	if len(classificationIDs) > 0 {
		if err := insertJoinRows(ctx, tx, "news_classifications", "classification_id", n.ID, classificationIDs); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Update applies a column patch and, when the patch carries relation
// lists, replaces the join rows wholesale. Returns (nil, nil) when no
// row matches the id; the whole transaction rolls back in that case.
func (r *newsRepo) Update(ctx context.Context, id int64, patch *models.NewsPatch) (*models.News, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var set []string
	var args []interface{}
	add := func(column string, value interface{}) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.Slug != nil {
		add("slug", *patch.Slug)
	}
	if patch.Excerpt != nil {
		add("excerpt", *patch.Excerpt)
	}
	if patch.Content != nil {
		add("content", *patch.Content)
	}
	if patch.ReadTime != nil {
		add("read_time", *patch.ReadTime)
	}
	if patch.FeaturedImage != nil {
		add("featured_image", *patch.FeaturedImage)
	}
	if patch.OtherImages != nil {
		add("other_images", pq.Array(*patch.OtherImages))
	}
	if patch.Status != nil {
		add("status", *patch.Status)
	}
	if patch.MetaDescription != nil {
		add("meta_description", *patch.MetaDescription)
	}
	if patch.MetaKeywords != nil {
		add("meta_keywords", *patch.MetaKeywords)
	}
	if patch.CategoryID != nil {
		add("category_id", *patch.CategoryID)
	}
	if patch.ClearPublishedAt {
		set = append(set, "published_at = NULL")
	} else if patch.PublishedAt != nil {
		add("published_at", *patch.PublishedAt)
	}
	set = append(set, "updated_at = NOW()")

	args = append(args, id)
	query := fmt.Sprintf("UPDATE news SET %s WHERE id = $%d RETURNING %s",
		strings.Join(set, ", "), len(args), newsColumns)

	n, err := scanNewsRow(tx.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if patch.Tags != nil {
		if err := replaceJoinRows(ctx, tx, "news_tags", "tag_id", id, *patch.Tags); err != nil {
			return nil, err
		}
	}
	if patch.Classifications != nil {
		if err := replaceJoinRows(ctx, tx, "news_classifications", "classification_id", id, *patch.Classifications); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return n, nil
}

// Delete removes the join rows and then the news row in one transaction.
// Returns (nil, nil) when no row matched.
func (r *newsRepo) Delete(ctx context.Context, id int64) (*models.News, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM news_tags WHERE news_id = $1", id); err != nil {
		return nil, err
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM news_classifications WHERE news_id = $1", id); err != nil {
		return nil, err
	}

	query := fmt.Sprintf("DELETE FROM news WHERE id = $1 RETURNING %s", newsColumns)
	n, err := scanNewsRow(tx.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		// still commit: join-row deletes were no-ops
		if err := tx.Commit(); err != nil {
			return nil, err
		}
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return n, nil
}

// DeleteMany removes a batch of articles and their join rows, returning
// how many news rows were deleted.
func (r *newsRepo) DeleteMany(ctx context.Context, ids []int64) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM news_tags WHERE news_id = ANY($1)", pq.Array(ids)); err != nil {
		return 0, err
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM news_classifications WHERE news_id = ANY($1)", pq.Array(ids)); err != nil {
		return 0, err
	}

	res, err := tx.ExecContext(ctx, "DELETE FROM news WHERE id = ANY($1)", pq.Array(ids))
	if err != nil {
		return 0, err
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return int(deleted), nil
}

// UpdateStatusMany sets the status on all matching ids in one statement.
// Publishing stamps published_at, moving to draft clears it, archiving
// leaves it untouched.
func (r *newsRepo) UpdateStatusMany(ctx context.Context, ids []int64, status string) ([]*models.News, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	set := "status = $1, updated_at = NOW()"
	switch status {
	case models.StatusPublished:
		set += ", published_at = NOW()"
	case models.StatusDraft:
		set += ", published_at = NULL"
	}

	query := fmt.Sprintf("UPDATE news SET %s WHERE id = ANY($2) RETURNING %s", set, newsColumns)
	rows, err := r.db.QueryContext(ctx, query, status, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var updated []*models.News
	for rows.Next() {
		n, err := scanNewsRow(rows)
		if err != nil {
			return nil, err
		}
		updated = append(updated, n)
	}
	return updated, rows.Err()
}

// IncrementViews adds exactly 1 to the stored view count in a single
// UPDATE expression so concurrent increments are never lost. Returns
// (nil, nil) when no row matched.
func (r *newsRepo) IncrementViews(ctx context.Context, id int64) (*models.News, error) {
	query := fmt.Sprintf("UPDATE news SET view_count = view_count + 1 WHERE id = $1 RETURNING %s", newsColumns)
	n, err := scanNewsRow(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return n, nil
}

// GetByID retrieves a news article by id, or (nil, nil) if absent
func (r *newsRepo) GetByID(ctx context.Context, id int64) (*models.News, error) {
	n, err := scanNews(r.db.QueryRowContext(ctx, newsSelect+" WHERE n.id = $1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return n, nil
}

// GetBySlug retrieves a news article by slug, optionally restricted to
// published articles, or (nil, nil) if absent
func (r *newsRepo) GetBySlug(ctx context.Context, slug string, publishedOnly bool) (*models.News, error) {
	query := newsSelect + " WHERE n.slug = $1"
	args := []interface{}{slug}
	if publishedOnly {
		query += " AND n.status = $2"
		args = append(args, models.StatusPublished)
	}

	n, err := scanNews(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return n, nil
}

// buildNewsWhere assembles the conjunctive WHERE clause for a filter.
// Only the search clause uses OR, across title, excerpt and content.
func buildNewsWhere(filter *models.NewsFilter) (string, []interface{}) {
	var conds []string
	var args []interface{}
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Search != "" {
		p := arg("%" + filter.Search + "%")
		conds = append(conds, fmt.Sprintf("(n.title ILIKE %s OR n.excerpt ILIKE %s OR n.content ILIKE %s)", p, p, p))
	}
	status := filter.Status
	if filter.PublishedOnly {
		status = models.StatusPublished
	}
	if status != "" && status != "all" {
		conds = append(conds, "n.status = "+arg(status))
	}
	if filter.CategoryID != nil {
		conds = append(conds, "n.category_id = "+arg(*filter.CategoryID))
	}
	if filter.ClassificationID != nil {
		conds = append(conds, "EXISTS (SELECT 1 FROM news_classifications nc WHERE nc.news_id = n.id AND nc.classification_id = "+arg(*filter.ClassificationID)+")")
	}
	if filter.DateFrom != nil {
		conds = append(conds, "n.created_at >= "+arg(*filter.DateFrom))
	}
	if filter.DateTo != nil {
		conds = append(conds, "n.created_at <= "+arg(*filter.DateTo))
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// List retrieves news matching the filter with one sort column and
// optional limit/offset
func (r *newsRepo) List(ctx context.Context, filter *models.NewsFilter) ([]*models.News, error) {
	where, args := buildNewsWhere(filter)

	column, ok := sortColumns[filter.SortBy]
	if !ok {
		column = "n.created_at"
	}
	direction := "DESC"
	if strings.EqualFold(filter.SortOrder, "asc") {
		direction = "ASC"
	}

	query := newsSelect + where + fmt.Sprintf(" ORDER BY %s %s", column, direction)
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*models.News
	for rows.Next() {
		n, err := scanNews(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, n)
	}
	return list, rows.Err()
}

// Count returns how many news rows match the filter, ignoring paging
func (r *newsRepo) Count(ctx context.Context, filter *models.NewsFilter) (int, error) {
	where, args := buildNewsWhere(filter)

	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM news n"+where, args...).Scan(&count)
	return count, err
}

// SlugExists checks whether a slug is taken, optionally excluding the
// article being updated (excludeID 0 excludes nothing)
func (r *newsRepo) SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM news WHERE slug = $1 AND id <> $2)",
		slug, excludeID,
	).Scan(&exists)
	return exists, err
}

// TagsFor retrieves the tags attached to an article. The inner join
// drops any assignment whose tag no longer resolves.
func (r *newsRepo) TagsFor(ctx context.Context, newsID int64) ([]models.Tag, error) {
	query := `
		SELECT t.id, t.name, t.is_active, t.created_at, t.updated_at
		FROM news_tags nt
		JOIN tags t ON t.id = nt.tag_id
		WHERE nt.news_id = $1
		ORDER BY t.name
	`
	rows, err := r.db.QueryContext(ctx, query, newsID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tags []models.Tag
	for rows.Next() {
		var t models.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.IsActive, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}

// ClassificationsFor retrieves the classifications attached to an
// article, ordered by priority ascending
func (r *newsRepo) ClassificationsFor(ctx context.Context, newsID int64) ([]models.Classification, error) {
	query := `
		SELECT cl.id, cl.name, cl.priority, cl.is_active, cl.created_at, cl.updated_at
		FROM news_classifications nc
		JOIN classifications cl ON cl.id = nc.classification_id
		WHERE nc.news_id = $1
		ORDER BY cl.priority ASC
	`
	rows, err := r.db.QueryContext(ctx, query, newsID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classifications []models.Classification
	for rows.Next() {
		var cl models.Classification
		if err := rows.Scan(&cl.ID, &cl.Name, &cl.Priority, &cl.IsActive, &cl.CreatedAt, &cl.UpdatedAt); err != nil {
			return nil, err
		}
		classifications = append(classifications, cl)
	}
	return classifications, rows.Err()
}

// ListByClassification retrieves published articles carrying a
// classification, newest publication first
func (r *newsRepo) ListByClassification(ctx context.Context, classificationID int64, limit, offset int) ([]*models.News, error) {
	query := newsSelect + `
	JOIN news_classifications nc ON nc.news_id = n.id
	WHERE nc.classification_id = $1 AND n.status = $2
	ORDER BY n.published_at DESC
	LIMIT $3 OFFSET $4`

	rows, err := r.db.QueryContext(ctx, query, classificationID, models.StatusPublished, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*models.News
	for rows.Next() {
		n, err := scanNews(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, n)
	}
	return list, rows.Err()
}

// CountByClassification counts published articles carrying a classification
func (r *newsRepo) CountByClassification(ctx context.Context, classificationID int64) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM news n
		JOIN news_classifications nc ON nc.news_id = n.id
		WHERE nc.classification_id = $1 AND n.status = $2
	`
	var count int
	err := r.db.QueryRowContext(ctx, query, classificationID, models.StatusPublished).Scan(&count)
	return count, err
}

// CountPublished counts all published articles
func (r *newsRepo) CountPublished(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM news WHERE status = $1", models.StatusPublished,
	).Scan(&count)
	return count, err
}

// Stats aggregates the admin dashboard counters in one query
func (r *newsRepo) Stats(ctx context.Context) (*models.NewsStats, error) {
	query := `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE status = 'published'),
			COUNT(*) FILTER (WHERE status = 'draft'),
			COUNT(*) FILTER (WHERE status = 'archived'),
			COALESCE(SUM(view_count), 0)
		FROM news
	`
	var stats models.NewsStats
	err := r.db.QueryRowContext(ctx, query).Scan(
		&stats.Total, &stats.Published, &stats.Drafts, &stats.Archived, &stats.TotalViews,
	)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// PublicStats aggregates the public counters over published articles
func (r *newsRepo) PublicStats(ctx context.Context) (*models.PublicStats, error) {
	query := `
		SELECT COUNT(*), COALESCE(SUM(view_count), 0)
		FROM news
		WHERE status = 'published'
	`
	var stats models.PublicStats
	if err := r.db.QueryRowContext(ctx, query).Scan(&stats.TotalPublished, &stats.TotalViews); err != nil {
		return nil, err
	}
	return &stats, nil
}

// insertJoinRows inserts one join row per target id; duplicate pairs in
// the input collapse onto the composite primary key
func insertJoinRows(ctx context.Context, tx *sql.Tx, table, column string, newsID int64, ids []int64) error {
	query := fmt.Sprintf("INSERT INTO %s (news_id, %s) VALUES ($1, $2) ON CONFLICT DO NOTHING", table, column)
	for _, id := range ids {
		if _, err := tx.ExecContext(ctx, query, newsID, id); err != nil {
			return err
		}
	}
	return nil
}

// replaceJoinRows deletes every join row for the article and reinserts
// the supplied set (replace-wholesale, never a diff)
func replaceJoinRows(ctx context.Context, tx *sql.Tx, table, column string, newsID int64, ids []int64) error {
	if _, err := tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE news_id = $1", table), newsID); err != nil {
		return err
	}
	return insertJoinRows(ctx, tx, table, column, newsID, ids)
}
