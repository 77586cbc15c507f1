// Package content implements the Content repository using PostgreSQL.
// Content rows are owned by exactly one course and are removed as the first
// step of the course deletion plan.
package content

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/coursehub-backend/internal/adapter/postgres"
	"github.com/heartmarshall/coursehub-backend/internal/domain"
)

const table = "contents"

var columns = []string{"id", "course_id", "name", "description", "created_at"}

// Repo provides content persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new content repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type contentRow struct {
	ID          uuid.UUID `db:"id"`
	CourseID    uuid.UUID `db:"course_id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
}

func (r contentRow) toDomain() domain.Content {
	return domain.Content{
		ID:          r.ID,
		CourseID:    r.CourseID,
		Name:        r.Name,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
	}
}

// Create inserts a new content item. The owning course must exist; a foreign
// key violation surfaces as domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, c *domain.Content) (*domain.Content, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.
		Insert(table).
		Columns("course_id", "name", "description").
		Values(c.CourseID, c.Name, c.Description).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert content: %w", err)
	}

	var row contentRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "content", uuid.Nil)
	}

	result := row.toDomain()
	return &result, nil
}

// GetByID returns a content item by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Content, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select content: %w", err)
	}

	var row contentRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "content", id)
	}

	result := row.toDomain()
	return &result, nil
}

// Find returns the page of contents matching the filter plus the total match
// count, ordered by name ASC then description ASC.
func (r *Repo) Find(ctx context.Context, f Filter, page domain.PageRequest) ([]domain.Content, int, error) {
	total, err := r.Count(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []domain.Content{}, 0, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	sel := postgres.Builder.
		Select(columns...).
		From(table)
	if cond := f.conditions(); len(cond) > 0 {
		sel = sel.Where(cond)
	}
	sel = sel.
		OrderBy("name ASC", "description ASC").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset()))

	sql, args, err := sel.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build find contents: %w", err)
	}

	var rows []contentRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, 0, postgres.MapError(err, "content", uuid.Nil)
	}

	contents := make([]domain.Content, len(rows))
	for i, row := range rows {
		contents[i] = row.toDomain()
	}

	return contents, total, nil
}

// Count returns the number of contents matching the filter.
func (r *Repo) Count(ctx context.Context, f Filter) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	cnt := postgres.Builder.
		Select("count(*)").
		From(table)
	if cond := f.conditions(); len(cond) > 0 {
		cnt = cnt.Where(cond)
	}

	sql, args, err := cnt.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count contents: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, postgres.MapError(err, "content", uuid.Nil)
	}

	return total, nil
}

// Update replaces only the supplied fields, preserving identity, owner and
// the creation timestamp.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.ContentUpdateParams) (*domain.Content, error) {
	if params.Name == nil && params.Description == nil {
		return r.GetByID(ctx, id)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	upd := postgres.Builder.
		Update(table).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", "))
	if params.Name != nil {
		upd = upd.Set("name", *params.Name)
	}
	if params.Description != nil {
		upd = upd.Set("description", *params.Description)
	}

	sql, args, err := upd.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update content: %w", err)
	}

	var row contentRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "content", id)
	}

	result := row.toDomain()
	return &result, nil
}

// Delete removes a content item. Returns domain.ErrNotFound if absent.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.
		Delete(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete content: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "content", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("content %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// DeleteByCourse removes all contents owned by a course. Deleting zero rows
// is not an error — a course may have no contents.
func (r *Repo) DeleteByCourse(ctx context.Context, courseID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.
		Delete(table).
		Where(sq.Eq{"course_id": courseID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete contents by course: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "content", courseID)
	}

	return nil
}
