// Package course implements the Course repository using PostgreSQL.
package course

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

const table = "courses"

var columns = []string{"id", "name", "description", "created_at"}

// Repo provides course persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new course repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type courseRow struct {
	ID          uuid.UUID `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
}

func (r courseRow) toDomain() domain.Course {
	return domain.Course{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
	}
}

// Create inserts a new course. Identity and creation timestamp are assigned
// by the database and returned on the persisted record.
func (r *Repo) Create(ctx context.Context, c *domain.Course) (*domain.Course, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.
		Insert(table).
		Columns("name", "description").
		Values(c.Name, c.Description).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert course: %w", err)
	}

	var row courseRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "course", uuid.Nil)
	}

	result := row.toDomain()
	return &result, nil
}

// GetByID returns a course by primary key.
// Returns domain.ErrNotFound if no row matches.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Course, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select course: %w", err)
	}

	var row courseRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "course", id)
	}

	result := row.toDomain()
	return &result, nil
}

// Find returns the page of courses matching the filter plus the total match
// count. Ordering is name ASC with description ASC breaking ties. Zero
// matches return an empty slice, never an error.
func (r *Repo) Find(ctx context.Context, f Filter, page domain.PageRequest) ([]domain.Course, int, error) {
	total, err := r.Count(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []domain.Course{}, 0, nil
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
		return nil, 0, fmt.Errorf("build find courses: %w", err)
	}

	var rows []courseRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, 0, postgres.MapError(err, "course", uuid.Nil)
	}

	courses := make([]domain.Course, len(rows))
	for i, row := range rows {
		courses[i] = row.toDomain()
	}

	return courses, total, nil
}

// Latest returns the most recently created courses, newest first.
func (r *Repo) Latest(ctx context.Context, limit int) ([]domain.Course, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build latest courses: %w", err)
	}

	var rows []courseRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "course", uuid.Nil)
	}

	courses := make([]domain.Course, len(rows))
	for i, row := range rows {
		courses[i] = row.toDomain()
	}

	return courses, nil
}

// Count returns the number of courses matching the filter.
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
		return 0, fmt.Errorf("build count courses: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, postgres.MapError(err, "course", uuid.Nil)
	}

	return total, nil
}

// Update replaces only the supplied fields, preserving identity and the
// creation timestamp. Returns domain.ErrNotFound if the course is absent.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.CourseUpdateParams) (*domain.Course, error) {
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
		return nil, fmt.Errorf("build update course: %w", err)
	}

	var row courseRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "course", id)
	}

	result := row.toDomain()
	return &result, nil
}

// Delete removes the course row only. Dependent contents and enrollments are
// removed by the caller's ordered deletion plan inside one transaction.
// Returns domain.ErrNotFound if the course is absent.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.
		Delete(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete course: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "course", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("course %s: %w", id, domain.ErrNotFound)
	}

	return nil
}
