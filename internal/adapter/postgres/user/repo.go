// Package user implements the User repository using PostgreSQL.
package user

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

const table = "users"

var columns = []string{"id", "first_name", "last_name", "username", "password_hash", "role", "is_active", "created_at"}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type userRow struct {
	ID           uuid.UUID `db:"id"`
	FirstName    string    `db:"first_name"`
	LastName     string    `db:"last_name"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	IsActive     bool      `db:"is_active"`
	CreatedAt    time.Time `db:"created_at"`
}

func (r userRow) toDomain() domain.User {
	return domain.User{
		ID:           r.ID,
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Username:     r.Username,
		PasswordHash: r.PasswordHash,
		Role:         domain.Role(r.Role),
		IsActive:     r.IsActive,
		CreatedAt:    r.CreatedAt,
	}
}

// Create inserts a new user. A duplicate username surfaces as
// domain.ErrAlreadyExists via the unique constraint.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.
		Insert(table).
		Columns("first_name", "last_name", "username", "password_hash", "role", "is_active").
		Values(u.FirstName, u.LastName, u.Username, u.PasswordHash, string(u.Role), u.IsActive).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert user: %w", err)
	}

	var row userRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}

	result := row.toDomain()
	return &result, nil
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select user: %w", err)
	}

	var row userRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	result := row.toDomain()
	return &result, nil
}

// GetByUsername returns a user by unique username.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"username": username}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select user by username: %w", err)
	}

	var row userRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}

	result := row.toDomain()
	return &result, nil
}

// Find returns the page of users matching the filter plus the total match
// count, ordered by username ASC.
func (r *Repo) Find(ctx context.Context, f Filter, page domain.PageRequest) ([]domain.User, int, error) {
	total, err := r.Count(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []domain.User{}, 0, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	sel := postgres.Builder.
		Select(columns...).
		From(table)
	if cond := f.conditions(); len(cond) > 0 {
		sel = sel.Where(cond)
	}
	sel = sel.
		OrderBy("username ASC").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset()))

	sql, args, err := sel.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build find users: %w", err)
	}

	var rows []userRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, 0, postgres.MapError(err, "user", uuid.Nil)
	}

	users := make([]domain.User, len(rows))
	for i, row := range rows {
		users[i] = row.toDomain()
	}

	return users, total, nil
}

// Count returns the number of users matching the filter.
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
		return 0, fmt.Errorf("build count users: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, postgres.MapError(err, "user", uuid.Nil)
	}

	return total, nil
}

// Update replaces only the supplied fields, preserving identity and the
// creation timestamp.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.UserUpdateParams) (*domain.User, error) {
	upd := postgres.Builder.
		Update(table).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	changed := false
	if params.FirstName != nil {
		upd = upd.Set("first_name", *params.FirstName)
		changed = true
	}
	if params.LastName != nil {
		upd = upd.Set("last_name", *params.LastName)
		changed = true
	}
	if params.Username != nil {
		upd = upd.Set("username", *params.Username)
		changed = true
	}
	if params.PasswordHash != nil {
		upd = upd.Set("password_hash", *params.PasswordHash)
		changed = true
	}
	if params.Role != nil {
		upd = upd.Set("role", string(*params.Role))
		changed = true
	}
	if params.IsActive != nil {
		upd = upd.Set("is_active", *params.IsActive)
		changed = true
	}
	if !changed {
		return r.GetByID(ctx, id)
	}

	sql, args, err := upd.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update user: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	var row userRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	result := row.toDomain()
	return &result, nil
}

// Delete removes the user row only. The user's enrollment rows are removed
// by the caller's deletion plan inside one transaction.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.
		Delete(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete user: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}

	return nil
}
