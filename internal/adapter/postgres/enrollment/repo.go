// Package enrollment implements the enrollment ledger: the M2M join relation
// between users and courses backed by the course_enrollments table. The
// table's primary key on (user_id, course_id) is the storage-level uniqueness
// constraint that makes concurrent duplicate enrolls safe — the resulting
// unique violation, not the precondition check, is the authoritative
// conflict signal.
package enrollment

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	postgres "github.com/heartmarshall/coursehub-backend/internal/adapter/postgres"
	"github.com/heartmarshall/coursehub-backend/internal/domain"
)

// Repo provides enrollment persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new enrollment repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const (
	isEnrolledSQL = `SELECT EXISTS(SELECT 1 FROM course_enrollments WHERE user_id = $1 AND course_id = $2)`

	enrollSQL = `INSERT INTO course_enrollments (user_id, course_id) VALUES ($1, $2)`

	unenrollSQL = `DELETE FROM course_enrollments WHERE user_id = $1 AND course_id = $2`

	countByCourseSQL = `SELECT count(*) FROM course_enrollments WHERE course_id = $1`

	countByCoursesSQL = `
SELECT course_id, count(*) AS enrolled
FROM course_enrollments
WHERE course_id = ANY($1::uuid[])
GROUP BY course_id`

	listUsersByCourseSQL = `
SELECT u.id, u.first_name, u.last_name, u.username
FROM course_enrollments ce
JOIN users u ON u.id = ce.user_id
WHERE ce.course_id = $1
ORDER BY u.username`

	listCourseIDsByUserSQL = `SELECT course_id FROM course_enrollments WHERE user_id = $1`

	deleteByCourseSQL = `DELETE FROM course_enrollments WHERE course_id = $1`

	deleteByUserSQL = `DELETE FROM course_enrollments WHERE user_id = $1`
)

// IsEnrolled reports whether the (user, course) pair has an enrollment row.
// Absence is not an error.
func (r *Repo) IsEnrolled(ctx context.Context, userID, courseID uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var enrolled bool
	if err := q.QueryRow(ctx, isEnrolledSQL, userID, courseID).Scan(&enrolled); err != nil {
		return false, postgres.MapError(err, "enrollment", courseID)
	}

	return enrolled, nil
}

// Enroll inserts exactly one enrollment row. A duplicate pair surfaces as
// domain.ErrAlreadyEnrolled regardless of any earlier precondition check.
func (r *Repo) Enroll(ctx context.Context, userID, courseID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := q.Exec(ctx, enrollSQL, userID, courseID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("user %s course %s: %w", userID, courseID, domain.ErrAlreadyEnrolled)
		}
		return postgres.MapError(err, "enrollment", courseID)
	}

	return nil
}

// Unenroll removes exactly one enrollment row. A pair that is not enrolled
// surfaces as domain.ErrNotEnrolled.
func (r *Repo) Unenroll(ctx context.Context, userID, courseID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, unenrollSQL, userID, courseID)
	if err != nil {
		return postgres.MapError(err, "enrollment", courseID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s course %s: %w", userID, courseID, domain.ErrNotEnrolled)
	}

	return nil
}

// CountByCourse returns the enrollment cardinality of a course.
func (r *Repo) CountByCourse(ctx context.Context, courseID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var count int
	if err := q.QueryRow(ctx, countByCourseSQL, courseID).Scan(&count); err != nil {
		return 0, postgres.MapError(err, "enrollment", courseID)
	}

	return count, nil
}

// CountByCourses returns per-course enrollment cardinalities for a batch of
// course ids in a single GROUP BY query. Courses with no enrollments are
// absent from the map.
func (r *Repo) CountByCourses(ctx context.Context, courseIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	counts := make(map[uuid.UUID]int, len(courseIDs))
	if len(courseIDs) == 0 {
		return counts, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx, countByCoursesSQL, courseIDs)
	if err != nil {
		return nil, postgres.MapError(err, "enrollment", uuid.Nil)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			courseID uuid.UUID
			enrolled int
		)
		if err := rows.Scan(&courseID, &enrolled); err != nil {
			return nil, postgres.MapError(err, "enrollment", uuid.Nil)
		}
		counts[courseID] = enrolled
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "enrollment", uuid.Nil)
	}

	return counts, nil
}

type publicUserRow struct {
	ID        uuid.UUID `db:"id"`
	FirstName string    `db:"first_name"`
	LastName  string    `db:"last_name"`
	Username  string    `db:"username"`
}

// ListUsersByCourse returns the public projection of every user enrolled in
// a course, ordered by username. Returns an empty slice when nobody is
// enrolled.
func (r *Repo) ListUsersByCourse(ctx context.Context, courseID uuid.UUID) ([]domain.PublicUser, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var rows []publicUserRow
	if err := pgxscan.Select(ctx, q, &rows, listUsersByCourseSQL, courseID); err != nil {
		return nil, postgres.MapError(err, "enrollment", courseID)
	}

	users := make([]domain.PublicUser, len(rows))
	for i, row := range rows {
		users[i] = domain.PublicUser{
			ID:        row.ID,
			FirstName: row.FirstName,
			LastName:  row.LastName,
			Username:  row.Username,
		}
	}

	return users, nil
}

// ListCourseIDsByUser returns the ids of every course the user is enrolled
// in. The single batch lookup backs the per-request isEnrolled marking.
func (r *Repo) ListCourseIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx, listCourseIDsByUserSQL, userID)
	if err != nil {
		return nil, postgres.MapError(err, "enrollment", userID)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, postgres.MapError(err, "enrollment", userID)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "enrollment", userID)
	}

	if ids == nil {
		ids = []uuid.UUID{}
	}

	return ids, nil
}

// DeleteByCourse removes all enrollment rows referencing a course.
// Zero rows affected is not an error.
func (r *Repo) DeleteByCourse(ctx context.Context, courseID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := q.Exec(ctx, deleteByCourseSQL, courseID); err != nil {
		return postgres.MapError(err, "enrollment", courseID)
	}

	return nil
}

// DeleteByUser removes all enrollment rows referencing a user.
// Zero rows affected is not an error.
func (r *Repo) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := q.Exec(ctx, deleteByUserSQL, userID); err != nil {
		return postgres.MapError(err, "enrollment", userID)
	}

	return nil
}
