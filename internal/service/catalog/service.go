// Package catalog implements course catalog operations: course CRUD, the
// filtered paginated listing with per-viewer enrollment marking, and the
// user <-> course enrollment relation.
package catalog

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	coursepg "github.com/heartmarshall/coursehub-backend/internal/adapter/postgres/course"
	"github.com/heartmarshall/coursehub-backend/internal/domain"
)

//go:generate moq -out course_repo_mock_test.go . courseRepo
//go:generate moq -out enrollment_repo_mock_test.go . enrollmentRepo

type courseRepo interface {
	Create(ctx context.Context, c *domain.Course) (*domain.Course, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Course, error)
	Find(ctx context.Context, f coursepg.Filter, page domain.PageRequest) ([]domain.Course, int, error)
	Update(ctx context.Context, id uuid.UUID, params domain.CourseUpdateParams) (*domain.Course, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type contentRepo interface {
	DeleteByCourse(ctx context.Context, courseID uuid.UUID) error
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type enrollmentRepo interface {
	IsEnrolled(ctx context.Context, userID, courseID uuid.UUID) (bool, error)
	Enroll(ctx context.Context, userID, courseID uuid.UUID) error
	Unenroll(ctx context.Context, userID, courseID uuid.UUID) error
	CountByCourse(ctx context.Context, courseID uuid.UUID) (int, error)
	CountByCourses(ctx context.Context, courseIDs []uuid.UUID) (map[uuid.UUID]int, error)
	ListUsersByCourse(ctx context.Context, courseID uuid.UUID) ([]domain.PublicUser, error)
	ListCourseIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	DeleteByCourse(ctx context.Context, courseID uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides catalog operations.
type Service struct {
	courses     courseRepo
	contents    contentRepo
	users       userRepo
	enrollments enrollmentRepo
	tx          txManager
	limits      domain.PageLimits
	log         *slog.Logger
}

// NewService creates a new catalog service. Listing page sizes default to
// and are clamped by limits.
func NewService(
	log *slog.Logger,
	courses courseRepo,
	contents contentRepo,
	users userRepo,
	enrollments enrollmentRepo,
	tx txManager,
	limits domain.PageLimits,
) *Service {
	return &Service{
		courses:     courses,
		contents:    contents,
		users:       users,
		enrollments: enrollments,
		tx:          tx,
		limits:      limits,
		log:         log.With("service", "catalog"),
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
