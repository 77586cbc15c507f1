// Package content implements course content administration. Every content
// item belongs to exactly one course.
package content

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	contentpg "github.com/heartmarshall/coursehub-backend/internal/adapter/postgres/content"
	"github.com/heartmarshall/coursehub-backend/internal/domain"
)

//go:generate moq -out content_repo_mock_test.go . contentRepo

type contentRepo interface {
	Create(ctx context.Context, c *domain.Content) (*domain.Content, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Content, error)
	Find(ctx context.Context, f contentpg.Filter, page domain.PageRequest) ([]domain.Content, int, error)
	Count(ctx context.Context, f contentpg.Filter) (int, error)
	Update(ctx context.Context, id uuid.UUID, params domain.ContentUpdateParams) (*domain.Content, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type courseRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Course, error)
}

// Service provides content administration operations.
type Service struct {
	contents contentRepo
	courses  courseRepo
	limits   domain.PageLimits
	log      *slog.Logger
}

// NewService creates a new content service. Search page sizes default to and
// are clamped by limits.
func NewService(log *slog.Logger, contents contentRepo, courses courseRepo, limits domain.PageLimits) *Service {
	return &Service{
		contents: contents,
		courses:  courses,
		limits:   limits,
		log:      log.With("service", "content"),
	}
}

// ContentPage is one page of content search results together with the
// pagination envelope.
type ContentPage struct {
	Contents []domain.Content
	PageInfo domain.PageInfo
}
