package content

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	contentpg "github.com/heartmarshall/coursehub-backend/internal/adapter/postgres/content"
	"github.com/heartmarshall/coursehub-backend/internal/domain"
)

// CreateContent creates a content item inside an existing course. An absent
// course surfaces as NotFound before anything is written.
func (s *Service) CreateContent(ctx context.Context, input CreateContentInput) (*domain.Content, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.courses.GetByID(ctx, input.CourseID); err != nil {
		return nil, fmt.Errorf("get course: %w", err)
	}

	content, err := s.contents.Create(ctx, &domain.Content{
		CourseID:    input.CourseID,
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
	})
	if err != nil {
		return nil, fmt.Errorf("create content: %w", err)
	}

	s.log.InfoContext(ctx, "content created",
		slog.String("content_id", content.ID.String()),
		slog.String("course_id", content.CourseID.String()),
	)

	return content, nil
}

// GetContent returns a single content item by id.
func (s *Service) GetContent(ctx context.Context, contentID uuid.UUID) (*domain.Content, error) {
	if contentID == uuid.Nil {
		return nil, domain.NewValidationError("content_id", "required")
	}

	content, err := s.contents.GetByID(ctx, contentID)
	if err != nil {
		return nil, fmt.Errorf("get content: %w", err)
	}

	return content, nil
}

// FindContents returns one page of contents matching the filter.
func (s *Service) FindContents(ctx context.Context, input FindContentsInput) (*ContentPage, error) {
	page := s.limits.Normalize(input.Page)
	filter := contentpg.Filter{
		Name:        trimOrNil(input.Name),
		Description: trimOrNil(input.Description),
		CourseID:    input.CourseID,
	}

	contents, total, err := s.contents.Find(ctx, filter, page)
	if err != nil {
		return nil, fmt.Errorf("find contents: %w", err)
	}

	return &ContentPage{
		Contents: contents,
		PageInfo: domain.NewPageInfo(page, total),
	}, nil
}

// CountContents returns the number of contents matching the filter.
func (s *Service) CountContents(ctx context.Context, input FindContentsInput) (int, error) {
	filter := contentpg.Filter{
		Name:        trimOrNil(input.Name),
		Description: trimOrNil(input.Description),
		CourseID:    input.CourseID,
	}

	total, err := s.contents.Count(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count contents: %w", err)
	}

	return total, nil
}

// UpdateContent replaces only the supplied fields of a content item. The
// owning course never changes.
func (s *Service) UpdateContent(ctx context.Context, input UpdateContentInput) (*domain.Content, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	content, err := s.contents.Update(ctx, input.ContentID, domain.ContentUpdateParams{
		Name:        trimOrNil(input.Name),
		Description: input.Description,
	})
	if err != nil {
		return nil, fmt.Errorf("update content: %w", err)
	}

	s.log.InfoContext(ctx, "content updated",
		slog.String("content_id", content.ID.String()),
	)

	return content, nil
}

// DeleteContent removes a content item. Returns the removed id.
func (s *Service) DeleteContent(ctx context.Context, contentID uuid.UUID) (uuid.UUID, error) {
	if contentID == uuid.Nil {
		return uuid.Nil, domain.NewValidationError("content_id", "required")
	}

	if err := s.contents.Delete(ctx, contentID); err != nil {
		return uuid.Nil, fmt.Errorf("delete content: %w", err)
	}

	s.log.InfoContext(ctx, "content deleted",
		slog.String("content_id", contentID.String()),
	)

	return contentID, nil
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
