package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/coursehub-backend/internal/domain"
)

// CreateCourse creates a new course.
func (s *Service) CreateCourse(ctx context.Context, input CreateCourseInput) (*domain.Course, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	course, err := s.courses.Create(ctx, &domain.Course{
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
	})
	if err != nil {
		return nil, fmt.Errorf("create course: %w", err)
	}

	s.log.InfoContext(ctx, "course created",
		slog.String("course_id", course.ID.String()),
		slog.String("name", course.Name),
	)

	return course, nil
}
