package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/coursehub-backend/internal/domain"
)

// UpdateCourse replaces only the supplied fields of an existing course. The
// course id and creation timestamp never change.
func (s *Service) UpdateCourse(ctx context.Context, input UpdateCourseInput) (*domain.Course, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	course, err := s.courses.Update(ctx, input.CourseID, domain.CourseUpdateParams{
		Name:        trimOrNil(input.Name),
		Description: input.Description,
	})
	if err != nil {
		return nil, fmt.Errorf("update course: %w", err)
	}

	s.log.InfoContext(ctx, "course updated",
		slog.String("course_id", course.ID.String()),
	)

	return course, nil
}
