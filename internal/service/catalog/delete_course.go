package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/coursehub-backend/internal/domain"
)

// DeleteCourse removes a course together with everything that references it.
// The dependent rows go first so no step ever violates a foreign key:
// contents, then enrollment rows, then the course itself, all inside one
// transaction. Returns the removed id.
func (s *Service) DeleteCourse(ctx context.Context, courseID uuid.UUID) (uuid.UUID, error) {
	if courseID == uuid.Nil {
		return uuid.Nil, domain.NewValidationError("course_id", "required")
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.courses.GetByID(txCtx, courseID); err != nil {
			return fmt.Errorf("get course: %w", err)
		}
		if err := s.contents.DeleteByCourse(txCtx, courseID); err != nil {
			return fmt.Errorf("delete contents: %w", err)
		}
		if err := s.enrollments.DeleteByCourse(txCtx, courseID); err != nil {
			return fmt.Errorf("delete enrollments: %w", err)
		}
		if err := s.courses.Delete(txCtx, courseID); err != nil {
			return fmt.Errorf("delete course: %w", err)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	s.log.InfoContext(ctx, "course deleted",
		slog.String("course_id", courseID.String()),
	)

	return courseID, nil
}
