package catalog

import (
	"context"
	"fmt"
	"log/slog"
)

// Enroll adds a user to a course. Both sides are checked first so an absent
// user or course surfaces as NotFound; the storage primary key remains the
// authority on duplicates, so two concurrent enrolls of the same pair yield
// exactly one row and one AlreadyEnrolled conflict.
func (s *Service) Enroll(ctx context.Context, input EnrollInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	if _, err := s.users.GetByID(ctx, input.UserID); err != nil {
		return fmt.Errorf("get user: %w", err)
	}
	if _, err := s.courses.GetByID(ctx, input.CourseID); err != nil {
		return fmt.Errorf("get course: %w", err)
	}

	if err := s.enrollments.Enroll(ctx, input.UserID, input.CourseID); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "user enrolled",
		slog.String("user_id", input.UserID.String()),
		slog.String("course_id", input.CourseID.String()),
	)

	return nil
}

// Unenroll removes a user's enrollment. A pair that is not enrolled surfaces
// as a conflict, not a silent no-op.
func (s *Service) Unenroll(ctx context.Context, input UnenrollInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	if _, err := s.users.GetByID(ctx, input.UserID); err != nil {
		return fmt.Errorf("get user: %w", err)
	}
	if _, err := s.courses.GetByID(ctx, input.CourseID); err != nil {
		return fmt.Errorf("get course: %w", err)
	}

	if err := s.enrollments.Unenroll(ctx, input.UserID, input.CourseID); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "user unenrolled",
		slog.String("user_id", input.UserID.String()),
		slog.String("course_id", input.CourseID.String()),
	)

	return nil
}
