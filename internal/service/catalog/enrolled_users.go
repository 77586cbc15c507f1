package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/coursehub-backend/internal/domain"
)

// GetEnrolledUsers returns the public projection of every user enrolled in a
// course, ordered by username. The course must exist. Password hashes and
// account flags never leave this boundary.
func (s *Service) GetEnrolledUsers(ctx context.Context, courseID uuid.UUID) ([]domain.PublicUser, error) {
	if courseID == uuid.Nil {
		return nil, domain.NewValidationError("course_id", "required")
	}

	if _, err := s.courses.GetByID(ctx, courseID); err != nil {
		return nil, fmt.Errorf("get course: %w", err)
	}

	users, err := s.enrollments.ListUsersByCourse(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("list enrolled users: %w", err)
	}

	return users, nil
}
