package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/coursehub-backend/internal/domain"
	"github.com/heartmarshall/coursehub-backend/pkg/ctxutil"
)

// GetCourse returns a single course decorated with its enrollment count and
// the viewer's enrollment flag. Anonymous viewers get IsEnrolled=false.
func (s *Service) GetCourse(ctx context.Context, courseID uuid.UUID) (*domain.CourseView, error) {
	if courseID == uuid.Nil {
		return nil, domain.NewValidationError("course_id", "required")
	}

	course, err := s.courses.GetByID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("get course: %w", err)
	}

	count, err := s.enrollments.CountByCourse(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("count enrollments: %w", err)
	}

	isEnrolled := false
	if viewerID, ok := ctxutil.UserIDFromCtx(ctx); ok {
		isEnrolled, err = s.enrollments.IsEnrolled(ctx, viewerID, courseID)
		if err != nil {
			return nil, fmt.Errorf("check enrollment: %w", err)
		}
	}

	return &domain.CourseView{
		Course:        *course,
		IsEnrolled:    isEnrolled,
		EnrolledCount: count,
	}, nil
}
