package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	coursepg "github.com/heartmarshall/coursehub-backend/internal/adapter/postgres/course"
	"github.com/heartmarshall/coursehub-backend/internal/domain"
	"github.com/heartmarshall/coursehub-backend/pkg/ctxutil"
)

// ListCourses returns one page of courses matching the filter, each decorated
// with its enrollment count and, when the request carries a viewer identity,
// whether that viewer is enrolled. The viewer's enrolled-course set is
// fetched with a single query per call, never per row, and nothing here is
// cached between requests. Anonymous requests get IsEnrolled=false
// throughout.
func (s *Service) ListCourses(ctx context.Context, input ListCoursesInput) (*CoursePage, error) {
	page := s.limits.Normalize(input.Page)
	filter := coursepg.Filter{
		Name:        trimOrNil(input.Name),
		Description: trimOrNil(input.Description),
	}

	courses, total, err := s.courses.Find(ctx, filter, page)
	if err != nil {
		return nil, fmt.Errorf("find courses: %w", err)
	}

	views := make([]domain.CourseView, len(courses))
	if len(courses) > 0 {
		ids := make([]uuid.UUID, len(courses))
		for i, c := range courses {
			ids[i] = c.ID
		}

		counts, err := s.enrollments.CountByCourses(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("count enrollments: %w", err)
		}

		enrolled := map[uuid.UUID]struct{}{}
		if viewerID, ok := ctxutil.UserIDFromCtx(ctx); ok {
			viewerCourses, err := s.enrollments.ListCourseIDsByUser(ctx, viewerID)
			if err != nil {
				return nil, fmt.Errorf("list viewer enrollments: %w", err)
			}
			for _, id := range viewerCourses {
				enrolled[id] = struct{}{}
			}
		}

		for i, c := range courses {
			_, isEnrolled := enrolled[c.ID]
			views[i] = domain.CourseView{
				Course:        c,
				IsEnrolled:    isEnrolled,
				EnrolledCount: counts[c.ID],
			}
		}
	}

	return &CoursePage{
		Courses:  views,
		PageInfo: domain.NewPageInfo(page, total),
	}, nil
}
