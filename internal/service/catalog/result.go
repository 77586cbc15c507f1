package catalog

import "github.com/heartmarshall/coursehub-backend/internal/domain"

// CoursePage is one page of catalog listing results together with the
// pagination envelope.
type CoursePage struct {
	Courses  []domain.CourseView
	PageInfo domain.PageInfo
}
