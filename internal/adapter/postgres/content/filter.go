package content

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/coursehub-backend/internal/adapter/postgres"
)

// Filter is the closed set of filterable content fields. Text fields compile
// into case-insensitive substring predicates; CourseID is an exact match on
// the owning course.
type Filter struct {
	Name        *string
	Description *string
	CourseID    *uuid.UUID
}

func (f Filter) conditions() sq.And {
	var and sq.And
	if cond, ok := postgres.Contains("name", f.Name); ok {
		and = append(and, cond)
	}
	if cond, ok := postgres.Contains("description", f.Description); ok {
		and = append(and, cond)
	}
	if f.CourseID != nil && *f.CourseID != uuid.Nil {
		and = append(and, sq.Eq{"course_id": *f.CourseID})
	}
	return and
}
