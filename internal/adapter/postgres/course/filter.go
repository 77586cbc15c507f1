package course

import (
	sq "github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/coursehub-backend/internal/adapter/postgres"
)

// Filter is the closed set of filterable course fields. Each non-nil,
// non-empty value compiles into a case-insensitive substring predicate;
// empty strings are dropped rather than matched literally.
type Filter struct {
	Name        *string
	Description *string
}

// conditions compiles the filter into an AND-combined predicate list.
// An empty filter yields an empty conjunction (matches everything).
func (f Filter) conditions() sq.And {
	var and sq.And
	if cond, ok := postgres.Contains("name", f.Name); ok {
		and = append(and, cond)
	}
	if cond, ok := postgres.Contains("description", f.Description); ok {
		and = append(and, cond)
	}
	return and
}
