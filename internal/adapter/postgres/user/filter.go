package user

import (
	sq "github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/coursehub-backend/internal/adapter/postgres"
)

// Filter is the closed set of filterable user fields. Name fields compile
// into case-insensitive substring predicates; Role is an exact match because
// it is an enumerated column.
type Filter struct {
	FirstName *string
	LastName  *string
	Username  *string
	Role      *string
}

func (f Filter) conditions() sq.And {
	var and sq.And
	if cond, ok := postgres.Contains("first_name", f.FirstName); ok {
		and = append(and, cond)
	}
	if cond, ok := postgres.Contains("last_name", f.LastName); ok {
		and = append(and, cond)
	}
	if cond, ok := postgres.Contains("username", f.Username); ok {
		and = append(and, cond)
	}
	if cond, ok := postgres.Equals("role", f.Role); ok {
		and = append(and, cond)
	}
	return and
}
