package postgres

import sq "github.com/Masterminds/squirrel"

// Builder is the shared squirrel statement builder with PostgreSQL
// placeholders.
var Builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Contains builds a case-insensitive substring predicate (ILIKE '%v%') for a
// column. Nil and empty values report ok=false and are dropped by callers —
// an absent filter field matches everything, not the empty string.
func Contains(column string, value *string) (sq.Sqlizer, bool) {
	if value == nil || *value == "" {
		return nil, false
	}
	return sq.ILike{column: "%" + *value + "%"}, true
}

// Equals builds an exact-match predicate for a column, dropping nil/empty
// values the same way Contains does. Used for enumerated columns where
// substring matching would be wrong.
func Equals(column string, value *string) (sq.Sqlizer, bool) {
	if value == nil || *value == "" {
		return nil, false
	}
	return sq.Eq{column: *value}, true
}
