package domain

import (
	"time"

	"github.com/google/uuid"
)

// Course is a catalog course. CreatedAt is assigned once on insert and
// preserved by updates.
type Course struct {
	ID          uuid.UUID
	Name        string
	Description string
	CreatedAt   time.Time
}

// Content is a content item owned by exactly one course.
// It is removed when its owning course is deleted.
type Content struct {
	ID          uuid.UUID
	CourseID    uuid.UUID
	Name        string
	Description string
	CreatedAt   time.Time
}

// CourseView is a course with viewer-relative enrollment fields.
// Both fields are derived at query time and never persisted.
type CourseView struct {
	Course
	IsEnrolled    bool
	EnrolledCount int
}

// CourseUpdateParams holds the partial-update fields for a course.
// nil means "leave unchanged".
type CourseUpdateParams struct {
	Name        *string
	Description *string
}

// ContentUpdateParams holds the partial-update fields for a content item.
type ContentUpdateParams struct {
	Name        *string
	Description *string
}
