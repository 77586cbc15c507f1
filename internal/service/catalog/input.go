package catalog

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/coursehub-backend/internal/domain"
)

const (
	maxNameLen        = 200
	maxDescriptionLen = 2000
)

// CreateCourseInput holds the parameters for creating a course.
type CreateCourseInput struct {
	Name        string
	Description string
}

// Validate checks all fields and collects all errors.
func (i CreateCourseInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}
	if len(i.Description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 2000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateCourseInput holds the parameters for partially updating a course.
// Nil fields are left unchanged.
type UpdateCourseInput struct {
	CourseID    uuid.UUID
	Name        *string
	Description *string
}

// Validate checks all fields and collects all errors.
func (i UpdateCourseInput) Validate() error {
	var errs []domain.FieldError

	if i.CourseID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "course_id", Message: "required"})
	}
	if i.Name == nil && i.Description == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil {
		name := strings.TrimSpace(*i.Name)
		if name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
		}
		if len(name) > maxNameLen {
			errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
		}
	}
	if i.Description != nil && len(*i.Description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 2000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListCoursesInput holds the optional filters and page request for the
// catalog listing. Empty filter values are dropped.
type ListCoursesInput struct {
	Name        *string
	Description *string
	Page        domain.PageRequest
}

// EnrollInput holds the parameters for enrolling a user in a course.
type EnrollInput struct {
	UserID   uuid.UUID
	CourseID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i EnrollInput) Validate() error {
	var errs []domain.FieldError
	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if i.CourseID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "course_id", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UnenrollInput holds the parameters for removing a user's enrollment.
type UnenrollInput struct {
	UserID   uuid.UUID
	CourseID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i UnenrollInput) Validate() error {
	var errs []domain.FieldError
	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if i.CourseID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "course_id", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
