package content

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/coursehub-backend/internal/domain"
)

const (
	maxNameLen        = 200
	maxDescriptionLen = 2000
)

// CreateContentInput holds the parameters for creating a content item.
type CreateContentInput struct {
	CourseID    uuid.UUID
	Name        string
	Description string
}

// Validate checks all fields and collects all errors.
func (i CreateContentInput) Validate() error {
	var errs []domain.FieldError

	if i.CourseID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "course_id", Message: "required"})
	}

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

// UpdateContentInput holds the parameters for partially updating a content
// item. Nil fields are left unchanged.
type UpdateContentInput struct {
	ContentID   uuid.UUID
	Name        *string
	Description *string
}

// Validate checks all fields and collects all errors.
func (i UpdateContentInput) Validate() error {
	var errs []domain.FieldError

	if i.ContentID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "content_id", Message: "required"})
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

// FindContentsInput holds the optional filters and page request for the
// content search. Empty filter values are dropped; CourseID narrows the
// search to one course.
type FindContentsInput struct {
	Name        *string
	Description *string
	CourseID    *uuid.UUID
	Page        domain.PageRequest
}
