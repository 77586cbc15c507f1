package user

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/coursehub-backend/internal/domain"
)

const (
	maxNameLen     = 100
	maxUsernameLen = 50
	minPasswordLen = 8
	maxPasswordLen = 72 // bcrypt input limit
)

// CreateUserInput holds the parameters for creating a user. Password arrives
// in clear text and is hashed before it reaches storage.
type CreateUserInput struct {
	FirstName string
	LastName  string
	Username  string
	Password  string
	Role      domain.Role
}

// Validate checks all fields and collects all errors.
func (i CreateUserInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.FirstName) == "" {
		errs = append(errs, domain.FieldError{Field: "first_name", Message: "required"})
	}
	if len(i.FirstName) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "first_name", Message: "max 100 characters"})
	}
	if strings.TrimSpace(i.LastName) == "" {
		errs = append(errs, domain.FieldError{Field: "last_name", Message: "required"})
	}
	if len(i.LastName) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "last_name", Message: "max 100 characters"})
	}

	username := strings.TrimSpace(i.Username)
	if username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	}
	if len(username) > maxUsernameLen {
		errs = append(errs, domain.FieldError{Field: "username", Message: "max 50 characters"})
	}

	if len(i.Password) < minPasswordLen {
		errs = append(errs, domain.FieldError{Field: "password", Message: "min 8 characters"})
	}
	if len(i.Password) > maxPasswordLen {
		errs = append(errs, domain.FieldError{Field: "password", Message: "max 72 characters"})
	}

	if !i.Role.Valid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "must be admin, editor or user"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateUserInput holds the parameters for partially updating a user. Nil
// fields are left unchanged.
type UpdateUserInput struct {
	UserID    uuid.UUID
	FirstName *string
	LastName  *string
	Username  *string
	Password  *string
	Role      *domain.Role
	IsActive  *bool
}

// Validate checks all fields and collects all errors.
func (i UpdateUserInput) Validate() error {
	var errs []domain.FieldError

	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if i.FirstName == nil && i.LastName == nil && i.Username == nil &&
		i.Password == nil && i.Role == nil && i.IsActive == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}

	if i.FirstName != nil {
		if strings.TrimSpace(*i.FirstName) == "" {
			errs = append(errs, domain.FieldError{Field: "first_name", Message: "required"})
		}
		if len(*i.FirstName) > maxNameLen {
			errs = append(errs, domain.FieldError{Field: "first_name", Message: "max 100 characters"})
		}
	}
	if i.LastName != nil {
		if strings.TrimSpace(*i.LastName) == "" {
			errs = append(errs, domain.FieldError{Field: "last_name", Message: "required"})
		}
		if len(*i.LastName) > maxNameLen {
			errs = append(errs, domain.FieldError{Field: "last_name", Message: "max 100 characters"})
		}
	}
	if i.Username != nil {
		username := strings.TrimSpace(*i.Username)
		if username == "" {
			errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
		}
		if len(username) > maxUsernameLen {
			errs = append(errs, domain.FieldError{Field: "username", Message: "max 50 characters"})
		}
	}
	if i.Password != nil {
		if len(*i.Password) < minPasswordLen {
			errs = append(errs, domain.FieldError{Field: "password", Message: "min 8 characters"})
		}
		if len(*i.Password) > maxPasswordLen {
			errs = append(errs, domain.FieldError{Field: "password", Message: "max 72 characters"})
		}
	}
	if i.Role != nil && !i.Role.Valid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "must be admin, editor or user"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// FindUsersInput holds the optional filters and page request for the user
// search. Empty filter values are dropped.
type FindUsersInput struct {
	FirstName *string
	LastName  *string
	Username  *string
	Role      *string
	Page      domain.PageRequest
}
