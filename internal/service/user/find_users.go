package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	userpg "github.com/heartmarshall/coursehub-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/coursehub-backend/internal/domain"
)

// FindUsers returns one page of users matching the filter, ordered by
// username.
func (s *Service) FindUsers(ctx context.Context, input FindUsersInput) (*UserPage, error) {
	page := s.limits.Normalize(input.Page)
	filter := userpg.Filter{
		FirstName: trimOrNil(input.FirstName),
		LastName:  trimOrNil(input.LastName),
		Username:  trimOrNil(input.Username),
		Role:      trimOrNil(input.Role),
	}

	users, total, err := s.users.Find(ctx, filter, page)
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}

	return &UserPage{
		Users:    users,
		PageInfo: domain.NewPageInfo(page, total),
	}, nil
}

// GetUser returns a single user by id.
func (s *Service) GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	if userID == uuid.Nil {
		return nil, domain.NewValidationError("user_id", "required")
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	return user, nil
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
