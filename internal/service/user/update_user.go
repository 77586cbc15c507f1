package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/coursehub-backend/internal/domain"
)

// UpdateUser replaces only the supplied fields. A new password is re-hashed
// before storage; identity and the creation timestamp never change.
func (s *Service) UpdateUser(ctx context.Context, input UpdateUserInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.UserUpdateParams{
		FirstName: trimOrNil(input.FirstName),
		LastName:  trimOrNil(input.LastName),
		Username:  trimOrNil(input.Username),
		Role:      input.Role,
		IsActive:  input.IsActive,
	}

	if input.Password != nil {
		hash, err := s.hasher.Hash(*input.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		params.PasswordHash = &hash
	}

	user, err := s.users.Update(ctx, input.UserID, params)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	s.log.InfoContext(ctx, "user updated",
		slog.String("user_id", user.ID.String()),
	)

	return user, nil
}
