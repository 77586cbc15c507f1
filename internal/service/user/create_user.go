package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/coursehub-backend/internal/domain"
)

// CreateUser creates an active account. The clear-text password never
// reaches storage; a duplicate username surfaces as AlreadyExists. The
// username is pre-checked so the common case fails before hashing, but the
// unique constraint stays the authority under concurrent creates.
func (s *Service) CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	username := strings.TrimSpace(input.Username)

	_, err := s.users.GetByUsername(ctx, username)
	switch {
	case err == nil:
		return nil, fmt.Errorf("username %q: %w", username, domain.ErrAlreadyExists)
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("check username: %w", err)
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, &domain.User{
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		Username:     username,
		PasswordHash: hash,
		Role:         input.Role,
		IsActive:     true,
	})
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.InfoContext(ctx, "user created",
		slog.String("user_id", user.ID.String()),
		slog.String("username", user.Username),
		slog.String("role", string(user.Role)),
	)

	return user, nil
}
