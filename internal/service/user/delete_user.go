package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/coursehub-backend/internal/domain"
)

// DeleteUser removes an account and its enrollment rows atomically. The
// enrollment rows go first so the user row's foreign key references are gone
// before the row itself. Returns the removed id.
func (s *Service) DeleteUser(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	if userID == uuid.Nil {
		return uuid.Nil, domain.NewValidationError("user_id", "required")
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.users.GetByID(txCtx, userID); err != nil {
			return fmt.Errorf("get user: %w", err)
		}
		if err := s.enrollments.DeleteByUser(txCtx, userID); err != nil {
			return fmt.Errorf("delete enrollments: %w", err)
		}
		if err := s.users.Delete(txCtx, userID); err != nil {
			return fmt.Errorf("delete user: %w", err)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	s.log.InfoContext(ctx, "user deleted",
		slog.String("user_id", userID.String()),
	)

	return userID, nil
}
