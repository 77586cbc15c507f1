// Package user implements account administration: user CRUD with password
// hashing at the boundary and enrollment cleanup on removal.
package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	userpg "github.com/heartmarshall/coursehub-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/coursehub-backend/internal/domain"
)

//go:generate moq -out user_repo_mock_test.go . userRepo

type userRepo interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Find(ctx context.Context, f userpg.Filter, page domain.PageRequest) ([]domain.User, int, error)
	Update(ctx context.Context, id uuid.UUID, params domain.UserUpdateParams) (*domain.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type enrollmentRepo interface {
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}

type passwordHasher interface {
	Hash(password string) (string, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides user administration operations.
type Service struct {
	users       userRepo
	enrollments enrollmentRepo
	hasher      passwordHasher
	tx          txManager
	limits      domain.PageLimits
	log         *slog.Logger
}

// NewService creates a new user service. Search page sizes default to and
// are clamped by limits.
func NewService(
	log *slog.Logger,
	users userRepo,
	enrollments enrollmentRepo,
	hasher passwordHasher,
	tx txManager,
	limits domain.PageLimits,
) *Service {
	return &Service{
		users:       users,
		enrollments: enrollments,
		hasher:      hasher,
		tx:          tx,
		limits:      limits,
		log:         log.With("service", "user"),
	}
}

// UserPage is one page of user search results together with the pagination
// envelope.
type UserPage struct {
	Users    []domain.User
	PageInfo domain.PageInfo
}
