// Package stats aggregates catalog-wide counters for the dashboard.
package stats

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	contentpg "github.com/heartmarshall/coursehub-backend/internal/adapter/postgres/content"
	coursepg "github.com/heartmarshall/coursehub-backend/internal/adapter/postgres/course"
	userpg "github.com/heartmarshall/coursehub-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/coursehub-backend/internal/domain"
)

// DefaultLatestCoursesLimit is how many newest courses the dashboard shows
// when no limit is configured.
const DefaultLatestCoursesLimit = 5

type courseRepo interface {
	Count(ctx context.Context, f coursepg.Filter) (int, error)
	Latest(ctx context.Context, limit int) ([]domain.Course, error)
}

type contentRepo interface {
	Count(ctx context.Context, f contentpg.Filter) (int, error)
}

type userRepo interface {
	Count(ctx context.Context, f userpg.Filter) (int, error)
}

// Service provides the stats aggregation operation.
type Service struct {
	courses     courseRepo
	contents    contentRepo
	users       userRepo
	latestLimit int
	log         *slog.Logger
}

// NewService creates a new stats service. latestLimit bounds the newest
// courses list; a non-positive value falls back to the default.
func NewService(log *slog.Logger, courses courseRepo, contents contentRepo, users userRepo, latestLimit int) *Service {
	if latestLimit <= 0 {
		latestLimit = DefaultLatestCoursesLimit
	}
	return &Service{
		courses:     courses,
		contents:    contents,
		users:       users,
		latestLimit: latestLimit,
		log:         log.With("service", "stats"),
	}
}

// GetStats computes the dashboard counters. The sub-counts are independent
// and run concurrently; any failure fails the whole call so the result is
// never a partial mix. NumberOfUsers is populated only when the caller's
// capability allows it, and stays present even when the count is zero.
func (s *Service) GetStats(ctx context.Context, includeUserCount bool) (*domain.Stats, error) {
	var stats domain.Stats

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		count, err := s.courses.Count(gCtx, coursepg.Filter{})
		if err != nil {
			return err
		}
		stats.NumberOfCourses = count
		return nil
	})

	g.Go(func() error {
		count, err := s.contents.Count(gCtx, contentpg.Filter{})
		if err != nil {
			return err
		}
		stats.NumberOfContents = count
		return nil
	})

	g.Go(func() error {
		latest, err := s.courses.Latest(gCtx, s.latestLimit)
		if err != nil {
			return err
		}
		stats.LatestCourses = latest
		return nil
	})

	if includeUserCount {
		g.Go(func() error {
			count, err := s.users.Count(gCtx, userpg.Filter{})
			if err != nil {
				return err
			}
			stats.NumberOfUsers = &count
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &stats, nil
}
