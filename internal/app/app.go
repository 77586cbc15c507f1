package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/coursehub-backend/internal/adapter/postgres"
	contentpg "github.com/heartmarshall/coursehub-backend/internal/adapter/postgres/content"
	coursepg "github.com/heartmarshall/coursehub-backend/internal/adapter/postgres/course"
	enrollmentpg "github.com/heartmarshall/coursehub-backend/internal/adapter/postgres/enrollment"
	userpg "github.com/heartmarshall/coursehub-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/coursehub-backend/internal/auth"
	"github.com/heartmarshall/coursehub-backend/internal/config"
	"github.com/heartmarshall/coursehub-backend/internal/domain"
	catalogsvc "github.com/heartmarshall/coursehub-backend/internal/service/catalog"
	contentsvc "github.com/heartmarshall/coursehub-backend/internal/service/content"
	statssvc "github.com/heartmarshall/coursehub-backend/internal/service/stats"
	usersvc "github.com/heartmarshall/coursehub-backend/internal/service/user"
	"github.com/heartmarshall/coursehub-backend/internal/transport/middleware"
	"github.com/heartmarshall/coursehub-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires repositories, services and handlers, and serves HTTP
// until ctx is canceled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	txManager := postgres.NewTxManager(pool)
	courseRepo := coursepg.New(pool)
	contentRepo := contentpg.New(pool)
	userRepo := userpg.New(pool)
	enrollmentRepo := enrollmentpg.New(pool)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	hasher := auth.NewPasswordHasher(cfg.Auth.BcryptCost)

	pageLimits := domain.PageLimits{
		Default: cfg.Catalog.DefaultPageLimit,
		Max:     cfg.Catalog.MaxPageLimit,
	}

	catalogService := catalogsvc.NewService(logger, courseRepo, contentRepo, userRepo, enrollmentRepo, txManager, pageLimits)
	contentService := contentsvc.NewService(logger, contentRepo, courseRepo, pageLimits)
	userService := usersvc.NewService(logger, userRepo, enrollmentRepo, hasher, txManager, pageLimits)
	statsService := statssvc.NewService(logger, courseRepo, contentRepo, userRepo, cfg.Catalog.LatestCourses)

	handlers := rest.Handlers{
		Courses:  rest.NewCourseHandler(catalogService, logger),
		Contents: rest.NewContentHandler(contentService, logger),
		Users:    rest.NewUserHandler(userService, logger),
		Stats:    rest.NewStatsHandler(statsService, logger),
		Health:   rest.NewHealthHandler(pool, BuildVersion()),
	}

	mws := []middleware.Middleware{
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(accessTokenValidator{jwt: jwtManager}),
	}
	if cfg.Server.RateLimitPerMinute > 0 {
		limiter := middleware.NewRateLimiter(time.Minute)
		defer limiter.Stop()
		mws = append(mws, limiter.Limit(cfg.Server.RateLimitPerMinute))
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      rest.NewRouter(handlers, mws...),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("stopped")
	return nil
}

// accessTokenValidator adapts the JWT manager to the auth middleware, which
// passes a context the stateless validator does not need.
type accessTokenValidator struct {
	jwt *auth.JWTManager
}

func (v accessTokenValidator) ValidateToken(_ context.Context, token string) (uuid.UUID, string, error) {
	return v.jwt.ValidateAccessToken(token)
}
