package rest

import (
	"net/http"

	"github.com/heartmarshall/coursehub-backend/internal/transport/middleware"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Courses  *CourseHandler
	Contents *ContentHandler
	Users    *UserHandler
	Stats    *StatsHandler
	Health   *HealthHandler
}

// NewRouter mounts all REST routes and wraps them with the given middleware
// chain, outermost first.
func NewRouter(h Handlers, mws ...middleware.Middleware) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)

	mux.HandleFunc("GET /api/courses", h.Courses.List)
	mux.HandleFunc("POST /api/courses", h.Courses.Create)
	mux.HandleFunc("GET /api/courses/{id}", h.Courses.Get)
	mux.HandleFunc("PATCH /api/courses/{id}", h.Courses.Update)
	mux.HandleFunc("DELETE /api/courses/{id}", h.Courses.Delete)
	mux.HandleFunc("POST /api/courses/{id}/enroll", h.Courses.Enroll)
	mux.HandleFunc("POST /api/courses/{id}/unenroll", h.Courses.Unenroll)
	mux.HandleFunc("GET /api/courses/{id}/users", h.Courses.EnrolledUsers)

	mux.HandleFunc("GET /api/contents", h.Contents.List)
	mux.HandleFunc("POST /api/contents", h.Contents.Create)
	mux.HandleFunc("GET /api/contents/{id}", h.Contents.Get)
	mux.HandleFunc("PATCH /api/contents/{id}", h.Contents.Update)
	mux.HandleFunc("DELETE /api/contents/{id}", h.Contents.Delete)

	mux.HandleFunc("GET /api/users", h.Users.List)
	mux.HandleFunc("POST /api/users", h.Users.Create)
	mux.HandleFunc("GET /api/users/{id}", h.Users.Get)
	mux.HandleFunc("PATCH /api/users/{id}", h.Users.Update)
	mux.HandleFunc("DELETE /api/users/{id}", h.Users.Delete)

	mux.HandleFunc("GET /api/stats", h.Stats.Get)

	return middleware.Chain(mws...)(mux)
}
