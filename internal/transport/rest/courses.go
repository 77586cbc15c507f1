package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/coursehub-backend/internal/domain"
	"github.com/heartmarshall/coursehub-backend/internal/service/catalog"
	"github.com/heartmarshall/coursehub-backend/internal/transport/middleware"
	"github.com/heartmarshall/coursehub-backend/pkg/ctxutil"
)

// catalogService defines the minimal interface needed by CourseHandler.
type catalogService interface {
	ListCourses(ctx context.Context, input catalog.ListCoursesInput) (*catalog.CoursePage, error)
	GetCourse(ctx context.Context, courseID uuid.UUID) (*domain.CourseView, error)
	CreateCourse(ctx context.Context, input catalog.CreateCourseInput) (*domain.Course, error)
	UpdateCourse(ctx context.Context, input catalog.UpdateCourseInput) (*domain.Course, error)
	DeleteCourse(ctx context.Context, courseID uuid.UUID) (uuid.UUID, error)
	Enroll(ctx context.Context, input catalog.EnrollInput) error
	Unenroll(ctx context.Context, input catalog.UnenrollInput) error
	GetEnrolledUsers(ctx context.Context, courseID uuid.UUID) ([]domain.PublicUser, error)
}

// CourseHandler serves course catalog REST endpoints.
type CourseHandler struct {
	svc catalogService
	log *slog.Logger
}

// NewCourseHandler creates a CourseHandler.
func NewCourseHandler(svc catalogService, logger *slog.Logger) *CourseHandler {
	return &CourseHandler{svc: svc, log: logger.With("handler", "courses")}
}

type courseResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

type courseViewResponse struct {
	courseResponse
	IsEnrolled    bool `json:"isEnrolled"`
	EnrolledCount int  `json:"enrolledCount"`
}

type courseListResponse struct {
	Courses  []courseViewResponse `json:"courses"`
	PageInfo pageInfoResponse     `json:"pageInfo"`
}

type createCourseRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type updateCourseRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type enrollRequest struct {
	UserID string `json:"userId"`
}

type publicUserResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Username  string `json:"username"`
}

// List handles GET /api/courses?name=&description=&page=&limit=.
func (h *CourseHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.ListCourses(r.Context(), catalog.ListCoursesInput{
		Name:        queryString(r, "name"),
		Description: queryString(r, "description"),
		Page:        queryPage(r),
	})
	if err != nil {
		respondError(r.Context(), h.log, w, err)
		return
	}

	resp := courseListResponse{
		Courses:  make([]courseViewResponse, 0, len(page.Courses)),
		PageInfo: toPageInfo(page.PageInfo),
	}
	for _, view := range page.Courses {
		resp.Courses = append(resp.Courses, toCourseView(view))
	}

	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /api/courses/{id}.
func (h *CourseHandler) Get(w http.ResponseWriter, r *http.Request) {
	courseID, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid course id")
		return
	}

	view, err := h.svc.GetCourse(r.Context(), courseID)
	if err != nil {
		respondError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toCourseView(*view))
}

// Create handles POST /api/courses. Editor role required.
func (h *CourseHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireEditor(r.Context()); err != nil {
		respondError(r.Context(), h.log, w, err)
		return
	}

	var req createCourseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	course, err := h.svc.CreateCourse(r.Context(), catalog.CreateCourseInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		respondError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCourse(*course))
}

// Update handles PATCH /api/courses/{id}. Editor role required.
func (h *CourseHandler) Update(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireEditor(r.Context()); err != nil {
		respondError(r.Context(), h.log, w, err)
		return
	}

	courseID, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid course id")
		return
	}

	var req updateCourseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	course, err := h.svc.UpdateCourse(r.Context(), catalog.UpdateCourseInput{
		CourseID:    courseID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		respondError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toCourse(*course))
}

// Delete handles DELETE /api/courses/{id}. Editor role required.
func (h *CourseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireEditor(r.Context()); err != nil {
		respondError(r.Context(), h.log, w, err)
		return
	}

	courseID, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid course id")
		return
	}

	deletedID, err := h.svc.DeleteCourse(r.Context(), courseID)
	if err != nil {
		respondError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"id": deletedID.String()})
}

// Enroll handles POST /api/courses/{id}/enroll. The optional body names the
// user to enroll; without it the viewer enrolls themselves. Enrolling
// somebody else requires the admin role.
func (h *CourseHandler) Enroll(w http.ResponseWriter, r *http.Request) {
	courseID, userID, ok := h.enrollmentTarget(w, r)
	if !ok {
		return
	}

	if err := h.svc.Enroll(r.Context(), catalog.EnrollInput{
		UserID:   userID,
		CourseID: courseID,
	}); err != nil {
		respondError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "enrolled"})
}

// Unenroll handles POST /api/courses/{id}/unenroll. Same target rules as
// Enroll.
func (h *CourseHandler) Unenroll(w http.ResponseWriter, r *http.Request) {
	courseID, userID, ok := h.enrollmentTarget(w, r)
	if !ok {
		return
	}

	if err := h.svc.Unenroll(r.Context(), catalog.UnenrollInput{
		UserID:   userID,
		CourseID: courseID,
	}); err != nil {
		respondError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "unenrolled"})
}

// EnrolledUsers handles GET /api/courses/{id}/users. Editor role required.
func (h *CourseHandler) EnrolledUsers(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireEditor(r.Context()); err != nil {
		respondError(r.Context(), h.log, w, err)
		return
	}

	courseID, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid course id")
		return
	}

	users, err := h.svc.GetEnrolledUsers(r.Context(), courseID)
	if err != nil {
		respondError(r.Context(), h.log, w, err)
		return
	}

	resp := make([]publicUserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, publicUserResponse{
			ID:        u.ID.String(),
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Username:  u.Username,
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{"users": resp})
}

// enrollmentTarget resolves the course id from the path and the target user
// id from the optional body, enforcing the self-or-admin rule. On failure it
// writes the response itself and returns ok=false.
func (h *CourseHandler) enrollmentTarget(w http.ResponseWriter, r *http.Request) (courseID, userID uuid.UUID, ok bool) {
	courseID, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid course id")
		return uuid.Nil, uuid.Nil, false
	}

	viewerID, authed := ctxutil.UserIDFromCtx(r.Context())
	if !authed {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return uuid.Nil, uuid.Nil, false
	}

	var req enrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return uuid.Nil, uuid.Nil, false
	}

	userID = viewerID
	if req.UserID != "" {
		target, err := uuid.Parse(req.UserID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid user id")
			return uuid.Nil, uuid.Nil, false
		}
		if target != viewerID {
			if err := middleware.RequireAdmin(r.Context()); err != nil {
				respondError(r.Context(), h.log, w, err)
				return uuid.Nil, uuid.Nil, false
			}
		}
		userID = target
	}

	return courseID, userID, true
}

func toCourse(c domain.Course) courseResponse {
	return courseResponse{
		ID:          c.ID.String(),
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
	}
}

func toCourseView(v domain.CourseView) courseViewResponse {
	return courseViewResponse{
		courseResponse: toCourse(v.Course),
		IsEnrolled:     v.IsEnrolled,
		EnrolledCount:  v.EnrolledCount,
	}
}
