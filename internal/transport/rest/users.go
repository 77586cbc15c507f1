package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/coursehub-backend/internal/domain"
	"github.com/heartmarshall/coursehub-backend/internal/service/user"
	"github.com/heartmarshall/coursehub-backend/internal/transport/middleware"
)

// userService defines the minimal interface needed by UserHandler.
type userService interface {
	FindUsers(ctx context.Context, input user.FindUsersInput) (*user.UserPage, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	CreateUser(ctx context.Context, input user.CreateUserInput) (*domain.User, error)
	UpdateUser(ctx context.Context, input user.UpdateUserInput) (*domain.User, error)
	DeleteUser(ctx context.Context, userID uuid.UUID) (uuid.UUID, error)
}

// UserHandler serves user administration REST endpoints.
// Every route requires the admin role.
type UserHandler struct {
	svc userService
	log *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: logger.With("handler", "users")}
}

// adminUserResponse never includes the password hash.
type adminUserResponse struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

type userListResponse struct {
	Users    []adminUserResponse `json:"users"`
	PageInfo pageInfoResponse    `json:"pageInfo"`
}

type createUserRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	Role      string `json:"role"`
}

type updateUserRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Username  *string `json:"username"`
	Password  *string `json:"password"`
	Role      *string `json:"role"`
	IsActive  *bool   `json:"isActive"`
}

// List handles GET /api/users?firstName=&lastName=&username=&role=&page=&limit=.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		respondError(r.Context(), h.log, w, err)
		return
	}

	page, err := h.svc.FindUsers(r.Context(), user.FindUsersInput{
		FirstName: queryString(r, "firstName"),
		LastName:  queryString(r, "lastName"),
		Username:  queryString(r, "username"),
		Role:      queryString(r, "role"),
		Page:      queryPage(r),
	})
	if err != nil {
		respondError(r.Context(), h.log, w, err)
		return
	}

	resp := userListResponse{
		Users:    make([]adminUserResponse, 0, len(page.Users)),
		PageInfo: toPageInfo(page.PageInfo),
	}
	for _, u := range page.Users {
		resp.Users = append(resp.Users, toAdminUser(u))
	}

	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /api/users/{id}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		respondError(r.Context(), h.log, w, err)
		return
	}

	userID, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	u, err := h.svc.GetUser(r.Context(), userID)
	if err != nil {
		respondError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toAdminUser(*u))
}

// Create handles POST /api/users.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		respondError(r.Context(), h.log, w, err)
		return
	}

	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := h.svc.CreateUser(r.Context(), user.CreateUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
		Password:  req.Password,
		Role:      domain.Role(req.Role),
	})
	if err != nil {
		respondError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toAdminUser(*u))
}

// Update handles PATCH /api/users/{id}.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		respondError(r.Context(), h.log, w, err)
		return
	}

	userID, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var req updateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := user.UpdateUserInput{
		UserID:    userID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
		Password:  req.Password,
		IsActive:  req.IsActive,
	}
	if req.Role != nil {
		role := domain.Role(*req.Role)
		input.Role = &role
	}

	u, err := h.svc.UpdateUser(r.Context(), input)
	if err != nil {
		respondError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toAdminUser(*u))
}

// Delete handles DELETE /api/users/{id}.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		respondError(r.Context(), h.log, w, err)
		return
	}

	userID, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	deletedID, err := h.svc.DeleteUser(r.Context(), userID)
	if err != nil {
		respondError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"id": deletedID.String()})
}

func toAdminUser(u domain.User) adminUserResponse {
	return adminUserResponse{
		ID:        u.ID.String(),
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Username:  u.Username,
		Role:      string(u.Role),
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}
