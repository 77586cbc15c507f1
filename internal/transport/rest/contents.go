package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/coursehub-backend/internal/domain"
	"github.com/heartmarshall/coursehub-backend/internal/service/content"
	"github.com/heartmarshall/coursehub-backend/internal/transport/middleware"
)

// contentService defines the minimal interface needed by ContentHandler.
type contentService interface {
	FindContents(ctx context.Context, input content.FindContentsInput) (*content.ContentPage, error)
	GetContent(ctx context.Context, contentID uuid.UUID) (*domain.Content, error)
	CreateContent(ctx context.Context, input content.CreateContentInput) (*domain.Content, error)
	UpdateContent(ctx context.Context, input content.UpdateContentInput) (*domain.Content, error)
	DeleteContent(ctx context.Context, contentID uuid.UUID) (uuid.UUID, error)
}

// ContentHandler serves course content REST endpoints.
type ContentHandler struct {
	svc contentService
	log *slog.Logger
}

// NewContentHandler creates a ContentHandler.
func NewContentHandler(svc contentService, logger *slog.Logger) *ContentHandler {
	return &ContentHandler{svc: svc, log: logger.With("handler", "contents")}
}

type contentResponse struct {
	ID          string    `json:"id"`
	CourseID    string    `json:"courseId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

type contentListResponse struct {
	Contents []contentResponse `json:"contents"`
	PageInfo pageInfoResponse  `json:"pageInfo"`
}

type createContentRequest struct {
	CourseID    string `json:"courseId"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type updateContentRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// List handles GET /api/contents?name=&description=&courseId=&page=&limit=.
func (h *ContentHandler) List(w http.ResponseWriter, r *http.Request) {
	input := content.FindContentsInput{
		Name:        queryString(r, "name"),
		Description: queryString(r, "description"),
		Page:        queryPage(r),
	}
	if v := r.URL.Query().Get("courseId"); v != "" {
		courseID, err := uuid.Parse(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid course id")
			return
		}
		input.CourseID = &courseID
	}

	page, err := h.svc.FindContents(r.Context(), input)
	if err != nil {
		respondError(r.Context(), h.log, w, err)
		return
	}

	resp := contentListResponse{
		Contents: make([]contentResponse, 0, len(page.Contents)),
		PageInfo: toPageInfo(page.PageInfo),
	}
	for _, c := range page.Contents {
		resp.Contents = append(resp.Contents, toContent(c))
	}

	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /api/contents/{id}.
func (h *ContentHandler) Get(w http.ResponseWriter, r *http.Request) {
	contentID, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid content id")
		return
	}

	c, err := h.svc.GetContent(r.Context(), contentID)
	if err != nil {
		respondError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toContent(*c))
}

// Create handles POST /api/contents. Editor role required.
func (h *ContentHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireEditor(r.Context()); err != nil {
		respondError(r.Context(), h.log, w, err)
		return
	}

	var req createContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	courseID, err := uuid.Parse(req.CourseID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid course id")
		return
	}

	c, err := h.svc.CreateContent(r.Context(), content.CreateContentInput{
		CourseID:    courseID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		respondError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toContent(*c))
}

// Update handles PATCH /api/contents/{id}. Editor role required.
func (h *ContentHandler) Update(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireEditor(r.Context()); err != nil {
		respondError(r.Context(), h.log, w, err)
		return
	}

	contentID, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid content id")
		return
	}

	var req updateContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := h.svc.UpdateContent(r.Context(), content.UpdateContentInput{
		ContentID:   contentID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		respondError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toContent(*c))
}

// Delete handles DELETE /api/contents/{id}. Editor role required.
func (h *ContentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireEditor(r.Context()); err != nil {
		respondError(r.Context(), h.log, w, err)
		return
	}

	contentID, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid content id")
		return
	}

	deletedID, err := h.svc.DeleteContent(r.Context(), contentID)
	if err != nil {
		respondError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"id": deletedID.String()})
}

func toContent(c domain.Content) contentResponse {
	return contentResponse{
		ID:          c.ID.String(),
		CourseID:    c.CourseID.String(),
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
	}
}
