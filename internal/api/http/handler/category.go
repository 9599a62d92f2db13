package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mpetrov/storefront-server/internal/logger"
	"github.com/mpetrov/storefront-server/internal/model"
)

// CategoryService defines the category operations the handler exposes.
type CategoryService interface {
	CreateCategory(ctx context.Context, name, thumbnail string) (model.Category, error)
	UpdateCategory(ctx context.Context, id primitive.ObjectID, name, thumbnail string) (model.Category, error)
	DeleteCategory(ctx context.Context, id primitive.ObjectID) error
	GetCategory(ctx context.Context, id primitive.ObjectID) (model.Category, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
	SearchCategories(ctx context.Context, query string) ([]model.Category, error)
	CountCategories(ctx context.Context) (int64, error)
}

// Category handles the category endpoints.
type Category struct {
	service CategoryService
	logger  *logger.Logger
}

// NewCategory creates a new Category handler.
func NewCategory(service CategoryService, logger *logger.Logger) *Category {
	return &Category{
		service: service,
		logger:  logger,
	}
}

type categoryRequest struct {
	Name      string `json:"name"`
	Thumbnail string `json:"thumbnail"`
}

func (h *Category) Create(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, response{"success": false, "message": "invalid request body"})
		return
	}

	category, err := h.service.CreateCategory(r.Context(), req.Name, req.Thumbnail)
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, response{
		"success":  true,
		"message":  "category created successfully",
		"category": category,
	})
}

func (h *Category) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID("category id", chi.URLParam(r, "categoryId"))
	if err != nil {
		handleError(w, err)
		return
	}

	var req categoryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, response{"success": false, "message": "invalid request body"})
		return
	}

	category, err := h.service.UpdateCategory(r.Context(), id, req.Name, req.Thumbnail)
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response{
		"success":  true,
		"message":  "category updated successfully",
		"category": category,
	})
}

func (h *Category) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID("category id", chi.URLParam(r, "categoryId"))
	if err != nil {
		handleError(w, err)
		return
	}

	if err := h.service.DeleteCategory(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response{
		"success": true,
		"message": "category deleted successfully",
	})
}

func (h *Category) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID("category id", chi.URLParam(r, "categoryId"))
	if err != nil {
		handleError(w, err)
		return
	}

	category, err := h.service.GetCategory(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response{
		"success":  true,
		"message":  "category fetched successfully",
		"category": category,
	})
}

func (h *Category) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response{
		"success":    true,
		"message":    "categories fetched successfully",
		"categories": categories,
	})
}

func (h *Category) Search(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.SearchCategories(r.Context(), r.URL.Query().Get("query"))
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response{
		"success":    true,
		"message":    "categories fetched successfully",
		"categories": categories,
	})
}

func (h *Category) Count(w http.ResponseWriter, r *http.Request) {
	count, err := h.service.CountCategories(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response{
		"success": true,
		"message": "categories counted successfully",
		"count":   count,
	})
}
