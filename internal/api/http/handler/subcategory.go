package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mpetrov/storefront-server/internal/logger"
	"github.com/mpetrov/storefront-server/internal/model"
	"github.com/mpetrov/storefront-server/internal/service"
)

// SubCategoryService defines the subcategory operations the handler
// exposes.
type SubCategoryService interface {
	CreateSubCategory(ctx context.Context, name, thumbnail string, categoryID primitive.ObjectID) (model.SubCategory, error)
	UpdateSubCategory(ctx context.Context, id primitive.ObjectID, name, thumbnail string, categoryID primitive.ObjectID) (model.SubCategory, error)
	UpdateSubCategories(ctx context.Context, updates []service.SubCategoryUpdate) ([]model.SubCategory, error)
	DeleteSubCategory(ctx context.Context, id primitive.ObjectID) error
	DeleteSubCategories(ctx context.Context, ids []primitive.ObjectID) (int64, error)
	GetSubCategory(ctx context.Context, id primitive.ObjectID) (model.SubCategory, error)
	ListSubCategories(ctx context.Context) ([]model.SubCategory, error)
	SubCategoriesByCategory(ctx context.Context, categoryID primitive.ObjectID) ([]model.SubCategory, error)
	SearchSubCategories(ctx context.Context, query string) ([]model.SubCategory, error)
	CountSubCategories(ctx context.Context) (int64, error)
}

// SubCategory handles the subcategory endpoints.
type SubCategory struct {
	service SubCategoryService
	logger  *logger.Logger
}

// NewSubCategory creates a new SubCategory handler.
func NewSubCategory(service SubCategoryService, logger *logger.Logger) *SubCategory {
	return &SubCategory{
		service: service,
		logger:  logger,
	}
}

type subCategoryRequest struct {
	Name      string `json:"name"`
	Thumbnail string `json:"thumbnail"`
	Category  string `json:"category"`
}

func (h *SubCategory) Create(w http.ResponseWriter, r *http.Request) {
	var req subCategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, response{"success": false, "message": "invalid request body"})
		return
	}

	categoryID, err := parseID("category", req.Category)
	if err != nil {
		handleError(w, err)
		return
	}

	subCategory, err := h.service.CreateSubCategory(r.Context(), req.Name, req.Thumbnail, categoryID)
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, response{
		"success":     true,
		"message":     "subcategory created successfully",
		"subCategory": subCategory,
	})
}

func (h *SubCategory) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID("subcategory id", chi.URLParam(r, "subCategoryId"))
	if err != nil {
		handleError(w, err)
		return
	}

	var req subCategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, response{"success": false, "message": "invalid request body"})
		return
	}

	categoryID := primitive.NilObjectID
	if req.Category != "" {
		categoryID, err = parseID("category", req.Category)
		if err != nil {
			handleError(w, err)
			return
		}
	}

	subCategory, err := h.service.UpdateSubCategory(r.Context(), id, req.Name, req.Thumbnail, categoryID)
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response{
		"success":     true,
		"message":     "subcategory updated successfully",
		"subCategory": subCategory,
	})
}

type subCategoryBatchEntry struct {
	ID        string `json:"_id"`
	Name      string `json:"name"`
	Thumbnail string `json:"thumbnail"`
	Category  string `json:"category"`
}

type subCategoryBatchRequest struct {
	SubCategories []subCategoryBatchEntry `json:"subCategories"`
}

func (h *SubCategory) UpdateMany(w http.ResponseWriter, r *http.Request) {
	var req subCategoryBatchRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, response{"success": false, "message": "invalid request body"})
		return
	}

	updates := make([]service.SubCategoryUpdate, 0, len(req.SubCategories))
	for _, entry := range req.SubCategories {
		id, err := parseID("subcategory id", entry.ID)
		if err != nil {
			handleError(w, err)
			return
		}

		categoryID := primitive.NilObjectID
		if entry.Category != "" {
			categoryID, err = parseID("category", entry.Category)
			if err != nil {
				handleError(w, err)
				return
			}
		}

		updates = append(updates, service.SubCategoryUpdate{
			ID:         id,
			Name:       entry.Name,
			Thumbnail:  entry.Thumbnail,
			CategoryID: categoryID,
		})
	}

	subCategories, err := h.service.UpdateSubCategories(r.Context(), updates)
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response{
		"success":       true,
		"message":       "subcategories updated successfully",
		"subCategories": subCategories,
	})
}

func (h *SubCategory) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID("subcategory id", chi.URLParam(r, "subCategoryId"))
	if err != nil {
		handleError(w, err)
		return
	}

	if err := h.service.DeleteSubCategory(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response{
		"success": true,
		"message": "subcategory deleted successfully",
	})
}

type deleteManyRequest struct {
	IDs []string `json:"ids"`
}

func (h *SubCategory) DeleteMany(w http.ResponseWriter, r *http.Request) {
	var req deleteManyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, response{"success": false, "message": "invalid request body"})
		return
	}

	ids, err := parseIDs("ids", req.IDs)
	if err != nil {
		handleError(w, err)
		return
	}

	deleted, err := h.service.DeleteSubCategories(r.Context(), ids)
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response{
		"success":      true,
		"message":      "subcategories deleted successfully",
		"deletedCount": deleted,
	})
}

func (h *SubCategory) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID("subcategory id", chi.URLParam(r, "subCategoryId"))
	if err != nil {
		handleError(w, err)
		return
	}

	subCategory, err := h.service.GetSubCategory(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response{
		"success":     true,
		"message":     "subcategory fetched successfully",
		"subCategory": subCategory,
	})
}

func (h *SubCategory) List(w http.ResponseWriter, r *http.Request) {
	subCategories, err := h.service.ListSubCategories(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response{
		"success":       true,
		"message":       "subcategories fetched successfully",
		"subCategories": subCategories,
	})
}

func (h *SubCategory) ListByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := parseID("category id", chi.URLParam(r, "categoryId"))
	if err != nil {
		handleError(w, err)
		return
	}

	subCategories, err := h.service.SubCategoriesByCategory(r.Context(), categoryID)
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response{
		"success":       true,
		"message":       "subcategories fetched successfully",
		"subCategories": subCategories,
	})
}

func (h *SubCategory) Search(w http.ResponseWriter, r *http.Request) {
	subCategories, err := h.service.SearchSubCategories(r.Context(), r.URL.Query().Get("query"))
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response{
		"success":       true,
		"message":       "subcategories fetched successfully",
		"subCategories": subCategories,
	})
}

func (h *SubCategory) Count(w http.ResponseWriter, r *http.Request) {
	count, err := h.service.CountSubCategories(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response{
		"success": true,
		"message": "subcategories counted successfully",
		"count":   count,
	})
}
