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

// VariantService defines the product variant operations the handler
// exposes.
type VariantService interface {
	CreateVariant(ctx context.Context, in service.VariantInput) (model.ProductVariant, error)
	UpdateVariant(ctx context.Context, id primitive.ObjectID, in service.VariantUpdate) (model.ProductVariant, error)
	DeleteVariant(ctx context.Context, id primitive.ObjectID) error
	GetVariant(ctx context.Context, id primitive.ObjectID) (model.ProductVariant, error)
	VariantsByProduct(ctx context.Context, productID primitive.ObjectID) ([]model.ProductVariant, error)
}

// Variant handles the product variant endpoints.
type Variant struct {
	service VariantService
	logger  *logger.Logger
}

// NewVariant creates a new Variant handler.
func NewVariant(service VariantService, logger *logger.Logger) *Variant {
	return &Variant{
		service: service,
		logger:  logger,
	}
}

type variantRequest struct {
	Product   string   `json:"product"`
	Color     string   `json:"color"`
	Size      string   `json:"size"`
	Weight    float64  `json:"weight"`
	Stock     int      `json:"stock"`
	Price     float64  `json:"price"`
	Thumbnail string   `json:"thumbnail"`
	Photos    []string `json:"photos"`
}

func (h *Variant) Create(w http.ResponseWriter, r *http.Request) {
	var req variantRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, response{"success": false, "message": "invalid request body"})
		return
	}

	productID, err := parseID("product", req.Product)
	if err != nil {
		handleError(w, err)
		return
	}

	variant, err := h.service.CreateVariant(r.Context(), service.VariantInput{
		ProductID: productID,
		Color:     req.Color,
		Size:      req.Size,
		Weight:    req.Weight,
		Stock:     req.Stock,
		Price:     req.Price,
		Thumbnail: req.Thumbnail,
		Photos:    req.Photos,
	})
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, response{
		"success": true,
		"message": "product variant created successfully",
		"variant": variant,
	})
}

func (h *Variant) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID("variant id", chi.URLParam(r, "variantId"))
	if err != nil {
		handleError(w, err)
		return
	}

	var req variantRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, response{"success": false, "message": "invalid request body"})
		return
	}

	variant, err := h.service.UpdateVariant(r.Context(), id, service.VariantUpdate{
		Color:     req.Color,
		Size:      req.Size,
		Weight:    req.Weight,
		Stock:     req.Stock,
		Price:     req.Price,
		Thumbnail: req.Thumbnail,
		Photos:    req.Photos,
	})
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response{
		"success": true,
		"message": "product variant updated successfully",
		"variant": variant,
	})
}

func (h *Variant) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID("variant id", chi.URLParam(r, "variantId"))
	if err != nil {
		handleError(w, err)
		return
	}

	if err := h.service.DeleteVariant(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response{
		"success": true,
		"message": "product variant deleted successfully",
	})
}

func (h *Variant) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID("variant id", chi.URLParam(r, "variantId"))
	if err != nil {
		handleError(w, err)
		return
	}

	variant, err := h.service.GetVariant(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response{
		"success": true,
		"message": "product variant fetched successfully",
		"variant": variant,
	})
}

func (h *Variant) ListByProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := parseID("product id", chi.URLParam(r, "productId"))
	if err != nil {
		handleError(w, err)
		return
	}

	variants, err := h.service.VariantsByProduct(r.Context(), productID)
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response{
		"success":  true,
		"message":  "product variants fetched successfully",
		"variants": variants,
	})
}
