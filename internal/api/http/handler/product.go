package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mpetrov/storefront-server/internal/logger"
	"github.com/mpetrov/storefront-server/internal/model"
	"github.com/mpetrov/storefront-server/internal/service"
)

// ProductService defines the product operations the handler exposes.
type ProductService interface {
	CreateProduct(ctx context.Context, in service.ProductInput) (model.Product, error)
	UpdateProduct(ctx context.Context, id primitive.ObjectID, in service.ProductUpdate) (model.Product, error)
	DeleteProduct(ctx context.Context, id primitive.ObjectID) error
	DeleteProducts(ctx context.Context, ids []primitive.ObjectID) (int64, error)
	ListProducts(ctx context.Context) ([]model.ProductDetail, error)
	GetProduct(ctx context.Context, id primitive.ObjectID) (model.ProductDetail, error)
	ProductsByCategory(ctx context.Context, categoryID primitive.ObjectID) ([]model.ProductDetail, error)
	ProductsBySubCategory(ctx context.Context, subCategoryID primitive.ObjectID) ([]model.ProductDetail, error)
	ListProductsPaginated(ctx context.Context, page, limit int64) ([]model.ProductDetail, error)
	SearchProducts(ctx context.Context, query string) ([]model.ProductDetail, error)
	FeaturedProducts(ctx context.Context) ([]model.ProductDetail, error)
}

// Product handles the product endpoints.
type Product struct {
	service ProductService
	logger  *logger.Logger
}

// NewProduct creates a new Product handler.
func NewProduct(service ProductService, logger *logger.Logger) *Product {
	return &Product{
		service: service,
		logger:  logger,
	}
}

type productRequest struct {
	Name        string            `json:"name"`
	Slug        string            `json:"slug"`
	ShortDesc   string            `json:"shortDesc"`
	Category    string            `json:"category"`
	SubCategory string            `json:"subCategory"`
	Brand       string            `json:"brand"`
	IsFeatured  *bool             `json:"isFeatured"`
	Status      string            `json:"status"`
	Thumbnail   string            `json:"thumbnail"`
	Attributes  map[string]string `json:"attributes"`
}

func (r productRequest) refs() (category, subCategory primitive.ObjectID, err error) {
	category = primitive.NilObjectID
	if r.Category != "" {
		category, err = parseID("category", r.Category)
		if err != nil {
			return primitive.NilObjectID, primitive.NilObjectID, err
		}
	}
	subCategory = primitive.NilObjectID
	if r.SubCategory != "" {
		subCategory, err = parseID("subCategory", r.SubCategory)
		if err != nil {
			return primitive.NilObjectID, primitive.NilObjectID, err
		}
	}
	return category, subCategory, nil
}

func (h *Product) Create(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, response{"success": false, "message": "invalid request body"})
		return
	}

	categoryID, subCategoryID, err := req.refs()
	if err != nil {
		handleError(w, err)
		return
	}

	featured := false
	if req.IsFeatured != nil {
		featured = *req.IsFeatured
	}

	product, err := h.service.CreateProduct(r.Context(), service.ProductInput{
		Name:          req.Name,
		Slug:          req.Slug,
		ShortDesc:     req.ShortDesc,
		CategoryID:    categoryID,
		SubCategoryID: subCategoryID,
		Brand:         req.Brand,
		IsFeatured:    featured,
		Status:        req.Status,
		Thumbnail:     req.Thumbnail,
		Attributes:    req.Attributes,
	})
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, response{
		"success": true,
		"message": "product created successfully",
		"product": product,
	})
}

func (h *Product) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID("product id", chi.URLParam(r, "productId"))
	if err != nil {
		handleError(w, err)
		return
	}

	var req productRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, response{"success": false, "message": "invalid request body"})
		return
	}

	categoryID, subCategoryID, err := req.refs()
	if err != nil {
		handleError(w, err)
		return
	}

	product, err := h.service.UpdateProduct(r.Context(), id, service.ProductUpdate{
		Name:          req.Name,
		ShortDesc:     req.ShortDesc,
		CategoryID:    categoryID,
		SubCategoryID: subCategoryID,
		Brand:         req.Brand,
		IsFeatured:    req.IsFeatured,
		Status:        req.Status,
		Thumbnail:     req.Thumbnail,
	})
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response{
		"success": true,
		"message": "product updated successfully",
		"product": product,
	})
}

func (h *Product) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID("product id", chi.URLParam(r, "productId"))
	if err != nil {
		handleError(w, err)
		return
	}

	if err := h.service.DeleteProduct(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response{
		"success": true,
		"message": "product deleted successfully",
	})
}

func (h *Product) DeleteMany(w http.ResponseWriter, r *http.Request) {
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

	deleted, err := h.service.DeleteProducts(r.Context(), ids)
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response{
		"success":      true,
		"message":      "products deleted successfully",
		"deletedCount": deleted,
	})
}

func (h *Product) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListProducts(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response{
		"success":  true,
		"message":  "products fetched successfully",
		"products": products,
	})
}

func (h *Product) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID("product id", chi.URLParam(r, "productId"))
	if err != nil {
		handleError(w, err)
		return
	}

	product, err := h.service.GetProduct(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response{
		"success": true,
		"message": "product fetched successfully",
		"product": product,
	})
}

func (h *Product) ListByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := parseID("category id", chi.URLParam(r, "categoryId"))
	if err != nil {
		handleError(w, err)
		return
	}

	products, err := h.service.ProductsByCategory(r.Context(), categoryID)
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response{
		"success":  true,
		"message":  "products fetched successfully",
		"products": products,
	})
}

func (h *Product) ListBySubCategory(w http.ResponseWriter, r *http.Request) {
	subCategoryID, err := parseID("subcategory id", chi.URLParam(r, "subCategoryId"))
	if err != nil {
		handleError(w, err)
		return
	}

	products, err := h.service.ProductsBySubCategory(r.Context(), subCategoryID)
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response{
		"success":  true,
		"message":  "products fetched successfully",
		"products": products,
	})
}

func (h *Product) ListPaginated(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.ParseInt(r.URL.Query().Get("page"), 10, 64)
	limit, _ := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64)

	products, err := h.service.ListProductsPaginated(r.Context(), page, limit)
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response{
		"success":  true,
		"message":  "products fetched successfully",
		"products": products,
	})
}

func (h *Product) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		writeJSON(w, http.StatusBadRequest, response{"success": false, "message": "please provide a valid search query"})
		return
	}

	products, err := h.service.SearchProducts(r.Context(), query)
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response{
		"success":  true,
		"message":  "products fetched successfully",
		"products": products,
	})
}

func (h *Product) Featured(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.FeaturedProducts(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response{
		"success":  true,
		"message":  "featured products fetched successfully",
		"products": products,
	})
}
