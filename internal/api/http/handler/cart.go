package handler

import (
	"context"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mpetrov/storefront-server/internal/logger"
	"github.com/mpetrov/storefront-server/internal/model"
)

// CartService defines the cart operations the handler exposes.
type CartService interface {
	AddItem(ctx context.Context, userID, productID, variantID primitive.ObjectID, quantity int, price float64) (model.Cart, error)
	SetQuantity(ctx context.Context, userID, productID, variantID primitive.ObjectID, quantity int) (model.Cart, error)
	RemoveItem(ctx context.Context, userID, productID, variantID primitive.ObjectID) (model.Cart, error)
	Clear(ctx context.Context, userID primitive.ObjectID) error
	Get(ctx context.Context, userID primitive.ObjectID) (model.ExpandedCart, error)
}

// Cart handles the cart endpoints. Every endpoint is scoped to the
// authenticated user.
type Cart struct {
	service        CartService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewCart creates a new Cart handler.
func NewCart(service CartService, contextManager model.ContextManager, logger *logger.Logger) *Cart {
	return &Cart{
		service:        service,
		contextManager: contextManager,
		logger:         logger,
	}
}

func (h *Cart) userID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, response{"success": false, "message": "authorization required"})
		return primitive.NilObjectID, false
	}
	return userID, true
}

type cartItemRequest struct {
	Product  string  `json:"product"`
	Variant  string  `json:"variant"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

func (r cartItemRequest) ids() (product, variant primitive.ObjectID, err error) {
	product, err = parseID("product", r.Product)
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, err
	}
	variant, err = parseID("variant", r.Variant)
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, err
	}
	return product, variant, nil
}

func (h *Cart) AddItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req cartItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, response{"success": false, "message": "invalid request body"})
		return
	}

	productID, variantID, err := req.ids()
	if err != nil {
		handleError(w, err)
		return
	}

	cart, err := h.service.AddItem(r.Context(), userID, productID, variantID, req.Quantity, req.Price)
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response{
		"success": true,
		"message": "item added to cart",
		"cart":    cart,
	})
}

func (h *Cart) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req cartItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, response{"success": false, "message": "invalid request body"})
		return
	}

	productID, variantID, err := req.ids()
	if err != nil {
		handleError(w, err)
		return
	}

	cart, err := h.service.SetQuantity(r.Context(), userID, productID, variantID, req.Quantity)
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response{
		"success": true,
		"message": "cart updated successfully",
		"cart":    cart,
	})
}

func (h *Cart) RemoveItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req cartItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, response{"success": false, "message": "invalid request body"})
		return
	}

	productID, variantID, err := req.ids()
	if err != nil {
		handleError(w, err)
		return
	}

	cart, err := h.service.RemoveItem(r.Context(), userID, productID, variantID)
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response{
		"success": true,
		"message": "item removed from cart",
		"cart":    cart,
	})
}

func (h *Cart) Clear(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	if err := h.service.Clear(r.Context(), userID); err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response{
		"success": true,
		"message": "cart cleared successfully",
	})
}

func (h *Cart) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	cart, err := h.service.Get(r.Context(), userID)
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response{
		"success": true,
		"message": "cart fetched successfully",
		"cart":    cart,
	})
}
