package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mpetrov/storefront-server/internal/logger"
	"github.com/mpetrov/storefront-server/internal/model"
)

// Cart maintains each user's cart and its derived total. The unit price
// on a line is whatever the client submitted at add time; it is not
// validated against the catalog.
type Cart struct {
	cartStore    model.CartStore
	productStore model.ProductStore
	variantStore model.VariantStore
	logger       *logger.Logger
}

func NewCart(
	cartStore model.CartStore,
	productStore model.ProductStore,
	variantStore model.VariantStore,
	logger *logger.Logger,
) *Cart {
	return &Cart{
		cartStore:    cartStore,
		productStore: productStore,
		variantStore: variantStore,
		logger:       logger,
	}
}

// AddItem adds quantity of (product, variant) to the user's cart,
// creating the cart lazily. An existing line for the same pair
// accumulates quantity and keeps its captured price.
func (s *Cart) AddItem(ctx context.Context, userID, productID, variantID primitive.ObjectID, quantity int, price float64) (model.Cart, error) {
	if quantity <= 0 {
		return model.Cart{}, model.NewValidationError("quantity must be positive")
	}
	if price < 0 {
		return model.Cart{}, model.NewValidationError("price must not be negative")
	}

	cart, err := s.cartStore.GetByUser(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		now := time.Now()
		cart = model.Cart{
			UserID: userID,
			Items: []model.CartItem{{
				ProductID: productID,
				VariantID: variantID,
				Quantity:  quantity,
				Price:     price,
			}},
			CreatedAt: now,
			UpdatedAt: now,
		}
		cart.TotalAmount = cart.Total()

		created, err := s.cartStore.Create(ctx, cart)
		if err != nil {
			return model.Cart{}, fmt.Errorf("failed to create cart: %w", err)
		}

		s.logger.Info("Cart service: cart created",
			"user_id", userID.Hex(),
			"product_id", productID.Hex(),
			"variant_id", variantID.Hex())

		return created, nil
	}
	if err != nil {
		return model.Cart{}, fmt.Errorf("failed to get cart: %w", err)
	}

	if idx := findLine(cart.Items, productID, variantID); idx >= 0 {
		cart.Items[idx].Quantity += quantity
	} else {
		cart.Items = append(cart.Items, model.CartItem{
			ProductID: productID,
			VariantID: variantID,
			Quantity:  quantity,
			Price:     price,
		})
	}
	cart.TotalAmount = cart.Total()

	updated, err := s.cartStore.Update(ctx, cart)
	if err != nil {
		return model.Cart{}, fmt.Errorf("failed to update cart: %w", err)
	}

	s.logger.Debug("Cart service: item added",
		"user_id", userID.Hex(),
		"product_id", productID.Hex(),
		"variant_id", variantID.Hex(),
		"total", updated.TotalAmount)

	return updated, nil
}

// SetQuantity overwrites the quantity of an existing line.
func (s *Cart) SetQuantity(ctx context.Context, userID, productID, variantID primitive.ObjectID, quantity int) (model.Cart, error) {
	if quantity <= 0 {
		return model.Cart{}, model.NewValidationError("quantity must be positive")
	}

	cart, err := s.cartStore.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Cart{}, model.ErrCartNotFound
		}
		return model.Cart{}, fmt.Errorf("failed to get cart: %w", err)
	}

	idx := findLine(cart.Items, productID, variantID)
	if idx < 0 {
		return model.Cart{}, model.ErrLineNotFound
	}

	cart.Items[idx].Quantity = quantity
	cart.TotalAmount = cart.Total()

	updated, err := s.cartStore.Update(ctx, cart)
	if err != nil {
		return model.Cart{}, fmt.Errorf("failed to update cart: %w", err)
	}

	return updated, nil
}

// RemoveItem drops the matching line. Removing an absent line leaves the
// cart unchanged rather than failing.
func (s *Cart) RemoveItem(ctx context.Context, userID, productID, variantID primitive.ObjectID) (model.Cart, error) {
	cart, err := s.cartStore.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Cart{}, model.ErrCartNotFound
		}
		return model.Cart{}, fmt.Errorf("failed to get cart: %w", err)
	}

	items := cart.Items[:0]
	for _, item := range cart.Items {
		if item.ProductID == productID && item.VariantID == variantID {
			continue
		}
		items = append(items, item)
	}
	cart.Items = items
	cart.TotalAmount = cart.Total()

	updated, err := s.cartStore.Update(ctx, cart)
	if err != nil {
		return model.Cart{}, fmt.Errorf("failed to update cart: %w", err)
	}

	return updated, nil
}

// Clear deletes the cart document entirely.
func (s *Cart) Clear(ctx context.Context, userID primitive.ObjectID) error {
	err := s.cartStore.DeleteByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrCartNotFound
		}
		return fmt.Errorf("failed to delete cart: %w", err)
	}

	s.logger.Info("Cart service: cart cleared",
		"user_id", userID.Hex())

	return nil
}

// Get returns the cart with each line's product and variant resolved
// against the catalog. References that no longer resolve are returned
// as nil rather than failing the whole read.
func (s *Cart) Get(ctx context.Context, userID primitive.ObjectID) (model.ExpandedCart, error) {
	cart, err := s.cartStore.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ExpandedCart{}, model.ErrCartNotFound
		}
		return model.ExpandedCart{}, fmt.Errorf("failed to get cart: %w", err)
	}

	expanded := model.ExpandedCart{
		ID:          cart.ID,
		UserID:      cart.UserID,
		Items:       make([]model.ExpandedCartItem, 0, len(cart.Items)),
		TotalAmount: cart.TotalAmount,
		CreatedAt:   cart.CreatedAt,
		UpdatedAt:   cart.UpdatedAt,
	}

	for _, item := range cart.Items {
		line := model.ExpandedCartItem{
			Quantity: item.Quantity,
			Price:    item.Price,
		}

		product, err := s.productStore.GetByID(ctx, item.ProductID)
		if err == nil {
			line.Product = &product
		} else if !errors.Is(err, model.ErrNotFound) {
			return model.ExpandedCart{}, fmt.Errorf("failed to get product: %w", err)
		}

		variant, err := s.variantStore.GetByID(ctx, item.VariantID)
		if err == nil {
			line.Variant = &variant
		} else if !errors.Is(err, model.ErrNotFound) {
			return model.ExpandedCart{}, fmt.Errorf("failed to get variant: %w", err)
		}

		expanded.Items = append(expanded.Items, line)
	}

	return expanded, nil
}

func findLine(items []model.CartItem, productID, variantID primitive.ObjectID) int {
	for i, item := range items {
		if item.ProductID == productID && item.VariantID == variantID {
			return i
		}
	}
	return -1
}
