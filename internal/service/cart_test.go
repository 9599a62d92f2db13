package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mpetrov/storefront-server/internal/logger"
	"github.com/mpetrov/storefront-server/internal/mocks"
	"github.com/mpetrov/storefront-server/internal/model"
)

func newCartForTest(cartStore *mocks.CartStore, productStore *mocks.ProductStore, variantStore *mocks.VariantStore) *Cart {
	return NewCart(cartStore, productStore, variantStore, logger.New(0))
}

func TestCart_AddItem_CreatesCartLazily(t *testing.T) {
	ctx := context.Background()
	userID := primitive.NewObjectID()
	productID := primitive.NewObjectID()
	variantID := primitive.NewObjectID()
	cartStore := &mocks.CartStore{}

	cartStore.On("GetByUser", mock.Anything, userID).Return(model.Cart{}, model.ErrNotFound)
	cartStore.On("Create", mock.Anything, mock.MatchedBy(func(c model.Cart) bool {
		return c.UserID == userID && len(c.Items) == 1 &&
			c.Items[0].Quantity == 2 && c.TotalAmount == 20
	})).Return(model.Cart{ID: primitive.NewObjectID(), UserID: userID, TotalAmount: 20}, nil)

	s := newCartForTest(cartStore, &mocks.ProductStore{}, &mocks.VariantStore{})

	cart, err := s.AddItem(ctx, userID, productID, variantID, 2, 10)
	require.NoError(t, err)
	assert.Equal(t, float64(20), cart.TotalAmount)
	cartStore.AssertExpectations(t)
}

// Adding the same (product, variant) pair twice accumulates quantity on
// the existing line and recomputes the total.
func TestCart_AddItem_AccumulatesQuantity(t *testing.T) {
	ctx := context.Background()
	userID := primitive.NewObjectID()
	productID := primitive.NewObjectID()
	variantID := primitive.NewObjectID()
	cartStore := &mocks.CartStore{}

	existing := model.Cart{
		ID:     primitive.NewObjectID(),
		UserID: userID,
		Items: []model.CartItem{{
			ProductID: productID,
			VariantID: variantID,
			Quantity:  2,
			Price:     10,
		}},
		TotalAmount: 20,
	}

	cartStore.On("GetByUser", mock.Anything, userID).Return(existing, nil)
	cartStore.On("Update", mock.Anything, mock.MatchedBy(func(c model.Cart) bool {
		return len(c.Items) == 1 && c.Items[0].Quantity == 5 && c.TotalAmount == 50
	})).Return(model.Cart{TotalAmount: 50}, nil)

	s := newCartForTest(cartStore, &mocks.ProductStore{}, &mocks.VariantStore{})

	cart, err := s.AddItem(ctx, userID, productID, variantID, 3, 10)
	require.NoError(t, err)
	assert.Equal(t, float64(50), cart.TotalAmount)
	cartStore.AssertExpectations(t)
}

func TestCart_AddItem_DistinctVariantsAreSeparateLines(t *testing.T) {
	ctx := context.Background()
	userID := primitive.NewObjectID()
	productID := primitive.NewObjectID()
	cartStore := &mocks.CartStore{}

	existing := model.Cart{
		UserID: userID,
		Items: []model.CartItem{{
			ProductID: productID,
			VariantID: primitive.NewObjectID(),
			Quantity:  1,
			Price:     10,
		}},
		TotalAmount: 10,
	}

	cartStore.On("GetByUser", mock.Anything, userID).Return(existing, nil)
	cartStore.On("Update", mock.Anything, mock.MatchedBy(func(c model.Cart) bool {
		return len(c.Items) == 2 && c.TotalAmount == 25
	})).Return(model.Cart{TotalAmount: 25}, nil)

	s := newCartForTest(cartStore, &mocks.ProductStore{}, &mocks.VariantStore{})

	_, err := s.AddItem(ctx, userID, productID, primitive.NewObjectID(), 1, 15)
	require.NoError(t, err)
	cartStore.AssertExpectations(t)
}

func TestCart_AddItem_Validation(t *testing.T) {
	ctx := context.Background()
	s := newCartForTest(&mocks.CartStore{}, &mocks.ProductStore{}, &mocks.VariantStore{})

	_, err := s.AddItem(ctx, primitive.NewObjectID(), primitive.NewObjectID(), primitive.NewObjectID(), 0, 10)
	var ve *model.ValidationError
	require.ErrorAs(t, err, &ve)

	_, err = s.AddItem(ctx, primitive.NewObjectID(), primitive.NewObjectID(), primitive.NewObjectID(), 1, -1)
	require.ErrorAs(t, err, &ve)
}

func TestCart_SetQuantity(t *testing.T) {
	ctx := context.Background()
	userID := primitive.NewObjectID()
	productID := primitive.NewObjectID()
	variantID := primitive.NewObjectID()
	cartStore := &mocks.CartStore{}

	existing := model.Cart{
		UserID: userID,
		Items: []model.CartItem{{
			ProductID: productID,
			VariantID: variantID,
			Quantity:  5,
			Price:     10,
		}},
		TotalAmount: 50,
	}

	cartStore.On("GetByUser", mock.Anything, userID).Return(existing, nil)
	cartStore.On("Update", mock.Anything, mock.MatchedBy(func(c model.Cart) bool {
		return c.Items[0].Quantity == 10 && c.TotalAmount == 100
	})).Return(model.Cart{TotalAmount: 100}, nil)

	s := newCartForTest(cartStore, &mocks.ProductStore{}, &mocks.VariantStore{})

	cart, err := s.SetQuantity(ctx, userID, productID, variantID, 10)
	require.NoError(t, err)
	assert.Equal(t, float64(100), cart.TotalAmount)
}

func TestCart_SetQuantity_MissingLine(t *testing.T) {
	ctx := context.Background()
	userID := primitive.NewObjectID()
	cartStore := &mocks.CartStore{}

	cartStore.On("GetByUser", mock.Anything, userID).Return(model.Cart{UserID: userID}, nil)

	s := newCartForTest(cartStore, &mocks.ProductStore{}, &mocks.VariantStore{})

	_, err := s.SetQuantity(ctx, userID, primitive.NewObjectID(), primitive.NewObjectID(), 3)
	require.ErrorIs(t, err, model.ErrLineNotFound)
}

func TestCart_SetQuantity_NoCart(t *testing.T) {
	ctx := context.Background()
	userID := primitive.NewObjectID()
	cartStore := &mocks.CartStore{}

	cartStore.On("GetByUser", mock.Anything, userID).Return(model.Cart{}, model.ErrNotFound)

	s := newCartForTest(cartStore, &mocks.ProductStore{}, &mocks.VariantStore{})

	_, err := s.SetQuantity(ctx, userID, primitive.NewObjectID(), primitive.NewObjectID(), 3)
	require.ErrorIs(t, err, model.ErrCartNotFound)
}

func TestCart_RemoveItem(t *testing.T) {
	ctx := context.Background()
	userID := primitive.NewObjectID()
	productID := primitive.NewObjectID()
	variantID := primitive.NewObjectID()
	cartStore := &mocks.CartStore{}

	existing := model.Cart{
		UserID: userID,
		Items: []model.CartItem{{
			ProductID: productID,
			VariantID: variantID,
			Quantity:  2,
			Price:     10,
		}},
		TotalAmount: 20,
	}

	cartStore.On("GetByUser", mock.Anything, userID).Return(existing, nil)
	cartStore.On("Update", mock.Anything, mock.MatchedBy(func(c model.Cart) bool {
		return len(c.Items) == 0 && c.TotalAmount == 0
	})).Return(model.Cart{}, nil)

	s := newCartForTest(cartStore, &mocks.ProductStore{}, &mocks.VariantStore{})

	cart, err := s.RemoveItem(ctx, userID, productID, variantID)
	require.NoError(t, err)
	assert.Equal(t, float64(0), cart.TotalAmount)
}

// Removing a line that is not in the cart is a no-op, not an error.
func TestCart_RemoveItem_AbsentLine(t *testing.T) {
	ctx := context.Background()
	userID := primitive.NewObjectID()
	cartStore := &mocks.CartStore{}

	existing := model.Cart{
		UserID: userID,
		Items: []model.CartItem{{
			ProductID: primitive.NewObjectID(),
			VariantID: primitive.NewObjectID(),
			Quantity:  1,
			Price:     10,
		}},
		TotalAmount: 10,
	}

	cartStore.On("GetByUser", mock.Anything, userID).Return(existing, nil)
	cartStore.On("Update", mock.Anything, mock.MatchedBy(func(c model.Cart) bool {
		return len(c.Items) == 1 && c.TotalAmount == 10
	})).Return(existing, nil)

	s := newCartForTest(cartStore, &mocks.ProductStore{}, &mocks.VariantStore{})

	_, err := s.RemoveItem(ctx, userID, primitive.NewObjectID(), primitive.NewObjectID())
	require.NoError(t, err)
}

func TestCart_Clear(t *testing.T) {
	ctx := context.Background()
	userID := primitive.NewObjectID()
	cartStore := &mocks.CartStore{}

	cartStore.On("DeleteByUser", mock.Anything, userID).Return(nil)

	s := newCartForTest(cartStore, &mocks.ProductStore{}, &mocks.VariantStore{})

	require.NoError(t, s.Clear(ctx, userID))
}

func TestCart_Clear_NoCart(t *testing.T) {
	ctx := context.Background()
	userID := primitive.NewObjectID()
	cartStore := &mocks.CartStore{}

	cartStore.On("DeleteByUser", mock.Anything, userID).Return(model.ErrNotFound)

	s := newCartForTest(cartStore, &mocks.ProductStore{}, &mocks.VariantStore{})

	err := s.Clear(ctx, userID)
	require.ErrorIs(t, err, model.ErrCartNotFound)
}

func TestCart_Get_ExpandsCatalogReferences(t *testing.T) {
	ctx := context.Background()
	userID := primitive.NewObjectID()
	productID := primitive.NewObjectID()
	variantID := primitive.NewObjectID()
	cartStore := &mocks.CartStore{}
	productStore := &mocks.ProductStore{}
	variantStore := &mocks.VariantStore{}

	cartStore.On("GetByUser", mock.Anything, userID).Return(model.Cart{
		ID:     primitive.NewObjectID(),
		UserID: userID,
		Items: []model.CartItem{{
			ProductID: productID,
			VariantID: variantID,
			Quantity:  2,
			Price:     10,
		}},
		TotalAmount: 20,
	}, nil)
	productStore.On("GetByID", mock.Anything, productID).
		Return(model.Product{ID: productID, Name: "Sneakers"}, nil)
	variantStore.On("GetByID", mock.Anything, variantID).
		Return(model.ProductVariant{ID: variantID, Color: "red"}, nil)

	s := newCartForTest(cartStore, productStore, variantStore)

	expanded, err := s.Get(ctx, userID)
	require.NoError(t, err)
	require.Len(t, expanded.Items, 1)
	require.NotNil(t, expanded.Items[0].Product)
	require.NotNil(t, expanded.Items[0].Variant)
	assert.Equal(t, "Sneakers", expanded.Items[0].Product.Name)
	assert.Equal(t, "red", expanded.Items[0].Variant.Color)
	assert.Equal(t, float64(20), expanded.TotalAmount)
}

// A line whose product or variant was deleted from the catalog still
// comes back, with nil references.
func TestCart_Get_DanglingReference(t *testing.T) {
	ctx := context.Background()
	userID := primitive.NewObjectID()
	productID := primitive.NewObjectID()
	variantID := primitive.NewObjectID()
	cartStore := &mocks.CartStore{}
	productStore := &mocks.ProductStore{}
	variantStore := &mocks.VariantStore{}

	cartStore.On("GetByUser", mock.Anything, userID).Return(model.Cart{
		UserID: userID,
		Items: []model.CartItem{{
			ProductID: productID,
			VariantID: variantID,
			Quantity:  1,
			Price:     10,
		}},
		TotalAmount: 10,
	}, nil)
	productStore.On("GetByID", mock.Anything, productID).Return(model.Product{}, model.ErrNotFound)
	variantStore.On("GetByID", mock.Anything, variantID).Return(model.ProductVariant{}, model.ErrNotFound)

	s := newCartForTest(cartStore, productStore, variantStore)

	expanded, err := s.Get(ctx, userID)
	require.NoError(t, err)
	require.Len(t, expanded.Items, 1)
	assert.Nil(t, expanded.Items[0].Product)
	assert.Nil(t, expanded.Items[0].Variant)
}

func TestCart_Get_NoCart(t *testing.T) {
	ctx := context.Background()
	userID := primitive.NewObjectID()
	cartStore := &mocks.CartStore{}

	cartStore.On("GetByUser", mock.Anything, userID).Return(model.Cart{}, model.ErrNotFound)

	s := newCartForTest(cartStore, &mocks.ProductStore{}, &mocks.VariantStore{})

	_, err := s.Get(ctx, userID)
	require.ErrorIs(t, err, model.ErrCartNotFound)
}
