package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mpetrov/storefront-server/internal/model"
)

var _ model.CartStore = (*CartRepository)(nil)

type CartRepository struct {
	coll *mongo.Collection
}

func NewCartRepository(conn *Connection) *CartRepository {
	return &CartRepository{
		coll: conn.Collection(collCarts),
	}
}

func (r *CartRepository) GetByUser(ctx context.Context, userID primitive.ObjectID) (model.Cart, error) {
	var cart model.Cart
	err := r.coll.FindOne(ctx, bson.M{"user": userID}).Decode(&cart)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.Cart{}, model.ErrNotFound
		}
		return model.Cart{}, fmt.Errorf("failed to get cart by user: %w", err)
	}

	return cart, nil
}

func (r *CartRepository) Create(ctx context.Context, cart model.Cart) (model.Cart, error) {
	if cart.ID.IsZero() {
		cart.ID = primitive.NewObjectID()
	}

	if _, err := r.coll.InsertOne(ctx, cart); err != nil {
		return model.Cart{}, fmt.Errorf("failed to create cart: %w", err)
	}

	return cart, nil
}

// Update replaces the whole cart document in one write, keeping the
// mutation atomic at the store level.
func (r *CartRepository) Update(ctx context.Context, cart model.Cart) (model.Cart, error) {
	cart.UpdatedAt = time.Now()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"user": cart.UserID}, cart)
	if err != nil {
		return model.Cart{}, fmt.Errorf("failed to update cart: %w", err)
	}
	if res.MatchedCount == 0 {
		return model.Cart{}, model.ErrNotFound
	}

	return cart, nil
}

func (r *CartRepository) DeleteByUser(ctx context.Context, userID primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"user": userID})
	if err != nil {
		return fmt.Errorf("failed to delete cart: %w", err)
	}
	if res.DeletedCount == 0 {
		return model.ErrNotFound
	}

	return nil
}
