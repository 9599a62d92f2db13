package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mpetrov/storefront-server/internal/model"
)

var _ model.VariantStore = (*VariantRepository)(nil)

type VariantRepository struct {
	coll *mongo.Collection
}

func NewVariantRepository(conn *Connection) *VariantRepository {
	return &VariantRepository{
		coll: conn.Collection(collVariants),
	}
}

func (r *VariantRepository) Create(ctx context.Context, variant model.ProductVariant) (model.ProductVariant, error) {
	if variant.ID.IsZero() {
		variant.ID = primitive.NewObjectID()
	}

	if _, err := r.coll.InsertOne(ctx, variant); err != nil {
		return model.ProductVariant{}, fmt.Errorf("failed to create variant: %w", err)
	}

	return variant, nil
}

func (r *VariantRepository) GetByID(ctx context.Context, id primitive.ObjectID) (model.ProductVariant, error) {
	var variant model.ProductVariant
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&variant)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.ProductVariant{}, model.ErrNotFound
		}
		return model.ProductVariant{}, fmt.Errorf("failed to get variant by id: %w", err)
	}

	return variant, nil
}

func (r *VariantRepository) GetByProduct(ctx context.Context, productID primitive.ObjectID) ([]model.ProductVariant, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"product": productID})
	if err != nil {
		return nil, fmt.Errorf("failed to list variants by product: %w", err)
	}

	var variants []model.ProductVariant
	if err := cursor.All(ctx, &variants); err != nil {
		return nil, fmt.Errorf("failed to decode variants: %w", err)
	}

	return variants, nil
}

func (r *VariantRepository) Update(ctx context.Context, variant model.ProductVariant) (model.ProductVariant, error) {
	update := bson.M{"$set": bson.M{
		"color":     variant.Color,
		"size":      variant.Size,
		"weight":    variant.Weight,
		"stock":     variant.Stock,
		"price":     variant.Price,
		"thumbnail": variant.Thumbnail,
		"photos":    variant.Photos,
		"updatedAt": time.Now(),
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated model.ProductVariant
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": variant.ID}, update, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.ProductVariant{}, model.ErrNotFound
		}
		return model.ProductVariant{}, fmt.Errorf("failed to update variant: %w", err)
	}

	return updated, nil
}

func (r *VariantRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete variant: %w", err)
	}
	if res.DeletedCount == 0 {
		return model.ErrNotFound
	}

	return nil
}
