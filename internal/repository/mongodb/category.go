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

var _ model.CategoryStore = (*CategoryRepository)(nil)

type CategoryRepository struct {
	coll *mongo.Collection
}

func NewCategoryRepository(conn *Connection) *CategoryRepository {
	return &CategoryRepository{
		coll: conn.Collection(collCategories),
	}
}

func (r *CategoryRepository) Create(ctx context.Context, category model.Category) (model.Category, error) {
	if category.ID.IsZero() {
		category.ID = primitive.NewObjectID()
	}

	if _, err := r.coll.InsertOne(ctx, category); err != nil {
		return model.Category{}, fmt.Errorf("failed to create category: %w", err)
	}

	return category, nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id primitive.ObjectID) (model.Category, error) {
	var category model.Category
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&category)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.Category{}, model.ErrNotFound
		}
		return model.Category{}, fmt.Errorf("failed to get category by id: %w", err)
	}

	return category, nil
}

func (r *CategoryRepository) Update(ctx context.Context, category model.Category) (model.Category, error) {
	update := bson.M{"$set": bson.M{
		"name":      category.Name,
		"thumbnail": category.Thumbnail,
		"updatedAt": time.Now(),
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated model.Category
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": category.ID}, update, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.Category{}, model.ErrNotFound
		}
		return model.Category{}, fmt.Errorf("failed to update category: %w", err)
	}

	return updated, nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if res.DeletedCount == 0 {
		return model.ErrNotFound
	}

	return nil
}

func (r *CategoryRepository) GetAll(ctx context.Context) ([]model.Category, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	var categories []model.Category
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("failed to decode categories: %w", err)
	}

	return categories, nil
}

func (r *CategoryRepository) Search(ctx context.Context, query string) ([]model.Category, error) {
	filter := bson.M{"name": bson.M{"$regex": query, "$options": "i"}}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to search categories: %w", err)
	}

	var categories []model.Category
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("failed to decode categories: %w", err)
	}

	return categories, nil
}

func (r *CategoryRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count categories: %w", err)
	}

	return count, nil
}

func (r *CategoryRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"slug": slug})
	if err != nil {
		return false, fmt.Errorf("failed to check category slug: %w", err)
	}

	return count > 0, nil
}
