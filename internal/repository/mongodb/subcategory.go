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

var _ model.SubCategoryStore = (*SubCategoryRepository)(nil)

type SubCategoryRepository struct {
	coll *mongo.Collection
}

func NewSubCategoryRepository(conn *Connection) *SubCategoryRepository {
	return &SubCategoryRepository{
		coll: conn.Collection(collSubCategories),
	}
}

func (r *SubCategoryRepository) Create(ctx context.Context, subCategory model.SubCategory) (model.SubCategory, error) {
	if subCategory.ID.IsZero() {
		subCategory.ID = primitive.NewObjectID()
	}

	if _, err := r.coll.InsertOne(ctx, subCategory); err != nil {
		return model.SubCategory{}, fmt.Errorf("failed to create subcategory: %w", err)
	}

	return subCategory, nil
}

func (r *SubCategoryRepository) GetByID(ctx context.Context, id primitive.ObjectID) (model.SubCategory, error) {
	var subCategory model.SubCategory
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&subCategory)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.SubCategory{}, model.ErrNotFound
		}
		return model.SubCategory{}, fmt.Errorf("failed to get subcategory by id: %w", err)
	}

	return subCategory, nil
}

func (r *SubCategoryRepository) Update(ctx context.Context, subCategory model.SubCategory) (model.SubCategory, error) {
	update := bson.M{"$set": bson.M{
		"name":      subCategory.Name,
		"thumbnail": subCategory.Thumbnail,
		"category":  subCategory.CategoryID,
		"updatedAt": time.Now(),
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated model.SubCategory
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": subCategory.ID}, update, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.SubCategory{}, model.ErrNotFound
		}
		return model.SubCategory{}, fmt.Errorf("failed to update subcategory: %w", err)
	}

	return updated, nil
}

func (r *SubCategoryRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete subcategory: %w", err)
	}
	if res.DeletedCount == 0 {
		return model.ErrNotFound
	}

	return nil
}

func (r *SubCategoryRepository) DeleteMany(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return 0, fmt.Errorf("failed to delete subcategories: %w", err)
	}

	return res.DeletedCount, nil
}

func (r *SubCategoryRepository) GetAll(ctx context.Context) ([]model.SubCategory, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list subcategories: %w", err)
	}

	var subCategories []model.SubCategory
	if err := cursor.All(ctx, &subCategories); err != nil {
		return nil, fmt.Errorf("failed to decode subcategories: %w", err)
	}

	return subCategories, nil
}

func (r *SubCategoryRepository) GetByCategory(ctx context.Context, categoryID primitive.ObjectID) ([]model.SubCategory, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"category": categoryID})
	if err != nil {
		return nil, fmt.Errorf("failed to list subcategories by category: %w", err)
	}

	var subCategories []model.SubCategory
	if err := cursor.All(ctx, &subCategories); err != nil {
		return nil, fmt.Errorf("failed to decode subcategories: %w", err)
	}

	return subCategories, nil
}

func (r *SubCategoryRepository) Search(ctx context.Context, query string) ([]model.SubCategory, error) {
	filter := bson.M{"name": bson.M{"$regex": query, "$options": "i"}}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to search subcategories: %w", err)
	}

	var subCategories []model.SubCategory
	if err := cursor.All(ctx, &subCategories); err != nil {
		return nil, fmt.Errorf("failed to decode subcategories: %w", err)
	}

	return subCategories, nil
}

func (r *SubCategoryRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count subcategories: %w", err)
	}

	return count, nil
}

func (r *SubCategoryRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"slug": slug})
	if err != nil {
		return false, fmt.Errorf("failed to check subcategory slug: %w", err)
	}

	return count > 0, nil
}
