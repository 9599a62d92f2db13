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

var _ model.ProductStore = (*ProductRepository)(nil)

type ProductRepository struct {
	coll *mongo.Collection
}

func NewProductRepository(conn *Connection) *ProductRepository {
	return &ProductRepository{
		coll: conn.Collection(collProducts),
	}
}

func (r *ProductRepository) Create(ctx context.Context, product model.Product) (model.Product, error) {
	if product.ID.IsZero() {
		product.ID = primitive.NewObjectID()
	}

	if _, err := r.coll.InsertOne(ctx, product); err != nil {
		return model.Product{}, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id primitive.ObjectID) (model.Product, error) {
	var product model.Product
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.Product{}, model.ErrNotFound
		}
		return model.Product{}, fmt.Errorf("failed to get product by id: %w", err)
	}

	return product, nil
}

func (r *ProductRepository) Update(ctx context.Context, product model.Product) (model.Product, error) {
	update := bson.M{"$set": bson.M{
		"name":        product.Name,
		"shortDesc":   product.ShortDesc,
		"category":    product.CategoryID,
		"subCategory": product.SubCategoryID,
		"brand":       product.Brand,
		"isFeatured":  product.IsFeatured,
		"status":      product.Status,
		"thumbnail":   product.Thumbnail,
		"updatedAt":   time.Now(),
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": product.ID}, update)
	if err != nil {
		return model.Product{}, fmt.Errorf("failed to update product: %w", err)
	}
	if res.MatchedCount == 0 {
		return model.Product{}, model.ErrNotFound
	}

	return r.GetByID(ctx, product.ID)
}

func (r *ProductRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if res.DeletedCount == 0 {
		return model.ErrNotFound
	}

	return nil
}

func (r *ProductRepository) DeleteMany(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return 0, fmt.Errorf("failed to delete products: %w", err)
	}

	return res.DeletedCount, nil
}

func (r *ProductRepository) PushVariant(ctx context.Context, productID, variantID primitive.ObjectID) error {
	update := bson.M{
		"$push": bson.M{"variants": variantID},
		"$set":  bson.M{"updatedAt": time.Now()},
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": productID}, update)
	if err != nil {
		return fmt.Errorf("failed to push variant onto product: %w", err)
	}
	if res.MatchedCount == 0 {
		return model.ErrNotFound
	}

	return nil
}

// lookupStages joins category and subCategory documents onto each
// product, unwrapping both from the $lookup arrays.
func lookupStages() mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: collCategories},
			{Key: "localField", Value: "category"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "category"},
		}}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: collSubCategories},
			{Key: "localField", Value: "subCategory"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "subCategory"},
		}}},
		bson.D{{Key: "$addFields", Value: bson.D{
			{Key: "category", Value: bson.D{{Key: "$arrayElemAt", Value: bson.A{"$category", 0}}}},
			{Key: "subCategory", Value: bson.D{{Key: "$arrayElemAt", Value: bson.A{"$subCategory", 0}}}},
		}}},
	}
}

func sortByUpdatedDesc() bson.D {
	return bson.D{{Key: "$sort", Value: bson.D{{Key: "updatedAt", Value: -1}}}}
}

func (r *ProductRepository) aggregateDetails(ctx context.Context, pipeline mongo.Pipeline) ([]model.ProductDetail, error) {
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate products: %w", err)
	}

	var products []model.ProductDetail
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}

	return products, nil
}

func (r *ProductRepository) GetAllDetailed(ctx context.Context) ([]model.ProductDetail, error) {
	return r.aggregateDetails(ctx, lookupStages())
}

func (r *ProductRepository) GetDetailByID(ctx context.Context, id primitive.ObjectID) (model.ProductDetail, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "_id", Value: id}}}},
	}
	pipeline = append(pipeline, lookupStages()...)

	products, err := r.aggregateDetails(ctx, pipeline)
	if err != nil {
		return model.ProductDetail{}, err
	}
	if len(products) == 0 {
		return model.ProductDetail{}, model.ErrNotFound
	}

	return products[0], nil
}

func (r *ProductRepository) GetByCategory(ctx context.Context, categoryID primitive.ObjectID) ([]model.ProductDetail, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "category", Value: categoryID}}}},
	}
	pipeline = append(pipeline, lookupStages()...)
	pipeline = append(pipeline, sortByUpdatedDesc())

	return r.aggregateDetails(ctx, pipeline)
}

func (r *ProductRepository) GetBySubCategory(ctx context.Context, subCategoryID primitive.ObjectID) ([]model.ProductDetail, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "subCategory", Value: subCategoryID}}}},
	}
	pipeline = append(pipeline, lookupStages()...)
	pipeline = append(pipeline, sortByUpdatedDesc())

	return r.aggregateDetails(ctx, pipeline)
}

func (r *ProductRepository) GetPaginated(ctx context.Context, page, limit int64) ([]model.ProductDetail, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$skip", Value: (page - 1) * limit}},
		bson.D{{Key: "$limit", Value: limit}},
	}
	pipeline = append(pipeline, lookupStages()...)

	return r.aggregateDetails(ctx, pipeline)
}

func (r *ProductRepository) Search(ctx context.Context, query string) ([]model.ProductDetail, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "$or", Value: bson.A{
			bson.D{{Key: "name", Value: bson.D{{Key: "$regex", Value: query}, {Key: "$options", Value: "i"}}}},
			bson.D{{Key: "shortDesc", Value: bson.D{{Key: "$regex", Value: query}, {Key: "$options", Value: "i"}}}},
		}}}}},
	}
	pipeline = append(pipeline, lookupStages()...)

	return r.aggregateDetails(ctx, pipeline)
}

func (r *ProductRepository) GetFeatured(ctx context.Context) ([]model.ProductDetail, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "isFeatured", Value: true}}}},
	}
	pipeline = append(pipeline, lookupStages()...)

	return r.aggregateDetails(ctx, pipeline)
}
