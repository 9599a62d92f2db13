package model

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category is a top-level catalog grouping. Slug is unique and derived
// from the name at creation time.
type Category struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name      string             `bson:"name" json:"name"`
	Thumbnail string             `bson:"thumbnail,omitempty" json:"thumbnail,omitempty"`
	Slug      string             `bson:"slug" json:"slug"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// SubCategory is a second-level grouping under a category.
type SubCategory struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name       string             `bson:"name" json:"name"`
	Thumbnail  string             `bson:"thumbnail,omitempty" json:"thumbnail,omitempty"`
	Slug       string             `bson:"slug" json:"slug"`
	CategoryID primitive.ObjectID `bson:"category,omitempty" json:"category"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Product statuses.
const (
	ProductStatusActive   = "active"
	ProductStatusInactive = "inactive"
	ProductStatusDraft    = "draft"
)

// Product is a catalog item. Purchasable units are its variants.
type Product struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty" json:"_id"`
	Name          string               `bson:"name" json:"name"`
	Slug          string               `bson:"slug" json:"slug"`
	ShortDesc     string               `bson:"shortDesc,omitempty" json:"shortDesc,omitempty"`
	CategoryID    primitive.ObjectID   `bson:"category,omitempty" json:"category"`
	SubCategoryID primitive.ObjectID   `bson:"subCategory,omitempty" json:"subCategory"`
	Brand         string               `bson:"brand,omitempty" json:"brand,omitempty"`
	IsFeatured    bool                 `bson:"isFeatured" json:"isFeatured"`
	Status        string               `bson:"status,omitempty" json:"status,omitempty"`
	Thumbnail     string               `bson:"thumbnail,omitempty" json:"thumbnail,omitempty"`
	Attributes    map[string]string    `bson:"attributes,omitempty" json:"attributes,omitempty"`
	Variants      []primitive.ObjectID `bson:"variants,omitempty" json:"variants,omitempty"`
	CreatedAt     time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// ProductDetail is the aggregation read model with category and
// subcategory joined in.
type ProductDetail struct {
	ID          primitive.ObjectID   `bson:"_id" json:"_id"`
	Name        string               `bson:"name" json:"name"`
	Slug        string               `bson:"slug" json:"slug"`
	ShortDesc   string               `bson:"shortDesc,omitempty" json:"shortDesc,omitempty"`
	Brand       string               `bson:"brand,omitempty" json:"brand,omitempty"`
	IsFeatured  bool                 `bson:"isFeatured" json:"isFeatured"`
	Status      string               `bson:"status,omitempty" json:"status,omitempty"`
	Thumbnail   string               `bson:"thumbnail,omitempty" json:"thumbnail,omitempty"`
	Attributes  map[string]string    `bson:"attributes,omitempty" json:"attributes,omitempty"`
	Variants    []primitive.ObjectID `bson:"variants,omitempty" json:"variants,omitempty"`
	Category    Category             `bson:"category" json:"category"`
	SubCategory SubCategory          `bson:"subCategory" json:"subCategory"`
	CreatedAt   time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// ProductVariant is a purchasable variation of a product.
type ProductVariant struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	ProductID primitive.ObjectID `bson:"product" json:"product"`
	Color     string             `bson:"color,omitempty" json:"color,omitempty"`
	Size      string             `bson:"size,omitempty" json:"size,omitempty"`
	Weight    float64            `bson:"weight,omitempty" json:"weight,omitempty"`
	Stock     int                `bson:"stock" json:"stock"`
	Price     float64            `bson:"price" json:"price"`
	Thumbnail string             `bson:"thumbnail,omitempty" json:"thumbnail,omitempty"`
	Photos    []string           `bson:"photos,omitempty" json:"photos,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CategoryStore defines persistence operations for categories.
type CategoryStore interface {
	Create(ctx context.Context, category Category) (Category, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (Category, error)
	Update(ctx context.Context, category Category) (Category, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	GetAll(ctx context.Context) ([]Category, error)
	Search(ctx context.Context, query string) ([]Category, error)
	Count(ctx context.Context) (int64, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
}

// SubCategoryStore defines persistence operations for subcategories.
type SubCategoryStore interface {
	Create(ctx context.Context, subCategory SubCategory) (SubCategory, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (SubCategory, error)
	Update(ctx context.Context, subCategory SubCategory) (SubCategory, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteMany(ctx context.Context, ids []primitive.ObjectID) (int64, error)
	GetAll(ctx context.Context) ([]SubCategory, error)
	GetByCategory(ctx context.Context, categoryID primitive.ObjectID) ([]SubCategory, error)
	Search(ctx context.Context, query string) ([]SubCategory, error)
	Count(ctx context.Context) (int64, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
}

// ProductStore defines persistence operations for products, including
// the joined reads used by the catalog endpoints.
type ProductStore interface {
	Create(ctx context.Context, product Product) (Product, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (Product, error)
	Update(ctx context.Context, product Product) (Product, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteMany(ctx context.Context, ids []primitive.ObjectID) (int64, error)
	PushVariant(ctx context.Context, productID, variantID primitive.ObjectID) error

	GetAllDetailed(ctx context.Context) ([]ProductDetail, error)
	GetDetailByID(ctx context.Context, id primitive.ObjectID) (ProductDetail, error)
	GetByCategory(ctx context.Context, categoryID primitive.ObjectID) ([]ProductDetail, error)
	GetBySubCategory(ctx context.Context, subCategoryID primitive.ObjectID) ([]ProductDetail, error)
	GetPaginated(ctx context.Context, page, limit int64) ([]ProductDetail, error)
	Search(ctx context.Context, query string) ([]ProductDetail, error)
	GetFeatured(ctx context.Context) ([]ProductDetail, error)
}

// VariantStore defines persistence operations for product variants.
type VariantStore interface {
	Create(ctx context.Context, variant ProductVariant) (ProductVariant, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (ProductVariant, error)
	GetByProduct(ctx context.Context, productID primitive.ObjectID) ([]ProductVariant, error)
	Update(ctx context.Context, variant ProductVariant) (ProductVariant, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}
