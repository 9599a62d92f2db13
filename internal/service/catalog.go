package service

import (
	"context"
	"fmt"

	"github.com/gosimple/slug"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mpetrov/storefront-server/internal/logger"
	"github.com/mpetrov/storefront-server/internal/model"
)

// Catalog covers categories, subcategories, products and variants.
type Catalog struct {
	categories    model.CategoryStore
	subCategories model.SubCategoryStore
	products      model.ProductStore
	variants      model.VariantStore
	logger        *logger.Logger
}

func NewCatalog(
	categories model.CategoryStore,
	subCategories model.SubCategoryStore,
	products model.ProductStore,
	variants model.VariantStore,
	logger *logger.Logger,
) *Catalog {
	return &Catalog{
		categories:    categories,
		subCategories: subCategories,
		products:      products,
		variants:      variants,
		logger:        logger,
	}
}

// uniqueSlug derives a slug from name and suffixes it with a counter
// until it is free: name, name-1, name-2, ...
func uniqueSlug(ctx context.Context, name string, exists func(context.Context, string) (bool, error)) (string, error) {
	base := slug.Make(name)
	candidate := base
	for i := 1; ; i++ {
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}

// CreateCategory creates a category with a generated unique slug.
func (c *Catalog) CreateCategory(ctx context.Context, name, thumbnail string) (model.Category, error) {
	if name == "" {
		return model.Category{}, model.NewValidationError("name is required")
	}

	s, err := uniqueSlug(ctx, name, c.categories.SlugExists)
	if err != nil {
		return model.Category{}, fmt.Errorf("failed to generate category slug: %w", err)
	}

	category, err := c.categories.Create(ctx, model.Category{
		Name:      name,
		Thumbnail: thumbnail,
		Slug:      s,
	})
	if err != nil {
		return model.Category{}, fmt.Errorf("failed to create category: %w", err)
	}

	c.logger.Info("Catalog service: category created",
		"category_id", category.ID.Hex(),
		"slug", category.Slug)

	return category, nil
}

// UpdateCategory applies name and thumbnail changes; the slug is frozen
// at creation.
func (c *Catalog) UpdateCategory(ctx context.Context, id primitive.ObjectID, name, thumbnail string) (model.Category, error) {
	if name == "" && thumbnail == "" {
		return model.Category{}, model.NewValidationError("name or thumbnail not provided")
	}

	category, err := c.categories.GetByID(ctx, id)
	if err != nil {
		return model.Category{}, fmt.Errorf("failed to get category: %w", err)
	}

	if name != "" {
		category.Name = name
	}
	if thumbnail != "" {
		category.Thumbnail = thumbnail
	}

	updated, err := c.categories.Update(ctx, category)
	if err != nil {
		return model.Category{}, fmt.Errorf("failed to update category: %w", err)
	}

	return updated, nil
}

func (c *Catalog) DeleteCategory(ctx context.Context, id primitive.ObjectID) error {
	return c.categories.Delete(ctx, id)
}

func (c *Catalog) GetCategory(ctx context.Context, id primitive.ObjectID) (model.Category, error) {
	return c.categories.GetByID(ctx, id)
}

func (c *Catalog) ListCategories(ctx context.Context) ([]model.Category, error) {
	return c.categories.GetAll(ctx)
}

func (c *Catalog) SearchCategories(ctx context.Context, query string) ([]model.Category, error) {
	if query == "" {
		return nil, model.NewValidationError("please provide a valid search query")
	}
	return c.categories.Search(ctx, query)
}

func (c *Catalog) CountCategories(ctx context.Context) (int64, error) {
	return c.categories.Count(ctx)
}

// CreateSubCategory creates a subcategory under a category, with its own
// unique slug.
func (c *Catalog) CreateSubCategory(ctx context.Context, name, thumbnail string, categoryID primitive.ObjectID) (model.SubCategory, error) {
	if name == "" {
		return model.SubCategory{}, model.NewValidationError("name is required")
	}
	if categoryID.IsZero() {
		return model.SubCategory{}, model.NewValidationError("category id is required")
	}

	s, err := uniqueSlug(ctx, name, c.subCategories.SlugExists)
	if err != nil {
		return model.SubCategory{}, fmt.Errorf("failed to generate subcategory slug: %w", err)
	}

	subCategory, err := c.subCategories.Create(ctx, model.SubCategory{
		Name:       name,
		Thumbnail:  thumbnail,
		Slug:       s,
		CategoryID: categoryID,
	})
	if err != nil {
		return model.SubCategory{}, fmt.Errorf("failed to create subcategory: %w", err)
	}

	c.logger.Info("Catalog service: subcategory created",
		"subcategory_id", subCategory.ID.Hex(),
		"slug", subCategory.Slug)

	return subCategory, nil
}

func (c *Catalog) UpdateSubCategory(ctx context.Context, id primitive.ObjectID, name, thumbnail string, categoryID primitive.ObjectID) (model.SubCategory, error) {
	if name == "" && thumbnail == "" {
		return model.SubCategory{}, model.NewValidationError("name or thumbnail not provided")
	}

	subCategory, err := c.subCategories.GetByID(ctx, id)
	if err != nil {
		return model.SubCategory{}, fmt.Errorf("failed to get subcategory: %w", err)
	}

	if name != "" {
		subCategory.Name = name
	}
	if thumbnail != "" {
		subCategory.Thumbnail = thumbnail
	}
	if !categoryID.IsZero() {
		subCategory.CategoryID = categoryID
	}

	updated, err := c.subCategories.Update(ctx, subCategory)
	if err != nil {
		return model.SubCategory{}, fmt.Errorf("failed to update subcategory: %w", err)
	}

	return updated, nil
}

func (c *Catalog) DeleteSubCategory(ctx context.Context, id primitive.ObjectID) error {
	return c.subCategories.Delete(ctx, id)
}

// DeleteSubCategories removes the given subcategories and returns how
// many were actually deleted.
func (c *Catalog) DeleteSubCategories(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	if len(ids) == 0 {
		return 0, model.NewValidationError("ids are required")
	}
	return c.subCategories.DeleteMany(ctx, ids)
}

// SubCategoryUpdate is one entry of a batch subcategory update.
type SubCategoryUpdate struct {
	ID         primitive.ObjectID
	Name       string
	Thumbnail  string
	CategoryID primitive.ObjectID
}

// UpdateSubCategories applies a batch of updates one by one; a missing
// subcategory aborts the batch.
func (c *Catalog) UpdateSubCategories(ctx context.Context, updates []SubCategoryUpdate) ([]model.SubCategory, error) {
	if len(updates) == 0 {
		return nil, model.NewValidationError("subCategories are required")
	}

	updated := make([]model.SubCategory, 0, len(updates))
	for _, u := range updates {
		subCategory, err := c.UpdateSubCategory(ctx, u.ID, u.Name, u.Thumbnail, u.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("subcategory %s: %w", u.ID.Hex(), err)
		}
		updated = append(updated, subCategory)
	}

	return updated, nil
}

func (c *Catalog) GetSubCategory(ctx context.Context, id primitive.ObjectID) (model.SubCategory, error) {
	return c.subCategories.GetByID(ctx, id)
}

func (c *Catalog) ListSubCategories(ctx context.Context) ([]model.SubCategory, error) {
	return c.subCategories.GetAll(ctx)
}

func (c *Catalog) SubCategoriesByCategory(ctx context.Context, categoryID primitive.ObjectID) ([]model.SubCategory, error) {
	return c.subCategories.GetByCategory(ctx, categoryID)
}

func (c *Catalog) SearchSubCategories(ctx context.Context, query string) ([]model.SubCategory, error) {
	if query == "" {
		return nil, model.NewValidationError("please provide a valid search query")
	}
	return c.subCategories.Search(ctx, query)
}

func (c *Catalog) CountSubCategories(ctx context.Context) (int64, error) {
	return c.subCategories.Count(ctx)
}

// ProductInput carries the fields accepted at product creation.
type ProductInput struct {
	Name          string
	Slug          string
	ShortDesc     string
	CategoryID    primitive.ObjectID
	SubCategoryID primitive.ObjectID
	Brand         string
	IsFeatured    bool
	Status        string
	Thumbnail     string
	Attributes    map[string]string
}

// CreateProduct stores a new product. The slug is taken from the client
// as submitted.
func (c *Catalog) CreateProduct(ctx context.Context, in ProductInput) (model.Product, error) {
	if in.Name == "" {
		return model.Product{}, model.NewValidationError("name is required")
	}

	product, err := c.products.Create(ctx, model.Product{
		Name:          in.Name,
		Slug:          in.Slug,
		ShortDesc:     in.ShortDesc,
		CategoryID:    in.CategoryID,
		SubCategoryID: in.SubCategoryID,
		Brand:         in.Brand,
		IsFeatured:    in.IsFeatured,
		Status:        in.Status,
		Thumbnail:     in.Thumbnail,
		Attributes:    in.Attributes,
	})
	if err != nil {
		return model.Product{}, fmt.Errorf("failed to create product: %w", err)
	}

	c.logger.Info("Catalog service: product created",
		"product_id", product.ID.Hex())

	return product, nil
}

// ProductUpdate carries optional product fields; zero values are left
// unchanged.
type ProductUpdate struct {
	Name          string
	ShortDesc     string
	CategoryID    primitive.ObjectID
	SubCategoryID primitive.ObjectID
	Brand         string
	IsFeatured    *bool
	Status        string
	Thumbnail     string
}

func (c *Catalog) UpdateProduct(ctx context.Context, id primitive.ObjectID, in ProductUpdate) (model.Product, error) {
	product, err := c.products.GetByID(ctx, id)
	if err != nil {
		return model.Product{}, fmt.Errorf("failed to get product: %w", err)
	}

	if in.Name != "" {
		product.Name = in.Name
	}
	if in.ShortDesc != "" {
		product.ShortDesc = in.ShortDesc
	}
	if !in.CategoryID.IsZero() {
		product.CategoryID = in.CategoryID
	}
	if !in.SubCategoryID.IsZero() {
		product.SubCategoryID = in.SubCategoryID
	}
	if in.Brand != "" {
		product.Brand = in.Brand
	}
	if in.IsFeatured != nil {
		product.IsFeatured = *in.IsFeatured
	}
	if in.Status != "" {
		product.Status = in.Status
	}
	if in.Thumbnail != "" {
		product.Thumbnail = in.Thumbnail
	}

	updated, err := c.products.Update(ctx, product)
	if err != nil {
		return model.Product{}, fmt.Errorf("failed to update product: %w", err)
	}

	return updated, nil
}

func (c *Catalog) DeleteProduct(ctx context.Context, id primitive.ObjectID) error {
	return c.products.Delete(ctx, id)
}

// DeleteProducts removes the given products and returns how many were
// actually deleted.
func (c *Catalog) DeleteProducts(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	if len(ids) == 0 {
		return 0, model.NewValidationError("ids are required")
	}
	return c.products.DeleteMany(ctx, ids)
}

func (c *Catalog) ListProducts(ctx context.Context) ([]model.ProductDetail, error) {
	return c.products.GetAllDetailed(ctx)
}

func (c *Catalog) GetProduct(ctx context.Context, id primitive.ObjectID) (model.ProductDetail, error) {
	return c.products.GetDetailByID(ctx, id)
}

func (c *Catalog) ProductsByCategory(ctx context.Context, categoryID primitive.ObjectID) ([]model.ProductDetail, error) {
	return c.products.GetByCategory(ctx, categoryID)
}

func (c *Catalog) ProductsBySubCategory(ctx context.Context, subCategoryID primitive.ObjectID) ([]model.ProductDetail, error) {
	return c.products.GetBySubCategory(ctx, subCategoryID)
}

func (c *Catalog) ListProductsPaginated(ctx context.Context, page, limit int64) ([]model.ProductDetail, error) {
	return c.products.GetPaginated(ctx, page, limit)
}

func (c *Catalog) SearchProducts(ctx context.Context, query string) ([]model.ProductDetail, error) {
	return c.products.Search(ctx, query)
}

func (c *Catalog) FeaturedProducts(ctx context.Context) ([]model.ProductDetail, error) {
	return c.products.GetFeatured(ctx)
}

// VariantInput carries the fields accepted at variant creation.
type VariantInput struct {
	ProductID primitive.ObjectID
	Color     string
	Size      string
	Weight    float64
	Stock     int
	Price     float64
	Thumbnail string
	Photos    []string
}

// CreateVariant stores a new variant and registers it on the parent
// product's variants array.
func (c *Catalog) CreateVariant(ctx context.Context, in VariantInput) (model.ProductVariant, error) {
	if in.ProductID.IsZero() {
		return model.ProductVariant{}, model.NewValidationError("product id is required")
	}

	variant, err := c.variants.Create(ctx, model.ProductVariant{
		ProductID: in.ProductID,
		Color:     in.Color,
		Size:      in.Size,
		Weight:    in.Weight,
		Stock:     in.Stock,
		Price:     in.Price,
		Thumbnail: in.Thumbnail,
		Photos:    in.Photos,
	})
	if err != nil {
		return model.ProductVariant{}, fmt.Errorf("failed to create variant: %w", err)
	}

	if err := c.products.PushVariant(ctx, in.ProductID, variant.ID); err != nil {
		c.logger.Error("Catalog service: failed to register variant on product",
			"product_id", in.ProductID.Hex(),
			"variant_id", variant.ID.Hex(),
			"error", err.Error())
	}

	return variant, nil
}

// VariantUpdate carries optional variant fields; zero values are left
// unchanged.
type VariantUpdate struct {
	Color     string
	Size      string
	Weight    float64
	Stock     int
	Price     float64
	Thumbnail string
	Photos    []string
}

func (c *Catalog) UpdateVariant(ctx context.Context, id primitive.ObjectID, in VariantUpdate) (model.ProductVariant, error) {
	variant, err := c.variants.GetByID(ctx, id)
	if err != nil {
		return model.ProductVariant{}, fmt.Errorf("failed to get variant: %w", err)
	}

	if in.Color != "" {
		variant.Color = in.Color
	}
	if in.Size != "" {
		variant.Size = in.Size
	}
	if in.Weight != 0 {
		variant.Weight = in.Weight
	}
	if in.Stock != 0 {
		variant.Stock = in.Stock
	}
	if in.Price != 0 {
		variant.Price = in.Price
	}
	if in.Thumbnail != "" {
		variant.Thumbnail = in.Thumbnail
	}
	if len(in.Photos) > 0 {
		variant.Photos = in.Photos
	}

	updated, err := c.variants.Update(ctx, variant)
	if err != nil {
		return model.ProductVariant{}, fmt.Errorf("failed to update variant: %w", err)
	}

	return updated, nil
}

func (c *Catalog) DeleteVariant(ctx context.Context, id primitive.ObjectID) error {
	return c.variants.Delete(ctx, id)
}

func (c *Catalog) GetVariant(ctx context.Context, id primitive.ObjectID) (model.ProductVariant, error) {
	return c.variants.GetByID(ctx, id)
}

func (c *Catalog) VariantsByProduct(ctx context.Context, productID primitive.ObjectID) ([]model.ProductVariant, error) {
	return c.variants.GetByProduct(ctx, productID)
}
