//go:build integration

package mongodb_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mpetrov/storefront-server/internal/model"
	repo "github.com/mpetrov/storefront-server/internal/repository/mongodb"
)

var uri string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "mongo:7",
			ExposedPorts: []string{"27017/tcp"},
			WaitingFor:   wait.ForListeningPort("27017/tcp").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "27017")
	if err != nil {
		panic(err)
	}
	uri = fmt.Sprintf("mongodb://%s:%s", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func TestRepositories_CRUD(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, uri, "storefront_test")
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close(context.Background()) })

	t.Run("user_repository", func(t *testing.T) {
		ur := repo.NewUserRepository(conn)
		u := model.User{
			Name:         "Maya",
			Email:        "user@example.com",
			PasswordHash: "$hash",
			City:         "Sofia",
			Country:      "BG",
			Phone:        "+359000000000",
			Role:         model.RoleUser,
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
		}
		saved, err := ur.Create(ctx, u)
		require.NoError(t, err)
		require.False(t, saved.ID.IsZero())

		_, err = ur.Create(ctx, u)
		require.ErrorIs(t, err, model.ErrEmailTaken)

		byEmail, err := ur.GetByEmail(ctx, u.Email)
		require.NoError(t, err)
		require.Equal(t, saved.ID, byEmail.ID)
		require.Equal(t, "$hash", byEmail.PasswordHash)

		byID, err := ur.GetByID(ctx, saved.ID)
		require.NoError(t, err)
		require.Equal(t, u.Email, byID.Email)

		require.NoError(t, ur.SetRefreshToken(ctx, saved.ID, "refresh-1"))
		withToken, err := ur.GetByID(ctx, saved.ID)
		require.NoError(t, err)
		require.Equal(t, "refresh-1", withToken.RefreshToken)

		require.NoError(t, ur.ClearRefreshToken(ctx, saved.ID))
		cleared, err := ur.GetByID(ctx, saved.ID)
		require.NoError(t, err)
		require.Empty(t, cleared.RefreshToken)

		require.NoError(t, ur.UpdatePassword(ctx, saved.ID, "$new"))
		rehashed, err := ur.GetByID(ctx, saved.ID)
		require.NoError(t, err)
		require.Equal(t, "$new", rehashed.PasswordHash)

		byID.Name = "Mia"
		updated, err := ur.Update(ctx, byID)
		require.NoError(t, err)
		require.Equal(t, "Mia", updated.Name)
		require.Equal(t, "$new", updated.PasswordHash)

		_, err = ur.GetByEmail(ctx, "ghost@example.com")
		require.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("cart_repository", func(t *testing.T) {
		cr := repo.NewCartRepository(conn)
		userID := primitive.NewObjectID()

		_, err := cr.GetByUser(ctx, userID)
		require.ErrorIs(t, err, model.ErrNotFound)

		cart := model.Cart{
			UserID: userID,
			Items: []model.CartItem{{
				ProductID: primitive.NewObjectID(),
				VariantID: primitive.NewObjectID(),
				Quantity:  2,
				Price:     10,
			}},
			TotalAmount: 20,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		}
		saved, err := cr.Create(ctx, cart)
		require.NoError(t, err)
		require.False(t, saved.ID.IsZero())

		got, err := cr.GetByUser(ctx, userID)
		require.NoError(t, err)
		require.Len(t, got.Items, 1)
		require.Equal(t, float64(20), got.TotalAmount)

		got.Items[0].Quantity = 5
		got.TotalAmount = 50
		updated, err := cr.Update(ctx, got)
		require.NoError(t, err)
		require.Equal(t, float64(50), updated.TotalAmount)

		require.NoError(t, cr.DeleteByUser(ctx, userID))
		_, err = cr.GetByUser(ctx, userID)
		require.ErrorIs(t, err, model.ErrNotFound)

		err = cr.DeleteByUser(ctx, userID)
		require.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("category_repository", func(t *testing.T) {
		cr := repo.NewCategoryRepository(conn)

		created, err := cr.Create(ctx, model.Category{Name: "Sportswear", Slug: "sportswear"})
		require.NoError(t, err)
		require.False(t, created.ID.IsZero())

		exists, err := cr.SlugExists(ctx, "sportswear")
		require.NoError(t, err)
		require.True(t, exists)

		exists, err = cr.SlugExists(ctx, "gadgets")
		require.NoError(t, err)
		require.False(t, exists)

		found, err := cr.Search(ctx, "sports")
		require.NoError(t, err)
		require.Len(t, found, 1)

		count, err := cr.Count(ctx)
		require.NoError(t, err)
		require.Equal(t, int64(1), count)

		created.Name = "Activewear"
		updated, err := cr.Update(ctx, created)
		require.NoError(t, err)
		require.Equal(t, "Activewear", updated.Name)

		require.NoError(t, cr.Delete(ctx, created.ID))
		_, err = cr.GetByID(ctx, created.ID)
		require.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("subcategory_repository", func(t *testing.T) {
		scr := repo.NewSubCategoryRepository(conn)
		categoryID := primitive.NewObjectID()

		first, err := scr.Create(ctx, model.SubCategory{Name: "Sneakers", Slug: "sneakers", CategoryID: categoryID})
		require.NoError(t, err)
		second, err := scr.Create(ctx, model.SubCategory{Name: "Boots", Slug: "boots", CategoryID: categoryID})
		require.NoError(t, err)

		byCategory, err := scr.GetByCategory(ctx, categoryID)
		require.NoError(t, err)
		require.Len(t, byCategory, 2)

		deleted, err := scr.DeleteMany(ctx, []primitive.ObjectID{first.ID, second.ID, primitive.NewObjectID()})
		require.NoError(t, err)
		require.Equal(t, int64(2), deleted)
	})

	t.Run("product_repository", func(t *testing.T) {
		cr := repo.NewCategoryRepository(conn)
		scr := repo.NewSubCategoryRepository(conn)
		pr := repo.NewProductRepository(conn)

		category, err := cr.Create(ctx, model.Category{Name: "Shoes", Slug: "shoes"})
		require.NoError(t, err)
		subCategory, err := scr.Create(ctx, model.SubCategory{Name: "Running", Slug: "running", CategoryID: category.ID})
		require.NoError(t, err)

		product, err := pr.Create(ctx, model.Product{
			Name:          "Air Max",
			Slug:          "air-max",
			ShortDesc:     "running shoe",
			CategoryID:    category.ID,
			SubCategoryID: subCategory.ID,
			Brand:         "Nike",
			IsFeatured:    true,
			CreatedAt:     time.Now(),
			UpdatedAt:     time.Now(),
		})
		require.NoError(t, err)

		detail, err := pr.GetDetailByID(ctx, product.ID)
		require.NoError(t, err)
		require.NotNil(t, detail.Category)
		require.Equal(t, "Shoes", detail.Category.Name)
		require.NotNil(t, detail.SubCategory)
		require.Equal(t, "Running", detail.SubCategory.Name)

		byCategory, err := pr.GetByCategory(ctx, category.ID)
		require.NoError(t, err)
		require.Len(t, byCategory, 1)

		featured, err := pr.GetFeatured(ctx)
		require.NoError(t, err)
		require.Len(t, featured, 1)

		found, err := pr.Search(ctx, "air")
		require.NoError(t, err)
		require.Len(t, found, 1)

		page, err := pr.GetPaginated(ctx, 1, 10)
		require.NoError(t, err)
		require.Len(t, page, 1)

		_, err = pr.GetDetailByID(ctx, primitive.NewObjectID())
		require.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("variant_repository", func(t *testing.T) {
		pr := repo.NewProductRepository(conn)
		vr := repo.NewVariantRepository(conn)

		product, err := pr.Create(ctx, model.Product{Name: "Air Zoom", Slug: "air-zoom"})
		require.NoError(t, err)

		variant, err := vr.Create(ctx, model.ProductVariant{
			ProductID: product.ID,
			Color:     "red",
			Size:      "42",
			Stock:     5,
			Price:     99.90,
		})
		require.NoError(t, err)

		require.NoError(t, pr.PushVariant(ctx, product.ID, variant.ID))
		withVariant, err := pr.GetByID(ctx, product.ID)
		require.NoError(t, err)
		require.Contains(t, withVariant.Variants, variant.ID)

		byProduct, err := vr.GetByProduct(ctx, product.ID)
		require.NoError(t, err)
		require.Len(t, byProduct, 1)

		variant.Stock = 3
		updated, err := vr.Update(ctx, variant)
		require.NoError(t, err)
		require.Equal(t, 3, updated.Stock)

		require.NoError(t, vr.Delete(ctx, variant.ID))
		_, err = vr.GetByID(ctx, variant.ID)
		require.ErrorIs(t, err, model.ErrNotFound)
	})
}
