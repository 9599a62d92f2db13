package router_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	httpctx "github.com/mpetrov/storefront-server/internal/api/http/context"
	"github.com/mpetrov/storefront-server/internal/api/http/handler"
	"github.com/mpetrov/storefront-server/internal/api/http/middleware"
	"github.com/mpetrov/storefront-server/internal/api/http/router"
	"github.com/mpetrov/storefront-server/internal/mocks"
	"github.com/mpetrov/storefront-server/internal/model"
	"github.com/mpetrov/storefront-server/internal/service"
	"github.com/mpetrov/storefront-server/internal/testutil"
)

type routerFixture struct {
	userStore    *mocks.UserStore
	cartStore    *mocks.CartStore
	productStore *mocks.ProductStore
	tokenManager *mocks.TokenManager
	handler      http.Handler
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()
	log := testutil.MakeNoopLogger()
	ctxMgr := httpctx.NewManager()

	userStore := &mocks.UserStore{}
	cartStore := &mocks.CartStore{}
	categoryStore := &mocks.CategoryStore{}
	subCategoryStore := &mocks.SubCategoryStore{}
	productStore := &mocks.ProductStore{}
	variantStore := &mocks.VariantStore{}
	tokenManager := &mocks.TokenManager{}
	hasher := &mocks.PasswordHasher{}
	mailer := &mocks.Mailer{}

	authService := service.NewAuth(userStore, tokenManager, hasher, mailer, "http://front.local", log)
	cartService := service.NewCart(cartStore, productStore, variantStore, log)
	catalogService := service.NewCatalog(categoryStore, subCategoryStore, productStore, variantStore, log)

	h := router.Handlers{
		Auth:        handler.NewAuth(authService, ctxMgr, log),
		Cart:        handler.NewCart(cartService, ctxMgr, log),
		Category:    handler.NewCategory(catalogService, log),
		SubCategory: handler.NewSubCategory(catalogService, log),
		Product:     handler.NewProduct(catalogService, log),
		Variant:     handler.NewVariant(catalogService, log),
	}

	return &routerFixture{
		userStore:    userStore,
		cartStore:    cartStore,
		productStore: productStore,
		tokenManager: tokenManager,
		handler: router.New(
			h,
			middleware.NewAuthenticate(tokenManager, userStore, ctxMgr, log),
			middleware.NewLogging(log),
		),
	}
}

func TestRouter_PublicCatalogRead(t *testing.T) {
	f := newRouterFixture(t)
	f.productStore.On("GetAllDetailed", mock.Anything).Return([]model.ProductDetail{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/product/get-all-products", nil)
	rec := httptest.NewRecorder()

	f.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_CartRequiresAuth(t *testing.T) {
	f := newRouterFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart/get-cart", nil)
	rec := httptest.NewRecorder()

	f.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_CartWithToken(t *testing.T) {
	f := newRouterFixture(t)
	userID := primitive.NewObjectID()

	f.tokenManager.On("ParseAccessToken", "good-token").Return(userID, nil)
	f.userStore.On("GetByID", mock.Anything, userID).Return(model.User{ID: userID}, nil)
	f.cartStore.On("GetByUser", mock.Anything, userID).Return(model.Cart{}, model.ErrNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart/get-cart", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()

	f.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_LoginRoute(t *testing.T) {
	f := newRouterFixture(t)
	f.userStore.On("GetByEmail", mock.Anything, "ghost@example.com").Return(model.User{}, model.ErrNotFound)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/user/login",
		strings.NewReader(`{"email":"ghost@example.com","password":"whatever"}`))
	rec := httptest.NewRecorder()

	f.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_RequestIDHeader(t *testing.T) {
	f := newRouterFixture(t)
	f.productStore.On("GetFeatured", mock.Anything).Return([]model.ProductDetail{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/product/featured", nil)
	rec := httptest.NewRecorder()

	f.handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestRouter_CatalogWritesRequireAuth(t *testing.T) {
	f := newRouterFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/category/create",
		strings.NewReader(`{"name":"Sportswear"}`))
	rec := httptest.NewRecorder()

	f.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
