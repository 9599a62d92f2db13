package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mpetrov/storefront-server/internal/api/http/handler"
	"github.com/mpetrov/storefront-server/internal/api/http/middleware"
)

// Handlers groups the endpoint handlers mounted by New.
type Handlers struct {
	Auth        *handler.Auth
	Cart        *handler.Cart
	Category    *handler.Category
	SubCategory *handler.SubCategory
	Product     *handler.Product
	Variant     *handler.Variant
}

// New builds the API router. Authentication is applied per route group;
// catalog reads stay public while writes and the user and cart groups
// require a valid access token.
func New(h Handlers, authenticate *middleware.Authenticate, logging *middleware.Logging) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(logging.Handler)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/user", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh-token", h.Auth.Refresh)
			r.Post("/forgot-password", h.Auth.ForgotPassword)
			r.Post("/reset-password", h.Auth.ResetPassword)

			r.Group(func(r chi.Router) {
				r.Use(authenticate.Handler)
				r.Post("/logout", h.Auth.Logout)
				r.Get("/profile", h.Auth.GetProfile)
				r.Put("/update-profile", h.Auth.UpdateProfile)
				r.Put("/change-password", h.Auth.ChangePassword)
			})
		})

		r.Route("/cart", func(r chi.Router) {
			r.Use(authenticate.Handler)
			r.Post("/add-item", h.Cart.AddItem)
			r.Get("/get-cart", h.Cart.Get)
			r.Put("/update-quantity", h.Cart.UpdateQuantity)
			r.Delete("/remove-item", h.Cart.RemoveItem)
			r.Delete("/clear-cart", h.Cart.Clear)
		})

		r.Route("/category", func(r chi.Router) {
			r.Get("/get-all-categories", h.Category.List)
			r.Get("/search", h.Category.Search)
			r.Get("/count", h.Category.Count)
			r.Get("/{categoryId}", h.Category.Get)

			r.Group(func(r chi.Router) {
				r.Use(authenticate.Handler)
				r.Post("/create", h.Category.Create)
				r.Put("/update/{categoryId}", h.Category.Update)
				r.Delete("/delete/{categoryId}", h.Category.Delete)
			})
		})

		r.Route("/subCategory", func(r chi.Router) {
			r.Get("/get-all-subcategories", h.SubCategory.List)
			r.Get("/category/{categoryId}", h.SubCategory.ListByCategory)
			r.Get("/search", h.SubCategory.Search)
			r.Get("/count", h.SubCategory.Count)
			r.Get("/{subCategoryId}", h.SubCategory.Get)

			r.Group(func(r chi.Router) {
				r.Use(authenticate.Handler)
				r.Post("/create", h.SubCategory.Create)
				r.Put("/update-many", h.SubCategory.UpdateMany)
				r.Put("/update/{subCategoryId}", h.SubCategory.Update)
				r.Delete("/delete-many", h.SubCategory.DeleteMany)
				r.Delete("/delete/{subCategoryId}", h.SubCategory.Delete)
			})
		})

		r.Route("/product", func(r chi.Router) {
			r.Get("/get-all-products", h.Product.List)
			r.Get("/featured", h.Product.Featured)
			r.Get("/search", h.Product.Search)
			r.Get("/paginated", h.Product.ListPaginated)
			r.Get("/category/{categoryId}", h.Product.ListByCategory)
			r.Get("/subCategory/{subCategoryId}", h.Product.ListBySubCategory)
			r.Get("/{productId}", h.Product.Get)

			r.Group(func(r chi.Router) {
				r.Use(authenticate.Handler)
				r.Post("/create", h.Product.Create)
				r.Put("/update/{productId}", h.Product.Update)
				r.Delete("/delete-many", h.Product.DeleteMany)
				r.Delete("/delete/{productId}", h.Product.Delete)
			})
		})

		r.Route("/product-variant", func(r chi.Router) {
			r.Get("/product/{productId}", h.Variant.ListByProduct)
			r.Get("/{variantId}", h.Variant.Get)

			r.Group(func(r chi.Router) {
				r.Use(authenticate.Handler)
				r.Post("/create", h.Variant.Create)
				r.Put("/update/{variantId}", h.Variant.Update)
				r.Delete("/delete/{variantId}", h.Variant.Delete)
			})
		})
	})

	return r
}
