package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/NhatNguyen1502/ecommerce-services/internal/handlers"
	"github.com/NhatNguyen1502/ecommerce-services/internal/middleware"
	"github.com/NhatNguyen1502/ecommerce-services/internal/token"
)

// RegisterRoutes mounts the whole API. Auth endpoints and catalog reads are
// public; everything else requires a valid access token, with role-guarded
// customer and admin groups.
func RegisterRoutes(r *gin.Engine, tokens *token.Service,
	auth *handlers.AuthHandler, catalog *handlers.CatalogHandler,
	cart *handlers.CartHandler, users *handlers.UserHandler) {

	// public: authentication endpoints bypass the filter entirely
	authGroup := r.Group("/auth")
	authGroup.POST("/sign-up", auth.SignUp)
	authGroup.POST("/sign-in", auth.SignIn)
	authGroup.POST("/refresh-token", auth.RefreshToken)
	authGroup.POST("/logout", auth.Logout)

	// public: catalog browsing
	r.GET("/categories", catalog.ListCategories)
	r.GET("/products", catalog.ListProducts)
	r.GET("/products/featured", catalog.ListFeaturedProducts)
	r.GET("/products/:id", catalog.GetProduct)
	r.GET("/products/:id/reviews", catalog.ListProductReviews)

	protected := r.Group("/", middleware.Auth(tokens))

	customer := protected.Group("/customer", middleware.RequireRole("user", "admin"))
	customer.GET("/profile", users.GetProfile)
	customer.PUT("/profile", users.UpdateProfile)
	customer.POST("/cart", cart.AddToCart)
	customer.GET("/cart", cart.GetCart)
	customer.GET("/cart/count", cart.GetCartCount)
	customer.PUT("/cart/:productId", cart.UpdateCartItem)
	customer.POST("/products/:id/reviews", cart.CreateReview)

	admin := protected.Group("/admin", middleware.RequireRole("admin"))
	admin.POST("/categories", catalog.CreateCategory)
	admin.PUT("/categories/:id", catalog.UpdateCategory)
	admin.DELETE("/categories/:id", catalog.DeleteCategory)
	admin.POST("/products", catalog.CreateProduct)
	admin.PUT("/products/:id", catalog.UpdateProduct)
	admin.DELETE("/products/:id", catalog.DeleteProduct)
	admin.GET("/customers", users.ListCustomers)
	admin.GET("/customers/:id", users.GetCustomer)
	admin.PATCH("/customers/:id/status", users.UpdateCustomerStatus)
	admin.DELETE("/customers/:id", users.DeleteCustomer)
}
