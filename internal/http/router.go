package api

import (
	"database/sql"
	"log/slog"

	intconfig "ecommerce/internal/config"
	h "ecommerce/internal/http/handlers"
	"ecommerce/internal/http/middleware"
	"ecommerce/internal/repositories"
	"ecommerce/internal/services"

	"github.com/gin-gonic/gin"
)

// NewRouter wires repositories, services and handlers over db.
func NewRouter(env intconfig.Env, db *sql.DB) *gin.Engine {
	users := repositories.UserRepository{DB: db}
	products := repositories.ProductRepository{DB: db}
	errs := h.ErrorResponder{Expose: !env.IsProduction()}

	return newRouter(env, routes{
		users: h.UserHandler{
			Users:          services.UserService{Users: users, Hasher: services.NewBcryptHasher(env.BcryptRounds)},
			ErrorResponder: errs,
		},
		products: h.ProductHandler{
			Products:       services.ProductService{Products: products},
			ErrorResponder: errs,
		},
		system: h.SystemHandler{
			DB:             db,
			Environment:    env.AppEnv,
			Users:          users,
			Products:       products,
			ErrorResponder: errs,
		},
	})
}

type routes struct {
	users    h.UserHandler
	products h.ProductHandler
	system   h.SystemHandler
}

func newRouter(env intconfig.Env, rt routes) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(),
		gin.Recovery(),
		middleware.SecureHeaders(env.IsProduction()),
		middleware.CORS(env.CORSOrigins()),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		slog.Warn("failed to set trusted proxies", "error", err)
	}

	r.NoRoute(h.NotFound)

	r.GET("/", rt.system.Banner)
	r.GET("/health", rt.system.Health)

	api := r.Group("/api")
	{
		api.GET("/health", rt.system.Health)
		api.GET("/test", rt.system.DBCheck)

		mountUsers(api.Group("/users"), rt.users)
		mountProducts(api.Group("/products"), rt.products)
	}

	return r
}

func mountUsers(g *gin.RouterGroup, u h.UserHandler) {
	public := middleware.Access(middleware.AccessPublic)
	user := middleware.Access(middleware.AccessUser)
	admin := middleware.Access(middleware.AccessAdmin)

	g.POST("", public, u.CreateUser)
	g.POST("/verify-credentials", public, u.VerifyCredentials)
	g.GET("", admin, u.GetUsers)
	g.GET("/:id", user, u.GetUserByID)
	g.PUT("/:id", user, u.UpdateUser)
	g.DELETE("/:id", admin, u.DeleteUser)
	g.POST("/:id/change-password", user, u.ChangePassword)
}

// mountProducts registers the fixed sub-paths before /:id.
func mountProducts(g *gin.RouterGroup, p h.ProductHandler) {
	public := middleware.Access(middleware.AccessPublic)
	admin := middleware.Access(middleware.AccessAdmin)

	g.GET("", public, p.GetProducts)
	g.GET("/featured", public, p.GetFeatured)
	g.GET("/categories", public, p.GetCategories)
	g.GET("/brands", public, p.GetBrands)
	g.GET("/sku/:sku", public, p.GetBySKU)
	g.GET("/category/:category", public, p.GetByCategory)
	g.GET("/:id/stock/:quantity", public, p.CheckStock)
	g.GET("/:id", public, p.GetProductByID)

	g.POST("", admin, p.CreateProduct)
	g.PUT("/:id", admin, p.UpdateProduct)
	g.PATCH("/:id/stock", admin, p.UpdateStock)
	g.DELETE("/:id", admin, p.DeleteProduct)
}
