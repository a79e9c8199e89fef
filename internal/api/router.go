package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/storefront/catalog-system/internal/api/handler"
	"github.com/storefront/catalog-system/internal/api/middleware"
	"github.com/storefront/catalog-system/internal/api/policy"
	"github.com/storefront/catalog-system/internal/core/ports"
	"github.com/storefront/catalog-system/internal/core/service"
	"github.com/storefront/catalog-system/internal/infrastructure/config"
	mongodb "github.com/storefront/catalog-system/internal/infrastructure/db/mongo"
	redisdb "github.com/storefront/catalog-system/internal/infrastructure/db/redis"
	"github.com/storefront/catalog-system/internal/infrastructure/http/handlers"
)

// NewRouter builds the Echo instance with every route registered behind its
// (resource, action) allow-list from the policy table.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("catalog"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	roleRepo := mongodb.NewRoleRepository(db)
	categoryRepo := mongodb.NewCategoryRepository(db)
	productRepo := mongodb.NewProductRepository(db)

	var cache ports.PrincipalCache
	if rdb != nil {
		cache = redisdb.NewPrincipalCache(rdb)
	}

	refs := service.NewReferenceChecker(roleRepo, categoryRepo)
	authService := service.NewAuthService(userRepo, roleRepo, cache, cfg.JWTSecret, cfg.JWTTTL, log)
	userService := service.NewUserService(userRepo, roleRepo, refs, cache, log)
	roleService := service.NewRoleService(roleRepo, log)
	categoryService := service.NewCategoryService(categoryRepo, productRepo, log)
	productService := service.NewProductService(productRepo, categoryRepo, refs, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	roleHandler := handler.NewRoleHandler(roleService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	productHandler := handler.NewProductHandler(productService)

	auth := middleware.Auth(authService)

	// --- Open routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/users/activate", authHandler.Activate)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Users ---
	users := e.Group("/users", auth)
	users.GET("", userHandler.List, middleware.Authorize(policy.ResourceUsers, policy.ActionRead))
	users.GET("/:id", userHandler.Get, middleware.Authorize(policy.ResourceUsers, policy.ActionRead))
	users.GET("/username/:username", userHandler.GetByUsername, middleware.Authorize(policy.ResourceUsers, policy.ActionRead))
	users.POST("", userHandler.Create, middleware.Authorize(policy.ResourceUsers, policy.ActionCreate))
	users.PUT("/:id", userHandler.Update, middleware.Authorize(policy.ResourceUsers, policy.ActionUpdate))
	users.DELETE("/:id", userHandler.Delete, middleware.Authorize(policy.ResourceUsers, policy.ActionDelete))

	// --- Roles ---
	roles := e.Group("/roles", auth)
	roles.GET("", roleHandler.List, middleware.Authorize(policy.ResourceRoles, policy.ActionRead))
	roles.GET("/:id", roleHandler.Get, middleware.Authorize(policy.ResourceRoles, policy.ActionRead))
	roles.POST("", roleHandler.Create, middleware.Authorize(policy.ResourceRoles, policy.ActionCreate))
	roles.PUT("/:id", roleHandler.Update, middleware.Authorize(policy.ResourceRoles, policy.ActionUpdate))
	roles.DELETE("/:id", roleHandler.Delete, middleware.Authorize(policy.ResourceRoles, policy.ActionDelete))

	// --- Categories ---
	categories := e.Group("/categories", auth)
	categories.GET("", categoryHandler.List, middleware.Authorize(policy.ResourceCategories, policy.ActionRead))
	categories.GET("/:id", categoryHandler.Get, middleware.Authorize(policy.ResourceCategories, policy.ActionRead))
	categories.GET("/:id/products", categoryHandler.ListProducts, middleware.Authorize(policy.ResourceCategories, policy.ActionRead))
	categories.POST("", categoryHandler.Create, middleware.Authorize(policy.ResourceCategories, policy.ActionCreate))
	categories.PUT("/:id", categoryHandler.Update, middleware.Authorize(policy.ResourceCategories, policy.ActionUpdate))
	categories.DELETE("/:id", categoryHandler.Delete, middleware.Authorize(policy.ResourceCategories, policy.ActionDelete))

	// --- Products ---
	products := e.Group("/products", auth)
	products.GET("", productHandler.List, middleware.Authorize(policy.ResourceProducts, policy.ActionRead))
	products.GET("/:id", productHandler.Get, middleware.Authorize(policy.ResourceProducts, policy.ActionRead))
	products.POST("", productHandler.Create, middleware.Authorize(policy.ResourceProducts, policy.ActionCreate))
	products.PUT("/:id", productHandler.Update, middleware.Authorize(policy.ResourceProducts, policy.ActionUpdate))
	products.DELETE("/:id", productHandler.Delete, middleware.Authorize(policy.ResourceProducts, policy.ActionDelete))

	return e
}
