package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/brandslanding/internal/config"
	"github.com/example/brandslanding/internal/handlers"
	"github.com/example/brandslanding/internal/middleware"
	"github.com/example/brandslanding/internal/utils"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, db *gorm.DB, cfg *config.Config, landing *handlers.LandingHandler, cache handlers.Invalidator) {
	authHandler := handlers.NewAuthHandler(db, cfg)
	catalogHandler := handlers.NewCatalogHandler(db, cache)

	app.Get("/healthz", handlers.Health)

	// Landing pages
	app.Get("/brands/ct/:brandKey", landing.Page)

	api := app.Group("/api")
	api.Get("/brands-landing/:brandKey", landing.InitialState)

	api.Post("/auth/login", authHandler.Login)

	admin := api.Group("/admin", middleware.AdminAuth(func(token string) (uuid.UUID, error) {
		return utils.ParseToken(cfg.JWTSecret, token)
	}))

	brands := admin.Group("/brands")
	brands.Get("/", catalogHandler.ListBrands)
	brands.Post("/", catalogHandler.CreateBrand)
	brands.Get("/:id", catalogHandler.GetBrand)
	brands.Put("/:id", catalogHandler.UpdateBrand)
	brands.Delete("/:id", catalogHandler.DeleteBrand)
	brands.Post("/:id/categories", catalogHandler.CreateCategory)
	brands.Get("/:id/landing-config", catalogHandler.GetLandingConfig)
	brands.Put("/:id/landing-config", catalogHandler.UpsertLandingConfig)

	categories := admin.Group("/categories")
	categories.Put("/:id", catalogHandler.UpdateCategory)
	categories.Delete("/:id", catalogHandler.DeleteCategory)
}
