package main

import (
	"log"

	"restaurant-menu-api/clients"
	"restaurant-menu-api/config"
	"restaurant-menu-api/handlers"
	"restaurant-menu-api/middleware"
	"restaurant-menu-api/routes"
	"restaurant-menu-api/services"
	"restaurant-menu-api/store"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	logger, err := config.NewLogger(cfg.Env)
	if err != nil {
		log.Fatal("Failed to build logger:", err)
	}
	defer logger.Sync()

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	// Database
	db, err := config.InitDB(cfg.DB)
	if err != nil {
		logger.Fatalw("database init failed", "driver", cfg.DB.Driver, "error", err)
	}
	gw := store.NewGormGateway(db)
	logger.Infow("database connected", "driver", cfg.DB.Driver, "auto_migrate", cfg.DB.AutoMigrate)

	// External APIs
	translator := clients.NewTranslateClient(cfg.Translate.URL, cfg.Translate.Key, cfg.ExternalTimeout)
	images := clients.NewImageClient(cfg.Image.URL, cfg.Image.Key, cfg.ImageModel, cfg.ExternalTimeout)
	if cfg.Translate.Key == "" {
		logger.Warnw("TRANSLATE_API_KEY not set, translated order scripts will fail")
	}
	if cfg.Image.Key == "" {
		logger.Warnw("IMAGE_API_KEY not set, menu image generation will fail")
	}

	rng := services.DefaultRandom()
	h := handlers.NewHandler(handlers.Services{
		Menus: services.NewMenuService(gw, services.MenuConfig{
			Tree: services.TreeOptions{
				ActiveRestaurantsOnly: cfg.FilterInactiveRestaurants,
				ActiveMenusOnly:       cfg.FilterInactiveMenus,
			},
			HardDeleteItems: cfg.HardDeleteItems,
		}, logger),
		Customizations: services.NewCustomizationService(gw, logger),
		Allergens:      services.NewAllergenService(gw, rng, logger),
		Scripts:        services.NewOrderScriptService(gw, rng, translator, logger),
		Images:         services.NewImageService(gw, rng, images, logger),
	}, gw, logger)

	r := gin.New()
	r.Use(
		middleware.RequestLogger(logger),
		middleware.Recovery(logger),
		middleware.CORS(),
		middleware.Timeout(cfg.UpstreamTimeout),
	)
	routes.SetupRoutes(r, h)

	logger.Infow("server starting", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatalw("server stopped", "error", err)
	}
}
