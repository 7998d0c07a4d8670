package routes

import (
	"net/http"
	"strings"

	"restaurant-menu-api/handlers"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *handlers.Handler) {
	r.GET("/", h.Index)
	r.GET("/health", h.Health)

	api := r.Group("/api")
	{
		// Menu tree and portion rules
		api.GET("/all-restaurant-menus", h.AllRestaurantMenus)
		api.GET("/portion-types", h.PortionTypes)

		// Restaurants
		api.GET("/restaurants", h.ListRestaurants)
		api.POST("/restaurants", h.CreateRestaurant)
		api.GET("/restaurants/:id", h.GetRestaurant)
		api.PUT("/restaurants/:id", h.UpdateRestaurant)
		api.DELETE("/restaurants/:id", h.DeleteRestaurant)

		// Menu items
		api.POST("/menu-items", h.CreateMenuItem)
		api.GET("/menu-items/:id", h.GetMenuItem)
		api.PUT("/menu-items/:id", h.UpdateMenuItem)
		api.DELETE("/menu-items/:id", h.DeleteMenuItem)
		api.GET("/menu-items/:id/nutrition", h.MenuItemNutrition)
		api.GET("/menu-items/:id/customizations", h.MenuItemCustomizations)

		// Customizations
		api.GET("/protein-custom-menu-items", h.ProteinCustomMenuItems)
		api.GET("/protein-options-with-portions", h.ProteinOptionsWithPortions)

		// Allergens
		api.GET("/menu-item-allergen/:itemId/:allergenId", h.MenuItemAllergen)
		api.GET("/swap-option-value-allergen/:itemId/:allergenId", h.SwapOptionValueAllergen)

		// Order scripts and images
		api.GET("/order-script/:itemId", h.OrderScript)
		api.GET("/order-script-translated/:itemId/:language", h.OrderScriptTranslated)
		api.GET("/generate-menu-image/:itemId", h.GenerateMenuImage)
	}

	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "endpoint not found"})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})
}
