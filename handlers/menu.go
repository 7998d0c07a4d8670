package handlers

import (
	"net/http"

	"restaurant-menu-api/services"

	"github.com/gin-gonic/gin"
)

// AllRestaurantMenus returns the restaurant → menu → item tree.
func (h *Handler) AllRestaurantMenus(c *gin.Context) {
	tree, err := h.svc.Menus.Tree(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tree)
}

type CreateMenuItemRequest struct {
	MenuID         string   `json:"menu_id" binding:"required_without=RestaurantID"`
	RestaurantID   string   `json:"restaurant_id"`
	DisplayName    string   `json:"display_name" binding:"required"`
	ShortName      string   `json:"short_name"`
	Description    string   `json:"description"`
	BasePrice      *float64 `json:"base_price" binding:"required,gte=0"`
	PortionSize    string   `json:"portion_size"`
	MealType       string   `json:"meal_type"`
	IsAvailable    *bool    `json:"is_available"`
	IsCustomizable bool     `json:"is_customizable"`
}

func (h *Handler) CreateMenuItem(c *gin.Context) {
	var req CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	item, err := h.svc.Menus.CreateMenuItem(c.Request.Context(), services.CreateMenuItemInput{
		MenuID:         req.MenuID,
		RestaurantID:   req.RestaurantID,
		DisplayName:    req.DisplayName,
		ShortName:      req.ShortName,
		Description:    req.Description,
		BasePrice:      req.BasePrice,
		PortionSize:    req.PortionSize,
		MealType:       req.MealType,
		IsAvailable:    req.IsAvailable,
		IsCustomizable: req.IsCustomizable,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// GetMenuItem returns the row even when it has been soft-deleted.
func (h *Handler) GetMenuItem(c *gin.Context) {
	item, err := h.svc.Menus.GetMenuItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *Handler) UpdateMenuItem(c *gin.Context) {
	var req map[string]any
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	item, err := h.svc.Menus.UpdateMenuItem(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *Handler) DeleteMenuItem(c *gin.Context) {
	id := c.Param("id")
	if err := h.svc.Menus.DeleteMenuItem(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted", "id": id})
}

func (h *Handler) MenuItemNutrition(c *gin.Context) {
	n, err := h.svc.Menus.ItemNutrition(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, n)
}
