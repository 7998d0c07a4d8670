package handlers

import (
	"net/http"

	"restaurant-menu-api/services"

	"github.com/gin-gonic/gin"
)

type CreateRestaurantRequest struct {
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	Phone        string `json:"phone"`
	Website      string `json:"website"`
	Status       string `json:"status"`
	DiningStatus string `json:"dining_status"`
}

func (h *Handler) CreateRestaurant(c *gin.Context) {
	var req CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	restaurant, err := h.svc.Menus.CreateRestaurant(c.Request.Context(), services.CreateRestaurantInput{
		Name:         req.Name,
		Description:  req.Description,
		Phone:        req.Phone,
		Website:      req.Website,
		Status:       req.Status,
		DiningStatus: req.DiningStatus,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, restaurant)
}

// ListRestaurants returns active restaurants without their menus.
func (h *Handler) ListRestaurants(c *gin.Context) {
	restaurants, err := h.svc.Menus.ListRestaurants(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":       len(restaurants),
		"restaurants": restaurants,
	})
}

func (h *Handler) GetRestaurant(c *gin.Context) {
	restaurant, err := h.svc.Menus.GetRestaurant(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, restaurant)
}

func (h *Handler) UpdateRestaurant(c *gin.Context) {
	var req map[string]any
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	restaurant, err := h.svc.Menus.UpdateRestaurant(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, restaurant)
}

func (h *Handler) DeleteRestaurant(c *gin.Context) {
	id := c.Param("id")
	if err := h.svc.Menus.DeleteRestaurant(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Restaurant deleted", "id": id})
}
