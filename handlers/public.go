package handlers

import (
	"net/http"

	"restaurant-menu-api/nutrition"

	"github.com/gin-gonic/gin"
)

const serviceName = "Restaurant Menu API"

// Health reports liveness plus database reachability.
func (h *Handler) Health(c *gin.Context) {
	if err := h.db.Ping(c.Request.Context()); err != nil {
		h.logger.Errorw("health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "service": serviceName, "database": "unreachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"service":  serviceName,
		"version":  "1.0.0",
		"database": "ok",
	})
}

func (h *Handler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to the " + serviceName,
		"menus":   "/api/all-restaurant-menus",
		"docs":    "/api/portion-types",
		"health":  "/health",
	})
}

// PortionTypes lists the multiplier applied when a portion has no explicit value.
func (h *Handler) PortionTypes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"portion_types":      nutrition.PortionRules(),
		"unknown_multiplier": 1,
		"description":        "Nutrition multiplier per portion type. An explicit portion multiplier takes precedence.",
	})
}
