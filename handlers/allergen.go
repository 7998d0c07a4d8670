package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type allergenURI struct {
	ItemID     string `uri:"itemId" binding:"required"`
	AllergenID string `uri:"allergenId" binding:"required"`
}

func (h *Handler) MenuItemAllergen(c *gin.Context) {
	var uri allergenURI
	if err := c.ShouldBindUri(&uri); err != nil {
		badRequest(c, err)
		return
	}
	report, err := h.svc.Allergens.Check(c.Request.Context(), uri.ItemID, uri.AllergenID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *Handler) SwapOptionValueAllergen(c *gin.Context) {
	var uri allergenURI
	if err := c.ShouldBindUri(&uri); err != nil {
		badRequest(c, err)
		return
	}
	result, err := h.svc.Allergens.Swap(c.Request.Context(), uri.ItemID, uri.AllergenID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
