package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) MenuItemCustomizations(c *gin.Context) {
	options, err := h.svc.Customizations.ItemCustomizations(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"menu_item_id":   c.Param("id"),
		"customizations": options,
	})
}

// ProteinCustomMenuItems lists items with the protein option, each carrying the ranked values.
func (h *Handler) ProteinCustomMenuItems(c *gin.Context) {
	items, err := h.svc.Customizations.ProteinMenuItems(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) ProteinOptionsWithPortions(c *gin.Context) {
	option, err := h.svc.Customizations.ProteinOptionsWithPortions(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, option)
}
