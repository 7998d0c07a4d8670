package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type translatedScriptURI struct {
	ItemID   string `uri:"itemId" binding:"required"`
	Language string `uri:"language" binding:"required,bcp47_language_tag"`
}

func (h *Handler) OrderScript(c *gin.Context) {
	script, err := h.svc.Scripts.Generate(c.Request.Context(), c.Param("itemId"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, script)
}

// OrderScriptTranslated rejects anything that is not a BCP 47 language tag before calling out.
func (h *Handler) OrderScriptTranslated(c *gin.Context) {
	var uri translatedScriptURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid language code"})
		return
	}
	script, err := h.svc.Scripts.GenerateTranslated(c.Request.Context(), uri.ItemID, uri.Language)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, script)
}

func (h *Handler) GenerateMenuImage(c *gin.Context) {
	image, err := h.svc.Images.Generate(c.Request.Context(), c.Param("itemId"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, image)
}
