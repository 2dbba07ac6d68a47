package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"podarunok-backend/internal/i18n"
	"podarunok-backend/internal/models"
)

type I18nHandler struct {
	translator *i18n.Translator
}

func NewI18nHandler(translator *i18n.Translator) *I18nHandler {
	return &I18nHandler{translator: translator}
}

func (h *I18nHandler) Translations(c *gin.Context) {
	c.JSON(http.StatusOK, models.TranslationsResponse{
		Language: string(h.translator.Language()),
		Strings:  h.translator.Table(),
	})
}

func (h *I18nHandler) SetLanguage(c *gin.Context) {
	var req models.SetLanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}
	if err := h.translator.SetLanguage(req.Language); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"language": req.Language})
}
