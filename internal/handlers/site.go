package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"podarunok-backend/internal/catalog"
	"podarunok-backend/internal/i18n"
	"podarunok-backend/internal/reviews"
)

// SiteHandler renders the single-page marketing site. Both language
// variants come from one template driven by the translation provider.
type SiteHandler struct {
	catalog    *catalog.Loader
	reviews    *reviews.Loader
	translator *i18n.Translator
}

func NewSiteHandler(cat *catalog.Loader, rev *reviews.Loader, translator *i18n.Translator) *SiteHandler {
	return &SiteHandler{catalog: cat, reviews: rev, translator: translator}
}

func (h *SiteHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.tmpl", gin.H{
		"Lang":     string(h.translator.Language()),
		"Products": h.catalog.ActiveProducts(),
		"Reviews":  h.reviews.Approved(),
	})
}
