package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"podarunok-backend/internal/models"
	"podarunok-backend/internal/reviews"
)

type ReviewsHandler struct {
	loader *reviews.Loader
}

func NewReviewsHandler(loader *reviews.Loader) *ReviewsHandler {
	return &ReviewsHandler{loader: loader}
}

func (h *ReviewsHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, models.ReviewsResponse{Reviews: h.loader.Approved()})
}
