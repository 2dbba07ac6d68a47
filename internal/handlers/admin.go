package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"podarunok-backend/internal/models"
	"podarunok-backend/internal/store"
)

// AdminHandler is the read-only back-office surface. Orders are never
// mutated here; fulfillment happens in external tooling.
type AdminHandler struct {
	store  store.Store
	logger *zap.Logger
}

func NewAdminHandler(st store.Store, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{store: st, logger: logger}
}

func (h *AdminHandler) ListOrders(c *gin.Context) {
	var orders []models.Order
	err := h.store.Select("orders", store.Query{
		OrderBy:    "created_at",
		Descending: true,
	}, &orders)
	if err != nil {
		h.logger.Error("listing orders", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to list orders"})
		return
	}
	c.JSON(http.StatusOK, models.AdminOrdersResponse{Orders: orders})
}
