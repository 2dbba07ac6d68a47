package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"podarunok-backend/internal/handlers"
	"podarunok-backend/internal/models"
	"podarunok-backend/internal/store"
)

func TestAdminListOrders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var gotQuery store.Query
	st := &fakeStore{
		SelectFunc: func(table string, q store.Query, dest any) error {
			gotQuery = q
			*dest.(*[]models.Order) = []models.Order{
				{ID: "order-1", OrderNumber: "ORD-1712345678901", Status: "new"},
			}
			return nil
		},
	}
	handler := handlers.NewAdminHandler(st, zap.NewNop())

	router := gin.New()
	router.GET("/api/v1/admin/orders", handler.ListOrders)

	req, _ := http.NewRequest("GET", "/api/v1/admin/orders", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "created_at", gotQuery.OrderBy)
	assert.True(t, gotQuery.Descending)

	var resp models.AdminOrdersResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Orders, 1)
	assert.Equal(t, "ORD-1712345678901", resp.Orders[0].OrderNumber)
}

func TestAdminListOrders_StoreError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	st := &fakeStore{
		SelectFunc: func(table string, q store.Query, dest any) error {
			return errors.New("connection refused")
		},
	}
	handler := handlers.NewAdminHandler(st, zap.NewNop())

	router := gin.New()
	router.GET("/api/v1/admin/orders", handler.ListOrders)

	req, _ := http.NewRequest("GET", "/api/v1/admin/orders", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
