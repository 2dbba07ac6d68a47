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

	"podarunok-backend/internal/catalog"
	"podarunok-backend/internal/handlers"
	"podarunok-backend/internal/models"
	"podarunok-backend/internal/store"
)

type fakeStore struct {
	SelectFunc    func(table string, q store.Query, dest any) error
	InsertOneFunc func(table string, row any, dest any) error
}

func (f *fakeStore) Select(table string, q store.Query, dest any) error {
	return f.SelectFunc(table, q, dest)
}

func (f *fakeStore) InsertOne(table string, row any, dest any) error {
	return f.InsertOneFunc(table, row, dest)
}

func TestCatalogList(t *testing.T) {
	gin.SetMode(gin.TestMode)
	st := &fakeStore{
		SelectFunc: func(table string, q store.Query, dest any) error {
			switch table {
			case "product_categories":
				*dest.(*[]models.ProductCategory) = []models.ProductCategory{
					{ID: "c1", NameUK: "Полотна", Slug: "canvas"},
				}
			case "products":
				*dest.(*[]models.Product) = []models.Product{
					{ID: "p1", CategoryID: "c1", NameUK: "Полотно", NameRU: "Холст", IsActive: true},
				}
			case "product_formats":
				*dest.(*[]models.ProductFormat) = []models.ProductFormat{
					{ID: "f1", ProductID: "p1", Size: "30x40", Price: 649},
				}
			}
			return nil
		},
	}
	handler := handlers.NewCatalogHandler(catalog.NewLoader(st, zap.NewNop()))

	router := gin.New()
	router.GET("/api/v1/catalog", handler.List)

	req, _ := http.NewRequest("GET", "/api/v1/catalog", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.CatalogResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Categories, 1)
	assert.Equal(t, "c1", resp.Categories[0].ID)
	require.Len(t, resp.Products, 1)
	assert.Equal(t, "p1", resp.Products[0].ID)
	assert.Equal(t, "c1", resp.Products[0].CategoryID)
	require.Len(t, resp.Products[0].Formats, 1)
	assert.Equal(t, 649, resp.Products[0].Formats[0].Price)
}

func TestCatalogList_StoreErrorStillRenders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	st := &fakeStore{
		SelectFunc: func(table string, q store.Query, dest any) error {
			return errors.New("connection refused")
		},
	}
	handler := handlers.NewCatalogHandler(catalog.NewLoader(st, zap.NewNop()))

	router := gin.New()
	router.GET("/api/v1/catalog", handler.List)

	req, _ := http.NewRequest("GET", "/api/v1/catalog", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.CatalogResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Categories)
	assert.Empty(t, resp.Products)
}
