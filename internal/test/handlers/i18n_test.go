package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"podarunok-backend/internal/handlers"
	"podarunok-backend/internal/i18n"
	"podarunok-backend/internal/models"
)

func i18nRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	translator, err := i18n.New("uk")
	require.NoError(t, err)
	handler := handlers.NewI18nHandler(translator)

	router := gin.New()
	router.GET("/api/v1/translations", handler.Translations)
	router.PUT("/api/v1/language", handler.SetLanguage)
	return router
}

func TestTranslations(t *testing.T) {
	router := i18nRouter(t)

	req, _ := http.NewRequest("GET", "/api/v1/translations", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.TranslationsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "uk", resp.Language)
	assert.Contains(t, resp.Strings, "hero.title")
}

func TestSetLanguage_SwitchesTable(t *testing.T) {
	router := i18nRouter(t)

	req, _ := http.NewRequest("PUT", "/api/v1/language", strings.NewReader(`{"language":"ru"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	req, _ = http.NewRequest("GET", "/api/v1/translations", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp models.TranslationsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ru", resp.Language)
}

func TestSetLanguage_RejectsUnsupported(t *testing.T) {
	router := i18nRouter(t)

	req, _ := http.NewRequest("PUT", "/api/v1/language", strings.NewReader(`{"language":"en"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
