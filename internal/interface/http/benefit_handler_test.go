package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studentperksph/perks-api/internal/catalog"
)

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	h := NewBenefitHandler(catalog.New(), nil, nil, logger)
	r := gin.New()
	r.GET("/api/categories", h.Categories)
	api := r.Group("/api/benefits")
	api.GET("", h.List)
	api.GET("/popular", h.Popular)
	api.POST("/:id/unlock", h.Unlock)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestBenefitListAnonymous(t *testing.T) {
	r := testRouter(t)

	code, body := doJSON(t, r, http.MethodGet, "/api/benefits")
	require.Equal(t, http.StatusOK, code)

	data := body["data"].(map[string]any)
	assert.Equal(t, float64(38), data["total"])
	assert.Equal(t, true, data["show_popular"])
	assert.Equal(t, false, data["loading"])
}

func TestBenefitListFiltersByQuery(t *testing.T) {
	r := testRouter(t)

	code, body := doJSON(t, r, http.MethodGet, "/api/benefits?q=spot")
	require.Equal(t, http.StatusOK, code)

	data := body["data"].(map[string]any)
	assert.Equal(t, float64(1), data["total"])
	assert.Equal(t, false, data["show_popular"])
}

func TestBenefitListRejectsUnknownCategory(t *testing.T) {
	r := testRouter(t)

	code, body := doJSON(t, r, http.MethodGet, "/api/benefits?category=Gaming")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, false, body["success"])
}

func TestCategoriesEndpoint(t *testing.T) {
	r := testRouter(t)

	code, body := doJSON(t, r, http.MethodGet, "/api/categories")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, body["data"], 8)
}

func TestBenefitUnlock(t *testing.T) {
	r := testRouter(t)

	t.Run("unknown benefit", func(t *testing.T) {
		code, _ := doJSON(t, r, http.MethodPost, "/api/benefits/nope/unlock")
		assert.Equal(t, http.StatusNotFound, code)
	})

	t.Run("anonymous caller must log in", func(t *testing.T) {
		code, body := doJSON(t, r, http.MethodPost, "/api/benefits/1/unlock")
		assert.Equal(t, http.StatusUnauthorized, code)
		assert.Equal(t, false, body["success"])
	})
}
