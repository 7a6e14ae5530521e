package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"collabservice/cmd/collab-service/internal/biz"
	"collabservice/cmd/collab-service/internal/data"
	"collabservice/cmd/collab-service/internal/service"
	"collabservice/pkg/health"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newTestServer 构建使用 CSV 后端的完整服务器
func newTestServer(t *testing.T) *HTTPServer {
	t.Helper()
	dir := t.TempDir()
	logger := zap.NewNop()

	cosmeticRepo := data.NewCosmeticCollabFileRepository(filepath.Join(dir, "cosmetic_colab.csv"))
	videogameRepo := data.NewVideogameCollabFileRepository(filepath.Join(dir, "videogame_colab.csv"))

	svc := service.NewCollabService(
		biz.NewCosmeticUsecase(cosmeticRepo, logger),
		biz.NewVideogameUsecase(videogameRepo, logger),
	)

	checker := health.NewHealthChecker()
	checker.Register(health.NewStoreChecker("cosmetics_csv", func(context.Context) error { return nil }))

	return NewHTTPServer(svc, checker, logger)
}

func doRequest(t *testing.T, s *HTTPServer, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.Engine().ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

const glowCoPayload = `{
	"makeup_brand": "GlowCo",
	"videogame": "PixelQuest",
	"collaboration_date": "2024-03-01",
	"collaboration_type": "limited edition",
	"makeup_sales_increase": "15%"
}`

func TestRootEndpoint(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s, http.MethodGet, "/", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Collaborations API")
}

func TestListCosmetics_EmptyStoreReturnsArray(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s, http.MethodGet, "/cosmetics", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

func TestCreateCosmetic_ThenGetByID(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s, http.MethodPost, "/cosmetics", glowCoPayload)
	require.Equal(t, http.StatusCreated, w.Code)

	created := decodeBody(t, w)
	assert.Equal(t, float64(1), created["id"])
	assert.Equal(t, "GlowCo", created["makeup_brand"])

	w = doRequest(t, s, http.MethodGet, "/cosmetics/1", "")
	require.Equal(t, http.StatusOK, w.Code)

	got := decodeBody(t, w)
	assert.Equal(t, created, got)
	assert.Equal(t, "2024-03-01", got["collaboration_date"])
	assert.Equal(t, "limited edition", got["collaboration_type"])
	assert.Equal(t, "15%", got["makeup_sales_increase"])
}

func TestCreateCosmetic_DecimalPercentageRejected(t *testing.T) {
	s := newTestServer(t)
	payload := strings.Replace(glowCoPayload, "15%", "15.5%", 1)

	w := doRequest(t, s, http.MethodPost, "/cosmetics", payload)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "validation failed", body["message"])
	assert.Contains(t, body["detail"], "makeup_sales_increase")
	assert.Equal(t, "/cosmetics", body["request_path"])
}

func TestGetCosmetic_NotFound(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s, http.MethodGet, "/cosmetics/99", "")

	require.Equal(t, http.StatusNotFound, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "resource not found", body["message"])
	assert.Equal(t, "/cosmetics/99", body["request_path"])
}

func TestGetCosmetic_NonNumericID(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s, http.MethodGet, "/cosmetics/abc", "")

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "validation failed", body["message"])
}

func TestSearchCosmeticsByBrand_NoMatches(t *testing.T) {
	s := newTestServer(t)
	doRequest(t, s, http.MethodPost, "/cosmetics", glowCoPayload)

	w := doRequest(t, s, http.MethodGet, "/cosmetics/search_by_brand?brand_name=nonexistent", "")

	require.Equal(t, http.StatusNotFound, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "resource not found", body["message"])
}

func TestSearchCosmeticsByBrand_ExactMatchCaseInsensitive(t *testing.T) {
	s := newTestServer(t)
	doRequest(t, s, http.MethodPost, "/cosmetics", glowCoPayload)

	w := doRequest(t, s, http.MethodGet, "/cosmetics/search_by_brand?brand_name=glowco", "")

	require.Equal(t, http.StatusOK, w.Code)
	var results []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "GlowCo", results[0]["makeup_brand"])
}

func TestSearchCosmeticsByBrand_MissingParam(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s, http.MethodGet, "/cosmetics/search_by_brand", "")

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestListCosmeticsByRecentDate(t *testing.T) {
	s := newTestServer(t)
	doRequest(t, s, http.MethodPost, "/cosmetics", glowCoPayload)
	newer := strings.Replace(glowCoPayload, "2024-03-01", "2025-01-15", 1)
	doRequest(t, s, http.MethodPost, "/cosmetics", newer)

	w := doRequest(t, s, http.MethodGet, "/cosmetics/by_recent_date", "")

	require.Equal(t, http.StatusOK, w.Code)
	var results []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
	require.Len(t, results, 2)
	assert.Equal(t, "2025-01-15", results[0]["collaboration_date"])
	assert.Equal(t, "2024-03-01", results[1]["collaboration_date"])
}

func TestUpdateCosmetic_PartialUpdate(t *testing.T) {
	s := newTestServer(t)
	doRequest(t, s, http.MethodPost, "/cosmetics", glowCoPayload)

	w := doRequest(t, s, http.MethodPut, "/cosmetics/1", `{"makeup_sales_increase": "40%"}`)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "40%", body["makeup_sales_increase"])
	assert.Equal(t, "GlowCo", body["makeup_brand"])
	assert.Equal(t, "2024-03-01", body["collaboration_date"])
}

func TestUpdateCosmetic_BlankFieldLeftUntouched(t *testing.T) {
	s := newTestServer(t)
	doRequest(t, s, http.MethodPost, "/cosmetics", glowCoPayload)

	w := doRequest(t, s, http.MethodPut, "/cosmetics/1", `{"makeup_brand": "", "videogame": "DragonSaga"}`)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "GlowCo", body["makeup_brand"])
	assert.Equal(t, "DragonSaga", body["videogame"])
}

func TestUpdateCosmetic_NotFound(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s, http.MethodPut, "/cosmetics/7", `{"makeup_brand": "GlowCo"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateCosmetic_InvalidFieldRejected(t *testing.T) {
	s := newTestServer(t)
	doRequest(t, s, http.MethodPost, "/cosmetics", glowCoPayload)

	w := doRequest(t, s, http.MethodPut, "/cosmetics/1", `{"makeup_sales_increase": "a lot"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestDeleteCosmetic_EchoOmitsID(t *testing.T) {
	s := newTestServer(t)
	doRequest(t, s, http.MethodPost, "/cosmetics", glowCoPayload)

	w := doRequest(t, s, http.MethodDelete, "/cosmetics/1", "")

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.NotContains(t, body, "id")
	assert.Equal(t, "GlowCo", body["makeup_brand"])
	assert.Equal(t, "15%", body["makeup_sales_increase"])

	w = doRequest(t, s, http.MethodGet, "/cosmetics/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteCosmetic_NotFound(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s, http.MethodDelete, "/cosmetics/1", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestVideogameFlow(t *testing.T) {
	s := newTestServer(t)
	payload := `{
		"videogame": "PixelQuest",
		"makeup_brand": "GlowCo",
		"collaboration_date": "2024-05-20",
		"videogame_sales_increase": "10%"
	}`

	w := doRequest(t, s, http.MethodPost, "/videogames", payload)
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeBody(t, w)
	assert.Equal(t, float64(1), created["id"])

	w = doRequest(t, s, http.MethodGet, "/videogames/search_by_name?videogame_name=pixelquest", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, s, http.MethodGet, "/videogames/by_date", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, s, http.MethodDelete, "/videogames/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.NotContains(t, body, "id")
	assert.Equal(t, "10%", body["videogame_sales_increase"])
}

func TestRequestIDHeaderIsSet(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s, http.MethodGet, "/healthz", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
