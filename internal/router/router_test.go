package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/iacubdiego/Calo-indumentaria-web/internal/config"
	"github.com/iacubdiego/Calo-indumentaria-web/internal/infra"
	"github.com/iacubdiego/Calo-indumentaria-web/internal/middleware"
)

const (
	testAdmin    = "admin"
	testPassword = "calo2024"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)
	return &config.Config{
		Env:                "test",
		RateLimitPerMinute: 0,
		StoreDriver:        "sqlite",
		DatabaseURL:        filepath.Join(t.TempDir(), "calo.db"),
		AdminUsername:      testAdmin,
		AdminPasswordHash:  string(hash),
		SessionSecret:      "test-session-secret",
		SessionTTLHours:    24,
		UploadMaxBytes:     5 << 20,
	}
}

func newTestServer(t *testing.T, cfg *config.Config) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := infra.OpenStore(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close(context.Background()) })

	srv := httptest.NewServer(New(cfg, Deps{Store: store}))
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, srv *httptest.Server, method, path string, body any, token string) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, srv.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

// login returns the session token taken from the cookie the server sets.
func login(t *testing.T, srv *httptest.Server) string {
	t.Helper()
	resp := do(t, srv, http.MethodPost, "/auth/login", map[string]string{"username": testAdmin, "password": testPassword}, "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	for _, ck := range resp.Cookies() {
		if ck.Name == middleware.SessionCookie {
			assert.True(t, ck.HttpOnly)
			return ck.Value
		}
	}
	t.Fatalf("login did not set %s", middleware.SessionCookie)
	return ""
}

type categoryList struct {
	Categories []struct {
		InternalID string `json:"_id"`
		Slug       string `json:"id"`
		Name       string `json:"name"`
		Emoji      string `json:"emoji"`
	} `json:"categories"`
}

type catalog struct {
	Categories []map[string]any `json:"categories"`
	Products   []struct {
		ID           int64  `json:"id"`
		Name         string `json:"name"`
		Category     string `json:"category"`
		CategoryInfo struct {
			Name string `json:"name"`
		} `json:"categoryInfo"`
	} `json:"products"`
}

func product(id int64, name, category string) map[string]any {
	return map[string]any{
		"id":                  id,
		"name":                name,
		"images":              []string{"/images/products/" + category + ".jpg"},
		"description":         "Descripción corta",
		"detailedDescription": "Descripción detallada",
		"features":            []string{"Resistente"},
		"category":            category,
	}
}

// ── Tests ────────────────────────────────────────────────────────────────────

// runCatalogFlow drives the admin workflow end to end against whatever store
// cfg selects.
func runCatalogFlow(t *testing.T, srv *httptest.Server) {
	t.Helper()

	// Writes are gated.
	resp := do(t, srv, http.MethodPost, "/categories", map[string]string{"id": "epp", "name": "EPP", "description": "x"}, "")
	resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	token := login(t, srv)

	// Create two categories, then reject a duplicate slug.
	for _, c := range []map[string]string{
		{"id": "epp", "name": "Elementos de Protección", "description": "Cascos, guantes, protectores y más"},
		{"id": "ropa-de-lluvia", "name": "Ropa de lluvia", "description": "Camperas y pilotos"},
	} {
		resp = do(t, srv, http.MethodPost, "/categories", c, token)
		resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}
	resp = do(t, srv, http.MethodPost, "/categories", map[string]string{"id": "epp", "name": "Otra", "description": "x"}, token)
	resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = do(t, srv, http.MethodPost, "/categories", map[string]string{"id": "EPP 2", "name": "Otra", "description": "x"}, token)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var cats categoryList
	decodeJSON(t, do(t, srv, http.MethodGet, "/categories", nil, ""), &cats)
	require.Len(t, cats.Categories, 2)
	ids := map[string]string{}
	for _, c := range cats.Categories {
		ids[c.Slug] = c.InternalID
	}
	assert.Equal(t, "🦺", cats.Categories[0].Emoji)

	// Invalid product set writes nothing.
	bad := product(0, "Casco", "epp")
	bad["images"] = []string{}
	resp = do(t, srv, http.MethodPost, "/products", map[string]any{"products": []any{product(1, "Guante", "epp"), bad}}, token)
	var verr struct {
		Fields map[string]string `json:"fields"`
	}
	decodeJSON(t, resp, &verr)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, verr.Fields, "products[1].images")

	var cat catalog
	decodeJSON(t, do(t, srv, http.MethodGet, "/products", nil, ""), &cat)
	assert.Empty(t, cat.Products)

	// Valid set replaces the products.
	resp = do(t, srv, http.MethodPost, "/products", map[string]any{"products": []any{
		product(9, "Casco Industrial con Barbuquejo", "epp"),
		product(0, "Piloto de lluvia", "ropa-de-lluvia"),
	}}, token)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	decodeJSON(t, do(t, srv, http.MethodGet, "/products", nil, ""), &cat)
	require.Len(t, cat.Products, 2)
	assert.Equal(t, int64(9), cat.Products[0].ID)
	assert.Equal(t, "Elementos de Protección", cat.Products[0].CategoryInfo.Name)
	assert.NotZero(t, cat.Products[1].ID)

	// Updating never changes the slug.
	resp = do(t, srv, http.MethodPost, "/categories", map[string]string{"_id": ids["epp"], "id": "otro", "name": "EPP", "description": "Protección"}, token)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeJSON(t, do(t, srv, http.MethodGet, "/categories", nil, ""), &cats)
	assert.Equal(t, "epp", cats.Categories[0].Slug)
	assert.Equal(t, "EPP", cats.Categories[0].Name)

	// A referenced category cannot be deleted.
	resp = do(t, srv, http.MethodDelete, "/categories?id="+ids["epp"], nil, token)
	var inUse struct {
		HasProducts  bool  `json:"hasProducts"`
		ProductCount int64 `json:"productCount"`
	}
	decodeJSON(t, resp, &inUse)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.True(t, inUse.HasProducts)
	assert.Equal(t, int64(1), inUse.ProductCount)

	// Once its products are gone it can.
	resp = do(t, srv, http.MethodPost, "/products", map[string]any{"products": []any{product(0, "Piloto de lluvia", "ropa-de-lluvia")}}, token)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp = do(t, srv, http.MethodDelete, "/categories?id="+ids["epp"], nil, token)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = do(t, srv, http.MethodDelete, "/categories?id="+ids["epp"], nil, token)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCatalogFlow_SQLite(t *testing.T) {
	srv := newTestServer(t, testConfig(t))
	runCatalogFlow(t, srv)
}

func TestLogin_WrongPassword(t *testing.T) {
	srv := newTestServer(t, testConfig(t))

	resp := do(t, srv, http.MethodPost, "/auth/login", map[string]string{"username": testAdmin, "password": "nope123"}, "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Empty(t, resp.Cookies())
}

func TestSession_AndHealth(t *testing.T) {
	srv := newTestServer(t, testConfig(t))
	token := login(t, srv)

	var sess struct {
		User struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"user"`
	}
	resp := do(t, srv, http.MethodGet, "/auth/session", nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeJSON(t, resp, &sess)
	assert.Equal(t, "1", sess.User.ID)
	assert.Equal(t, testAdmin, sess.User.Name)

	var health map[string]any
	resp = do(t, srv, http.MethodGet, "/health", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeJSON(t, resp, &health)
	assert.Equal(t, "connected", health["store"])
	assert.Equal(t, "disabled", health["cache"])
}

func TestUpload_WithoutImageHost(t *testing.T) {
	srv := newTestServer(t, testConfig(t))
	token := login(t, srv)

	// Without credentials the gateway answers before touching the body.
	resp := do(t, srv, http.MethodDelete, "/upload?public_id=calo-products/abc", nil, token)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestSwaggerUI_OnlyOutsideProduction(t *testing.T) {
	srv := newTestServer(t, testConfig(t))
	resp := do(t, srv, http.MethodGet, "/swagger/index.html", nil, "")
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cfg := testConfig(t)
	cfg.Env = "production"
	srv = newTestServer(t, cfg)
	resp = do(t, srv, http.MethodGet, "/swagger/index.html", nil, "")
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	gin.SetMode(gin.TestMode)
}
