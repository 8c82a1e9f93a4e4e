package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-backend/internal/config"
	"catalog-backend/pkg/container"
	"catalog-backend/pkg/jwt"
)

func setupApp(t *testing.T, authEnabled bool) (*gin.Engine, *container.Container) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	t.Setenv("DB_DRIVER", config.DriverSQLite)
	t.Setenv("SQLITE_PATH", filepath.Join(t.TempDir(), "catalog.db"))
	cfg, err := config.Load()
	require.NoError(t, err)
	cfg.JWT.AuthEnabled = authEnabled

	c, err := container.NewContainer(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(c.Cleanup)

	return SetupRouter(c), c
}

func call(r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouter_EndToEnd(t *testing.T) {
	r, _ := setupApp(t, false)

	w := call(r, http.MethodPost, "/api/v1/authors", `{"name":"Ann","birthDate":"1970-01-01"}`, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = call(r, http.MethodPost, "/api/v1/books", `{"title":"Go","price":10,"publicationStatus":0,"authorIds":[1]}`, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = call(r, http.MethodPatch, "/api/v1/books/1", `{"publicationStatus":1}`, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = call(r, http.MethodGet, "/api/v1/authors/1/books", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"title":"Go"`)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = call(r, http.MethodGet, "/api/v1/health", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"database":{"status":"healthy"}`)

	w = call(r, http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `catalog_http_requests_total{method="POST",route="/api/v1/books",status="201"} 1`)
}

func TestRouter_WriteRoutesRequireToken(t *testing.T) {
	r, c := setupApp(t, true)
	body := `{"name":"Ann","birthDate":"1970-01-01"}`

	w := call(r, http.MethodPost, "/api/v1/authors", body, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token, err := c.JWTManager.GenerateAccessToken("ops", jwt.RoleWriter, time.Hour)
	require.NoError(t, err)

	w = call(r, http.MethodPost, "/api/v1/authors", body, token)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = call(r, http.MethodGet, "/api/v1/authors/1", "", "")
	assert.Equal(t, http.StatusOK, w.Code, "reads stay public")
}
