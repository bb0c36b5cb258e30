package server

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forkful/recipe-api/config"
	"github.com/forkful/recipe-api/internal/testhelpers"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		ServerHost:   "localhost",
		ServerPort:   "8080",
		JWTSecret:    testhelpers.TestJWTSecret,
		MediaDir:     filepath.Join(t.TempDir(), "media"),
		MediaBaseURL: "/media",
	}
}

func TestNew(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := testhelpers.SetupTestDB(t)

	srv, err := New(testConfig(t), db, nil)
	require.NoError(t, err)
	require.NotNil(t, srv)

	// Protected routes are wired behind auth.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/recipes", nil)
	srv.engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Public registration is reachable.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/v1/users", nil)
	srv.engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
