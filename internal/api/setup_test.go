package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/forkful/recipe-api/internal/api"
	"github.com/forkful/recipe-api/internal/models"
	"github.com/forkful/recipe-api/internal/router"
	"github.com/forkful/recipe-api/internal/service"
	"github.com/forkful/recipe-api/internal/storage"
	"github.com/forkful/recipe-api/internal/testhelpers"
)

// testApp bundles the wired router with the backing database so tests
// can drive HTTP and then inspect state directly.
type testApp struct {
	router *gin.Engine
	db     *gorm.DB
	images *storage.LocalStore
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupTestDB(t)

	images, err := storage.NewLocalStore(t.TempDir(), "/media")
	require.NoError(t, err)

	authService := service.NewAuthService(db, testhelpers.TestJWTSecret)
	recipeService := service.NewRecipeService(db)
	tagService := service.NewAttributeService[models.Tag](db, service.TagConfig)
	ingredientService := service.NewAttributeService[models.Ingredient](db, service.IngredientConfig)

	engine := router.SetupRouter(
		api.NewUserHandler(authService),
		api.NewRecipeHandler(recipeService, images),
		api.NewAttributeHandler(tagService, "tags"),
		api.NewAttributeHandler(ingredientService, "ingredients"),
		authService,
		nil,
	)

	return &testApp{router: engine, db: db, images: images}
}

// request performs a JSON request against the app. token may be empty
// for public routes.
func (a *testApp) request(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

// upload performs a multipart upload of a single "image" form file.
func (a *testApp) upload(t *testing.T, path, token, filename string, data []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

// pngBytes is a 1x1 transparent PNG, enough for content sniffing.
var pngBytes = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a,
	0x00, 0x00, 0x00, 0x0d, 0x49, 0x48, 0x44, 0x52,
	0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4,
	0x89, 0x00, 0x00, 0x00, 0x0d, 0x49, 0x44, 0x41,
	0x54, 0x78, 0x9c, 0x62, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00,
	0x00, 0x00, 0x00, 0x49, 0x45, 0x4e, 0x44, 0xae,
	0x42, 0x60, 0x82,
}
