package api

import (
	"io"
	"log"
	"net/http"
	"path"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/forkful/recipe-api/internal/middleware"
	"github.com/forkful/recipe-api/internal/service"
	"github.com/forkful/recipe-api/internal/storage"
	"github.com/forkful/recipe-api/internal/types"
)

// maxImageSize caps uploaded image payloads.
const maxImageSize = 10 << 20

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// RecipeHandler serves the owner-scoped recipe CRUD surface plus image
// upload.
type RecipeHandler struct {
	recipes *service.RecipeService
	images  storage.ImageStore
}

func NewRecipeHandler(recipes *service.RecipeService, images storage.ImageStore) *RecipeHandler {
	return &RecipeHandler{
		recipes: recipes,
		images:  images,
	}
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	recipes, err := h.recipes.ListRecipes(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	items := make([]types.RecipeResponse, 0, len(recipes))
	for i := range recipes {
		items = append(items, types.NewRecipeResponse(&recipes[i]))
	}

	c.JSON(http.StatusOK, gin.H{"recipes": items})
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	recipe, err := h.recipes.GetRecipe(userID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.NewRecipeDetailResponse(recipe, h.images.URL(recipe.ImagePath)))
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req types.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	recipe, err := h.recipes.CreateRecipe(userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, types.NewRecipeDetailResponse(recipe, h.images.URL(recipe.ImagePath)))
}

func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req types.UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	full := c.Request.Method == http.MethodPut
	recipe, err := h.recipes.UpdateRecipe(userID, id, &req, full)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.NewRecipeDetailResponse(recipe, h.images.URL(recipe.ImagePath)))
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.recipes.DeleteRecipe(userID, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// UploadImage attaches an image to one of the caller's recipes. The
// ownership check runs before the payload is inspected, and a rejected
// payload leaves any previously stored image untouched.
func (h *RecipeHandler) UploadImage(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	recipe, err := h.recipes.GetRecipe(userID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, types.NewValidationError("image", "this field is required"))
		return
	}
	if file.Size > maxImageSize {
		c.JSON(http.StatusBadRequest, types.NewValidationError("image", "image is too large"))
		return
	}

	src, err := file.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		respondError(c, err)
		return
	}

	contentType := http.DetectContentType(data)
	ext, isImage := imageExtensions[contentType]
	if !isImage {
		c.JSON(http.StatusBadRequest, types.NewValidationError("image", "upload a valid image"))
		return
	}

	name := uuid.New().String() + ext
	ctx := c.Request.Context()
	if err := h.images.Save(ctx, name, data, contentType); err != nil {
		respondError(c, err)
		return
	}

	previous, err := h.recipes.SetImage(userID, id, name)
	if err != nil {
		// Roll back the stored object so a failed DB update does not
		// leak orphaned files.
		if rmErr := h.images.Remove(ctx, name); rmErr != nil {
			log.Printf("failed to remove orphaned image %s: %v", name, rmErr)
		}
		respondError(c, err)
		return
	}

	// The upload replaces, never appends.
	if previous != "" && previous != name {
		if err := h.images.Remove(ctx, previous); err != nil {
			log.Printf("failed to remove replaced image %s: %v", path.Base(previous), err)
		}
	}

	c.JSON(http.StatusOK, types.RecipeImageResponse{
		ID:    recipe.ID,
		Image: h.images.URL(name),
	})
}
