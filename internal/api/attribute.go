package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/forkful/recipe-api/internal/middleware"
	"github.com/forkful/recipe-api/internal/models"
	"github.com/forkful/recipe-api/internal/service"
	"github.com/forkful/recipe-api/internal/types"
)

// AttributeHandler is the shared handler for tags and ingredients,
// parameterized by entity type. The resource name only affects the list
// response envelope.
type AttributeHandler[T models.Tag | models.Ingredient] struct {
	svc      *service.AttributeService[T]
	resource string
}

func NewAttributeHandler[T models.Tag | models.Ingredient](svc *service.AttributeService[T], resource string) *AttributeHandler[T] {
	return &AttributeHandler[T]{svc: svc, resource: resource}
}

func (h *AttributeHandler[T]) List(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	items, err := h.svc.List(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{h.resource: types.NewAttributeResponses(items)})
}

func (h *AttributeHandler[T]) Update(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req types.UpdateAttributeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	row, err := h.svc.Update(userID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.NewAttributeResponses([]T{*row})[0])
}

func (h *AttributeHandler[T]) Delete(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(userID, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
