package api_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forkful/recipe-api/internal/models"
	"github.com/forkful/recipe-api/internal/testhelpers"
	"github.com/forkful/recipe-api/internal/types"
)

func TestListTagsEndpoint(t *testing.T) {
	app := newTestApp(t)
	user, token := testhelpers.CreateTestUserAndToken(t, app.db, "cook@example.com")
	other := testhelpers.CreateTestUser(t, app.db, "other@example.com")

	for _, name := range []string{"Breakfast", "Vegan"} {
		require.NoError(t, app.db.Create(&models.Tag{UserID: user.ID, Name: name}).Error)
	}
	require.NoError(t, app.db.Create(&models.Tag{UserID: other.ID, Name: "Theirs"}).Error)

	w := app.request(t, http.MethodGet, "/api/v1/tags", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Tags []types.AttributeResponse `json:"tags"`
	}
	decodeJSON(t, w, &resp)
	require.Len(t, resp.Tags, 2)
	assert.Equal(t, "Vegan", resp.Tags[0].Name)
	assert.Equal(t, "Breakfast", resp.Tags[1].Name)
}

func TestUpdateTagEndpoint(t *testing.T) {
	app := newTestApp(t)
	user, token := testhelpers.CreateTestUserAndToken(t, app.db, "cook@example.com")

	tag := models.Tag{UserID: user.ID, Name: "Dessert"}
	require.NoError(t, app.db.Create(&tag).Error)

	w := app.request(t, http.MethodPatch, fmt.Sprintf("/api/v1/tags/%d", tag.ID), token, gin.H{
		"name": "Dinner",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp types.AttributeResponse
	decodeJSON(t, w, &resp)
	assert.Equal(t, tag.ID, resp.ID)
	assert.Equal(t, "Dinner", resp.Name)
}

func TestUpdateTagEndpointCrossUser(t *testing.T) {
	app := newTestApp(t)
	user, _ := testhelpers.CreateTestUserAndToken(t, app.db, "cook@example.com")
	_, otherToken := testhelpers.CreateTestUserAndToken(t, app.db, "other@example.com")

	tag := models.Tag{UserID: user.ID, Name: "Dessert"}
	require.NoError(t, app.db.Create(&tag).Error)

	w := app.request(t, http.MethodPatch, fmt.Sprintf("/api/v1/tags/%d", tag.ID), otherToken, gin.H{
		"name": "Dinner",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteTagEndpoint(t *testing.T) {
	app := newTestApp(t)
	user, token := testhelpers.CreateTestUserAndToken(t, app.db, "cook@example.com")

	tag := models.Tag{UserID: user.ID, Name: "Dessert"}
	require.NoError(t, app.db.Create(&tag).Error)

	w := app.request(t, http.MethodDelete, fmt.Sprintf("/api/v1/tags/%d", tag.ID), token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = app.request(t, http.MethodDelete, fmt.Sprintf("/api/v1/tags/%d", tag.ID), token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListIngredientsEndpoint(t *testing.T) {
	app := newTestApp(t)
	user, token := testhelpers.CreateTestUserAndToken(t, app.db, "cook@example.com")

	require.NoError(t, app.db.Create(&models.Ingredient{UserID: user.ID, Name: "Salt"}).Error)

	w := app.request(t, http.MethodGet, "/api/v1/ingredients", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Ingredients []types.AttributeResponse `json:"ingredients"`
	}
	decodeJSON(t, w, &resp)
	require.Len(t, resp.Ingredients, 1)
	assert.Equal(t, "Salt", resp.Ingredients[0].Name)
}

func TestUpdateIngredientEndpoint(t *testing.T) {
	app := newTestApp(t)
	user, token := testhelpers.CreateTestUserAndToken(t, app.db, "cook@example.com")

	ingredient := models.Ingredient{UserID: user.ID, Name: "Salt"}
	require.NoError(t, app.db.Create(&ingredient).Error)

	w := app.request(t, http.MethodPut, fmt.Sprintf("/api/v1/ingredients/%d", ingredient.ID), token, gin.H{
		"name": "Sea Salt",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp types.AttributeResponse
	decodeJSON(t, w, &resp)
	assert.Equal(t, "Sea Salt", resp.Name)
}
