package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forkful/recipe-api/internal/models"
	"github.com/forkful/recipe-api/internal/service"
	"github.com/forkful/recipe-api/internal/testhelpers"
	"github.com/forkful/recipe-api/internal/types"
)

func TestTagListOrderedByNameDesc(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	user := testhelpers.CreateTestUser(t, db, "owner@example.com")
	tags := service.NewAttributeService[models.Tag](db, service.TagConfig)

	for _, name := range []string{"Breakfast", "Vegan", "Dessert"} {
		require.NoError(t, db.Create(&models.Tag{UserID: user.ID, Name: name}).Error)
	}

	list, err := tags.List(user.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Vegan", list[0].Name)
	assert.Equal(t, "Dessert", list[1].Name)
	assert.Equal(t, "Breakfast", list[2].Name)
}

func TestTagListOwnerScoped(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	user := testhelpers.CreateTestUser(t, db, "owner@example.com")
	other := testhelpers.CreateTestUser(t, db, "other@example.com")
	tags := service.NewAttributeService[models.Tag](db, service.TagConfig)

	require.NoError(t, db.Create(&models.Tag{UserID: user.ID, Name: "Mine"}).Error)
	require.NoError(t, db.Create(&models.Tag{UserID: other.ID, Name: "Theirs"}).Error)

	list, err := tags.List(user.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Mine", list[0].Name)
}

func TestTagUpdate(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	user := testhelpers.CreateTestUser(t, db, "owner@example.com")
	tags := service.NewAttributeService[models.Tag](db, service.TagConfig)

	tag := models.Tag{UserID: user.ID, Name: "Dessert"}
	require.NoError(t, db.Create(&tag).Error)

	updated, err := tags.Update(user.ID, tag.ID, &types.UpdateAttributeRequest{Name: "Dinner"})
	require.NoError(t, err)
	assert.Equal(t, "Dinner", updated.Name)
	assert.Equal(t, user.ID, updated.UserID)
}

func TestTagUpdateCrossUserNotFound(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	user := testhelpers.CreateTestUser(t, db, "owner@example.com")
	other := testhelpers.CreateTestUser(t, db, "other@example.com")
	tags := service.NewAttributeService[models.Tag](db, service.TagConfig)

	tag := models.Tag{UserID: user.ID, Name: "Dessert"}
	require.NoError(t, db.Create(&tag).Error)

	_, err := tags.Update(other.ID, tag.ID, &types.UpdateAttributeRequest{Name: "Dinner"})
	assert.ErrorIs(t, err, service.ErrNotFound)

	var stored models.Tag
	require.NoError(t, db.First(&stored, tag.ID).Error)
	assert.Equal(t, "Dessert", stored.Name)
}

func TestTagUpdateEmptyNameRejected(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	user := testhelpers.CreateTestUser(t, db, "owner@example.com")
	tags := service.NewAttributeService[models.Tag](db, service.TagConfig)

	tag := models.Tag{UserID: user.ID, Name: "Dessert"}
	require.NoError(t, db.Create(&tag).Error)

	_, err := tags.Update(user.ID, tag.ID, &types.UpdateAttributeRequest{Name: "   "})
	var verr *types.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestTagDeleteRemovesJoinRows(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	user := testhelpers.CreateTestUser(t, db, "owner@example.com")
	recipes := service.NewRecipeService(db)
	tags := service.NewAttributeService[models.Tag](db, service.TagConfig)

	req := sampleCreateRequest()
	req.Tags = []types.AttributeInput{{Name: "Dessert"}}
	recipe, err := recipes.CreateRecipe(user.ID, req)
	require.NoError(t, err)
	require.Len(t, recipe.Tags, 1)
	tagID := recipe.Tags[0].ID

	require.NoError(t, tags.Delete(user.ID, tagID))

	var links int64
	require.NoError(t, db.Model(&models.RecipeTag{}).Where("tag_id = ?", tagID).Count(&links).Error)
	assert.Zero(t, links)

	// The recipe itself is unaffected.
	stored, err := recipes.GetRecipe(user.ID, recipe.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.Tags)
}

func TestTagDeleteCrossUserNotFound(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	user := testhelpers.CreateTestUser(t, db, "owner@example.com")
	other := testhelpers.CreateTestUser(t, db, "other@example.com")
	tags := service.NewAttributeService[models.Tag](db, service.TagConfig)

	tag := models.Tag{UserID: user.ID, Name: "Dessert"}
	require.NoError(t, db.Create(&tag).Error)

	assert.ErrorIs(t, tags.Delete(other.ID, tag.ID), service.ErrNotFound)
}

func TestIngredientServiceUsesOwnJoinTable(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	user := testhelpers.CreateTestUser(t, db, "owner@example.com")
	recipes := service.NewRecipeService(db)
	ingredients := service.NewAttributeService[models.Ingredient](db, service.IngredientConfig)

	req := sampleCreateRequest()
	req.Ingredients = []types.AttributeInput{{Name: "Salt"}}
	recipe, err := recipes.CreateRecipe(user.ID, req)
	require.NoError(t, err)
	require.Len(t, recipe.Ingredients, 1)

	list, err := ingredients.List(user.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Salt", list[0].Name)

	require.NoError(t, ingredients.Delete(user.ID, list[0].ID))

	var links int64
	require.NoError(t, db.Model(&models.RecipeIngredient{}).Where("ingredient_id = ?", list[0].ID).Count(&links).Error)
	assert.Zero(t, links)
}
