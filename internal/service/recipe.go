package service

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/forkful/recipe-api/internal/models"
	"github.com/forkful/recipe-api/internal/types"
)

// RecipeService handles recipe operations. Every query is scoped to the
// calling user; a row owned by someone else behaves exactly like a row
// that does not exist.
type RecipeService struct {
	db *gorm.DB
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// ListRecipes returns the caller's recipes, most recent first.
func (s *RecipeService) ListRecipes(userID uint) ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := s.db.
		Preload("Tags").
		Preload("Ingredients").
		Where("user_id = ?", userID).
		Order("id DESC").
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	return recipes, nil
}

// GetRecipe retrieves one of the caller's recipes by id.
func (s *RecipeService) GetRecipe(userID, id uint) (*models.Recipe, error) {
	return getOwnedRecipe(s.db, userID, id)
}

// CreateRecipe validates the payload, creates the recipe bound to the
// caller and reconciles the nested tag/ingredient descriptors, all in
// one transaction.
func (s *RecipeService) CreateRecipe(userID uint, req *types.CreateRecipeRequest) (*models.Recipe, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	recipe := models.Recipe{
		UserID:      userID,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		TimeMinutes: req.TimeMinutes,
		Price:       req.Price,
		Link:        req.Link,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&recipe).Error; err != nil {
			return err
		}
		if err := reconcile(tx, &recipe, "Tags", userID, req.Tags, newTag); err != nil {
			return err
		}
		return reconcile(tx, &recipe, "Ingredients", userID, req.Ingredients, newIngredient)
	})
	if err != nil {
		return nil, err
	}

	return s.GetRecipe(userID, recipe.ID)
}

// UpdateRecipe applies a partial or full update to one of the caller's
// recipes. A present tags/ingredients key replaces that association set
// entirely (an empty list clears it); an absent key leaves it untouched.
// The owner is never taken from the payload.
func (s *RecipeService) UpdateRecipe(userID, id uint, req *types.UpdateRecipeRequest, full bool) (*models.Recipe, error) {
	if err := req.Validate(full); err != nil {
		return nil, err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		recipe, err := getOwnedRecipe(tx, userID, id)
		if err != nil {
			return err
		}

		if req.Tags != nil {
			if err := tx.Model(recipe).Association("Tags").Clear(); err != nil {
				return err
			}
			if err := reconcile(tx, recipe, "Tags", userID, *req.Tags, newTag); err != nil {
				return err
			}
		}
		if req.Ingredients != nil {
			if err := tx.Model(recipe).Association("Ingredients").Clear(); err != nil {
				return err
			}
			if err := reconcile(tx, recipe, "Ingredients", userID, *req.Ingredients, newIngredient); err != nil {
				return err
			}
		}

		updates := map[string]interface{}{}
		if req.Title != nil {
			updates["title"] = strings.TrimSpace(*req.Title)
		}
		if req.Description != nil {
			updates["description"] = *req.Description
		}
		if req.TimeMinutes != nil {
			updates["time_minutes"] = *req.TimeMinutes
		}
		if req.Price != nil {
			updates["price"] = *req.Price
		}
		if req.Link != nil {
			updates["link"] = *req.Link
		}
		if len(updates) > 0 {
			if err := tx.Model(recipe).Updates(updates).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetRecipe(userID, id)
}

// DeleteRecipe removes one of the caller's recipes along with its
// association rows. Attribute rows themselves persist.
func (s *RecipeService) DeleteRecipe(userID, id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		recipe, err := getOwnedRecipe(tx, userID, id)
		if err != nil {
			return err
		}
		if err := tx.Model(recipe).Association("Tags").Clear(); err != nil {
			return err
		}
		if err := tx.Model(recipe).Association("Ingredients").Clear(); err != nil {
			return err
		}
		return tx.Delete(recipe).Error
	})
}

// SetImage records the stored image reference on one of the caller's
// recipes and returns the previous reference so the old object can be
// removed.
func (s *RecipeService) SetImage(userID, id uint, imagePath string) (string, error) {
	var previous string
	err := s.db.Transaction(func(tx *gorm.DB) error {
		recipe, err := getOwnedRecipe(tx, userID, id)
		if err != nil {
			return err
		}
		previous = recipe.ImagePath
		return tx.Model(recipe).Update("image_path", imagePath).Error
	})
	if err != nil {
		return "", err
	}
	return previous, nil
}

func getOwnedRecipe(tx *gorm.DB, userID, id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := tx.
		Preload("Tags").
		Preload("Ingredients").
		Where("id = ? AND user_id = ?", id, userID).
		First(&recipe).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

func newTag(userID uint, name string) models.Tag {
	return models.Tag{UserID: userID, Name: name}
}

func newIngredient(userID uint, name string) models.Ingredient {
	return models.Ingredient{UserID: userID, Name: name}
}

// reconcile turns name-only descriptors into persisted rows owned by the
// caller and attaches them to the recipe with set-union semantics.
// Duplicate names collapse to a single row, and a row owned by another
// user is never reused even when the name matches.
func reconcile[T any](tx *gorm.DB, recipe *models.Recipe, assoc string, userID uint, descriptors []types.AttributeInput, build func(userID uint, name string) T) error {
	seen := make(map[string]struct{}, len(descriptors))
	for _, d := range descriptors {
		name := strings.TrimSpace(d.Name)
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		var row T
		err := tx.Where("user_id = ? AND name = ?", userID, name).First(&row).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			row = build(userID, name)
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		if err := tx.Model(recipe).Association(assoc).Append(&row); err != nil {
			return err
		}
	}
	return nil
}
