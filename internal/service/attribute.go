package service

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/forkful/recipe-api/internal/models"
	"github.com/forkful/recipe-api/internal/types"
)

// AttributeConfig carries the per-entity bits that differ between tags
// and ingredients: the join table holding recipe associations and its
// attribute column.
type AttributeConfig struct {
	JoinTable  string
	JoinColumn string
}

// TagConfig and IngredientConfig are the two supported attribute kinds.
var (
	TagConfig        = AttributeConfig{JoinTable: "recipe_tags", JoinColumn: "tag_id"}
	IngredientConfig = AttributeConfig{JoinTable: "recipe_ingredients", JoinColumn: "ingredient_id"}
)

// AttributeService is a single generic implementation of tag and
// ingredient management; the entity type plus a small config struct
// replace per-kind duplicated code.
type AttributeService[T models.Tag | models.Ingredient] struct {
	db  *gorm.DB
	cfg AttributeConfig
}

func NewAttributeService[T models.Tag | models.Ingredient](db *gorm.DB, cfg AttributeConfig) *AttributeService[T] {
	return &AttributeService[T]{db: db, cfg: cfg}
}

// List returns the caller's attributes ordered by name descending.
func (s *AttributeService[T]) List(userID uint) ([]T, error) {
	var out []T
	err := s.db.
		Where("user_id = ?", userID).
		Order("name DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Update renames one of the caller's attributes. A row owned by another
// user is reported as not found.
func (s *AttributeService[T]) Update(userID, id uint, req *types.UpdateAttributeRequest) (*T, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	row, err := s.getOwned(userID, id)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if err := s.db.Model(row).Update("name", name).Error; err != nil {
		return nil, err
	}

	return s.getOwned(userID, id)
}

// Delete removes one of the caller's attributes and its recipe
// association rows.
func (s *AttributeService[T]) Delete(userID, id uint) error {
	row, err := s.getOwned(userID, id)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM "+s.cfg.JoinTable+" WHERE "+s.cfg.JoinColumn+" = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(row).Error
	})
}

func (s *AttributeService[T]) getOwned(userID, id uint) (*T, error) {
	var row T
	err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}
