package models

import (
	"time"

	"gorm.io/gorm"
)

// Recipe is the central aggregate. The owner is bound once at creation
// and never changes; tags and ingredients are unordered sets linked
// through explicit join tables.
type Recipe struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
	UserID      uint           `gorm:"not null;index" json:"-"`
	User        User           `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Title       string         `gorm:"size:255;not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	TimeMinutes int            `gorm:"not null" json:"time_minutes"`
	Price       float64        `gorm:"type:decimal(5,2);not null" json:"price"`
	Link        string         `gorm:"size:255" json:"link"`
	ImagePath   string         `gorm:"size:255" json:"-"`
	Tags        []Tag          `gorm:"many2many:recipe_tags" json:"tags"`
	Ingredients []Ingredient   `gorm:"many2many:recipe_ingredients" json:"ingredients"`
}

// Tag is a per-user label. Names are only unique within a user; two
// users can each own a "Thai" tag and never share the row.
type Tag struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_tags_user_name" json:"-"`
	Name      string    `gorm:"size:255;not null;uniqueIndex:idx_tags_user_name" json:"name"`
}

// Ingredient has the same per-user scoping as Tag.
type Ingredient struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_ingredients_user_name" json:"-"`
	Name      string    `gorm:"size:255;not null;uniqueIndex:idx_ingredients_user_name" json:"name"`
}

// RecipeTag is the recipe/tag join row. Kept as an explicit model so the
// association table can be queried and cleaned up directly.
type RecipeTag struct {
	RecipeID uint `gorm:"primaryKey"`
	TagID    uint `gorm:"primaryKey"`
}

// RecipeIngredient is the recipe/ingredient join row.
type RecipeIngredient struct {
	RecipeID     uint `gorm:"primaryKey"`
	IngredientID uint `gorm:"primaryKey"`
}
