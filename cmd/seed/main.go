// Command seed populates the database with a demo user and a handful of
// recipes. Intended for local development; safe to run repeatedly.
package main

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"github.com/forkful/recipe-api/config"
	"github.com/forkful/recipe-api/internal/database"
	"github.com/forkful/recipe-api/internal/models"
	"github.com/forkful/recipe-api/internal/service"
	"github.com/forkful/recipe-api/internal/types"
)

const (
	demoEmail    = "demo@example.com"
	demoPassword = "demopass123"
)

var demoRecipes = []types.CreateRecipeRequest{
	{
		Title:       "Shakshuka",
		Description: "Eggs poached in a spiced tomato and pepper sauce.",
		TimeMinutes: 30,
		Price:       4.50,
		Tags:        []types.AttributeInput{{Name: "Breakfast"}, {Name: "Vegetarian"}},
		Ingredients: []types.AttributeInput{{Name: "Eggs"}, {Name: "Tomatoes"}, {Name: "Bell Peppers"}},
	},
	{
		Title:       "Carbonara",
		Description: "Roman pasta with guanciale, egg and pecorino.",
		TimeMinutes: 20,
		Price:       6.75,
		Tags:        []types.AttributeInput{{Name: "Dinner"}, {Name: "Italian"}},
		Ingredients: []types.AttributeInput{{Name: "Spaghetti"}, {Name: "Guanciale"}, {Name: "Eggs"}},
	},
	{
		Title:       "Green Curry",
		Description: "Thai green curry with chicken and bamboo shoots.",
		TimeMinutes: 45,
		Price:       8.00,
		Tags:        []types.AttributeInput{{Name: "Dinner"}, {Name: "Thai"}},
		Ingredients: []types.AttributeInput{{Name: "Chicken"}, {Name: "Coconut Milk"}, {Name: "Green Curry Paste"}},
	},
	{
		Title:       "Overnight Oats",
		Description: "No-cook oats with yogurt and berries.",
		TimeMinutes: 5,
		Price:       2.25,
		Tags:        []types.AttributeInput{{Name: "Breakfast"}, {Name: "Quick"}},
		Ingredients: []types.AttributeInput{{Name: "Oats"}, {Name: "Yogurt"}, {Name: "Blueberries"}},
	},
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	authService := service.NewAuthService(db, cfg.JWTSecret)

	user, err := authService.Register(&types.RegisterRequest{
		Email:    demoEmail,
		Password: demoPassword,
		Name:     "Demo User",
	})
	if err != nil {
		// Reuse the existing demo user on repeat runs.
		var existing models.User
		if dbErr := db.Where("email = ?", demoEmail).First(&existing).Error; dbErr != nil {
			if errors.Is(dbErr, gorm.ErrRecordNotFound) {
				log.Fatalf("Failed to create demo user: %v", err)
			}
			log.Fatalf("Failed to look up demo user: %v", dbErr)
		}
		user = &existing
	}

	recipeService := service.NewRecipeService(db)

	var created int
	for i := range demoRecipes {
		req := demoRecipes[i]

		var count int64
		if err := db.Model(&models.Recipe{}).
			Where("user_id = ? AND title = ?", user.ID, req.Title).
			Count(&count).Error; err != nil {
			log.Fatalf("Failed to check for existing recipe: %v", err)
		}
		if count > 0 {
			continue
		}

		if _, err := recipeService.CreateRecipe(user.ID, &req); err != nil {
			log.Fatalf("Failed to seed recipe %q: %v", req.Title, err)
		}
		created++
	}

	log.Printf("Seeded %d recipes for %s", created, demoEmail)
}
