package router

import (
	"github.com/gin-gonic/gin"

	"github.com/forkful/recipe-api/internal/api"
	"github.com/forkful/recipe-api/internal/middleware"
	"github.com/forkful/recipe-api/internal/models"
	"github.com/forkful/recipe-api/internal/service"
)

// SetupRouter configures the application routes. rateLimiter may be nil,
// in which case the image-upload route is unthrottled.
func SetupRouter(
	userHandler *api.UserHandler,
	recipeHandler *api.RecipeHandler,
	tagHandler *api.AttributeHandler[models.Tag],
	ingredientHandler *api.AttributeHandler[models.Ingredient],
	authService *service.AuthService,
	rateLimiter *middleware.RateLimiter,
) *gin.Engine {
	router := gin.Default()

	// CORS middleware
	router.Use(middleware.CORS())

	// API v1 routes
	v1 := router.Group("/api/v1")

	// Public user routes
	users := v1.Group("/users")
	{
		users.POST("", userHandler.Register)
		users.POST("/token", userHandler.Token)
	}

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authService))
	{
		me := protected.Group("/users/me")
		{
			me.GET("", userHandler.Me)
			me.PUT("", userHandler.UpdateMe)
			me.PATCH("", userHandler.UpdateMe)
		}

		recipes := protected.Group("/recipes")
		{
			recipes.GET("", recipeHandler.ListRecipes)
			recipes.POST("", recipeHandler.CreateRecipe)
			recipes.GET("/:id", recipeHandler.GetRecipe)
			recipes.PUT("/:id", recipeHandler.UpdateRecipe)
			recipes.PATCH("/:id", recipeHandler.UpdateRecipe)
			recipes.DELETE("/:id", recipeHandler.DeleteRecipe)

			upload := recipes.Group("")
			if rateLimiter != nil {
				upload.Use(rateLimiter.RateLimitMiddleware())
			}
			upload.POST("/:id/upload-image", recipeHandler.UploadImage)
		}

		tags := protected.Group("/tags")
		{
			tags.GET("", tagHandler.List)
			tags.PUT("/:id", tagHandler.Update)
			tags.PATCH("/:id", tagHandler.Update)
			tags.DELETE("/:id", tagHandler.Delete)
		}

		ingredients := protected.Group("/ingredients")
		{
			ingredients.GET("", ingredientHandler.List)
			ingredients.PUT("/:id", ingredientHandler.Update)
			ingredients.PATCH("/:id", ingredientHandler.Update)
			ingredients.DELETE("/:id", ingredientHandler.Delete)
		}
	}

	return router
}
