package types

import "github.com/forkful/recipe-api/internal/models"

// AttributeResponse is the wire shape for a tag or ingredient.
type AttributeResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// RecipeResponse is the list wire shape for a recipe.
type RecipeResponse struct {
	ID          uint                `json:"id"`
	Title       string              `json:"title"`
	TimeMinutes int                 `json:"time_minutes"`
	Price       float64             `json:"price"`
	Link        string              `json:"link"`
	Tags        []AttributeResponse `json:"tags"`
	Ingredients []AttributeResponse `json:"ingredients"`
}

// RecipeDetailResponse additionally carries the description and image.
type RecipeDetailResponse struct {
	RecipeResponse
	Description string `json:"description"`
	Image       string `json:"image"`
}

// RecipeImageResponse is returned from the image upload endpoint.
type RecipeImageResponse struct {
	ID    uint   `json:"id"`
	Image string `json:"image"`
}

// UserResponse is the wire shape for the caller's own profile.
type UserResponse struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// TokenResponse is returned from the token endpoint.
type TokenResponse struct {
	Token string `json:"token"`
}

func NewAttributeResponses[T models.Tag | models.Ingredient](attrs []T) []AttributeResponse {
	out := make([]AttributeResponse, 0, len(attrs))
	for _, a := range attrs {
		switch v := any(a).(type) {
		case models.Tag:
			out = append(out, AttributeResponse{ID: v.ID, Name: v.Name})
		case models.Ingredient:
			out = append(out, AttributeResponse{ID: v.ID, Name: v.Name})
		}
	}
	return out
}

// NewRecipeResponse builds the list representation of a recipe.
func NewRecipeResponse(r *models.Recipe) RecipeResponse {
	return RecipeResponse{
		ID:          r.ID,
		Title:       r.Title,
		TimeMinutes: r.TimeMinutes,
		Price:       r.Price,
		Link:        r.Link,
		Tags:        NewAttributeResponses(r.Tags),
		Ingredients: NewAttributeResponses(r.Ingredients),
	}
}

// NewRecipeDetailResponse builds the detail representation. The image
// value is the resolved URL, which depends on the configured store, so
// the caller supplies it.
func NewRecipeDetailResponse(r *models.Recipe, imageURL string) RecipeDetailResponse {
	return RecipeDetailResponse{
		RecipeResponse: NewRecipeResponse(r),
		Description:    r.Description,
		Image:          imageURL,
	}
}

func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{ID: u.ID, Email: u.Email, Name: u.Name}
}
