package types

import (
	"strings"
	"unicode"
)

// AttributeInput is a name-only descriptor for a tag or ingredient in a
// recipe payload.
type AttributeInput struct {
	Name string `json:"name"`
}

// RegisterRequest represents the request body for user registration
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// Validate runs the registration checks in order; the first failure
// aborts the request before anything touches storage.
func (r *RegisterRequest) Validate() error {
	if err := validateEmail(r.Email); err != nil {
		return err
	}
	return validatePassword(r.Password)
}

// LoginRequest represents the request body for obtaining a token
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateUserRequest represents a partial update of the caller's own
// profile. Nil fields are left unchanged.
type UpdateUserRequest struct {
	Email    *string `json:"email"`
	Name     *string `json:"name"`
	Password *string `json:"password"`
}

func (r *UpdateUserRequest) Validate() error {
	if r.Email != nil {
		if err := validateEmail(*r.Email); err != nil {
			return err
		}
	}
	if r.Password != nil {
		if err := validatePassword(*r.Password); err != nil {
			return err
		}
	}
	return nil
}

// CreateRecipeRequest represents the request body for creating a recipe.
// It deliberately carries no owner field: ownership is always bound from
// the authenticated caller.
type CreateRecipeRequest struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	TimeMinutes int              `json:"time_minutes"`
	Price       float64          `json:"price"`
	Link        string           `json:"link"`
	Tags        []AttributeInput `json:"tags"`
	Ingredients []AttributeInput `json:"ingredients"`
}

func (r *CreateRecipeRequest) Validate() error {
	checks := []func() error{
		func() error { return validateTitle(r.Title) },
		func() error { return validateTimeMinutes(r.TimeMinutes) },
		func() error { return validatePrice(r.Price) },
		func() error { return validateLink(r.Link) },
	}
	for _, check := range checks {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}

// UpdateRecipeRequest represents a recipe update. Pointer fields
// distinguish "key absent, leave alone" from "key present, apply". This
// includes Tags/Ingredients, where a present-but-empty list clears the
// association set.
type UpdateRecipeRequest struct {
	Title       *string           `json:"title"`
	Description *string           `json:"description"`
	TimeMinutes *int              `json:"time_minutes"`
	Price       *float64          `json:"price"`
	Link        *string           `json:"link"`
	Tags        *[]AttributeInput `json:"tags"`
	Ingredients *[]AttributeInput `json:"ingredients"`
}

// Validate checks the fields present in the payload. When full is true
// (PUT semantics) the required scalar fields must all be present.
func (r *UpdateRecipeRequest) Validate(full bool) error {
	if full {
		if r.Title == nil {
			return NewValidationError("title", "this field is required")
		}
		if r.TimeMinutes == nil {
			return NewValidationError("time_minutes", "this field is required")
		}
		if r.Price == nil {
			return NewValidationError("price", "this field is required")
		}
	}
	if r.Title != nil {
		if err := validateTitle(*r.Title); err != nil {
			return err
		}
	}
	if r.TimeMinutes != nil {
		if err := validateTimeMinutes(*r.TimeMinutes); err != nil {
			return err
		}
	}
	if r.Price != nil {
		if err := validatePrice(*r.Price); err != nil {
			return err
		}
	}
	if r.Link != nil {
		if err := validateLink(*r.Link); err != nil {
			return err
		}
	}
	return nil
}

// UpdateAttributeRequest renames a tag or ingredient.
type UpdateAttributeRequest struct {
	Name string `json:"name"`
}

func (r *UpdateAttributeRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return NewValidationError("name", "name must not be empty")
	}
	return nil
}

func validateTitle(title string) error {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return NewValidationError("title", "title must not be empty")
	}
	if len(trimmed) < 3 {
		return NewValidationError("title", "title must be at least 3 characters")
	}
	return nil
}

func validateTimeMinutes(minutes int) error {
	if minutes <= 0 {
		return NewValidationError("time_minutes", "time_minutes must be greater than 0")
	}
	return nil
}

func validatePrice(price float64) error {
	if price < 0 {
		return NewValidationError("price", "price must not be negative")
	}
	if price > 999.99 {
		return NewValidationError("price", "price must not exceed 999.99")
	}
	return nil
}

func validateLink(link string) error {
	if link == "" {
		return nil
	}
	if !strings.HasPrefix(link, "http://") && !strings.HasPrefix(link, "https://") {
		return NewValidationError("link", "link must start with http:// or https://")
	}
	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return NewValidationError("email", "this field is required")
	}
	if !strings.Contains(email, "@") || !strings.Contains(email, ".") {
		return NewValidationError("email", "enter a valid email address")
	}
	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return NewValidationError("password", "this field is required")
	}
	if len(password) < 6 {
		return NewValidationError("password", "password must be at least 6 characters")
	}
	allDigits := true
	for _, r := range password {
		if !unicode.IsDigit(r) {
			allDigits = false
			break
		}
	}
	if allDigits {
		return NewValidationError("password", "password must not be entirely numeric")
	}
	return nil
}
