package recipe

import "errors"

// Domain errors for recipe operations

var (
	// Save validation errors; messages are shown to the user as-is
	ErrTitleRequired      = errors.New("Recipe title is required")
	ErrIngredientRequired = errors.New("At least one ingredient is required")
	ErrStepRequired       = errors.New("At least one step is required")

	// Field errors
	ErrInvalidCategory = errors.New("unknown recipe category")
	ErrInvalidUnit     = errors.New("unknown ingredient unit")
	ErrInvalidServings = errors.New("servings must be greater than 0")
	ErrInvalidRating   = errors.New("rating must be between 0 and 5")

	ErrRecipeNotFound = errors.New("recipe not found")
)
