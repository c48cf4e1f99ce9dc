// Package inbound defines the interfaces for inbound ports (primary/driving adapters)
// These are the interfaces that the application exposes to the outside world
package inbound

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hearthhq/hearth/internal/domain/recipe"
)

// RecipeService defines the use cases for the recipe catalog
type RecipeService interface {
	// Commands
	SaveRecipe(ctx context.Context, cmd SaveRecipeCommand) (*RecipeDTO, error)
	DeleteRecipe(ctx context.Context, id uuid.UUID) error
	UpdateTags(ctx context.Context, id uuid.UUID, tags []string) (*RecipeDTO, error)
	AddToMealPlan(ctx context.Context, cmd AddToMealPlanCommand) (*MealEntryDTO, error)
	AddToShoppingList(ctx context.Context, cmd AddToShoppingListCommand) ([]ShoppingItemDTO, error)

	// Queries
	GetRecipe(ctx context.Context, id uuid.UUID) (*RecipeDTO, error)
	ListRecipes(ctx context.Context, query RecipeQuery) ([]RecipeDTO, error)
	ScaleRecipe(ctx context.Context, id uuid.UUID, factor float64) (*ScaledRecipeDTO, error)
	ScaleQuantity(quantity string, factor float64) (string, error)
	Tags(ctx context.Context, query TagQuery) (*TagsDTO, error)
}

// SaveRecipeCommand carries a full recipe. A nil ID creates a new recipe;
// an existing ID replaces that recipe.
type SaveRecipeCommand struct {
	ID          uuid.UUID
	Title       string
	Description string
	Category    recipe.Category
	PrepTime    string
	CookTime    string
	Servings    int
	Source      string
	SourceURL   string
	Image       string
	Ingredients []IngredientDTO
	Steps       []StepDTO
	Tags        []string
	Favorite    bool
	Rating      float64
}

// AddToMealPlanCommand plans a recipe on a calendar date
type AddToMealPlanCommand struct {
	RecipeID uuid.UUID
	Date     string
	MealType string
}

// AddToShoppingListCommand copies selected ingredients to the shopping list.
// An empty selection means every ingredient.
type AddToShoppingListCommand struct {
	RecipeID      uuid.UUID
	IngredientIDs []string
}

// RecipeQuery filters the catalog
type RecipeQuery struct {
	Search   string
	Category string
	Tag      string
}

// TagQuery asks for autocomplete against the vocabulary
type TagQuery struct {
	Text    string
	Applied []string
}

// RecipeDTO is the API representation of a recipe
type RecipeDTO struct {
	ID          uuid.UUID       `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Category    recipe.Category `json:"category"`
	PrepTime    string          `json:"prepTime,omitempty"`
	CookTime    string          `json:"cookTime,omitempty"`
	Servings    int             `json:"servings"`
	Source      string          `json:"source,omitempty"`
	SourceURL   string          `json:"sourceUrl,omitempty"`
	Image       string          `json:"image,omitempty"`
	Ingredients []IngredientDTO `json:"ingredients"`
	Steps       []StepDTO       `json:"steps"`
	Tags        []string        `json:"tags"`
	Favorite    bool            `json:"favorite"`
	Rating      float64         `json:"rating"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// IngredientDTO is one ingredient line
type IngredientDTO struct {
	ID       string      `json:"id,omitempty"`
	Name     string      `json:"name"`
	Quantity string      `json:"quantity,omitempty"`
	Unit     recipe.Unit `json:"unit,omitempty"`
	Note     string      `json:"note,omitempty"`
	Label    string      `json:"label,omitempty"`
}

// StepDTO is one instruction
type StepDTO struct {
	ID          string `json:"id,omitempty"`
	Description string `json:"description"`
}

// ScaledRecipeDTO is a recipe's ingredients multiplied by a factor
type ScaledRecipeDTO struct {
	RecipeID    uuid.UUID       `json:"recipeId"`
	Factor      float64         `json:"factor"`
	Servings    float64         `json:"servings"`
	Ingredients []IngredientDTO `json:"ingredients"`
}

// TagsDTO is the tag vocabulary with autocomplete results
type TagsDTO struct {
	Vocabulary  []recipe.TagCount `json:"vocabulary"`
	Suggestions []string          `json:"suggestions"`
	Suggested   []string          `json:"suggested"`
}
