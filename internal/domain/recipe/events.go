package recipe

import (
	"time"

	"github.com/google/uuid"
)

// RecipeSavedEvent is raised when a recipe is created or replaced
type RecipeSavedEvent struct {
	RecipeID uuid.UUID
	Title    string
	Created  bool
	SavedAt  time.Time
}

func (e RecipeSavedEvent) EventName() string {
	if e.Created {
		return "recipe.created"
	}
	return "recipe.updated"
}

func (e RecipeSavedEvent) OccurredAt() time.Time {
	return e.SavedAt
}

// RecipeTagsUpdatedEvent is raised when a recipe's tags are replaced
type RecipeTagsUpdatedEvent struct {
	RecipeID  uuid.UUID
	OldTags   []string
	NewTags   []string
	UpdatedAt time.Time
}

func (e RecipeTagsUpdatedEvent) EventName() string {
	return "recipe.tags.updated"
}

func (e RecipeTagsUpdatedEvent) OccurredAt() time.Time {
	return e.UpdatedAt
}

// RecipeDeletedEvent is raised when a recipe is removed from the catalog
type RecipeDeletedEvent struct {
	RecipeID  uuid.UUID
	Title     string
	DeletedAt time.Time
}

func (e RecipeDeletedEvent) EventName() string {
	return "recipe.deleted"
}

func (e RecipeDeletedEvent) OccurredAt() time.Time {
	return e.DeletedAt
}
