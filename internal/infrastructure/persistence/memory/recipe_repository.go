package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hearthhq/hearth/internal/domain/recipe"
	"github.com/hearthhq/hearth/internal/ports/outbound"
)

type storedRecipe struct {
	draft     recipe.Draft
	createdAt time.Time
	updatedAt time.Time
}

// RecipeRepository keeps recipes in insertion order. Stored values are
// copies, so callers cannot change them without saving.
type RecipeRepository struct {
	mu      sync.RWMutex
	order   []uuid.UUID
	recipes map[uuid.UUID]storedRecipe
}

var _ outbound.RecipeRepository = (*RecipeRepository)(nil)

// NewRecipeRepository creates an empty recipe repository
func NewRecipeRepository() *RecipeRepository {
	return &RecipeRepository{recipes: make(map[uuid.UUID]storedRecipe)}
}

// Save replaces a recipe in place or appends a new one
func (r *RecipeRepository) Save(ctx context.Context, entity *recipe.Recipe) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := entity.ID()
	if _, exists := r.recipes[id]; !exists {
		r.order = append(r.order, id)
	}
	r.recipes[id] = storedRecipe{
		draft:     entity.Draft(),
		createdAt: entity.CreatedAt(),
		updatedAt: entity.UpdatedAt(),
	}
	return nil
}

// FindByID returns a copy of the recipe
func (r *RecipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.recipes[id]
	if !ok {
		return nil, outbound.ErrNotFound
	}
	return restore(stored), nil
}

// List returns every recipe in insertion order
func (r *RecipeRepository) List(ctx context.Context) ([]*recipe.Recipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*recipe.Recipe, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, restore(r.recipes[id]))
	}
	return out, nil
}

// Delete removes a recipe
func (r *RecipeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.recipes[id]; !ok {
		return outbound.ErrNotFound
	}
	delete(r.recipes, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func restore(s storedRecipe) *recipe.Recipe {
	d := s.draft
	d.Ingredients = append([]recipe.Ingredient(nil), d.Ingredients...)
	d.Steps = append([]recipe.Step(nil), d.Steps...)
	d.Tags = append([]string(nil), d.Tags...)
	return recipe.Restore(d, s.createdAt, s.updatedAt)
}
