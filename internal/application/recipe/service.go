// Package recipe provides the application layer for the recipe catalog
// This implements the use cases defined in the inbound ports
package recipe

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hearthhq/hearth/internal/domain/mealplan"
	"github.com/hearthhq/hearth/internal/domain/recipe"
	"github.com/hearthhq/hearth/internal/domain/shared"
	"github.com/hearthhq/hearth/internal/domain/tags"
	"github.com/hearthhq/hearth/internal/ports/inbound"
	"github.com/hearthhq/hearth/internal/ports/outbound"
	"github.com/hearthhq/hearth/pkg/errors"
	"go.uber.org/zap"
)

// VocabularyCacheKey holds the encoded tag vocabulary
const VocabularyCacheKey = "recipes:tags"

// Config tunes the recipe service
type Config struct {
	MaxTags        int
	SuggestedLimit int
	VocabularyTTL  time.Duration
}

// RecipeService implements the recipe use cases
type RecipeService struct {
	recipeRepo outbound.RecipeRepository
	cache      outbound.CacheRepository
	mealPlans  inbound.MealPlanService
	shopping   inbound.ShoppingService
	events     shared.EventSink
	cfg        Config
	logger     *zap.Logger

	mu sync.Mutex
}

var _ inbound.RecipeService = (*RecipeService)(nil)

// NewRecipeService creates a new recipe service
func NewRecipeService(
	recipeRepo outbound.RecipeRepository,
	cache outbound.CacheRepository,
	mealPlans inbound.MealPlanService,
	shopping inbound.ShoppingService,
	events shared.EventSink,
	cfg Config,
	logger *zap.Logger,
) *RecipeService {
	if cfg.MaxTags <= 0 {
		cfg.MaxTags = tags.DefaultMaxTags
	}
	if cfg.SuggestedLimit <= 0 {
		cfg.SuggestedLimit = tags.SuggestedLimit
	}
	return &RecipeService{
		recipeRepo: recipeRepo,
		cache:      cache,
		mealPlans:  mealPlans,
		shopping:   shopping,
		events:     events,
		cfg:        cfg,
		logger:     logger.Named("recipe-service"),
	}
}

// SaveRecipe creates a recipe or replaces the one with the same ID
func (s *RecipeService) SaveRecipe(ctx context.Context, cmd inbound.SaveRecipeCommand) (*inbound.RecipeDTO, error) {
	s.logger.Info("Saving recipe",
		zap.String("title", cmd.Title),
		zap.Bool("new", cmd.ID == uuid.Nil),
	)

	d := toDraft(cmd)
	d.MaxTags = s.cfg.MaxTags

	s.mu.Lock()
	defer s.mu.Unlock()

	var existing *recipe.Recipe
	if cmd.ID != uuid.Nil {
		found, err := s.recipeRepo.FindByID(ctx, cmd.ID)
		switch {
		case err == nil:
			existing = found
		case !stderrors.Is(err, outbound.ErrNotFound):
			return nil, errors.NewStorageError("find recipe", err)
		}
	}

	entity, err := recipe.NewRecipe(d)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if existing != nil {
		entity.KeepCreatedAt(existing.CreatedAt())
	}

	if err := s.recipeRepo.Save(ctx, entity); err != nil {
		return nil, errors.NewStorageError("save recipe", err)
	}

	s.invalidateVocabulary(ctx)
	s.publish(entity.Events())

	s.logger.Info("Recipe saved",
		zap.String("recipe_id", entity.ID().String()),
		zap.Bool("replaced", existing != nil),
	)

	return toDTO(entity), nil
}

// DeleteRecipe removes a recipe. Meal plan entries keep their snapshots.
func (s *RecipeService) DeleteRecipe(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entity, err := s.findRecipe(ctx, id)
	if err != nil {
		return err
	}

	if err := s.recipeRepo.Delete(ctx, id); err != nil {
		if stderrors.Is(err, outbound.ErrNotFound) {
			return errors.NewRecipeNotFoundError(id.String())
		}
		return errors.NewStorageError("delete recipe", err)
	}

	entity.MarkDeleted()
	s.invalidateVocabulary(ctx)
	s.publish(entity.Events())

	s.logger.Info("Recipe deleted", zap.String("recipe_id", id.String()))
	return nil
}

// UpdateTags replaces a recipe's tags under the tag set rules
func (s *RecipeService) UpdateTags(ctx context.Context, id uuid.UUID, newTags []string) (*inbound.RecipeDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entity, err := s.findRecipe(ctx, id)
	if err != nil {
		return nil, err
	}

	entity.ReplaceTags(newTags, s.cfg.MaxTags)

	if err := s.recipeRepo.Save(ctx, entity); err != nil {
		return nil, errors.NewStorageError("save recipe tags", err)
	}

	s.invalidateVocabulary(ctx)
	s.publish(entity.Events())

	return toDTO(entity), nil
}

// GetRecipe retrieves a recipe by ID
func (s *RecipeService) GetRecipe(ctx context.Context, id uuid.UUID) (*inbound.RecipeDTO, error) {
	entity, err := s.findRecipe(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDTO(entity), nil
}

// ListRecipes returns the catalog filtered by title search, category and tag
func (s *RecipeService) ListRecipes(ctx context.Context, query inbound.RecipeQuery) ([]inbound.RecipeDTO, error) {
	all, err := s.recipeRepo.List(ctx)
	if err != nil {
		return nil, errors.NewStorageError("list recipes", err)
	}

	filter := recipe.Filter{Search: query.Search, Category: query.Category, Tag: query.Tag}
	matched := filter.Apply(all)

	out := make([]inbound.RecipeDTO, 0, len(matched))
	for _, r := range matched {
		out = append(out, *toDTO(r))
	}
	return out, nil
}

// ScaleRecipe multiplies a recipe's ingredient quantities by factor
func (s *RecipeService) ScaleRecipe(ctx context.Context, id uuid.UUID, factor float64) (*inbound.ScaledRecipeDTO, error) {
	if err := validateFactor(factor); err != nil {
		return nil, err
	}

	entity, err := s.findRecipe(ctx, id)
	if err != nil {
		return nil, err
	}

	return &inbound.ScaledRecipeDTO{
		RecipeID:    entity.ID(),
		Factor:      factor,
		Servings:    float64(entity.Servings()) * factor,
		Ingredients: toIngredientDTOs(recipe.ScaleIngredients(entity.Ingredients(), factor)),
	}, nil
}

// ScaleQuantity scales one free-text quantity
func (s *RecipeService) ScaleQuantity(quantity string, factor float64) (string, error) {
	if err := validateFactor(factor); err != nil {
		return "", err
	}
	return recipe.ScaleQuantity(quantity, factor), nil
}

// Tags returns the vocabulary, autocomplete matches for query.Text and the
// suggested panel for tags not yet applied
func (s *RecipeService) Tags(ctx context.Context, query inbound.TagQuery) (*inbound.TagsDTO, error) {
	vocabulary, err := s.vocabulary(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(vocabulary))
	for i, tc := range vocabulary {
		names[i] = tc.Tag
	}
	applied := tags.NewSet(len(query.Applied)+1, query.Applied...)

	suggestions := tags.Suggest(query.Text, names, applied)
	if suggestions == nil {
		suggestions = []string{}
	}
	suggested := tags.Unapplied(names, applied, s.cfg.SuggestedLimit)
	if suggested == nil {
		suggested = []string{}
	}

	return &inbound.TagsDTO{
		Vocabulary:  vocabulary,
		Suggestions: suggestions,
		Suggested:   suggested,
	}, nil
}

// AddToMealPlan plans a recipe on a calendar date
func (s *RecipeService) AddToMealPlan(ctx context.Context, cmd inbound.AddToMealPlanCommand) (*inbound.MealEntryDTO, error) {
	entity, err := s.findRecipe(ctx, cmd.RecipeID)
	if err != nil {
		return nil, err
	}

	slot, err := mealplan.DateSlot(cmd.Date, mealplan.MealType(cmd.MealType))
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	result, err := s.mealPlans.Assign(ctx, slot, entity.Snapshot())
	if err != nil {
		return nil, err
	}
	return &result.Entry, nil
}

// AddToShoppingList copies the selected ingredients, or all of them when the
// selection is empty, to the shopping list
func (s *RecipeService) AddToShoppingList(ctx context.Context, cmd inbound.AddToShoppingListCommand) ([]inbound.ShoppingItemDTO, error) {
	entity, err := s.findRecipe(ctx, cmd.RecipeID)
	if err != nil {
		return nil, err
	}

	selected := entity.Ingredients()
	if len(cmd.IngredientIDs) > 0 {
		wanted := make(map[string]bool, len(cmd.IngredientIDs))
		for _, id := range cmd.IngredientIDs {
			wanted[id] = true
		}
		filtered := selected[:0]
		for _, ing := range selected {
			if wanted[ing.ID] {
				filtered = append(filtered, ing)
			}
		}
		selected = filtered
	}

	items, err := s.shopping.AddIngredients(ctx, entity.ID().String(), selected)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Added ingredients to shopping list",
		zap.String("recipe_id", entity.ID().String()),
		zap.Int("count", len(items)),
	)
	return items, nil
}

func (s *RecipeService) findRecipe(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error) {
	entity, err := s.recipeRepo.FindByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, outbound.ErrNotFound) {
			return nil, errors.NewRecipeNotFoundError(id.String())
		}
		return nil, errors.NewStorageError("find recipe", err)
	}
	return entity, nil
}

func (s *RecipeService) vocabulary(ctx context.Context) ([]recipe.TagCount, error) {
	if data, err := s.cache.Get(ctx, VocabularyCacheKey); err == nil {
		var cached []recipe.TagCount
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	} else if !stderrors.Is(err, outbound.ErrCacheMiss) {
		s.logger.Warn("Failed to read tag vocabulary from cache", zap.Error(err))
	}

	all, err := s.recipeRepo.List(ctx)
	if err != nil {
		return nil, errors.NewStorageError("list recipes", err)
	}
	vocabulary := recipe.Vocabulary(all)

	if data, err := json.Marshal(vocabulary); err == nil {
		if err := s.cache.Set(ctx, VocabularyCacheKey, data, s.cfg.VocabularyTTL); err != nil {
			s.logger.Warn("Failed to cache tag vocabulary", zap.Error(err))
		}
	}
	return vocabulary, nil
}

func (s *RecipeService) invalidateVocabulary(ctx context.Context) {
	if err := s.cache.Delete(ctx, VocabularyCacheKey); err != nil {
		s.logger.Warn("Failed to invalidate tag vocabulary", zap.Error(err))
	}
}

func (s *RecipeService) publish(events []shared.DomainEvent) {
	if s.events == nil || len(events) == 0 {
		return
	}
	s.events.Publish(events...)
}

func validateFactor(factor float64) error {
	if !(factor > 0) {
		return errors.NewValidationError(fmt.Sprintf("scale factor must be greater than 0, got %v", factor))
	}
	return nil
}
