package recipe_test

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hearthhq/hearth/internal/application/household"
	"github.com/hearthhq/hearth/internal/application/mealplan"
	recipeapp "github.com/hearthhq/hearth/internal/application/recipe"
	"github.com/hearthhq/hearth/internal/domain/recipe"
	"github.com/hearthhq/hearth/internal/infrastructure/persistence/memory"
	"github.com/hearthhq/hearth/internal/ports/inbound"
	"github.com/hearthhq/hearth/internal/ports/outbound"
	"github.com/hearthhq/hearth/pkg/errors"
	"github.com/hearthhq/hearth/test/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

// RecipeServiceTestSuite exercises the service against the in-memory adapters
type RecipeServiceTestSuite struct {
	suite.Suite
	ctx      context.Context
	repo     *memory.RecipeRepository
	cache    *memory.CacheRepository
	plans    *memory.MealPlanRepository
	shopping *memory.ShoppingRepository
	sink     *testutils.RecordingSink
	service  *recipeapp.RecipeService
}

func (s *RecipeServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = memory.NewRecipeRepository()
	s.cache = memory.NewCacheRepository(time.Minute)
	s.plans = memory.NewMealPlanRepository()
	s.shopping = memory.NewShoppingRepository()
	s.sink = &testutils.RecordingSink{}

	logger := zap.NewNop()
	s.service = recipeapp.NewRecipeService(
		s.repo,
		s.cache,
		mealplan.NewMealPlanService(s.plans, s.sink, logger),
		household.NewShoppingService(s.shopping, logger),
		s.sink,
		recipeapp.Config{MaxTags: 3, SuggestedLimit: 2, VocabularyTTL: time.Minute},
		logger,
	)
}

func (s *RecipeServiceTestSuite) TearDownTest() {
	s.cache.Close()
}

func saveCommand(title string, tags ...string) inbound.SaveRecipeCommand {
	return inbound.SaveRecipeCommand{
		Title:       title,
		Category:    recipe.CategoryDinner,
		Ingredients: []inbound.IngredientDTO{{Name: "spaghetti", Quantity: "400", Unit: recipe.UnitGram}, {Name: "tomato", Quantity: "1 1/2", Unit: recipe.UnitCup}},
		Steps:       []inbound.StepDTO{{Description: "Cook."}},
		Tags:        tags,
	}
}

func (s *RecipeServiceTestSuite) TestSaveRecipe() {
	s.Run("Create", func() {
		dto, err := s.service.SaveRecipe(s.ctx, saveCommand("Bolognese", "pasta", "pasta", "quick", "italian", "family"))

		s.Require().NoError(err)
		s.NotEqual(uuid.Nil, dto.ID)
		s.Equal([]string{"pasta", "quick", "italian"}, dto.Tags, "Tags are deduped and capped")
		s.Equal("400 gram spaghetti", dto.Ingredients[0].Label)
		s.Contains(s.sink.Names(), "recipe.created")
	})

	s.Run("ReplaceKeepsCreatedAtAndPosition", func() {
		first, err := s.service.SaveRecipe(s.ctx, saveCommand("First"))
		s.Require().NoError(err)
		_, err = s.service.SaveRecipe(s.ctx, saveCommand("Second"))
		s.Require().NoError(err)

		cmd := saveCommand("First, edited")
		cmd.ID = first.ID
		edited, err := s.service.SaveRecipe(s.ctx, cmd)
		s.Require().NoError(err)

		s.Equal(first.ID, edited.ID)
		s.Equal(first.CreatedAt, edited.CreatedAt)

		list, err := s.service.ListRecipes(s.ctx, inbound.RecipeQuery{Search: "First"})
		s.Require().NoError(err)
		s.Require().Len(list, 1)
		s.Equal("First, edited", list[0].Title)
	})

	s.Run("ValidationMessage", func() {
		cmd := saveCommand("")
		_, err := s.service.SaveRecipe(s.ctx, cmd)

		s.True(errors.Is(err, errors.CodeValidationFailed))
		var appErr *errors.AppError
		s.Require().True(stderrors.As(err, &appErr))
		s.Equal("Recipe title is required", appErr.Details)
	})
}

func (s *RecipeServiceTestSuite) TestDeleteRecipeKeepsMealPlanSnapshot() {
	dto, err := s.service.SaveRecipe(s.ctx, saveCommand("Toast"))
	s.Require().NoError(err)
	_, err = s.service.AddToMealPlan(s.ctx, inbound.AddToMealPlanCommand{RecipeID: dto.ID, Date: "2024-05-06", MealType: "Breakfast"})
	s.Require().NoError(err)

	s.Require().NoError(s.service.DeleteRecipe(s.ctx, dto.ID))

	_, err = s.service.GetRecipe(s.ctx, dto.ID)
	s.True(errors.Is(err, errors.CodeRecipeNotFound))
	s.True(errors.Is(s.service.DeleteRecipe(s.ctx, dto.ID), errors.CodeRecipeNotFound))

	plan, err := s.plans.Load(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, plan.Len(), "Deleting a recipe leaves planned meals alone")
	s.Contains(s.sink.Names(), "recipe.deleted")
}

func (s *RecipeServiceTestSuite) TestUpdateTagsInvalidatesVocabulary() {
	dto, err := s.service.SaveRecipe(s.ctx, saveCommand("Salad", "quick"))
	s.Require().NoError(err)

	tags, err := s.service.Tags(s.ctx, inbound.TagQuery{})
	s.Require().NoError(err)
	s.Equal([]recipe.TagCount{{Tag: "quick", Count: 1}}, tags.Vocabulary)

	_, err = s.cache.Get(s.ctx, recipeapp.VocabularyCacheKey)
	s.Require().NoError(err, "Vocabulary should be cached")

	updated, err := s.service.UpdateTags(s.ctx, dto.ID, []string{"lunch", "green"})
	s.Require().NoError(err)
	s.Equal([]string{"lunch", "green"}, updated.Tags)

	_, err = s.cache.Get(s.ctx, recipeapp.VocabularyCacheKey)
	s.ErrorIs(err, outbound.ErrCacheMiss)

	tags, err = s.service.Tags(s.ctx, inbound.TagQuery{Text: "GR", Applied: []string{"lunch"}})
	s.Require().NoError(err)
	s.Equal([]string{"green"}, tags.Suggestions)
	s.Equal([]string{"green"}, tags.Suggested)
}

func (s *RecipeServiceTestSuite) TestListRecipesFilters() {
	_, err := s.service.SaveRecipe(s.ctx, saveCommand("Bolognese", "pasta"))
	s.Require().NoError(err)
	fav := saveCommand("Toast", "quick")
	fav.Category = recipe.CategoryBreakfast
	fav.Favorite = true
	_, err = s.service.SaveRecipe(s.ctx, fav)
	s.Require().NoError(err)

	all, err := s.service.ListRecipes(s.ctx, inbound.RecipeQuery{})
	s.Require().NoError(err)
	s.Len(all, 2)
	s.Equal("Bolognese", all[0].Title)

	favorites, err := s.service.ListRecipes(s.ctx, inbound.RecipeQuery{Category: recipe.FilterFavorites})
	s.Require().NoError(err)
	s.Require().Len(favorites, 1)
	s.Equal("Toast", favorites[0].Title)

	none, err := s.service.ListRecipes(s.ctx, inbound.RecipeQuery{Tag: "missing"})
	s.Require().NoError(err)
	s.NotNil(none)
	s.Empty(none)
}

func (s *RecipeServiceTestSuite) TestScale() {
	dto, err := s.service.SaveRecipe(s.ctx, saveCommand("Bolognese"))
	s.Require().NoError(err)

	scaled, err := s.service.ScaleRecipe(s.ctx, dto.ID, 2)
	s.Require().NoError(err)
	s.Equal(float64(8), scaled.Servings)
	s.Equal("800", scaled.Ingredients[0].Quantity)
	s.Equal("3", scaled.Ingredients[1].Quantity)

	_, err = s.service.ScaleRecipe(s.ctx, dto.ID, 0)
	s.True(errors.Is(err, errors.CodeValidationFailed))

	q, err := s.service.ScaleQuantity("1/2", 3)
	s.Require().NoError(err)
	s.Equal("1.5", q)

	_, err = s.service.ScaleQuantity("1", -2)
	s.True(errors.Is(err, errors.CodeValidationFailed))
}

func (s *RecipeServiceTestSuite) TestAddToMealPlan() {
	dto, err := s.service.SaveRecipe(s.ctx, saveCommand("Bolognese"))
	s.Require().NoError(err)

	entry, err := s.service.AddToMealPlan(s.ctx, inbound.AddToMealPlanCommand{RecipeID: dto.ID, Date: "2024-05-06", MealType: "Dinner"})
	s.Require().NoError(err)
	s.Equal("2024-05-06-Dinner", entry.Key)
	s.Equal(dto.ID, entry.Recipe.ID)

	_, err = s.service.AddToMealPlan(s.ctx, inbound.AddToMealPlanCommand{RecipeID: dto.ID, Date: "Monday", MealType: "Dinner"})
	s.True(errors.Is(err, errors.CodeValidationFailed))

	_, err = s.service.AddToMealPlan(s.ctx, inbound.AddToMealPlanCommand{RecipeID: uuid.New(), Date: "2024-05-06", MealType: "Dinner"})
	s.True(errors.Is(err, errors.CodeRecipeNotFound))
}

func (s *RecipeServiceTestSuite) TestAddToShoppingList() {
	dto, err := s.service.SaveRecipe(s.ctx, saveCommand("Bolognese"))
	s.Require().NoError(err)

	items, err := s.service.AddToShoppingList(s.ctx, inbound.AddToShoppingListCommand{
		RecipeID:      dto.ID,
		IngredientIDs: []string{dto.Ingredients[1].ID},
	})
	s.Require().NoError(err)
	s.Require().Len(items, 1)
	s.Equal("tomato", items[0].Name)
	s.Equal(dto.ID.String(), items[0].RecipeID)

	items, err = s.service.AddToShoppingList(s.ctx, inbound.AddToShoppingListCommand{RecipeID: dto.ID})
	s.Require().NoError(err)
	s.Len(items, 2)

	list, err := s.shopping.Load(s.ctx)
	s.Require().NoError(err)
	s.Len(list.Items(), 3)
}

func TestRecipeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RecipeServiceTestSuite))
}

func TestRecipeServiceTagCapAboveDefault(t *testing.T) {
	ctx := context.Background()
	cache := memory.NewCacheRepository(time.Minute)
	defer cache.Close()

	logger := zap.NewNop()
	sink := &testutils.RecordingSink{}
	service := recipeapp.NewRecipeService(
		memory.NewRecipeRepository(),
		cache,
		mealplan.NewMealPlanService(memory.NewMealPlanRepository(), sink, logger),
		household.NewShoppingService(memory.NewShoppingRepository(), logger),
		sink,
		recipeapp.Config{MaxTags: 15},
		logger,
	)

	labels := make([]string, 16)
	for i := range labels {
		labels[i] = fmt.Sprintf("tag-%02d", i+1)
	}

	saved, err := service.SaveRecipe(ctx, saveCommand("Paella", labels...))
	require.NoError(t, err)
	assert.Len(t, saved.Tags, 15)
	assert.Equal(t, labels[:15], saved.Tags)

	updated, err := service.UpdateTags(ctx, saved.ID, labels)
	require.NoError(t, err)
	assert.Equal(t, saved.Tags, updated.Tags)
}

func TestRecipeServiceStorageErrors(t *testing.T) {
	ctx := context.Background()
	repo := new(testutils.MockRecipeRepository)
	cache := new(testutils.MockCacheRepository)
	service := recipeapp.NewRecipeService(repo, cache, nil, nil, nil, recipeapp.Config{}, zap.NewNop())

	boom := stderrors.New("disk full")
	id := uuid.New()
	repo.On("FindByID", ctx, id).Return(nil, boom)
	repo.On("List", ctx).Return(nil, boom)
	cache.On("Get", ctx, recipeapp.VocabularyCacheKey).Return(nil, outbound.ErrCacheMiss)

	_, err := service.GetRecipe(ctx, id)
	if !errors.Is(err, errors.CodeStorageError) {
		t.Fatalf("expected storage error, got %v", err)
	}
	if !stderrors.Is(err, boom) {
		t.Fatalf("expected cause to be kept, got %v", err)
	}

	_, err = service.Tags(ctx, inbound.TagQuery{})
	if !errors.Is(err, errors.CodeStorageError) {
		t.Fatalf("expected storage error, got %v", err)
	}

	repo.On("Save", ctx, mock.Anything).Return(boom)
	cache.On("Delete", ctx, mock.Anything).Return(nil)
	_, err = service.SaveRecipe(ctx, saveCommand("Toast"))
	if !errors.Is(err, errors.CodeStorageError) {
		t.Fatalf("expected storage error, got %v", err)
	}

	repo.AssertExpectations(t)
	cache.AssertNotCalled(t, "Delete", ctx, mock.Anything)
}
