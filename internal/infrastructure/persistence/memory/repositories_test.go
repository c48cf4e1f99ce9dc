package memory_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/hearthhq/hearth/internal/domain/calendar"
	"github.com/hearthhq/hearth/internal/domain/health"
	"github.com/hearthhq/hearth/internal/domain/mealplan"
	"github.com/hearthhq/hearth/internal/domain/recipe"
	"github.com/hearthhq/hearth/internal/infrastructure/persistence/memory"
	"github.com/hearthhq/hearth/internal/ports/outbound"
	"github.com/hearthhq/hearth/test/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type RecipeRepositoryTestSuite struct {
	suite.Suite
	ctx  context.Context
	repo *memory.RecipeRepository
}

func (s *RecipeRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = memory.NewRecipeRepository()
}

func (s *RecipeRepositoryTestSuite) TestSaveKeepsInsertionOrder() {
	first := testutils.NewRecipeBuilder().WithTitle("First").MustBuild()
	second := testutils.NewRecipeBuilder().WithTitle("Second").MustBuild()
	s.Require().NoError(s.repo.Save(s.ctx, first))
	s.Require().NoError(s.repo.Save(s.ctx, second))

	replaced := testutils.NewRecipeBuilder().WithID(first.ID()).WithTitle("First again").MustBuild()
	s.Require().NoError(s.repo.Save(s.ctx, replaced))

	all, err := s.repo.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 2)
	s.Equal("First again", all[0].Title())
	s.Equal("Second", all[1].Title())
}

func (s *RecipeRepositoryTestSuite) TestReturnsCopies() {
	r := testutils.NewRecipeBuilder().WithTags("quick").MustBuild()
	s.Require().NoError(s.repo.Save(s.ctx, r))

	found, err := s.repo.FindByID(s.ctx, r.ID())
	s.Require().NoError(err)
	found.ReplaceTags([]string{"slow"}, 10)

	again, err := s.repo.FindByID(s.ctx, r.ID())
	s.Require().NoError(err)
	s.Equal([]string{"quick"}, again.Tags(), "Unsaved changes do not leak into the store")
}

func (s *RecipeRepositoryTestSuite) TestDelete() {
	r := testutils.NewRecipeBuilder().MustBuild()
	s.Require().NoError(s.repo.Save(s.ctx, r))
	s.Require().NoError(s.repo.Delete(s.ctx, r.ID()))

	_, err := s.repo.FindByID(s.ctx, r.ID())
	s.ErrorIs(err, outbound.ErrNotFound)
	s.ErrorIs(s.repo.Delete(s.ctx, r.ID()), outbound.ErrNotFound)

	all, err := s.repo.List(s.ctx)
	s.Require().NoError(err)
	s.Empty(all)
}

func TestRecipeRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RecipeRepositoryTestSuite))
}

func TestMealPlanRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewMealPlanRepository()

	plan, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, plan.Len())

	slot, _ := mealplan.WeekdaySlot("Friday", mealplan.MealDinner)
	_, _, err = plan.Assign(slot, recipe.Snapshot{ID: uuid.New(), Title: "Pizza"})
	require.NoError(t, err)

	reloaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, reloaded.Len(), "Plans only change when stored")

	require.NoError(t, repo.Store(ctx, plan))
	reloaded, err = repo.Load(ctx)
	require.NoError(t, err)
	snap, ok := reloaded.Get(slot)
	require.True(t, ok)
	assert.Equal(t, "Pizza", snap.Title)
}

func TestCalendarRepositoryCopiesParticipants(t *testing.T) {
	ctx := context.Background()
	event := calendar.Event{ID: 1, Title: "Picnic", Date: "2024-06-01", Category: calendar.CategoryFamily, Participants: []int{1, 2}}
	repo := memory.NewCalendarRepository(event)
	event.Participants[0] = 99

	cal, err := repo.Load(ctx)
	require.NoError(t, err)
	events := cal.Events()
	require.Len(t, events, 1)
	assert.Equal(t, []int{1, 2}, events[0].Participants)
}

func TestHouseholdRepositories(t *testing.T) {
	ctx := context.Background()
	factory := testutils.NewFactory(7)

	shoppingRepo := memory.NewShoppingRepository(factory.ShoppingItem(1), factory.ShoppingItem(2))
	list, err := shoppingRepo.Load(ctx)
	require.NoError(t, err)
	_, err = list.Toggle(1)
	require.NoError(t, err)
	require.NoError(t, shoppingRepo.Store(ctx, list))
	list, err = shoppingRepo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, list.Remaining())

	taskRepo := memory.NewTaskRepository(factory.Task(1, "2024-01-01"))
	tasks, err := taskRepo.Load(ctx)
	require.NoError(t, err)
	require.NoError(t, tasks.Delete(1))
	require.NoError(t, taskRepo.Store(ctx, tasks))
	tasks, err = taskRepo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks.Tasks())

	memberRepo := memory.NewMemberRepository(factory.Member(1))
	roster, err := memberRepo.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, roster.Members(), 1)

	healthRepo := memory.NewHealthRepository()
	_, err = healthRepo.Series(ctx, health.MetricActivity)
	assert.ErrorIs(t, err, outbound.ErrNotFound)
	require.NoError(t, healthRepo.Store(ctx, health.Series{Metric: health.MetricActivity, Readings: []health.Reading{{Label: "Jan 1"}}}))
	series, err := healthRepo.Series(ctx, health.MetricActivity)
	require.NoError(t, err)
	assert.Len(t, series.Readings, 1)
}
