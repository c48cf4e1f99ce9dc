package mealplan_test

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/google/uuid"
	mealplanapp "github.com/hearthhq/hearth/internal/application/mealplan"
	"github.com/hearthhq/hearth/internal/domain/mealplan"
	"github.com/hearthhq/hearth/internal/domain/recipe"
	"github.com/hearthhq/hearth/internal/infrastructure/persistence/memory"
	"github.com/hearthhq/hearth/internal/ports/inbound"
	"github.com/hearthhq/hearth/pkg/errors"
	"github.com/hearthhq/hearth/test/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

type MealPlanServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	sink    *testutils.RecordingSink
	service *mealplanapp.MealPlanService
}

func (s *MealPlanServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.sink = &testutils.RecordingSink{}
	s.service = mealplanapp.NewMealPlanService(memory.NewMealPlanRepository(), s.sink, zap.NewNop())
}

func snapshot(title string) recipe.Snapshot {
	return recipe.Snapshot{ID: uuid.New(), Title: title, Servings: 4}
}

func (s *MealPlanServiceTestSuite) TestAssignReplaces() {
	slot, err := mealplan.WeekdaySlot("Monday", mealplan.MealDinner)
	s.Require().NoError(err)

	first, err := s.service.Assign(s.ctx, slot, snapshot("Soup"))
	s.Require().NoError(err)
	s.Nil(first.Previous)
	s.Equal("Monday-Dinner", first.Entry.Key)

	second, err := s.service.Assign(s.ctx, slot, snapshot("Stew"))
	s.Require().NoError(err)
	s.Require().NotNil(second.Previous)
	s.Equal("Soup", second.Previous.Title)

	got, err := s.service.Get(s.ctx, slot)
	s.Require().NoError(err)
	s.Equal("Stew", got.Recipe.Title)

	s.Equal([]string{"mealplan.assigned", "mealplan.assigned"}, s.sink.Names())
}

func (s *MealPlanServiceTestSuite) TestAssignInvalidSlot() {
	_, err := s.service.Assign(s.ctx, mealplan.SlotKey{Kind: mealplan.KindWeekday, Label: "Monday", MealType: "Brunch"}, snapshot("Eggs"))
	s.True(errors.Is(err, errors.CodeValidationFailed))
	s.Empty(s.sink.Names())
}

func (s *MealPlanServiceTestSuite) TestWeekdayAndDateSlotsAreSeparate() {
	weekday, _ := mealplan.WeekdaySlot("Monday", mealplan.MealLunch)
	date, _ := mealplan.DateSlot("2024-05-06", mealplan.MealLunch)

	_, err := s.service.Assign(s.ctx, weekday, snapshot("Salad"))
	s.Require().NoError(err)
	_, err = s.service.Assign(s.ctx, date, snapshot("Wrap"))
	s.Require().NoError(err)

	entries, err := s.service.Entries(s.ctx)
	s.Require().NoError(err)
	s.Len(entries, 2)

	week, err := s.service.Week(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(week, 7)
	s.Equal("Monday", week[0].Day)
	s.Require().NotNil(week[0].Meals[1].Recipe)
	s.Equal("Salad", week[0].Meals[1].Recipe.Title)
	s.Nil(week[0].Meals[0].Recipe)

	onDate, err := s.service.ForDate(s.ctx, "2024-05-06")
	s.Require().NoError(err)
	s.Require().Len(onDate, 1)
	s.Equal("Wrap", onDate[0].Recipe.Title)

	_, err = s.service.ForDate(s.ctx, "06/05/2024")
	s.True(errors.Is(err, errors.CodeValidationFailed))
}

func (s *MealPlanServiceTestSuite) TestRemove() {
	slot, _ := mealplan.WeekdaySlot("Friday", mealplan.MealSnack)

	removed, err := s.service.Remove(s.ctx, slot)
	s.Require().NoError(err)
	s.False(removed, "Removing an empty slot is a no-op")

	_, err = s.service.Assign(s.ctx, slot, snapshot("Popcorn"))
	s.Require().NoError(err)

	removed, err = s.service.Remove(s.ctx, slot)
	s.Require().NoError(err)
	s.True(removed)

	_, err = s.service.Get(s.ctx, slot)
	s.True(errors.Is(err, errors.CodeSlotNotFound))
	s.Contains(s.sink.Names(), "mealplan.removed")
}

func (s *MealPlanServiceTestSuite) TestDrop() {
	tests := []struct {
		name    string
		cmd     inbound.DropCommand
		applied bool
		key     string
	}{
		{
			name:    "explicit meal type",
			cmd:     inbound.DropCommand{Kind: mealplan.KindWeekday, Label: "Tuesday", MealType: "Dinner", Payload: `{"id":"` + uuid.NewString() + `","title":"Tacos"}`},
			applied: true,
			key:     "Tuesday-Dinner",
		},
		{
			name:    "falls back to active meal type",
			cmd:     inbound.DropCommand{Kind: mealplan.KindDate, Label: "2024-05-07", ActiveMealType: "Lunch", Payload: `{"id":"` + uuid.NewString() + `","title":"Tacos"}`},
			applied: true,
			key:     "2024-05-07-Lunch",
		},
		{
			name:    "defaults to breakfast",
			cmd:     inbound.DropCommand{Kind: mealplan.KindWeekday, Label: "Sunday", Payload: `{"id":"` + uuid.NewString() + `","title":"Pancakes"}`},
			applied: true,
			key:     "Sunday-Breakfast",
		},
		{
			name: "empty payload",
			cmd:  inbound.DropCommand{Kind: mealplan.KindWeekday, Label: "Tuesday", MealType: "Dinner"},
		},
		{
			name: "malformed payload",
			cmd:  inbound.DropCommand{Kind: mealplan.KindWeekday, Label: "Tuesday", MealType: "Dinner", Payload: "{not json"},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			result, err := s.service.Drop(s.ctx, tt.cmd)
			s.Require().NoError(err)
			s.Equal(tt.applied, result.Applied)
			if tt.applied {
				s.Require().NotNil(result.Entry)
				s.Equal(tt.key, result.Entry.Key)
			} else {
				s.Nil(result.Entry)
			}
		})
	}
}

func (s *MealPlanServiceTestSuite) TestDropRejectsInvalidTarget() {
	payload := `{"id":"` + uuid.NewString() + `","title":"Tacos"}`
	tests := []struct {
		name string
		cmd  inbound.DropCommand
	}{
		{name: "unknown weekday", cmd: inbound.DropCommand{Kind: mealplan.KindWeekday, Label: "Someday", MealType: "Dinner", Payload: payload}},
		{name: "bad date", cmd: inbound.DropCommand{Kind: mealplan.KindDate, Label: "2024-13-40", MealType: "Dinner", Payload: payload}},
		{name: "unknown meal type", cmd: inbound.DropCommand{Kind: mealplan.KindWeekday, Label: "Tuesday", MealType: "Brunch", Payload: payload}},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			result, err := s.service.Drop(s.ctx, tt.cmd)
			s.Nil(result)
			s.True(errors.Is(err, errors.CodeValidationFailed), "got %v", err)
		})
	}

	entries, err := s.service.Entries(s.ctx)
	s.Require().NoError(err)
	s.Empty(entries)
}

func TestMealPlanServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MealPlanServiceTestSuite))
}

func TestMealPlanServiceStorageErrors(t *testing.T) {
	ctx := context.Background()
	repo := new(testutils.MockMealPlanRepository)
	sink := &testutils.RecordingSink{}
	service := mealplanapp.NewMealPlanService(repo, sink, zap.NewNop())

	boom := stderrors.New("locked")
	repo.On("Load", ctx).Return(mealplan.NewPlan(), nil)
	repo.On("Store", ctx, mock.Anything).Return(boom)

	slot, err := mealplan.WeekdaySlot("Monday", mealplan.MealDinner)
	require.NoError(t, err)

	_, err = service.Assign(ctx, slot, snapshot("Soup"))
	assert.True(t, errors.Is(err, errors.CodeStorageError))
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, sink.Names(), "Failed stores publish nothing")
	repo.AssertExpectations(t)
}
