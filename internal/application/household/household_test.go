package household

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hearthhq/hearth/internal/domain/calendar"
	"github.com/hearthhq/hearth/internal/domain/health"
	"github.com/hearthhq/hearth/internal/domain/mealplan"
	"github.com/hearthhq/hearth/internal/domain/member"
	"github.com/hearthhq/hearth/internal/domain/recipe"
	"github.com/hearthhq/hearth/internal/domain/shopping"
	"github.com/hearthhq/hearth/internal/domain/task"
	"github.com/hearthhq/hearth/internal/infrastructure/persistence/memory"
	"github.com/hearthhq/hearth/internal/ports/inbound"
	"github.com/hearthhq/hearth/pkg/errors"
	"github.com/hearthhq/hearth/test/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Monday 6 May 2024, 09:30
var fixedNow = time.Date(2024, time.May, 6, 9, 30, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func TestShoppingService(t *testing.T) {
	ctx := context.Background()
	factory := testutils.NewFactory(1)
	service := NewShoppingService(memory.NewShoppingRepository(factory.ShoppingItem(1)), zap.NewNop())

	added, err := service.Add(ctx, inbound.AddShoppingItemCommand{Name: " Soap ", Category: "Household"})
	require.NoError(t, err)
	assert.Equal(t, 2, added.ID)
	assert.Equal(t, "Soap", added.Name)

	_, err = service.Add(ctx, inbound.AddShoppingItemCommand{Name: ""})
	assert.True(t, errors.Is(err, errors.CodeValidationFailed))
	_, err = service.Add(ctx, inbound.AddShoppingItemCommand{Name: "Pens", Category: "Stationery"})
	assert.True(t, errors.Is(err, errors.CodeValidationFailed))

	household, err := service.List(ctx, "Household")
	require.NoError(t, err)
	require.Len(t, household, 1)
	assert.Equal(t, "Soap", household[0].Name)

	toggled, err := service.Toggle(ctx, 2)
	require.NoError(t, err)
	assert.True(t, toggled.Completed)

	_, err = service.Toggle(ctx, 99)
	assert.True(t, errors.Is(err, errors.CodeItemNotFound))

	require.NoError(t, service.Delete(ctx, 2))
	assert.True(t, errors.Is(service.Delete(ctx, 2), errors.CodeItemNotFound))

	items, err := service.AddIngredients(ctx, "recipe-1", []recipe.Ingredient{
		{ID: "a", Name: "flour", Quantity: "2", Unit: recipe.UnitCup},
	})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, string(shopping.CategoryGroceries), items[0].Category)
	assert.Equal(t, "recipe-1", items[0].RecipeID)

	all, err := service.List(ctx, "All")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestTaskService(t *testing.T) {
	ctx := context.Background()
	factory := testutils.NewFactory(2)
	parent := factory.Member(1)
	service := NewTaskService(
		memory.NewTaskRepository(factory.Task(1, "2024-05-01")),
		memory.NewMemberRepository(parent),
		zap.NewNop(),
	)
	service.now = clock

	added, err := service.Add(ctx, inbound.AddTaskCommand{Title: "Water plants", AssignedTo: parent.ID})
	require.NoError(t, err)
	assert.Equal(t, 2, added.ID)
	assert.Equal(t, string(task.CategoryHome), added.Category)
	assert.Equal(t, "2024-05-06", added.DueDate, "Due date defaults to today")
	assert.False(t, added.Overdue)

	_, err = service.Add(ctx, inbound.AddTaskCommand{Title: "Pay bills", DueDate: "next week"})
	assert.True(t, errors.Is(err, errors.CodeValidationFailed))

	tasks, err := service.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.True(t, tasks[0].Overdue)
	assert.Equal(t, parent.Name, tasks[1].Assignee)

	toggled, err := service.Toggle(ctx, 1)
	require.NoError(t, err)
	assert.True(t, toggled.Completed)
	assert.False(t, toggled.Overdue, "Completed tasks are never overdue")

	_, err = service.Toggle(ctx, 42)
	assert.True(t, errors.Is(err, errors.CodeTaskNotFound))
	assert.True(t, errors.Is(service.Delete(ctx, 42), errors.CodeTaskNotFound))

	work, err := service.List(ctx, "Work")
	require.NoError(t, err)
	assert.Empty(t, work)
}

func TestCalendarService(t *testing.T) {
	ctx := context.Background()
	factory := testutils.NewFactory(3)
	service := NewCalendarService(memory.NewCalendarRepository(factory.Event(1, "2024-05-06")), zap.NewNop())

	added, err := service.AddEvent(ctx, inbound.AddEventCommand{Title: "Dentist", Date: "2024-05-20", Category: "Health", Participants: []int{1}})
	require.NoError(t, err)
	assert.Equal(t, 2, added.ID)

	_, err = service.AddEvent(ctx, inbound.AddEventCommand{Title: "Party", Date: "soon"})
	assert.True(t, errors.Is(err, errors.CodeValidationFailed))

	onDate, err := service.Events(ctx, "2024-05-20")
	require.NoError(t, err)
	require.Len(t, onDate, 1)
	assert.Equal(t, "Dentist", onDate[0].Title)

	none, err := service.Events(ctx, "2030-01-01")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	month, err := service.Month(ctx, 2024, 5)
	require.NoError(t, err)
	assert.Equal(t, inbound.MonthRef{Year: 2024, Month: 4}, month.Previous)
	assert.Equal(t, inbound.MonthRef{Year: 2024, Month: 6}, month.Next)
	// May 2024 starts on a Wednesday
	assert.Equal(t, 0, month.Days[2].Day)
	assert.Equal(t, 1, month.Days[3].Day)
	assert.Len(t, month.Days, 3+31)

	january, err := service.Month(ctx, 2025, 1)
	require.NoError(t, err)
	assert.Equal(t, inbound.MonthRef{Year: 2024, Month: 12}, january.Previous)

	_, err = service.Month(ctx, 2024, 13)
	assert.True(t, errors.Is(err, errors.CodeValidationFailed))

	require.NoError(t, service.DeleteEvent(ctx, 1))
	assert.True(t, errors.Is(service.DeleteEvent(ctx, 1), errors.CodeEventNotFound))
}

func TestMemberService(t *testing.T) {
	ctx := context.Background()
	service := NewMemberService(memory.NewMemberRepository(), zap.NewNop())
	service.now = clock

	added, err := service.Add(ctx, inbound.AddMemberCommand{Name: "Ada Lovelace", Role: "Parent", Birthdate: "1990-05-07"})
	require.NoError(t, err)
	assert.Equal(t, "AL", added.Initials)
	require.NotNil(t, added.Age)
	assert.Equal(t, 33, *added.Age, "Birthday is tomorrow")

	child, err := service.Add(ctx, inbound.AddMemberCommand{Name: "Tom", Role: "Child"})
	require.NoError(t, err)
	assert.Nil(t, child.Age)

	_, err = service.Add(ctx, inbound.AddMemberCommand{Name: "Rex", Role: "Pet"})
	assert.True(t, errors.Is(err, errors.CodeValidationFailed))

	members, err := service.List(ctx)
	require.NoError(t, err)
	assert.Len(t, members, 2)

	require.NoError(t, service.Delete(ctx, added.ID))
	assert.True(t, errors.Is(service.Delete(ctx, added.ID), errors.CodeMemberNotFound))
}

func TestHealthService(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewHealthRepository()
	require.NoError(t, repo.Store(ctx, health.Series{
		Metric: health.MetricWeight,
		Readings: []health.Reading{
			{Label: "Jan 1", Values: map[string]float64{"Ada": 60, "Tom": 30}},
			{Label: "Feb 1", Values: map[string]float64{"Ada": 61}},
		},
	}))
	service := NewHealthService(repo, zap.NewNop())

	all, err := service.Series(ctx, health.MetricWeight, "All")
	require.NoError(t, err)
	assert.Len(t, all.Readings, 2)

	tom, err := service.Series(ctx, health.MetricWeight, "Tom")
	require.NoError(t, err)
	require.Len(t, tom.Readings, 1)
	assert.Equal(t, map[string]float64{"Tom": 30}, tom.Readings[0].Values)

	_, err = service.Series(ctx, health.MetricWeight, "Nobody")
	assert.True(t, errors.Is(err, errors.CodeNotFound))

	activity, err := service.Series(ctx, health.MetricActivity, "")
	require.NoError(t, err)
	assert.Empty(t, activity.Readings, "Missing series read as empty")

	_, err = service.Series(ctx, "sleep", "")
	assert.True(t, errors.Is(err, errors.CodeValidationFailed))
}

func TestDashboardService(t *testing.T) {
	ctx := context.Background()
	factory := testutils.NewFactory(4)

	done := factory.Task(3, "2024-05-06")
	done.Completed = true
	tasks := memory.NewTaskRepository(
		factory.Task(1, "2024-05-01"),
		factory.Task(2, "2024-05-09"),
		done,
	)

	bought := factory.ShoppingItem(2)
	bought.Completed = true
	shoppingRepo := memory.NewShoppingRepository(factory.ShoppingItem(1), bought)

	calendarRepo := memory.NewCalendarRepository(
		factory.Event(1, "2024-05-06"),
		factory.Event(2, "2024-05-10"),
		factory.Event(3, "2024-04-30"),
	)

	plans := memory.NewMealPlanRepository()
	plan := mealplan.NewPlan()
	dateSlot, _ := mealplan.DateSlot("2024-05-06", mealplan.MealDinner)
	weekdaySlot, _ := mealplan.WeekdaySlot("Monday", mealplan.MealLunch)
	_, _, err := plan.Assign(dateSlot, recipe.Snapshot{ID: uuid.New(), Title: "Curry"})
	require.NoError(t, err)
	_, _, err = plan.Assign(weekdaySlot, recipe.Snapshot{ID: uuid.New(), Title: "Soup"})
	require.NoError(t, err)
	require.NoError(t, plans.Store(ctx, plan))

	service := NewDashboardService(tasks, shoppingRepo, calendarRepo, plans, zap.NewNop())
	service.now = clock

	summary, err := service.Summary(ctx)
	require.NoError(t, err)

	assert.Equal(t, "Good morning", summary.Greeting)
	assert.Equal(t, "2024-05-06", summary.Date)
	assert.Equal(t, task.Status{Completed: 1, Pending: 1, Overdue: 1}, summary.Tasks)
	assert.Equal(t, 1, summary.ShoppingRemaining)
	require.Len(t, summary.TodayEvents, 1)
	assert.Equal(t, calendar.CategoryFamily, summary.TodayEvents[0].Category)
	assert.Len(t, summary.UpcomingEvents, 2)
	assert.Len(t, summary.TodayMeals, 2)
	assert.Equal(t, inbound.MealCoverage{Planned: 1, Unplanned: 27}, summary.MealPlan)
}

func TestGreeting(t *testing.T) {
	day := func(hour int) time.Time { return time.Date(2024, 1, 1, hour, 0, 0, 0, time.UTC) }

	assert.Equal(t, "Good morning", Greeting(day(0)))
	assert.Equal(t, "Good morning", Greeting(day(11)))
	assert.Equal(t, "Good afternoon", Greeting(day(12)))
	assert.Equal(t, "Good afternoon", Greeting(day(17)))
	assert.Equal(t, "Good evening", Greeting(day(18)))
}

func TestTranslate(t *testing.T) {
	notFound := errors.NewTaskNotFoundError(1)
	assert.Nil(t, translate(nil, task.ErrTaskNotFound, nil))
	assert.Same(t, notFound, translate(notFound, nil, nil))
	assert.True(t, errors.Is(translate(task.ErrTaskNotFound, task.ErrTaskNotFound, func() error { return notFound }), errors.CodeTaskNotFound))
	assert.True(t, errors.Is(translate(member.ErrInvalidRole, nil, nil), errors.CodeValidationFailed))
}
