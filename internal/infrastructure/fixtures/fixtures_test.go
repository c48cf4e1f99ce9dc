package fixtures_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hearthhq/hearth/internal/domain/health"
	"github.com/hearthhq/hearth/internal/domain/mealplan"
	"github.com/hearthhq/hearth/internal/infrastructure/fixtures"
	"github.com/hearthhq/hearth/internal/infrastructure/persistence/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultFixtures(t *testing.T) {
	doc, err := fixtures.Load("")
	require.NoError(t, err)

	data, err := doc.Build()
	require.NoError(t, err)

	want := map[string]int{
		"recipes":   3,
		"meal_plan": 3,
		"shopping":  5,
		"tasks":     4,
		"events":    4,
		"members":   4,
		"health":    2,
	}
	if diff := cmp.Diff(want, data.Counts()); diff != "" {
		t.Errorf("Counts() mismatch (-want +got):\n%s", diff)
	}

	monday, err := mealplan.WeekdaySlot("Monday", mealplan.MealDinner)
	require.NoError(t, err)
	snap, ok := data.MealPlan.Get(monday)
	require.True(t, ok)
	assert.Equal(t, "Spaghetti Bolognese", snap.Title)
	assert.Empty(t, data.MealPlan.Events(), "Building fixtures raises no events")

	assert.Equal(t, "JD", data.Members[0].Initials)
	for _, m := range data.Members {
		assert.Equal(t, "/placeholder.svg?height=100&width=100", m.Image, m.Name)
	}
	for _, r := range data.Recipes {
		assert.Equal(t, "/placeholder.svg?height=200&width=300", r.Image(), r.Title())
	}
}

func TestBuildRejectsBadDocuments(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "recipe without steps",
			yaml:    "recipes:\n  - { title: Toast, ingredients: [{ name: bread }] }\n",
			wantErr: "recipes[0]",
		},
		{
			name:    "unknown meal plan recipe",
			yaml:    "meal_plan:\n  - { slot: Monday-Dinner, recipe: Ghost }\n",
			wantErr: "unknown recipe",
		},
		{
			name:    "bad slot",
			yaml:    "meal_plan:\n  - { slot: Someday, recipe: Ghost }\n",
			wantErr: "meal_plan[0]",
		},
		{
			name:    "shopping category",
			yaml:    "shopping:\n  - { id: 1, name: Pens, category: Stationery }\n",
			wantErr: "shopping[0]",
		},
		{
			name:    "duplicate event ids",
			yaml:    "events:\n  - { id: 1, title: A, date: \"2024-01-01\", category: Family }\n  - { id: 1, title: B, date: \"2024-01-02\", category: Family }\n",
			wantErr: "duplicate id 1",
		},
		{
			name:    "member without id",
			yaml:    "members:\n  - { name: Ada, role: Parent }\n",
			wantErr: "id must be positive",
		},
		{
			name:    "unknown metric",
			yaml:    "health:\n  sleep:\n    - { label: Jan 1, values: { Ada: 8 } }\n",
			wantErr: "unknown health metric",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := fixtures.Parse([]byte(tt.yaml))
			require.NoError(t, err)

			_, err = doc.Build()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixtures.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tasks:\n  - { id: 7, title: Mow, category: Home }\n"), 0o600))

	doc, err := fixtures.Load(path)
	require.NoError(t, err)
	data, err := doc.Build()
	require.NoError(t, err)
	require.Len(t, data.Tasks, 1)
	assert.Equal(t, 7, data.Tasks[0].ID)

	_, err = fixtures.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = fixtures.Parse([]byte("recipes: [unclosed"))
	assert.Error(t, err)
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	doc, err := fixtures.Load("")
	require.NoError(t, err)
	data, err := doc.Build()
	require.NoError(t, err)

	repos := fixtures.Repositories{
		Recipes:   memory.NewRecipeRepository(),
		MealPlans: memory.NewMealPlanRepository(),
		Shopping:  memory.NewShoppingRepository(),
		Tasks:     memory.NewTaskRepository(),
		Calendar:  memory.NewCalendarRepository(),
		Members:   memory.NewMemberRepository(),
		Health:    memory.NewHealthRepository(),
	}
	require.NoError(t, fixtures.Seed(ctx, data, repos))

	recipes, err := repos.Recipes.List(ctx)
	require.NoError(t, err)
	assert.Len(t, recipes, 3)

	list, err := repos.Shopping.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, list.Remaining())

	plan, err := repos.MealPlans.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, plan.Len())

	weight, err := repos.Health.Series(ctx, health.MetricWeight)
	require.NoError(t, err)
	assert.Len(t, weight.Readings, 6)
}
