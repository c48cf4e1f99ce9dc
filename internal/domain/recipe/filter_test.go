package recipe_test

import (
	"testing"

	"github.com/hearthhq/hearth/internal/domain/recipe"
	"github.com/hearthhq/hearth/test/testutils"
	"github.com/stretchr/testify/assert"
)

func TestFilterApply(t *testing.T) {
	bolognese := testutils.NewRecipeBuilder().WithTitle("Spaghetti Bolognese").WithTags("pasta", "italian").MustBuild()
	toast := testutils.NewRecipeBuilder().WithTitle("Avocado Toast").WithCategory(recipe.CategoryBreakfast).WithTags("quick").WithFavorite().MustBuild()
	salad := testutils.NewRecipeBuilder().WithTitle("Chicken Caesar Salad").WithCategory(recipe.CategoryLunch).WithTags("quick", "salad").MustBuild()
	all := []*recipe.Recipe{bolognese, toast, salad}

	titles := func(rs []*recipe.Recipe) []string {
		out := make([]string, len(rs))
		for i, r := range rs {
			out[i] = r.Title()
		}
		return out
	}

	tests := []struct {
		name   string
		filter recipe.Filter
		want   []string
	}{
		{"Zero", recipe.Filter{}, []string{"Spaghetti Bolognese", "Avocado Toast", "Chicken Caesar Salad"}},
		{"SearchCaseInsensitive", recipe.Filter{Search: "TOAST"}, []string{"Avocado Toast"}},
		{"All", recipe.Filter{Category: recipe.FilterAll}, []string{"Spaghetti Bolognese", "Avocado Toast", "Chicken Caesar Salad"}},
		{"Favorites", recipe.Filter{Category: recipe.FilterFavorites}, []string{"Avocado Toast"}},
		{"Category", recipe.Filter{Category: "Lunch"}, []string{"Chicken Caesar Salad"}},
		{"Tag", recipe.Filter{Tag: "quick"}, []string{"Avocado Toast", "Chicken Caesar Salad"}},
		{"TagIsCaseSensitive", recipe.Filter{Tag: "Quick"}, []string{}},
		{"Combined", recipe.Filter{Search: "a", Category: "Lunch", Tag: "salad"}, []string{"Chicken Caesar Salad"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, titles(tt.filter.Apply(all)))
		})
	}
}

func TestVocabulary(t *testing.T) {
	rs := []*recipe.Recipe{
		testutils.NewRecipeBuilder().WithTags("quick", "pasta").MustBuild(),
		testutils.NewRecipeBuilder().WithTags("quick", "Breakfast").MustBuild(),
	}

	got := recipe.Vocabulary(rs)

	assert.Equal(t, []recipe.TagCount{
		{Tag: "Breakfast", Count: 1},
		{Tag: "pasta", Count: 1},
		{Tag: "quick", Count: 2},
	}, got)
}
