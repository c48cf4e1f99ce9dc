package shopping

import (
	"testing"

	"github.com/hearthhq/hearth/internal/domain/recipe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListAdd(t *testing.T) {
	l := NewList(Item{ID: 4, Name: "Milk", Category: CategoryGroceries})

	item, err := l.Add(Item{Name: "  Soap ", Category: CategoryHousehold, Completed: true})
	require.NoError(t, err)
	assert.Equal(t, 5, item.ID, "ids continue from the largest")
	assert.Equal(t, "Soap", item.Name)
	assert.False(t, item.Completed)

	item, err = l.Add(Item{Name: "Bread"})
	require.NoError(t, err)
	assert.Equal(t, CategoryGroceries, item.Category)

	_, err = l.Add(Item{Name: " "})
	assert.ErrorIs(t, err, ErrNameRequired)

	_, err = l.Add(Item{Name: "Toys", Category: "Fun"})
	assert.ErrorIs(t, err, ErrInvalidCategory)

	assert.Len(t, l.Items(), 3)
}

func TestListAddIngredients(t *testing.T) {
	l := NewList()

	added := l.AddIngredients("recipe-1", []recipe.Ingredient{
		{Name: "spaghetti", Quantity: "400", Unit: recipe.UnitGram},
		{Name: "  "},
		{Name: "parmesan", Note: "grated"},
	})

	require.Len(t, added, 2)
	assert.Equal(t, []int{1, 2}, []int{added[0].ID, added[1].ID})
	assert.Equal(t, "recipe-1", added[0].RecipeID)
	assert.Equal(t, "400 gram spaghetti", added[0].Label())
	assert.Equal(t, "parmesan (grated)", added[1].Label())
}

func TestListToggleDelete(t *testing.T) {
	l := NewList(Item{ID: 1, Name: "Milk", Category: CategoryGroceries}, Item{ID: 2, Name: "Soap", Category: CategoryHousehold})

	item, err := l.Toggle(1)
	require.NoError(t, err)
	assert.True(t, item.Completed)
	assert.Equal(t, 1, l.Remaining())

	_, err = l.Toggle(9)
	assert.ErrorIs(t, err, ErrItemNotFound)

	require.NoError(t, l.Delete(2))
	assert.ErrorIs(t, l.Delete(2), ErrItemNotFound)
	assert.Equal(t, 0, l.Remaining())
}

func TestListFilter(t *testing.T) {
	l := NewList(
		Item{ID: 1, Name: "Milk", Category: CategoryGroceries},
		Item{ID: 2, Name: "Soap", Category: CategoryHousehold},
	)

	assert.Len(t, l.Filter(""), 2)
	assert.Len(t, l.Filter("All"), 2)
	require.Len(t, l.Filter("Household"), 1)
	assert.Equal(t, "Soap", l.Filter("Household")[0].Name)
	assert.Empty(t, l.Filter("Personal"))
}
