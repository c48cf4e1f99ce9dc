// Package shopping holds the household shopping list.
package shopping

import (
	"errors"
	"strings"

	"github.com/hearthhq/hearth/internal/domain/recipe"
	"github.com/hearthhq/hearth/internal/domain/shared"
)

var (
	ErrNameRequired    = errors.New("item name is required")
	ErrInvalidCategory = errors.New("unknown shopping category")
	ErrItemNotFound    = errors.New("shopping item not found")
)

// Category groups shopping items
type Category string

const (
	CategoryGroceries Category = "Groceries"
	CategoryHousehold Category = "Household"
	CategoryPersonal  Category = "Personal"
	CategoryOther     Category = "Other"
)

// Categories lists the item categories; "All" is a filter, not a category.
var Categories = []Category{CategoryGroceries, CategoryHousehold, CategoryPersonal, CategoryOther}

// IsValid reports whether c is a known category
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Item is one line of the shopping list
type Item struct {
	ID        int
	Name      string
	Category  Category
	Completed bool
	Quantity  string
	Unit      recipe.Unit
	Note      string
	RecipeID  string
}

// List is the shopping list aggregate
type List struct {
	items []Item
}

// NewList wraps existing items, keeping their order
func NewList(items ...Item) *List {
	l := &List{items: make([]Item, len(items))}
	copy(l.items, items)
	return l
}

// Add appends item with the next id. The name is trimmed and required; an
// empty category means Groceries.
func (l *List) Add(item Item) (Item, error) {
	item.Name = strings.TrimSpace(item.Name)
	if item.Name == "" {
		return Item{}, ErrNameRequired
	}
	if item.Category == "" {
		item.Category = CategoryGroceries
	}
	if !item.Category.IsValid() {
		return Item{}, ErrInvalidCategory
	}

	item.ID = shared.NextID(l.ids())
	item.Completed = false
	l.items = append(l.items, item)
	return item, nil
}

// AddIngredients appends one Groceries item per ingredient and returns them
func (l *List) AddIngredients(recipeID string, ingredients []recipe.Ingredient) []Item {
	added := make([]Item, 0, len(ingredients))
	for _, ing := range ingredients {
		item, err := l.Add(Item{
			Name:     ing.Name,
			Category: CategoryGroceries,
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
			Note:     ing.Note,
			RecipeID: recipeID,
		})
		if err != nil {
			continue
		}
		added = append(added, item)
	}
	return added
}

// Toggle flips the completed flag of item id
func (l *List) Toggle(id int) (Item, error) {
	for i := range l.items {
		if l.items[i].ID == id {
			l.items[i].Completed = !l.items[i].Completed
			return l.items[i], nil
		}
	}
	return Item{}, ErrItemNotFound
}

// Delete removes item id
func (l *List) Delete(id int) error {
	for i := range l.items {
		if l.items[i].ID == id {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return nil
		}
	}
	return ErrItemNotFound
}

// Filter returns the items of category; "" and "All" return every item
func (l *List) Filter(category string) []Item {
	out := make([]Item, 0, len(l.items))
	for _, it := range l.items {
		if category == "" || category == "All" || string(it.Category) == category {
			out = append(out, it)
		}
	}
	return out
}

// Items returns a copy of every item
func (l *List) Items() []Item {
	return l.Filter("")
}

// Remaining counts items not yet completed
func (l *List) Remaining() int {
	n := 0
	for _, it := range l.items {
		if !it.Completed {
			n++
		}
	}
	return n
}

func (l *List) ids() []int {
	ids := make([]int, len(l.items))
	for i, it := range l.items {
		ids[i] = it.ID
	}
	return ids
}

// Label renders "qty unit name (note)", skipping empty parts
func (it Item) Label() string {
	return recipe.Ingredient{Name: it.Name, Quantity: it.Quantity, Unit: it.Unit, Note: it.Note}.Label()
}
