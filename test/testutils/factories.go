// Package testutils provides test data factories for consistent test data generation
package testutils

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/hearthhq/hearth/internal/domain/calendar"
	"github.com/hearthhq/hearth/internal/domain/member"
	"github.com/hearthhq/hearth/internal/domain/recipe"
	"github.com/hearthhq/hearth/internal/domain/shopping"
	"github.com/hearthhq/hearth/internal/domain/task"
)

// Factory creates household test data from a seeded faker
type Factory struct {
	faker *gofakeit.Faker
}

// NewFactory creates a new factory; equal seeds give equal data
func NewFactory(seed int64) *Factory {
	return &Factory{
		faker: gofakeit.New(seed),
	}
}

// Recipe creates a valid recipe with two ingredients and two steps
func (f *Factory) Recipe() *recipe.Recipe {
	r, err := NewRecipeBuilder().
		WithTitle(f.faker.Dinner()).
		WithIngredient(f.faker.Vegetable(), fmt.Sprint(f.faker.Number(1, 4)), recipe.UnitCup).
		WithIngredient(f.faker.Fruit(), "1/2", recipe.UnitWhole).
		WithStep(f.faker.Sentence(6)).
		WithStep(f.faker.Sentence(8)).
		WithServings(f.faker.Number(1, 8)).
		Build()
	if err != nil {
		panic(fmt.Sprintf("testutils: invalid generated recipe: %v", err))
	}
	r.Events()
	return r
}

// Recipes creates n recipes
func (f *Factory) Recipes(n int) []*recipe.Recipe {
	out := make([]*recipe.Recipe, n)
	for i := range out {
		out[i] = f.Recipe()
	}
	return out
}

// ShoppingItem creates an open grocery item
func (f *Factory) ShoppingItem(id int) shopping.Item {
	return shopping.Item{
		ID:       id,
		Name:     f.faker.Vegetable(),
		Category: shopping.CategoryGroceries,
		Quantity: fmt.Sprint(f.faker.Number(1, 5)),
	}
}

// Task creates an open home task due on dueDate
func (f *Factory) Task(id int, dueDate string) task.Task {
	return task.Task{
		ID:       id,
		Title:    f.faker.Sentence(3),
		Category: task.CategoryHome,
		DueDate:  dueDate,
	}
}

// Event creates a family event on date
func (f *Factory) Event(id int, date string) calendar.Event {
	return calendar.Event{
		ID:       id,
		Title:    f.faker.Sentence(2),
		Date:     date,
		Time:     "18:00",
		Category: calendar.CategoryFamily,
	}
}

// Member creates a parent with a generated name
func (f *Factory) Member(id int) member.Member {
	name := f.faker.FirstName() + " " + f.faker.LastName()
	return member.Member{
		ID:       id,
		Name:     name,
		Role:     member.RoleParent,
		Initials: member.Initials(name),
	}
}

// RecipeBuilder provides a fluent interface for building test recipes
type RecipeBuilder struct {
	draft recipe.Draft
}

// NewRecipeBuilder creates a new recipe builder with default values
func NewRecipeBuilder() *RecipeBuilder {
	faker := gofakeit.New(time.Now().UnixNano())

	return &RecipeBuilder{
		draft: recipe.Draft{
			Title:       faker.Dinner(),
			Description: faker.Sentence(10),
			Category:    recipe.CategoryDinner,
			PrepTime:    "15 mins",
			CookTime:    "30 mins",
			Servings:    4,
		},
	}
}

// WithID sets the recipe ID; a set ID builds a replacement rather than a new recipe
func (rb *RecipeBuilder) WithID(id uuid.UUID) *RecipeBuilder {
	rb.draft.ID = id
	return rb
}

// WithTitle sets the recipe title
func (rb *RecipeBuilder) WithTitle(title string) *RecipeBuilder {
	rb.draft.Title = title
	return rb
}

// WithCategory sets the recipe category
func (rb *RecipeBuilder) WithCategory(category recipe.Category) *RecipeBuilder {
	rb.draft.Category = category
	return rb
}

// WithServings sets the number of servings
func (rb *RecipeBuilder) WithServings(servings int) *RecipeBuilder {
	rb.draft.Servings = servings
	return rb
}

// WithIngredient appends an ingredient
func (rb *RecipeBuilder) WithIngredient(name, quantity string, unit recipe.Unit) *RecipeBuilder {
	rb.draft.Ingredients = append(rb.draft.Ingredients, recipe.Ingredient{
		ID:       uuid.NewString(),
		Name:     name,
		Quantity: quantity,
		Unit:     unit,
	})
	return rb
}

// WithStep appends a step
func (rb *RecipeBuilder) WithStep(description string) *RecipeBuilder {
	rb.draft.Steps = append(rb.draft.Steps, recipe.Step{ID: uuid.NewString(), Description: description})
	return rb
}

// WithTags sets the tags
func (rb *RecipeBuilder) WithTags(tags ...string) *RecipeBuilder {
	rb.draft.Tags = tags
	return rb
}

// WithFavorite marks the recipe as a favorite
func (rb *RecipeBuilder) WithFavorite() *RecipeBuilder {
	rb.draft.Favorite = true
	return rb
}

// WithRating sets the rating
func (rb *RecipeBuilder) WithRating(rating float64) *RecipeBuilder {
	rb.draft.Rating = rating
	return rb
}

// Draft returns the draft; a builder without ingredients or steps gets one of each
func (rb *RecipeBuilder) Draft() recipe.Draft {
	d := rb.draft
	if len(d.Ingredients) == 0 {
		d.Ingredients = []recipe.Ingredient{{ID: uuid.NewString(), Name: "salt", Quantity: "1", Unit: recipe.UnitPinch}}
	}
	if len(d.Steps) == 0 {
		d.Steps = []recipe.Step{{ID: uuid.NewString(), Description: "Mix everything."}}
	}
	return d
}

// Build validates the draft into a recipe
func (rb *RecipeBuilder) Build() (*recipe.Recipe, error) {
	return recipe.NewRecipe(rb.Draft())
}

// MustBuild builds the recipe and drains its events, panicking on invalid input
func (rb *RecipeBuilder) MustBuild() *recipe.Recipe {
	r, err := rb.Build()
	if err != nil {
		panic(fmt.Sprintf("testutils: %v", err))
	}
	r.Events()
	return r
}
