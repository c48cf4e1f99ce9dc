// Package recipe contains the recipe aggregate, its value objects and the
// quantity scaler.
package recipe

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hearthhq/hearth/internal/domain/shared"
	"github.com/hearthhq/hearth/internal/domain/tags"
)

// DefaultServings is used when a draft leaves servings unset
const DefaultServings = 4

// Recipe is the aggregate root of the recipe catalog.
type Recipe struct {
	id uuid.UUID

	title       string
	description string
	category    Category
	prepTime    string
	cookTime    string
	servings    int

	source    string
	sourceURL string
	image     string

	ingredients []Ingredient
	steps       []Step
	tags        []string

	favorite bool
	rating   float64

	createdAt time.Time
	updatedAt time.Time

	events []shared.DomainEvent
}

// NewRecipe validates a draft and builds a recipe from it. Blank ingredients
// and steps are dropped before the at-least-one checks run. A draft without
// an ID gets a fresh one.
func NewRecipe(d Draft) (*Recipe, error) {
	d.Title = strings.TrimSpace(d.Title)
	if d.Title == "" {
		return nil, ErrTitleRequired
	}

	ingredients := make([]Ingredient, 0, len(d.Ingredients))
	for _, ing := range d.Ingredients {
		if ing.IsBlank() {
			continue
		}
		if !ing.Unit.IsValid() {
			return nil, ErrInvalidUnit
		}
		if ing.ID == "" {
			ing.ID = uuid.NewString()
		}
		ingredients = append(ingredients, ing)
	}
	if len(ingredients) == 0 {
		return nil, ErrIngredientRequired
	}

	steps := make([]Step, 0, len(d.Steps))
	for _, step := range d.Steps {
		if step.IsBlank() {
			continue
		}
		if step.ID == "" {
			step.ID = uuid.NewString()
		}
		steps = append(steps, step)
	}
	if len(steps) == 0 {
		return nil, ErrStepRequired
	}

	if d.Category == "" {
		d.Category = CategoryDinner
	}
	if !d.Category.IsValid() {
		return nil, ErrInvalidCategory
	}

	switch {
	case d.Servings == 0:
		d.Servings = DefaultServings
	case d.Servings < 0:
		return nil, ErrInvalidServings
	}

	if d.Rating < 0 || d.Rating > 5 {
		return nil, ErrInvalidRating
	}

	created := d.ID == uuid.Nil
	if created {
		d.ID = uuid.New()
	}

	maxTags := d.MaxTags
	if maxTags <= 0 {
		maxTags = tags.DefaultMaxTags
	}

	now := time.Now()
	r := &Recipe{
		id:          d.ID,
		title:       d.Title,
		description: d.Description,
		category:    d.Category,
		prepTime:    d.PrepTime,
		cookTime:    d.CookTime,
		servings:    d.Servings,
		source:      d.Source,
		sourceURL:   d.SourceURL,
		image:       d.Image,
		ingredients: ingredients,
		steps:       steps,
		tags:        tags.NewSet(maxTags, d.Tags...).Items(),
		favorite:    d.Favorite,
		rating:      d.Rating,
		createdAt:   now,
		updatedAt:   now,
		events:      []shared.DomainEvent{},
	}

	r.addEvent(RecipeSavedEvent{
		RecipeID: r.id,
		Title:    r.title,
		Created:  created,
		SavedAt:  now,
	})

	return r, nil
}

// Restore rebuilds a stored recipe without validation or events
func Restore(d Draft, createdAt, updatedAt time.Time) *Recipe {
	return &Recipe{
		id:          d.ID,
		title:       d.Title,
		description: d.Description,
		category:    d.Category,
		prepTime:    d.PrepTime,
		cookTime:    d.CookTime,
		servings:    d.Servings,
		source:      d.Source,
		sourceURL:   d.SourceURL,
		image:       d.Image,
		ingredients: d.Ingredients,
		steps:       d.Steps,
		tags:        d.Tags,
		favorite:    d.Favorite,
		rating:      d.Rating,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		events:      []shared.DomainEvent{},
	}
}

// ID returns the recipe's unique identifier
func (r *Recipe) ID() uuid.UUID {
	return r.id
}

// Title returns the recipe's title
func (r *Recipe) Title() string {
	return r.title
}

// Description returns the recipe's description
func (r *Recipe) Description() string {
	return r.description
}

// Category returns the recipe's category
func (r *Recipe) Category() Category {
	return r.category
}

// PrepTime returns the free-text preparation time
func (r *Recipe) PrepTime() string {
	return r.prepTime
}

// CookTime returns the free-text cooking time
func (r *Recipe) CookTime() string {
	return r.cookTime
}

// Servings returns the number of servings
func (r *Recipe) Servings() int {
	return r.servings
}

// Source returns where the recipe came from
func (r *Recipe) Source() string {
	return r.source
}

// SourceURL returns the source link
func (r *Recipe) SourceURL() string {
	return r.sourceURL
}

// Image returns the image reference
func (r *Recipe) Image() string {
	return r.image
}

// Ingredients returns a copy of the ingredient list
func (r *Recipe) Ingredients() []Ingredient {
	out := make([]Ingredient, len(r.ingredients))
	copy(out, r.ingredients)
	return out
}

// Steps returns a copy of the steps in order
func (r *Recipe) Steps() []Step {
	out := make([]Step, len(r.steps))
	copy(out, r.steps)
	return out
}

// Tags returns a copy of the tags in order
func (r *Recipe) Tags() []string {
	out := make([]string, len(r.tags))
	copy(out, r.tags)
	return out
}

// HasTag reports whether the recipe carries tag
func (r *Recipe) HasTag(tag string) bool {
	for _, t := range r.tags {
		if t == tag {
			return true
		}
	}
	return false
}

// IsFavorite reports the favorite flag
func (r *Recipe) IsFavorite() bool {
	return r.favorite
}

// Rating returns the 0..5 rating
func (r *Recipe) Rating() float64 {
	return r.rating
}

// CreatedAt returns when the recipe was first saved
func (r *Recipe) CreatedAt() time.Time {
	return r.createdAt
}

// UpdatedAt returns when the recipe was last saved
func (r *Recipe) UpdatedAt() time.Time {
	return r.updatedAt
}

// Draft returns the editable fields, suitable for a full-replacement edit
func (r *Recipe) Draft() Draft {
	return Draft{
		ID:          r.id,
		Title:       r.title,
		Description: r.description,
		Category:    r.category,
		PrepTime:    r.prepTime,
		CookTime:    r.cookTime,
		Servings:    r.servings,
		Source:      r.source,
		SourceURL:   r.sourceURL,
		Image:       r.image,
		Ingredients: r.Ingredients(),
		Steps:       r.Steps(),
		Tags:        r.Tags(),
		Favorite:    r.favorite,
		Rating:      r.rating,
	}
}

// Snapshot copies the fields a meal plan slot displays
func (r *Recipe) Snapshot() Snapshot {
	return Snapshot{
		ID:       r.id,
		Title:    r.title,
		Image:    r.image,
		PrepTime: r.prepTime,
		CookTime: r.cookTime,
		Servings: r.servings,
		Rating:   r.rating,
		Category: r.category,
		Favorite: r.favorite,
	}
}

// ReplaceTags swaps the tag list through the bounded set rules.
func (r *Recipe) ReplaceTags(newTags []string, max int) {
	set := tags.NewSet(max, newTags...)
	old := r.Tags()
	r.tags = set.Items()
	r.updatedAt = time.Now()

	r.addEvent(RecipeTagsUpdatedEvent{
		RecipeID:  r.id,
		OldTags:   old,
		NewTags:   r.Tags(),
		UpdatedAt: r.updatedAt,
	})
}

// KeepCreatedAt carries the original creation time over a replacement save
func (r *Recipe) KeepCreatedAt(createdAt time.Time) {
	if !createdAt.IsZero() {
		r.createdAt = createdAt
	}
}

// MarkDeleted records the deletion as a domain event
func (r *Recipe) MarkDeleted() {
	r.addEvent(RecipeDeletedEvent{
		RecipeID:  r.id,
		Title:     r.title,
		DeletedAt: time.Now(),
	})
}

// Events returns and clears pending domain events
func (r *Recipe) Events() []shared.DomainEvent {
	events := r.events
	r.events = []shared.DomainEvent{}
	return events
}

func (r *Recipe) addEvent(event shared.DomainEvent) {
	r.events = append(r.events, event)
}
