package recipe

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Category groups recipes on the catalog page
type Category string

const (
	CategoryBreakfast Category = "Breakfast"
	CategoryLunch     Category = "Lunch"
	CategoryDinner    Category = "Dinner"
	CategoryDessert   Category = "Dessert"
	CategorySnack     Category = "Snack"
	CategoryAppetizer Category = "Appetizer"
	CategoryDrink     Category = "Drink"
	CategorySide      Category = "Side"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryBreakfast,
	CategoryLunch,
	CategoryDinner,
	CategoryDessert,
	CategorySnack,
	CategoryAppetizer,
	CategoryDrink,
	CategorySide,
}

// IsValid reports whether c is a known category
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Unit is a cooking measurement unit
type Unit string

const (
	UnitCup        Unit = "cup"
	UnitTablespoon Unit = "tablespoon"
	UnitTeaspoon   Unit = "teaspoon"
	UnitOunce      Unit = "ounce"
	UnitPound      Unit = "pound"
	UnitGram       Unit = "gram"
	UnitKilogram   Unit = "kilogram"
	UnitMilliliter Unit = "milliliter"
	UnitLiter      Unit = "liter"
	UnitPinch      Unit = "pinch"
	UnitDash       Unit = "dash"
	UnitClove      Unit = "clove"
	UnitSlice      Unit = "slice"
	UnitPiece      Unit = "piece"
	UnitWhole      Unit = "whole"
	UnitNone       Unit = "none"
)

// Units lists the selectable units.
var Units = []Unit{
	UnitCup, UnitTablespoon, UnitTeaspoon, UnitOunce, UnitPound, UnitGram,
	UnitKilogram, UnitMilliliter, UnitLiter, UnitPinch, UnitDash, UnitClove,
	UnitSlice, UnitPiece, UnitWhole, UnitNone,
}

// IsValid reports whether u is a known unit; the empty unit is allowed
func (u Unit) IsValid() bool {
	if u == "" {
		return true
	}
	for _, known := range Units {
		if u == known {
			return true
		}
	}
	return false
}

// Ingredient is one line of a recipe's ingredient list
type Ingredient struct {
	ID       string
	Name     string
	Quantity string
	Unit     Unit
	Note     string
}

// IsBlank reports whether the ingredient has no name
func (i Ingredient) IsBlank() bool {
	return strings.TrimSpace(i.Name) == ""
}

// Label renders the ingredient the way the shopping list shows it:
// "qty unit name (note)", skipping empty parts and the "none" unit.
func (i Ingredient) Label() string {
	parts := make([]string, 0, 3)
	if i.Quantity != "" {
		parts = append(parts, i.Quantity)
	}
	if i.Unit != "" && i.Unit != UnitNone {
		parts = append(parts, string(i.Unit))
	}
	parts = append(parts, i.Name)

	label := strings.Join(parts, " ")
	if i.Note != "" {
		label = fmt.Sprintf("%s (%s)", label, i.Note)
	}
	return label
}

// Step is one instruction; order is the slice position
type Step struct {
	ID          string
	Description string
}

// IsBlank reports whether the step has no description
func (s Step) IsBlank() bool {
	return strings.TrimSpace(s.Description) == ""
}

// Snapshot is the copy of a recipe stored in a meal plan slot. It does not
// follow later edits or deletion of the recipe.
type Snapshot struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Image    string    `json:"image,omitempty"`
	PrepTime string    `json:"prepTime,omitempty"`
	CookTime string    `json:"cookTime,omitempty"`
	Servings int       `json:"servings,omitempty"`
	Rating   float64   `json:"rating,omitempty"`
	Category Category  `json:"category,omitempty"`
	Favorite bool      `json:"favorite,omitempty"`
}

// Draft carries the editable fields of a recipe. A zero ID means a new recipe.
type Draft struct {
	ID          uuid.UUID
	Title       string
	Description string
	Category    Category
	PrepTime    string
	CookTime    string
	Servings    int
	Source      string
	SourceURL   string
	Image       string
	Ingredients []Ingredient
	Steps       []Step
	Tags        []string
	Favorite    bool
	Rating      float64

	// MaxTags caps Tags; zero means tags.DefaultMaxTags
	MaxTags int
}

// NewDraft returns a draft with the form defaults applied.
func NewDraft() Draft {
	return Draft{
		Category:    CategoryDinner,
		Servings:    DefaultServings,
		Ingredients: []Ingredient{{ID: uuid.NewString()}},
		Steps:       []Step{{ID: uuid.NewString()}},
	}
}
