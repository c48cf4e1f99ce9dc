package inbound

import (
	"context"

	"github.com/hearthhq/hearth/internal/domain/mealplan"
	"github.com/hearthhq/hearth/internal/domain/recipe"
)

// MealPlanService defines the use cases of the meal planner
type MealPlanService interface {
	Assign(ctx context.Context, slot mealplan.SlotKey, snapshot recipe.Snapshot) (*AssignResultDTO, error)
	Remove(ctx context.Context, slot mealplan.SlotKey) (bool, error)
	Drop(ctx context.Context, cmd DropCommand) (*DropResultDTO, error)

	Get(ctx context.Context, slot mealplan.SlotKey) (*MealEntryDTO, error)
	Entries(ctx context.Context) ([]MealEntryDTO, error)
	Week(ctx context.Context) ([]mealplan.DayRow, error)
	ForDate(ctx context.Context, date string) ([]MealEntryDTO, error)
}

// DropCommand is a recipe dropped on a day of the week view or a calendar
// date. MealType may be empty; ActiveMealType is the fallback.
type DropCommand struct {
	Kind           mealplan.SlotKind
	Label          string
	Payload        string
	MealType       string
	ActiveMealType string
}

// MealEntryDTO is one planned meal
type MealEntryDTO struct {
	Key    string           `json:"key"`
	Slot   mealplan.SlotKey `json:"slot"`
	Recipe recipe.Snapshot  `json:"recipe"`
}

// AssignResultDTO reports the new entry and the one it replaced
type AssignResultDTO struct {
	Entry    MealEntryDTO     `json:"entry"`
	Previous *recipe.Snapshot `json:"previous,omitempty"`
}

// DropResultDTO reports whether a drop changed the plan. Malformed drops
// are not errors; they come back with Applied false.
type DropResultDTO struct {
	Applied bool          `json:"applied"`
	Entry   *MealEntryDTO `json:"entry,omitempty"`
}
