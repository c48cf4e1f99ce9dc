package mealplan

import (
	"time"

	"github.com/google/uuid"
)

// MealAssignedEvent is raised when a slot receives a recipe
type MealAssignedEvent struct {
	Slot       SlotKey
	RecipeID   uuid.UUID
	Replaced   bool
	AssignedAt time.Time
}

func (e MealAssignedEvent) EventName() string {
	return "mealplan.assigned"
}

func (e MealAssignedEvent) OccurredAt() time.Time {
	return e.AssignedAt
}

// MealRemovedEvent is raised when a slot is cleared
type MealRemovedEvent struct {
	Slot      SlotKey
	RemovedAt time.Time
}

func (e MealRemovedEvent) EventName() string {
	return "mealplan.removed"
}

func (e MealRemovedEvent) OccurredAt() time.Time {
	return e.RemovedAt
}
