package inbound

import (
	"context"

	"github.com/hearthhq/hearth/internal/domain/calendar"
	"github.com/hearthhq/hearth/internal/domain/task"
)

// DashboardService builds the home page summary
type DashboardService interface {
	Summary(ctx context.Context) (*DashboardDTO, error)
}

// DashboardDTO is the "today" overview
type DashboardDTO struct {
	Greeting          string           `json:"greeting"`
	Date              string           `json:"date"`
	Tasks             task.Status      `json:"tasks"`
	ShoppingRemaining int              `json:"shoppingRemaining"`
	TodayEvents       []calendar.Event `json:"todayEvents"`
	UpcomingEvents    []calendar.Event `json:"upcomingEvents"`
	TodayMeals        []MealEntryDTO   `json:"todayMeals"`
	MealPlan          MealCoverage     `json:"mealPlan"`
}

// MealCoverage counts planned and open slots of the week view
type MealCoverage struct {
	Planned   int `json:"planned"`
	Unplanned int `json:"unplanned"`
}
