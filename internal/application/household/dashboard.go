package household

import (
	"context"
	"time"

	"github.com/hearthhq/hearth/internal/domain/calendar"
	"github.com/hearthhq/hearth/internal/domain/mealplan"
	"github.com/hearthhq/hearth/internal/ports/inbound"
	"github.com/hearthhq/hearth/internal/ports/outbound"
	"github.com/hearthhq/hearth/pkg/errors"
	"go.uber.org/zap"
)

// upcomingLimit bounds the dashboard's upcoming events
const upcomingLimit = 5

// DashboardService assembles the home page summary from the other stores
type DashboardService struct {
	tasks     outbound.TaskRepository
	shopping  outbound.ShoppingRepository
	calendar  outbound.CalendarRepository
	mealPlans outbound.MealPlanRepository
	now       func() time.Time
	logger    *zap.Logger
}

var _ inbound.DashboardService = (*DashboardService)(nil)

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	tasks outbound.TaskRepository,
	shopping outbound.ShoppingRepository,
	calendar outbound.CalendarRepository,
	mealPlans outbound.MealPlanRepository,
	logger *zap.Logger,
) *DashboardService {
	return &DashboardService{
		tasks:     tasks,
		shopping:  shopping,
		calendar:  calendar,
		mealPlans: mealPlans,
		now:       time.Now,
		logger:    logger.Named("dashboard-service"),
	}
}

// Greeting picks the salutation for the local hour
func Greeting(t time.Time) string {
	switch h := t.Hour(); {
	case h < 12:
		return "Good morning"
	case h < 18:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}

// Summary builds today's overview
func (s *DashboardService) Summary(ctx context.Context) (*inbound.DashboardDTO, error) {
	now := s.now()
	today := now.Format(calendar.DateLayout)

	tasks, err := s.tasks.Load(ctx)
	if err != nil {
		return nil, errors.NewStorageError("load tasks", err)
	}
	list, err := s.shopping.Load(ctx)
	if err != nil {
		return nil, errors.NewStorageError("load shopping list", err)
	}
	cal, err := s.calendar.Load(ctx)
	if err != nil {
		return nil, errors.NewStorageError("load calendar", err)
	}
	plan, err := s.mealPlans.Load(ctx)
	if err != nil {
		return nil, errors.NewStorageError("load meal plan", err)
	}

	todayEvents := cal.OnDate(today)
	if todayEvents == nil {
		todayEvents = []calendar.Event{}
	}
	upcoming := cal.Upcoming(now, upcomingLimit)
	if upcoming == nil {
		upcoming = []calendar.Event{}
	}

	// Today's meals come from the date slot and from the weekday slot.
	meals := plan.ForDate(now)
	meals = append(meals, plan.ForLabel(mealplan.KindWeekday, now.Weekday().String())...)
	todayMeals := make([]inbound.MealEntryDTO, 0, len(meals))
	for _, e := range meals {
		todayMeals = append(todayMeals, inbound.MealEntryDTO{Key: e.Slot.String(), Slot: e.Slot, Recipe: e.Recipe})
	}

	var coverage inbound.MealCoverage
	for _, row := range plan.Week() {
		for _, cell := range row.Meals {
			if cell.Recipe != nil {
				coverage.Planned++
			} else {
				coverage.Unplanned++
			}
		}
	}

	s.logger.Debug("Dashboard summary built",
		zap.String("date", today),
		zap.Int("today_events", len(todayEvents)),
		zap.Int("today_meals", len(todayMeals)),
	)

	return &inbound.DashboardDTO{
		Greeting:          Greeting(now),
		Date:              today,
		Tasks:             tasks.Status(now),
		ShoppingRemaining: list.Remaining(),
		TodayEvents:       todayEvents,
		UpcomingEvents:    upcoming,
		TodayMeals:        todayMeals,
		MealPlan:          coverage,
	}, nil
}
