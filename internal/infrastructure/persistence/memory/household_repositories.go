package memory

import (
	"context"
	"sync"

	"github.com/hearthhq/hearth/internal/domain/calendar"
	"github.com/hearthhq/hearth/internal/domain/health"
	"github.com/hearthhq/hearth/internal/domain/mealplan"
	"github.com/hearthhq/hearth/internal/domain/member"
	"github.com/hearthhq/hearth/internal/domain/shopping"
	"github.com/hearthhq/hearth/internal/domain/task"
	"github.com/hearthhq/hearth/internal/ports/outbound"
)

// listStore holds a copied slice behind a lock
type listStore[T any] struct {
	mu    sync.RWMutex
	items []T
}

func (s *listStore[T]) load() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

func (s *listStore[T]) store(items []T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make([]T, len(items))
	copy(s.items, items)
}

// MealPlanRepository keeps the meal plan entries
type MealPlanRepository struct {
	entries listStore[mealplan.Entry]
}

var _ outbound.MealPlanRepository = (*MealPlanRepository)(nil)

// NewMealPlanRepository creates an empty meal plan store
func NewMealPlanRepository() *MealPlanRepository {
	return &MealPlanRepository{}
}

// Load returns a fresh plan built from the stored entries
func (r *MealPlanRepository) Load(ctx context.Context) (*mealplan.Plan, error) {
	return mealplan.Restore(r.entries.load()), nil
}

// Store replaces the stored entries
func (r *MealPlanRepository) Store(ctx context.Context, plan *mealplan.Plan) error {
	r.entries.store(plan.Entries())
	return nil
}

// ShoppingRepository keeps the shopping list
type ShoppingRepository struct {
	items listStore[shopping.Item]
}

var _ outbound.ShoppingRepository = (*ShoppingRepository)(nil)

// NewShoppingRepository creates a shopping store seeded with items
func NewShoppingRepository(items ...shopping.Item) *ShoppingRepository {
	r := &ShoppingRepository{}
	r.items.store(items)
	return r
}

// Load returns the list
func (r *ShoppingRepository) Load(ctx context.Context) (*shopping.List, error) {
	return shopping.NewList(r.items.load()...), nil
}

// Store replaces the list
func (r *ShoppingRepository) Store(ctx context.Context, list *shopping.List) error {
	r.items.store(list.Items())
	return nil
}

// TaskRepository keeps the task list
type TaskRepository struct {
	tasks listStore[task.Task]
}

var _ outbound.TaskRepository = (*TaskRepository)(nil)

// NewTaskRepository creates a task store seeded with tasks
func NewTaskRepository(tasks ...task.Task) *TaskRepository {
	r := &TaskRepository{}
	r.tasks.store(tasks)
	return r
}

// Load returns the list
func (r *TaskRepository) Load(ctx context.Context) (*task.List, error) {
	return task.NewList(r.tasks.load()...), nil
}

// Store replaces the list
func (r *TaskRepository) Store(ctx context.Context, list *task.List) error {
	r.tasks.store(list.Tasks())
	return nil
}

// CalendarRepository keeps calendar events
type CalendarRepository struct {
	events listStore[calendar.Event]
}

var _ outbound.CalendarRepository = (*CalendarRepository)(nil)

// NewCalendarRepository creates an event store seeded with events
func NewCalendarRepository(events ...calendar.Event) *CalendarRepository {
	r := &CalendarRepository{}
	r.events.store(copyEvents(events))
	return r
}

// Load returns the calendar
func (r *CalendarRepository) Load(ctx context.Context) (*calendar.Calendar, error) {
	return calendar.New(copyEvents(r.events.load())...), nil
}

// Store replaces the calendar
func (r *CalendarRepository) Store(ctx context.Context, cal *calendar.Calendar) error {
	r.events.store(copyEvents(cal.Events()))
	return nil
}

func copyEvents(events []calendar.Event) []calendar.Event {
	out := make([]calendar.Event, len(events))
	for i, e := range events {
		e.Participants = append([]int(nil), e.Participants...)
		out[i] = e
	}
	return out
}

// MemberRepository keeps the family roster
type MemberRepository struct {
	members listStore[member.Member]
}

var _ outbound.MemberRepository = (*MemberRepository)(nil)

// NewMemberRepository creates a roster store seeded with members
func NewMemberRepository(members ...member.Member) *MemberRepository {
	r := &MemberRepository{}
	r.members.store(members)
	return r
}

// Load returns the roster
func (r *MemberRepository) Load(ctx context.Context) (*member.Roster, error) {
	return member.NewRoster(r.members.load()...), nil
}

// Store replaces the roster
func (r *MemberRepository) Store(ctx context.Context, roster *member.Roster) error {
	r.members.store(roster.Members())
	return nil
}

// HealthRepository keeps health series by metric
type HealthRepository struct {
	mu     sync.RWMutex
	series map[health.Metric]health.Series
}

var _ outbound.HealthRepository = (*HealthRepository)(nil)

// NewHealthRepository creates an empty health store
func NewHealthRepository() *HealthRepository {
	return &HealthRepository{series: make(map[health.Metric]health.Series)}
}

// Series returns the readings of metric
func (r *HealthRepository) Series(ctx context.Context, metric health.Metric) (health.Series, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.series[metric]
	if !ok {
		return health.Series{}, outbound.ErrNotFound
	}
	readings := make([]health.Reading, len(s.Readings))
	copy(readings, s.Readings)
	return health.Series{Metric: s.Metric, Readings: readings}, nil
}

// Store replaces the series of its metric
func (r *HealthRepository) Store(ctx context.Context, series health.Series) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.series[series.Metric] = series
	return nil
}
