// Package outbound defines the interfaces for outbound ports (secondary/driven adapters)
// These are the interfaces the application needs from storage and caching
package outbound

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/hearthhq/hearth/internal/domain/calendar"
	"github.com/hearthhq/hearth/internal/domain/health"
	"github.com/hearthhq/hearth/internal/domain/mealplan"
	"github.com/hearthhq/hearth/internal/domain/member"
	"github.com/hearthhq/hearth/internal/domain/recipe"
	"github.com/hearthhq/hearth/internal/domain/shopping"
	"github.com/hearthhq/hearth/internal/domain/task"
)

var (
	// ErrNotFound is returned by repositories for unknown identifiers
	ErrNotFound = errors.New("not found")
	// ErrCacheMiss is returned by caches for absent or expired keys
	ErrCacheMiss = errors.New("cache miss")
)

// RecipeRepository stores the recipe catalog. List returns recipes in the
// order they were first saved; saving an existing id replaces it in place.
type RecipeRepository interface {
	Save(ctx context.Context, r *recipe.Recipe) error
	FindByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error)
	List(ctx context.Context) ([]*recipe.Recipe, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// MealPlanRepository loads and replaces the whole meal plan
type MealPlanRepository interface {
	Load(ctx context.Context) (*mealplan.Plan, error)
	Store(ctx context.Context, plan *mealplan.Plan) error
}

// ShoppingRepository loads and replaces the shopping list
type ShoppingRepository interface {
	Load(ctx context.Context) (*shopping.List, error)
	Store(ctx context.Context, list *shopping.List) error
}

// TaskRepository loads and replaces the task list
type TaskRepository interface {
	Load(ctx context.Context) (*task.List, error)
	Store(ctx context.Context, list *task.List) error
}

// CalendarRepository loads and replaces the event calendar
type CalendarRepository interface {
	Load(ctx context.Context) (*calendar.Calendar, error)
	Store(ctx context.Context, cal *calendar.Calendar) error
}

// MemberRepository loads and replaces the family roster
type MemberRepository interface {
	Load(ctx context.Context) (*member.Roster, error)
	Store(ctx context.Context, roster *member.Roster) error
}

// HealthRepository serves health series by metric
type HealthRepository interface {
	Series(ctx context.Context, metric health.Metric) (health.Series, error)
	Store(ctx context.Context, series health.Series) error
}

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Ping(ctx context.Context) error
}
