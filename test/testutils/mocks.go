// Package testutils provides mock implementations for testing
package testutils

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hearthhq/hearth/internal/domain/mealplan"
	"github.com/hearthhq/hearth/internal/domain/recipe"
	"github.com/hearthhq/hearth/internal/domain/shared"
	"github.com/hearthhq/hearth/internal/ports/inbound"
	"github.com/hearthhq/hearth/internal/ports/outbound"
	"github.com/stretchr/testify/mock"
)

// MockRecipeRepository provides a mock implementation of RecipeRepository
type MockRecipeRepository struct {
	mock.Mock
}

var _ outbound.RecipeRepository = (*MockRecipeRepository)(nil)

// Save saves a recipe
func (m *MockRecipeRepository) Save(ctx context.Context, r *recipe.Recipe) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

// FindByID finds a recipe by ID
func (m *MockRecipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error) {
	args := m.Called(ctx, id)
	if r, ok := args.Get(0).(*recipe.Recipe); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

// List lists recipes
func (m *MockRecipeRepository) List(ctx context.Context) ([]*recipe.Recipe, error) {
	args := m.Called(ctx)
	if rs, ok := args.Get(0).([]*recipe.Recipe); ok {
		return rs, args.Error(1)
	}
	return nil, args.Error(1)
}

// Delete deletes a recipe
func (m *MockRecipeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockMealPlanRepository provides a mock implementation of MealPlanRepository
type MockMealPlanRepository struct {
	mock.Mock
}

var _ outbound.MealPlanRepository = (*MockMealPlanRepository)(nil)

// Load loads the plan
func (m *MockMealPlanRepository) Load(ctx context.Context) (*mealplan.Plan, error) {
	args := m.Called(ctx)
	if p, ok := args.Get(0).(*mealplan.Plan); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

// Store stores the plan
func (m *MockMealPlanRepository) Store(ctx context.Context, plan *mealplan.Plan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

// MockCacheRepository provides a mock implementation of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

var _ outbound.CacheRepository = (*MockCacheRepository)(nil)

// Get retrieves a value from cache
func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if b, ok := args.Get(0).([]byte); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

// Set stores a value in cache
func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

// Delete removes keys from cache
func (m *MockCacheRepository) Delete(ctx context.Context, keys ...string) error {
	args := m.Called(ctx, keys)
	return args.Error(0)
}

// Ping checks the cache
func (m *MockCacheRepository) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockShoppingService provides a mock implementation of ShoppingService
type MockShoppingService struct {
	mock.Mock
}

var _ inbound.ShoppingService = (*MockShoppingService)(nil)

// List lists items
func (m *MockShoppingService) List(ctx context.Context, category string) ([]inbound.ShoppingItemDTO, error) {
	args := m.Called(ctx, category)
	if items, ok := args.Get(0).([]inbound.ShoppingItemDTO); ok {
		return items, args.Error(1)
	}
	return nil, args.Error(1)
}

// Add adds an item
func (m *MockShoppingService) Add(ctx context.Context, cmd inbound.AddShoppingItemCommand) (*inbound.ShoppingItemDTO, error) {
	args := m.Called(ctx, cmd)
	if item, ok := args.Get(0).(*inbound.ShoppingItemDTO); ok {
		return item, args.Error(1)
	}
	return nil, args.Error(1)
}

// AddIngredients adds recipe ingredients
func (m *MockShoppingService) AddIngredients(ctx context.Context, recipeID string, ingredients []recipe.Ingredient) ([]inbound.ShoppingItemDTO, error) {
	args := m.Called(ctx, recipeID, ingredients)
	if items, ok := args.Get(0).([]inbound.ShoppingItemDTO); ok {
		return items, args.Error(1)
	}
	return nil, args.Error(1)
}

// Toggle flips an item
func (m *MockShoppingService) Toggle(ctx context.Context, id int) (*inbound.ShoppingItemDTO, error) {
	args := m.Called(ctx, id)
	if item, ok := args.Get(0).(*inbound.ShoppingItemDTO); ok {
		return item, args.Error(1)
	}
	return nil, args.Error(1)
}

// Delete removes an item
func (m *MockShoppingService) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockMealPlanService provides a mock implementation of MealPlanService
type MockMealPlanService struct {
	mock.Mock
}

var _ inbound.MealPlanService = (*MockMealPlanService)(nil)

// Assign assigns a snapshot
func (m *MockMealPlanService) Assign(ctx context.Context, slot mealplan.SlotKey, snapshot recipe.Snapshot) (*inbound.AssignResultDTO, error) {
	args := m.Called(ctx, slot, snapshot)
	if res, ok := args.Get(0).(*inbound.AssignResultDTO); ok {
		return res, args.Error(1)
	}
	return nil, args.Error(1)
}

// Remove clears a slot
func (m *MockMealPlanService) Remove(ctx context.Context, slot mealplan.SlotKey) (bool, error) {
	args := m.Called(ctx, slot)
	return args.Bool(0), args.Error(1)
}

// Drop applies a drop
func (m *MockMealPlanService) Drop(ctx context.Context, cmd inbound.DropCommand) (*inbound.DropResultDTO, error) {
	args := m.Called(ctx, cmd)
	if res, ok := args.Get(0).(*inbound.DropResultDTO); ok {
		return res, args.Error(1)
	}
	return nil, args.Error(1)
}

// Get reads a slot
func (m *MockMealPlanService) Get(ctx context.Context, slot mealplan.SlotKey) (*inbound.MealEntryDTO, error) {
	args := m.Called(ctx, slot)
	if res, ok := args.Get(0).(*inbound.MealEntryDTO); ok {
		return res, args.Error(1)
	}
	return nil, args.Error(1)
}

// Entries lists entries
func (m *MockMealPlanService) Entries(ctx context.Context) ([]inbound.MealEntryDTO, error) {
	args := m.Called(ctx)
	if res, ok := args.Get(0).([]inbound.MealEntryDTO); ok {
		return res, args.Error(1)
	}
	return nil, args.Error(1)
}

// Week returns the week view
func (m *MockMealPlanService) Week(ctx context.Context) ([]mealplan.DayRow, error) {
	args := m.Called(ctx)
	if res, ok := args.Get(0).([]mealplan.DayRow); ok {
		return res, args.Error(1)
	}
	return nil, args.Error(1)
}

// ForDate lists a date's entries
func (m *MockMealPlanService) ForDate(ctx context.Context, date string) ([]inbound.MealEntryDTO, error) {
	args := m.Called(ctx, date)
	if res, ok := args.Get(0).([]inbound.MealEntryDTO); ok {
		return res, args.Error(1)
	}
	return nil, args.Error(1)
}

// RecordingSink collects published domain events
type RecordingSink struct {
	mu     sync.Mutex
	events []shared.DomainEvent
}

var _ shared.EventSink = (*RecordingSink)(nil)

// Publish records events
func (s *RecordingSink) Publish(events ...shared.DomainEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, events...)
}

// Names returns the recorded event names in order
func (s *RecordingSink) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, len(s.events))
	for i, e := range s.events {
		names[i] = e.EventName()
	}
	return names
}

// Events returns the recorded events
func (s *RecordingSink) Events() []shared.DomainEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]shared.DomainEvent(nil), s.events...)
}
