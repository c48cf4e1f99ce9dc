// Package mealplan provides the application layer for the meal planner
package mealplan

import (
	"context"
	stderrors "errors"
	"sync"
	"time"

	"github.com/hearthhq/hearth/internal/domain/mealplan"
	"github.com/hearthhq/hearth/internal/domain/recipe"
	"github.com/hearthhq/hearth/internal/domain/shared"
	"github.com/hearthhq/hearth/internal/ports/inbound"
	"github.com/hearthhq/hearth/internal/ports/outbound"
	"github.com/hearthhq/hearth/pkg/errors"
	"go.uber.org/zap"
)

// MealPlanService implements the meal planner use cases. Mutations run as
// load, modify, store under one lock.
type MealPlanService struct {
	repo   outbound.MealPlanRepository
	events shared.EventSink
	logger *zap.Logger

	mu sync.Mutex
}

var _ inbound.MealPlanService = (*MealPlanService)(nil)

// NewMealPlanService creates a new meal plan service
func NewMealPlanService(repo outbound.MealPlanRepository, events shared.EventSink, logger *zap.Logger) *MealPlanService {
	return &MealPlanService{
		repo:   repo,
		events: events,
		logger: logger.Named("mealplan-service"),
	}
}

// Assign puts a recipe snapshot in slot, replacing whatever was there
func (s *MealPlanService) Assign(ctx context.Context, slot mealplan.SlotKey, snapshot recipe.Snapshot) (*inbound.AssignResultDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	plan, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	previous, replaced, err := plan.Assign(slot, snapshot)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.store(ctx, plan); err != nil {
		return nil, err
	}

	s.logger.Info("Meal assigned",
		zap.String("slot", slot.String()),
		zap.String("recipe_id", snapshot.ID.String()),
		zap.Bool("replaced", replaced),
	)

	result := &inbound.AssignResultDTO{Entry: toEntryDTO(mealplan.Entry{Slot: slot, Recipe: snapshot})}
	if replaced {
		result.Previous = &previous
	}
	return result, nil
}

// Remove clears slot; an empty slot reports false without error
func (s *MealPlanService) Remove(ctx context.Context, slot mealplan.SlotKey) (bool, error) {
	if err := slot.Validate(); err != nil {
		return false, errors.NewValidationError(err.Error())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	plan, err := s.load(ctx)
	if err != nil {
		return false, err
	}

	if !plan.Remove(slot) {
		return false, nil
	}
	if err := s.store(ctx, plan); err != nil {
		return false, err
	}

	s.logger.Info("Meal removed", zap.String("slot", slot.String()))
	return true, nil
}

// Drop applies a drag-and-drop. Empty or malformed payloads are logged and
// leave the plan unchanged; they are not reported as errors.
func (s *MealPlanService) Drop(ctx context.Context, cmd inbound.DropCommand) (*inbound.DropResultDTO, error) {
	active := mealplan.MealType(cmd.ActiveMealType)
	if active == "" {
		active = mealplan.MealBreakfast
	}

	drop := mealplan.Drop{
		Kind:     cmd.Kind,
		Label:    cmd.Label,
		Payload:  cmd.Payload,
		MealType: mealplan.MealType(cmd.MealType),
	}
	slot, snapshot, err := drop.Decode(active)
	switch {
	case stderrors.Is(err, mealplan.ErrEmptyPayload), stderrors.Is(err, mealplan.ErrMalformedPayload):
		s.logger.Error("Error processing drop",
			zap.String("label", cmd.Label),
			zap.String("meal_type", cmd.MealType),
			zap.Error(err),
		)
		return &inbound.DropResultDTO{Applied: false}, nil
	case err != nil:
		return nil, errors.NewValidationError(err.Error()).WithMetadata("label", cmd.Label)
	}

	result, err := s.Assign(ctx, slot, snapshot)
	if err != nil {
		return nil, err
	}
	return &inbound.DropResultDTO{Applied: true, Entry: &result.Entry}, nil
}

// Get returns the meal in slot
func (s *MealPlanService) Get(ctx context.Context, slot mealplan.SlotKey) (*inbound.MealEntryDTO, error) {
	plan, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	snapshot, ok := plan.Get(slot)
	if !ok {
		return nil, errors.NewSlotNotFoundError(slot.String())
	}
	dto := toEntryDTO(mealplan.Entry{Slot: slot, Recipe: snapshot})
	return &dto, nil
}

// Entries lists every planned meal
func (s *MealPlanService) Entries(ctx context.Context) ([]inbound.MealEntryDTO, error) {
	plan, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return toEntryDTOs(plan.Entries()), nil
}

// Week returns the weekday grid
func (s *MealPlanService) Week(ctx context.Context) ([]mealplan.DayRow, error) {
	plan, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return plan.Week(), nil
}

// ForDate lists the meals planned on a YYYY-MM-DD date
func (s *MealPlanService) ForDate(ctx context.Context, date string) ([]inbound.MealEntryDTO, error) {
	day, err := time.Parse(mealplan.DateLayout, date)
	if err != nil {
		return nil, errors.NewValidationError("date must be YYYY-MM-DD")
	}

	plan, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return toEntryDTOs(plan.ForDate(day)), nil
}

func (s *MealPlanService) load(ctx context.Context) (*mealplan.Plan, error) {
	plan, err := s.repo.Load(ctx)
	if err != nil {
		return nil, errors.NewStorageError("load meal plan", err)
	}
	return plan, nil
}

func (s *MealPlanService) store(ctx context.Context, plan *mealplan.Plan) error {
	if err := s.repo.Store(ctx, plan); err != nil {
		return errors.NewStorageError("store meal plan", err)
	}
	if events := plan.Events(); s.events != nil && len(events) > 0 {
		s.events.Publish(events...)
	}
	return nil
}

func toEntryDTO(e mealplan.Entry) inbound.MealEntryDTO {
	return inbound.MealEntryDTO{Key: e.Slot.String(), Slot: e.Slot, Recipe: e.Recipe}
}

func toEntryDTOs(entries []mealplan.Entry) []inbound.MealEntryDTO {
	out := make([]inbound.MealEntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, toEntryDTO(e))
	}
	return out
}
