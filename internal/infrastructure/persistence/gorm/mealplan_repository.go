package gorm

import (
	"context"
	"fmt"

	"github.com/hearthhq/hearth/internal/domain/mealplan"
	"github.com/hearthhq/hearth/internal/ports/outbound"
	"gorm.io/gorm"
)

// MealPlanRepository stores the meal plan as one row per slot
type MealPlanRepository struct {
	db *gorm.DB
}

var _ outbound.MealPlanRepository = (*MealPlanRepository)(nil)

// NewMealPlanRepository creates a new meal plan repository
func NewMealPlanRepository(db *gorm.DB) *MealPlanRepository {
	return &MealPlanRepository{db: db}
}

// Load reads every stored entry into a plan
func (r *MealPlanRepository) Load(ctx context.Context) (*mealplan.Plan, error) {
	var models []MealPlanEntryModel
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to load meal plan: %w", err)
	}

	entries := make([]mealplan.Entry, len(models))
	for i, m := range models {
		entries[i] = ModelToEntry(m)
	}
	return mealplan.Restore(entries), nil
}

// Store replaces all stored entries with the plan's entries
func (r *MealPlanRepository) Store(ctx context.Context, plan *mealplan.Plan) error {
	entries := plan.Entries()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&MealPlanEntryModel{}).Error; err != nil {
			return fmt.Errorf("failed to clear meal plan: %w", err)
		}
		if len(entries) == 0 {
			return nil
		}

		models := make([]MealPlanEntryModel, len(entries))
		for i, e := range entries {
			models[i] = EntryToModel(e)
		}
		if err := tx.CreateInBatches(models, 100).Error; err != nil {
			return fmt.Errorf("failed to store meal plan: %w", err)
		}
		return nil
	})
}
