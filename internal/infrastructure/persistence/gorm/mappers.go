package gorm

import (
	"github.com/google/uuid"
	"github.com/hearthhq/hearth/internal/domain/mealplan"
	"github.com/hearthhq/hearth/internal/domain/recipe"
)

// RecipeToModel converts a domain recipe to a GORM model
func RecipeToModel(r *recipe.Recipe) *RecipeModel {
	model := &RecipeModel{
		ID:          r.ID(),
		Title:       r.Title(),
		Description: r.Description(),
		Category:    string(r.Category()),
		PrepTime:    r.PrepTime(),
		CookTime:    r.CookTime(),
		Servings:    r.Servings(),
		Source:      r.Source(),
		SourceURL:   r.SourceURL(),
		Image:       r.Image(),
		Tags:        StringSlice(r.Tags()),
		Favorite:    r.IsFavorite(),
		Rating:      r.Rating(),
		CreatedAt:   r.CreatedAt(),
		UpdatedAt:   r.UpdatedAt(),
	}
	for _, ing := range r.Ingredients() {
		model.Ingredients = append(model.Ingredients, IngredientRecord{
			ID:       ing.ID,
			Name:     ing.Name,
			Quantity: ing.Quantity,
			Unit:     string(ing.Unit),
			Note:     ing.Note,
		})
	}
	for _, step := range r.Steps() {
		model.Steps = append(model.Steps, StepRecord{ID: step.ID, Description: step.Description})
	}
	return model
}

// ModelToRecipe converts a GORM model to a domain recipe
func ModelToRecipe(model *RecipeModel) *recipe.Recipe {
	d := recipe.Draft{
		ID:          model.ID,
		Title:       model.Title,
		Description: model.Description,
		Category:    recipe.Category(model.Category),
		PrepTime:    model.PrepTime,
		CookTime:    model.CookTime,
		Servings:    model.Servings,
		Source:      model.Source,
		SourceURL:   model.SourceURL,
		Image:       model.Image,
		Tags:        append([]string{}, model.Tags...),
		Favorite:    model.Favorite,
		Rating:      model.Rating,
	}
	for _, ing := range model.Ingredients {
		d.Ingredients = append(d.Ingredients, recipe.Ingredient{
			ID:       ing.ID,
			Name:     ing.Name,
			Quantity: ing.Quantity,
			Unit:     recipe.Unit(ing.Unit),
			Note:     ing.Note,
		})
	}
	for _, step := range model.Steps {
		d.Steps = append(d.Steps, recipe.Step{ID: step.ID, Description: step.Description})
	}
	return recipe.Restore(d, model.CreatedAt, model.UpdatedAt)
}

// EntryToModel converts a meal plan entry to a GORM model
func EntryToModel(e mealplan.Entry) MealPlanEntryModel {
	return MealPlanEntryModel{
		Kind:     string(e.Slot.Kind),
		Label:    e.Slot.Label,
		MealType: string(e.Slot.MealType),
		RecipeID: e.Recipe.ID.String(),
		Recipe: SnapshotColumn{
			ID:       e.Recipe.ID.String(),
			Title:    e.Recipe.Title,
			Image:    e.Recipe.Image,
			PrepTime: e.Recipe.PrepTime,
			CookTime: e.Recipe.CookTime,
			Servings: e.Recipe.Servings,
			Rating:   e.Recipe.Rating,
			Category: string(e.Recipe.Category),
			Favorite: e.Recipe.Favorite,
		},
	}
}

// ModelToEntry converts a GORM model to a meal plan entry
func ModelToEntry(m MealPlanEntryModel) mealplan.Entry {
	id, _ := uuid.Parse(m.Recipe.ID)
	return mealplan.Entry{
		Slot: mealplan.SlotKey{
			Kind:     mealplan.SlotKind(m.Kind),
			Label:    m.Label,
			MealType: mealplan.MealType(m.MealType),
		},
		Recipe: recipe.Snapshot{
			ID:       id,
			Title:    m.Recipe.Title,
			Image:    m.Recipe.Image,
			PrepTime: m.Recipe.PrepTime,
			CookTime: m.Recipe.CookTime,
			Servings: m.Recipe.Servings,
			Rating:   m.Recipe.Rating,
			Category: recipe.Category(m.Recipe.Category),
			Favorite: m.Recipe.Favorite,
		},
	}
}
