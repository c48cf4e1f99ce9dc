package recipe

import (
	"github.com/hearthhq/hearth/internal/domain/recipe"
	"github.com/hearthhq/hearth/internal/ports/inbound"
)

func toDraft(cmd inbound.SaveRecipeCommand) recipe.Draft {
	d := recipe.Draft{
		ID:          cmd.ID,
		Title:       cmd.Title,
		Description: cmd.Description,
		Category:    cmd.Category,
		PrepTime:    cmd.PrepTime,
		CookTime:    cmd.CookTime,
		Servings:    cmd.Servings,
		Source:      cmd.Source,
		SourceURL:   cmd.SourceURL,
		Image:       cmd.Image,
		Tags:        cmd.Tags,
		Favorite:    cmd.Favorite,
		Rating:      cmd.Rating,
	}
	for _, ing := range cmd.Ingredients {
		d.Ingredients = append(d.Ingredients, recipe.Ingredient{
			ID:       ing.ID,
			Name:     ing.Name,
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
			Note:     ing.Note,
		})
	}
	for _, step := range cmd.Steps {
		d.Steps = append(d.Steps, recipe.Step{ID: step.ID, Description: step.Description})
	}
	return d
}

func toDTO(r *recipe.Recipe) *inbound.RecipeDTO {
	dto := &inbound.RecipeDTO{
		ID:          r.ID(),
		Title:       r.Title(),
		Description: r.Description(),
		Category:    r.Category(),
		PrepTime:    r.PrepTime(),
		CookTime:    r.CookTime(),
		Servings:    r.Servings(),
		Source:      r.Source(),
		SourceURL:   r.SourceURL(),
		Image:       r.Image(),
		Ingredients: toIngredientDTOs(r.Ingredients()),
		Steps:       make([]inbound.StepDTO, 0, len(r.Steps())),
		Tags:        r.Tags(),
		Favorite:    r.IsFavorite(),
		Rating:      r.Rating(),
		CreatedAt:   r.CreatedAt(),
		UpdatedAt:   r.UpdatedAt(),
	}
	for _, step := range r.Steps() {
		dto.Steps = append(dto.Steps, inbound.StepDTO{ID: step.ID, Description: step.Description})
	}
	return dto
}

func toIngredientDTOs(ingredients []recipe.Ingredient) []inbound.IngredientDTO {
	out := make([]inbound.IngredientDTO, 0, len(ingredients))
	for _, ing := range ingredients {
		out = append(out, inbound.IngredientDTO{
			ID:       ing.ID,
			Name:     ing.Name,
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
			Note:     ing.Note,
			Label:    ing.Label(),
		})
	}
	return out
}
