package handlers

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/hearthhq/hearth/internal/domain/recipe"
	"github.com/hearthhq/hearth/internal/ports/inbound"
	"github.com/hearthhq/hearth/pkg/errors"
	"go.uber.org/zap"
)

// RecipeHandlers handles the recipe catalog, tags and the quantity scaler
type RecipeHandlers struct {
	responder
	recipeService inbound.RecipeService
}

// NewRecipeHandlers creates recipe handlers
func NewRecipeHandlers(recipeService inbound.RecipeService, logger *zap.Logger) *RecipeHandlers {
	return &RecipeHandlers{
		responder:     newResponder(logger.Named("recipe-handlers")),
		recipeService: recipeService,
	}
}

type ingredientRequest struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Unit     string `json:"unit"`
	Note     string `json:"note"`
}

type stepRequest struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

// saveRecipeRequest leaves title, ingredient and step checks to the domain
// so their messages reach the client unchanged
type saveRecipeRequest struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Category    string              `json:"category"`
	PrepTime    string              `json:"prepTime"`
	CookTime    string              `json:"cookTime"`
	Servings    int                 `json:"servings" validate:"gte=0"`
	Source      string              `json:"source"`
	SourceURL   string              `json:"sourceUrl" validate:"omitempty,url"`
	Image       string              `json:"image"`
	Ingredients []ingredientRequest `json:"ingredients"`
	Steps       []stepRequest       `json:"steps"`
	Tags        []string            `json:"tags"`
	Favorite    bool                `json:"favorite"`
	Rating      float64             `json:"rating" validate:"gte=0,lte=5"`
}

func (req saveRecipeRequest) command(id uuid.UUID) inbound.SaveRecipeCommand {
	cmd := inbound.SaveRecipeCommand{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Category:    recipe.Category(req.Category),
		PrepTime:    req.PrepTime,
		CookTime:    req.CookTime,
		Servings:    req.Servings,
		Source:      req.Source,
		SourceURL:   req.SourceURL,
		Image:       req.Image,
		Tags:        req.Tags,
		Favorite:    req.Favorite,
		Rating:      req.Rating,
	}
	for _, ing := range req.Ingredients {
		cmd.Ingredients = append(cmd.Ingredients, inbound.IngredientDTO{
			ID:       ing.ID,
			Name:     ing.Name,
			Quantity: ing.Quantity,
			Unit:     recipe.Unit(ing.Unit),
			Note:     ing.Note,
		})
	}
	for _, step := range req.Steps {
		cmd.Steps = append(cmd.Steps, inbound.StepDTO{ID: step.ID, Description: step.Description})
	}
	return cmd
}

type tagsRequest struct {
	Tags []string `json:"tags" validate:"required"`
}

type mealPlanRequest struct {
	Date     string `json:"date" validate:"required,datetime=2006-01-02"`
	MealType string `json:"mealType" validate:"required,oneof=Breakfast Lunch Dinner Snack"`
}

type shoppingListRequest struct {
	IngredientIDs []string `json:"ingredientIds"`
}

type scaleRequest struct {
	Quantity string  `json:"quantity"`
	Factor   float64 `json:"factor" validate:"gt=0"`
}

type scaleResponse struct {
	Quantity string  `json:"quantity"`
	Factor   float64 `json:"factor"`
	Scaled   string  `json:"scaled"`
}

// ListRecipes handles GET /api/v1/recipes
func (h *RecipeHandlers) ListRecipes(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	recipes, err := h.recipeService.ListRecipes(r.Context(), inbound.RecipeQuery{
		Search:   q.Get("search"),
		Category: q.Get("category"),
		Tag:      q.Get("tag"),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.ok(w, recipes, "Recipes retrieved successfully")
}

// CreateRecipe handles POST /api/v1/recipes
func (h *RecipeHandlers) CreateRecipe(w http.ResponseWriter, r *http.Request) {
	var req saveRecipeRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	created, err := h.recipeService.SaveRecipe(r.Context(), req.command(uuid.Nil))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.created(w, created, "Recipe created")
}

// GetRecipe handles GET /api/v1/recipes/{id}
func (h *RecipeHandlers) GetRecipe(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	found, err := h.recipeService.GetRecipe(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.ok(w, found, "")
}

// UpdateRecipe handles PUT /api/v1/recipes/{id}
func (h *RecipeHandlers) UpdateRecipe(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req saveRecipeRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	updated, err := h.recipeService.SaveRecipe(r.Context(), req.command(id))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.ok(w, updated, "Recipe updated")
}

// DeleteRecipe handles DELETE /api/v1/recipes/{id}
func (h *RecipeHandlers) DeleteRecipe(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.recipeService.DeleteRecipe(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.ok(w, nil, "Recipe deleted")
}

// UpdateTags handles PUT /api/v1/recipes/{id}/tags
func (h *RecipeHandlers) UpdateTags(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req tagsRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	updated, err := h.recipeService.UpdateTags(r.Context(), id, req.Tags)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.ok(w, updated, "Tags updated")
}

// ScaledRecipe handles GET /api/v1/recipes/{id}/scaled?factor=
func (h *RecipeHandlers) ScaledRecipe(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	factor := 1.0
	if raw := r.URL.Query().Get("factor"); raw != "" {
		factor, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			h.writeError(w, r, errors.NewBadRequestError("factor must be a number"))
			return
		}
	}

	scaled, err := h.recipeService.ScaleRecipe(r.Context(), id, factor)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.ok(w, scaled, "")
}

// AddToMealPlan handles POST /api/v1/recipes/{id}/meal-plan
func (h *RecipeHandlers) AddToMealPlan(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req mealPlanRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	entry, err := h.recipeService.AddToMealPlan(r.Context(), inbound.AddToMealPlanCommand{
		RecipeID: id,
		Date:     req.Date,
		MealType: req.MealType,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.created(w, entry, "Added to meal plan")
}

// AddToShoppingList handles POST /api/v1/recipes/{id}/shopping-list
func (h *RecipeHandlers) AddToShoppingList(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req shoppingListRequest
	if r.ContentLength != 0 {
		if err := h.decode(r, &req); err != nil {
			h.writeError(w, r, err)
			return
		}
	}

	items, err := h.recipeService.AddToShoppingList(r.Context(), inbound.AddToShoppingListCommand{
		RecipeID:      id,
		IngredientIDs: req.IngredientIDs,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.created(w, items, "Added to shopping list")
}

// Tags handles GET /api/v1/tags?q=&applied=
func (h *RecipeHandlers) Tags(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	result, err := h.recipeService.Tags(r.Context(), inbound.TagQuery{
		Text:    q.Get("q"),
		Applied: splitList(q.Get("applied")),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.ok(w, result, "")
}

// Scale handles POST /api/v1/scale
func (h *RecipeHandlers) Scale(w http.ResponseWriter, r *http.Request) {
	var req scaleRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	scaled, err := h.recipeService.ScaleQuantity(req.Quantity, req.Factor)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.ok(w, scaleResponse{Quantity: req.Quantity, Factor: req.Factor, Scaled: scaled}, "")
}
