package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/hearthhq/hearth/internal/domain/mealplan"
	"github.com/hearthhq/hearth/internal/domain/recipe"
	"github.com/hearthhq/hearth/internal/ports/inbound"
	"github.com/hearthhq/hearth/pkg/errors"
	"go.uber.org/zap"
)

// MealPlanHandlers handles the meal planner
type MealPlanHandlers struct {
	responder
	mealPlanService inbound.MealPlanService
}

// NewMealPlanHandlers creates meal plan handlers
func NewMealPlanHandlers(mealPlanService inbound.MealPlanService, logger *zap.Logger) *MealPlanHandlers {
	return &MealPlanHandlers{
		responder:       newResponder(logger.Named("mealplan-handlers")),
		mealPlanService: mealPlanService,
	}
}

// assignRequest is the recipe snapshot placed in a slot
type assignRequest struct {
	ID       string  `json:"id" validate:"required,uuid"`
	Title    string  `json:"title" validate:"required"`
	Image    string  `json:"image"`
	PrepTime string  `json:"prepTime"`
	CookTime string  `json:"cookTime"`
	Servings int     `json:"servings" validate:"gte=0"`
	Rating   float64 `json:"rating" validate:"gte=0,lte=5"`
	Category string  `json:"category"`
	Favorite bool    `json:"favorite"`
}

func (req assignRequest) snapshot() recipe.Snapshot {
	return recipe.Snapshot{
		ID:       uuid.MustParse(req.ID),
		Title:    req.Title,
		Image:    req.Image,
		PrepTime: req.PrepTime,
		CookTime: req.CookTime,
		Servings: req.Servings,
		Rating:   req.Rating,
		Category: recipe.Category(req.Category),
		Favorite: req.Favorite,
	}
}

type dropRequest struct {
	Kind           string `json:"kind" validate:"required,oneof=weekday date"`
	Label          string `json:"label" validate:"required"`
	Payload        string `json:"payload"`
	MealType       string `json:"mealType"`
	ActiveMealType string `json:"activeMealType"`
}

type removeResponse struct {
	Key     string `json:"key"`
	Removed bool   `json:"removed"`
}

func slotParam(r *http.Request) (mealplan.SlotKey, error) {
	raw := chi.URLParam(r, "key")
	slot, err := mealplan.ParseSlotKey(raw)
	if err != nil {
		return mealplan.SlotKey{}, errors.NewBadRequestError(err.Error()).WithMetadata("key", raw)
	}
	return slot, nil
}

// Entries handles GET /api/v1/mealplans
func (h *MealPlanHandlers) Entries(w http.ResponseWriter, r *http.Request) {
	entries, err := h.mealPlanService.Entries(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.ok(w, entries, "")
}

// Week handles GET /api/v1/mealplans/week
func (h *MealPlanHandlers) Week(w http.ResponseWriter, r *http.Request) {
	week, err := h.mealPlanService.Week(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.ok(w, week, "")
}

// ForDate handles GET /api/v1/mealplans/dates/{date}
func (h *MealPlanHandlers) ForDate(w http.ResponseWriter, r *http.Request) {
	entries, err := h.mealPlanService.ForDate(r.Context(), chi.URLParam(r, "date"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.ok(w, entries, "")
}

// GetSlot handles GET /api/v1/mealplans/slots/{key}
func (h *MealPlanHandlers) GetSlot(w http.ResponseWriter, r *http.Request) {
	slot, err := slotParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	entry, err := h.mealPlanService.Get(r.Context(), slot)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.ok(w, entry, "")
}

// Assign handles PUT /api/v1/mealplans/slots/{key}
func (h *MealPlanHandlers) Assign(w http.ResponseWriter, r *http.Request) {
	slot, err := slotParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req assignRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	result, err := h.mealPlanService.Assign(r.Context(), slot, req.snapshot())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.ok(w, result, "Meal planned")
}

// Remove handles DELETE /api/v1/mealplans/slots/{key}
func (h *MealPlanHandlers) Remove(w http.ResponseWriter, r *http.Request) {
	slot, err := slotParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	removed, err := h.mealPlanService.Remove(r.Context(), slot)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.ok(w, removeResponse{Key: slot.String(), Removed: removed}, "")
}

// Drop handles POST /api/v1/mealplans/drop
func (h *MealPlanHandlers) Drop(w http.ResponseWriter, r *http.Request) {
	var req dropRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	result, err := h.mealPlanService.Drop(r.Context(), inbound.DropCommand{
		Kind:           mealplan.SlotKind(req.Kind),
		Label:          req.Label,
		Payload:        req.Payload,
		MealType:       req.MealType,
		ActiveMealType: req.ActiveMealType,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.ok(w, result, "")
}
