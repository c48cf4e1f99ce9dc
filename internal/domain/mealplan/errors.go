package mealplan

import "errors"

var (
	ErrInvalidMealType = errors.New("unknown meal type")
	ErrInvalidSlot     = errors.New("invalid meal slot")
	ErrSlotEmpty       = errors.New("no meal planned for slot")

	// Drop payload errors
	ErrEmptyPayload     = errors.New("no recipe data found in drop")
	ErrMalformedPayload = errors.New("recipe data in drop is malformed")
)
