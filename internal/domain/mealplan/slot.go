// Package mealplan maps meal slots (a day or date plus a meal type) to the
// recipe planned for them.
package mealplan

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the format of date slot labels
const DateLayout = "2006-01-02"

// MealType is one of the fixed meals of a day
type MealType string

const (
	MealBreakfast MealType = "Breakfast"
	MealLunch     MealType = "Lunch"
	MealDinner    MealType = "Dinner"
	MealSnack     MealType = "Snack"
)

// MealTypes lists meal types in the order a day shows them.
var MealTypes = []MealType{MealBreakfast, MealLunch, MealDinner, MealSnack}

// IsValid reports whether m is a known meal type
func (m MealType) IsValid() bool {
	return m.order() >= 0
}

func (m MealType) order() int {
	for i, known := range MealTypes {
		if m == known {
			return i
		}
	}
	return -1
}

// Days are the weekday labels of the week view, Monday first.
var Days = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

func dayOrder(label string) int {
	for i, d := range Days {
		if d == label {
			return i
		}
	}
	return -1
}

// SlotKind tells weekday slots from calendar date slots
type SlotKind string

const (
	KindWeekday SlotKind = "weekday"
	KindDate    SlotKind = "date"
)

// SlotKey addresses one meal slot. Weekday and date slots never collide,
// even when they name the same day.
type SlotKey struct {
	Kind     SlotKind `json:"kind"`
	Label    string   `json:"label"`
	MealType MealType `json:"mealType"`
}

// WeekdaySlot builds the key for a day of the week view
func WeekdaySlot(day string, mealType MealType) (SlotKey, error) {
	k := SlotKey{Kind: KindWeekday, Label: day, MealType: mealType}
	return k, k.Validate()
}

// DateSlot builds the key for a calendar date in YYYY-MM-DD form
func DateSlot(date string, mealType MealType) (SlotKey, error) {
	k := SlotKey{Kind: KindDate, Label: date, MealType: mealType}
	return k, k.Validate()
}

// Validate checks the label against its kind and the meal type
func (k SlotKey) Validate() error {
	if !k.MealType.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidMealType, k.MealType)
	}
	switch k.Kind {
	case KindWeekday:
		if dayOrder(k.Label) < 0 {
			return fmt.Errorf("%w: unknown day %q", ErrInvalidSlot, k.Label)
		}
	case KindDate:
		if _, err := time.Parse(DateLayout, k.Label); err != nil {
			return fmt.Errorf("%w: bad date %q", ErrInvalidSlot, k.Label)
		}
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidSlot, k.Kind)
	}
	return nil
}

// String renders the composite "{label}-{mealType}" form
func (k SlotKey) String() string {
	return k.Label + "-" + string(k.MealType)
}

// ParseSlotKey reads the composite form. The meal type follows the last
// hyphen, since date labels contain hyphens themselves. Weekday names map to
// weekday slots and YYYY-MM-DD labels to date slots.
func ParseSlotKey(s string) (SlotKey, error) {
	i := strings.LastIndex(s, "-")
	if i <= 0 || i == len(s)-1 {
		return SlotKey{}, fmt.Errorf("%w: %q", ErrInvalidSlot, s)
	}

	label, mealType := s[:i], MealType(s[i+1:])
	kind := KindDate
	if dayOrder(label) >= 0 {
		kind = KindWeekday
	}

	k := SlotKey{Kind: kind, Label: label, MealType: mealType}
	if err := k.Validate(); err != nil {
		return SlotKey{}, err
	}
	return k, nil
}

// less orders weekday slots before date slots, then by day or date, then by
// meal type
func (k SlotKey) less(o SlotKey) bool {
	if k.Kind != o.Kind {
		return k.Kind == KindWeekday
	}
	if k.Label != o.Label {
		if k.Kind == KindWeekday {
			return dayOrder(k.Label) < dayOrder(o.Label)
		}
		return k.Label < o.Label
	}
	return k.MealType.order() < o.MealType.order()
}
