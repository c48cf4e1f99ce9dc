package mealplan

import (
	"encoding/json"
	"sort"
	"strings"
	"time"

	"github.com/hearthhq/hearth/internal/domain/recipe"
	"github.com/hearthhq/hearth/internal/domain/shared"
)

// Entry is one planned meal
type Entry struct {
	Slot   SlotKey         `json:"slot"`
	Recipe recipe.Snapshot `json:"recipe"`
}

// Plan is the slot map. Recipes are stored as snapshots, so entries survive
// when the recipe is later edited or deleted.
type Plan struct {
	entries map[SlotKey]recipe.Snapshot
	events  []shared.DomainEvent
}

// NewPlan creates an empty plan
func NewPlan() *Plan {
	return &Plan{
		entries: make(map[SlotKey]recipe.Snapshot),
		events:  []shared.DomainEvent{},
	}
}

// Restore builds a plan from stored entries without raising events. Entries
// with invalid slots are skipped.
func Restore(entries []Entry) *Plan {
	p := NewPlan()
	for _, e := range entries {
		if e.Slot.Validate() != nil {
			continue
		}
		p.entries[e.Slot] = e.Recipe
	}
	return p
}

// Assign puts snapshot in slot, overwriting silently. It returns the entry
// that was replaced, if any.
func (p *Plan) Assign(slot SlotKey, snapshot recipe.Snapshot) (previous recipe.Snapshot, replaced bool, err error) {
	if err := slot.Validate(); err != nil {
		return recipe.Snapshot{}, false, err
	}

	previous, replaced = p.entries[slot]
	p.entries[slot] = snapshot

	p.events = append(p.events, MealAssignedEvent{
		Slot:       slot,
		RecipeID:   snapshot.ID,
		Replaced:   replaced,
		AssignedAt: time.Now(),
	})
	return previous, replaced, nil
}

// Remove deletes slot. Removing an empty slot is a no-op.
func (p *Plan) Remove(slot SlotKey) bool {
	if _, ok := p.entries[slot]; !ok {
		return false
	}
	delete(p.entries, slot)

	p.events = append(p.events, MealRemovedEvent{
		Slot:      slot,
		RemovedAt: time.Now(),
	})
	return true
}

// Get returns the snapshot in slot
func (p *Plan) Get(slot SlotKey) (recipe.Snapshot, bool) {
	s, ok := p.entries[slot]
	return s, ok
}

// Len returns the number of planned meals
func (p *Plan) Len() int {
	return len(p.entries)
}

// Entries returns every entry in display order
func (p *Plan) Entries() []Entry {
	out := make([]Entry, 0, len(p.entries))
	for slot, snap := range p.entries {
		out = append(out, Entry{Slot: slot, Recipe: snap})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slot.less(out[j].Slot) })
	return out
}

// ForLabel returns the meals of one day or date, in meal type order. The
// label is compared exactly.
func (p *Plan) ForLabel(kind SlotKind, label string) []Entry {
	var out []Entry
	for _, mt := range MealTypes {
		slot := SlotKey{Kind: kind, Label: label, MealType: mt}
		if snap, ok := p.entries[slot]; ok {
			out = append(out, Entry{Slot: slot, Recipe: snap})
		}
	}
	return out
}

// ForDate returns the meals planned for a calendar date
func (p *Plan) ForDate(date time.Time) []Entry {
	return p.ForLabel(KindDate, date.Format(DateLayout))
}

// Cell is one meal of a week view row; Recipe is nil when nothing is planned
type Cell struct {
	MealType MealType         `json:"mealType"`
	Recipe   *recipe.Snapshot `json:"recipe"`
}

// DayRow is one day of the week view
type DayRow struct {
	Day   string `json:"day"`
	Meals []Cell `json:"meals"`
}

// Week returns the Monday..Sunday by meal type grid of weekday slots
func (p *Plan) Week() []DayRow {
	rows := make([]DayRow, len(Days))
	for i, day := range Days {
		cells := make([]Cell, len(MealTypes))
		for j, mt := range MealTypes {
			cells[j] = Cell{MealType: mt}
			if snap, ok := p.entries[SlotKey{Kind: KindWeekday, Label: day, MealType: mt}]; ok {
				snap := snap
				cells[j].Recipe = &snap
			}
		}
		rows[i] = DayRow{Day: day, Meals: cells}
	}
	return rows
}

// Events returns and clears pending domain events
func (p *Plan) Events() []shared.DomainEvent {
	events := p.events
	p.events = []shared.DomainEvent{}
	return events
}

// Drop is a recipe dragged onto a day or date. Payload is the serialized
// recipe; MealType may be empty, in which case the active meal type applies.
type Drop struct {
	Kind     SlotKind
	Label    string
	Payload  string
	MealType MealType
}

// Decode resolves the slot and snapshot a drop targets
func (d Drop) Decode(active MealType) (SlotKey, recipe.Snapshot, error) {
	if strings.TrimSpace(d.Payload) == "" {
		return SlotKey{}, recipe.Snapshot{}, ErrEmptyPayload
	}

	var snap recipe.Snapshot
	if err := json.Unmarshal([]byte(d.Payload), &snap); err != nil {
		return SlotKey{}, recipe.Snapshot{}, ErrMalformedPayload
	}

	mealType := d.MealType
	if mealType == "" {
		mealType = active
	}

	slot := SlotKey{Kind: d.Kind, Label: d.Label, MealType: mealType}
	if err := slot.Validate(); err != nil {
		return SlotKey{}, recipe.Snapshot{}, err
	}
	return slot, snap, nil
}
