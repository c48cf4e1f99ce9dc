// Package calendar holds family events and the month grid.
package calendar

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/hearthhq/hearth/internal/domain/shared"
)

// DateLayout is the event date format
const DateLayout = "2006-01-02"

var (
	ErrTitleRequired   = errors.New("event title is required")
	ErrInvalidDate     = errors.New("event date must be YYYY-MM-DD")
	ErrInvalidCategory = errors.New("unknown event category")
	ErrInvalidMonth    = errors.New("month must be between 1 and 12")
	ErrEventNotFound   = errors.New("event not found")
)

// Category groups events
type Category string

const (
	CategoryFamily Category = "Family"
	CategoryWork   Category = "Work"
	CategorySchool Category = "School"
	CategoryHealth Category = "Health"
	CategorySports Category = "Sports"
	CategoryOther  Category = "Other"
)

// Categories lists event categories in display order
var Categories = []Category{CategoryFamily, CategoryWork, CategorySchool, CategoryHealth, CategorySports, CategoryOther}

// IsValid reports whether c is a known category
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Event is one calendar entry
type Event struct {
	ID           int      `json:"id"`
	Title        string   `json:"title"`
	Date         string   `json:"date"`
	Time         string   `json:"time,omitempty"`
	Category     Category `json:"category"`
	Participants []int    `json:"participants,omitempty"`
	Description  string   `json:"description,omitempty"`
}

// Calendar is the event list aggregate
type Calendar struct {
	events []Event
}

// New wraps existing events
func New(events ...Event) *Calendar {
	c := &Calendar{events: make([]Event, len(events))}
	copy(c.events, events)
	return c
}

// Add appends an event with the next id. Title is trimmed and required,
// category defaults to Family.
func (c *Calendar) Add(e Event) (Event, error) {
	e.Title = strings.TrimSpace(e.Title)
	if e.Title == "" {
		return Event{}, ErrTitleRequired
	}
	if _, err := time.Parse(DateLayout, e.Date); err != nil {
		return Event{}, ErrInvalidDate
	}
	if e.Category == "" {
		e.Category = CategoryFamily
	}
	if !e.Category.IsValid() {
		return Event{}, ErrInvalidCategory
	}

	ids := make([]int, len(c.events))
	for i, existing := range c.events {
		ids[i] = existing.ID
	}
	e.ID = shared.NextID(ids)
	c.events = append(c.events, e)
	return e, nil
}

// Delete removes event id
func (c *Calendar) Delete(id int) error {
	for i := range c.events {
		if c.events[i].ID == id {
			c.events = append(c.events[:i], c.events[i+1:]...)
			return nil
		}
	}
	return ErrEventNotFound
}

// Events returns a copy of every event
func (c *Calendar) Events() []Event {
	out := make([]Event, len(c.events))
	copy(out, c.events)
	return out
}

// OnDate returns the events on date, matched exactly
func (c *Calendar) OnDate(date string) []Event {
	var out []Event
	for _, e := range c.events {
		if e.Date == date {
			out = append(out, e)
		}
	}
	return out
}

// Upcoming returns events on or after from, soonest first
func (c *Calendar) Upcoming(from time.Time, limit int) []Event {
	cutoff := from.Format(DateLayout)
	var out []Event
	for _, e := range c.events {
		if e.Date >= cutoff {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Day is one cell of the month grid. Blank cells pad the first week and
// have Day == 0.
type Day struct {
	Day    int     `json:"day"`
	Date   string  `json:"date,omitempty"`
	Events []Event `json:"events,omitempty"`
}

// Month is the grid for one calendar month, weeks starting on Sunday
type Month struct {
	Year  int   `json:"year"`
	Month int   `json:"month"`
	Days  []Day `json:"days"`
}

// MonthGrid lays out month with one blank cell for each weekday before
// the 1st, then one cell per day carrying that day's events.
func (c *Calendar) MonthGrid(year, month int) (Month, error) {
	if month < 1 || month > 12 {
		return Month{}, ErrInvalidMonth
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	leading := int(first.Weekday())

	days := make([]Day, 0, leading+daysInMonth)
	for i := 0; i < leading; i++ {
		days = append(days, Day{})
	}
	for d := 1; d <= daysInMonth; d++ {
		date := time.Date(year, time.Month(month), d, 0, 0, 0, 0, time.UTC).Format(DateLayout)
		days = append(days, Day{Day: d, Date: date, Events: c.OnDate(date)})
	}

	return Month{Year: year, Month: month, Days: days}, nil
}

// Shift moves (year, month) by delta months
func Shift(year, month, delta int) (int, int) {
	t := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).AddDate(0, delta, 0)
	return t.Year(), int(t.Month())
}
