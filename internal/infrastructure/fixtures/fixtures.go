// Package fixtures loads household sample data from YAML and seeds it into
// the repositories at startup
package fixtures

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/hearthhq/hearth/internal/domain/calendar"
	"github.com/hearthhq/hearth/internal/domain/health"
	"github.com/hearthhq/hearth/internal/domain/mealplan"
	"github.com/hearthhq/hearth/internal/domain/member"
	"github.com/hearthhq/hearth/internal/domain/recipe"
	"github.com/hearthhq/hearth/internal/domain/shopping"
	"github.com/hearthhq/hearth/internal/domain/task"
	"github.com/hearthhq/hearth/internal/ports/outbound"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultDocument []byte

// Document is the YAML layout of a fixture file
type Document struct {
	Recipes  []Recipe                    `yaml:"recipes"`
	MealPlan []MealPlanEntry             `yaml:"meal_plan"`
	Shopping []ShoppingItem              `yaml:"shopping"`
	Tasks    []Task                      `yaml:"tasks"`
	Events   []Event                     `yaml:"events"`
	Members  []Member                    `yaml:"members"`
	Health   map[string][]health.Reading `yaml:"health"`
}

// Recipe is a fixture recipe; steps are plain descriptions
type Recipe struct {
	ID          string       `yaml:"id"`
	Title       string       `yaml:"title"`
	Description string       `yaml:"description"`
	Category    string       `yaml:"category"`
	PrepTime    string       `yaml:"prep_time"`
	CookTime    string       `yaml:"cook_time"`
	Servings    int          `yaml:"servings"`
	Source      string       `yaml:"source"`
	SourceURL   string       `yaml:"source_url"`
	Image       string       `yaml:"image"`
	Ingredients []Ingredient `yaml:"ingredients"`
	Steps       []string     `yaml:"steps"`
	Tags        []string     `yaml:"tags"`
	Favorite    bool         `yaml:"favorite"`
	Rating      float64      `yaml:"rating"`
}

// Ingredient is a fixture ingredient
type Ingredient struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Quantity string `yaml:"quantity"`
	Unit     string `yaml:"unit"`
	Note     string `yaml:"note"`
}

// MealPlanEntry assigns a fixture recipe, by title, to a legacy slot key
type MealPlanEntry struct {
	Slot   string `yaml:"slot"`
	Recipe string `yaml:"recipe"`
}

// ShoppingItem is a fixture shopping item
type ShoppingItem struct {
	ID        int    `yaml:"id"`
	Name      string `yaml:"name"`
	Category  string `yaml:"category"`
	Completed bool   `yaml:"completed"`
	Quantity  string `yaml:"quantity"`
	Unit      string `yaml:"unit"`
	Note      string `yaml:"note"`
}

// Task is a fixture task
type Task struct {
	ID         int    `yaml:"id"`
	Title      string `yaml:"title"`
	Category   string `yaml:"category"`
	AssignedTo int    `yaml:"assigned_to"`
	DueDate    string `yaml:"due_date"`
	Completed  bool   `yaml:"completed"`
}

// Event is a fixture calendar event
type Event struct {
	ID           int    `yaml:"id"`
	Title        string `yaml:"title"`
	Date         string `yaml:"date"`
	Time         string `yaml:"time"`
	Category     string `yaml:"category"`
	Participants []int  `yaml:"participants"`
	Description  string `yaml:"description"`
}

// Member is a fixture family member
type Member struct {
	ID        int    `yaml:"id"`
	Name      string `yaml:"name"`
	Role      string `yaml:"role"`
	Birthdate string `yaml:"birthdate"`
	Image     string `yaml:"image"`
}

// Repositories receives the seeded data
type Repositories struct {
	Recipes   outbound.RecipeRepository
	MealPlans outbound.MealPlanRepository
	Shopping  outbound.ShoppingRepository
	Tasks     outbound.TaskRepository
	Calendar  outbound.CalendarRepository
	Members   outbound.MemberRepository
	Health    outbound.HealthRepository
}

// Data is a validated fixture document converted to domain values
type Data struct {
	Recipes  []*recipe.Recipe
	MealPlan *mealplan.Plan
	Shopping []shopping.Item
	Tasks    []task.Task
	Events   []calendar.Event
	Members  []member.Member
	Health   []health.Series
}

// Load reads the fixture file at path, or the embedded default when path is empty
func Load(path string) (*Document, error) {
	data := defaultDocument
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read fixtures: %w", err)
		}
		data = raw
	}
	return Parse(data)
}

// Parse decodes a fixture document
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse fixtures: %w", err)
	}
	return &doc, nil
}

// Build validates the document and converts it to domain values
func (d *Document) Build() (*Data, error) {
	out := &Data{MealPlan: mealplan.NewPlan()}

	byTitle := make(map[string]*recipe.Recipe, len(d.Recipes))
	for i, fr := range d.Recipes {
		r, err := fr.build()
		if err != nil {
			return nil, fmt.Errorf("recipes[%d] %q: %w", i, fr.Title, err)
		}
		r.Events()
		out.Recipes = append(out.Recipes, r)
		byTitle[r.Title()] = r
	}

	for i, fe := range d.MealPlan {
		slot, err := mealplan.ParseSlotKey(fe.Slot)
		if err != nil {
			return nil, fmt.Errorf("meal_plan[%d]: %w", i, err)
		}
		r, ok := byTitle[fe.Recipe]
		if !ok {
			return nil, fmt.Errorf("meal_plan[%d]: unknown recipe %q", i, fe.Recipe)
		}
		if _, _, err := out.MealPlan.Assign(slot, r.Snapshot()); err != nil {
			return nil, fmt.Errorf("meal_plan[%d]: %w", i, err)
		}
	}
	out.MealPlan.Events()

	seen := make(map[int]bool)
	for i, fs := range d.Shopping {
		item := shopping.Item{
			ID:        fs.ID,
			Name:      fs.Name,
			Category:  shopping.Category(fs.Category),
			Completed: fs.Completed,
			Quantity:  fs.Quantity,
			Unit:      recipe.Unit(fs.Unit),
			Note:      fs.Note,
		}
		if item.Name == "" {
			return nil, fmt.Errorf("shopping[%d]: %w", i, shopping.ErrNameRequired)
		}
		if !item.Category.IsValid() {
			return nil, fmt.Errorf("shopping[%d]: %w", i, shopping.ErrInvalidCategory)
		}
		if err := uniqueID("shopping", i, fs.ID, seen); err != nil {
			return nil, err
		}
		out.Shopping = append(out.Shopping, item)
	}

	seen = make(map[int]bool)
	for i, ft := range d.Tasks {
		t := task.Task{
			ID:         ft.ID,
			Title:      ft.Title,
			Category:   task.Category(ft.Category),
			AssignedTo: ft.AssignedTo,
			DueDate:    ft.DueDate,
			Completed:  ft.Completed,
		}
		if t.Title == "" {
			return nil, fmt.Errorf("tasks[%d]: %w", i, task.ErrTitleRequired)
		}
		if !t.Category.IsValid() {
			return nil, fmt.Errorf("tasks[%d]: %w", i, task.ErrInvalidCategory)
		}
		if err := uniqueID("tasks", i, ft.ID, seen); err != nil {
			return nil, err
		}
		out.Tasks = append(out.Tasks, t)
	}

	seen = make(map[int]bool)
	for i, fe := range d.Events {
		e := calendar.Event{
			ID:           fe.ID,
			Title:        fe.Title,
			Date:         fe.Date,
			Time:         fe.Time,
			Category:     calendar.Category(fe.Category),
			Participants: append([]int(nil), fe.Participants...),
			Description:  fe.Description,
		}
		if e.Title == "" {
			return nil, fmt.Errorf("events[%d]: %w", i, calendar.ErrTitleRequired)
		}
		if !e.Category.IsValid() {
			return nil, fmt.Errorf("events[%d]: %w", i, calendar.ErrInvalidCategory)
		}
		if err := uniqueID("events", i, fe.ID, seen); err != nil {
			return nil, err
		}
		out.Events = append(out.Events, e)
	}

	seen = make(map[int]bool)
	for i, fm := range d.Members {
		m := member.Member{
			ID:        fm.ID,
			Name:      fm.Name,
			Role:      member.Role(fm.Role),
			Birthdate: fm.Birthdate,
			Image:     fm.Image,
			Initials:  member.Initials(fm.Name),
		}
		if m.Name == "" {
			return nil, fmt.Errorf("members[%d]: %w", i, member.ErrNameRequired)
		}
		if !m.Role.IsValid() {
			return nil, fmt.Errorf("members[%d]: %w", i, member.ErrInvalidRole)
		}
		if err := uniqueID("members", i, fm.ID, seen); err != nil {
			return nil, err
		}
		out.Members = append(out.Members, m)
	}

	for _, metric := range health.Metrics {
		readings, ok := d.Health[string(metric)]
		if !ok {
			continue
		}
		out.Health = append(out.Health, health.Series{Metric: metric, Readings: readings})
	}
	for name := range d.Health {
		if !health.Metric(name).IsValid() {
			return nil, fmt.Errorf("health %q: %w", name, health.ErrUnknownMetric)
		}
	}

	return out, nil
}

func (fr Recipe) build() (*recipe.Recipe, error) {
	d := recipe.Draft{
		Title:       fr.Title,
		Description: fr.Description,
		Category:    recipe.Category(fr.Category),
		PrepTime:    fr.PrepTime,
		CookTime:    fr.CookTime,
		Servings:    fr.Servings,
		Source:      fr.Source,
		SourceURL:   fr.SourceURL,
		Image:       fr.Image,
		Tags:        fr.Tags,
		Favorite:    fr.Favorite,
		Rating:      fr.Rating,
	}
	if fr.ID != "" {
		id, err := uuid.Parse(fr.ID)
		if err != nil {
			return nil, fmt.Errorf("invalid id: %w", err)
		}
		d.ID = id
	}
	for _, ing := range fr.Ingredients {
		d.Ingredients = append(d.Ingredients, recipe.Ingredient{
			ID:       ing.ID,
			Name:     ing.Name,
			Quantity: ing.Quantity,
			Unit:     recipe.Unit(ing.Unit),
			Note:     ing.Note,
		})
	}
	for _, step := range fr.Steps {
		d.Steps = append(d.Steps, recipe.Step{Description: step})
	}
	return recipe.NewRecipe(d)
}

func uniqueID(section string, index, id int, seen map[int]bool) error {
	if id < 1 {
		return fmt.Errorf("%s[%d]: id must be positive", section, index)
	}
	if seen[id] {
		return fmt.Errorf("%s[%d]: duplicate id %d", section, index, id)
	}
	seen[id] = true
	return nil
}

// Seed writes the data into the repositories
func Seed(ctx context.Context, data *Data, repos Repositories) error {
	for _, r := range data.Recipes {
		if err := repos.Recipes.Save(ctx, r); err != nil {
			return fmt.Errorf("failed to seed recipe %q: %w", r.Title(), err)
		}
	}
	if err := repos.MealPlans.Store(ctx, data.MealPlan); err != nil {
		return fmt.Errorf("failed to seed meal plan: %w", err)
	}
	if err := repos.Shopping.Store(ctx, shopping.NewList(data.Shopping...)); err != nil {
		return fmt.Errorf("failed to seed shopping list: %w", err)
	}
	if err := repos.Tasks.Store(ctx, task.NewList(data.Tasks...)); err != nil {
		return fmt.Errorf("failed to seed tasks: %w", err)
	}
	if err := repos.Calendar.Store(ctx, calendar.New(data.Events...)); err != nil {
		return fmt.Errorf("failed to seed calendar: %w", err)
	}
	if err := repos.Members.Store(ctx, member.NewRoster(data.Members...)); err != nil {
		return fmt.Errorf("failed to seed members: %w", err)
	}
	for _, s := range data.Health {
		if err := repos.Health.Store(ctx, s); err != nil {
			return fmt.Errorf("failed to seed %s readings: %w", s.Metric, err)
		}
	}
	return nil
}

// Counts summarizes the data per section
func (d *Data) Counts() map[string]int {
	return map[string]int{
		"recipes":   len(d.Recipes),
		"meal_plan": d.MealPlan.Len(),
		"shopping":  len(d.Shopping),
		"tasks":     len(d.Tasks),
		"events":    len(d.Events),
		"members":   len(d.Members),
		"health":    len(d.Health),
	}
}
