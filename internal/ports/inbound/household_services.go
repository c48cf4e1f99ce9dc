package inbound

import (
	"context"

	"github.com/hearthhq/hearth/internal/domain/calendar"
	"github.com/hearthhq/hearth/internal/domain/health"
	"github.com/hearthhq/hearth/internal/domain/recipe"
)

// ShoppingService manages the shopping list
type ShoppingService interface {
	List(ctx context.Context, category string) ([]ShoppingItemDTO, error)
	Add(ctx context.Context, cmd AddShoppingItemCommand) (*ShoppingItemDTO, error)
	AddIngredients(ctx context.Context, recipeID string, ingredients []recipe.Ingredient) ([]ShoppingItemDTO, error)
	Toggle(ctx context.Context, id int) (*ShoppingItemDTO, error)
	Delete(ctx context.Context, id int) error
}

// TaskService manages household tasks
type TaskService interface {
	List(ctx context.Context, category string) ([]TaskDTO, error)
	Add(ctx context.Context, cmd AddTaskCommand) (*TaskDTO, error)
	Toggle(ctx context.Context, id int) (*TaskDTO, error)
	Delete(ctx context.Context, id int) error
}

// CalendarService manages family events
type CalendarService interface {
	Events(ctx context.Context, date string) ([]calendar.Event, error)
	AddEvent(ctx context.Context, cmd AddEventCommand) (*calendar.Event, error)
	DeleteEvent(ctx context.Context, id int) error
	Month(ctx context.Context, year, month int) (*MonthDTO, error)
}

// MemberService manages the family roster
type MemberService interface {
	List(ctx context.Context) ([]MemberDTO, error)
	Add(ctx context.Context, cmd AddMemberCommand) (*MemberDTO, error)
	Delete(ctx context.Context, id int) error
}

// HealthService serves health charts
type HealthService interface {
	Series(ctx context.Context, metric health.Metric, member string) (*health.Series, error)
}

// AddShoppingItemCommand adds one item
type AddShoppingItemCommand struct {
	Name     string
	Category string
	Quantity string
	Unit     string
	Note     string
}

// AddTaskCommand adds one task; empty category and due date take defaults
type AddTaskCommand struct {
	Title      string
	Category   string
	AssignedTo int
	DueDate    string
}

// AddEventCommand adds one calendar event
type AddEventCommand struct {
	Title        string
	Date         string
	Time         string
	Category     string
	Participants []int
	Description  string
}

// AddMemberCommand adds one family member
type AddMemberCommand struct {
	Name      string
	Role      string
	Birthdate string
	Image     string
}

// ShoppingItemDTO is one shopping list line
type ShoppingItemDTO struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Label     string `json:"label"`
	Category  string `json:"category"`
	Completed bool   `json:"completed"`
	Quantity  string `json:"quantity,omitempty"`
	Unit      string `json:"unit,omitempty"`
	Note      string `json:"note,omitempty"`
	RecipeID  string `json:"recipeId,omitempty"`
}

// TaskDTO is one task
type TaskDTO struct {
	ID         int    `json:"id"`
	Title      string `json:"title"`
	Category   string `json:"category"`
	AssignedTo int    `json:"assignedTo,omitempty"`
	Assignee   string `json:"assignee,omitempty"`
	DueDate    string `json:"dueDate"`
	Completed  bool   `json:"completed"`
	Overdue    bool   `json:"overdue"`
}

// MonthDTO is the calendar grid with navigation targets
type MonthDTO struct {
	calendar.Month
	Previous MonthRef `json:"previous"`
	Next     MonthRef `json:"next"`
}

// MonthRef names a neighbouring month
type MonthRef struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// MemberDTO is one family member
type MemberDTO struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	Birthdate string `json:"birthdate,omitempty"`
	Age       *int   `json:"age,omitempty"`
	Image     string `json:"image,omitempty"`
	Initials  string `json:"initials"`
}
