package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hearthhq/hearth/internal/domain/health"
	"github.com/hearthhq/hearth/internal/ports/inbound"
	"go.uber.org/zap"
)

// HouseholdHandlers handles shopping, tasks, calendar, members and health
type HouseholdHandlers struct {
	responder
	shopping inbound.ShoppingService
	tasks    inbound.TaskService
	calendar inbound.CalendarService
	members  inbound.MemberService
	health   inbound.HealthService
}

// NewHouseholdHandlers creates household handlers
func NewHouseholdHandlers(
	shopping inbound.ShoppingService,
	tasks inbound.TaskService,
	calendar inbound.CalendarService,
	members inbound.MemberService,
	healthService inbound.HealthService,
	logger *zap.Logger,
) *HouseholdHandlers {
	return &HouseholdHandlers{
		responder: newResponder(logger.Named("household-handlers")),
		shopping:  shopping,
		tasks:     tasks,
		calendar:  calendar,
		members:   members,
		health:    healthService,
	}
}

type shoppingItemRequest struct {
	Name     string `json:"name"`
	Category string `json:"category" validate:"omitempty,oneof=Groceries Household Personal Other"`
	Quantity string `json:"quantity"`
	Unit     string `json:"unit"`
	Note     string `json:"note"`
}

type taskRequest struct {
	Title      string `json:"title"`
	Category   string `json:"category" validate:"omitempty,oneof=Home Work School Personal"`
	AssignedTo int    `json:"assignedTo" validate:"gte=0"`
	DueDate    string `json:"dueDate" validate:"omitempty,datetime=2006-01-02"`
}

type eventRequest struct {
	Title        string `json:"title"`
	Date         string `json:"date" validate:"required,datetime=2006-01-02"`
	Time         string `json:"time"`
	Category     string `json:"category" validate:"omitempty,oneof=Family Work School Health Sports Other"`
	Participants []int  `json:"participants" validate:"dive,gt=0"`
	Description  string `json:"description"`
}

type memberRequest struct {
	Name      string `json:"name"`
	Role      string `json:"role" validate:"omitempty,oneof=Parent Child Other"`
	Birthdate string `json:"birthdate" validate:"omitempty,datetime=2006-01-02"`
	Image     string `json:"image"`
}

// ListShopping handles GET /api/v1/shopping?category=
func (h *HouseholdHandlers) ListShopping(w http.ResponseWriter, r *http.Request) {
	items, err := h.shopping.List(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.ok(w, items, "")
}

// AddShoppingItem handles POST /api/v1/shopping
func (h *HouseholdHandlers) AddShoppingItem(w http.ResponseWriter, r *http.Request) {
	var req shoppingItemRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	item, err := h.shopping.Add(r.Context(), inbound.AddShoppingItemCommand{
		Name:     req.Name,
		Category: req.Category,
		Quantity: req.Quantity,
		Unit:     req.Unit,
		Note:     req.Note,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.created(w, item, "Item added")
}

// ToggleShoppingItem handles PATCH /api/v1/shopping/{id}
func (h *HouseholdHandlers) ToggleShoppingItem(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	item, err := h.shopping.Toggle(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.ok(w, item, "")
}

// DeleteShoppingItem handles DELETE /api/v1/shopping/{id}
func (h *HouseholdHandlers) DeleteShoppingItem(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.shopping.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.ok(w, nil, "Item deleted")
}

// ListTasks handles GET /api/v1/tasks?category=
func (h *HouseholdHandlers) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.tasks.List(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.ok(w, tasks, "")
}

// AddTask handles POST /api/v1/tasks
func (h *HouseholdHandlers) AddTask(w http.ResponseWriter, r *http.Request) {
	var req taskRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	t, err := h.tasks.Add(r.Context(), inbound.AddTaskCommand{
		Title:      req.Title,
		Category:   req.Category,
		AssignedTo: req.AssignedTo,
		DueDate:    req.DueDate,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.created(w, t, "Task added")
}

// ToggleTask handles PATCH /api/v1/tasks/{id}
func (h *HouseholdHandlers) ToggleTask(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	t, err := h.tasks.Toggle(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.ok(w, t, "")
}

// DeleteTask handles DELETE /api/v1/tasks/{id}
func (h *HouseholdHandlers) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.tasks.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.ok(w, nil, "Task deleted")
}

// ListEvents handles GET /api/v1/calendar/events?date=
func (h *HouseholdHandlers) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.calendar.Events(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.ok(w, events, "")
}

// AddEvent handles POST /api/v1/calendar/events
func (h *HouseholdHandlers) AddEvent(w http.ResponseWriter, r *http.Request) {
	var req eventRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	event, err := h.calendar.AddEvent(r.Context(), inbound.AddEventCommand{
		Title:        req.Title,
		Date:         req.Date,
		Time:         req.Time,
		Category:     req.Category,
		Participants: req.Participants,
		Description:  req.Description,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.created(w, event, "Event added")
}

// DeleteEvent handles DELETE /api/v1/calendar/events/{id}
func (h *HouseholdHandlers) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.calendar.DeleteEvent(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.ok(w, nil, "Event deleted")
}

// Month handles GET /api/v1/calendar/months/{year}/{month}
func (h *HouseholdHandlers) Month(w http.ResponseWriter, r *http.Request) {
	year, err := intParam(r, "year")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	month, err := intParam(r, "month")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	grid, err := h.calendar.Month(r.Context(), year, month)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.ok(w, grid, "")
}

// ListMembers handles GET /api/v1/members
func (h *HouseholdHandlers) ListMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.members.List(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.ok(w, members, "")
}

// AddMember handles POST /api/v1/members
func (h *HouseholdHandlers) AddMember(w http.ResponseWriter, r *http.Request) {
	var req memberRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	m, err := h.members.Add(r.Context(), inbound.AddMemberCommand{
		Name:      req.Name,
		Role:      req.Role,
		Birthdate: req.Birthdate,
		Image:     req.Image,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.created(w, m, "Member added")
}

// DeleteMember handles DELETE /api/v1/members/{id}
func (h *HouseholdHandlers) DeleteMember(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.members.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.ok(w, nil, "Member deleted")
}

// HealthSeries handles GET /api/v1/health/{metric}?member=
func (h *HouseholdHandlers) HealthSeries(w http.ResponseWriter, r *http.Request) {
	metric := health.Metric(chi.URLParam(r, "metric"))

	series, err := h.health.Series(r.Context(), metric, r.URL.Query().Get("member"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.ok(w, series, "")
}
