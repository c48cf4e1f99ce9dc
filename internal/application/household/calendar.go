package household

import (
	"context"
	"sync"

	"github.com/hearthhq/hearth/internal/domain/calendar"
	"github.com/hearthhq/hearth/internal/ports/inbound"
	"github.com/hearthhq/hearth/internal/ports/outbound"
	"github.com/hearthhq/hearth/pkg/errors"
	"go.uber.org/zap"
)

// CalendarService implements the family calendar use cases
type CalendarService struct {
	repo   outbound.CalendarRepository
	logger *zap.Logger

	mu sync.Mutex
}

var _ inbound.CalendarService = (*CalendarService)(nil)

// NewCalendarService creates a new calendar service
func NewCalendarService(repo outbound.CalendarRepository, logger *zap.Logger) *CalendarService {
	return &CalendarService{repo: repo, logger: logger.Named("calendar-service")}
}

// Events lists events on date, or every event when date is empty
func (s *CalendarService) Events(ctx context.Context, date string) ([]calendar.Event, error) {
	cal, err := s.repo.Load(ctx)
	if err != nil {
		return nil, errors.NewStorageError("load calendar", err)
	}

	events := cal.Events()
	if date != "" {
		events = cal.OnDate(date)
	}
	if events == nil {
		events = []calendar.Event{}
	}
	return events, nil
}

// AddEvent appends an event
func (s *CalendarService) AddEvent(ctx context.Context, cmd inbound.AddEventCommand) (*calendar.Event, error) {
	var added calendar.Event
	err := s.mutate(ctx, func(cal *calendar.Calendar) error {
		e, err := cal.Add(calendar.Event{
			Title:        cmd.Title,
			Date:         cmd.Date,
			Time:         cmd.Time,
			Category:     calendar.Category(cmd.Category),
			Participants: cmd.Participants,
			Description:  cmd.Description,
		})
		added = e
		return err
	})
	if err != nil {
		return nil, translate(err, nil, nil)
	}

	s.logger.Info("Event added", zap.Int("event_id", added.ID), zap.String("date", added.Date))
	return &added, nil
}

// DeleteEvent removes an event
func (s *CalendarService) DeleteEvent(ctx context.Context, id int) error {
	err := s.mutate(ctx, func(cal *calendar.Calendar) error {
		return cal.Delete(id)
	})
	return translate(err, calendar.ErrEventNotFound, func() error { return errors.NewEventNotFoundError(id) })
}

// Month returns the grid for year/month with the neighbouring months
func (s *CalendarService) Month(ctx context.Context, year, month int) (*inbound.MonthDTO, error) {
	cal, err := s.repo.Load(ctx)
	if err != nil {
		return nil, errors.NewStorageError("load calendar", err)
	}

	grid, err := cal.MonthGrid(year, month)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	prevYear, prevMonth := calendar.Shift(year, month, -1)
	nextYear, nextMonth := calendar.Shift(year, month, 1)
	return &inbound.MonthDTO{
		Month:    grid,
		Previous: inbound.MonthRef{Year: prevYear, Month: prevMonth},
		Next:     inbound.MonthRef{Year: nextYear, Month: nextMonth},
	}, nil
}

func (s *CalendarService) mutate(ctx context.Context, fn func(*calendar.Calendar) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cal, err := s.repo.Load(ctx)
	if err != nil {
		return errors.NewStorageError("load calendar", err)
	}
	if err := fn(cal); err != nil {
		return err
	}
	if err := s.repo.Store(ctx, cal); err != nil {
		return errors.NewStorageError("store calendar", err)
	}
	return nil
}
