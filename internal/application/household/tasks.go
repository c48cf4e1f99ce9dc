package household

import (
	"context"
	"sync"
	"time"

	"github.com/hearthhq/hearth/internal/domain/member"
	"github.com/hearthhq/hearth/internal/domain/task"
	"github.com/hearthhq/hearth/internal/ports/inbound"
	"github.com/hearthhq/hearth/internal/ports/outbound"
	"github.com/hearthhq/hearth/pkg/errors"
	"go.uber.org/zap"
)

// TaskService implements the task list use cases
type TaskService struct {
	repo    outbound.TaskRepository
	members outbound.MemberRepository
	now     func() time.Time
	logger  *zap.Logger

	mu sync.Mutex
}

var _ inbound.TaskService = (*TaskService)(nil)

// NewTaskService creates a new task service
func NewTaskService(repo outbound.TaskRepository, members outbound.MemberRepository, logger *zap.Logger) *TaskService {
	return &TaskService{repo: repo, members: members, now: time.Now, logger: logger.Named("task-service")}
}

// List returns tasks of category with their assignee names resolved
func (s *TaskService) List(ctx context.Context, category string) ([]inbound.TaskDTO, error) {
	list, err := s.repo.Load(ctx)
	if err != nil {
		return nil, errors.NewStorageError("load tasks", err)
	}

	roster, err := s.members.Load(ctx)
	if err != nil {
		return nil, errors.NewStorageError("load members", err)
	}

	today := s.now()
	tasks := list.Filter(category)
	out := make([]inbound.TaskDTO, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toTaskDTO(t, roster, today))
	}
	return out, nil
}

// Add appends a task
func (s *TaskService) Add(ctx context.Context, cmd inbound.AddTaskCommand) (*inbound.TaskDTO, error) {
	today := s.now()
	var added task.Task
	err := s.mutate(ctx, func(list *task.List) error {
		t, err := list.Add(task.Task{
			Title:      cmd.Title,
			Category:   task.Category(cmd.Category),
			AssignedTo: cmd.AssignedTo,
			DueDate:    cmd.DueDate,
		}, today)
		added = t
		return err
	})
	if err != nil {
		return nil, translate(err, nil, nil)
	}

	s.logger.Info("Task added", zap.Int("task_id", added.ID), zap.String("title", added.Title))
	dto := toTaskDTO(added, nil, today)
	return &dto, nil
}

// Toggle flips a task's completed flag
func (s *TaskService) Toggle(ctx context.Context, id int) (*inbound.TaskDTO, error) {
	var toggled task.Task
	err := s.mutate(ctx, func(list *task.List) error {
		t, err := list.Toggle(id)
		toggled = t
		return err
	})
	if err != nil {
		return nil, translate(err, task.ErrTaskNotFound, func() error { return errors.NewTaskNotFoundError(id) })
	}
	dto := toTaskDTO(toggled, nil, s.now())
	return &dto, nil
}

// Delete removes a task
func (s *TaskService) Delete(ctx context.Context, id int) error {
	err := s.mutate(ctx, func(list *task.List) error {
		return list.Delete(id)
	})
	return translate(err, task.ErrTaskNotFound, func() error { return errors.NewTaskNotFoundError(id) })
}

func (s *TaskService) mutate(ctx context.Context, fn func(*task.List) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.repo.Load(ctx)
	if err != nil {
		return errors.NewStorageError("load tasks", err)
	}
	if err := fn(list); err != nil {
		return err
	}
	if err := s.repo.Store(ctx, list); err != nil {
		return errors.NewStorageError("store tasks", err)
	}
	return nil
}

func toTaskDTO(t task.Task, roster *member.Roster, today time.Time) inbound.TaskDTO {
	dto := inbound.TaskDTO{
		ID:         t.ID,
		Title:      t.Title,
		Category:   string(t.Category),
		AssignedTo: t.AssignedTo,
		DueDate:    t.DueDate,
		Completed:  t.Completed,
		Overdue:    t.Overdue(today),
	}
	if roster != nil {
		if m, ok := roster.Get(t.AssignedTo); ok {
			dto.Assignee = m.Name
		}
	}
	return dto
}
