package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/karolbystrek/Todo-Rails-Elite/internal/domain"
	"github.com/karolbystrek/Todo-Rails-Elite/internal/store"
)

// TaskService provides task CRUD operations plus the filtered task queries.
type TaskService interface {
	// AddTask creates a new task. Returns store.ErrTitleExists if a task
	// with the same title already exists.
	AddTask(ctx context.Context, task *domain.Task) (*domain.Task, error)

	// GetTaskByID retrieves a task by its ID.
	// Returns store.ErrTaskNotFound if no task has that ID.
	GetTaskByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// GetTaskByTitle retrieves a task by its title. The title must be
	// non-blank. Returns store.ErrTaskNotFound if no task has that title.
	GetTaskByTitle(ctx context.Context, title string) (*domain.Task, error)

	// GetAllTasks returns all tasks. An empty store yields an empty
	// slice, never an error.
	GetAllTasks(ctx context.Context) ([]*domain.Task, error)

	// UpdateTask locates the existing task by the given task's title and
	// overwrites its description, completed flag and due date. The title
	// is the lookup key, so it cannot be renamed through this operation.
	// Returns store.ErrTaskNotFound if no task has that title.
	UpdateTask(ctx context.Context, task *domain.Task) (*domain.Task, error)

	// DeleteTask locates the existing task by the given task's title and
	// removes it. Returns store.ErrTaskNotFound if no task has that title.
	DeleteTask(ctx context.Context, task *domain.Task) error

	// GetPendingTasks returns all tasks that are not completed.
	GetPendingTasks(ctx context.Context) ([]*domain.Task, error)

	// GetCompletedTasks returns all tasks that are completed.
	GetCompletedTasks(ctx context.Context) ([]*domain.Task, error)

	// GetTodayTasks returns all pending tasks due on the current calendar
	// day, evaluated at call time.
	GetTodayTasks(ctx context.Context) ([]*domain.Task, error)
}

// TaskServiceImpl implements the TaskService interface.
type TaskServiceImpl struct {
	taskStore store.TaskStore
	logger    *slog.Logger
	now       func() time.Time
}

// NewTaskService creates a new TaskService backed by the given store.
func NewTaskService(taskStore store.TaskStore, log *slog.Logger) *TaskServiceImpl {
	if log == nil {
		log = slog.Default()
	}
	return &TaskServiceImpl{
		taskStore: taskStore,
		logger:    log.With(slog.String("component", "task_service")),
		now:       time.Now,
	}
}

// AddTask implements TaskService.AddTask
func (s *TaskServiceImpl) AddTask(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if err := task.Validate(); err != nil {
		s.logger.Warn("task validation failed",
			slog.String("error", err.Error()))
		return nil, err
	}

	_, err := s.taskStore.GetByTitle(ctx, task.Title)
	if err == nil {
		s.logger.Debug("attempted to add task with existing title",
			slog.String("title", task.Title))
		return nil, fmt.Errorf("task with title '%s' already exists: %w",
			task.Title, store.ErrTitleExists)
	}
	if !store.IsNotFoundError(err) {
		return nil, fmt.Errorf("failed to check for existing task: %w", err)
	}

	if err := s.taskStore.Save(ctx, task); err != nil {
		s.logger.Error("failed to save task",
			slog.String("error", err.Error()),
			slog.String("title", task.Title))
		return nil, fmt.Errorf("failed to save task: %w", err)
	}

	s.logger.Info("task created",
		slog.String("task_id", task.ID.String()),
		slog.String("title", task.Title))
	return task, nil
}

// GetTaskByID implements TaskService.GetTaskByID
func (s *TaskServiceImpl) GetTaskByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "cannot be empty", domain.ErrInvalidID)
	}

	task, err := s.taskStore.GetByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, fmt.Errorf("task not found with id %s: %w", id, err)
		}
		return nil, fmt.Errorf("failed to retrieve task: %w", err)
	}

	return task, nil
}

// GetTaskByTitle implements TaskService.GetTaskByTitle
func (s *TaskServiceImpl) GetTaskByTitle(ctx context.Context, title string) (*domain.Task, error) {
	if title == "" {
		return nil, domain.NewValidationError("title", "cannot be blank", nil)
	}

	task, err := s.taskStore.GetByTitle(ctx, title)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, fmt.Errorf("task not found with title '%s': %w", title, err)
		}
		return nil, fmt.Errorf("failed to retrieve task: %w", err)
	}

	return task, nil
}

// GetAllTasks implements TaskService.GetAllTasks
func (s *TaskServiceImpl) GetAllTasks(ctx context.Context) ([]*domain.Task, error) {
	tasks, err := s.taskStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// UpdateTask implements TaskService.UpdateTask
func (s *TaskServiceImpl) UpdateTask(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if err := task.ValidateContent(); err != nil {
		s.logger.Warn("task validation failed",
			slog.String("error", err.Error()))
		return nil, err
	}

	existing, err := s.taskStore.GetByTitle(ctx, task.Title)
	if err != nil {
		if store.IsNotFoundError(err) {
			s.logger.Debug("attempted to update non-existent task",
				slog.String("title", task.Title))
			return nil, fmt.Errorf("task not found with title '%s': %w", task.Title, err)
		}
		return nil, fmt.Errorf("failed to check for existing task: %w", err)
	}

	existing.Title = task.Title
	existing.Description = task.Description
	existing.Completed = task.Completed
	existing.DueDate = domain.NormalizeDate(task.DueDate)
	existing.UpdatedAt = s.now().UTC()

	if err := s.taskStore.Save(ctx, existing); err != nil {
		s.logger.Error("failed to update task",
			slog.String("error", err.Error()),
			slog.String("title", task.Title))
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	s.logger.Info("task updated",
		slog.String("task_id", existing.ID.String()),
		slog.String("title", existing.Title))
	return existing, nil
}

// DeleteTask implements TaskService.DeleteTask
func (s *TaskServiceImpl) DeleteTask(ctx context.Context, task *domain.Task) error {
	if task == nil || task.Title == "" {
		return domain.NewValidationError("title", "cannot be blank", nil)
	}

	existing, err := s.taskStore.GetByTitle(ctx, task.Title)
	if err != nil {
		if store.IsNotFoundError(err) {
			s.logger.Debug("attempted to delete non-existent task",
				slog.String("title", task.Title))
			return fmt.Errorf("task not found with title '%s': %w", task.Title, err)
		}
		return fmt.Errorf("failed to check for existing task: %w", err)
	}

	if err := s.taskStore.Delete(ctx, existing.ID); err != nil {
		s.logger.Error("failed to delete task",
			slog.String("error", err.Error()),
			slog.String("title", task.Title))
		return fmt.Errorf("failed to delete task: %w", err)
	}

	s.logger.Info("task deleted",
		slog.String("task_id", existing.ID.String()),
		slog.String("title", existing.Title))
	return nil
}

// GetPendingTasks implements TaskService.GetPendingTasks
func (s *TaskServiceImpl) GetPendingTasks(ctx context.Context) ([]*domain.Task, error) {
	return s.filterTasks(ctx, func(t *domain.Task) bool {
		return !t.Completed
	})
}

// GetCompletedTasks implements TaskService.GetCompletedTasks
func (s *TaskServiceImpl) GetCompletedTasks(ctx context.Context) ([]*domain.Task, error) {
	return s.filterTasks(ctx, func(t *domain.Task) bool {
		return t.Completed
	})
}

// GetTodayTasks implements TaskService.GetTodayTasks
func (s *TaskServiceImpl) GetTodayTasks(ctx context.Context) ([]*domain.Task, error) {
	today := s.now()
	return s.filterTasks(ctx, func(t *domain.Task) bool {
		return !t.Completed && t.DueOn(today)
	})
}

func (s *TaskServiceImpl) filterTasks(
	ctx context.Context,
	keep func(*domain.Task) bool,
) ([]*domain.Task, error) {
	all, err := s.taskStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	filtered := make([]*domain.Task, 0, len(all))
	for _, t := range all {
		if keep(t) {
			filtered = append(filtered, t)
		}
	}
	return filtered, nil
}
