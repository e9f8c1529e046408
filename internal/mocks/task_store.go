package mocks

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/karolbystrek/Todo-Rails-Elite/internal/domain"
	"github.com/karolbystrek/Todo-Rails-Elite/internal/store"
)

// TaskStore is an in-memory implementation of store.TaskStore.
// Error fields can be set to force failures from specific methods.
type TaskStore struct {
	mu    sync.Mutex
	tasks map[uuid.UUID]*domain.Task

	// Optional error overrides, returned unconditionally when set.
	GetErr    error
	ListErr   error
	SaveErr   error
	DeleteErr error
}

// NewTaskStore creates an empty in-memory task store.
func NewTaskStore() *TaskStore {
	return &TaskStore{tasks: make(map[uuid.UUID]*domain.Task)}
}

var _ store.TaskStore = (*TaskStore)(nil)

// GetByID implements store.TaskStore.GetByID
func (s *TaskStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	if s.GetErr != nil {
		return nil, s.GetErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[id]
	if !ok {
		return nil, store.ErrTaskNotFound
	}
	cp := *task
	return &cp, nil
}

// GetByTitle implements store.TaskStore.GetByTitle
func (s *TaskStore) GetByTitle(ctx context.Context, title string) (*domain.Task, error) {
	if s.GetErr != nil {
		return nil, s.GetErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, task := range s.tasks {
		if task.Title == title {
			cp := *task
			return &cp, nil
		}
	}
	return nil, store.ErrTaskNotFound
}

// List implements store.TaskStore.List
func (s *TaskStore) List(ctx context.Context) ([]*domain.Task, error) {
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := make([]*domain.Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		cp := *task
		tasks = append(tasks, &cp)
	}
	return tasks, nil
}

// Save implements store.TaskStore.Save
func (s *TaskStore) Save(ctx context.Context, task *domain.Task) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	if err := task.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, existing := range s.tasks {
		if existing.Title == task.Title && id != task.ID {
			return store.ErrTitleExists
		}
	}

	cp := *task
	s.tasks[task.ID] = &cp
	return nil
}

// Delete implements store.TaskStore.Delete
func (s *TaskStore) Delete(ctx context.Context, id uuid.UUID) error {
	if s.DeleteErr != nil {
		return s.DeleteErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[id]; !ok {
		return store.ErrTaskNotFound
	}
	delete(s.tasks, id)
	return nil
}

// Len returns the number of stored tasks.
func (s *TaskStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}
