package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/karolbystrek/Todo-Rails-Elite/internal/domain"
)

// TaskStore defines the interface for task data persistence. The service
// layer performs its own existence checks before writes; implementations
// only translate storage outcomes into the shared error taxonomy.
type TaskStore interface {
	// GetByID retrieves a task by its unique ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// GetByTitle retrieves a task by its unique title.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByTitle(ctx context.Context, title string) (*domain.Task, error)

	// List returns all tasks. An empty store yields an empty slice, not
	// an error.
	List(ctx context.Context) ([]*domain.Task, error)

	// Save inserts the task, or overwrites the existing record with the
	// same ID. Returns ErrTitleExists if the write would violate title
	// uniqueness.
	Save(ctx context.Context, task *domain.Task) error

	// Delete removes a task by its ID.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
