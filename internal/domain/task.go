package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Task validation errors. All wrap ErrValidation so callers can classify
// them with errors.Is.
var (
	ErrEmptyTaskID      = fmt.Errorf("%w: task ID cannot be empty", ErrValidation)
	ErrEmptyTitle       = fmt.Errorf("%w: title cannot be blank", ErrValidation)
	ErrEmptyDescription = fmt.Errorf("%w: description cannot be blank", ErrValidation)
	ErrMissingDueDate   = fmt.Errorf("%w: due date is required", ErrValidation)
)

// Task represents a single todo item. Titles are unique across all tasks;
// the service layer locates tasks by title for update and delete.
type Task struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	DueDate     time.Time `json:"due_date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewTask creates a Task with a generated ID and creation timestamps.
// The due date is normalized to its calendar day. Returns an error if
// validation fails.
func NewTask(title, description string, completed bool, dueDate time.Time) (*Task, error) {
	now := time.Now().UTC()
	task := &Task{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		Completed:   completed,
		DueDate:     NormalizeDate(dueDate),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
// Returns an error if any field fails validation.
func (t *Task) Validate() error {
	if t.ID == uuid.Nil {
		return ErrEmptyTaskID
	}

	return t.ValidateContent()
}

// ValidateContent checks the caller-supplied fields only, ignoring the
// ID. Update and delete requests carry no identifier; the title is the
// lookup key.
func (t *Task) ValidateContent() error {
	if isBlank(t.Title) {
		return ErrEmptyTitle
	}

	if isBlank(t.Description) {
		return ErrEmptyDescription
	}

	if t.DueDate.IsZero() {
		return ErrMissingDueDate
	}

	return nil
}

// DueOn reports whether the task is due on the calendar day of the given
// instant, ignoring the time-of-day component of both values.
func (t *Task) DueOn(day time.Time) bool {
	return NormalizeDate(t.DueDate).Equal(NormalizeDate(day))
}

// NormalizeDate strips the time-of-day component, returning midnight UTC
// of the same calendar day. Due dates are calendar dates, not instants.
func NormalizeDate(ts time.Time) time.Time {
	y, m, d := ts.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func isBlank(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}
