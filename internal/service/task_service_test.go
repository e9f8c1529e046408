package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karolbystrek/Todo-Rails-Elite/internal/domain"
	"github.com/karolbystrek/Todo-Rails-Elite/internal/mocks"
	"github.com/karolbystrek/Todo-Rails-Elite/internal/store"
)

func newTaskService(t *testing.T) (*TaskServiceImpl, *mocks.TaskStore) {
	t.Helper()
	taskStore := mocks.NewTaskStore()
	svc := NewTaskService(taskStore, nil)
	return svc, taskStore
}

func mustTask(t *testing.T, title, description string, completed bool, due time.Time) *domain.Task {
	t.Helper()
	task, err := domain.NewTask(title, description, completed, due)
	require.NoError(t, err)
	return task
}

func TestAddTask(t *testing.T) {
	svc, taskStore := newTaskService(t)
	ctx := context.Background()
	due := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	task := mustTask(t, "Buy milk", "2% milk", false, due)
	created, err := svc.AddTask(ctx, task)
	require.NoError(t, err)

	assert.Equal(t, "Buy milk", created.Title)
	assert.Equal(t, "2% milk", created.Description)
	assert.False(t, created.Completed)
	assert.True(t, created.DueDate.Equal(due))
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, 1, taskStore.Len())
}

func TestAddTaskDuplicateTitle(t *testing.T) {
	svc, taskStore := newTaskService(t)
	ctx := context.Background()
	due := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	_, err := svc.AddTask(ctx, mustTask(t, "Buy milk", "2% milk", false, due))
	require.NoError(t, err)

	_, err = svc.AddTask(ctx, mustTask(t, "Buy milk", "whole milk", false, due))
	require.Error(t, err)
	assert.True(t, store.IsDuplicateError(err), "expected duplicate error, got %v", err)

	// The store still contains exactly one task with that title.
	assert.Equal(t, 1, taskStore.Len())
	stored, err := taskStore.GetByTitle(ctx, "Buy milk")
	require.NoError(t, err)
	assert.Equal(t, "2% milk", stored.Description)
}

func TestGetTaskByID(t *testing.T) {
	svc, _ := newTaskService(t)
	ctx := context.Background()
	due := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	created, err := svc.AddTask(ctx, mustTask(t, "Buy milk", "2% milk", false, due))
	require.NoError(t, err)

	found, err := svc.GetTaskByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = svc.GetTaskByID(ctx, uuid.New())
	require.Error(t, err)
	assert.True(t, store.IsNotFoundError(err), "expected not found error, got %v", err)
}

func TestGetTaskByTitle(t *testing.T) {
	svc, _ := newTaskService(t)
	ctx := context.Background()

	_, err := svc.GetTaskByTitle(ctx, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.GetTaskByTitle(ctx, "missing")
	require.Error(t, err)
	assert.True(t, store.IsNotFoundError(err))
}

func TestGetAllTasksEmptyIsSuccess(t *testing.T) {
	svc, _ := newTaskService(t)

	tasks, err := svc.GetAllTasks(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestUpdateTask(t *testing.T) {
	svc, taskStore := newTaskService(t)
	ctx := context.Background()
	due := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	created, err := svc.AddTask(ctx, mustTask(t, "Buy milk", "2% milk", false, due))
	require.NoError(t, err)

	newDue := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
	updated, err := svc.UpdateTask(ctx, &domain.Task{
		Title:       "Buy milk",
		Description: "whole milk",
		Completed:   true,
		DueDate:     newDue,
	})
	require.NoError(t, err)

	// The existing record keeps its identity; fields are overwritten.
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "whole milk", updated.Description)
	assert.True(t, updated.Completed)
	assert.True(t, updated.DueDate.Equal(newDue))
	assert.Equal(t, 1, taskStore.Len())
}

func TestUpdateTaskNotFound(t *testing.T) {
	svc, taskStore := newTaskService(t)
	ctx := context.Background()

	_, err := svc.UpdateTask(ctx, &domain.Task{
		Title:       "missing",
		Description: "desc",
		DueDate:     time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	})
	require.Error(t, err)
	assert.True(t, store.IsNotFoundError(err))
	assert.Equal(t, 0, taskStore.Len(), "no write should happen on failed update")
}

func TestDeleteTask(t *testing.T) {
	svc, taskStore := newTaskService(t)
	ctx := context.Background()
	due := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	_, err := svc.AddTask(ctx, mustTask(t, "Buy milk", "2% milk", false, due))
	require.NoError(t, err)

	err = svc.DeleteTask(ctx, &domain.Task{Title: "Buy milk"})
	require.NoError(t, err)
	assert.Equal(t, 0, taskStore.Len())

	err = svc.DeleteTask(ctx, &domain.Task{Title: "Buy milk"})
	require.Error(t, err)
	assert.True(t, store.IsNotFoundError(err))
}

func TestPendingAndCompletedPartitionAllTasks(t *testing.T) {
	svc, _ := newTaskService(t)
	ctx := context.Background()
	due := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	_, err := svc.AddTask(ctx, mustTask(t, "a", "d", false, due))
	require.NoError(t, err)
	_, err = svc.AddTask(ctx, mustTask(t, "b", "d", true, due))
	require.NoError(t, err)
	_, err = svc.AddTask(ctx, mustTask(t, "c", "d", false, due))
	require.NoError(t, err)

	all, err := svc.GetAllTasks(ctx)
	require.NoError(t, err)
	pending, err := svc.GetPendingTasks(ctx)
	require.NoError(t, err)
	completed, err := svc.GetCompletedTasks(ctx)
	require.NoError(t, err)

	assert.Len(t, all, 3)
	assert.Len(t, pending, 2)
	assert.Len(t, completed, 1)

	seen := make(map[uuid.UUID]bool)
	for _, task := range pending {
		assert.False(t, task.Completed)
		seen[task.ID] = true
	}
	for _, task := range completed {
		assert.True(t, task.Completed)
		assert.False(t, seen[task.ID], "pending and completed must not overlap")
		seen[task.ID] = true
	}
	assert.Len(t, seen, len(all), "pending and completed must partition all tasks")
}

func TestGetTodayTasks(t *testing.T) {
	svc, _ := newTaskService(t)
	ctx := context.Background()

	today := time.Date(2026, 9, 14, 10, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return today }

	_, err := svc.AddTask(ctx, mustTask(t, "due today", "d", false, today))
	require.NoError(t, err)
	_, err = svc.AddTask(ctx, mustTask(t, "done today", "d", true, today))
	require.NoError(t, err)
	_, err = svc.AddTask(ctx, mustTask(t, "due tomorrow", "d", false, today.AddDate(0, 0, 1)))
	require.NoError(t, err)

	tasks, err := svc.GetTodayTasks(ctx)
	require.NoError(t, err)

	// Completed tasks and tasks due on other days are excluded.
	require.Len(t, tasks, 1)
	assert.Equal(t, "due today", tasks[0].Title)
}

func TestTodayScenario(t *testing.T) {
	svc, _ := newTaskService(t)
	ctx := context.Background()

	today := time.Date(2026, 9, 14, 8, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return today }

	_, err := svc.AddTask(ctx, mustTask(t, "Buy milk", "2% milk", false, today))
	require.NoError(t, err)

	tasks, err := svc.GetTodayTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)

	_, err = svc.UpdateTask(ctx, &domain.Task{
		Title:       "Buy milk",
		Description: "2% milk",
		Completed:   true,
		DueDate:     today,
	})
	require.NoError(t, err)

	tasks, err = svc.GetTodayTasks(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)

	completed, err := svc.GetCompletedTasks(ctx)
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, "Buy milk", completed[0].Title)
}
