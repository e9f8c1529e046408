package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/karolbystrek/Todo-Rails-Elite/internal/api/shared"
	"github.com/karolbystrek/Todo-Rails-Elite/internal/domain"
	"github.com/karolbystrek/Todo-Rails-Elite/internal/service"
)

// TaskHandler handles task-related API requests.
type TaskHandler struct {
	taskService service.TaskService
	validator   *validator.Validate
}

// NewTaskHandler creates a new TaskHandler with the given dependencies.
func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		validator:   validator.New(),
	}
}

// Create handles POST /api/tasks.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req TaskRequest
	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, sanitizeValidationError(err))
		return
	}

	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	task, err := domain.NewTask(req.Title, req.Description, req.Completed, dueDate)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	created, err := h.taskService.AddTask(r.Context(), task)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, NewTaskResponse(created))
}

// GetByID handles GET /api/tasks/{id}.
func (h *TaskHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	task, err := h.taskService.GetTaskByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewTaskResponse(task))
}

// GetByTitle handles GET /api/tasks/title/{title}.
func (h *TaskHandler) GetByTitle(w http.ResponseWriter, r *http.Request) {
	title := pathParam(r, "title")

	task, err := h.taskService.GetTaskByTitle(r.Context(), title)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewTaskResponse(task))
}

// List handles GET /api/tasks.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskService.GetAllTasks(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewTaskListResponse(tasks))
}

// ListPending handles GET /api/tasks/pending.
func (h *TaskHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskService.GetPendingTasks(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewTaskListResponse(tasks))
}

// ListCompleted handles GET /api/tasks/completed.
func (h *TaskHandler) ListCompleted(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskService.GetCompletedTasks(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewTaskListResponse(tasks))
}

// ListToday handles GET /api/tasks/today.
func (h *TaskHandler) ListToday(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskService.GetTodayTasks(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewTaskListResponse(tasks))
}

// Update handles PUT /api/tasks. The title identifies the task to update.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req TaskRequest
	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, sanitizeValidationError(err))
		return
	}

	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	task := &domain.Task{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
		DueDate:     dueDate,
	}

	updated, err := h.taskService.UpdateTask(r.Context(), task)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewTaskResponse(updated))
}

// Delete handles DELETE /api/tasks. The title identifies the task to delete.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req DeleteTaskRequest
	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, sanitizeValidationError(err))
		return
	}

	if err := h.taskService.DeleteTask(r.Context(), &domain.Task{Title: req.Title}); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
