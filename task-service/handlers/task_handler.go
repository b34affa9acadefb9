package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"task-manager/task-service/models"

	"github.com/gorilla/mux"
)

type TaskHandler struct {
	logger *log.Logger
	tasks  TaskStore
	users  UserStore
}

// NewTaskHandler injects the logger and the stores; the user store is needed
// to expand the owner reference on single-task reads.
func NewTaskHandler(logger *log.Logger, tasks TaskStore, users UserStore) *TaskHandler {
	return &TaskHandler{logger: logger, tasks: tasks, users: users}
}

func (h *TaskHandler) GetTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.tasks.GetAll(r.Context())
	if err != nil {
		writeError(w, h.logger, err, "Error retrieving tasks.")
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var task models.Task
	if err := json.NewDecoder(r.Body).Decode(&task); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	created, err := h.tasks.Insert(r.Context(), task)
	if err != nil {
		writeError(w, h.logger, err, "Error creating task.")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// GetTask returns a single task with the owner record expanded inline when
// the ownerId reference resolves. A dangling reference is not an error; the
// task is returned without an owner.
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	task, err := h.tasks.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, h.logger, err, "Error retrieving task.")
		return
	}
	if task == nil {
		writeMessage(w, http.StatusNotFound, "Task not found.")
		return
	}

	response := models.TaskWithOwner{Task: *task}
	if task.OwnerID != "" {
		owner, err := h.users.GetByID(r.Context(), task.OwnerID)
		if err == nil && owner != nil {
			response.Owner = owner
		}
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var update models.TaskUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	task, err := h.tasks.Update(r.Context(), id, update)
	if err != nil {
		writeError(w, h.logger, err, "Error updating task.")
		return
	}
	if task == nil {
		writeMessage(w, http.StatusNotFound, "Task not found.")
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	task, err := h.tasks.Delete(r.Context(), id)
	if err != nil {
		writeError(w, h.logger, err, "Error deleting task.")
		return
	}
	if task == nil {
		writeMessage(w, http.StatusNotFound, "Task not found.")
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (h *TaskHandler) GetTasksByStatus(w http.ResponseWriter, r *http.Request) {
	status := mux.Vars(r)["status"]

	tasks, err := h.tasks.GetByStatus(r.Context(), status)
	if err != nil {
		writeError(w, h.logger, err, "Error retrieving tasks by status.")
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

// GetTasksByDate lists tasks created on or after the given date, inclusive.
func (h *TaskHandler) GetTasksByDate(w http.ResponseWriter, r *http.Request) {
	since, err := parseDate(mux.Vars(r)["date"])
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Message: "Invalid date format.",
			Error:   "expected RFC 3339 or YYYY-MM-DD",
		})
		return
	}

	tasks, err := h.tasks.GetCreatedSince(r.Context(), since)
	if err != nil {
		writeError(w, h.logger, err, "Error retrieving tasks by date.")
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}
