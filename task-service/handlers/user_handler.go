package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"task-manager/task-service/models"

	"github.com/gorilla/mux"
)

type UserHandler struct {
	logger *log.Logger
	users  UserStore
	tasks  TaskStore
}

// NewUserHandler injects the logger and the stores; the task store backs the
// owned-tasks listing.
func NewUserHandler(logger *log.Logger, users UserStore, tasks TaskStore) *UserHandler {
	return &UserHandler{logger: logger, users: users, tasks: tasks}
}

func (h *UserHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.GetAll(r.Context())
	if err != nil {
		writeError(w, h.logger, err, "Error retrieving users.")
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	created, err := h.users.Insert(r.Context(), user)
	if err != nil {
		writeError(w, h.logger, err, "Error creating user.")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	user, err := h.users.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, h.logger, err, "Error retrieving user.")
		return
	}
	if user == nil {
		writeMessage(w, http.StatusNotFound, "User not found.")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var update models.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	user, err := h.users.Update(r.Context(), id, update)
	if err != nil {
		writeError(w, h.logger, err, "Error updating user.")
		return
	}
	if user == nil {
		writeMessage(w, http.StatusNotFound, "User not found.")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// DeleteUser removes the user only. Tasks referencing the user keep their
// ownerId; there is no cascade.
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	user, err := h.users.Delete(r.Context(), id)
	if err != nil {
		writeError(w, h.logger, err, "Error deleting user.")
		return
	}
	if user == nil {
		writeMessage(w, http.StatusNotFound, "User not found.")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// GetUserTasks lists the tasks whose ownerId references the given user. A
// nonexistent user simply owns no tasks; the result is an empty list.
func (h *UserHandler) GetUserTasks(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	tasks, err := h.tasks.GetByOwner(r.Context(), id)
	if err != nil {
		writeError(w, h.logger, err, "Error retrieving assigned tasks.")
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}
