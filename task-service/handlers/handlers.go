package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"task-manager/task-service/models"
	"task-manager/task-service/repository"
)

// TaskStore is the data access surface the task handlers need. It is
// satisfied by *repository.TaskRepo; tests plug in an in-memory fake.
type TaskStore interface {
	GetAll(ctx context.Context) ([]models.Task, error)
	GetByID(ctx context.Context, id string) (*models.Task, error)
	Insert(ctx context.Context, task models.Task) (*models.Task, error)
	Update(ctx context.Context, id string, update models.TaskUpdate) (*models.Task, error)
	Delete(ctx context.Context, id string) (*models.Task, error)
	GetByStatus(ctx context.Context, status string) ([]models.Task, error)
	GetCreatedSince(ctx context.Context, since time.Time) ([]models.Task, error)
	GetByOwner(ctx context.Context, ownerID string) ([]models.Task, error)
}

// UserStore is the data access surface the user handlers need.
type UserStore interface {
	GetAll(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	Insert(ctx context.Context, user models.User) (*models.User, error)
	Update(ctx context.Context, id string, update models.UserUpdate) (*models.User, error)
	Delete(ctx context.Context, id string) (*models.User, error)
}

type errorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Message: message})
}

// writeError maps a data-access failure to the HTTP contract: validation
// problems and malformed ids are the client's fault (400, with detail),
// anything else is a store failure (500, generic message only).
func writeError(w http.ResponseWriter, logger *log.Logger, err error, message string) {
	var vErr *models.ValidationError
	if errors.As(err, &vErr) || errors.Is(err, repository.ErrInvalidID) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: message, Error: err.Error()})
		return
	}
	logger.Println(message, err)
	writeMessage(w, http.StatusInternalServerError, message)
}

// parseDate accepts the formats the date filter endpoint supports.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
