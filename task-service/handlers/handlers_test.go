package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"task-manager/task-service/models"
	"task-manager/task-service/repository"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeTaskStore mirrors the repository contract in memory: malformed ids
// are rejected up front, absent records come back as (nil, nil), writes run
// the model validation.
type fakeTaskStore struct {
	tasks map[string]models.Task
	fail  error
}

func newFakeTaskStore() *fakeTaskStore {
	return &fakeTaskStore{tasks: make(map[string]models.Task)}
}

func (f *fakeTaskStore) GetAll(ctx context.Context) ([]models.Task, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	all := []models.Task{}
	for _, t := range f.tasks {
		all = append(all, t)
	}
	return all, nil
}

func (f *fakeTaskStore) GetByID(ctx context.Context, id string) (*models.Task, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, repository.ErrInvalidID
	}
	if t, ok := f.tasks[id]; ok {
		return &t, nil
	}
	return nil, nil
}

func (f *fakeTaskStore) Insert(ctx context.Context, task models.Task) (*models.Task, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	task.ApplyDefaults()
	if err := task.Validate(); err != nil {
		return nil, err
	}
	f.tasks[task.ID.Hex()] = task
	return &task, nil
}

func (f *fakeTaskStore) Update(ctx context.Context, id string, update models.TaskUpdate) (*models.Task, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, repository.ErrInvalidID
	}
	if err := update.Validate(); err != nil {
		return nil, err
	}
	task, ok := f.tasks[id]
	if !ok {
		return nil, nil
	}
	if update.Title != nil {
		task.Title = *update.Title
	}
	if update.Description != nil {
		task.Description = *update.Description
	}
	if update.Status != nil {
		task.Status = *update.Status
	}
	if update.CreatedAt != nil {
		task.CreatedAt = *update.CreatedAt
	}
	if update.OwnerID != nil {
		task.OwnerID = *update.OwnerID
	}
	f.tasks[id] = task
	return &task, nil
}

func (f *fakeTaskStore) Delete(ctx context.Context, id string) (*models.Task, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, repository.ErrInvalidID
	}
	task, ok := f.tasks[id]
	if !ok {
		return nil, nil
	}
	delete(f.tasks, id)
	return &task, nil
}

func (f *fakeTaskStore) GetByStatus(ctx context.Context, status string) ([]models.Task, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	matched := []models.Task{}
	for _, t := range f.tasks {
		if t.Status == status {
			matched = append(matched, t)
		}
	}
	return matched, nil
}

func (f *fakeTaskStore) GetCreatedSince(ctx context.Context, since time.Time) ([]models.Task, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	matched := []models.Task{}
	for _, t := range f.tasks {
		if !t.CreatedAt.Before(since) {
			matched = append(matched, t)
		}
	}
	return matched, nil
}

func (f *fakeTaskStore) GetByOwner(ctx context.Context, ownerID string) ([]models.Task, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	if _, err := primitive.ObjectIDFromHex(ownerID); err != nil {
		return nil, repository.ErrInvalidID
	}
	matched := []models.Task{}
	for _, t := range f.tasks {
		if t.OwnerID == ownerID {
			matched = append(matched, t)
		}
	}
	return matched, nil
}

type fakeUserStore struct {
	users map[string]models.User
	fail  error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]models.User)}
}

func (f *fakeUserStore) GetAll(ctx context.Context) ([]models.User, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	all := []models.User{}
	for _, u := range f.users {
		all = append(all, u)
	}
	return all, nil
}

func (f *fakeUserStore) GetByID(ctx context.Context, id string) (*models.User, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, repository.ErrInvalidID
	}
	if u, ok := f.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (f *fakeUserStore) Insert(ctx context.Context, user models.User) (*models.User, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	user.ApplyDefaults()
	if err := user.Validate(); err != nil {
		return nil, err
	}
	f.users[user.ID.Hex()] = user
	return &user, nil
}

func (f *fakeUserStore) Update(ctx context.Context, id string, update models.UserUpdate) (*models.User, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, repository.ErrInvalidID
	}
	if err := update.Validate(); err != nil {
		return nil, err
	}
	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	if update.Name != nil {
		user.Name = *update.Name
	}
	f.users[id] = user
	return &user, nil
}

func (f *fakeUserStore) Delete(ctx context.Context, id string) (*models.User, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, repository.ErrInvalidID
	}
	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	delete(f.users, id)
	return &user, nil
}

type testEnv struct {
	router *mux.Router
	tasks  *fakeTaskStore
	users  *fakeUserStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	logger := log.New(io.Discard, "", 0)
	tasks := newFakeTaskStore()
	users := newFakeUserStore()
	router := NewRouter(
		NewTaskHandler(logger, tasks, users),
		NewUserHandler(logger, users, tasks),
	)
	return &testEnv{router: router, tasks: tasks, users: users}
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodGet, "/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
