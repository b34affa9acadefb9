package repository

import (
	"errors"
	"time"
)

// ErrInvalidID is returned when a path parameter is not a well-formed
// ObjectID hex string. Handlers map it to a 400 rather than letting the
// store reject the query with a generic failure.
var ErrInvalidID = errors.New("invalid ID format")

const queryTimeout = 5 * time.Second

const (
	TasksCollection = "tasks"
	UsersCollection = "users"
)
