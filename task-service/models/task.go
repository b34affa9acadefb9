package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusInProgress = "in-progress"
	StatusDone       = "done"
)

type Task struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Status      string             `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	OwnerID     string             `bson:"ownerId,omitempty" json:"ownerId,omitempty"`
}

// TaskUpdate carries the fields supplied in a PUT body. Nil means the field
// was absent from the body and the stored value is kept.
type TaskUpdate struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Status      *string    `json:"status"`
	CreatedAt   *time.Time `json:"createdAt"`
	OwnerID     *string    `json:"ownerId"`
}

// TaskWithOwner is the response shape of a single-task read: the raw ownerId
// is kept and the full user record is attached when the reference resolves.
type TaskWithOwner struct {
	Task
	Owner *User `json:"owner,omitempty"`
}

func validStatus(status string) bool {
	return status == StatusInProgress || status == StatusDone
}

// ApplyDefaults fills the store-assigned fields before insertion.
func (t *Task) ApplyDefaults() {
	if t.ID.IsZero() {
		t.ID = primitive.NewObjectID()
	}
	if t.Status == "" {
		t.Status = StatusInProgress
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
}

// Validate checks the document against the schema rules. Call after
// ApplyDefaults so the status default is already in place.
func (t Task) Validate() error {
	if t.Title == "" {
		return &ValidationError{Field: "title", Reason: "title is required"}
	}
	if !validStatus(t.Status) {
		return &ValidationError{Field: "status", Reason: "status must be one of: in-progress, done"}
	}
	return nil
}

// Validate checks only the fields present in the update payload.
func (u TaskUpdate) Validate() error {
	if u.Title != nil && *u.Title == "" {
		return &ValidationError{Field: "title", Reason: "title is required"}
	}
	if u.Status != nil && !validStatus(*u.Status) {
		return &ValidationError{Field: "status", Reason: "status must be one of: in-progress, done"}
	}
	return nil
}

// Empty reports whether the payload supplied no fields at all.
func (u TaskUpdate) Empty() bool {
	return u.Title == nil && u.Description == nil && u.Status == nil &&
		u.CreatedAt == nil && u.OwnerID == nil
}
