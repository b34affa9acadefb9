package models

import (
	"testing"
	"time"
)

func TestTaskApplyDefaults(t *testing.T) {
	task := Task{Title: "Write spec"}
	task.ApplyDefaults()

	if task.ID.IsZero() {
		t.Error("expected an assigned ID")
	}
	if task.Status != StatusInProgress {
		t.Errorf("expected default status %q, got %q", StatusInProgress, task.Status)
	}
	if task.CreatedAt.IsZero() {
		t.Error("expected an assigned creation time")
	}
}

func TestTaskApplyDefaultsKeepsSuppliedValues(t *testing.T) {
	createdAt := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	task := Task{Title: "Write spec", Status: StatusDone, CreatedAt: createdAt}
	task.ApplyDefaults()

	if task.Status != StatusDone {
		t.Errorf("supplied status overwritten: %q", task.Status)
	}
	if !task.CreatedAt.Equal(createdAt) {
		t.Errorf("supplied creation time overwritten: %v", task.CreatedAt)
	}
}

func TestTaskValidate(t *testing.T) {
	tests := []struct {
		name    string
		task    Task
		wantErr bool
	}{
		{"valid", Task{Title: "a", Status: StatusInProgress}, false},
		{"done status", Task{Title: "a", Status: StatusDone}, false},
		{"missing title", Task{Status: StatusInProgress}, true},
		{"unknown status", Task{Title: "a", Status: "pending"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.task.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestTaskUpdateValidate(t *testing.T) {
	title := "new title"
	emptyTitle := ""
	badStatus := "pending"
	goodStatus := StatusDone

	if err := (TaskUpdate{Title: &title, Status: &goodStatus}).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := (TaskUpdate{}).Validate(); err != nil {
		t.Errorf("empty update should be valid, got %v", err)
	}
	if err := (TaskUpdate{Title: &emptyTitle}).Validate(); err == nil {
		t.Error("expected error for empty title")
	}
	if err := (TaskUpdate{Status: &badStatus}).Validate(); err == nil {
		t.Error("expected error for unknown status")
	}
}

func TestUserValidate(t *testing.T) {
	if err := (User{Name: "Alice"}).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := (User{}).Validate(); err == nil {
		t.Error("expected error for missing name")
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := Task{}.Validate()
	vErr, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if vErr.Field != "title" {
		t.Errorf("expected field title, got %q", vErr.Field)
	}
}
