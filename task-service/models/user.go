package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type User struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name string             `bson:"name" json:"name"`
}

// UserUpdate carries the fields supplied in a PUT body.
type UserUpdate struct {
	Name *string `json:"name"`
}

// ApplyDefaults fills the store-assigned fields before insertion.
func (u *User) ApplyDefaults() {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
}

func (u User) Validate() error {
	if u.Name == "" {
		return &ValidationError{Field: "name", Reason: "name is required"}
	}
	return nil
}

func (u UserUpdate) Validate() error {
	if u.Name != nil && *u.Name == "" {
		return &ValidationError{Field: "name", Reason: "name is required"}
	}
	return nil
}

func (u UserUpdate) Empty() bool {
	return u.Name == nil
}
