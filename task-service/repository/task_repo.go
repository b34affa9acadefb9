package repository

import (
	"context"
	"log"
	"time"

	"task-manager/task-service/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TaskRepo encapsulates the tasks collection.
type TaskRepo struct {
	tasks  *mongo.Collection
	logger *log.Logger
}

func NewTaskRepo(client *mongo.Client, database string, logger *log.Logger) *TaskRepo {
	return &TaskRepo{
		tasks:  client.Database(database).Collection(TasksCollection),
		logger: logger,
	}
}

func (tr *TaskRepo) GetAll(ctx context.Context) ([]models.Task, error) {
	return tr.find(ctx, bson.M{})
}

// GetByID returns (nil, nil) when no task has the given id.
func (tr *TaskRepo) GetByID(ctx context.Context, id string) (*models.Task, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var task models.Task
	err = tr.tasks.FindOne(ctx, bson.M{"_id": objectID}).Decode(&task)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	} else if err != nil {
		tr.logger.Println("Error fetching task:", err)
		return nil, err
	}

	return &task, nil
}

func (tr *TaskRepo) Insert(ctx context.Context, task models.Task) (*models.Task, error) {
	task.ApplyDefaults()
	if err := task.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if _, err := tr.tasks.InsertOne(ctx, task); err != nil {
		tr.logger.Println("Error inserting task:", err)
		return nil, err
	}

	return &task, nil
}

// Update applies the supplied fields to an existing task and returns the
// post-update document, or (nil, nil) when no task has the given id.
func (tr *TaskRepo) Update(ctx context.Context, id string, update models.TaskUpdate) (*models.Task, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	if err := update.Validate(); err != nil {
		return nil, err
	}
	if update.Empty() {
		return tr.GetByID(ctx, id)
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var task models.Task
	err = tr.tasks.FindOneAndUpdate(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": taskUpdateDoc(update)},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&task)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	} else if err != nil {
		tr.logger.Println("Error updating task:", err)
		return nil, err
	}

	return &task, nil
}

// Delete removes a task and returns the deleted document, or (nil, nil)
// when no task has the given id.
func (tr *TaskRepo) Delete(ctx context.Context, id string) (*models.Task, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var task models.Task
	err = tr.tasks.FindOneAndDelete(ctx, bson.M{"_id": objectID}).Decode(&task)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	} else if err != nil {
		tr.logger.Println("Error deleting task:", err)
		return nil, err
	}

	return &task, nil
}

func (tr *TaskRepo) GetByStatus(ctx context.Context, status string) ([]models.Task, error) {
	return tr.find(ctx, bson.M{"status": status})
}

// GetCreatedSince returns tasks created on or after the given instant.
func (tr *TaskRepo) GetCreatedSince(ctx context.Context, since time.Time) ([]models.Task, error) {
	return tr.find(ctx, bson.M{"createdAt": bson.M{"$gte": since}})
}

func (tr *TaskRepo) GetByOwner(ctx context.Context, ownerID string) ([]models.Task, error) {
	if _, err := primitive.ObjectIDFromHex(ownerID); err != nil {
		return nil, ErrInvalidID
	}
	return tr.find(ctx, bson.M{"ownerId": ownerID})
}

func (tr *TaskRepo) find(ctx context.Context, filter bson.M) ([]models.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cursor, err := tr.tasks.Find(ctx, filter)
	if err != nil {
		tr.logger.Println("Error querying tasks:", err)
		return nil, err
	}

	// Empty result sets serialize as [], not null.
	tasks := []models.Task{}
	if err := cursor.All(ctx, &tasks); err != nil {
		tr.logger.Println("Error decoding tasks:", err)
		return nil, err
	}

	return tasks, nil
}

// taskUpdateDoc builds the $set document from the supplied fields only.
func taskUpdateDoc(update models.TaskUpdate) bson.M {
	set := bson.M{}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Status != nil {
		set["status"] = *update.Status
	}
	if update.CreatedAt != nil {
		set["createdAt"] = *update.CreatedAt
	}
	if update.OwnerID != nil {
		set["ownerId"] = *update.OwnerID
	}
	return set
}
