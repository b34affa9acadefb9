package bootstrap

import (
	"context"
	"fmt"
	"log"

	"task-manager/task-service/models"
	"task-manager/task-service/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// InsertInitialData seeds a handful of users and tasks so a fresh instance
// has something to serve. It is a no-op when either collection already
// holds documents.
func InsertInitialData(client *mongo.Client, database string, logger *log.Logger) {
	users := client.Database(database).Collection(repository.UsersCollection)
	tasks := client.Database(database).Collection(repository.TasksCollection)

	count, err := users.CountDocuments(context.TODO(), bson.D{})
	if err != nil {
		logger.Println("Error counting users:", err)
		return
	}
	if count > 0 {
		return
	}

	var seedUsers []interface{}
	for i := 1; i <= 3; i++ {
		user := models.User{Name: fmt.Sprintf("User %d", i)}
		user.ApplyDefaults()
		seedUsers = append(seedUsers, user)

		task := models.Task{
			Title:   fmt.Sprintf("Task %d", i),
			OwnerID: user.ID.Hex(),
		}
		task.ApplyDefaults()
		if _, err := tasks.InsertOne(context.TODO(), task); err != nil {
			logger.Println("Error inserting initial task:", err)
		}
	}

	if _, err := users.InsertMany(context.TODO(), seedUsers); err != nil {
		logger.Println("Error inserting initial users:", err)
	} else {
		logger.Println("Inserted initial data")
	}
}
