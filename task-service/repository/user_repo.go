package repository

import (
	"context"
	"log"

	"task-manager/task-service/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UserRepo encapsulates the users collection.
type UserRepo struct {
	users  *mongo.Collection
	logger *log.Logger
}

func NewUserRepo(client *mongo.Client, database string, logger *log.Logger) *UserRepo {
	return &UserRepo{
		users:  client.Database(database).Collection(UsersCollection),
		logger: logger,
	}
}

func (ur *UserRepo) GetAll(ctx context.Context) ([]models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cursor, err := ur.users.Find(ctx, bson.M{})
	if err != nil {
		ur.logger.Println("Error querying users:", err)
		return nil, err
	}

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		ur.logger.Println("Error decoding users:", err)
		return nil, err
	}

	return users, nil
}

// GetByID returns (nil, nil) when no user has the given id.
func (ur *UserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var user models.User
	err = ur.users.FindOne(ctx, bson.M{"_id": objectID}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	} else if err != nil {
		ur.logger.Println("Error fetching user:", err)
		return nil, err
	}

	return &user, nil
}

func (ur *UserRepo) Insert(ctx context.Context, user models.User) (*models.User, error) {
	user.ApplyDefaults()
	if err := user.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if _, err := ur.users.InsertOne(ctx, user); err != nil {
		ur.logger.Println("Error inserting user:", err)
		return nil, err
	}

	return &user, nil
}

func (ur *UserRepo) Update(ctx context.Context, id string, update models.UserUpdate) (*models.User, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	if err := update.Validate(); err != nil {
		return nil, err
	}
	if update.Empty() {
		return ur.GetByID(ctx, id)
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var user models.User
	err = ur.users.FindOneAndUpdate(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": bson.M{"name": *update.Name}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	} else if err != nil {
		ur.logger.Println("Error updating user:", err)
		return nil, err
	}

	return &user, nil
}

// Delete removes a user and returns the deleted document, or (nil, nil)
// when no user has the given id. Tasks referencing the user are left
// untouched.
func (ur *UserRepo) Delete(ctx context.Context, id string) (*models.User, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var user models.User
	err = ur.users.FindOneAndDelete(ctx, bson.M{"_id": objectID}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	} else if err != nil {
		ur.logger.Println("Error deleting user:", err)
		return nil, err
	}

	return &user, nil
}
