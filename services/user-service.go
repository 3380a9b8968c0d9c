package services

import (
	"context"
	"fmt"

	"github.com/abdulaziz1812/micro-tasker-server/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserService struct {
	userCollection *mongo.Collection
}

func NewUserService(userCollection *mongo.Collection) *UserService {
	return &UserService{userCollection: userCollection}
}

func (s *UserService) CreateUser(ctx context.Context, user models.User) (*mongo.InsertOneResult, error) {
	result, err := s.userCollection.InsertOne(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %v", err)
	}
	return result, nil
}

// GetUserByEmail returns the first user matching the email, or nil when no
// user exists with that email.
func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.userCollection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve user: %v", err)
	}
	return &user, nil
}

func (s *UserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	cursor, err := s.userCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve users: %v", err)
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	for cursor.Next(ctx) {
		var user models.User
		if err := cursor.Decode(&user); err != nil {
			return nil, fmt.Errorf("failed to decode user: %v", err)
		}
		users = append(users, user)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return users, nil
}

// GetBestWorkers returns the top 6 workers ranked by coin balance.
func (s *UserService) GetBestWorkers(ctx context.Context) ([]models.User, error) {
	filter := bson.M{"role": models.RoleWorker}
	opts := options.Find().SetSort(bson.M{"coin": -1}).SetLimit(6)

	cursor, err := s.userCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve best workers: %v", err)
	}
	defer cursor.Close(ctx)

	workers := []models.User{}
	for cursor.Next(ctx) {
		var worker models.User
		if err := cursor.Decode(&worker); err != nil {
			return nil, fmt.Errorf("failed to decode worker: %v", err)
		}
		workers = append(workers, worker)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return workers, nil
}

// UpdateCoin overwrites the coin balance with the exact value supplied.
// Callers compute increments themselves.
func (s *UserService) UpdateCoin(ctx context.Context, email string, coin float64) (*mongo.UpdateResult, error) {
	filter := bson.M{"email": email}
	update := bson.M{"$set": bson.M{"coin": coin}}

	result, err := s.userCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update coin balance: %v", err)
	}
	return result, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	result, err := s.userCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to delete user: %v", err)
	}
	return result, nil
}
