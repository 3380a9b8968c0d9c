package services

import (
	"context"
	"fmt"

	"github.com/abdulaziz1812/micro-tasker-server/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type WithdrawalService struct {
	withdrawalCollection *mongo.Collection
}

func NewWithdrawalService(withdrawalCollection *mongo.Collection) *WithdrawalService {
	return &WithdrawalService{withdrawalCollection: withdrawalCollection}
}

func (s *WithdrawalService) CreateWithdrawal(ctx context.Context, withdrawal models.Withdrawal) (*mongo.InsertOneResult, error) {
	result, err := s.withdrawalCollection.InsertOne(ctx, withdrawal)
	if err != nil {
		return nil, fmt.Errorf("failed to create withdrawal: %v", err)
	}
	return result, nil
}

func (s *WithdrawalService) GetPendingWithdrawals(ctx context.Context) ([]models.Withdrawal, error) {
	cursor, err := s.withdrawalCollection.Find(ctx, bson.M{"status": models.WithdrawalPending})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve pending withdrawals: %v", err)
	}
	defer cursor.Close(ctx)

	withdrawals := []models.Withdrawal{}
	for cursor.Next(ctx) {
		var withdrawal models.Withdrawal
		if err := cursor.Decode(&withdrawal); err != nil {
			return nil, fmt.Errorf("failed to decode withdrawal: %v", err)
		}
		withdrawals = append(withdrawals, withdrawal)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return withdrawals, nil
}

// UpdateStatus overwrites the status field, no state-machine enforcement.
func (s *WithdrawalService) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.WithdrawalStatus) (*mongo.UpdateResult, error) {
	filter := bson.M{"_id": id}
	update := bson.M{"$set": bson.M{"status": status}}

	result, err := s.withdrawalCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update withdrawal status: %v", err)
	}
	return result, nil
}
