package services

import (
	"context"
	"fmt"

	"github.com/abdulaziz1812/micro-tasker-server/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// StatsService recomputes dashboard aggregates per request, straight from
// the collections. Nothing is cached.
type StatsService struct {
	userCollection       *mongo.Collection
	tasksCollection      *mongo.Collection
	paymentCollection    *mongo.Collection
	submissionCollection *mongo.Collection
}

func NewStatsService(userCollection, tasksCollection, paymentCollection, submissionCollection *mongo.Collection) *StatsService {
	return &StatsService{
		userCollection:       userCollection,
		tasksCollection:      tasksCollection,
		paymentCollection:    paymentCollection,
		submissionCollection: submissionCollection,
	}
}

func (s *StatsService) GetAdminStats(ctx context.Context) (*models.AdminStats, error) {
	totalWorkers, err := s.userCollection.CountDocuments(ctx, bson.M{"role": models.RoleWorker})
	if err != nil {
		return nil, fmt.Errorf("failed to count workers: %v", err)
	}

	totalBuyers, err := s.userCollection.CountDocuments(ctx, bson.M{"role": models.RoleBuyer})
	if err != nil {
		return nil, fmt.Errorf("failed to count buyers: %v", err)
	}

	totalCoin, err := s.sumField(ctx, s.userCollection, bson.M{}, "$coin")
	if err != nil {
		return nil, fmt.Errorf("failed to sum coins: %v", err)
	}

	totalPayments, err := s.sumField(ctx, s.paymentCollection, bson.M{}, "$price")
	if err != nil {
		return nil, fmt.Errorf("failed to sum payments: %v", err)
	}

	return &models.AdminStats{
		TotalBuyers:   totalBuyers,
		TotalWorkers:  totalWorkers,
		TotalCoin:     totalCoin,
		TotalPayments: totalPayments,
	}, nil
}

func (s *StatsService) GetBuyerStats(ctx context.Context, email string) (*models.BuyerStats, error) {
	totalTask, err := s.tasksCollection.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("failed to count tasks: %v", err)
	}

	pendingTask, err := s.sumField(ctx, s.tasksCollection, bson.M{"email": email}, "$required_workers")
	if err != nil {
		return nil, fmt.Errorf("failed to sum required workers: %v", err)
	}

	totalPayments, err := s.sumField(ctx, s.paymentCollection, bson.M{"email": email}, "$price")
	if err != nil {
		return nil, fmt.Errorf("failed to sum payments: %v", err)
	}

	return &models.BuyerStats{
		TotalTask:     totalTask,
		PendingTask:   int64(pendingTask),
		TotalPayments: totalPayments,
	}, nil
}

func (s *StatsService) GetWorkerStats(ctx context.Context, email string) (*models.WorkerStats, error) {
	totalSubmission, err := s.submissionCollection.CountDocuments(ctx, bson.M{"worker_email": email})
	if err != nil {
		return nil, fmt.Errorf("failed to count submissions: %v", err)
	}

	pendingSubmission, err := s.submissionCollection.CountDocuments(ctx, bson.M{"worker_email": email, "status": models.SubmissionPending})
	if err != nil {
		return nil, fmt.Errorf("failed to count pending submissions: %v", err)
	}

	totalEarning, err := s.sumField(ctx, s.submissionCollection, bson.M{"worker_email": email, "status": models.SubmissionApproved}, "$payable_amount")
	if err != nil {
		return nil, fmt.Errorf("failed to sum earnings: %v", err)
	}

	return &models.WorkerStats{
		TotalSubmission:   totalSubmission,
		PendingSubmission: pendingSubmission,
		TotalEarning:      totalEarning,
	}, nil
}

// sumField runs a $match/$group pipeline summing one field over the matched
// documents. An empty result set sums to 0.
func (s *StatsService) sumField(ctx context.Context, collection *mongo.Collection, match bson.M, field string) (float64, error) {
	pipeline := []bson.M{
		{"$match": match},
		{"$group": bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": field},
		}},
	}

	cursor, err := collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	var result struct {
		Total float64 `bson:"total"`
	}
	if cursor.Next(ctx) {
		if err := cursor.Decode(&result); err != nil {
			return 0, err
		}
	}

	if err := cursor.Err(); err != nil {
		return 0, err
	}

	return result.Total, nil
}
