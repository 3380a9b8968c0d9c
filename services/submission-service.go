package services

import (
	"context"
	"fmt"

	"github.com/abdulaziz1812/micro-tasker-server/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type SubmissionService struct {
	submissionCollection *mongo.Collection
}

func NewSubmissionService(submissionCollection *mongo.Collection) *SubmissionService {
	return &SubmissionService{submissionCollection: submissionCollection}
}

func (s *SubmissionService) CreateSubmission(ctx context.Context, submission models.Submission) (*mongo.InsertOneResult, error) {
	result, err := s.submissionCollection.InsertOne(ctx, submission)
	if err != nil {
		return nil, fmt.Errorf("failed to create submission: %v", err)
	}
	return result, nil
}

// GetSubmissions filters by whichever of taskID and workerEmail are
// non-empty. Both empty means a full collection scan.
func (s *SubmissionService) GetSubmissions(ctx context.Context, taskID, workerEmail string) ([]models.Submission, error) {
	filter := bson.M{}
	if taskID != "" {
		filter["task_id"] = taskID
	}
	if workerEmail != "" {
		filter["worker_email"] = workerEmail
	}

	return s.findSubmissions(ctx, filter)
}

func (s *SubmissionService) GetSubmissionsByWorker(ctx context.Context, email string) ([]models.Submission, error) {
	return s.findSubmissions(ctx, bson.M{"worker_email": email})
}

func (s *SubmissionService) GetPendingForBuyer(ctx context.Context, email string) ([]models.Submission, error) {
	return s.findSubmissions(ctx, bson.M{"buyer_email": email, "status": models.SubmissionPending})
}

func (s *SubmissionService) GetApprovedForWorker(ctx context.Context, email string) ([]models.Submission, error) {
	return s.findSubmissions(ctx, bson.M{"worker_email": email, "status": models.SubmissionApproved})
}

// UpdateStatus overwrites the status field with the caller-supplied value.
// There is no transition check; the approve and reject routes both land here.
func (s *SubmissionService) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.SubmissionStatus) (*mongo.UpdateResult, error) {
	filter := bson.M{"_id": id}
	update := bson.M{"$set": bson.M{"status": status}}

	result, err := s.submissionCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update submission status: %v", err)
	}
	return result, nil
}

func (s *SubmissionService) findSubmissions(ctx context.Context, filter bson.M) ([]models.Submission, error) {
	cursor, err := s.submissionCollection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve submissions: %v", err)
	}
	defer cursor.Close(ctx)

	submissions := []models.Submission{}
	for cursor.Next(ctx) {
		var submission models.Submission
		if err := cursor.Decode(&submission); err != nil {
			return nil, fmt.Errorf("failed to decode submission: %v", err)
		}
		submissions = append(submissions, submission)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return submissions, nil
}
