package services

import (
	"context"
	"fmt"

	"github.com/abdulaziz1812/micro-tasker-server/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type TaskService struct {
	tasksCollection *mongo.Collection
}

func NewTaskService(tasksCollection *mongo.Collection) *TaskService {
	return &TaskService{tasksCollection: tasksCollection}
}

func (s *TaskService) CreateTask(ctx context.Context, task models.Task) (*mongo.InsertOneResult, error) {
	result, err := s.tasksCollection.InsertOne(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %v", err)
	}
	return result, nil
}

// GetAvailableTasks returns every task that still has worker slots left.
func (s *TaskService) GetAvailableTasks(ctx context.Context) ([]models.Task, error) {
	filter := bson.M{"required_workers": bson.M{"$gt": 0}}

	cursor, err := s.tasksCollection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve available tasks: %v", err)
	}
	defer cursor.Close(ctx)

	tasks := []models.Task{}
	for cursor.Next(ctx) {
		var task models.Task
		if err := cursor.Decode(&task); err != nil {
			return nil, fmt.Errorf("failed to decode task: %v", err)
		}
		tasks = append(tasks, task)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return tasks, nil
}

func (s *TaskService) GetTaskByID(ctx context.Context, id primitive.ObjectID) (*models.Task, error) {
	var task models.Task
	err := s.tasksCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&task)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve task: %v", err)
	}
	return &task, nil
}

func (s *TaskService) GetTaskByTitle(ctx context.Context, title string) (*models.Task, error) {
	var task models.Task
	err := s.tasksCollection.FindOne(ctx, bson.M{"task_title": title}).Decode(&task)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve task by title: %v", err)
	}
	return &task, nil
}

func (s *TaskService) GetTasksByOwner(ctx context.Context, email string) ([]models.Task, error) {
	cursor, err := s.tasksCollection.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve tasks for owner: %v", err)
	}
	defer cursor.Close(ctx)

	tasks := []models.Task{}
	for cursor.Next(ctx) {
		var task models.Task
		if err := cursor.Decode(&task); err != nil {
			return nil, fmt.Errorf("failed to decode task: %v", err)
		}
		tasks = append(tasks, task)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return tasks, nil
}

// UpdateTaskContent overwrites the three editable fields of a task.
func (s *TaskService) UpdateTaskContent(ctx context.Context, id primitive.ObjectID, content models.TaskContentUpdate) (*mongo.UpdateResult, error) {
	filter := bson.M{"_id": id}
	update := bson.M{"$set": bson.M{
		"task_title":      content.TaskTitle,
		"task_detail":     content.TaskDetail,
		"submission_info": content.SubmissionInfo,
	}}

	result, err := s.tasksCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update task: %v", err)
	}
	return result, nil
}

// UpdateRequiredWorkers sets required_workers to the exact value supplied.
// The caller computes the decrement; no arithmetic happens here.
func (s *TaskService) UpdateRequiredWorkers(ctx context.Context, id primitive.ObjectID, requiredWorkers int) (*mongo.UpdateResult, error) {
	filter := bson.M{"_id": id}
	update := bson.M{"$set": bson.M{"required_workers": requiredWorkers}}

	result, err := s.tasksCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update required workers: %v", err)
	}
	return result, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	result, err := s.tasksCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to delete task: %v", err)
	}
	return result, nil
}
