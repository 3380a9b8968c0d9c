package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/abdulaziz1812/micro-tasker-server/models"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type TaskService interface {
	CreateTask(ctx context.Context, task models.Task) (*mongo.InsertOneResult, error)
	GetAvailableTasks(ctx context.Context) ([]models.Task, error)
	GetTaskByID(ctx context.Context, id primitive.ObjectID) (*models.Task, error)
	GetTaskByTitle(ctx context.Context, title string) (*models.Task, error)
	GetTasksByOwner(ctx context.Context, email string) ([]models.Task, error)
	UpdateTaskContent(ctx context.Context, id primitive.ObjectID, content models.TaskContentUpdate) (*mongo.UpdateResult, error)
	UpdateRequiredWorkers(ctx context.Context, id primitive.ObjectID, requiredWorkers int) (*mongo.UpdateResult, error)
	DeleteTask(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
}

type TaskHandler struct {
	service TaskService
}

func NewTaskHandler(service TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var task models.Task
	if err := json.NewDecoder(r.Body).Decode(&task); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	result, err := h.service.CreateTask(r.Context(), task)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(models.NewInsertAck(result))
}

func (h *TaskHandler) GetAvailableTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.service.GetAvailableTasks(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(tasks)
}

func (h *TaskHandler) GetTaskDetails(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid task ID format", http.StatusBadRequest)
		return
	}

	task, err := h.service.GetTaskByID(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(task)
}

// GetTaskByTitle looks up a single task by exact title from the task_title
// query parameter. Missing tasks come back as a null body.
func (h *TaskHandler) GetTaskByTitle(w http.ResponseWriter, r *http.Request) {
	title := r.URL.Query().Get("task_title")

	task, err := h.service.GetTaskByTitle(r.Context(), title)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(task)
}

func (h *TaskHandler) GetTasksByOwner(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	tasks, err := h.service.GetTasksByOwner(r.Context(), email)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(tasks)
}

func (h *TaskHandler) UpdateTaskContent(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid task ID format", http.StatusBadRequest)
		return
	}

	var content models.TaskContentUpdate
	if err := json.NewDecoder(r.Body).Decode(&content); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	result, err := h.service.UpdateTaskContent(r.Context(), id, content)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(models.NewUpdateAck(result))
}

func (h *TaskHandler) UpdateRequiredWorkers(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid task ID format", http.StatusBadRequest)
		return
	}

	var body struct {
		RequiredWorkers int `json:"required_workers"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	result, err := h.service.UpdateRequiredWorkers(r.Context(), id, body.RequiredWorkers)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(models.NewUpdateAck(result))
}

func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid task ID format", http.StatusBadRequest)
		return
	}

	result, err := h.service.DeleteTask(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(models.NewDeleteAck(result))
}
