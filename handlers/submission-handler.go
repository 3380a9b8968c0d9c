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

type SubmissionService interface {
	CreateSubmission(ctx context.Context, submission models.Submission) (*mongo.InsertOneResult, error)
	GetSubmissions(ctx context.Context, taskID, workerEmail string) ([]models.Submission, error)
	GetSubmissionsByWorker(ctx context.Context, email string) ([]models.Submission, error)
	GetPendingForBuyer(ctx context.Context, email string) ([]models.Submission, error)
	GetApprovedForWorker(ctx context.Context, email string) ([]models.Submission, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.SubmissionStatus) (*mongo.UpdateResult, error)
}

type SubmissionHandler struct {
	service SubmissionService
}

func NewSubmissionHandler(service SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{service: service}
}

func (h *SubmissionHandler) CreateSubmission(w http.ResponseWriter, r *http.Request) {
	var submission models.Submission
	if err := json.NewDecoder(r.Body).Decode(&submission); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	// New submissions start out pending unless the client says otherwise.
	if submission.Status == "" {
		submission.Status = models.SubmissionPending
	}

	result, err := h.service.CreateSubmission(r.Context(), submission)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(models.NewInsertAck(result))
}

// GetSubmissions filters by the optional task_id and worker_email query
// parameters. With neither present the whole collection comes back.
func (h *SubmissionHandler) GetSubmissions(w http.ResponseWriter, r *http.Request) {
	taskID := r.URL.Query().Get("task_id")
	workerEmail := r.URL.Query().Get("worker_email")

	submissions, err := h.service.GetSubmissions(r.Context(), taskID, workerEmail)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(submissions)
}

func (h *SubmissionHandler) GetSubmissionsByWorker(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	submissions, err := h.service.GetSubmissionsByWorker(r.Context(), email)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(submissions)
}

func (h *SubmissionHandler) GetPendingForBuyer(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	submissions, err := h.service.GetPendingForBuyer(r.Context(), email)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(submissions)
}

func (h *SubmissionHandler) GetApprovedForWorker(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	submissions, err := h.service.GetApprovedForWorker(r.Context(), email)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(submissions)
}

// UpdateStatus backs both the approve and the reject route. The status comes
// from the request body and is written as-is.
func (h *SubmissionHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid submission ID format", http.StatusBadRequest)
		return
	}

	var body struct {
		Status models.SubmissionStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	result, err := h.service.UpdateStatus(r.Context(), id, body.Status)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(models.NewUpdateAck(result))
}
