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

type WithdrawalService interface {
	CreateWithdrawal(ctx context.Context, withdrawal models.Withdrawal) (*mongo.InsertOneResult, error)
	GetPendingWithdrawals(ctx context.Context) ([]models.Withdrawal, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.WithdrawalStatus) (*mongo.UpdateResult, error)
}

type WithdrawalHandler struct {
	service WithdrawalService
}

func NewWithdrawalHandler(service WithdrawalService) *WithdrawalHandler {
	return &WithdrawalHandler{service: service}
}

func (h *WithdrawalHandler) CreateWithdrawal(w http.ResponseWriter, r *http.Request) {
	var withdrawal models.Withdrawal
	if err := json.NewDecoder(r.Body).Decode(&withdrawal); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if withdrawal.Status == "" {
		withdrawal.Status = models.WithdrawalPending
	}

	result, err := h.service.CreateWithdrawal(r.Context(), withdrawal)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(models.NewInsertAck(result))
}

func (h *WithdrawalHandler) GetPendingWithdrawals(w http.ResponseWriter, r *http.Request) {
	withdrawals, err := h.service.GetPendingWithdrawals(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(withdrawals)
}

func (h *WithdrawalHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid withdrawal ID format", http.StatusBadRequest)
		return
	}

	var body struct {
		Status models.WithdrawalStatus `json:"status"`
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
