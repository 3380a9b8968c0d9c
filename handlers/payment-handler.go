package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/abdulaziz1812/micro-tasker-server/models"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/mongo"
)

type PaymentService interface {
	CreatePaymentIntent(ctx context.Context, price float64) (string, error)
	RecordPayment(ctx context.Context, payment models.Payment) (*mongo.InsertOneResult, error)
	GetPaymentsByEmail(ctx context.Context, email string) ([]models.Payment, error)
}

type PaymentHandler struct {
	service PaymentService
}

func NewPaymentHandler(service PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

// CreatePaymentIntent asks the processor for a card payment intent and hands
// the client secret back so the frontend can confirm the charge.
func (h *PaymentHandler) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Price float64 `json:"price"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	clientSecret, err := h.service.CreatePaymentIntent(r.Context(), body.Price)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"clientSecret": clientSecret})
}

func (h *PaymentHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	var payment models.Payment
	if err := json.NewDecoder(r.Body).Decode(&payment); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	result, err := h.service.RecordPayment(r.Context(), payment)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(models.NewInsertAck(result))
}

func (h *PaymentHandler) GetPaymentsByEmail(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	payments, err := h.service.GetPaymentsByEmail(r.Context(), email)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(payments)
}
