package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/abdulaziz1812/micro-tasker-server/models"

	"github.com/gorilla/mux"
)

type StatsService interface {
	GetAdminStats(ctx context.Context) (*models.AdminStats, error)
	GetBuyerStats(ctx context.Context, email string) (*models.BuyerStats, error)
	GetWorkerStats(ctx context.Context, email string) (*models.WorkerStats, error)
}

type StatsHandler struct {
	service StatsService
}

func NewStatsHandler(service StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

func (h *StatsHandler) GetAdminStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.GetAdminStats(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(stats)
}

func (h *StatsHandler) GetBuyerStats(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	stats, err := h.service.GetBuyerStats(r.Context(), email)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(stats)
}

func (h *StatsHandler) GetWorkerStats(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	stats, err := h.service.GetWorkerStats(r.Context(), email)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(stats)
}
