package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/abdulaziz1812/micro-tasker-server/models"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type mockWithdrawalService struct {
	created   models.Withdrawal
	pending   []models.Withdrawal
	statusID  primitive.ObjectID
	statusSet models.WithdrawalStatus
	err       error
}

func (m *mockWithdrawalService) CreateWithdrawal(ctx context.Context, withdrawal models.Withdrawal) (*mongo.InsertOneResult, error) {
	m.created = withdrawal
	if m.err != nil {
		return nil, m.err
	}
	return &mongo.InsertOneResult{InsertedID: primitive.NewObjectID()}, nil
}

func (m *mockWithdrawalService) GetPendingWithdrawals(ctx context.Context) ([]models.Withdrawal, error) {
	return m.pending, m.err
}

func (m *mockWithdrawalService) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.WithdrawalStatus) (*mongo.UpdateResult, error) {
	m.statusID = id
	m.statusSet = status
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, m.err
}

func setupWithdrawalRouter(service WithdrawalService) *mux.Router {
	handler := NewWithdrawalHandler(service)
	r := mux.NewRouter()
	r.HandleFunc("/withdrawals", handler.CreateWithdrawal).Methods(http.MethodPost)
	r.HandleFunc("/withdrawals/pending", handler.GetPendingWithdrawals).Methods(http.MethodGet)
	r.HandleFunc("/withdrawals/{id}", handler.UpdateStatus).Methods(http.MethodPut)
	return r
}

func TestCreateWithdrawalDefaultsToPending(t *testing.T) {
	service := &mockWithdrawalService{}
	router := setupWithdrawalRouter(service)

	body := []byte(`{"worker_email":"w@x.com","withdrawal_coin":200,"withdrawal_amount":10}`)
	req := httptest.NewRequest(http.MethodPost, "/withdrawals", bytes.NewReader(body))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusCreated, resp.Code)
	require.Equal(t, models.WithdrawalPending, service.created.Status)
}

func TestGetPendingWithdrawals(t *testing.T) {
	service := &mockWithdrawalService{pending: []models.Withdrawal{
		{WorkerEmail: "w@x.com", Status: models.WithdrawalPending},
	}}
	router := setupWithdrawalRouter(service)

	req := httptest.NewRequest(http.MethodGet, "/withdrawals/pending", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)

	var withdrawals []models.Withdrawal
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&withdrawals))
	require.Len(t, withdrawals, 1)
}

func TestUpdateWithdrawalStatus(t *testing.T) {
	service := &mockWithdrawalService{}
	router := setupWithdrawalRouter(service)

	id := primitive.NewObjectID()
	req := httptest.NewRequest(http.MethodPut, "/withdrawals/"+id.Hex(), bytes.NewReader([]byte(`{"status":"approved"}`)))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	require.Equal(t, id, service.statusID)
	require.Equal(t, models.WithdrawalApproved, service.statusSet)
}

func TestUpdateWithdrawalStatusInvalidID(t *testing.T) {
	service := &mockWithdrawalService{}
	router := setupWithdrawalRouter(service)

	req := httptest.NewRequest(http.MethodPut, "/withdrawals/bogus", bytes.NewReader([]byte(`{"status":"approved"}`)))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusBadRequest, resp.Code)
}
