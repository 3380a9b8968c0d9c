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

type mockSubmissionService struct {
	created      models.Submission
	listed       []models.Submission
	taskIDFilter string
	workerFilter string
	statusID     primitive.ObjectID
	statusSet    models.SubmissionStatus
	err          error
}

func (m *mockSubmissionService) CreateSubmission(ctx context.Context, submission models.Submission) (*mongo.InsertOneResult, error) {
	m.created = submission
	if m.err != nil {
		return nil, m.err
	}
	return &mongo.InsertOneResult{InsertedID: primitive.NewObjectID()}, nil
}

func (m *mockSubmissionService) GetSubmissions(ctx context.Context, taskID, workerEmail string) ([]models.Submission, error) {
	m.taskIDFilter = taskID
	m.workerFilter = workerEmail
	return m.listed, m.err
}

func (m *mockSubmissionService) GetSubmissionsByWorker(ctx context.Context, email string) ([]models.Submission, error) {
	m.workerFilter = email
	return m.listed, m.err
}

func (m *mockSubmissionService) GetPendingForBuyer(ctx context.Context, email string) ([]models.Submission, error) {
	return m.listed, m.err
}

func (m *mockSubmissionService) GetApprovedForWorker(ctx context.Context, email string) ([]models.Submission, error) {
	return m.listed, m.err
}

func (m *mockSubmissionService) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.SubmissionStatus) (*mongo.UpdateResult, error) {
	m.statusID = id
	m.statusSet = status
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, m.err
}

func setupSubmissionRouter(service SubmissionService) *mux.Router {
	handler := NewSubmissionHandler(service)
	r := mux.NewRouter()
	r.HandleFunc("/submissions", handler.CreateSubmission).Methods(http.MethodPost)
	r.HandleFunc("/submissions", handler.GetSubmissions).Methods(http.MethodGet)
	r.HandleFunc("/submissions/pending/{email}", handler.GetPendingForBuyer).Methods(http.MethodGet)
	r.HandleFunc("/submissions/approved/{email}", handler.GetApprovedForWorker).Methods(http.MethodGet)
	r.HandleFunc("/submissions/approve/{id}", handler.UpdateStatus).Methods(http.MethodPatch)
	r.HandleFunc("/submissions/rejected/{id}", handler.UpdateStatus).Methods(http.MethodPatch)
	r.HandleFunc("/submissions/{email}", handler.GetSubmissionsByWorker).Methods(http.MethodGet)
	return r
}

func TestCreateSubmissionDefaultsToPending(t *testing.T) {
	service := &mockSubmissionService{}
	router := setupSubmissionRouter(service)

	body := []byte(`{"task_id":"abc","worker_email":"w@x.com","buyer_email":"b@x.com","payable_amount":10}`)
	req := httptest.NewRequest(http.MethodPost, "/submissions", bytes.NewReader(body))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusCreated, resp.Code)
	require.Equal(t, models.SubmissionPending, service.created.Status)
}

func TestCreateSubmissionKeepsExplicitStatus(t *testing.T) {
	service := &mockSubmissionService{}
	router := setupSubmissionRouter(service)

	body := []byte(`{"task_id":"abc","worker_email":"w@x.com","status":"approved"}`)
	req := httptest.NewRequest(http.MethodPost, "/submissions", bytes.NewReader(body))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusCreated, resp.Code)
	require.Equal(t, models.SubmissionApproved, service.created.Status)
}

func TestGetSubmissionsPassesOptionalFilters(t *testing.T) {
	service := &mockSubmissionService{}
	router := setupSubmissionRouter(service)

	req := httptest.NewRequest(http.MethodGet, "/submissions?task_id=abc&worker_email=w@x.com", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	require.Equal(t, "abc", service.taskIDFilter)
	require.Equal(t, "w@x.com", service.workerFilter)
}

func TestGetSubmissionsWithoutFilters(t *testing.T) {
	service := &mockSubmissionService{listed: []models.Submission{{TaskID: "abc"}, {TaskID: "def"}}}
	router := setupSubmissionRouter(service)

	req := httptest.NewRequest(http.MethodGet, "/submissions", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	require.Empty(t, service.taskIDFilter)
	require.Empty(t, service.workerFilter)

	var submissions []models.Submission
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&submissions))
	require.Len(t, submissions, 2)
}

func TestApproveRouteSetsSuppliedStatus(t *testing.T) {
	service := &mockSubmissionService{}
	router := setupSubmissionRouter(service)

	id := primitive.NewObjectID()
	req := httptest.NewRequest(http.MethodPatch, "/submissions/approve/"+id.Hex(), bytes.NewReader([]byte(`{"status":"approved"}`)))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	require.Equal(t, id, service.statusID)
	require.Equal(t, models.SubmissionApproved, service.statusSet)
}

func TestRejectRouteSetsSuppliedStatus(t *testing.T) {
	service := &mockSubmissionService{}
	router := setupSubmissionRouter(service)

	id := primitive.NewObjectID()
	req := httptest.NewRequest(http.MethodPatch, "/submissions/rejected/"+id.Hex(), bytes.NewReader([]byte(`{"status":"rejected"}`)))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	require.Equal(t, models.SubmissionRejected, service.statusSet)
}

func TestPendingForBuyerRoute(t *testing.T) {
	service := &mockSubmissionService{listed: []models.Submission{
		{WorkerEmail: "w@x.com", BuyerEmail: "b@x.com", Status: models.SubmissionPending},
	}}
	router := setupSubmissionRouter(service)

	req := httptest.NewRequest(http.MethodGet, "/submissions/pending/b@x.com", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)

	var submissions []models.Submission
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&submissions))
	require.Len(t, submissions, 1)
	require.Equal(t, models.SubmissionPending, submissions[0].Status)
}
