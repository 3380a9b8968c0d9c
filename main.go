package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/abdulaziz1812/micro-tasker-server/handlers"
	"github.com/abdulaziz1812/micro-tasker-server/logging"
	"github.com/abdulaziz1812/micro-tasker-server/services"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/sony/gobreaker"
	stripeclient "github.com/stripe/stripe-go/v76/client"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func main() {
	logging.InitLogger()

	logging.Logger.Info("Event ID: SERVICE_START, Description: Starting Micro Tasker server...")
	if err := godotenv.Load(".env"); err != nil {
		logging.Logger.Warnf("Event ID: ENV_LOAD_WARNING, Description: No .env file loaded: %v", err)
	}

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		logging.Logger.Fatalf("Event ID: CONFIG_ERROR, Description: MONGO_URI is not set in the environment variables.")
	}
	mongoDBName := os.Getenv("MONGO_DB_NAME")
	if mongoDBName == "" {
		mongoDBName = "microTasker"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		logging.Logger.Fatalf("Event ID: DB_CONNECTION_FAILED, Description: Database connection for MongoDB failed: %v", err)
	}
	defer mongoClient.Disconnect(ctx)

	if err := mongoClient.Ping(ctx, nil); err != nil {
		logging.Logger.Fatalf("Event ID: DB_PING_FAILED, Description: MongoDB connection ping error: %v", err)
	}
	logging.Logger.Infof("Event ID: DB_CONNECTED, Description: Successfully connected to MongoDB, using database: %s", mongoDBName)

	db := mongoClient.Database(mongoDBName)
	userCollection := db.Collection("user")
	tasksCollection := db.Collection("tasks")
	paymentCollection := db.Collection("payments")
	submissionCollection := db.Collection("submission")
	withdrawalCollection := db.Collection("withdrawals")

	stripeKey := os.Getenv("STRIPE_SECRET_KEY")
	if stripeKey == "" {
		logging.Logger.Fatalf("Event ID: CONFIG_ERROR, Description: STRIPE_SECRET_KEY is not set in the environment variables.")
	}
	sc := &stripeclient.API{}
	sc.Init(stripeKey, nil)

	stripeBreaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "StripeCB",
		MaxRequests: 1,
		Timeout:     5 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Logger.Infof("Event ID: CIRCUIT_BREAKER_STATE_CHANGE, Description: Circuit Breaker '%s' changed from '%s' to '%s'", name, from.String(), to.String())
		},
	})

	userService := services.NewUserService(userCollection)
	taskService := services.NewTaskService(tasksCollection)
	submissionService := services.NewSubmissionService(submissionCollection)
	withdrawalService := services.NewWithdrawalService(withdrawalCollection)
	paymentService := services.NewPaymentService(paymentCollection, sc.PaymentIntents, stripeBreaker)
	statsService := services.NewStatsService(userCollection, tasksCollection, paymentCollection, submissionCollection)

	userHandler := handlers.NewUserHandler(userService)
	taskHandler := handlers.NewTaskHandler(taskService)
	submissionHandler := handlers.NewSubmissionHandler(submissionService)
	withdrawalHandler := handlers.NewWithdrawalHandler(withdrawalService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	statsHandler := handlers.NewStatsHandler(statsService)

	r := mux.NewRouter()

	// user API with coin
	r.HandleFunc("/user", userHandler.CreateUser).Methods(http.MethodPost)
	r.HandleFunc("/users", userHandler.GetAllUsers).Methods(http.MethodGet)
	r.HandleFunc("/best-workers", userHandler.GetBestWorkers).Methods(http.MethodGet)
	r.HandleFunc("/user/{email}", userHandler.GetUser).Methods(http.MethodGet)
	r.HandleFunc("/user/{email}", userHandler.UpdateCoin).Methods(http.MethodPatch)
	r.HandleFunc("/user/{id}", userHandler.DeleteUser).Methods(http.MethodDelete)

	// task API; /tasks/available must come before the {email} route
	r.HandleFunc("/tasks", taskHandler.CreateTask).Methods(http.MethodPost)
	r.HandleFunc("/tasks", taskHandler.GetTaskByTitle).Methods(http.MethodGet)
	r.HandleFunc("/tasks/available", taskHandler.GetAvailableTasks).Methods(http.MethodGet)
	r.HandleFunc("/task-details/{id}", taskHandler.GetTaskDetails).Methods(http.MethodGet)
	r.HandleFunc("/tasks/{email}", taskHandler.GetTasksByOwner).Methods(http.MethodGet)
	r.HandleFunc("/tasks/{id}", taskHandler.UpdateTaskContent).Methods(http.MethodPut)
	r.HandleFunc("/tasks/{id}", taskHandler.UpdateRequiredWorkers).Methods(http.MethodPatch)
	r.HandleFunc("/tasks/{id}", taskHandler.DeleteTask).Methods(http.MethodDelete)

	// payment API
	r.HandleFunc("/create-payment-intent", paymentHandler.CreatePaymentIntent).Methods(http.MethodPost)
	r.HandleFunc("/payments", paymentHandler.RecordPayment).Methods(http.MethodPost)
	r.HandleFunc("/payments/{email}", paymentHandler.GetPaymentsByEmail).Methods(http.MethodGet)

	// submission API; pending/approved routes before the {email} route
	r.HandleFunc("/submissions", submissionHandler.CreateSubmission).Methods(http.MethodPost)
	r.HandleFunc("/submissions", submissionHandler.GetSubmissions).Methods(http.MethodGet)
	r.HandleFunc("/submissions/pending/{email}", submissionHandler.GetPendingForBuyer).Methods(http.MethodGet)
	r.HandleFunc("/submissions/approved/{email}", submissionHandler.GetApprovedForWorker).Methods(http.MethodGet)
	r.HandleFunc("/submissions/approve/{id}", submissionHandler.UpdateStatus).Methods(http.MethodPatch)
	r.HandleFunc("/submissions/rejected/{id}", submissionHandler.UpdateStatus).Methods(http.MethodPatch)
	r.HandleFunc("/submissions/{email}", submissionHandler.GetSubmissionsByWorker).Methods(http.MethodGet)

	// withdrawal API
	r.HandleFunc("/withdrawals", withdrawalHandler.CreateWithdrawal).Methods(http.MethodPost)
	r.HandleFunc("/withdrawals/pending", withdrawalHandler.GetPendingWithdrawals).Methods(http.MethodGet)
	r.HandleFunc("/withdrawals/{id}", withdrawalHandler.UpdateStatus).Methods(http.MethodPut)

	// stats API
	r.HandleFunc("/admin-stats", statsHandler.GetAdminStats).Methods(http.MethodGet)
	r.HandleFunc("/buyer-stats/{email}", statsHandler.GetBuyerStats).Methods(http.MethodGet)
	r.HandleFunc("/worker-stats/{email}", statsHandler.GetWorkerStats).Methods(http.MethodGet)

	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Micro Tasker server is running"))
	}).Methods(http.MethodGet)

	corsRouter := enableCORS(r)

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "5000"
	}

	serverAddress := fmt.Sprintf(":%s", serverPort)
	logging.Logger.Infof("Event ID: SERVER_START_INFO, Description: Server running on http://localhost%s", serverAddress)

	if err := http.ListenAndServe(serverAddress, corsRouter); err != nil {
		logging.Logger.Fatalf("Event ID: SERVER_FATAL_ERROR, Description: Server failed to start: %v", err)
	}
}
