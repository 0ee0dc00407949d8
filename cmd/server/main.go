package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/tutorquest/backend/internal/auth"
	"github.com/tutorquest/backend/internal/database"
	"github.com/tutorquest/backend/internal/feedback"
	"github.com/tutorquest/backend/internal/middleware"
	"github.com/tutorquest/backend/internal/questions"
	"github.com/tutorquest/backend/internal/quiz"
	"github.com/tutorquest/backend/internal/srs"
)

func main() {
	// Initialize database
	db, err := database.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize services
	questionService := questions.NewService(questions.NewStore(db))
	srsService := srs.NewService(srs.NewStore(db))
	feedbackService := feedback.NewService()
	quizService := quiz.NewService(quiz.NewStore(db), questionService, srsService, feedbackService)
	if os.Getenv("AI_GRADING") == "true" {
		quizService.SetGradingOracle(feedbackService.GradingOracle())
		log.Println("AI grading oracle enabled for free-text answers")
	}

	// Initialize handlers
	authHandler := auth.NewHandler(db)
	questionHandler := questions.NewHandler(questionService)
	quizHandler := quiz.NewHandler(quizService)

	// Setup router
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

	// Protected routes
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.AuthMiddleware)
	protected.HandleFunc("/auth/me", authHandler.GetCurrentUser).Methods("GET")
	protected.HandleFunc("/questions/batch", questionHandler.IngestBatch).Methods("POST")
	protected.HandleFunc("/questions", questionHandler.ListActive).Methods("GET")
	protected.HandleFunc("/quiz/submit", quizHandler.Submit).Methods("POST")
	protected.HandleFunc("/quiz/history", quizHandler.History).Methods("GET")
	protected.HandleFunc("/leaderboard", quizHandler.Leaderboard).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Background workers
	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	defer cancelWorkers()
	go quizService.StartWeeklyResetWorker(workerCtx)

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	handler := c.Handler(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on :%s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
