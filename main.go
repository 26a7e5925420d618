package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/cryptoquest/insight-api/config"
	"github.com/cryptoquest/insight-api/db"
	"github.com/cryptoquest/insight-api/handlers"
	"github.com/cryptoquest/insight-api/jobs"
	"github.com/cryptoquest/insight-api/narrative"
	"github.com/cryptoquest/insight-api/notify"
	"github.com/cryptoquest/insight-api/quiz"
	"github.com/cryptoquest/insight-api/sessions"
	"github.com/cryptoquest/insight-api/utils"
)

func main() {
	// Set up logging with timestamps
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	utils.LogStartup("CryptoQuest Insight API starting...")

	if err := godotenv.Load(); err != nil {
		utils.LogStartup("No .env file found, using environment as-is")
	}

	cfg, err := config.Load(utils.GetEnvOrDefault("CONFIG_PATH", "./config.yaml"))
	if err != nil {
		log.Fatalf("[FATAL] Failed to load configuration: %v", err)
	}
	utils.LogStartup("Configuration loaded (port %s, quiz size %d)", cfg.Server.Port, cfg.Quiz.QuestionCount)

	// Initialize database
	utils.LogStartup("Initializing database connection...")
	database, err := db.InitDB(cfg.Database.SQLitePath)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize database: %v", err)
	}

	if err := database.SeedCatalogIfEmpty(); err != nil {
		log.Fatalf("[FATAL] Failed to seed question catalog: %v", err)
	}

	catalog, err := database.GetAllQuestions()
	if err != nil {
		log.Fatalf("[FATAL] Failed to load question catalog: %v", err)
	}
	generator := quiz.NewGenerator(catalog, nil)
	utils.LogStartup("Quiz generator ready with %d catalog questions", generator.CatalogSize())

	store := sessions.NewStore()

	narrativeClient := narrative.NewClient(cfg.Narrative.WebhookURL, cfg.NarrativeTimeout())
	emailService := notify.NewEmailService(cfg)

	jobManager := jobs.NewJobManager(cfg.Redis.Addr)
	jobManager.RegisterHandlers(database, narrativeClient, emailService)
	go func() {
		if err := jobManager.Start(); err != nil {
			utils.LogError("Job queue worker stopped: %v", err)
		}
	}()

	// Periodic cleanup of abandoned quiz sessions, in memory and on disk.
	cleanup := cron.New()
	if _, err := cleanup.AddFunc(cfg.Cleanup.Cron, func() {
		store.CleanupExpired()
		if _, err := database.DeleteExpiredSessions(time.Now().UTC()); err != nil {
			utils.LogError("Session purge failed: %v", err)
		}
	}); err != nil {
		log.Fatalf("[FATAL] Invalid cleanup cron expression %q: %v", cfg.Cleanup.Cron, err)
	}
	cleanup.Start()

	// Set up graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		utils.LogShutdown("Received shutdown signal, stopping...")
		cleanup.Stop()
		jobManager.Stop()
		if err := database.Close(); err != nil {
			utils.LogError("Error closing database: %v", err)
		} else {
			utils.LogShutdown("Database connection closed successfully")
		}
		os.Exit(0)
	}()

	// Setup API routes
	utils.LogStartup("Setting up API routes...")
	router := handlers.NewRouter(database, store, generator, cfg.Quiz.QuestionCount, jobManager)

	// Create server with timeouts
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	utils.LogStartup("Starting HTTP server on port %s...", cfg.Server.Port)
	utils.LogStartup("Server ready to accept connections at http://localhost:%s", cfg.Server.Port)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("[FATAL] Server failed to start: %v", err)
	}
}
