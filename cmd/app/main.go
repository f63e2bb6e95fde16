package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"civicsprep-backend/cmd/internal/controller"
	"civicsprep-backend/internal/config"
	"civicsprep-backend/internal/db"
	"civicsprep-backend/internal/llm"
	"civicsprep-backend/internal/model"
	"civicsprep-backend/internal/repository"
	"civicsprep-backend/internal/service"
	"civicsprep-backend/pkg/middleware"
	"civicsprep-backend/utilities"
)

func main() {
	printStartUpBanner()

	// Load XML configuration from file.
	cfg, err := config.LoadConfig("config.xml")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logDir := cfg.Context.LogDir
	if logDir == "" {
		logDir = "logs"
	}
	utilities.SetupLogging(logDir)

	// Initialize DB using the loaded config. A nil handle is a supported
	// mode; transcripts are then PDF-only.
	gormDB, err := db.InitDBFromConfig(cfg)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	if gormDB != nil {
		if err := gormDB.AutoMigrate(&model.Transcript{}); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	// Create repositories.
	sessionStore := repository.NewMemorySessionStore()
	questionBank := repository.NewQuestionBank(rand.New(rand.NewSource(time.Now().UnixNano())))
	transcriptRepo := repository.NewTranscriptRepository(gormDB)

	// Create the completion client; nil when no URL is configured.
	var completionClient llm.CompletionClient
	if cfg.LLM.URL != "" {
		completionClient = llm.NewOllamaClient(
			cfg.LLM.URL,
			cfg.LLM.Model,
			time.Duration(cfg.LLM.TimeoutSeconds)*time.Second,
		)
	} else {
		utilities.Warn("no LLM URL configured; officer dialogue uses fallback templates only")
	}

	// Create services.
	stageService := service.NewStageService()
	validatorService := service.NewValidatorService(questionBank)
	officerService := service.NewOfficerService(completionClient, rand.New(rand.NewSource(time.Now().UnixNano())))
	interviewService := service.NewInterviewService(
		sessionStore, questionBank, stageService, validatorService, officerService, utilities.GlobalEventBus,
	)

	transcriptDir := cfg.Interview.TranscriptDir
	if transcriptDir == "" {
		transcriptDir = "working/transcripts"
	}
	transcriptService := service.NewTranscriptService(transcriptRepo, transcriptDir)
	service.InitTranscriptEventListeners(transcriptService, utilities.GlobalEventBus)

	startSessionSweeper(sessionStore, cfg.Interview.SessionMaxAgeMinutes)

	// Initialize Gin router.
	r := gin.Default()

	// CORS configuration.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if cfg.RequestDump {
		r.Use(middleware.RequestDumpMiddleware())
	}
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst)
		r.Use(limiter.Middleware())
	}

	controller.RegisterRoutes(r, interviewService, transcriptService)

	// Start server on the host and port specified in the XML config.
	addr := fmt.Sprintf("%s:%d", cfg.Context.Host, cfg.Context.Port)
	utilities.Info("listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

// startSessionSweeper drops sessions older than the configured max age.
// A zero or negative max age disables the sweep.
func startSessionSweeper(store repository.SessionStore, maxAgeMinutes int) {
	if maxAgeMinutes <= 0 {
		return
	}
	maxAge := time.Duration(maxAgeMinutes) * time.Minute
	go func() {
		ticker := time.NewTicker(maxAge / 2)
		defer ticker.Stop()
		for range ticker.C {
			if removed := store.CleanupOldSessions(maxAge); removed > 0 {
				utilities.Info("session sweep removed %d stale sessions", removed)
			}
		}
	}()
}

func printStartUpBanner() {
	myFigure := figure.NewFigure("CIVICSPREP", "", true)
	myFigure.Print()

	fmt.Println("======================================================")
	fmt.Printf("CIVICSPREP API (v%s)\n\n", "1.0.0")
}
