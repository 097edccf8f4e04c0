package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/Murali-kartheekeyan/skillpath-backend/internal/db"
	"github.com/Murali-kartheekeyan/skillpath-backend/internal/handlers"
	"github.com/Murali-kartheekeyan/skillpath-backend/internal/logger"
	"github.com/Murali-kartheekeyan/skillpath-backend/internal/observability"
	"github.com/Murali-kartheekeyan/skillpath-backend/internal/repos"
	"github.com/Murali-kartheekeyan/skillpath-backend/internal/server"
	"github.com/Murali-kartheekeyan/skillpath-backend/internal/services"
	"github.com/Murali-kartheekeyan/skillpath-backend/internal/utils"
)

func main() {
	// Optional .env for local development
	_ = godotenv.Load()

	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Env
	log.Info("Loading environment variables from main...")
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	accessTokenTTL := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)
	refreshTokenTTL := utils.GetEnvAsInt("REFRESH_TOKEN_TTL", 86400, log)
	allowedOrigins := utils.GetEnv("CORS_ALLOWED_ORIGINS", "", log)
	port := utils.GetEnv("PORT", "8080", log)

	// Tracing
	shutdownTracing := observability.InitTracing(context.Background(), log, "skillpath-backend")
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			log.Warn("Tracing shutdown failed", "error", err)
		}
	}()

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Fatal("Postgres init failed", "error", err)
	}
	if err = postgresService.AutoMigrateAll(); err != nil {
		log.Fatal("Postgres auto migration failed", "error", err)
	}
	thePG := postgresService.DB()
	if err = db.Seed(thePG, log); err != nil {
		log.Fatal("Seeding reference data failed", "error", err)
	}

	// Repos
	log.Info("Setting up Repos from main...")
	employeeRepo := repos.NewEmployeeRepo(thePG, log)
	credentialRepo := repos.NewCredentialRepo(thePG, log)
	tokenRepo := repos.NewCredentialTokenRepo(thePG, log)
	roleRepo := repos.NewRoleRepo(thePG, log)
	courseRepo := repos.NewCourseRepo(thePG, log)
	pathRepo := repos.NewLearningPathRepo(thePG, log)
	assessmentRepo := repos.NewAssessmentRepo(thePG, log)

	// Services
	log.Info("Setting up Services from main...")
	aiClient, err := services.NewAIClient(log)
	if err != nil {
		log.Error("Could not init AIClient", "error", err)
		os.Exit(1)
	}
	authService := services.NewAuthService(thePG, log, credentialRepo, tokenRepo, jwtSecretKey, time.Duration(accessTokenTTL)*time.Second, time.Duration(refreshTokenTTL)*time.Second)
	employeeService := services.NewEmployeeService(thePG, log, employeeRepo, credentialRepo, tokenRepo, pathRepo, assessmentRepo)
	onboardingService := services.NewOnboardingService(thePG, log, employeeRepo, credentialRepo)
	dashboardService := services.NewDashboardService(log, employeeRepo, pathRepo)
	recommenderService := services.NewRecommenderService(thePG, log, employeeRepo, roleRepo, courseRepo, pathRepo, aiClient)
	pathService := services.NewPathService(log, pathRepo)
	contentService := services.NewContentService(log, aiClient)
	assessmentService := services.NewAssessmentService(thePG, log, pathRepo, assessmentRepo)
	trackerService := services.NewTrackerService(log, pathRepo, assessmentRepo, aiClient)
	profileService := services.NewProfileService(log, employeeRepo, pathRepo, assessmentRepo, aiClient)
	analysisService := services.NewAnalysisService(log, employeeRepo, aiClient)

	// Handlers
	log.Info("Setting up handlers from main...")
	authHandler := handlers.NewAuthHandler(authService)
	adminHandler := handlers.NewAdminHandler(employeeService, onboardingService, dashboardService, analysisService, profileService)
	employeeHandler := handlers.NewEmployeeHandler(recommenderService, pathService, contentService, assessmentService, trackerService)

	// Router
	log.Info("Setting up router from main...")
	router := server.NewRouter(server.RouterConfig{
		AuthService:     authService,
		AuthHandler:     authHandler,
		AdminHandler:    adminHandler,
		EmployeeHandler: employeeHandler,
		AllowedOrigins:  allowedOrigins,
		Mode:            os.Getenv("GIN_MODE"),
	})

	log.Info("Starting server", "port", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal("Server exited", "error", err)
	}
}
