package server

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/Murali-kartheekeyan/skillpath-backend/internal/handlers"
	"github.com/Murali-kartheekeyan/skillpath-backend/internal/middleware"
	"github.com/Murali-kartheekeyan/skillpath-backend/internal/services"
)

type RouterConfig struct {
	AuthService     services.AuthService
	AuthHandler     *handlers.AuthHandler
	AdminHandler    *handlers.AdminHandler
	EmployeeHandler *handlers.EmployeeHandler
	AllowedOrigins  string
	Mode            string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	if cfg.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	router.Use(otelgin.Middleware("skillpath-backend"))

	origins := []string{"http://localhost:3000", "http://localhost:5173"}
	if cfg.AllowedOrigins != "" {
		origins = strings.Split(cfg.AllowedOrigins, ",")
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	// Public
	router.GET("/healthcheck", handlers.Healthcheck)
	router.POST("/login", cfg.AuthHandler.Login)
	router.POST("/refresh", cfg.AuthHandler.Refresh)

	// Authenticated
	protected := router.Group("/")
	protected.Use(middleware.RequireAuth(cfg.AuthService))
	protected.POST("/logout", cfg.AuthHandler.Logout)
	protected.GET("/me", handlers.Me)

	// Admin
	admin := protected.Group("/admin")
	admin.Use(middleware.RequireAdmin())
	admin.GET("/employees", cfg.AdminHandler.ListEmployees)
	admin.POST("/employees", cfg.AdminHandler.AddEmployee)
	admin.DELETE("/employees/:id", cfg.AdminHandler.DeleteEmployee)
	admin.POST("/employees/upload", cfg.AdminHandler.UploadEmployees)
	admin.GET("/stats", cfg.AdminHandler.DashboardStats)
	admin.GET("/agent_metrics", cfg.AdminHandler.AgentMetrics)
	admin.GET("/ai_report/:id", cfg.AdminHandler.CareerReport)
	admin.GET("/profile_agent/:id", cfg.AdminHandler.ProfileAgent)

	// Employee
	employee := protected.Group("/employee")
	employee.Use(middleware.RequireEmployee())
	employee.GET("/learning_path", cfg.EmployeeHandler.GetLearningPath)
	employee.POST("/learning_path", cfg.EmployeeHandler.GeneratePath)
	employee.GET("/workflow", cfg.EmployeeHandler.WorkflowStatus)
	employee.POST("/slide_content", cfg.EmployeeHandler.SlideContent)
	employee.POST("/progress", cfg.EmployeeHandler.UpdateProgress)
	employee.GET("/assessments/pending", cfg.EmployeeHandler.PendingAssessments)
	employee.POST("/assessments/questions", cfg.EmployeeHandler.QuizQuestions)
	employee.POST("/assessments/submit", cfg.EmployeeHandler.SubmitAssessment)
	employee.GET("/tracker", cfg.EmployeeHandler.Tracker)

	return router
}
