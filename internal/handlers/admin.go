package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Murali-kartheekeyan/skillpath-backend/internal/services"
	"github.com/Murali-kartheekeyan/skillpath-backend/internal/tabular"
)

// AdminHandler serves the administrator surface: employee lifecycle,
// dashboard stats and the AI reporting endpoints.
type AdminHandler struct {
	employeeService   services.EmployeeService
	onboardingService services.OnboardingService
	dashboardService  services.DashboardService
	analysisService   services.AnalysisService
	profileService    services.ProfileService
}

func NewAdminHandler(
	employeeService services.EmployeeService,
	onboardingService services.OnboardingService,
	dashboardService services.DashboardService,
	analysisService services.AnalysisService,
	profileService services.ProfileService,
) *AdminHandler {
	return &AdminHandler{
		employeeService:   employeeService,
		onboardingService: onboardingService,
		dashboardService:  dashboardService,
		analysisService:   analysisService,
		profileService:    profileService,
	}
}

func (ah *AdminHandler) ListEmployees(c *gin.Context) {
	rows, err := ah.employeeService.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"employees": rows})
}

func (ah *AdminHandler) AddEmployee(c *gin.Context) {
	var req services.AddEmployeeInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and password are required."})
		return
	}
	employee, err := ah.onboardingService.AddEmployee(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"message":     fmt.Sprintf("Employee %s added successfully!", employee.Name),
		"employee_id": employee.ID,
	})
}

func (ah *AdminHandler) DeleteEmployee(c *gin.Context) {
	employeeID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ah.employeeService.Delete(c.Request.Context(), employeeID); err != nil {
		if errors.Is(err, services.ErrEmployeeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Employee deleted successfully."})
}

func (ah *AdminHandler) UploadEmployees(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file part in the request."})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read the uploaded file."})
		return
	}
	defer file.Close()

	table, err := tabular.Decode(fileHeader.Filename, file)
	if err != nil {
		if errors.Is(err, tabular.ErrUnsupportedType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported file type. Please upload a CSV or Excel file."})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("An error occurred: %s", err.Error())})
		return
	}
	count, err := ah.onboardingService.BulkOnboard(c.Request.Context(), table)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("%d employees added successfully!", count),
	})
}

func (ah *AdminHandler) DashboardStats(c *gin.Context) {
	stats, err := ah.dashboardService.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (ah *AdminHandler) AgentMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, ah.dashboardService.AgentMetrics())
}

func (ah *AdminHandler) CareerReport(c *gin.Context) {
	employeeID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	report, err := ah.analysisService.CareerReport(c.Request.Context(), employeeID)
	if err != nil {
		if errors.Is(err, services.ErrEmployeeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}

func (ah *AdminHandler) ProfileAgent(c *gin.Context) {
	employeeID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	vectors, err := ah.profileService.InferSkillVectors(c.Request.Context(), employeeID)
	if err != nil {
		if errors.Is(err, services.ErrEmployeeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, vectors)
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}
