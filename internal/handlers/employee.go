package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Murali-kartheekeyan/skillpath-backend/internal/requestdata"
	"github.com/Murali-kartheekeyan/skillpath-backend/internal/services"
)

// EmployeeHandler serves the learner surface. Every route resolves the
// acting employee from request data, never from request parameters.
type EmployeeHandler struct {
	recommenderService services.RecommenderService
	pathService        services.PathService
	contentService     services.ContentService
	assessmentService  services.AssessmentService
	trackerService     services.TrackerService
}

func NewEmployeeHandler(
	recommenderService services.RecommenderService,
	pathService services.PathService,
	contentService services.ContentService,
	assessmentService services.AssessmentService,
	trackerService services.TrackerService,
) *EmployeeHandler {
	return &EmployeeHandler{
		recommenderService: recommenderService,
		pathService:        pathService,
		contentService:     contentService,
		assessmentService:  assessmentService,
		trackerService:     trackerService,
	}
}

func (eh *EmployeeHandler) GetLearningPath(c *gin.Context) {
	employeeID, ok := employeeFromContext(c)
	if !ok {
		return
	}
	steps, err := eh.pathService.GetPath(c.Request.Context(), employeeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"learning_path": steps})
}

func (eh *EmployeeHandler) GeneratePath(c *gin.Context) {
	employeeID, ok := employeeFromContext(c)
	if !ok {
		return
	}
	result, err := eh.recommenderService.GeneratePath(c.Request.Context(), employeeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	status := http.StatusOK
	if !result.Success {
		status = http.StatusBadGateway
	}
	c.JSON(status, gin.H{
		"success":     result.Success,
		"path_exists": result.PathExists,
		"message":     result.Message,
	})
}

func (eh *EmployeeHandler) WorkflowStatus(c *gin.Context) {
	employeeID, ok := employeeFromContext(c)
	if !ok {
		return
	}
	workflow, err := eh.pathService.Workflow(c.Request.Context(), employeeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, workflow)
}

func (eh *EmployeeHandler) SlideContent(c *gin.Context) {
	if _, ok := employeeFromContext(c); !ok {
		return
	}
	var req struct {
		CourseName  string `json:"course_name" binding:"required"`
		SlideNumber int    `json:"slide_number"`
		TotalSlides int    `json:"total_slides"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "course_name is required"})
		return
	}
	if req.SlideNumber < 1 {
		req.SlideNumber = 1
	}
	if req.TotalSlides < req.SlideNumber {
		req.TotalSlides = req.SlideNumber
	}
	slide := eh.contentService.SlideContent(c.Request.Context(), req.CourseName, req.SlideNumber, req.TotalSlides)
	c.JSON(http.StatusOK, slide)
}

func (eh *EmployeeHandler) UpdateProgress(c *gin.Context) {
	employeeID, ok := employeeFromContext(c)
	if !ok {
		return
	}
	var req struct {
		StepID   uint `json:"step_id" binding:"required"`
		Progress int  `json:"progress"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "step_id is required"})
		return
	}
	status, err := eh.pathService.UpdateProgress(c.Request.Context(), employeeID, req.StepID, req.Progress)
	if err != nil {
		if errors.Is(err, services.ErrStepNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Learning path step not found."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "status": status})
}

func (eh *EmployeeHandler) PendingAssessments(c *gin.Context) {
	employeeID, ok := employeeFromContext(c)
	if !ok {
		return
	}
	pending, err := eh.pathService.Pending(c.Request.Context(), employeeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"assessments": pending})
}

func (eh *EmployeeHandler) QuizQuestions(c *gin.Context) {
	if _, ok := employeeFromContext(c); !ok {
		return
	}
	var req struct {
		CourseName string `json:"course_name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "course_name is required"})
		return
	}
	questions, envelope := eh.contentService.QuizQuestions(c.Request.Context(), req.CourseName)
	if envelope != nil {
		c.JSON(http.StatusOK, envelope)
		return
	}
	c.JSON(http.StatusOK, questions)
}

func (eh *EmployeeHandler) SubmitAssessment(c *gin.Context) {
	employeeID, ok := employeeFromContext(c)
	if !ok {
		return
	}
	var req struct {
		StepID    uint                    `json:"step_id" binding:"required"`
		Questions []services.QuizQuestion `json:"questions" binding:"required"`
		Answers   []int                   `json:"answers"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "step_id and questions are required"})
		return
	}
	result, err := eh.assessmentService.Submit(c.Request.Context(), employeeID, req.StepID, req.Questions, req.Answers)
	if err != nil {
		if errors.Is(err, services.ErrStepNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Learning path step not found."})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (eh *EmployeeHandler) Tracker(c *gin.Context) {
	employeeID, ok := employeeFromContext(c)
	if !ok {
		return
	}
	analysis, err := eh.trackerService.Analyze(c.Request.Context(), employeeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, analysis)
}

func employeeFromContext(c *gin.Context) (uint, bool) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.EmployeeID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return 0, false
	}
	return rd.EmployeeID, true
}
