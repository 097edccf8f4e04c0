package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Murali-kartheekeyan/skillpath-backend/internal/logger"
	"github.com/Murali-kartheekeyan/skillpath-backend/internal/repos"
	"github.com/Murali-kartheekeyan/skillpath-backend/internal/types"
)

var ErrStepNotFound = errors.New("learning path step not found")

// WorkflowStatus is the employee dashboard's coarse pipeline view: which
// stages of the assign-learn-assess loop have been reached.
type WorkflowStatus struct {
	ProfileLoaded            bool `json:"profile_loaded"`
	RecommendationsGenerated bool `json:"recommendations_generated"`
	LearningInProgress       bool `json:"learning_in_progress"`
	AssessmentPending        bool `json:"assessment_pending"`
	AssessmentCompleted      bool `json:"assessment_completed"`
}

// PathService reads and mutates an employee's own learning path.
type PathService interface {
	GetPath(ctx context.Context, employeeID uint) ([]repos.PathStepRow, error)
	GetStep(ctx context.Context, employeeID, stepID uint) (*types.LearningPathStep, error)
	UpdateProgress(ctx context.Context, employeeID, stepID uint, progress int) (string, error)
	Pending(ctx context.Context, employeeID uint) ([]repos.PathStepRow, error)
	Workflow(ctx context.Context, employeeID uint) (*WorkflowStatus, error)
}

type pathService struct {
	log      *logger.Logger
	pathRepo repos.LearningPathRepo
}

func NewPathService(log *logger.Logger, pathRepo repos.LearningPathRepo) PathService {
	return &pathService{
		log:      log.With("service", "PathService"),
		pathRepo: pathRepo,
	}
}

func (s *pathService) GetPath(ctx context.Context, employeeID uint) ([]repos.PathStepRow, error) {
	return s.pathRepo.GetByEmployeeID(ctx, nil, employeeID)
}

func (s *pathService) GetStep(ctx context.Context, employeeID, stepID uint) (*types.LearningPathStep, error) {
	step, err := s.pathRepo.GetStepForEmployee(ctx, nil, stepID, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStepNotFound
		}
		return nil, err
	}
	return step, nil
}

// UpdateProgress clamps progress into 0-100 and derives the step status:
// 100 means the course content is done and the assessment becomes pending.
func (s *pathService) UpdateProgress(ctx context.Context, employeeID, stepID uint, progress int) (string, error) {
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}
	status := types.StepStatusInProgress
	if progress >= 100 {
		status = types.StepStatusCompleted
	}
	updated, err := s.pathRepo.UpdateProgress(ctx, nil, stepID, employeeID, progress, status)
	if err != nil {
		return "", fmt.Errorf("Failed to update progress: %w", err)
	}
	if updated == 0 {
		return "", ErrStepNotFound
	}
	return status, nil
}

func (s *pathService) Pending(ctx context.Context, employeeID uint) ([]repos.PathStepRow, error) {
	return s.pathRepo.GetPending(ctx, nil, employeeID)
}

func (s *pathService) Workflow(ctx context.Context, employeeID uint) (*WorkflowStatus, error) {
	statuses, err := s.pathRepo.GetStatuses(ctx, nil, employeeID)
	if err != nil {
		return nil, err
	}

	workflow := &WorkflowStatus{ProfileLoaded: true}
	if len(statuses) > 0 {
		workflow.RecommendationsGenerated = true
	}
	for _, status := range statuses {
		switch status {
		case types.StepStatusInProgress:
			workflow.LearningInProgress = true
		case types.StepStatusCompleted, types.StepStatusFailed:
			workflow.AssessmentPending = true
		case types.StepStatusPassed:
			workflow.AssessmentCompleted = true
		}
	}
	return workflow, nil
}
