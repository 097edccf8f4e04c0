package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Murali-kartheekeyan/skillpath-backend/internal/logger"
	"github.com/Murali-kartheekeyan/skillpath-backend/internal/repos"
)

// ProfileService infers latent skill vectors from an employee's full
// history. Read-only: the inferred profile is reported, never persisted.
type ProfileService interface {
	InferSkillVectors(ctx context.Context, employeeID uint) (map[string]interface{}, error)
}

type profileService struct {
	log            *logger.Logger
	employeeRepo   repos.EmployeeRepo
	pathRepo       repos.LearningPathRepo
	assessmentRepo repos.AssessmentRepo
	aiClient       AIClient
}

func NewProfileService(log *logger.Logger, employeeRepo repos.EmployeeRepo, pathRepo repos.LearningPathRepo, assessmentRepo repos.AssessmentRepo, aiClient AIClient) ProfileService {
	return &profileService{
		log:            log.With("service", "ProfileService"),
		employeeRepo:   employeeRepo,
		pathRepo:       pathRepo,
		assessmentRepo: assessmentRepo,
		aiClient:       aiClient,
	}
}

func (s *profileService) InferSkillVectors(ctx context.Context, employeeID uint) (map[string]interface{}, error) {
	employee, err := s.employeeRepo.GetByIDWithRole(ctx, nil, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}

	completions, err := s.pathRepo.GetCompletedCourseNames(ctx, nil, employeeID)
	if err != nil {
		return nil, err
	}

	performance, err := s.assessmentRepo.GetHistory(ctx, nil, employeeID)
	if err != nil {
		return nil, err
	}

	raw := s.aiClient.Complete(ctx, buildProfilePrompt(employee, completions, performance))
	return DecodeObject(raw), nil
}
