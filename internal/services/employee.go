package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Murali-kartheekeyan/skillpath-backend/internal/logger"
	"github.com/Murali-kartheekeyan/skillpath-backend/internal/repos"
)

// EmployeeService covers the admin roster operations that are not
// onboarding: listing and deletion.
type EmployeeService interface {
	List(ctx context.Context) ([]repos.EmployeeListRow, error)
	Delete(ctx context.Context, employeeID uint) error
}

type employeeService struct {
	db             *gorm.DB
	log            *logger.Logger
	employeeRepo   repos.EmployeeRepo
	credentialRepo repos.CredentialRepo
	tokenRepo      repos.CredentialTokenRepo
	pathRepo       repos.LearningPathRepo
	assessmentRepo repos.AssessmentRepo
}

func NewEmployeeService(db *gorm.DB, log *logger.Logger, employeeRepo repos.EmployeeRepo, credentialRepo repos.CredentialRepo, tokenRepo repos.CredentialTokenRepo, pathRepo repos.LearningPathRepo, assessmentRepo repos.AssessmentRepo) EmployeeService {
	return &employeeService{
		db:             db,
		log:            log.With("service", "EmployeeService"),
		employeeRepo:   employeeRepo,
		credentialRepo: credentialRepo,
		tokenRepo:      tokenRepo,
		pathRepo:       pathRepo,
		assessmentRepo: assessmentRepo,
	}
}

func (s *employeeService) List(ctx context.Context) ([]repos.EmployeeListRow, error) {
	return s.employeeRepo.List(ctx, nil)
}

// Delete removes the employee and every dependent row: issued tokens, the
// credential, learning-path steps, and their assessment attempts.
func (s *employeeService) Delete(ctx context.Context, employeeID uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		credential, err := s.credentialRepo.GetByEmployeeID(ctx, tx, employeeID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if credential != nil {
			if err := s.tokenRepo.DeleteByCredentialID(ctx, tx, credential.ID); err != nil {
				return err
			}
		}
		if err := s.credentialRepo.DeleteByEmployeeID(ctx, tx, employeeID); err != nil {
			return err
		}
		if err := s.assessmentRepo.DeleteByEmployeeID(ctx, tx, employeeID); err != nil {
			return err
		}
		if err := s.pathRepo.DeleteByEmployeeID(ctx, tx, employeeID); err != nil {
			return err
		}
		deleted, err := s.employeeRepo.DeleteByID(ctx, tx, employeeID)
		if err != nil {
			return err
		}
		if deleted == 0 {
			return ErrEmployeeNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrEmployeeNotFound) {
			return err
		}
		return fmt.Errorf("Failed to delete employee: %w", err)
	}
	return nil
}
