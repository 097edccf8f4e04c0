package repos

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Murali-kartheekeyan/skillpath-backend/internal/logger"
	"github.com/Murali-kartheekeyan/skillpath-backend/internal/types"
)

// AttemptHistoryRow is one assessment attempt joined with its course name.
type AttemptHistoryRow struct {
	CourseName  string    `json:"course_name"`
	Score       int       `json:"score"`
	Passed      bool      `json:"passed"`
	AttemptDate time.Time `json:"attempt_date"`
}

type AssessmentRepo interface {
	Create(ctx context.Context, tx *gorm.DB, attempts []*types.AssessmentAttempt) ([]*types.AssessmentAttempt, error)
	GetHistory(ctx context.Context, tx *gorm.DB, employeeID uint) ([]AttemptHistoryRow, error)
	DeleteByEmployeeID(ctx context.Context, tx *gorm.DB, employeeID uint) error
}

type assessmentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAssessmentRepo(db *gorm.DB, baseLog *logger.Logger) AssessmentRepo {
	repoLog := baseLog.With("repo", "AssessmentRepo")
	return &assessmentRepo{db: db, log: repoLog}
}

func (r *assessmentRepo) Create(ctx context.Context, tx *gorm.DB, attempts []*types.AssessmentAttempt) ([]*types.AssessmentAttempt, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(attempts) == 0 {
		return []*types.AssessmentAttempt{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&attempts).Error; err != nil {
		return nil, err
	}
	return attempts, nil
}

func (r *assessmentRepo) GetHistory(ctx context.Context, tx *gorm.DB, employeeID uint) ([]AttemptHistoryRow, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []AttemptHistoryRow
	if err := transaction.WithContext(ctx).
		Model(&types.AssessmentAttempt{}).
		Select("courses.name AS course_name, assessment_attempts.score, assessment_attempts.passed, assessment_attempts.attempt_date").
		Joins("JOIN learning_path_steps ON learning_path_steps.id = assessment_attempts.step_id").
		Joins("JOIN courses ON courses.id = learning_path_steps.course_id").
		Where("learning_path_steps.employee_id = ?", employeeID).
		Order("assessment_attempts.attempt_date DESC").
		Scan(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *assessmentRepo) DeleteByEmployeeID(ctx context.Context, tx *gorm.DB, employeeID uint) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	subquery := transaction.WithContext(ctx).
		Model(&types.LearningPathStep{}).
		Select("id").
		Where("employee_id = ?", employeeID)
	if err := transaction.WithContext(ctx).
		Where("step_id IN (?)", subquery).
		Delete(&types.AssessmentAttempt{}).Error; err != nil {
		return err
	}
	return nil
}
