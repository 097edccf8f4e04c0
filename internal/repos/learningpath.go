package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/Murali-kartheekeyan/skillpath-backend/internal/logger"
	"github.com/Murali-kartheekeyan/skillpath-backend/internal/types"
)

// PathStepRow is one learning-path step joined with its course name, in the
// shape the employee path endpoints return.
type PathStepRow struct {
	StepID     uint   `json:"step_id"`
	StepOrder  int    `json:"step_order"`
	Status     string `json:"status"`
	Progress   int    `json:"progress"`
	CourseName string `json:"course_name"`
}

// CourseHistoryRow feeds the tracker and profile agents.
type CourseHistoryRow struct {
	CourseName string `json:"course_name"`
	Status     string `json:"status"`
	Progress   int    `json:"progress"`
}

// StatusCountRow is one status bucket of the dashboard histogram.
type StatusCountRow struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type LearningPathRepo interface {
	CreateSteps(ctx context.Context, tx *gorm.DB, steps []*types.LearningPathStep) ([]*types.LearningPathStep, error)
	GetByEmployeeID(ctx context.Context, tx *gorm.DB, employeeID uint) ([]PathStepRow, error)
	GetCourseHistory(ctx context.Context, tx *gorm.DB, employeeID uint) ([]CourseHistoryRow, error)
	GetCompletedCourseNames(ctx context.Context, tx *gorm.DB, employeeID uint) ([]CourseHistoryRow, error)
	GetPending(ctx context.Context, tx *gorm.DB, employeeID uint) ([]PathStepRow, error)
	GetStepForEmployee(ctx context.Context, tx *gorm.DB, stepID, employeeID uint) (*types.LearningPathStep, error)
	GetStatuses(ctx context.Context, tx *gorm.DB, employeeID uint) ([]string, error)
	UpdateProgress(ctx context.Context, tx *gorm.DB, stepID, employeeID uint, progress int, status string) (int64, error)
	UpdateStatus(ctx context.Context, tx *gorm.DB, stepID uint, status string) error
	DeleteByEmployeeID(ctx context.Context, tx *gorm.DB, employeeID uint) error
	CountByStatus(ctx context.Context, tx *gorm.DB) ([]StatusCountRow, error)
}

type learningPathRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLearningPathRepo(db *gorm.DB, baseLog *logger.Logger) LearningPathRepo {
	repoLog := baseLog.With("repo", "LearningPathRepo")
	return &learningPathRepo{db: db, log: repoLog}
}

func (r *learningPathRepo) CreateSteps(ctx context.Context, tx *gorm.DB, steps []*types.LearningPathStep) ([]*types.LearningPathStep, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(steps) == 0 {
		return []*types.LearningPathStep{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&steps).Error; err != nil {
		return nil, err
	}
	return steps, nil
}

func (r *learningPathRepo) GetByEmployeeID(ctx context.Context, tx *gorm.DB, employeeID uint) ([]PathStepRow, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []PathStepRow
	if err := transaction.WithContext(ctx).
		Model(&types.LearningPathStep{}).
		Select("learning_path_steps.id AS step_id, learning_path_steps.step_order, learning_path_steps.status, learning_path_steps.progress, courses.name AS course_name").
		Joins("JOIN courses ON courses.id = learning_path_steps.course_id").
		Where("learning_path_steps.employee_id = ?", employeeID).
		Order("learning_path_steps.step_order").
		Scan(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *learningPathRepo) GetCourseHistory(ctx context.Context, tx *gorm.DB, employeeID uint) ([]CourseHistoryRow, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []CourseHistoryRow
	if err := transaction.WithContext(ctx).
		Model(&types.LearningPathStep{}).
		Select("courses.name AS course_name, learning_path_steps.status, learning_path_steps.progress").
		Joins("JOIN courses ON courses.id = learning_path_steps.course_id").
		Where("learning_path_steps.employee_id = ?", employeeID).
		Order("learning_path_steps.step_order").
		Scan(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *learningPathRepo) GetCompletedCourseNames(ctx context.Context, tx *gorm.DB, employeeID uint) ([]CourseHistoryRow, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []CourseHistoryRow
	if err := transaction.WithContext(ctx).
		Model(&types.LearningPathStep{}).
		Select("courses.name AS course_name, learning_path_steps.status, learning_path_steps.progress").
		Joins("JOIN courses ON courses.id = learning_path_steps.course_id").
		Where("learning_path_steps.employee_id = ? AND learning_path_steps.status IN ?", employeeID, []string{types.StepStatusCompleted, types.StepStatusPassed}).
		Order("learning_path_steps.step_order").
		Scan(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *learningPathRepo) GetPending(ctx context.Context, tx *gorm.DB, employeeID uint) ([]PathStepRow, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []PathStepRow
	if err := transaction.WithContext(ctx).
		Model(&types.LearningPathStep{}).
		Select("learning_path_steps.id AS step_id, learning_path_steps.step_order, learning_path_steps.status, learning_path_steps.progress, courses.name AS course_name").
		Joins("JOIN courses ON courses.id = learning_path_steps.course_id").
		Where("learning_path_steps.employee_id = ? AND learning_path_steps.status IN ?", employeeID, []string{types.StepStatusCompleted, types.StepStatusFailed}).
		Order("learning_path_steps.step_order").
		Scan(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *learningPathRepo) GetStepForEmployee(ctx context.Context, tx *gorm.DB, stepID, employeeID uint) (*types.LearningPathStep, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.LearningPathStep
	if err := transaction.WithContext(ctx).
		Preload("Course").
		Where("id = ? AND employee_id = ?", stepID, employeeID).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *learningPathRepo) GetStatuses(ctx context.Context, tx *gorm.DB, employeeID uint) ([]string, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []string
	if err := transaction.WithContext(ctx).
		Model(&types.LearningPathStep{}).
		Where("employee_id = ?", employeeID).
		Pluck("status", &results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *learningPathRepo) UpdateProgress(ctx context.Context, tx *gorm.DB, stepID, employeeID uint, progress int, status string) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	result := transaction.WithContext(ctx).
		Model(&types.LearningPathStep{}).
		Where("id = ? AND employee_id = ?", stepID, employeeID).
		Updates(map[string]interface{}{"progress": progress, "status": status})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (r *learningPathRepo) UpdateStatus(ctx context.Context, tx *gorm.DB, stepID uint, status string) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if err := transaction.WithContext(ctx).
		Model(&types.LearningPathStep{}).
		Where("id = ?", stepID).
		Update("status", status).Error; err != nil {
		return err
	}
	return nil
}

func (r *learningPathRepo) DeleteByEmployeeID(ctx context.Context, tx *gorm.DB, employeeID uint) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if err := transaction.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Delete(&types.LearningPathStep{}).Error; err != nil {
		return err
	}
	return nil
}

func (r *learningPathRepo) CountByStatus(ctx context.Context, tx *gorm.DB) ([]StatusCountRow, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []StatusCountRow
	if err := transaction.WithContext(ctx).
		Model(&types.LearningPathStep{}).
		Select("status, COUNT(id) AS count").
		Group("status").
		Scan(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
