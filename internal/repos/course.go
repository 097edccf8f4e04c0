package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/Murali-kartheekeyan/skillpath-backend/internal/logger"
	"github.com/Murali-kartheekeyan/skillpath-backend/internal/types"
)

type CourseRepo interface {
	GetByIDs(ctx context.Context, tx *gorm.DB, courseIDs []uint) ([]*types.Course, error)
	GetBySkillIDs(ctx context.Context, tx *gorm.DB, skillIDs []uint) ([]*types.Course, error)
}

type courseRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCourseRepo(db *gorm.DB, baseLog *logger.Logger) CourseRepo {
	repoLog := baseLog.With("repo", "CourseRepo")
	return &courseRepo{db: db, log: repoLog}
}

func (r *courseRepo) GetByIDs(ctx context.Context, tx *gorm.DB, courseIDs []uint) ([]*types.Course, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Course
	if len(courseIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", courseIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *courseRepo) GetBySkillIDs(ctx context.Context, tx *gorm.DB, skillIDs []uint) ([]*types.Course, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Course
	if len(skillIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Preload("Skill").
		Where("skill_id IN ?", skillIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
