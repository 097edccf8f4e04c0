package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/Murali-kartheekeyan/skillpath-backend/internal/logger"
	"github.com/Murali-kartheekeyan/skillpath-backend/internal/types"
)

type RoleRepo interface {
	GetByID(ctx context.Context, tx *gorm.DB, roleID uint) (*types.Role, error)
	GetRequirements(ctx context.Context, tx *gorm.DB, roleID uint) ([]*types.RoleSkillRequirement, error)
}

type roleRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRoleRepo(db *gorm.DB, baseLog *logger.Logger) RoleRepo {
	repoLog := baseLog.With("repo", "RoleRepo")
	return &roleRepo{db: db, log: repoLog}
}

func (r *roleRepo) GetByID(ctx context.Context, tx *gorm.DB, roleID uint) (*types.Role, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.Role
	if err := transaction.WithContext(ctx).
		Where("id = ?", roleID).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *roleRepo) GetRequirements(ctx context.Context, tx *gorm.DB, roleID uint) ([]*types.RoleSkillRequirement, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.RoleSkillRequirement
	if err := transaction.WithContext(ctx).
		Preload("Skill").
		Where("role_id = ?", roleID).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
