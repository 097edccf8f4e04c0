package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/Murali-kartheekeyan/skillpath-backend/internal/logger"
	"github.com/Murali-kartheekeyan/skillpath-backend/internal/types"
)

type CredentialRepo interface {
	Create(ctx context.Context, tx *gorm.DB, credentials []*types.Credential) ([]*types.Credential, error)
	GetByUsername(ctx context.Context, tx *gorm.DB, username string) (*types.Credential, error)
	GetByEmployeeID(ctx context.Context, tx *gorm.DB, employeeID uint) (*types.Credential, error)
	GetByID(ctx context.Context, tx *gorm.DB, credentialID uint) (*types.Credential, error)
	DeleteByEmployeeID(ctx context.Context, tx *gorm.DB, employeeID uint) error
}

type credentialRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCredentialRepo(db *gorm.DB, baseLog *logger.Logger) CredentialRepo {
	repoLog := baseLog.With("repo", "CredentialRepo")
	return &credentialRepo{db: db, log: repoLog}
}

func (r *credentialRepo) Create(ctx context.Context, tx *gorm.DB, credentials []*types.Credential) ([]*types.Credential, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(credentials) == 0 {
		return []*types.Credential{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&credentials).Error; err != nil {
		return nil, err
	}
	return credentials, nil
}

func (r *credentialRepo) GetByUsername(ctx context.Context, tx *gorm.DB, username string) (*types.Credential, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.Credential
	if err := transaction.WithContext(ctx).
		Where("username = ?", username).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *credentialRepo) GetByEmployeeID(ctx context.Context, tx *gorm.DB, employeeID uint) (*types.Credential, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.Credential
	if err := transaction.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *credentialRepo) GetByID(ctx context.Context, tx *gorm.DB, credentialID uint) (*types.Credential, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.Credential
	if err := transaction.WithContext(ctx).
		Where("id = ?", credentialID).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *credentialRepo) DeleteByEmployeeID(ctx context.Context, tx *gorm.DB, employeeID uint) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if err := transaction.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Delete(&types.Credential{}).Error; err != nil {
		return err
	}
	return nil
}
