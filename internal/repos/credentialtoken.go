package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/Murali-kartheekeyan/skillpath-backend/internal/logger"
	"github.com/Murali-kartheekeyan/skillpath-backend/internal/types"
)

type CredentialTokenRepo interface {
	Create(ctx context.Context, tx *gorm.DB, tokens []*types.CredentialToken) ([]*types.CredentialToken, error)
	GetByAccessToken(ctx context.Context, tx *gorm.DB, accessToken string) (*types.CredentialToken, error)
	GetByRefreshToken(ctx context.Context, tx *gorm.DB, refreshToken string) (*types.CredentialToken, error)
	DeleteByID(ctx context.Context, tx *gorm.DB, tokenID uint) error
	DeleteByCredentialID(ctx context.Context, tx *gorm.DB, credentialID uint) error
}

type credentialTokenRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCredentialTokenRepo(db *gorm.DB, baseLog *logger.Logger) CredentialTokenRepo {
	repoLog := baseLog.With("repo", "CredentialTokenRepo")
	return &credentialTokenRepo{db: db, log: repoLog}
}

func (r *credentialTokenRepo) Create(ctx context.Context, tx *gorm.DB, tokens []*types.CredentialToken) ([]*types.CredentialToken, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(tokens) == 0 {
		return []*types.CredentialToken{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&tokens).Error; err != nil {
		return nil, err
	}
	return tokens, nil
}

func (r *credentialTokenRepo) GetByAccessToken(ctx context.Context, tx *gorm.DB, accessToken string) (*types.CredentialToken, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.CredentialToken
	if err := transaction.WithContext(ctx).
		Where("access_token = ?", accessToken).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *credentialTokenRepo) GetByRefreshToken(ctx context.Context, tx *gorm.DB, refreshToken string) (*types.CredentialToken, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.CredentialToken
	if err := transaction.WithContext(ctx).
		Where("refresh_token = ?", refreshToken).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *credentialTokenRepo) DeleteByID(ctx context.Context, tx *gorm.DB, tokenID uint) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if err := transaction.WithContext(ctx).
		Where("id = ?", tokenID).
		Delete(&types.CredentialToken{}).Error; err != nil {
		return err
	}
	return nil
}

func (r *credentialTokenRepo) DeleteByCredentialID(ctx context.Context, tx *gorm.DB, credentialID uint) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if err := transaction.WithContext(ctx).
		Where("credential_id = ?", credentialID).
		Delete(&types.CredentialToken{}).Error; err != nil {
		return err
	}
	return nil
}
