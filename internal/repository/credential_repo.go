package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/MohdZaid0205/enterprise-resource-planning/internal/model"
)

// CredentialRepository 凭证子记录数据访问接口
type CredentialRepository interface {
	GetByUserID(ctx context.Context, userID string) (*model.Credential, error)
	Upsert(ctx context.Context, credential *model.Credential) error
	Delete(ctx context.Context, userID string) error
}

// credentialRepo CredentialRepository 的 GORM 实现
type credentialRepo struct {
	db *gorm.DB
}

// NewCredentialRepo 创建 CredentialRepository 实例
func NewCredentialRepo(db *gorm.DB) CredentialRepository {
	return &credentialRepo{db: db}
}

func (r *credentialRepo) GetByUserID(ctx context.Context, userID string) (*model.Credential, error) {
	var credential model.Credential
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&credential).Error
	if err != nil {
		return nil, err
	}
	return &credential, nil
}

func (r *credentialRepo) Upsert(ctx context.Context, credential *model.Credential) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"password_hash", "permission_level"}),
		}).
		Create(credential).Error
}

func (r *credentialRepo) Delete(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.Credential{}).Error
}

