package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/MohdZaid0205/enterprise-resource-planning/internal/model"
)

// SettingRepository 全局运行参数数据访问接口
type SettingRepository interface {
	Get(ctx context.Context, key string) (*model.Setting, error)
	Upsert(ctx context.Context, setting *model.Setting) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) ([]model.Setting, error)
}

// settingRepo SettingRepository 的 GORM 实现
type settingRepo struct {
	db *gorm.DB
}

// NewSettingRepo 创建 SettingRepository 实例
func NewSettingRepo(db *gorm.DB) SettingRepository {
	return &settingRepo{db: db}
}

func (r *settingRepo) Get(ctx context.Context, key string) (*model.Setting, error) {
	var setting model.Setting
	err := r.db.WithContext(ctx).
		Where("key = ?", key).
		First(&setting).Error
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *settingRepo) Upsert(ctx context.Context, setting *model.Setting) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(setting).Error
}

func (r *settingRepo) Delete(ctx context.Context, key string) error {
	return r.db.WithContext(ctx).
		Where("key = ?", key).
		Delete(&model.Setting{}).Error
}

func (r *settingRepo) List(ctx context.Context) ([]model.Setting, error) {
	var settings []model.Setting
	err := r.db.WithContext(ctx).
		Order("key ASC").
		Find(&settings).Error
	if err != nil {
		return nil, err
	}
	return settings, nil
}

