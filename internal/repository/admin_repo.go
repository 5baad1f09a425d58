package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/MohdZaid0205/enterprise-resource-planning/internal/model"
)

// AdminRepository 管理员身份记录数据访问接口
type AdminRepository interface {
	GetByID(ctx context.Context, id string) (*model.Admin, error)
	Upsert(ctx context.Context, admin *model.Admin) error
	Delete(ctx context.Context, id string) error
}

// adminRepo AdminRepository 的 GORM 实现
type adminRepo struct {
	db *gorm.DB
}

// NewAdminRepo 创建 AdminRepository 实例
func NewAdminRepo(db *gorm.DB) AdminRepository {
	return &adminRepo{db: db}
}

func (r *adminRepo) GetByID(ctx context.Context, id string) (*model.Admin, error) {
	var admin model.Admin
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&admin).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepo) Upsert(ctx context.Context, admin *model.Admin) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "updated_at"}),
		}).
		Create(admin).Error
}

func (r *adminRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.Admin{}).Error
}

