package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/MohdZaid0205/enterprise-resource-planning/internal/model"
)

// ContactRepository 联系方式子记录数据访问接口
type ContactRepository interface {
	GetByUserID(ctx context.Context, userID string) (*model.Contact, error)
	// FindByEmail 按邮箱查找，邮箱比较不区分大小写
	FindByEmail(ctx context.Context, email string) (*model.Contact, error)
	Upsert(ctx context.Context, contact *model.Contact) error
	Delete(ctx context.Context, userID string) error
}

// contactRepo ContactRepository 的 GORM 实现
type contactRepo struct {
	db *gorm.DB
}

// NewContactRepo 创建 ContactRepository 实例
func NewContactRepo(db *gorm.DB) ContactRepository {
	return &contactRepo{db: db}
}

func (r *contactRepo) GetByUserID(ctx context.Context, userID string) (*model.Contact, error) {
	var contact model.Contact
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&contact).Error
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

func (r *contactRepo) FindByEmail(ctx context.Context, email string) (*model.Contact, error) {
	var contact model.Contact
	err := r.db.WithContext(ctx).
		Where("LOWER(email) = LOWER(?)", email).
		First(&contact).Error
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

func (r *contactRepo) Upsert(ctx context.Context, contact *model.Contact) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"email", "phone"}),
		}).
		Create(contact).Error
}

func (r *contactRepo) Delete(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.Contact{}).Error
}

