package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/MohdZaid0205/enterprise-resource-planning/internal/model"
)

// InstructorRepository 教师身份记录数据访问接口
type InstructorRepository interface {
	GetByID(ctx context.Context, id string) (*model.Instructor, error)
	Upsert(ctx context.Context, instructor *model.Instructor) error
	Delete(ctx context.Context, id string) error
}

// instructorRepo InstructorRepository 的 GORM 实现
type instructorRepo struct {
	db *gorm.DB
}

// NewInstructorRepo 创建 InstructorRepository 实例
func NewInstructorRepo(db *gorm.DB) InstructorRepository {
	return &instructorRepo{db: db}
}

func (r *instructorRepo) GetByID(ctx context.Context, id string) (*model.Instructor, error) {
	var instructor model.Instructor
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&instructor).Error
	if err != nil {
		return nil, err
	}
	return &instructor, nil
}

func (r *instructorRepo) Upsert(ctx context.Context, instructor *model.Instructor) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "updated_at"}),
		}).
		Create(instructor).Error
}

func (r *instructorRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.Instructor{}).Error
}

