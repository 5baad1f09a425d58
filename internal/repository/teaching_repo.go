package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/MohdZaid0205/enterprise-resource-planning/internal/model"
)

// TeachingRepository 授课分配数据访问接口
type TeachingRepository interface {
	Exists(ctx context.Context, instructorID, sectionID string) (bool, error)
	Upsert(ctx context.Context, assignment *model.TeachingAssignment) error
	Delete(ctx context.Context, instructorID, sectionID string) error
	ListByInstructor(ctx context.Context, instructorID string) ([]model.TeachingAssignment, error)
	ListBySection(ctx context.Context, sectionID string) ([]model.TeachingAssignment, error)
}

// teachingRepo TeachingRepository 的 GORM 实现
type teachingRepo struct {
	db *gorm.DB
}

// NewTeachingRepo 创建 TeachingRepository 实例
func NewTeachingRepo(db *gorm.DB) TeachingRepository {
	return &teachingRepo{db: db}
}

func (r *teachingRepo) Exists(ctx context.Context, instructorID, sectionID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.TeachingAssignment{}).
		Where("instructor_id = ? AND section_id = ?", instructorID, sectionID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *teachingRepo) Upsert(ctx context.Context, assignment *model.TeachingAssignment) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "instructor_id"}, {Name: "section_id"}},
			DoNothing: true,
		}).
		Create(assignment).Error
}

func (r *teachingRepo) Delete(ctx context.Context, instructorID, sectionID string) error {
	return r.db.WithContext(ctx).
		Where("instructor_id = ? AND section_id = ?", instructorID, sectionID).
		Delete(&model.TeachingAssignment{}).Error
}

func (r *teachingRepo) ListByInstructor(ctx context.Context, instructorID string) ([]model.TeachingAssignment, error) {
	var assignments []model.TeachingAssignment
	err := r.db.WithContext(ctx).
		Where("instructor_id = ?", instructorID).
		Order("section_id ASC").
		Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

func (r *teachingRepo) ListBySection(ctx context.Context, sectionID string) ([]model.TeachingAssignment, error) {
	var assignments []model.TeachingAssignment
	err := r.db.WithContext(ctx).
		Where("section_id = ?", sectionID).
		Order("instructor_id ASC").
		Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

