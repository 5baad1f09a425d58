package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/MohdZaid0205/enterprise-resource-planning/internal/model"
)

// TimetableRepository 教学班课表数据访问接口
type TimetableRepository interface {
	ListBySection(ctx context.Context, sectionID string) ([]model.TimetableSlot, error)
	ListBySections(ctx context.Context, sectionIDs []string) ([]model.TimetableSlot, error)
	// Replace 整体替换一个教学班的课表：先删后批量插入。
	Replace(ctx context.Context, sectionID string, slots []model.TimetableSlot) error
	DeleteBySection(ctx context.Context, sectionID string) error
}

// timetableRepo TimetableRepository 的 GORM 实现
type timetableRepo struct {
	db *gorm.DB
}

// NewTimetableRepo 创建 TimetableRepository 实例
func NewTimetableRepo(db *gorm.DB) TimetableRepository {
	return &timetableRepo{db: db}
}

func (r *timetableRepo) ListBySection(ctx context.Context, sectionID string) ([]model.TimetableSlot, error) {
	var slots []model.TimetableSlot
	err := r.db.WithContext(ctx).
		Where("section_id = ?", sectionID).
		Order("position ASC").
		Find(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *timetableRepo) ListBySections(ctx context.Context, sectionIDs []string) ([]model.TimetableSlot, error) {
	if len(sectionIDs) == 0 {
		return nil, nil
	}
	var slots []model.TimetableSlot
	err := r.db.WithContext(ctx).
		Where("section_id IN ?", sectionIDs).
		Order("section_id ASC, position ASC").
		Find(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *timetableRepo) Replace(ctx context.Context, sectionID string, slots []model.TimetableSlot) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("section_id = ?", sectionID).
			Delete(&model.TimetableSlot{}).Error; err != nil {
			return err
		}
		if len(slots) == 0 {
			return nil
		}
		for i := range slots {
			slots[i].SectionID = sectionID
			slots[i].Position = i
		}
		return tx.Create(&slots).Error
	})
}

func (r *timetableRepo) DeleteBySection(ctx context.Context, sectionID string) error {
	return r.db.WithContext(ctx).
		Where("section_id = ?", sectionID).
		Delete(&model.TimetableSlot{}).Error
}

