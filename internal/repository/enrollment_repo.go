package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/MohdZaid0205/enterprise-resource-planning/internal/model"
)

// EnrollmentRepository 选课记录数据访问接口
type EnrollmentRepository interface {
	Get(ctx context.Context, studentID, sectionID string) (*model.Enrollment, error)
	Create(ctx context.Context, enrollment *model.Enrollment) error
	Upsert(ctx context.Context, enrollment *model.Enrollment) error
	Delete(ctx context.Context, studentID, sectionID string) error
	ListByStudent(ctx context.Context, studentID string) ([]model.Enrollment, error)
	ListByStudentSemester(ctx context.Context, studentID, semester string) ([]model.Enrollment, error)
	ListBySection(ctx context.Context, sectionID string) ([]model.Enrollment, error)
}

// enrollmentRepo EnrollmentRepository 的 GORM 实现
type enrollmentRepo struct {
	db *gorm.DB
}

// NewEnrollmentRepo 创建 EnrollmentRepository 实例
func NewEnrollmentRepo(db *gorm.DB) EnrollmentRepository {
	return &enrollmentRepo{db: db}
}

func (r *enrollmentRepo) Get(ctx context.Context, studentID, sectionID string) (*model.Enrollment, error) {
	var enrollment model.Enrollment
	err := r.db.WithContext(ctx).
		Where("student_id = ? AND section_id = ?", studentID, sectionID).
		First(&enrollment).Error
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

func (r *enrollmentRepo) Create(ctx context.Context, enrollment *model.Enrollment) error {
	return r.db.WithContext(ctx).Create(enrollment).Error
}

func (r *enrollmentRepo) Upsert(ctx context.Context, enrollment *model.Enrollment) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "student_id"}, {Name: "section_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"semester"}),
		}).
		Create(enrollment).Error
}

func (r *enrollmentRepo) Delete(ctx context.Context, studentID, sectionID string) error {
	return r.db.WithContext(ctx).
		Where("student_id = ? AND section_id = ?", studentID, sectionID).
		Delete(&model.Enrollment{}).Error
}

func (r *enrollmentRepo) ListByStudent(ctx context.Context, studentID string) ([]model.Enrollment, error) {
	var enrollments []model.Enrollment
	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("section_id ASC").
		Find(&enrollments).Error
	if err != nil {
		return nil, err
	}
	return enrollments, nil
}

func (r *enrollmentRepo) ListByStudentSemester(ctx context.Context, studentID, semester string) ([]model.Enrollment, error) {
	var enrollments []model.Enrollment
	err := r.db.WithContext(ctx).
		Where("student_id = ? AND semester = ?", studentID, semester).
		Order("section_id ASC").
		Find(&enrollments).Error
	if err != nil {
		return nil, err
	}
	return enrollments, nil
}

func (r *enrollmentRepo) ListBySection(ctx context.Context, sectionID string) ([]model.Enrollment, error) {
	var enrollments []model.Enrollment
	err := r.db.WithContext(ctx).
		Where("section_id = ?", sectionID).
		Order("student_id ASC").
		Find(&enrollments).Error
	if err != nil {
		return nil, err
	}
	return enrollments, nil
}

