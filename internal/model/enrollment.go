package model

// Enrollment 选课记录（学生成绩单的一行）— 对应 enrollments
// 学生的成绩单即 semester → section 集合的映射
type Enrollment struct {
	StudentID string `gorm:"type:varchar(64);primaryKey;column:student_id" json:"student_id"`
	SectionID string `gorm:"type:varchar(64);primaryKey;column:section_id" json:"section_id"`
	Semester  string `gorm:"type:varchar(64);not null" json:"semester"`
}

// TableName 指定表名
func (Enrollment) TableName() string { return "enrollments" }

