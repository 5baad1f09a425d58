package model

// TeachingAssignment 授课任务（教师被授权录入成绩的班次）— 对应 teaching_assignments
type TeachingAssignment struct {
	InstructorID string `gorm:"type:varchar(64);primaryKey;column:instructor_id" json:"instructor_id"`
	SectionID    string `gorm:"type:varchar(64);primaryKey;column:section_id" json:"section_id"`
}

// TableName 指定表名
func (TeachingAssignment) TableName() string { return "teaching_assignments" }

