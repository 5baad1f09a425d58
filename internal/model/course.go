package model

// Course 课程元数据 — 对应 courses
type Course struct {
	ID       string `gorm:"type:varchar(64);primaryKey" json:"id"`
	Title    string `gorm:"type:varchar(200);not null"  json:"title"`
	Credits  int    `gorm:"not null;default:1"          json:"credits"`
	Capacity int    `gorm:"not null;default:1"          json:"capacity"`
	Timestamps
}

// TableName 指定表名
func (Course) TableName() string { return "courses" }

