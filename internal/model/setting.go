package model

// Setting 进程级键值设置 — 对应 settings
// 所有值以字符串存储，读取时由调用方解析
type Setting struct {
	Key   string `gorm:"type:varchar(64);primaryKey" json:"key"`
	Value string `gorm:"type:varchar(255);not null"  json:"value"`
}

// TableName 指定表名
func (Setting) TableName() string { return "settings" }

