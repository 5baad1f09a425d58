package dto

// ── 教师模块 DTO ──

// SaveInstructorRequest 保存教师完整档案请求
type SaveInstructorRequest struct {
	ID       string `json:"id"       binding:"required"`
	Name     string `json:"name"     binding:"required"`
	Email    string `json:"email"    binding:"omitempty,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"omitempty,min=8,max=64"`
}

// InstructorResponse 教师档案响应
type InstructorResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Permission string `json:"permission"`
}

// AssignSectionRequest 认领教学班请求
type AssignSectionRequest struct {
	SectionID string `json:"section_id" binding:"required"`
}

// GradeScores 七项成绩分值，一次请求整体写入
type GradeScores struct {
	Labs        float64 `json:"labs"        binding:"min=0"`
	Quiz        float64 `json:"quiz"        binding:"min=0"`
	MidExam     float64 `json:"mid_exam"    binding:"min=0"`
	EndExam     float64 `json:"end_exam"    binding:"min=0"`
	Assignments float64 `json:"assignments" binding:"min=0"`
	Projects    float64 `json:"projects"    binding:"min=0"`
	Bonus       float64 `json:"bonus"       binding:"min=0"`
}

// EnterMarksRequest 录入成绩请求（七项整体覆盖）
type EnterMarksRequest struct {
	StudentID string      `json:"student_id" binding:"required"`
	Scores    GradeScores `json:"scores"`
}

// SectionStatsResponse 教学班总评分布统计响应
type SectionStatsResponse struct {
	SectionID string  `json:"section_id"`
	Count     int64   `json:"count"`
	Average   float64 `json:"average"`
	Highest   float64 `json:"highest"`
	Lowest    float64 `json:"lowest"`
}

