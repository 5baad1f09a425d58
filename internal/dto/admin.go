package dto

// ── 管理员模块 DTO ──

// SaveAdminRequest 保存管理员完整档案请求
type SaveAdminRequest struct {
	ID       string `json:"id"       binding:"required"`
	Name     string `json:"name"     binding:"required"`
	Email    string `json:"email"    binding:"omitempty,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"omitempty,min=8,max=64"`
}

// AdminResponse 管理员档案响应
type AdminResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// OverrideGradeRequest 管理员改写任意成绩记录请求（七项整体覆盖）
type OverrideGradeRequest struct {
	StudentID string      `json:"student_id" binding:"required"`
	SectionID string      `json:"section_id" binding:"required"`
	Scores    GradeScores `json:"scores"`
}

