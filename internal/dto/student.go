package dto

// ── 学生模块 DTO ──

// SaveStudentRequest 保存学生完整档案请求（身份 + 联系方式 + 凭证）
type SaveStudentRequest struct {
	ID             string `json:"id"              binding:"required"`
	Name           string `json:"name"            binding:"required"`
	EnrollmentDate string `json:"enrollment_date"`
	Email          string `json:"email"           binding:"omitempty,email"`
	Phone          string `json:"phone"`
	Password       string `json:"password"        binding:"omitempty,min=8,max=64"`
}

// StudentResponse 学生档案响应
type StudentResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	EnrollmentDate string `json:"enrollment_date"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Permission     string `json:"permission"`
}

// EnrollRequest 选课请求
type EnrollRequest struct {
	SectionID string `json:"section_id" binding:"required"`
}

// ScheduleEntryResponse 周课表条目（按教学班展开的时间块）
type ScheduleEntryResponse struct {
	SectionID    string `json:"section_id"`
	SectionName  string `json:"section_name"`
	CourseID     string `json:"course_id"`
	Day          string `json:"day"`
	StartTime    string `json:"start_time"`
	DurationMins int    `json:"duration_mins"`
	Room         string `json:"room"`
}

// SemesterRecordEntry 学期成绩单单条记录
type SemesterRecordEntry struct {
	SectionID   string  `json:"section_id"`
	SectionName string  `json:"section_name"`
	CourseID    string  `json:"course_id"`
	Credits     int     `json:"credits"`
	Total       float64 `json:"total"`
	Letter      string  `json:"letter"`
	GradePoint  int     `json:"grade_point"`
}

// SemesterRecordResponse 学期成绩单响应
type SemesterRecordResponse struct {
	StudentID string                `json:"student_id"`
	Semester  string                `json:"semester"`
	Entries   []SemesterRecordEntry `json:"entries"`
	SGPA      float64               `json:"sgpa"`
}

// ImportStudentsResponse 批量导入学生结果
type ImportStudentsResponse struct {
	Imported int      `json:"imported"`
	Skipped  []string `json:"skipped,omitempty"` // 行号: 原因
}

