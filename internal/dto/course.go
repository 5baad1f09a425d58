package dto

// ── 课程模块 DTO ──

// SaveCourseRequest 保存课程元数据请求
type SaveCourseRequest struct {
	ID       string `json:"id"       binding:"required"`
	Title    string `json:"title"    binding:"required"`
	Credits  int    `json:"credits"  binding:"required,min=1"`
	Capacity int    `json:"capacity" binding:"required,min=1"`
}

// CourseResponse 课程元数据响应
type CourseResponse struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Credits  int    `json:"credits"`
	Capacity int    `json:"capacity"`
}

