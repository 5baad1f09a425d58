package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/MohdZaid0205/enterprise-resource-planning/internal/dto"
	"github.com/MohdZaid0205/enterprise-resource-planning/internal/service"
	"github.com/MohdZaid0205/enterprise-resource-planning/pkg/response"
)

// CourseHandler 课程目录 HTTP 处理器
type CourseHandler struct {
	courseSvc service.CourseService
}

// NewCourseHandler 创建 CourseHandler
func NewCourseHandler(courseSvc service.CourseService) *CourseHandler {
	return &CourseHandler{courseSvc: courseSvc}
}

// Save 保存课程（新建或整体覆盖）
// PUT /api/v1/courses
func (h *CourseHandler) Save(c *gin.Context) {
	var req dto.SaveCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	if err := h.courseSvc.Save(c.Request.Context(), &req); err != nil {
		serviceError(c, err)
		return
	}
	response.OK(c, nil)
}

// Get 查询课程
// GET /api/v1/courses/:id
func (h *CourseHandler) Get(c *gin.Context) {
	course, err := h.courseSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		serviceError(c, err)
		return
	}
	response.OK(c, course)
}

// Delete 删除课程
// DELETE /api/v1/courses/:id
func (h *CourseHandler) Delete(c *gin.Context) {
	if err := h.courseSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		serviceError(c, err)
		return
	}
	response.OK(c, nil)
}

// List 课程列表
// GET /api/v1/courses
func (h *CourseHandler) List(c *gin.Context) {
	courses, err := h.courseSvc.List(c.Request.Context())
	if err != nil {
		serviceError(c, err)
		return
	}
	response.OK(c, courses)
}

// ListSections 课程下属班次列表
// GET /api/v1/courses/:id/sections
func (h *CourseHandler) ListSections(c *gin.Context) {
	sections, err := h.courseSvc.ListSections(c.Request.Context(), c.Param("id"))
	if err != nil {
		serviceError(c, err)
		return
	}
	response.OK(c, sections)
}

