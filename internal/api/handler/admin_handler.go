package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/MohdZaid0205/enterprise-resource-planning/internal/dto"
	"github.com/MohdZaid0205/enterprise-resource-planning/internal/service"
	"github.com/MohdZaid0205/enterprise-resource-planning/pkg/response"
)

// AdminHandler 管理员模块 HTTP 处理器
type AdminHandler struct {
	adminSvc service.AdminService
}

// NewAdminHandler 创建 AdminHandler
func NewAdminHandler(adminSvc service.AdminService) *AdminHandler {
	return &AdminHandler{adminSvc: adminSvc}
}

// Save 保存管理员档案
// PUT /api/v1/admins
func (h *AdminHandler) Save(c *gin.Context) {
	var req dto.SaveAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	if err := h.adminSvc.Save(c.Request.Context(), &req); err != nil {
		serviceError(c, err)
		return
	}
	response.OK(c, nil)
}

// Get 查询管理员档案
// GET /api/v1/admins/:id
func (h *AdminHandler) Get(c *gin.Context) {
	admin, err := h.adminSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		serviceError(c, err)
		return
	}
	response.OK(c, admin)
}

// Delete 删除管理员档案
// DELETE /api/v1/admins/:id
func (h *AdminHandler) Delete(c *gin.Context) {
	if err := h.adminSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		serviceError(c, err)
		return
	}
	response.OK(c, nil)
}

// OverrideGrade 管理员越权修改任意班次成绩（不受授课归属限制）
// POST /api/v1/admins/grades/override
func (h *AdminHandler) OverrideGrade(c *gin.Context) {
	var req dto.OverrideGradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	if err := h.adminSvc.OverrideStudentGrade(c.Request.Context(), &req); err != nil {
		serviceError(c, err)
		return
	}
	response.OK(c, nil)
}

