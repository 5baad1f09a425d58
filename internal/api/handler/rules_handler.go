package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/MohdZaid0205/enterprise-resource-planning/internal/dto"
	"github.com/MohdZaid0205/enterprise-resource-planning/internal/service"
	"github.com/MohdZaid0205/enterprise-resource-planning/pkg/response"
)

// RulesHandler 应用规则 HTTP 处理器
type RulesHandler struct {
	rulesSvc service.RulesService
}

// NewRulesHandler 创建 RulesHandler
func NewRulesHandler(rulesSvc service.RulesService) *RulesHandler {
	return &RulesHandler{rulesSvc: rulesSvc}
}

// List 全量规则列表（未显式设置的返回默认值）
// GET /api/v1/rules
func (h *RulesHandler) List(c *gin.Context) {
	rules, err := h.rulesSvc.List(c.Request.Context())
	if err != nil {
		serviceError(c, err)
		return
	}
	response.OK(c, rules)
}

// Get 查询单条规则
// GET /api/v1/rules/:key
func (h *RulesHandler) Get(c *gin.Context) {
	rule, err := h.rulesSvc.Get(c.Request.Context(), c.Param("key"))
	if err != nil {
		serviceError(c, err)
		return
	}
	response.OK(c, rule)
}

// Update 更新规则（仅管理员，键为封闭集合）
// PUT /api/v1/rules/:key
func (h *RulesHandler) Update(c *gin.Context) {
	var req dto.UpdateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	if err := h.rulesSvc.Set(c.Request.Context(), c.Param("key"), req.Value); err != nil {
		serviceError(c, err)
		return
	}
	response.OK(c, nil)
}

