package dto

// ── 运行参数模块 DTO ──

// UpdateRuleRequest 更新单个运行参数请求
type UpdateRuleRequest struct {
	Value string `json:"value" binding:"required"`
}

// RuleResponse 运行参数响应
type RuleResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

