package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/MohdZaid0205/enterprise-resource-planning/internal/model"
	"github.com/MohdZaid0205/enterprise-resource-planning/pkg/response"
)

// MustGetUserID 从 Gin 上下文中安全提取 user_id。
// 如果 JWT 中间件未正确注入 user_id，返回 false 并写入 401 响应。
// 调用方应在 ok=false 时直接 return。
func MustGetUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		response.Unauthorized(c, 10002, "未认证")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "未认证")
		return "", false
	}
	return s, true
}

// MustGetPermission 从 Gin 上下文中安全提取权限级别。
func MustGetPermission(c *gin.Context) (model.Permission, bool) {
	v, exists := c.Get("permission")
	if !exists {
		response.Unauthorized(c, 10002, "未认证")
		return model.PermissionNone, false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "未认证")
		return model.PermissionNone, false
	}
	return model.Permission(s), true
}
