package dto

// ── 认证模块 DTO ──

// LoginRequest 登录请求
type LoginRequest struct {
	UserID   string `json:"user_id"  binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse 登录成功响应
type TokenResponse struct {
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	ExpiresIn    int      `json:"expires_in"`
	User         UserInfo `json:"user"`
}

// UserInfo Token 响应中附带的用户概要
type UserInfo struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Permission string `json:"permission"`
}

// RefreshTokenRequest 刷新 Token 请求
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// SetPasswordRequest 管理员直接设置密码请求
type SetPasswordRequest struct {
	Password string `json:"password" binding:"required,min=8,max=64"`
}

// ResetPasswordRequest 自助重置密码请求（邮箱不区分大小写 + 手机号精确匹配）
type ResetPasswordRequest struct {
	Email       string `json:"email"        binding:"required,email"`
	Phone       string `json:"phone"        binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8,max=64"`
}

