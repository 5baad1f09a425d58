package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/MohdZaid0205/enterprise-resource-planning/config"
	"github.com/MohdZaid0205/enterprise-resource-planning/internal/dto"
	"github.com/MohdZaid0205/enterprise-resource-planning/internal/model"
	"github.com/MohdZaid0205/enterprise-resource-planning/internal/repository"
	"github.com/MohdZaid0205/enterprise-resource-planning/pkg/jwt"
)

// ── 测试辅助 ──

type mockBlacklist struct {
	mu   sync.Mutex
	jtis map[string]bool
}

func newMockBlacklist() *mockBlacklist {
	return &mockBlacklist{jtis: make(map[string]bool)}
}

func (m *mockBlacklist) BlacklistToken(_ context.Context, jti string, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.jtis[jti] = true
	return nil
}

func (m *mockBlacklist) IsBlacklisted(_ context.Context, jti string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.jtis[jti], nil
}

func setupTestAuthService() (AuthService, *repository.Repository, *mockBlacklist) {
	repo := newTestRepo()
	cfg := &config.Config{}
	cfg.Auth.JWTSecret = "test-secret-at-least-16-chars"
	cfg.Auth.AccessTokenTTL = 15 * time.Minute
	cfg.Auth.RefreshTokenTTL = 7 * 24 * time.Hour
	jwtMgr := jwt.NewManager(&cfg.Auth)
	blacklist := newMockBlacklist()
	svc := NewAuthService(cfg, repo, jwtMgr, blacklist, zap.NewNop())
	return svc, repo, blacklist
}

func seedStudentWithCredentials(repo *repository.Repository, id, name, password string) {
	ctx := context.Background()
	repo.Students.Upsert(ctx, &model.Student{ID: id, Name: name})
	repo.Credentials.Upsert(ctx, &model.Credential{
		UserID:          id,
		PasswordHash:    HashPassword(password),
		PermissionLevel: model.PermissionStudent.String(),
	})
}

// ── 口令散列测试 ──

func TestHashPassword_Deterministic(t *testing.T) {
	if HashPassword("secret123") != HashPassword("secret123") {
		t.Error("同一口令应得到同一散列")
	}
	if HashPassword("secret123") == HashPassword("secret124") {
		t.Error("不同口令不应得到同一散列")
	}
	if len(HashPassword("x")) != 64 {
		t.Error("散列应为 64 位十六进制字符串")
	}
}

// ── Authenticate 测试 ──

func TestAuthService_Authenticate_Success(t *testing.T) {
	svc, repo, _ := setupTestAuthService()
	seedStudentWithCredentials(repo, "stu-001", "张三", "secret123")

	perm, err := svc.Authenticate(context.Background(), "stu-001", "secret123")
	if err != nil {
		t.Fatalf("认证应成功: %v", err)
	}
	if perm != model.PermissionStudent {
		t.Errorf("期望权限 student，实际=%s", perm)
	}
}

func TestAuthService_Authenticate_WrongPassword(t *testing.T) {
	svc, repo, _ := setupTestAuthService()
	seedStudentWithCredentials(repo, "stu-001", "张三", "secret123")

	_, err := svc.Authenticate(context.Background(), "stu-001", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("期望 ErrInvalidCredentials，实际: %v", err)
	}
}

func TestAuthService_Authenticate_UnknownUser(t *testing.T) {
	svc, _, _ := setupTestAuthService()

	_, err := svc.Authenticate(context.Background(), "nobody", "secret123")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("期望 ErrInvalidCredentials，实际: %v", err)
	}
}

func TestAuthService_Authenticate_StalePermissionLevel(t *testing.T) {
	svc, repo, _ := setupTestAuthService()
	ctx := context.Background()
	// 凭证里记录的是 instructor，但当前身份只有学生表
	repo.Students.Upsert(ctx, &model.Student{ID: "stu-001", Name: "张三"})
	repo.Credentials.Upsert(ctx, &model.Credential{
		UserID:          "stu-001",
		PasswordHash:    HashPassword("secret123"),
		PermissionLevel: model.PermissionInstructor.String(),
	})

	_, err := svc.Authenticate(ctx, "stu-001", "secret123")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("凭证权限与当前身份不一致应拒绝，实际: %v", err)
	}
}

func TestAuthService_Authenticate_StudentInstructor(t *testing.T) {
	svc, repo, _ := setupTestAuthService()
	ctx := context.Background()
	repo.Students.Upsert(ctx, &model.Student{ID: "dual-001", Name: "李四"})
	repo.Instructors.Upsert(ctx, &model.Instructor{ID: "dual-001", Name: "李四"})
	repo.Credentials.Upsert(ctx, &model.Credential{
		UserID:          "dual-001",
		PasswordHash:    HashPassword("secret123"),
		PermissionLevel: model.PermissionStudentInstructor.String(),
	})

	perm, err := svc.Authenticate(ctx, "dual-001", "secret123")
	if err != nil {
		t.Fatalf("认证应成功: %v", err)
	}
	if perm != model.PermissionStudentInstructor {
		t.Errorf("学生+教师双身份期望 student_instructor，实际=%s", perm)
	}
}

// ── Login / Logout / Refresh 测试 ──

func TestAuthService_Login_Success(t *testing.T) {
	svc, repo, _ := setupTestAuthService()
	seedStudentWithCredentials(repo, "stu-001", "张三", "secret123")

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		UserID: "stu-001", Password: "secret123",
	})
	if err != nil {
		t.Fatalf("登录应成功: %v", err)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Error("登录响应应包含 Token 对")
	}
	if resp.User.Name != "张三" || resp.User.Permission != "student" {
		t.Errorf("用户信息不正确: %+v", resp.User)
	}
}

func TestAuthService_Logout_BlacklistsToken(t *testing.T) {
	svc, repo, blacklist := setupTestAuthService()
	seedStudentWithCredentials(repo, "stu-001", "张三", "secret123")
	ctx := context.Background()

	resp, err := svc.Login(ctx, &dto.LoginRequest{UserID: "stu-001", Password: "secret123"})
	if err != nil {
		t.Fatalf("登录应成功: %v", err)
	}
	if err := svc.Logout(ctx, resp.AccessToken); err != nil {
		t.Fatalf("登出应成功: %v", err)
	}
	if len(blacklist.jtis) != 1 {
		t.Errorf("登出后黑名单应有 1 条记录，实际=%d", len(blacklist.jtis))
	}
}

func TestAuthService_RefreshToken_RotatesTokens(t *testing.T) {
	svc, repo, _ := setupTestAuthService()
	seedStudentWithCredentials(repo, "stu-001", "张三", "secret123")
	ctx := context.Background()

	login, err := svc.Login(ctx, &dto.LoginRequest{UserID: "stu-001", Password: "secret123"})
	if err != nil {
		t.Fatalf("登录应成功: %v", err)
	}

	refreshed, err := svc.RefreshToken(ctx, login.RefreshToken)
	if err != nil {
		t.Fatalf("刷新应成功: %v", err)
	}
	if refreshed.AccessToken == "" {
		t.Error("刷新后应得到新的 AccessToken")
	}

	// 旧 Refresh Token 一次性使用
	if _, err := svc.RefreshToken(ctx, login.RefreshToken); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("重放旧 Refresh Token 应失败，实际: %v", err)
	}
}

func TestAuthService_RefreshToken_RejectsAccessToken(t *testing.T) {
	svc, repo, _ := setupTestAuthService()
	seedStudentWithCredentials(repo, "stu-001", "张三", "secret123")
	ctx := context.Background()

	login, _ := svc.Login(ctx, &dto.LoginRequest{UserID: "stu-001", Password: "secret123"})
	if _, err := svc.RefreshToken(ctx, login.AccessToken); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("用 AccessToken 刷新应失败，实际: %v", err)
	}
}

// ── SetPassword / ResetPassword 测试 ──

func TestAuthService_SetPassword_RewritesPermissionLevel(t *testing.T) {
	svc, repo, _ := setupTestAuthService()
	ctx := context.Background()
	repo.Students.Upsert(ctx, &model.Student{ID: "stu-001", Name: "张三"})

	if err := svc.SetPassword(ctx, "stu-001", "newsecret1"); err != nil {
		t.Fatalf("设置密码应成功: %v", err)
	}

	cred, err := repo.Credentials.GetByUserID(ctx, "stu-001")
	if err != nil {
		t.Fatalf("凭证应已写入: %v", err)
	}
	if cred.PasswordHash != HashPassword("newsecret1") {
		t.Error("密码散列不正确")
	}
	if cred.PermissionLevel != "student" {
		t.Errorf("权限级别应重新推导为 student，实际=%s", cred.PermissionLevel)
	}
}

func TestAuthService_SetPassword_UnknownUser(t *testing.T) {
	svc, _, _ := setupTestAuthService()

	if err := svc.SetPassword(context.Background(), "nobody", "secret123"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("期望 ErrUserNotFound，实际: %v", err)
	}
}

func TestAuthService_ResetPassword_EmailCaseInsensitive(t *testing.T) {
	svc, repo, _ := setupTestAuthService()
	ctx := context.Background()
	repo.Students.Upsert(ctx, &model.Student{ID: "stu-001", Name: "张三"})
	repo.Contacts.Upsert(ctx, &model.Contact{
		UserID: "stu-001", Email: "Zhang.San@Example.com", Phone: "13800000000",
	})

	err := svc.ResetPassword(ctx, &dto.ResetPasswordRequest{
		Email: "zhang.san@example.com", Phone: "13800000000", NewPassword: "freshpass1",
	})
	if err != nil {
		t.Fatalf("邮箱大小写不同仍应匹配: %v", err)
	}

	cred, _ := repo.Credentials.GetByUserID(ctx, "stu-001")
	if cred == nil || cred.PasswordHash != HashPassword("freshpass1") {
		t.Error("重置后密码散列应更新")
	}
}

func TestAuthService_ResetPassword_PhoneMismatch(t *testing.T) {
	svc, repo, _ := setupTestAuthService()
	ctx := context.Background()
	repo.Students.Upsert(ctx, &model.Student{ID: "stu-001", Name: "张三"})
	repo.Contacts.Upsert(ctx, &model.Contact{
		UserID: "stu-001", Email: "zhang.san@example.com", Phone: "13800000000",
	})

	err := svc.ResetPassword(ctx, &dto.ResetPasswordRequest{
		Email: "zhang.san@example.com", Phone: "13911111111", NewPassword: "freshpass1",
	})
	if !errors.Is(err, ErrContactMismatch) {
		t.Errorf("手机号不一致应返回 ErrContactMismatch，实际: %v", err)
	}
}

func TestAuthService_ResetPassword_UnknownEmail(t *testing.T) {
	svc, _, _ := setupTestAuthService()

	err := svc.ResetPassword(context.Background(), &dto.ResetPasswordRequest{
		Email: "nobody@example.com", Phone: "13800000000", NewPassword: "freshpass1",
	})
	if !errors.Is(err, ErrContactMismatch) {
		t.Errorf("未知邮箱应返回 ErrContactMismatch，实际: %v", err)
	}
}
