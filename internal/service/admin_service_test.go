package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/MohdZaid0205/enterprise-resource-planning/internal/dto"
	"github.com/MohdZaid0205/enterprise-resource-planning/internal/model"
	"github.com/MohdZaid0205/enterprise-resource-planning/internal/repository"
)

func setupTestAdminService() (AdminService, *repository.Repository) {
	repo := newTestRepo()
	sections := NewSectionService(repo, zap.NewNop())
	svc := NewAdminService(repo, sections, zap.NewNop())
	return svc, repo
}

func TestAdminService_Save_WritesAdminCredential(t *testing.T) {
	svc, repo := setupTestAdminService()
	ctx := context.Background()

	err := svc.Save(ctx, &dto.SaveAdminRequest{
		ID: "adm-001", Name: "管理员", Email: "admin@example.com", Password: "secret123",
	})
	if err != nil {
		t.Fatalf("保存应成功: %v", err)
	}

	cred, err := repo.Credentials.GetByUserID(ctx, "adm-001")
	if err != nil {
		t.Fatal("凭证应已写入")
	}
	if cred.PermissionLevel != "admin" {
		t.Errorf("权限级别应为 admin，实际=%s", cred.PermissionLevel)
	}
}

func TestAdminService_OverrideStudentGrade_NoAssignmentNeeded(t *testing.T) {
	svc, repo := setupTestAdminService()
	ctx := context.Background()
	repo.Courses.Upsert(ctx, &model.Course{ID: "crs-001", Title: "算法", Credits: 4, Capacity: 60})
	repo.Sections.Upsert(ctx, &model.Section{
		ID: "sec-001", Name: "算法 A 班", CourseID: "crs-001", Semester: "FALL_2025", Capacity: 40,
	})

	// 管理员无需授课分配即可改写
	err := svc.OverrideStudentGrade(ctx, &dto.OverrideGradeRequest{
		StudentID: "stu-001", SectionID: "sec-001", Scores: dto.GradeScores{EndExam: 24},
	})
	if err != nil {
		t.Fatalf("管理员改写成绩应成功: %v", err)
	}

	record, err := repo.Records.Get(ctx, "stu-001", "sec-001")
	if err != nil || record.EndExam != 24 {
		t.Errorf("成绩应已改写，实际: %+v, err=%v", record, err)
	}
}

func TestAdminService_OverrideStudentGrade_UnknownSection(t *testing.T) {
	svc, _ := setupTestAdminService()

	err := svc.OverrideStudentGrade(context.Background(), &dto.OverrideGradeRequest{
		StudentID: "stu-001", SectionID: "sec-404", Scores: dto.GradeScores{EndExam: 24},
	})
	if !errors.Is(err, ErrSectionNotFound) {
		t.Errorf("期望 ErrSectionNotFound，实际: %v", err)
	}
}

func TestAdminService_GetByID_NotFound(t *testing.T) {
	svc, _ := setupTestAdminService()

	if _, err := svc.GetByID(context.Background(), "nobody"); !errors.Is(err, ErrAdminNotFound) {
		t.Errorf("期望 ErrAdminNotFound，实际: %v", err)
	}
}

func TestAdminService_Delete_RemovesSubRecords(t *testing.T) {
	svc, repo := setupTestAdminService()
	ctx := context.Background()
	svc.Save(ctx, &dto.SaveAdminRequest{ID: "adm-001", Name: "管理员", Password: "secret123"})

	if err := svc.Delete(ctx, "adm-001"); err != nil {
		t.Fatalf("删除应成功: %v", err)
	}
	if _, err := repo.Admins.GetByID(ctx, "adm-001"); err == nil {
		t.Error("身份记录应被删除")
	}
	if _, err := repo.Credentials.GetByUserID(ctx, "adm-001"); err == nil {
		t.Error("凭证应被删除")
	}
}
