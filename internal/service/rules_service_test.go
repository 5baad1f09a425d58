package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/MohdZaid0205/enterprise-resource-planning/internal/repository"
)

func setupTestRulesService() (RulesService, *repository.Repository) {
	repo := newTestRepo()
	svc := NewRulesService(repo, zap.NewNop())
	return svc, repo
}

func TestRulesService_Get_DefaultsWhenUnset(t *testing.T) {
	svc, _ := setupTestRulesService()
	ctx := context.Background()

	semester, err := svc.Get(ctx, RuleCurrentSemester)
	if err != nil {
		t.Fatalf("读取应成功: %v", err)
	}
	if semester.Value != "FALL_2025" {
		t.Errorf("当前学期默认值应为 FALL_2025，实际=%s", semester.Value)
	}

	maintenance, _ := svc.Get(ctx, RuleMaintenanceMode)
	if maintenance.Value != "false" {
		t.Errorf("维护模式默认值应为 false，实际=%s", maintenance.Value)
	}
}

func TestRulesService_SetThenGet(t *testing.T) {
	svc, _ := setupTestRulesService()
	ctx := context.Background()

	if err := svc.Set(ctx, RuleCurrentSemester, "SPRING_2026"); err != nil {
		t.Fatalf("写入应成功: %v", err)
	}
	rule, _ := svc.Get(ctx, RuleCurrentSemester)
	if rule.Value != "SPRING_2026" {
		t.Errorf("写入后应读到新值，实际=%s", rule.Value)
	}
}

func TestRulesService_UnknownKey(t *testing.T) {
	svc, _ := setupTestRulesService()
	ctx := context.Background()

	if _, err := svc.Get(ctx, "grading_curve"); !errors.Is(err, ErrUnknownRule) {
		t.Errorf("读取未知键应返回 ErrUnknownRule，实际: %v", err)
	}
	if err := svc.Set(ctx, "grading_curve", "on"); !errors.Is(err, ErrUnknownRule) {
		t.Errorf("写入未知键应返回 ErrUnknownRule，实际: %v", err)
	}
}

func TestRulesService_List_MergesStoredAndDefaults(t *testing.T) {
	svc, _ := setupTestRulesService()
	ctx := context.Background()
	svc.Set(ctx, RuleAddDropDeadline, "2025-09-15")

	rules, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("列表应成功: %v", err)
	}
	if len(rules) != 3 {
		t.Fatalf("期望 3 个参数，实际=%d", len(rules))
	}

	values := make(map[string]string, len(rules))
	for _, r := range rules {
		values[r.Key] = r.Value
	}
	if values[RuleAddDropDeadline] != "2025-09-15" {
		t.Errorf("落库值应覆盖默认值，实际=%s", values[RuleAddDropDeadline])
	}
	if values[RuleCurrentSemester] != "FALL_2025" {
		t.Errorf("未落库键应保持默认值，实际=%s", values[RuleCurrentSemester])
	}
}
