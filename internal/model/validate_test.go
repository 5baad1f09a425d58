package model

import (
	"errors"
	"testing"
)

func TestValidateIdentity(t *testing.T) {
	for _, bad := range []string{"", " ", "stu-001 ", " stu-001", "\tstu-001", "stu-001\n"} {
		if err := ValidateIdentity(bad); !errors.Is(err, ErrInvalidIdentity) {
			t.Errorf("标识 %q 应校验失败，实际: %v", bad, err)
		}
	}
	for _, good := range []string{"stu-001", "a", "CS F111", "张三"} {
		if err := ValidateIdentity(good); err != nil {
			t.Errorf("标识 %q 应校验通过，实际: %v", good, err)
		}
	}
}

func TestValidateName(t *testing.T) {
	if err := ValidateName("  "); !errors.Is(err, ErrInvalidName) {
		t.Errorf("空白名称应校验失败，实际: %v", err)
	}
	if err := ValidateName("数据结构与算法"); err != nil {
		t.Errorf("正常名称应校验通过，实际: %v", err)
	}
}

func TestPermissionCapabilities(t *testing.T) {
	writers := []Permission{PermissionAdmin, PermissionInstructor, PermissionStudentInstructor}
	for _, p := range writers {
		if !p.CanWriteGrades() {
			t.Errorf("%s 应具备成绩写权限", p)
		}
	}
	if PermissionStudent.CanWriteGrades() {
		t.Error("student 不应具备成绩写权限")
	}
	if !PermissionAdmin.CanManageTimetable() {
		t.Error("admin 应具备课表管理权限")
	}
	if PermissionInstructor.CanManageTimetable() {
		t.Error("instructor 不应具备课表管理权限")
	}
}
