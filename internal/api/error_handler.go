package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mautops/employee-gin/internal/service"
	"github.com/mautops/employee-gin/internal/utils"
)

// MapServiceError 将服务层错误映射为 HTTP 状态码
// 错误分类: NotFound → 404, Conflict → 409, Validation → 400,
// InvalidCredentials → 401, UpstreamFailure → 502
func MapServiceError(err error) int {
	switch {
	case errors.Is(err, service.ErrAccountNotFound),
		errors.Is(err, service.ErrEmployeeNotFound),
		errors.Is(err, service.ErrReportNotFound),
		errors.Is(err, service.ErrDepartmentNotFound):
		return http.StatusNotFound

	case errors.Is(err, service.ErrDuplicateEmail),
		errors.Is(err, service.ErrAccountAlreadyApproved),
		errors.Is(err, service.ErrDuplicateEmployee),
		errors.Is(err, service.ErrReportAlreadyReviewed),
		errors.Is(err, service.ErrDuplicateDepartment):
		return http.StatusConflict

	case errors.Is(err, service.ErrInvalidDepartment),
		errors.Is(err, service.ErrInvalidRole),
		errors.Is(err, service.ErrInvalidDecision),
		errors.Is(err, service.ErrNoLinkedEmployee):
		return http.StatusBadRequest

	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized

	case errors.Is(err, service.ErrUploadFailed):
		return http.StatusBadGateway
	}

	var validationErr *utils.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}

// ServiceError 把服务层错误写为统一的错误响应
func ServiceError(c *gin.Context, err error) {
	Error(c, MapServiceError(err), err.Error(), "")
}
