package service

import "errors"

// 服务层错误分类
// 控制器通过 errors.Is 将其映射为 HTTP 状态码,错误消息原样呈现给调用方
var (
	// 资源不存在
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrReportNotFound     = errors.New("report not found")
	ErrDepartmentNotFound = errors.New("department not found")

	// 状态冲突
	ErrDuplicateEmail         = errors.New("email already exists")
	ErrAccountAlreadyApproved = errors.New("account is already approved")
	ErrDuplicateEmployee      = errors.New("account already has an employee record")
	ErrReportAlreadyReviewed  = errors.New("report has already been reviewed")
	ErrDuplicateDepartment    = errors.New("department already exists")

	// 校验失败
	ErrInvalidDepartment = errors.New("department does not exist")
	ErrInvalidRole       = errors.New("role is invalid")
	ErrInvalidDecision   = errors.New("review decision must be Approve or Reject")
	ErrNoLinkedEmployee  = errors.New("no employee linked to this account")

	// 认证失败
	ErrInvalidCredentials = errors.New("invalid credentials")

	// 上游协作方失败
	ErrUploadFailed = errors.New("document upload failed")
)
