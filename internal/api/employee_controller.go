package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mautops/employee-gin/internal/auth"
	"github.com/mautops/employee-gin/internal/service"
)

// EmployeeController 员工目录控制器
type EmployeeController struct {
	employeeService service.EmployeeService
	workflowService service.WorkflowService
}

// NewEmployeeController 创建员工目录控制器
func NewEmployeeController(employeeService service.EmployeeService, workflowService service.WorkflowService) *EmployeeController {
	return &EmployeeController{
		employeeService: employeeService,
		workflowService: workflowService,
	}
}

// List 获取员工列表
// @Summary      获取员工列表
// @Tags         员工管理
// @Produce      json
// @Success      200  {object}  Response
// @Router       /employees [get]
// @Security     BearerAuth
func (c *EmployeeController) List(ctx *gin.Context) {
	employees, err := c.employeeService.ListAll()
	if err != nil {
		ServiceError(ctx, err)
		return
	}

	Success(ctx, employees)
}

// Create 管理员直接录入员工
// @Summary      录入员工
// @Description  创建已审批账户及关联员工,不经过审批队列
// @Tags         员工管理
// @Accept       json
// @Produce      json
// @Param        request body service.ProvisionEmployeeRequest true "员工信息"
// @Success      200  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /employees [post]
// @Security     BearerAuth
func (c *EmployeeController) Create(ctx *gin.Context) {
	var req service.ProvisionEmployeeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		Error(ctx, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	employee, err := c.workflowService.AdminProvisionEmployee(requestContext(ctx), &req)
	if err != nil {
		ServiceError(ctx, err)
		return
	}

	Success(ctx, employee)
}

// Get 获取员工详情
// @Summary      获取员工详情
// @Tags         员工管理
// @Produce      json
// @Param        id path int true "员工 ID"
// @Success      200  {object}  Response
// @Failure      404  {object}  ErrorResponse
// @Router       /employees/{id} [get]
// @Security     BearerAuth
func (c *EmployeeController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	employee, err := c.employeeService.GetByID(id)
	if err != nil {
		ServiceError(ctx, err)
		return
	}

	Success(ctx, employee)
}

// Update 更新员工信息
// @Summary      更新员工信息
// @Description  按补丁更新,缺省字段保持不变
// @Tags         员工管理
// @Accept       json
// @Produce      json
// @Param        id path int true "员工 ID"
// @Param        request body service.EmployeePatch true "更新内容"
// @Success      200  {object}  Response
// @Failure      404  {object}  ErrorResponse
// @Router       /employees/{id} [put]
// @Security     BearerAuth
func (c *EmployeeController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var patch service.EmployeePatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		Error(ctx, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	employee, err := c.employeeService.Update(requestContext(ctx), id, &patch)
	if err != nil {
		ServiceError(ctx, err)
		return
	}

	Success(ctx, employee)
}

// Delete 删除员工
// @Summary      删除员工
// @Description  级联删除员工的报告与关联账户
// @Tags         员工管理
// @Produce      json
// @Param        id path int true "员工 ID"
// @Success      200  {object}  Response
// @Failure      404  {object}  ErrorResponse
// @Router       /employees/{id} [delete]
// @Security     BearerAuth
func (c *EmployeeController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.employeeService.Delete(requestContext(ctx), id); err != nil {
		ServiceError(ctx, err)
		return
	}

	Success(ctx, gin.H{"message": "employee deleted"})
}

// ResetPassword 重置员工密码
// @Summary      重置员工密码
// @Description  生成一次性新密码并仅在响应中返回一次
// @Tags         员工管理
// @Produce      json
// @Param        id path int true "员工 ID"
// @Success      200  {object}  Response
// @Failure      404  {object}  ErrorResponse
// @Router       /employees/{id}/reset-password [post]
// @Security     BearerAuth
func (c *EmployeeController) ResetPassword(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	password, err := c.employeeService.ResetPassword(requestContext(ctx), id)
	if err != nil {
		ServiceError(ctx, err)
		return
	}

	Success(ctx, gin.H{"password": password})
}

// ListByDepartment 按部门获取员工
// @Summary      按部门获取员工
// @Tags         员工管理
// @Produce      json
// @Param        name path string true "部门名称"
// @Success      200  {object}  Response
// @Router       /employees/by-department/{name} [get]
// @Security     BearerAuth
func (c *EmployeeController) ListByDepartment(ctx *gin.Context) {
	name := ctx.Param("name")

	employees, err := c.employeeService.ListByDepartment(name)
	if err != nil {
		ServiceError(ctx, err)
		return
	}

	Success(ctx, employees)
}

// Me 获取当前员工信息
// @Summary      获取当前员工信息
// @Tags         员工自助
// @Produce      json
// @Success      200  {object}  Response
// @Failure      404  {object}  ErrorResponse
// @Router       /employees/me [get]
// @Security     BearerAuth
func (c *EmployeeController) Me(ctx *gin.Context) {
	accountID, ok := auth.AccountIDFromContext(ctx)
	if !ok {
		Error(ctx, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	employee, err := c.employeeService.GetByAccountID(accountID)
	if err != nil {
		ServiceError(ctx, err)
		return
	}

	Success(ctx, employee)
}

// UpdateMe 更新当前员工信息
// @Summary      更新当前员工信息
// @Tags         员工自助
// @Accept       json
// @Produce      json
// @Param        request body service.EmployeePatch true "更新内容"
// @Success      200  {object}  Response
// @Failure      404  {object}  ErrorResponse
// @Router       /employees/me [put]
// @Security     BearerAuth
func (c *EmployeeController) UpdateMe(ctx *gin.Context) {
	accountID, ok := auth.AccountIDFromContext(ctx)
	if !ok {
		Error(ctx, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	var patch service.EmployeePatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		Error(ctx, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	employee, err := c.employeeService.UpdateOwnProfile(requestContext(ctx), accountID, &patch)
	if err != nil {
		ServiceError(ctx, err)
		return
	}

	Success(ctx, employee)
}
