package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mautops/employee-gin/internal/auth"
	"github.com/mautops/employee-gin/internal/service"
)

// AccountController 账户控制器,覆盖注册、登录与审批入口
type AccountController struct {
	accountService  service.AccountService
	workflowService service.WorkflowService
}

// NewAccountController 创建账户控制器
func NewAccountController(accountService service.AccountService, workflowService service.WorkflowService) *AccountController {
	return &AccountController{
		accountService:  accountService,
		workflowService: workflowService,
	}
}

// Register 注册账户
// @Summary      注册账户
// @Description  注册新账户,员工账户进入待审批队列
// @Tags         认证
// @Accept       json
// @Produce      json
// @Param        request body service.RegisterRequest true "注册信息"
// @Success      200  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /auth/register [post]
func (c *AccountController) Register(ctx *gin.Context) {
	var req service.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		Error(ctx, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	result, err := c.accountService.Register(requestContext(ctx), &req)
	if err != nil {
		ServiceError(ctx, err)
		return
	}

	Success(ctx, result)
}

// loginRequest 登录请求
type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login 登录
// @Summary      登录
// @Description  邮箱密码登录,返回 JWT
// @Tags         认证
// @Accept       json
// @Produce      json
// @Param        request body loginRequest true "登录信息"
// @Success      200  {object}  Response
// @Failure      401  {object}  ErrorResponse
// @Router       /auth/login [post]
func (c *AccountController) Login(ctx *gin.Context) {
	var req loginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		Error(ctx, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	result, err := c.accountService.Authenticate(requestContext(ctx), req.Email, req.Password)
	if err != nil {
		ServiceError(ctx, err)
		return
	}

	Success(ctx, result)
}

// resetPasswordRequest 重置密码请求
type resetPasswordRequest struct {
	Email       string `json:"email" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

// ResetPassword 重置密码
// @Summary      重置密码
// @Tags         认证
// @Accept       json
// @Produce      json
// @Param        request body resetPasswordRequest true "重置信息"
// @Success      200  {object}  Response
// @Failure      404  {object}  ErrorResponse
// @Router       /auth/reset-password [post]
func (c *AccountController) ResetPassword(ctx *gin.Context) {
	var req resetPasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		Error(ctx, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	if err := c.accountService.ResetPassword(requestContext(ctx), req.Email, req.NewPassword); err != nil {
		ServiceError(ctx, err)
		return
	}

	Success(ctx, gin.H{"message": "password updated"})
}

// Profile 获取当前账户信息
// @Summary      获取当前账户信息
// @Tags         认证
// @Produce      json
// @Success      200  {object}  Response
// @Failure      401  {object}  ErrorResponse
// @Router       /auth/profile [get]
// @Security     BearerAuth
func (c *AccountController) Profile(ctx *gin.Context) {
	accountID, ok := auth.AccountIDFromContext(ctx)
	if !ok {
		Error(ctx, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	view, err := c.accountService.Profile(accountID)
	if err != nil {
		ServiceError(ctx, err)
		return
	}

	Success(ctx, view)
}

// ListPending 获取待审批账户列表
// @Summary      获取待审批账户
// @Description  按申请时间升序返回未审批的员工账户
// @Tags         账户审批
// @Produce      json
// @Success      200  {object}  Response
// @Router       /accounts/pending [get]
// @Security     BearerAuth
func (c *AccountController) ListPending(ctx *gin.Context) {
	accounts, err := c.accountService.ListPending()
	if err != nil {
		ServiceError(ctx, err)
		return
	}

	Success(ctx, accounts)
}

// Approve 审批通过账户
// @Summary      审批通过账户
// @Description  通过账户申请并原子地创建关联员工
// @Tags         账户审批
// @Accept       json
// @Produce      json
// @Param        id path int true "账户 ID"
// @Param        request body service.ApproveAccountRequest true "审批信息"
// @Success      200  {object}  Response
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /accounts/{id}/approve [post]
// @Security     BearerAuth
func (c *AccountController) Approve(ctx *gin.Context) {
	accountID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req service.ApproveAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		Error(ctx, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	employee, err := c.workflowService.Approve(requestContext(ctx), accountID, &req)
	if err != nil {
		ServiceError(ctx, err)
		return
	}

	Success(ctx, employee)
}

// Reject 驳回账户申请
// @Summary      驳回账户申请
// @Description  删除未审批的账户,已审批账户不可驳回
// @Tags         账户审批
// @Produce      json
// @Param        id path int true "账户 ID"
// @Success      200  {object}  Response
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /accounts/{id}/reject [post]
// @Security     BearerAuth
func (c *AccountController) Reject(ctx *gin.Context) {
	accountID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.workflowService.Reject(requestContext(ctx), accountID); err != nil {
		ServiceError(ctx, err)
		return
	}

	Success(ctx, gin.H{"message": "account rejected"})
}
