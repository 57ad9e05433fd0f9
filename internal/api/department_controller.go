package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mautops/employee-gin/internal/service"
)

// DepartmentController 部门目录控制器
type DepartmentController struct {
	departmentService service.DepartmentService
}

// NewDepartmentController 创建部门目录控制器
func NewDepartmentController(departmentService service.DepartmentService) *DepartmentController {
	return &DepartmentController{departmentService: departmentService}
}

// List 获取部门列表
// @Summary      获取部门列表
// @Tags         部门管理
// @Produce      json
// @Success      200  {object}  Response
// @Router       /departments [get]
// @Security     BearerAuth
func (c *DepartmentController) List(ctx *gin.Context) {
	departments, err := c.departmentService.List()
	if err != nil {
		ServiceError(ctx, err)
		return
	}

	Success(ctx, departments)
}

// createDepartmentRequest 创建部门请求
type createDepartmentRequest struct {
	Name string `json:"name" binding:"required"`
}

// Create 创建部门
// @Summary      创建部门
// @Tags         部门管理
// @Accept       json
// @Produce      json
// @Param        request body createDepartmentRequest true "部门信息"
// @Success      200  {object}  Response
// @Failure      409  {object}  ErrorResponse
// @Router       /departments [post]
// @Security     BearerAuth
func (c *DepartmentController) Create(ctx *gin.Context) {
	var req createDepartmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		Error(ctx, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	department, err := c.departmentService.Create(req.Name)
	if err != nil {
		ServiceError(ctx, err)
		return
	}

	Success(ctx, department)
}

// Delete 删除部门
// @Summary      删除部门
// @Description  仅删除目录条目,不影响既有员工
// @Tags         部门管理
// @Produce      json
// @Param        id path int true "部门 ID"
// @Success      200  {object}  Response
// @Failure      404  {object}  ErrorResponse
// @Router       /departments/{id} [delete]
// @Security     BearerAuth
func (c *DepartmentController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.departmentService.Delete(id); err != nil {
		ServiceError(ctx, err)
		return
	}

	Success(ctx, gin.H{"message": "department deleted"})
}
