package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mautops/employee-gin/internal/service"
)

// ContactController 联系留言控制器
type ContactController struct {
	contactService service.ContactService
}

// NewContactController 创建联系留言控制器
func NewContactController(contactService service.ContactService) *ContactController {
	return &ContactController{contactService: contactService}
}

// Submit 提交留言
// @Summary      提交留言
// @Description  公开入口,无需认证
// @Tags         联系我们
// @Accept       json
// @Produce      json
// @Param        request body service.ContactRequest true "留言内容"
// @Success      200  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Router       /contact [post]
func (c *ContactController) Submit(ctx *gin.Context) {
	var req service.ContactRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		Error(ctx, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	message, err := c.contactService.Submit(&req)
	if err != nil {
		ServiceError(ctx, err)
		return
	}

	Success(ctx, message)
}

// List 获取留言列表
// @Summary      获取留言列表
// @Tags         联系我们
// @Produce      json
// @Success      200  {object}  Response
// @Router       /contact [get]
// @Security     BearerAuth
func (c *ContactController) List(ctx *gin.Context) {
	messages, err := c.contactService.List()
	if err != nil {
		ServiceError(ctx, err)
		return
	}

	Success(ctx, messages)
}
