package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mautops/employee-gin/internal/auth"
)

// parseIDParam 解析路径参数中的数字 ID,无效时写出 400 响应
func parseIDParam(ctx *gin.Context, name string) (uint, bool) {
	raw := ctx.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		Error(ctx, http.StatusBadRequest, "invalid "+name, raw)
		return 0, false
	}
	return uint(id), true
}

// requestContext 构造携带操作者与请求信息的 context,供服务层审计使用
func requestContext(ctx *gin.Context) context.Context {
	rc := ctx.Request.Context()
	if fullName := ctx.GetString(auth.ContextFullName); fullName != "" {
		rc = context.WithValue(rc, "actor", fullName)
	}
	if requestID := ctx.GetString("request_id"); requestID != "" {
		rc = context.WithValue(rc, "request_id", requestID)
	}
	rc = context.WithValue(rc, "ip", ctx.ClientIP())
	return rc
}
