package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mautops/employee-gin/internal/model"
)

// gin context 中保存认证信息的键
const (
	ContextAccountID = "account_id"
	ContextEmail     = "email"
	ContextFullName  = "full_name"
	ContextRole      = "role"
)

// Middleware JWT 认证中间件
// 解析 Bearer Token,把账户身份写入 gin context
func Middleware(issuer *TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":    http.StatusUnauthorized,
				"message": "missing authorization header",
			})
			return
		}

		// 兼容带 Bearer 前缀和裸 Token 两种格式
		tokenString := authHeader
		if parts := strings.SplitN(authHeader, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			tokenString = parts[1]
		}

		claims, err := issuer.Validate(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":    http.StatusUnauthorized,
				"message": "invalid or expired token",
				"detail":  err.Error(),
			})
			return
		}

		c.Set(ContextAccountID, claims.AccountID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextFullName, claims.FullName)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}

// RequireRole 角色校验中间件,必须挂在 Middleware 之后
func RequireRole(roles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleString := c.GetString(ContextRole)
		role, err := model.ParseRole(roleString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"code":    http.StatusForbidden,
				"message": "unknown role",
			})
			return
		}

		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"code":    http.StatusForbidden,
			"message": "insufficient permissions",
		})
	}
}

// AccountIDFromContext 从 gin context 读取账户 ID
func AccountIDFromContext(c *gin.Context) (uint, bool) {
	value, exists := c.Get(ContextAccountID)
	if !exists {
		return 0, false
	}
	id, ok := value.(uint)
	return id, ok
}
