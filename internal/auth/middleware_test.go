package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mautops/employee-gin/internal/auth"
	"github.com/mautops/employee-gin/internal/model"
)

// newProtectedRouter 构造带认证与角色中间件的测试路由
func newProtectedRouter(issuer *auth.TokenIssuer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	protected := router.Group("/", auth.Middleware(issuer))
	protected.GET("/whoami", func(c *gin.Context) {
		id, _ := auth.AccountIDFromContext(c)
		c.JSON(http.StatusOK, gin.H{"id": id})
	})
	protected.GET("/admin", auth.RequireRole(model.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	return router
}

// TestMiddleware_ValidToken 测试合法 Token 放行并注入身份
func TestMiddleware_ValidToken(t *testing.T) {
	issuer := auth.NewTokenIssuer("secret", "employee-gin", time.Hour)
	router := newProtectedRouter(issuer)

	token, err := issuer.Issue(&model.Account{ID: 7, Email: "a@b.com", FullName: "A", Role: model.RoleEmployee})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":7`)
}

// TestMiddleware_MissingHeader 测试缺失认证头
func TestMiddleware_MissingHeader(t *testing.T) {
	issuer := auth.NewTokenIssuer("secret", "employee-gin", time.Hour)
	router := newProtectedRouter(issuer)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// TestMiddleware_BadToken 测试伪造 Token
func TestMiddleware_BadToken(t *testing.T) {
	issuer := auth.NewTokenIssuer("secret", "employee-gin", time.Hour)
	router := newProtectedRouter(issuer)

	forger := auth.NewTokenIssuer("other-secret", "employee-gin", time.Hour)
	token, err := forger.Issue(&model.Account{ID: 7, Role: model.RoleAdmin})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// TestRequireRole_Enforced 测试角色门禁
func TestRequireRole_Enforced(t *testing.T) {
	issuer := auth.NewTokenIssuer("secret", "employee-gin", time.Hour)
	router := newProtectedRouter(issuer)

	employeeToken, err := issuer.Issue(&model.Account{ID: 1, Role: model.RoleEmployee})
	require.NoError(t, err)
	adminToken, err := issuer.Issue(&model.Account{ID: 2, Role: model.RoleAdmin})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+employeeToken)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
