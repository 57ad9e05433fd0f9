package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/mautops/employee-gin/internal/auth"
	"github.com/mautops/employee-gin/internal/config"
	"github.com/mautops/employee-gin/internal/metrics"
	"github.com/mautops/employee-gin/internal/model"
)

// RouterDeps 路由依赖
type RouterDeps struct {
	Config      *config.Config
	Logger      *logrus.Logger
	DB          *gorm.DB
	TokenIssuer *auth.TokenIssuer

	AccountController    *AccountController
	EmployeeController   *EmployeeController
	DepartmentController *DepartmentController
	ReportController     *ReportController
	ContactController    *ContactController

	// DocumentsDir 上传文档的静态目录,为空则不暴露静态路由
	DocumentsDir string
}

// SetupRoutes 配置路由
func SetupRoutes(deps *RouterDeps) *gin.Engine {
	if deps.Config.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	// 中间件
	router.Use(RequestIDMiddleware())
	router.Use(RequestLogMiddleware(deps.Logger))
	router.Use(SecurityHeadersMiddleware())
	router.Use(CORSMiddleware(&deps.Config.CORS))
	router.Use(RateLimitMiddleware(100, 200))

	// 健康检查
	healthController := NewHealthController(deps.DB)
	router.GET("/health", healthController.Check)

	// Prometheus 指标端点
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// 上传文档的静态访问
	if deps.DocumentsDir != "" {
		router.Static("/documents", deps.DocumentsDir)
	}

	authRequired := auth.Middleware(deps.TokenIssuer)
	adminOnly := auth.RequireRole(model.RoleAdmin)
	employeeOnly := auth.RequireRole(model.RoleEmployee)

	// API v1 路由组
	v1 := router.Group("/api/v1")
	{
		// 认证路由
		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/register", deps.AccountController.Register)
			authGroup.POST("/login", deps.AccountController.Login)
			authGroup.POST("/reset-password", deps.AccountController.ResetPassword)
			authGroup.GET("/profile", authRequired, deps.AccountController.Profile)
		}

		// 账户审批路由(管理员)
		accounts := v1.Group("/accounts", authRequired, adminOnly)
		{
			accounts.GET("/pending", deps.AccountController.ListPending)
			accounts.POST("/:id/approve", deps.AccountController.Approve)
			accounts.POST("/:id/reject", deps.AccountController.Reject)
		}

		// 员工目录路由
		employees := v1.Group("/employees", authRequired)
		{
			employees.GET("/me", deps.EmployeeController.Me)
			employees.PUT("/me", deps.EmployeeController.UpdateMe)

			employees.GET("", adminOnly, deps.EmployeeController.List)
			employees.POST("", adminOnly, deps.EmployeeController.Create)
			employees.GET("/:id", adminOnly, deps.EmployeeController.Get)
			employees.PUT("/:id", adminOnly, deps.EmployeeController.Update)
			employees.DELETE("/:id", adminOnly, deps.EmployeeController.Delete)
			employees.POST("/:id/reset-password", adminOnly, deps.EmployeeController.ResetPassword)
			employees.GET("/by-department/:name", adminOnly, deps.EmployeeController.ListByDepartment)
		}

		// 部门目录路由
		departments := v1.Group("/departments", authRequired)
		{
			departments.GET("", deps.DepartmentController.List)
			departments.POST("", adminOnly, deps.DepartmentController.Create)
			departments.DELETE("/:id", adminOnly, deps.DepartmentController.Delete)
		}

		// 报告路由
		reports := v1.Group("/reports", authRequired)
		{
			reports.POST("", employeeOnly, deps.ReportController.Submit)
			reports.GET("/my", employeeOnly, deps.ReportController.My)
			reports.GET("/stats/:employeeId", deps.ReportController.Stats)
			reports.GET("/:id/document", deps.ReportController.Document)

			reports.GET("", adminOnly, deps.ReportController.List)
			reports.PUT("/:id/review", adminOnly, deps.ReportController.Review)
			reports.DELETE("/:id", adminOnly, deps.ReportController.Delete)
		}

		// 联系留言路由
		contact := v1.Group("/contact")
		{
			contact.POST("", deps.ContactController.Submit)
			contact.GET("", authRequired, adminOnly, deps.ContactController.List)
		}
	}

	// 未匹配的路由统一返回 JSON 404
	router.NoRoute(func(c *gin.Context) {
		Error(c, http.StatusNotFound, "route not found", c.Request.URL.Path)
	})

	return router
}
