package container

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/mautops/employee-gin/internal/auth"
	"github.com/mautops/employee-gin/internal/config"
	"github.com/mautops/employee-gin/internal/database"
	"github.com/mautops/employee-gin/internal/repository"
	"github.com/mautops/employee-gin/internal/service"
	"github.com/mautops/employee-gin/internal/storage"
)

// Container 依赖注入容器
// 按数据库 → 仓储 → 服务的顺序组装全部应用依赖
type Container struct {
	db            *gorm.DB
	tokenIssuer   *auth.TokenIssuer
	documentStore *storage.LocalDocumentStore

	accountService    service.AccountService
	workflowService   service.WorkflowService
	employeeService   service.EmployeeService
	departmentService service.DepartmentService
	reportService     service.ReportService
	contactService    service.ContactService
	auditLogService   service.AuditLogService
}

// NewContainer 创建依赖注入容器
func NewContainer(cfg *config.Config) (*Container, error) {
	// 初始化数据库(带重试,指数退避)
	db, err := database.ConnectWithRetry(cfg.Database, 3, time.Second)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// 执行数据库迁移与部门目录种子
	if err := database.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return newContainer(cfg, db)
}

// NewContainerWithDB 基于已有数据库连接创建容器(测试用)
func NewContainerWithDB(cfg *config.Config, db *gorm.DB) (*Container, error) {
	return newContainer(cfg, db)
}

func newContainer(cfg *config.Config, db *gorm.DB) (*Container, error) {
	// JWT 签发器
	tokenIssuer := auth.NewTokenIssuer(
		cfg.JWT.Secret,
		cfg.JWT.Issuer,
		time.Duration(cfg.JWT.ExpiresIn)*time.Hour,
	)

	// 本地文档存储
	documentStore, err := storage.NewLocalDocumentStore(
		cfg.Storage.UploadDir,
		cfg.Storage.BaseURL,
		cfg.Storage.MaxSizeMB,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize document store: %w", err)
	}

	// 仓储层
	accountRepo := repository.NewAccountRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	departmentRepo := repository.NewDepartmentRepository(db)
	reportRepo := repository.NewReportRepository(db)
	contactRepo := repository.NewContactRepository(db)
	auditLogRepo := repository.NewAuditLogRepository(db)

	// 服务层
	auditLogService := service.NewAuditLogService(auditLogRepo)
	accountService := service.NewAccountService(accountRepo, tokenIssuer, auditLogService)
	workflowService := service.NewWorkflowService(
		db, accountRepo, employeeRepo, departmentRepo, reportRepo, documentStore, auditLogService,
	)
	employeeService := service.NewEmployeeService(
		db, employeeRepo, accountRepo, reportRepo, departmentRepo, auditLogService,
	)
	departmentService := service.NewDepartmentService(departmentRepo)
	reportService := service.NewReportService(reportRepo, employeeRepo)
	contactService := service.NewContactService(contactRepo)

	return &Container{
		db:                db,
		tokenIssuer:       tokenIssuer,
		documentStore:     documentStore,
		accountService:    accountService,
		workflowService:   workflowService,
		employeeService:   employeeService,
		departmentService: departmentService,
		reportService:     reportService,
		contactService:    contactService,
		auditLogService:   auditLogService,
	}, nil
}

// DB 获取数据库连接
func (c *Container) DB() *gorm.DB {
	return c.db
}

// TokenIssuer 获取 JWT 签发器
func (c *Container) TokenIssuer() *auth.TokenIssuer {
	return c.tokenIssuer
}

// DocumentStore 获取文档存储
func (c *Container) DocumentStore() *storage.LocalDocumentStore {
	return c.documentStore
}

// AccountService 获取账户服务
func (c *Container) AccountService() service.AccountService {
	return c.accountService
}

// WorkflowService 获取工作流服务
func (c *Container) WorkflowService() service.WorkflowService {
	return c.workflowService
}

// EmployeeService 获取员工目录服务
func (c *Container) EmployeeService() service.EmployeeService {
	return c.employeeService
}

// DepartmentService 获取部门目录服务
func (c *Container) DepartmentService() service.DepartmentService {
	return c.departmentService
}

// ReportService 获取报告服务
func (c *Container) ReportService() service.ReportService {
	return c.reportService
}

// ContactService 获取联系留言服务
func (c *Container) ContactService() service.ContactService {
	return c.contactService
}

// AuditLogService 获取审计日志服务
func (c *Container) AuditLogService() service.AuditLogService {
	return c.auditLogService
}

// Close 关闭容器,清理资源
func (c *Container) Close() error {
	if c.db != nil {
		sqlDB, err := c.db.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
	return nil
}
