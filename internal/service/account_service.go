package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mautops/employee-gin/internal/auth"
	"github.com/mautops/employee-gin/internal/metrics"
	"github.com/mautops/employee-gin/internal/model"
	"github.com/mautops/employee-gin/internal/repository"
	"github.com/mautops/employee-gin/internal/utils"
	"gorm.io/gorm"
)

// AccountService 账户服务接口
type AccountService interface {
	Register(ctx context.Context, req *RegisterRequest) (*AuthResult, error)
	Authenticate(ctx context.Context, email string, password string) (*AuthResult, error)
	ListPending() ([]*AccountView, error)
	ResetPassword(ctx context.Context, email string, newPassword string) error
	Profile(accountID uint) (*AccountView, error)
}

// RegisterRequest 注册请求
type RegisterRequest struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

// AuthResult 认证结果:签发的 Token 与账户视图
type AuthResult struct {
	Token   string       `json:"token"`
	Role    string       `json:"role"`
	Account *AccountView `json:"account"`
}

// AccountView 账户对外视图,不含密码哈希
type AccountView struct {
	ID          uint      `json:"id"`
	FullName    string    `json:"fullName"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	IsApproved  bool      `json:"isApproved"`
	Department  *string   `json:"department,omitempty"`
	Position    *string   `json:"position,omitempty"`
	RequestedAt time.Time `json:"requestedAt"`
}

// NewAccountView 从模型构造账户视图
func NewAccountView(account *model.Account) *AccountView {
	return &AccountView{
		ID:          account.ID,
		FullName:    account.FullName,
		Email:       account.Email,
		Role:        account.Role.String(),
		IsApproved:  account.IsApproved,
		Department:  account.Department,
		Position:    account.Position,
		RequestedAt: account.RequestedAt,
	}
}

// accountService 账户服务实现
type accountService struct {
	accountRepo repository.AccountRepository
	tokenIssuer *auth.TokenIssuer
	auditLogSvc AuditLogService
}

// NewAccountService 创建账户服务
func NewAccountService(accountRepo repository.AccountRepository, tokenIssuer *auth.TokenIssuer, auditLogSvc AuditLogService) AccountService {
	return &accountService{
		accountRepo: accountRepo,
		tokenIssuer: tokenIssuer,
		auditLogSvc: auditLogSvc,
	}
}

// Register 注册账户
// 员工注册一律以未审批状态入库,与请求中携带的角色字段无关;
// 管理员自注册视为预先批准(与原有策略保持一致,见 DESIGN.md)
func (s *accountService) Register(ctx context.Context, req *RegisterRequest) (*AuthResult, error) {
	if err := utils.ValidateFullName(req.FullName); err != nil {
		return nil, err
	}
	if err := utils.ValidateEmail(req.Email); err != nil {
		return nil, err
	}
	if err := utils.ValidatePassword(req.Password); err != nil {
		return nil, err
	}

	role, err := model.ParseRole(req.Role)
	if err != nil {
		return nil, ErrInvalidRole
	}

	email := model.NormalizeEmail(req.Email)
	exists, err := s.accountRepo.ExistsByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, ErrDuplicateEmail
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &model.Account{
		FullName:     req.FullName,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		IsApproved:   role == model.RoleAdmin,
		RequestedAt:  time.Now(),
	}
	if err := s.accountRepo.Create(account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	token, err := s.tokenIssuer.Issue(account)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	// 记录业务指标
	metrics.RecordRegistration()

	// 记录审计日志
	if s.auditLogSvc != nil {
		details := map[string]interface{}{"email": account.Email, "role": account.Role}
		_ = s.auditLogSvc.RecordAction(ctx, fmt.Sprint(account.ID), "register", "account", fmt.Sprint(account.ID), details)
	}

	return &AuthResult{
		Token:   token,
		Role:    account.Role.String(),
		Account: NewAccountView(account),
	}, nil
}

// Authenticate 认证并签发 Token
// 不检查 IsApproved:未审批账户可以登录,但受保护接口会因无员工记录而拒绝
func (s *accountService) Authenticate(ctx context.Context, email string, password string) (*AuthResult, error) {
	account, err := s.accountRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}

	if !auth.CheckPassword(password, account.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokenIssuer.Issue(account)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &AuthResult{
		Token:   token,
		Role:    account.Role.String(),
		Account: NewAccountView(account),
	}, nil
}

// ListPending 列出待审批的员工账户,按申请时间升序(稳定顺序)
func (s *accountService) ListPending() ([]*AccountView, error) {
	accounts, err := s.accountRepo.FindPending()
	if err != nil {
		return nil, fmt.Errorf("failed to list pending accounts: %w", err)
	}

	views := make([]*AccountView, 0, len(accounts))
	for _, account := range accounts {
		views = append(views, NewAccountView(account))
	}
	return views, nil
}

// ResetPassword 按邮箱重置密码
func (s *accountService) ResetPassword(ctx context.Context, email string, newPassword string) error {
	if err := utils.ValidatePassword(newPassword); err != nil {
		return err
	}

	account, err := s.accountRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("failed to look up account: %w", err)
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	account.PasswordHash = hash

	if err := s.accountRepo.Save(account); err != nil {
		return fmt.Errorf("failed to save account: %w", err)
	}
	return nil
}

// Profile 获取账户视图
func (s *accountService) Profile(accountID uint) (*AccountView, error) {
	account, err := s.accountRepo.FindByID(accountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}
	return NewAccountView(account), nil
}
