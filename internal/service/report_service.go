package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/mautops/employee-gin/internal/model"
	"github.com/mautops/employee-gin/internal/repository"
	"gorm.io/gorm"
)

// ReportService 报告台账的查询与删除接口
// 状态迁移走 WorkflowService,这里只提供读取面与管理员删除
type ReportService interface {
	Get(id uint) (*model.Report, error)
	ListForEmployee(employeeID uint) ([]*model.Report, error)
	ListForAccount(accountID uint) ([]*model.Report, error)
	ListAll() ([]*ReportView, error)
	CountByStatus(employeeID uint) (*repository.StatusCounts, error)
	Delete(id uint) error
}

// ReportView 管理员审核列表的报告视图,带冗余的员工姓名
type ReportView struct {
	ID           uint       `json:"id"`
	EmployeeID   uint       `json:"employeeId"`
	EmployeeName string     `json:"employeeName"`
	Title        string     `json:"title"`
	Type         string     `json:"type"`
	Content      string     `json:"content"`
	DocumentRef  string     `json:"documentRef,omitempty"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"createdAt"`
	ReviewedAt   *time.Time `json:"reviewedAt,omitempty"`
	ReviewerName *string    `json:"reviewerName,omitempty"`
	Remarks      *string    `json:"remarks,omitempty"`
}

// reportService 报告台账实现
type reportService struct {
	reportRepo   repository.ReportRepository
	employeeRepo repository.EmployeeRepository
}

// NewReportService 创建报告台账服务
func NewReportService(reportRepo repository.ReportRepository, employeeRepo repository.EmployeeRepository) ReportService {
	return &reportService{
		reportRepo:   reportRepo,
		employeeRepo: employeeRepo,
	}
}

// Get 根据 ID 获取报告
func (s *reportService) Get(id uint) (*model.Report, error) {
	report, err := s.reportRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to load report: %w", err)
	}
	return report, nil
}

// ListForEmployee 列出员工的报告,按创建时间倒序
func (s *reportService) ListForEmployee(employeeID uint) ([]*model.Report, error) {
	return s.reportRepo.FindByEmployeeID(employeeID)
}

// ListForAccount 按账户 ID 列出本人的报告
func (s *reportService) ListForAccount(accountID uint) ([]*model.Report, error) {
	employee, err := s.employeeRepo.FindByAccountID(accountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoLinkedEmployee
		}
		return nil, fmt.Errorf("failed to resolve employee: %w", err)
	}
	return s.reportRepo.FindByEmployeeID(employee.ID)
}

// ListAll 管理员审核列表:全部报告,带员工姓名
func (s *reportService) ListAll() ([]*ReportView, error) {
	rows, err := s.reportRepo.FindAllWithEmployee()
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}

	views := make([]*ReportView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &ReportView{
			ID:           row.ID,
			EmployeeID:   row.EmployeeID,
			EmployeeName: row.EmployeeName,
			Title:        row.Title,
			Type:         row.Type,
			Content:      row.Content,
			DocumentRef:  row.DocumentRef,
			Status:       row.Status,
			CreatedAt:    row.CreatedAt,
			ReviewedAt:   row.ReviewedAt,
			ReviewerName: row.ReviewerName,
			Remarks:      row.Remarks,
		})
	}
	return views, nil
}

// CountByStatus 员工报告的状态聚合
func (s *reportService) CountByStatus(employeeID uint) (*repository.StatusCounts, error) {
	return s.reportRepo.CountByStatus(employeeID)
}

// Delete 管理员删除报告,重复删除返回 ErrReportNotFound
func (s *reportService) Delete(id uint) error {
	if err := s.reportRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReportNotFound
		}
		return fmt.Errorf("failed to delete report: %w", err)
	}
	return nil
}
