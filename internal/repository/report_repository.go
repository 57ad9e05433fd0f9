package repository

import (
	"github.com/mautops/employee-gin/internal/model"
	"gorm.io/gorm"
)

// ReportRepository 报告仓储接口
type ReportRepository interface {
	WithTx(tx *gorm.DB) ReportRepository
	Create(report *model.Report) error
	Save(report *model.Report) error
	FindByID(id uint) (*model.Report, error)
	FindByEmployeeID(employeeID uint) ([]*model.Report, error)
	FindAllWithEmployee() ([]*ReportWithEmployee, error)
	CountByStatus(employeeID uint) (*StatusCounts, error)
	Delete(id uint) error
	DeleteByEmployeeID(employeeID uint) error
}

// ReportWithEmployee 报告与冗余的员工姓名,供管理员审核列表使用
type ReportWithEmployee struct {
	model.Report
	EmployeeName string
}

// StatusCounts 报告状态聚合
type StatusCounts struct {
	Total    int64 `json:"total"`
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
}

// reportRepository 报告仓储实现
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository 创建报告仓储
func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

// WithTx 返回绑定到事务的仓储
func (r *reportRepository) WithTx(tx *gorm.DB) ReportRepository {
	return &reportRepository{db: tx}
}

// Create 新建报告
func (r *reportRepository) Create(report *model.Report) error {
	return r.db.Create(report).Error
}

// Save 保存报告
func (r *reportRepository) Save(report *model.Report) error {
	return r.db.Save(report).Error
}

// FindByID 根据 ID 查找报告
func (r *reportRepository) FindByID(id uint) (*model.Report, error) {
	var report model.Report
	if err := r.db.Where("id = ?", id).First(&report).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

// FindByEmployeeID 查找员工的全部报告,按创建时间倒序
func (r *reportRepository) FindByEmployeeID(employeeID uint) ([]*model.Report, error) {
	var reports []*model.Report
	err := r.db.Where("employee_id = ?", employeeID).
		Order("created_at DESC").
		Find(&reports).Error
	return reports, err
}

// FindAllWithEmployee 查找所有报告并关联员工姓名
func (r *reportRepository) FindAllWithEmployee() ([]*ReportWithEmployee, error) {
	var rows []*ReportWithEmployee
	err := r.db.Model(&model.Report{}).
		Select("reports.*, employees.full_name AS employee_name").
		Joins("JOIN employees ON employees.id = reports.employee_id").
		Order("reports.created_at DESC").
		Find(&rows).Error
	return rows, err
}

// CountByStatus 聚合员工的报告状态计数
// 数据量小,读时计算即可,不做缓存
func (r *reportRepository) CountByStatus(employeeID uint) (*StatusCounts, error) {
	type row struct {
		Status string
		Count  int64
	}
	var rows []row
	err := r.db.Model(&model.Report{}).
		Select("status, COUNT(*) AS count").
		Where("employee_id = ?", employeeID).
		Group("status").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := &StatusCounts{}
	for _, row := range rows {
		counts.Total += row.Count
		switch row.Status {
		case model.ReportStatusPending:
			counts.Pending = row.Count
		case model.ReportStatusApproved:
			counts.Approved = row.Count
		case model.ReportStatusRejected:
			counts.Rejected = row.Count
		}
	}
	return counts, nil
}

// Delete 硬删除报告
func (r *reportRepository) Delete(id uint) error {
	result := r.db.Delete(&model.Report{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteByEmployeeID 删除员工名下的全部报告(员工删除级联用)
func (r *reportRepository) DeleteByEmployeeID(employeeID uint) error {
	return r.db.Where("employee_id = ?", employeeID).Delete(&model.Report{}).Error
}
