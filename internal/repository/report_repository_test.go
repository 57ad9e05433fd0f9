package repository_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mautops/employee-gin/internal/model"
	"github.com/mautops/employee-gin/internal/repository"
)

// createEmployee 插入一名测试员工及其账户
func createEmployee(t *testing.T, db *gorm.DB, fullName string, email string) *model.Employee {
	t.Helper()

	account := newAccount(email, time.Now())
	account.FullName = fullName
	account.IsApproved = true
	require.NoError(t, db.Create(account).Error)

	employee := &model.Employee{
		FullName:      fullName,
		Email:         account.Email,
		Department:    "IT",
		Position:      "Engineer",
		DateOfJoining: time.Now(),
		Role:          model.RoleEmployee,
		IsActive:      true,
		AccountID:     account.ID,
	}
	require.NoError(t, db.Create(employee).Error)
	return employee
}

// createReport 插入一条测试报告
func createReport(t *testing.T, db *gorm.DB, employeeID uint, title string, status string, createdAt time.Time) *model.Report {
	t.Helper()

	report := &model.Report{
		EmployeeID: employeeID,
		Title:      title,
		Type:       "Weekly",
		Content:    "content",
		Status:     status,
		CreatedAt:  createdAt,
	}
	if status != model.ReportStatusPending {
		now := createdAt.Add(time.Hour)
		reviewer := "Admin"
		report.ReviewedAt = &now
		report.ReviewerName = &reviewer
	}
	require.NoError(t, db.Create(report).Error)
	return report
}

// TestReportRepository_FindByEmployeeIDOrder 测试报告按创建时间倒序
func TestReportRepository_FindByEmployeeIDOrder(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewReportRepository(db)
	employee := createEmployee(t, db, "Alice", "alice@example.com")

	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	createReport(t, db, employee.ID, "older", model.ReportStatusPending, base)
	createReport(t, db, employee.ID, "newer", model.ReportStatusPending, base.Add(time.Hour))

	reports, err := repo.FindByEmployeeID(employee.ID)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, "newer", reports[0].Title)
	assert.Equal(t, "older", reports[1].Title)
}

// TestReportRepository_CountByStatus 测试报告状态聚合
func TestReportRepository_CountByStatus(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewReportRepository(db)
	employee := createEmployee(t, db, "Bob", "bob@example.com")
	other := createEmployee(t, db, "Carol", "carol@example.com")

	now := time.Now()
	createReport(t, db, employee.ID, "r1", model.ReportStatusPending, now)
	createReport(t, db, employee.ID, "r2", model.ReportStatusApproved, now)
	createReport(t, db, employee.ID, "r3", model.ReportStatusApproved, now)
	createReport(t, db, employee.ID, "r4", model.ReportStatusRejected, now)
	// 其他员工的报告不应计入
	createReport(t, db, other.ID, "r5", model.ReportStatusPending, now)

	counts, err := repo.CountByStatus(employee.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(4), counts.Total)
	assert.Equal(t, int64(1), counts.Pending)
	assert.Equal(t, int64(2), counts.Approved)
	assert.Equal(t, int64(1), counts.Rejected)
}

// TestReportRepository_CountByStatusEmpty 测试无报告时的聚合
func TestReportRepository_CountByStatusEmpty(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewReportRepository(db)

	counts, err := repo.CountByStatus(999)
	require.NoError(t, err)
	assert.Equal(t, int64(0), counts.Total)
	assert.Equal(t, int64(0), counts.Pending)
}

// TestReportRepository_FindAllWithEmployee 测试审核列表关联员工姓名
func TestReportRepository_FindAllWithEmployee(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewReportRepository(db)
	alice := createEmployee(t, db, "Alice", "alice@example.com")
	bob := createEmployee(t, db, "Bob", "bob@example.com")

	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	createReport(t, db, alice.ID, "from alice", model.ReportStatusPending, base)
	createReport(t, db, bob.ID, "from bob", model.ReportStatusPending, base.Add(time.Hour))

	rows, err := repo.FindAllWithEmployee()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "from bob", rows[0].Title)
	assert.Equal(t, "Bob", rows[0].EmployeeName)
	assert.Equal(t, "from alice", rows[1].Title)
	assert.Equal(t, "Alice", rows[1].EmployeeName)
}

// TestReportRepository_DeleteByEmployeeID 测试按员工批量删除
func TestReportRepository_DeleteByEmployeeID(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewReportRepository(db)
	employee := createEmployee(t, db, "Dave", "dave@example.com")
	other := createEmployee(t, db, "Eve", "eve@example.com")

	now := time.Now()
	createReport(t, db, employee.ID, "r1", model.ReportStatusPending, now)
	createReport(t, db, employee.ID, "r2", model.ReportStatusPending, now)
	kept := createReport(t, db, other.ID, "r3", model.ReportStatusPending, now)

	require.NoError(t, repo.DeleteByEmployeeID(employee.ID))

	reports, err := repo.FindByEmployeeID(employee.ID)
	require.NoError(t, err)
	assert.Empty(t, reports)

	_, err = repo.FindByID(kept.ID)
	assert.NoError(t, err)
}

// TestReportRepository_DeleteMissing 测试删除不存在的报告
func TestReportRepository_DeleteMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewReportRepository(db)

	err := repo.Delete(4242)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
