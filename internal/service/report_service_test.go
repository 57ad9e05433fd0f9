package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mautops/employee-gin/internal/model"
	"github.com/mautops/employee-gin/internal/service"
)

// submitReports 录入一名员工并提交若干报告
func submitReports(t *testing.T, f *workflowFixture, titles ...string) *model.Employee {
	t.Helper()
	employee, err := f.workflow.AdminProvisionEmployee(context.Background(), &service.ProvisionEmployeeRequest{
		FullName: "Reporter", Email: "reporter@example.com", Password: "secret123",
		Department: "IT", Position: "Engineer",
	})
	require.NoError(t, err)

	for _, title := range titles {
		_, err := f.workflow.SubmitReport(context.Background(), employee.AccountID, &service.SubmitReportRequest{
			Title: title, Type: "Weekly", Content: "content",
		})
		require.NoError(t, err)
	}
	return employee
}

// TestReportService_ListAllWithEmployeeName 测试审核列表携带员工姓名
func TestReportService_ListAllWithEmployeeName(t *testing.T) {
	f := newWorkflowFixture(t, nil)
	submitReports(t, f, "first", "second")

	views, err := f.reports.ListAll()
	require.NoError(t, err)
	require.Len(t, views, 2)
	for _, view := range views {
		assert.Equal(t, "Reporter", view.EmployeeName)
		assert.Equal(t, model.ReportStatusPending, view.Status)
	}
}

// TestReportService_CountByStatus 测试状态聚合经服务层透出
func TestReportService_CountByStatus(t *testing.T) {
	f := newWorkflowFixture(t, nil)
	employee := submitReports(t, f, "a", "b", "c")

	views, err := f.reports.ListForEmployee(employee.ID)
	require.NoError(t, err)
	require.Len(t, views, 3)

	_, err = f.workflow.ReviewReport(context.Background(), views[0].ID, &service.ReviewReportRequest{
		Decision: "Approve", ReviewerName: "Boss",
	})
	require.NoError(t, err)

	counts, err := f.reports.CountByStatus(employee.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), counts.Total)
	assert.Equal(t, int64(2), counts.Pending)
	assert.Equal(t, int64(1), counts.Approved)
}

// TestReportService_DeleteIdempotence 测试重复删除报告
func TestReportService_DeleteIdempotence(t *testing.T) {
	f := newWorkflowFixture(t, nil)
	employee := submitReports(t, f, "only")

	views, err := f.reports.ListForEmployee(employee.ID)
	require.NoError(t, err)
	require.Len(t, views, 1)

	require.NoError(t, f.reports.Delete(views[0].ID))
	assert.ErrorIs(t, f.reports.Delete(views[0].ID), service.ErrReportNotFound)
}

// TestReportService_GetNotFound 测试查询不存在的报告
func TestReportService_GetNotFound(t *testing.T) {
	f := newWorkflowFixture(t, nil)

	_, err := f.reports.Get(4242)
	assert.ErrorIs(t, err, service.ErrReportNotFound)
}
