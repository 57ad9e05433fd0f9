package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mautops/employee-gin/internal/model"
)

// TestReport_Validate 测试报告审核字段的一致性约束
func TestReport_Validate(t *testing.T) {
	pending := &model.Report{
		EmployeeID: 1,
		Title:      "Weekly",
		Status:     model.ReportStatusPending,
	}
	assert.NoError(t, pending.Validate())
	assert.False(t, pending.Reviewed())

	// Pending 报告不允许携带审核字段
	now := time.Now()
	reviewer := "Boss"
	broken := &model.Report{
		EmployeeID: 1, Title: "Weekly", Status: model.ReportStatusPending,
		ReviewedAt: &now,
	}
	assert.Error(t, broken.Validate())

	// 已审核报告必须带审核人与时间
	approved := &model.Report{
		EmployeeID: 1, Title: "Weekly", Status: model.ReportStatusApproved,
		ReviewedAt: &now, ReviewerName: &reviewer,
	}
	assert.NoError(t, approved.Validate())
	assert.True(t, approved.Reviewed())

	missingStamp := &model.Report{
		EmployeeID: 1, Title: "Weekly", Status: model.ReportStatusRejected,
	}
	assert.Error(t, missingStamp.Validate())

	badStatus := &model.Report{
		EmployeeID: 1, Title: "Weekly", Status: "Unknown",
	}
	assert.Error(t, badStatus.Validate())
}
