package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mautops/employee-gin/internal/auth"
	"github.com/mautops/employee-gin/internal/service"
)

// ReportController 报告控制器,覆盖提交、查询与审核
type ReportController struct {
	reportService   service.ReportService
	workflowService service.WorkflowService
}

// NewReportController 创建报告控制器
func NewReportController(reportService service.ReportService, workflowService service.WorkflowService) *ReportController {
	return &ReportController{
		reportService:   reportService,
		workflowService: workflowService,
	}
}

// Submit 提交报告
// @Summary      提交报告
// @Description  multipart 表单提交,可附带一个文档,文档上传失败则整个提交中止
// @Tags         报告
// @Accept       multipart/form-data
// @Produce      json
// @Param        title    formData string true  "标题"
// @Param        type     formData string true  "类型"
// @Param        content  formData string true  "内容"
// @Param        document formData file   false "附件文档"
// @Success      200  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Failure      502  {object}  ErrorResponse
// @Router       /reports [post]
// @Security     BearerAuth
func (c *ReportController) Submit(ctx *gin.Context) {
	accountID, ok := auth.AccountIDFromContext(ctx)
	if !ok {
		Error(ctx, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	req := &service.SubmitReportRequest{
		Title:   ctx.PostForm("title"),
		Type:    ctx.PostForm("type"),
		Content: ctx.PostForm("content"),
	}

	// 附件可选,缺失不是错误
	fileHeader, err := ctx.FormFile("document")
	if err == nil && fileHeader != nil {
		file, openErr := fileHeader.Open()
		if openErr != nil {
			Error(ctx, http.StatusBadRequest, "invalid document", openErr.Error())
			return
		}
		defer file.Close()
		req.Document = file
		req.DocumentFilename = fileHeader.Filename
	}

	report, err := c.workflowService.SubmitReport(requestContext(ctx), accountID, req)
	if err != nil {
		ServiceError(ctx, err)
		return
	}

	Success(ctx, report)
}

// My 获取当前员工的报告
// @Summary      获取我的报告
// @Description  按提交时间倒序返回当前员工的全部报告
// @Tags         报告
// @Produce      json
// @Success      200  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Router       /reports/my [get]
// @Security     BearerAuth
func (c *ReportController) My(ctx *gin.Context) {
	accountID, ok := auth.AccountIDFromContext(ctx)
	if !ok {
		Error(ctx, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	reports, err := c.reportService.ListForAccount(accountID)
	if err != nil {
		ServiceError(ctx, err)
		return
	}

	Success(ctx, reports)
}

// Stats 获取员工的报告状态统计
// @Summary      获取报告状态统计
// @Tags         报告
// @Produce      json
// @Param        employeeId path int true "员工 ID"
// @Success      200  {object}  Response
// @Router       /reports/stats/{employeeId} [get]
// @Security     BearerAuth
func (c *ReportController) Stats(ctx *gin.Context) {
	employeeID, ok := parseIDParam(ctx, "employeeId")
	if !ok {
		return
	}

	counts, err := c.reportService.CountByStatus(employeeID)
	if err != nil {
		ServiceError(ctx, err)
		return
	}

	Success(ctx, counts)
}

// List 获取全部报告
// @Summary      获取全部报告
// @Description  管理员审核视图,带员工姓名,按提交时间倒序
// @Tags         报告审核
// @Produce      json
// @Success      200  {object}  Response
// @Router       /reports [get]
// @Security     BearerAuth
func (c *ReportController) List(ctx *gin.Context) {
	reports, err := c.reportService.ListAll()
	if err != nil {
		ServiceError(ctx, err)
		return
	}

	Success(ctx, reports)
}

// Review 审核报告
// @Summary      审核报告
// @Description  对 Pending 报告做出 Approve 或 Reject 决定,已审核的报告不可再审
// @Tags         报告审核
// @Accept       json
// @Produce      json
// @Param        id path int true "报告 ID"
// @Param        request body service.ReviewReportRequest true "审核决定"
// @Success      200  {object}  Response
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /reports/{id}/review [put]
// @Security     BearerAuth
func (c *ReportController) Review(ctx *gin.Context) {
	reportID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req service.ReviewReportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		Error(ctx, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	report, err := c.workflowService.ReviewReport(requestContext(ctx), reportID, &req)
	if err != nil {
		ServiceError(ctx, err)
		return
	}

	Success(ctx, report)
}

// Delete 删除报告
// @Summary      删除报告
// @Tags         报告审核
// @Produce      json
// @Param        id path int true "报告 ID"
// @Success      200  {object}  Response
// @Failure      404  {object}  ErrorResponse
// @Router       /reports/{id} [delete]
// @Security     BearerAuth
func (c *ReportController) Delete(ctx *gin.Context) {
	reportID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.reportService.Delete(reportID); err != nil {
		ServiceError(ctx, err)
		return
	}

	Success(ctx, gin.H{"message": "report deleted"})
}

// Document 获取报告附件地址
// @Summary      获取报告附件地址
// @Tags         报告
// @Produce      json
// @Param        id path int true "报告 ID"
// @Success      200  {object}  Response
// @Failure      404  {object}  ErrorResponse
// @Router       /reports/{id}/document [get]
// @Security     BearerAuth
func (c *ReportController) Document(ctx *gin.Context) {
	reportID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	report, err := c.reportService.Get(reportID)
	if err != nil {
		ServiceError(ctx, err)
		return
	}

	if report.DocumentRef == "" {
		Error(ctx, http.StatusNotFound, "report has no document", "")
		return
	}

	Success(ctx, gin.H{"url": report.DocumentRef})
}
