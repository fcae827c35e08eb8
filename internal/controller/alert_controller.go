package controller

import (
	"strconv"

	"learner_insights_backend/internal/model"
	"learner_insights_backend/internal/service"
	"learner_insights_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AlertController struct {
	AlertService *service.AlertService
	Hub          *service.AlertHub
}

// DismissAlertRequest 关闭预警请求
type DismissAlertRequest struct {
	Note string `json:"note" binding:"max=2000" example:"已电话联系学生"`
}

func NewAlertController(alertService *service.AlertService, hub *service.AlertHub) *AlertController {
	return &AlertController{AlertService: alertService, Hub: hub}
}

// ListAlerts godoc
// @Summary 预警列表
// @Description 按风险分数降序列出预警，默认只返回未处理的
// @Tags 风险预警
// @Produce json
// @Security ApiKeyAuth
// @Param severity query string false "严重程度" enums(low,medium,high,critical)
// @Param courseId query string false "课程ID"
// @Param status query string false "状态" enums(open,dismissed)
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(20)
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Failure 400 {object} util.Response
// @Router /admin/alerts [get]
func (c *AlertController) ListAlerts(ctx *gin.Context) {
	filter := model.AlertFilter{CourseID: optionalQuery(ctx, "courseId")}

	if s := ctx.Query("severity"); s != "" {
		severity := model.RiskLevel(s)
		switch severity {
		case model.RiskLow, model.RiskMedium, model.RiskHigh, model.RiskCritical:
			filter.Severity = &severity
		default:
			util.BadRequest(ctx, "Invalid severity")
			return
		}
	}

	if s := ctx.Query("status"); s != "" {
		status := model.AlertStatus(s)
		if status != model.AlertOpen && status != model.AlertDismissed {
			util.BadRequest(ctx, "Invalid status")
			return
		}
		filter.Status = status
	}

	filter.Page, _ = strconv.Atoi(ctx.DefaultQuery("page", "1"))
	filter.Limit, _ = strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	page, err := c.AlertService.ListOpen(ctx.Request.Context(), filter)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, page)
}

// DismissAlert godoc
// @Summary 关闭预警
// @Description 记录处理人和处理说明，已关闭的预警返回 409
// @Tags 风险预警
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "预警ID"
// @Param request body DismissAlertRequest false "处理说明"
// @Success 200 {object} util.Response{data=model.AtRiskAlert}
// @Failure 404 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /admin/alerts/{id}/dismiss [post]
func (c *AlertController) DismissAlert(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req DismissAlertRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			util.BadRequest(ctx, err.Error())
			return
		}
	}

	alert, err := c.AlertService.Dismiss(ctx.Request.Context(), ctx.Param("id"), user.UserID, req.Note)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, alert)
}

// HandleWS godoc
// @Summary 预警推送 WebSocket
// @Description 教师/管理员建立连接后实时接收新生成的风险预警
// @Tags 风险预警
// @Security ApiKeyAuth
// @Param token query string true "JWT Token"
// @Success 101 {string} string "Switching Protocols"
// @Router /admin/alerts/ws [get]
func (c *AlertController) HandleWS(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	c.Hub.ServeWs(ctx.Writer, ctx.Request, user.UserID)
}
