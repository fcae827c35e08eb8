package controller

import (
	"learner_insights_backend/internal/service"
	"learner_insights_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type InsightsController struct {
	InsightsService *service.InsightsService
}

func NewInsightsController(insightsService *service.InsightsService) *InsightsController {
	return &InsightsController{InsightsService: insightsService}
}

// GetMyInsights godoc
// @Summary 获取我的学习洞察
// @Description 返回当前学习者各类型最新且未过期的预测，没有数据时 hasData=false
// @Tags 学习洞察
// @Produce json
// @Security ApiKeyAuth
// @Param courseId query string false "课程ID，不传表示整体"
// @Success 200 {object} util.Response{data=model.LearnerInsights}
// @Failure 401 {object} util.Response
// @Router /insights/me [get]
func (c *InsightsController) GetMyInsights(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	insights, err := c.InsightsService.LearnerInsights(ctx.Request.Context(), user.UserID, optionalQuery(ctx, "courseId"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, insights)
}

// GetLearnerInsights godoc
// @Summary 获取指定学习者的洞察
// @Description 教师/管理员可查看任意学习者，学生只能查看自己
// @Tags 学习洞察
// @Produce json
// @Security ApiKeyAuth
// @Param userId path string true "学习者ID"
// @Param courseId query string false "课程ID"
// @Success 200 {object} util.Response{data=model.LearnerInsights}
// @Failure 403 {object} util.Response
// @Router /learners/{userId}/insights [get]
// @Router /admin/learners/{userId}/insights [get]
func (c *InsightsController) GetLearnerInsights(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	userID := ctx.Param("userId")
	if userID == "" {
		util.BadRequest(ctx, "userId is required")
		return
	}

	insights, err := c.InsightsService.ViewLearnerInsights(ctx.Request.Context(), user, userID, optionalQuery(ctx, "courseId"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, insights)
}

// GetRiskDistribution godoc
// @Summary 风险等级分布
// @Description 统计最新 at_risk 预测在 low/medium/high/critical 上的人数
// @Tags 学习洞察
// @Produce json
// @Security ApiKeyAuth
// @Param courseId query string false "课程ID"
// @Success 200 {object} util.Response{data=model.RiskDistribution}
// @Router /admin/insights/risk-distribution [get]
func (c *InsightsController) GetRiskDistribution(ctx *gin.Context) {
	dist, err := c.InsightsService.RiskDistribution(ctx.Request.Context(), optionalQuery(ctx, "courseId"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, dist)
}
