package controller

import (
	"errors"
	"io"

	"learner_insights_backend/internal/service"
	"learner_insights_backend/internal/util"
	"learner_insights_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PredictionController struct {
	PredictionService *service.PredictionService
}

func NewPredictionController(predictionService *service.PredictionService) *PredictionController {
	return &PredictionController{PredictionService: predictionService}
}

// Generate godoc
// @Summary 生成预测
// @Description 为匹配的学习者批量生成预测，高风险学习者同时生成预警。请求体可省略，默认全部学习者、三种默认类型
// @Tags 预测
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body service.GenerateRequest false "过滤条件与预测类型"
// @Success 200 {object} util.Response{data=service.GenerateResult}
// @Failure 400 {object} util.Response "预测类型无效"
// @Failure 404 {object} util.Response "没有特征数据"
// @Failure 500 {object} util.Response
// @Router /admin/predictions/generate [post]
func (c *PredictionController) Generate(ctx *gin.Context) {
	var req service.GenerateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		util.BadRequest(ctx, err.Error())
		return
	}

	if user := util.GetUserFromContext(ctx); user != nil {
		logger.Log.Info("Prediction generation requested",
			zap.String("operatorId", user.UserID),
			zap.Int("types", len(req.PredictionTypes)),
		)
	}

	result, err := c.PredictionService.Generate(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, result)
}
