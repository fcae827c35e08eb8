package controller

import (
	"learner_insights_backend/internal/model"
	"learner_insights_backend/internal/service"
	"learner_insights_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type RoadmapController struct {
	RoadmapService *service.RoadmapService
}

func NewRoadmapController(roadmapService *service.RoadmapService) *RoadmapController {
	return &RoadmapController{RoadmapService: roadmapService}
}

// GenerateRoadmap godoc
// @Summary 生成实施路线图
// @Description 根据评估问卷生成四阶段路线图，覆盖该评估之前的版本
// @Tags 路线图
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "评估ID"
// @Param request body model.AssessmentFormData true "评估问卷"
// @Success 201 {object} util.Response{data=engine.Roadmap}
// @Failure 400 {object} util.Response
// @Router /admin/assessments/{id}/roadmap [post]
func (c *RoadmapController) GenerateRoadmap(ctx *gin.Context) {
	var req model.AssessmentFormData
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	roadmap, err := c.RoadmapService.Generate(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, roadmap)
}

// GetRoadmap godoc
// @Summary 获取已保存的路线图
// @Tags 路线图
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "评估ID"
// @Success 200 {object} util.Response{data=model.StoredRoadmap}
// @Failure 404 {object} util.Response
// @Router /admin/assessments/{id}/roadmap [get]
func (c *RoadmapController) GetRoadmap(ctx *gin.Context) {
	roadmap, err := c.RoadmapService.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, roadmap)
}
