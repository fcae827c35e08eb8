package controller

import (
	"math"
	"strconv"

	"learner_insights_backend/internal/engine"
	"learner_insights_backend/internal/service"
	"learner_insights_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizSessionController struct {
	QuizSessionService *service.QuizSessionService
}

// StartSessionRequest 开始自适应测验
type StartSessionRequest struct {
	QuizID         string   `json:"quizId" binding:"required" example:"quiz-101"`
	InitialAbility *float64 `json:"initialAbility" binding:"omitempty,min=-3,max=3" example:"0"`
}

// SubmitAnswerRequest ability 为外部能力估计更新后的值，可省略
type SubmitAnswerRequest struct {
	Correct          bool     `json:"correct"`
	Ability          *float64 `json:"ability" binding:"omitempty,min=-3,max=3"`
	TimeSpentSeconds int      `json:"timeSpentSeconds" binding:"min=0"`
	HintsUsed        int      `json:"hintsUsed" binding:"min=0"`
}

// SetDifficultyRequest 难度取值 -2 到 2，步长 0.5
type SetDifficultyRequest struct {
	Difficulty *float64 `json:"difficulty" binding:"required,min=-2,max=2" example:"0.5"`
}

func NewQuizSessionController(quizSessionService *service.QuizSessionService) *QuizSessionController {
	return &QuizSessionController{QuizSessionService: quizSessionService}
}

// StartSession godoc
// @Summary 开始测验会话
// @Tags 自适应测验
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body StartSessionRequest true "测验信息"
// @Success 201 {object} util.Response{data=service.SessionView}
// @Router /quiz/sessions [post]
func (c *QuizSessionController) StartSession(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req StartSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	ability := 0.0
	if req.InitialAbility != nil {
		ability = *req.InitialAbility
	}

	view, err := c.QuizSessionService.Start(ctx.Request.Context(), user.UserID, req.QuizID, ability)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, view)
}

// GetSession godoc
// @Summary 获取测验会话与难度面板
// @Tags 自适应测验
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "会话ID"
// @Success 200 {object} util.Response{data=service.SessionView}
// @Failure 404 {object} util.Response
// @Router /quiz/sessions/{id} [get]
func (c *QuizSessionController) GetSession(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	view, err := c.QuizSessionService.Get(ctx.Request.Context(), ctx.Param("id"), user.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

// SubmitAnswer godoc
// @Summary 提交作答
// @Description 记录作答并返回本题得分和更新后的难度面板
// @Tags 自适应测验
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "会话ID"
// @Param request body SubmitAnswerRequest true "作答结果"
// @Success 200 {object} util.Response{data=service.AnswerResult}
// @Failure 404 {object} util.Response
// @Router /quiz/sessions/{id}/answers [post]
func (c *QuizSessionController) SubmitAnswer(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SubmitAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.QuizSessionService.SubmitAnswer(ctx.Request.Context(), ctx.Param("id"), user.UserID, engine.AnswerInput{
		Correct:          req.Correct,
		Ability:          req.Ability,
		TimeSpentSeconds: req.TimeSpentSeconds,
		HintsUsed:        req.HintsUsed,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// SetDifficulty godoc
// @Summary 手动调整难度
// @Description 与当前值相同时不做修改，changed=false
// @Tags 自适应测验
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "会话ID"
// @Param request body SetDifficultyRequest true "目标难度"
// @Success 200 {object} util.Response{data=service.DifficultyChange}
// @Failure 400 {object} util.Response
// @Router /quiz/sessions/{id}/difficulty [put]
func (c *QuizSessionController) SetDifficulty(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SetDifficultyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if math.Mod(*req.Difficulty*2, 1) != 0 {
		util.BadRequest(ctx, "difficulty must be a multiple of 0.5")
		return
	}

	change, err := c.QuizSessionService.SetDifficulty(ctx.Request.Context(), ctx.Param("id"), user.UserID, *req.Difficulty)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, change)
}

// EndSession godoc
// @Summary 结束测验会话
// @Description 保存成绩记录并删除会话，返回成绩汇总
// @Tags 自适应测验
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "会话ID"
// @Success 200 {object} util.Response{data=service.SessionEnd}
// @Failure 404 {object} util.Response
// @Router /quiz/sessions/{id} [delete]
func (c *QuizSessionController) EndSession(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	ended, err := c.QuizSessionService.End(ctx.Request.Context(), ctx.Param("id"), user.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, ended)
}

// ListResults godoc
// @Summary 我的测验记录
// @Description 按完成时间倒序列出已结束的测验
// @Tags 自适应测验
// @Produce json
// @Security ApiKeyAuth
// @Param quizId query string false "测验ID"
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(20)
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /quiz/results [get]
func (c *QuizSessionController) ListResults(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	results, err := c.QuizSessionService.History(ctx.Request.Context(), user.UserID, ctx.Query("quizId"), page, limit)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, results)
}
