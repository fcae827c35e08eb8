package controller

import (
	"errors"

	"learner_insights_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// respondError 把业务层的哨兵错误映射为对应的 HTTP 状态码
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrInvalidPredictionType):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx)
	case errors.Is(err, util.ErrNoFeatureData),
		errors.Is(err, util.ErrSessionNotFound),
		errors.Is(err, util.ErrAlertNotFound),
		errors.Is(err, util.ErrAssessmentNotFound):
		util.NotFoundWithMessage(ctx, err.Error())
	case errors.Is(err, util.ErrAlertAlreadyDismissed):
		util.Conflict(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}

// optionalQuery 参数缺省或为空时返回 nil
func optionalQuery(ctx *gin.Context, key string) *string {
	v := ctx.Query(key)
	if v == "" {
		return nil
	}
	return &v
}
