package engine

import (
	"math"

	"learner_insights_backend/internal/model"
)

// SkillsGapPrediction 目前只按整体进度估算补齐所需时长，分主题的差距暂为空
type SkillsGapPrediction struct {
	SkillGaps   map[string]float64 `json:"skillGaps"`
	HoursNeeded float64            `json:"hoursNeeded"`
}

func PredictSkillsGap(f model.UserFeatures) SkillsGapPrediction {
	remaining := 100 - Clamp0To100(f.ProgressPercentage)
	return SkillsGapPrediction{
		SkillGaps:   map[string]float64{},
		HoursNeeded: math.Max(0, remaining/skillsGapHoursDivisor),
	}
}
