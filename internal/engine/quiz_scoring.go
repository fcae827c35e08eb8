package engine

import "learner_insights_backend/internal/model"

// AnswerInput 一次作答。Ability 为外部（IRT 估计）给出的新能力值，为空表示不变
type AnswerInput struct {
	Correct          bool     `json:"correct"`
	Ability          *float64 `json:"ability"`
	TimeSpentSeconds int      `json:"timeSpentSeconds"`
	HintsUsed        int      `json:"hintsUsed"`
}

type AnswerScore struct {
	Base        int `json:"base"`
	Points      int `json:"points"`
	HintPenalty int `json:"hintPenalty"`
	TimeBonus   int `json:"timeBonus"`
	StreakBonus int `json:"streakBonus"`
}

type ScoringRules struct {
	BasePoints       int
	TimeLimitSeconds int
}

func DefaultScoringRules() ScoringRules {
	return ScoringRules{BasePoints: DefaultBasePoints, TimeLimitSeconds: DefaultQuestionTimeLimit}
}

// RecordAnswer 追加一条作答记录并更新会话统计。
// 记录的 difficulty 是作答时的能力值，随后才应用外部传入的新能力值。
func RecordAnswer(state *model.AbilityState, in AnswerInput, rules ScoringRules) AnswerScore {
	score := scoreAnswer(state.CurrentStreak, in, rules)

	state.PerformanceTrend = append(state.PerformanceTrend, model.PerformancePoint{
		QuestionNumber: state.QuestionsAnswered + 1,
		Difficulty:     state.CurrentAbility,
		WasCorrect:     in.Correct,
	})
	state.QuestionsAnswered++
	state.HintsUsed += nonNegativeInt(in.HintsUsed)
	state.TotalTimeSeconds += nonNegativeInt(in.TimeSpentSeconds)

	if in.Correct {
		state.CorrectAnswers++
		state.CurrentStreak++
		if state.CurrentStreak > state.BestStreak {
			state.BestStreak = state.CurrentStreak
		}
	} else {
		state.CurrentStreak = 0
	}
	state.Accuracy = float64(state.CorrectAnswers) / float64(state.QuestionsAnswered) * 100

	// 满分只累计本题可得的基础分与奖励分，答错时为 0
	state.PointsEarned += score.Points
	state.MaxPointsPossible += score.Base + score.TimeBonus + score.StreakBonus

	if in.Ability != nil {
		state.CurrentAbility = *in.Ability
	}
	return score
}

func scoreAnswer(currentStreak int, in AnswerInput, rules ScoringRules) AnswerScore {
	var s AnswerScore
	s.HintPenalty = nonNegativeInt(in.HintsUsed) * hintPenaltyPerHint

	if in.Correct {
		s.Base = rules.BasePoints
		s.TimeBonus = timeBonus(in.TimeSpentSeconds, rules.TimeLimitSeconds)
		if (currentStreak+1)%streakBonusEvery == 0 {
			s.StreakBonus = streakBonusPoints
		}
	}

	s.Points = nonNegativeInt(s.Base - s.HintPenalty + s.TimeBonus + s.StreakBonus)
	return s
}

func timeBonus(spent, limit int) int {
	if limit <= 0 {
		limit = DefaultQuestionTimeLimit
	}
	switch {
	case float64(spent) < float64(limit)*0.5:
		return fastAnswerBonus
	case float64(spent) < float64(limit)*0.75:
		return moderateAnswerBonus
	default:
		return 0
	}
}
