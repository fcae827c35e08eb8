package engine

import "learner_insights_backend/internal/model"

const (
	ActionSendEngagementEmail            = "send_engagement_email"
	ActionInstructorOutreach             = "instructor_outreach"
	ActionOfferTutoring                  = "offer_tutoring"
	ActionRecommendSupplementalMaterials = "recommend_supplemental_materials"
	ActionDeadlineExtension              = "deadline_extension"
	ActionAssignmentReminder             = "assignment_reminder"
	ActionPeerMentorAssignment           = "peer_mentor_assignment"
	ActionStudyGroupInvitation           = "study_group_invitation"
)

type interventionRule struct {
	Category string
	Triggers []string
	Actions  []string
}

// interventionCatalog 按风险维度顺序排列，进度类因子没有对应动作
var interventionCatalog = []interventionRule{
	{
		Category: "inactivity",
		Triggers: []string{FactorInactive14d, FactorInactive7d},
		Actions:  []string{ActionSendEngagementEmail, ActionInstructorOutreach},
	},
	{
		Category: "performance",
		Triggers: []string{FactorPoorPerformance},
		Actions:  []string{ActionOfferTutoring, ActionRecommendSupplementalMaterials},
	},
	{
		Category: "assignments",
		Triggers: []string{FactorLowAssignmentCompletion},
		Actions:  []string{ActionDeadlineExtension, ActionAssignmentReminder},
	},
	{
		Category: "engagement",
		Triggers: []string{FactorDecliningEngagement},
		Actions:  []string{ActionPeerMentorAssignment, ActionStudyGroupInvitation},
	},
}

// RecommendInterventions 每个维度最多贡献一次
func RecommendInterventions(factors []string) []string {
	present := make(map[string]bool, len(factors))
	for _, f := range factors {
		present[f] = true
	}

	actions := make([]string, 0, 8)
	for _, rule := range interventionCatalog {
		for _, trigger := range rule.Triggers {
			if present[trigger] {
				actions = append(actions, rule.Actions...)
				break
			}
		}
	}
	return actions
}

func InterventionPriority(level model.RiskLevel) int {
	switch level {
	case model.RiskCritical:
		return 5
	case model.RiskHigh:
		return 4
	case model.RiskMedium:
		return 3
	default:
		return 2
	}
}
