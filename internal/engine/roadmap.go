package engine

import (
	"fmt"
	"math"
	"strings"

	"learner_insights_backend/internal/model"
)

// Roadmap 纯计算结果，持久化由 RoadmapRepository 负责
type Roadmap struct {
	Complexity             int                      `json:"complexity"`
	TotalTimelineWeeks     int                      `json:"totalTimelineWeeks"`
	ValidatedTimelineWeeks int                      `json:"validatedTimelineWeeks"`
	Phases                 []model.RoadmapPhase     `json:"phases"`
	Items                  []model.RoadmapItem      `json:"items"`
	Milestones             []model.RoadmapMilestone `json:"milestones"`
}

type PhaseDurations struct {
	QuickWins  int
	ShortTerm  int
	MediumTerm int
	LongTerm   int
}

func (d PhaseDurations) Total() int {
	return d.QuickWins + d.ShortTerm + d.MediumTerm + d.LongTerm
}

var phaseBaseCost = map[model.RoadmapPhaseName]float64{
	model.PhaseQuickWins:  5000,
	model.PhaseShortTerm:  25000,
	model.PhaseMediumTerm: 75000,
	model.PhaseLongTerm:   150000,
}

var phaseCompletionCriteria = map[model.RoadmapPhaseName][]string{
	model.PhaseQuickWins: {
		"High-urgency pain points addressed",
		"Quick wins demonstrated to stakeholders",
		"Foundation for larger initiatives established",
	},
	model.PhaseShortTerm: {
		"Core AI capabilities implemented",
		"User groups seeing measurable improvements",
		"Initial ROI demonstrated",
	},
	model.PhaseMediumTerm: {
		"AI integrated across key business processes",
		"Team trained and self-sufficient",
		"Scalable infrastructure in place",
	},
	model.PhaseLongTerm: {
		"Full AI transformation complete",
		"Continuous improvement process established",
		"Competitive advantage realized",
	},
}

var milestoneNames = map[model.RoadmapPhaseName]string{
	model.PhaseQuickWins:  "Quick Wins Delivered",
	model.PhaseShortTerm:  "Core Capabilities Live",
	model.PhaseMediumTerm: "Full System Operational",
	model.PhaseLongTerm:   "AI Transformation Complete",
}

var phaseClosingDeliverable = map[model.RoadmapPhaseName]string{
	model.PhaseQuickWins:  "Stakeholder presentation with initial results",
	model.PhaseShortTerm:  "User training program and documentation",
	model.PhaseMediumTerm: "Scaled infrastructure and processes",
	model.PhaseLongTerm:   "Comprehensive AI strategy and roadmap update",
}

var phaseBaseResources = map[model.RoadmapPhaseName][]string{
	model.PhaseQuickWins:  {"Product Manager", "Developer"},
	model.PhaseShortTerm:  {"Product Manager", "AI Engineer", "UX Designer"},
	model.PhaseMediumTerm: {"Development Team", "Data Scientist", "DevOps"},
	model.PhaseLongTerm:   {"Full Team", "Leadership", "External Consultants"},
}

// Complexity 痛点数 + 风险数
func Complexity(data model.AssessmentFormData) int {
	return len(data.PainPoints) + len(data.Risks)
}

func DurationsFor(complexity int) PhaseDurations {
	c := float64(complexity)
	return PhaseDurations{
		QuickWins:  QuickWinsWeeks,
		ShortTerm:  clampInt(int(math.Ceil(c*shortTermFactor)), shortTermMin, shortTermMax),
		MediumTerm: clampInt(int(math.Ceil(c*mediumTermFactor)), mediumTermMin, mediumTermMax),
		LongTerm:   clampInt(int(math.Ceil(c*longTermFactor)), longTermMin, longTermMax),
	}
}

// ComputeRoadmap 生成四个阶段、各阶段条目和里程碑。
// ValidatedTimelineWeeks 只是总时长的展示边界，不会反推回各阶段的起止周。
func ComputeRoadmap(data model.AssessmentFormData) Roadmap {
	complexity := Complexity(data)
	durations := DurationsFor(complexity)
	total := durations.Total()

	phases := buildPhases(durations)
	items := buildItems(data)

	costs := make(map[model.RoadmapPhaseName]int, len(phases))
	for _, item := range items {
		costs[item.Phase] += item.EstimatedCostUSD
	}
	for i := range phases {
		phases[i].TotalCostUSD = costs[phases[i].Phase]
	}

	return Roadmap{
		Complexity:             complexity,
		TotalTimelineWeeks:     total,
		ValidatedTimelineWeeks: clampInt(total, TimelineMinWeeks, TimelineMaxWeeks),
		Phases:                 phases,
		Items:                  items,
		Milestones:             buildMilestones(phases, items),
	}
}

func buildPhases(d PhaseDurations) []model.RoadmapPhase {
	order := []struct {
		name     model.RoadmapPhaseName
		duration int
	}{
		{model.PhaseQuickWins, d.QuickWins},
		{model.PhaseShortTerm, d.ShortTerm},
		{model.PhaseMediumTerm, d.MediumTerm},
		{model.PhaseLongTerm, d.LongTerm},
	}

	phases := make([]model.RoadmapPhase, 0, len(order))
	start := 0
	for _, p := range order {
		phases = append(phases, model.RoadmapPhase{
			Phase:              p.name,
			StartWeek:          start,
			DurationWeeks:      p.duration,
			CompletionCriteria: append([]string(nil), phaseCompletionCriteria[p.name]...),
		})
		start += p.duration
	}
	return phases
}

func buildItems(data model.AssessmentFormData) []model.RoadmapItem {
	var items []model.RoadmapItem

	// 只有影响度 >=4 的痛点进入快速见效阶段，PhaseOrder 沿用其在原列表中的位置
	for i, pain := range data.PainPoints {
		if pain.CurrentImpact < quickWinMinImpact {
			continue
		}
		items = append(items, model.RoadmapItem{
			Phase:      model.PhaseQuickWins,
			PhaseOrder: i + 1,
			Title:      "Address: " + truncateRunes(pain.PainPoint, painPointTitleRunes),
			Description: fmt.Sprintf("Quick win opportunity: %s. Current impact level: %d/5. Expected improvement: %d/5.",
				pain.AICapabilityToAddress, pain.CurrentImpact, pain.ImpactAfterAI),
			Priority:          model.PriorityCritical,
			EstimatedWeeks:    2,
			EstimatedCostUSD:  EstimateItemCost(model.PhaseQuickWins, pain.CurrentImpact),
			RequiredResources: requiredResources(model.PhaseQuickWins, pain.AICapabilityToAddress),
			Dependencies:      []string{},
			SuccessMetrics: []string{
				fmt.Sprintf("Reduce impact from %d/5 to %d/5", pain.CurrentImpact, pain.ImpactAfterAI),
				"Stakeholder approval achieved",
				"Process documented for scaling",
			},
		})
	}

	for i, impact := range data.UserImpacts {
		items = append(items, model.RoadmapItem{
			Phase:      model.PhaseShortTerm,
			PhaseOrder: i + 1,
			Title:      "Implement AI for: " + impact.UserGroup,
			Description: fmt.Sprintf("%s. Target satisfaction improvement from %d/5 to %d/5.",
				impact.AIImprovements, impact.SatisfactionRating, impact.ImpactRating),
			Priority:          PriorityForGap(impact.SatisfactionRating, impact.ImpactRating),
			EstimatedWeeks:    8,
			EstimatedCostUSD:  EstimateItemCost(model.PhaseShortTerm, impact.ImpactRating),
			RequiredResources: []string{"AI Engineer", "Product Manager", "UX Designer"},
			Dependencies:      []string{"Quick wins completed"},
			SuccessMetrics: []string{
				fmt.Sprintf("User satisfaction improved to %d/5", impact.ImpactRating),
				"User adoption rate >70%",
				"Positive feedback from stakeholder interviews",
			},
		})
	}

	for i, benefit := range data.Benefits {
		priority := model.PriorityMedium
		if benefit.ImpactRating >= 4 {
			priority = model.PriorityHigh
		}
		items = append(items, model.RoadmapItem{
			Phase:             model.PhaseMediumTerm,
			PhaseOrder:        i + 1,
			Title:             "Scale: " + benefit.BenefitArea,
			Description:       fmt.Sprintf("%s. Current state: %s.", benefit.AIImprovement, benefit.CurrentStatus),
			Priority:          priority,
			EstimatedWeeks:    16,
			EstimatedCostUSD:  EstimateItemCost(model.PhaseMediumTerm, benefit.ImpactRating),
			RequiredResources: []string{"Development Team", "Data Scientist", "DevOps Engineer"},
			Dependencies:      []string{"Short-term initiatives validated"},
			SuccessMetrics: []string{
				fmt.Sprintf("Impact rating: %d/5", benefit.ImpactRating),
				"Scalable solution deployed",
				"ROI targets met",
			},
		})
	}

	for i, step := range data.RecommendedNextSteps {
		items = append(items, model.RoadmapItem{
			Phase:             model.PhaseLongTerm,
			PhaseOrder:        i + 1,
			Title:             "Strategic Initiative: " + truncateRunes(step, nextStepTitleRunes),
			Description:       "Long-term strategic initiative: " + step,
			Priority:          model.PriorityMedium,
			EstimatedWeeks:    24,
			EstimatedCostUSD:  EstimateItemCost(model.PhaseLongTerm, longTermAssumedImpact),
			RequiredResources: []string{"Leadership Team", "Full Dev Team", "External Consultants"},
			Dependencies:      []string{"Medium-term success demonstrated"},
			SuccessMetrics: []string{
				"Strategic objectives met",
				"Competitive advantage established",
				"Continuous improvement process in place",
			},
		})
	}

	return items
}

func buildMilestones(phases []model.RoadmapPhase, items []model.RoadmapItem) []model.RoadmapMilestone {
	milestones := make([]model.RoadmapMilestone, 0, len(phases))
	for _, phase := range phases {
		deliverables := make([]string, 0, milestoneMaxDeliverable+1)
		for _, item := range items {
			if item.Phase != phase.Phase {
				continue
			}
			if len(deliverables) == milestoneMaxDeliverable {
				break
			}
			deliverables = append(deliverables, item.Title)
		}
		deliverables = append(deliverables, phaseClosingDeliverable[phase.Phase])

		milestones = append(milestones, model.RoadmapMilestone{
			Phase:              phase.Phase,
			MilestoneName:      milestoneNames[phase.Phase],
			TargetWeek:         phase.StartWeek + phase.DurationWeeks,
			Deliverables:       deliverables,
			ValidationCriteria: append([]string(nil), phase.CompletionCriteria...),
		})
	}
	return milestones
}

// EstimateItemCost 阶段基准成本 × (影响度/5)
func EstimateItemCost(phase model.RoadmapPhaseName, impact int) int {
	return roundInt(phaseBaseCost[phase] * float64(impact) / maxImpactRating)
}

// PriorityForGap 目标评分与当前评分的差距越大优先级越高
func PriorityForGap(current, target int) model.RoadmapPriority {
	gap := target - current
	switch {
	case gap >= 3:
		return model.PriorityCritical
	case gap >= 2:
		return model.PriorityHigh
	case gap >= 1:
		return model.PriorityMedium
	default:
		return model.PriorityLow
	}
}

func requiredResources(phase model.RoadmapPhaseName, capability string) []string {
	resources := append([]string(nil), phaseBaseResources[phase]...)

	c := strings.ToLower(capability)
	if strings.Contains(c, "data") || strings.Contains(c, "analytics") {
		resources = append(resources, "Data Analyst")
	}
	if strings.Contains(c, "ml") || strings.Contains(c, "model") {
		resources = append(resources, "ML Engineer")
	}
	if strings.Contains(c, "infrastructure") || strings.Contains(c, "cloud") {
		resources = append(resources, "Cloud Architect")
	}

	seen := make(map[string]bool, len(resources))
	out := resources[:0]
	for _, r := range resources {
		if !seen[r] {
			seen[r] = true
			out = append(out, r)
		}
	}
	return out
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
