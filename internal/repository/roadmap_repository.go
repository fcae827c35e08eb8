package repository

import (
	"context"

	"learner_insights_backend/internal/model"
	"learner_insights_backend/internal/util"

	"gorm.io/gorm"
)

type RoadmapRepository struct {
	DB *gorm.DB
}

func NewRoadmapRepository(db *gorm.DB) *RoadmapRepository {
	return &RoadmapRepository{DB: db}
}

// Replace 删除该评估已有的路线图后重新写入，整体在一个事务内
func (r *RoadmapRepository) Replace(ctx context.Context, roadmap *model.StoredRoadmap) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		id := roadmap.AssessmentID
		for _, m := range []interface{}{&model.RoadmapPhase{}, &model.RoadmapItem{}, &model.RoadmapMilestone{}} {
			if err := tx.Unscoped().Where("assessment_id = ?", id).Delete(m).Error; err != nil {
				return err
			}
		}

		for i := range roadmap.Phases {
			roadmap.Phases[i].AssessmentID = id
		}
		for i := range roadmap.Items {
			roadmap.Items[i].AssessmentID = id
		}
		for i := range roadmap.Milestones {
			roadmap.Milestones[i].AssessmentID = id
		}

		if len(roadmap.Phases) > 0 {
			if err := tx.Create(&roadmap.Phases).Error; err != nil {
				return err
			}
		}
		if len(roadmap.Items) > 0 {
			if err := tx.Create(&roadmap.Items).Error; err != nil {
				return err
			}
		}
		if len(roadmap.Milestones) > 0 {
			if err := tx.Create(&roadmap.Milestones).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *RoadmapRepository) Get(ctx context.Context, assessmentID string) (*model.StoredRoadmap, error) {
	db := r.DB.WithContext(ctx)
	out := &model.StoredRoadmap{AssessmentID: assessmentID}

	if err := db.Where("assessment_id = ?", assessmentID).Order("start_week ASC").Find(&out.Phases).Error; err != nil {
		return nil, err
	}
	if len(out.Phases) == 0 {
		return nil, util.ErrAssessmentNotFound
	}

	phaseOrder := "CASE phase WHEN 'quick_wins' THEN 0 WHEN 'short_term' THEN 1 WHEN 'medium_term' THEN 2 ELSE 3 END"
	if err := db.Where("assessment_id = ?", assessmentID).
		Order(phaseOrder).Order("phase_order ASC").
		Find(&out.Items).Error; err != nil {
		return nil, err
	}
	if err := db.Where("assessment_id = ?", assessmentID).Order("target_week ASC").Find(&out.Milestones).Error; err != nil {
		return nil, err
	}
	return out, nil
}
