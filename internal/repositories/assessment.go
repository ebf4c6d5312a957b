package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"skillpath/internal/models"
)

// AssessmentRepository is the store adapter for the skill assessment
// collection: get, put (upsert), delete and full scan. Absent records are
// reported as (nil, nil), not as errors.
type AssessmentRepository interface {
	Get(id string) (*models.SkillAssessment, error)
	Put(assessment *models.SkillAssessment) error
	Delete(id string) error
	Scan() ([]models.SkillAssessment, error)
}

type assessmentRepository struct {
	db *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) AssessmentRepository {
	return &assessmentRepository{db: db}
}

func (r *assessmentRepository) Get(id string) (*models.SkillAssessment, error) {
	var assessment models.SkillAssessment
	if err := r.db.Where("id = ?", id).First(&assessment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get skill assessment: %w", err)
	}
	return &assessment, nil
}

func (r *assessmentRepository) Put(assessment *models.SkillAssessment) error {
	if err := r.db.Save(assessment).Error; err != nil {
		return fmt.Errorf("failed to put skill assessment: %w", err)
	}
	return nil
}

func (r *assessmentRepository) Delete(id string) error {
	if err := r.db.Where("id = ?", id).Delete(&models.SkillAssessment{}).Error; err != nil {
		return fmt.Errorf("failed to delete skill assessment: %w", err)
	}
	return nil
}

func (r *assessmentRepository) Scan() ([]models.SkillAssessment, error) {
	var assessments []models.SkillAssessment
	if err := r.db.Find(&assessments).Error; err != nil {
		return nil, fmt.Errorf("failed to scan skill assessments: %w", err)
	}
	return assessments, nil
}
