package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"skillpath/internal/models"
)

type RecommendationRepository interface {
	Get(id string) (*models.RecommendationBatch, error)
	Put(batch *models.RecommendationBatch) error
	Delete(id string) error
	Scan() ([]models.RecommendationBatch, error)
}

type recommendationRepository struct {
	db *gorm.DB
}

func NewRecommendationRepository(db *gorm.DB) RecommendationRepository {
	return &recommendationRepository{db: db}
}

func (r *recommendationRepository) Get(id string) (*models.RecommendationBatch, error) {
	var batch models.RecommendationBatch
	if err := r.db.Where("id = ?", id).First(&batch).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get recommendation batch: %w", err)
	}
	return &batch, nil
}

func (r *recommendationRepository) Put(batch *models.RecommendationBatch) error {
	if err := r.db.Save(batch).Error; err != nil {
		return fmt.Errorf("failed to put recommendation batch: %w", err)
	}
	return nil
}

func (r *recommendationRepository) Delete(id string) error {
	if err := r.db.Where("id = ?", id).Delete(&models.RecommendationBatch{}).Error; err != nil {
		return fmt.Errorf("failed to delete recommendation batch: %w", err)
	}
	return nil
}

func (r *recommendationRepository) Scan() ([]models.RecommendationBatch, error) {
	var batches []models.RecommendationBatch
	if err := r.db.Find(&batches).Error; err != nil {
		return nil, fmt.Errorf("failed to scan recommendation batches: %w", err)
	}
	return batches, nil
}
