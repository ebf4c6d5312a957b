package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"skillpath/internal/models"
)

type LearningPathRepository interface {
	Get(id string) (*models.LearningPath, error)
	Put(path *models.LearningPath) error
	Delete(id string) error
	Scan() ([]models.LearningPath, error)
}

type learningPathRepository struct {
	db *gorm.DB
}

func NewLearningPathRepository(db *gorm.DB) LearningPathRepository {
	return &learningPathRepository{db: db}
}

func (r *learningPathRepository) Get(id string) (*models.LearningPath, error) {
	var path models.LearningPath
	if err := r.db.Where("id = ?", id).First(&path).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get learning path: %w", err)
	}
	return &path, nil
}

func (r *learningPathRepository) Put(path *models.LearningPath) error {
	if err := r.db.Save(path).Error; err != nil {
		return fmt.Errorf("failed to put learning path: %w", err)
	}
	return nil
}

func (r *learningPathRepository) Delete(id string) error {
	if err := r.db.Where("id = ?", id).Delete(&models.LearningPath{}).Error; err != nil {
		return fmt.Errorf("failed to delete learning path: %w", err)
	}
	return nil
}

func (r *learningPathRepository) Scan() ([]models.LearningPath, error) {
	var paths []models.LearningPath
	if err := r.db.Find(&paths).Error; err != nil {
		return nil, fmt.Errorf("failed to scan learning paths: %w", err)
	}
	return paths, nil
}
