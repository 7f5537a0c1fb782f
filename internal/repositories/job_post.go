package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hirehub/hirehub-api/internal/models"
)

type JobPostRepository interface {
	FindByID(id uuid.UUID) (*models.JobPost, error)
}

type jobPostRepository struct {
	db *gorm.DB
}

func NewJobPostRepository(db *gorm.DB) JobPostRepository {
	return &jobPostRepository{db: db}
}

// FindByID implements JobPostRepository.
func (r *jobPostRepository) FindByID(id uuid.UUID) (*models.JobPost, error) {
	var post models.JobPost
	if err := r.db.Where("id = ?", id).First(&post).Error; err != nil {
		return nil, fmt.Errorf("failed to find job post: %w", err)
	}

	return &post, nil
}
