package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hirehub/hirehub-api/internal/models"
)

type JobApplicationRepository interface {
	FindByJobPost(jobPostID uuid.UUID) ([]models.JobApplication, error)
	FindPendingByJobPost(jobPostID uuid.UUID) ([]models.JobApplication, error)
}

type jobApplicationRepository struct {
	db *gorm.DB
}

func NewJobApplicationRepository(db *gorm.DB) JobApplicationRepository {
	return &jobApplicationRepository{db: db}
}

// FindByJobPost implements JobApplicationRepository.
func (r *jobApplicationRepository) FindByJobPost(jobPostID uuid.UUID) ([]models.JobApplication, error) {
	var apps []models.JobApplication
	err := r.db.
		Where("job_post_id = ?", jobPostID).
		Preload("Candidate").
		Order("created_at DESC").
		Find(&apps).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find applications: %w", err)
	}

	return apps, nil
}

// FindPendingByJobPost implements JobApplicationRepository. Accepted and
// rejected applications are excluded; newest submissions come first.
func (r *jobApplicationRepository) FindPendingByJobPost(jobPostID uuid.UUID) ([]models.JobApplication, error) {
	var apps []models.JobApplication
	err := r.db.
		Where("job_post_id = ? AND status = ?", jobPostID, models.StatusPending).
		Preload("Candidate").
		Order("created_at DESC").
		Find(&apps).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find pending applications: %w", err)
	}

	return apps, nil
}
