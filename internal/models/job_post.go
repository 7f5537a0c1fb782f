package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type JobPost struct {
	ID                 uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	HRID               uuid.UUID      `gorm:"type:uuid;not null" json:"hr_id"`
	JobTitle           string         `gorm:"type:text;not null" json:"job_title"`
	JobDescription     string         `gorm:"type:text;not null" json:"job_description"`
	SkillsRequired     SkillList      `gorm:"type:text" json:"skills_required"`
	JobType            string         `gorm:"type:text" json:"job_type"`
	NatureOfEmployment string         `gorm:"type:text" json:"nature_of_employment"`
	JobRole            string         `gorm:"type:text" json:"job_role"`
	Location           string         `gorm:"type:text" json:"location"`
	SalaryMin          int            `gorm:"default:0" json:"salary_min"`
	SalaryMax          int            `gorm:"default:0" json:"salary_max"`
	CreatedAt          time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt          time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	HR User `gorm:"foreignKey:HRID" json:"-"`
}

func (JobPost) TableName() string {
	return "job_posts"
}
