package models

import (
	"time"

	"github.com/google/uuid"
)

type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "Pending"
	StatusAccepted ApplicationStatus = "Accepted"
	StatusRejected ApplicationStatus = "Rejected"
)

type JobApplication struct {
	ID             uuid.UUID         `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	JobPostID      uuid.UUID         `gorm:"type:uuid;not null;index" json:"job_post_id"`
	CandidateID    uuid.UUID         `gorm:"type:uuid;not null" json:"candidate_id"`
	ExpectedSalary int               `gorm:"not null" json:"expected_salary"`
	WhyJoinRole    string            `gorm:"type:text;not null" json:"why_join_role"`
	Resume         string            `gorm:"type:text;not null" json:"resume"`
	Status         ApplicationStatus `gorm:"type:text;not null;default:'Pending'" json:"status"`
	CreatedAt      time.Time         `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt      time.Time         `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	// Relations
	JobPost   JobPost `gorm:"foreignKey:JobPostID" json:"-"`
	Candidate User    `gorm:"foreignKey:CandidateID" json:"candidate,omitempty"`
}

func (JobApplication) TableName() string {
	return "job_applications"
}
