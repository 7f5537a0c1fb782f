package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Email          string    `gorm:"type:text;uniqueIndex;not null" json:"email"`
	FullName       string    `gorm:"type:text;not null" json:"full_name"`
	IsHR           bool      `gorm:"not null;default:false" json:"is_hr"`
	ContactDetails string    `gorm:"type:text" json:"contact_details"`
	CreatedAt      time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt      time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
