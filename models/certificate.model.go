package models

import (
	"time"

	"gorm.io/gorm"
)

// Certificate records an issued course-completion certificate. Created the
// first time an eligible learner downloads one.
type Certificate struct {
	gorm.Model
	UserID            uint      `json:"user_id" gorm:"index;not null"`
	CourseID          uint      `json:"course_id" gorm:"index;not null"`
	CertificateNumber string    `json:"certificate_number" gorm:"unique"`
	IssuedAt          time.Time `json:"issued_at"`
}
