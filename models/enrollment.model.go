package models

import "gorm.io/gorm"

// Enrollment ties a learner to a course. Completed flips to true once the
// course video has been watched. One row per (user, course) pair.
type Enrollment struct {
	gorm.Model
	UserID    uint `json:"user_id" gorm:"not null;uniqueIndex:idx_user_course"`
	CourseID  uint `json:"course_id" gorm:"not null;uniqueIndex:idx_user_course"`
	Completed bool `json:"completed" gorm:"default:false"`
}
