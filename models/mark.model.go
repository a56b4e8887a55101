package models

import "gorm.io/gorm"

// Mark is one scored quiz attempt. Rows are append-only: repeated attempts
// for the same (user, course) pile up and the latest by CreatedAt wins.
type Mark struct {
	gorm.Model
	UserID   uint `json:"user_id" gorm:"index;not null"`
	CourseID uint `json:"course_id" gorm:"index;not null"`
	Score    int  `json:"score"`
}
