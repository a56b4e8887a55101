package models

import "gorm.io/gorm"

// Question is a four-option quiz question. Answer is the 1-indexed correct
// option; it is never sent to learners (admin endpoints expose it explicitly).
type Question struct {
	gorm.Model
	CourseID uint   `json:"course_id" gorm:"index;not null"`
	Question string `json:"question"`
	Option1  string `json:"option1"`
	Option2  string `json:"option2"`
	Option3  string `json:"option3"`
	Option4  string `json:"option4"`
	Answer   int    `json:"-"` // 1..4
}
