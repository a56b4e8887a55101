package models

// AptitudeScore caches a learner's average score across the Aptitude courses
// they have attempted. Recomputed on every gate evaluation; never
// authoritative.
type AptitudeScore struct {
	UserID      uint    `json:"user_id" gorm:"primaryKey"`
	CommonScore float64 `json:"common_score"`
}
