package progression

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"lms/models"
	"lms/services/assessment"
)

// IsAptitudeCompleted reports whether the learner has passed every Aptitude
// course. An empty Aptitude category means there is no prerequisite and the
// gate trivially passes without touching the cached aggregate.
//
// All Aptitude courses are scanned. The aggregate (mean latest score over the
// courses the learner has attempted) is computed over that same full set and
// upserted by user id whatever the outcome, so two evaluations in a row leave
// the cache unchanged.
func IsAptitudeCompleted(db *gorm.DB, userID uint) (bool, error) {
	var aptCourses []models.Course
	if err := db.Where("category = ?", models.CategoryAptitude).Order("id asc").Find(&aptCourses).Error; err != nil {
		return false, err
	}
	if len(aptCourses) == 0 {
		return true, nil
	}

	passed := true
	total := 0
	count := 0
	for _, course := range aptCourses {
		mark, err := assessment.LatestMark(db, userID, course.ID)
		if errors.Is(err, assessment.ErrNoMark) {
			passed = false
			continue
		}
		if err != nil {
			return false, err
		}
		total += mark.Score
		count++
		if mark.Score < assessment.PassThreshold {
			passed = false
		}
	}

	common := 0.0
	if count > 0 {
		common = float64(total) / float64(count)
	}
	aggregate := models.AptitudeScore{UserID: userID, CommonScore: common}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"common_score"}),
	}).Create(&aggregate).Error; err != nil {
		return false, err
	}

	return passed, nil
}
