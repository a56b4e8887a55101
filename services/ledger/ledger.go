package ledger

import (
	"errors"

	"gorm.io/gorm"

	"lms/models"
)

// ErrNotEnrolled is returned when a learner has no enrollment for a course.
var ErrNotEnrolled = errors.New("not enrolled in course")

// Enroll records the learner's enrollment. A repeated enroll for the same
// (user, course) pair is a silent success: the unique index keeps the ledger
// at exactly one row and no error reaches the caller.
func Enroll(db *gorm.DB, userID, courseID uint) (models.Enrollment, error) {
	enrollment := models.Enrollment{UserID: userID, CourseID: courseID}
	err := db.Where("user_id = ? AND course_id = ?", userID, courseID).
		FirstOrCreate(&enrollment).Error
	if err != nil {
		// A concurrent enroll can slip between the lookup and the insert;
		// the unique index then rejects ours. The row that won is the
		// answer.
		var existing models.Enrollment
		lookupErr := db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&existing).Error
		if lookupErr == nil {
			return existing, nil
		}
		return models.Enrollment{}, err
	}
	return enrollment, nil
}

// CompleteVideo marks the course video watched for an enrolled learner.
func CompleteVideo(db *gorm.DB, userID, courseID uint) error {
	res := db.Model(&models.Enrollment{}).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Update("completed", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotEnrolled
	}
	return nil
}

// Get fetches the learner's enrollment for a course.
func Get(db *gorm.DB, userID, courseID uint) (models.Enrollment, error) {
	var enrollment models.Enrollment
	err := db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Enrollment{}, ErrNotEnrolled
	}
	if err != nil {
		return models.Enrollment{}, err
	}
	return enrollment, nil
}
