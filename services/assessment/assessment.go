package assessment

import (
	"errors"
	"strconv"

	"gorm.io/gorm"

	"lms/models"
)

// PassThreshold is the minimum raw score required to pass a course quiz and
// to qualify for its certificate. It does not scale with the question count:
// a course with fewer than 10 questions cannot be passed.
const PassThreshold = 10

// ErrNoMark is returned when a learner has no recorded attempt for a course.
var ErrNoMark = errors.New("no mark recorded")

// SubmitQuiz scores a quiz submission against the course's question bank and
// appends the attempt as a new Mark. Answers map question ids to the selected
// 1-indexed option, both as strings; entries that are absent or fail to parse
// never count as correct. The score is the raw count of correct answers.
func SubmitQuiz(db *gorm.DB, userID, courseID uint, answers map[string]string) (models.Mark, error) {
	var questions []models.Question
	if err := db.Where("course_id = ?", courseID).Order("id asc").Find(&questions).Error; err != nil {
		return models.Mark{}, err
	}

	score := 0
	for _, q := range questions {
		raw, ok := answers[strconv.FormatUint(uint64(q.ID), 10)]
		if !ok {
			continue
		}
		selected, err := strconv.Atoi(raw)
		if err != nil {
			continue
		}
		if selected == q.Answer {
			score++
		}
	}

	mark := models.Mark{
		UserID:   userID,
		CourseID: courseID,
		Score:    score,
	}
	if err := db.Create(&mark).Error; err != nil {
		return models.Mark{}, err
	}
	return mark, nil
}

// LatestMark returns the learner's most recent attempt for a course. Ties on
// the timestamp are broken by insertion order, highest id last.
func LatestMark(db *gorm.DB, userID, courseID uint) (models.Mark, error) {
	var mark models.Mark
	err := db.
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Order("created_at desc, id desc").
		First(&mark).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Mark{}, ErrNoMark
	}
	if err != nil {
		return models.Mark{}, err
	}
	return mark, nil
}

// Eligible reports whether a mark qualifies for a certificate.
func Eligible(mark models.Mark) bool {
	return mark.Score >= PassThreshold
}
