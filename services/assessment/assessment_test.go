package assessment

import (
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"lms/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Course{}, &models.Question{}, &models.Mark{}))
	return db
}

func seedQuestions(t *testing.T, db *gorm.DB, courseID uint, n int) []models.Question {
	t.Helper()
	questions := make([]models.Question, n)
	for i := range questions {
		q := models.Question{
			CourseID: courseID,
			Question: fmt.Sprintf("Q%d", i+1),
			Option1:  "a", Option2: "b", Option3: "c", Option4: "d",
			Answer: i%4 + 1,
		}
		require.NoError(t, db.Create(&q).Error)
		questions[i] = q
	}
	return questions
}

func TestSubmitQuizScoresRawCorrectCount(t *testing.T) {
	db := openTestDB(t)
	questions := seedQuestions(t, db, 7, 4)

	answers := map[string]string{
		strconv.FormatUint(uint64(questions[0].ID), 10): strconv.Itoa(questions[0].Answer), // correct
		strconv.FormatUint(uint64(questions[1].ID), 10): "4",                               // wrong
		strconv.FormatUint(uint64(questions[2].ID), 10): "abc",                             // unparsable, never correct
		// questions[3] unanswered
	}

	mark, err := SubmitQuiz(db, 1, 7, answers)
	require.NoError(t, err)
	require.Equal(t, 1, mark.Score)
	require.EqualValues(t, 1, mark.UserID)
	require.EqualValues(t, 7, mark.CourseID)
}

func TestSubmitQuizAppendsEveryAttempt(t *testing.T) {
	db := openTestDB(t)
	questions := seedQuestions(t, db, 7, 2)

	full := map[string]string{
		strconv.FormatUint(uint64(questions[0].ID), 10): strconv.Itoa(questions[0].Answer),
		strconv.FormatUint(uint64(questions[1].ID), 10): strconv.Itoa(questions[1].Answer),
	}

	_, err := SubmitQuiz(db, 1, 7, nil)
	require.NoError(t, err)
	_, err = SubmitQuiz(db, 1, 7, full)
	require.NoError(t, err)
	_, err = SubmitQuiz(db, 1, 7, full)
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.Mark{}).Where("user_id = ? AND course_id = ?", 1, 7).Count(&count).Error)
	require.EqualValues(t, 3, count, "attempts are never merged or capped")
}

func TestLatestMarkPicksHighestTimestamp(t *testing.T) {
	db := openTestDB(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	// Inserted out of chronological order on purpose.
	newest := models.Mark{UserID: 1, CourseID: 7, Score: 11}
	newest.CreatedAt = base.Add(2 * time.Hour)
	middle := models.Mark{UserID: 1, CourseID: 7, Score: 3}
	middle.CreatedAt = base.Add(time.Hour)
	oldest := models.Mark{UserID: 1, CourseID: 7, Score: 15}
	oldest.CreatedAt = base
	for _, m := range []*models.Mark{&middle, &newest, &oldest} {
		require.NoError(t, db.Create(m).Error)
	}

	mark, err := LatestMark(db, 1, 7)
	require.NoError(t, err)
	require.Equal(t, 11, mark.Score)
}

func TestLatestMarkAbsent(t *testing.T) {
	db := openTestDB(t)
	_, err := LatestMark(db, 1, 7)
	require.ErrorIs(t, err, ErrNoMark)
}

func TestEligibilityFixedThreshold(t *testing.T) {
	db := openTestDB(t)

	// 12 questions, 10 answered correctly: eligible.
	big := seedQuestions(t, db, 7, 12)
	answers := make(map[string]string)
	for _, q := range big[:10] {
		answers[strconv.FormatUint(uint64(q.ID), 10)] = strconv.Itoa(q.Answer)
	}
	mark, err := SubmitQuiz(db, 1, 7, answers)
	require.NoError(t, err)
	require.Equal(t, 10, mark.Score)
	require.True(t, Eligible(mark))

	// 8 questions, all correct: a perfect run still falls short of the
	// fixed threshold.
	small := seedQuestions(t, db, 8, 8)
	answers = make(map[string]string)
	for _, q := range small {
		answers[strconv.FormatUint(uint64(q.ID), 10)] = strconv.Itoa(q.Answer)
	}
	mark, err = SubmitQuiz(db, 1, 8, answers)
	require.NoError(t, err)
	require.Equal(t, 8, mark.Score)
	require.False(t, Eligible(mark))
}
