package progression

import (
	"fmt"
	"testing"

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
	require.NoError(t, db.AutoMigrate(&models.Course{}, &models.Mark{}, &models.AptitudeScore{}))
	return db
}

func seedAptitude(t *testing.T, db *gorm.DB) []models.Course {
	t.Helper()
	courses := make([]models.Course, len(models.AptitudeTitles))
	for i, title := range models.AptitudeTitles {
		courses[i] = models.Course{Title: title, Category: models.CategoryAptitude, OrderIndex: i}
		require.NoError(t, db.Create(&courses[i]).Error)
	}
	return courses
}

func addMark(t *testing.T, db *gorm.DB, userID, courseID uint, score int) {
	t.Helper()
	require.NoError(t, db.Create(&models.Mark{UserID: userID, CourseID: courseID, Score: score}).Error)
}

func TestGatePassesWhenNoAptitudeCourses(t *testing.T) {
	db := openTestDB(t)

	passed, err := IsAptitudeCompleted(db, 1)
	require.NoError(t, err)
	require.True(t, passed)

	// No prerequisite means no aggregate write either.
	var count int64
	require.NoError(t, db.Model(&models.AptitudeScore{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestGateFailsWithoutMarks(t *testing.T) {
	db := openTestDB(t)
	seedAptitude(t, db)

	passed, err := IsAptitudeCompleted(db, 1)
	require.NoError(t, err)
	require.False(t, passed)

	var score models.AptitudeScore
	require.NoError(t, db.First(&score, "user_id = ?", 1).Error)
	require.Zero(t, score.CommonScore)
}

func TestGatePassesWhenAllCoursesPassed(t *testing.T) {
	db := openTestDB(t)
	courses := seedAptitude(t, db)

	for _, c := range courses {
		addMark(t, db, 1, c.ID, 12)
	}

	passed, err := IsAptitudeCompleted(db, 1)
	require.NoError(t, err)
	require.True(t, passed)

	var score models.AptitudeScore
	require.NoError(t, db.First(&score, "user_id = ?", 1).Error)
	require.InDelta(t, 12.0, score.CommonScore, 1e-9)
}

func TestGateAggregatesOverFullScan(t *testing.T) {
	db := openTestDB(t)
	courses := seedAptitude(t, db)

	// One failing score in the middle fails the gate, but every course is
	// still inspected and the cached average covers all three.
	scores := []int{12, 9, 14}
	for i, c := range courses {
		addMark(t, db, 1, c.ID, scores[i])
	}

	passed, err := IsAptitudeCompleted(db, 1)
	require.NoError(t, err)
	require.False(t, passed)

	var cached models.AptitudeScore
	require.NoError(t, db.First(&cached, "user_id = ?", 1).Error)
	require.InDelta(t, (12.0+9.0+14.0)/3.0, cached.CommonScore, 1e-9)
}

func TestGateUsesLatestMarkOnly(t *testing.T) {
	db := openTestDB(t)
	courses := seedAptitude(t, db)

	for _, c := range courses {
		addMark(t, db, 1, c.ID, 2) // early failure
		addMark(t, db, 1, c.ID, 13) // later retake passes
	}

	passed, err := IsAptitudeCompleted(db, 1)
	require.NoError(t, err)
	require.True(t, passed)
}

func TestAggregateUpsertIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	courses := seedAptitude(t, db)
	for _, c := range courses {
		addMark(t, db, 1, c.ID, 11)
	}

	_, err := IsAptitudeCompleted(db, 1)
	require.NoError(t, err)
	_, err = IsAptitudeCompleted(db, 1)
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.AptitudeScore{}).Where("user_id = ?", 1).Count(&count).Error)
	require.EqualValues(t, 1, count)

	var cached models.AptitudeScore
	require.NoError(t, db.First(&cached, "user_id = ?", 1).Error)
	require.InDelta(t, 11.0, cached.CommonScore, 1e-9)
}
