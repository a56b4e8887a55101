package ledger

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
	require.NoError(t, db.AutoMigrate(&models.Enrollment{}))
	return db
}

func TestEnrollIsIdempotent(t *testing.T) {
	db := openTestDB(t)

	first, err := Enroll(db, 1, 42)
	require.NoError(t, err)

	second, err := Enroll(db, 1, 42)
	require.NoError(t, err, "duplicate enroll must be a silent success")
	require.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&models.Enrollment{}).Where("user_id = ? AND course_id = ?", 1, 42).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestEnrollKeepsPairsSeparate(t *testing.T) {
	db := openTestDB(t)

	_, err := Enroll(db, 1, 42)
	require.NoError(t, err)
	_, err = Enroll(db, 2, 42)
	require.NoError(t, err)
	_, err = Enroll(db, 1, 43)
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.Enrollment{}).Count(&count).Error)
	require.EqualValues(t, 3, count)
}

func TestCompleteVideo(t *testing.T) {
	db := openTestDB(t)

	_, err := Enroll(db, 1, 42)
	require.NoError(t, err)

	require.NoError(t, CompleteVideo(db, 1, 42))

	enrollment, err := Get(db, 1, 42)
	require.NoError(t, err)
	require.True(t, enrollment.Completed)
}

func TestCompleteVideoWithoutEnrollment(t *testing.T) {
	db := openTestDB(t)
	require.ErrorIs(t, CompleteVideo(db, 1, 42), ErrNotEnrolled)
}

func TestGetWithoutEnrollment(t *testing.T) {
	db := openTestDB(t)
	_, err := Get(db, 1, 42)
	require.ErrorIs(t, err, ErrNotEnrolled)
}
