package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"lms/models"
)

func TestReorderAssignsDenseIndices(t *testing.T) {
	db := openTestDB(t)

	c1, err := CreateCourse(db, "Networking", "", "", models.CategoryIT)
	require.NoError(t, err)
	c2, err := CreateCourse(db, "Databases", "", "", models.CategoryIT)
	require.NoError(t, err)
	c3, err := CreateCourse(db, "Security", "", "", models.CategoryIT)
	require.NoError(t, err)

	require.NoError(t, Reorder(db, models.CategoryIT, []uint{c3.ID, c1.ID, c2.ID}))

	courses, err := ListCourses(db, models.CategoryIT)
	require.NoError(t, err)
	require.Equal(t, []uint{c3.ID, c1.ID, c2.ID}, []uint{courses[0].ID, courses[1].ID, courses[2].ID})
	require.Equal(t, 0, courses[0].OrderIndex)
	require.Equal(t, 1, courses[1].OrderIndex)
	require.Equal(t, 2, courses[2].OrderIndex)
}

func TestReorderIgnoresForeignCategoryIDs(t *testing.T) {
	db := openTestDB(t)

	it, err := CreateCourse(db, "Networking", "", "", models.CategoryIT)
	require.NoError(t, err)
	biz, err := CreateCourse(db, "Accounting", "", "", models.CategoryBusiness)
	require.NoError(t, err)

	// The Business id occupies position 0 but must not be touched.
	require.NoError(t, Reorder(db, models.CategoryIT, []uint{biz.ID, it.ID}))

	var got models.Course
	require.NoError(t, db.First(&got, biz.ID).Error)
	require.Equal(t, 1, got.OrderIndex, "foreign-category course keeps its index")

	require.NoError(t, db.First(&got, it.ID).Error)
	require.Equal(t, 1, got.OrderIndex)
}

func TestReorderRejectsUnknownCategory(t *testing.T) {
	db := openTestDB(t)
	require.ErrorIs(t, Reorder(db, "Cooking", []uint{1}), ErrInvalidCategory)
}

func seedCatalogForNormalize(t *testing.T, db *gorm.DB) (keepLogical, dupLogical models.Course) {
	t.Helper()

	keepLogical = models.Course{Title: "Logical Aptitude", Category: models.CategoryAptitude}
	require.NoError(t, db.Create(&keepLogical).Error)
	require.NoError(t, db.Create(&models.Course{Title: "Quantitative Aptitude", Category: models.CategoryAptitude}).Error)
	require.NoError(t, db.Create(&models.Course{Title: "Communication Aptitude", Category: models.CategoryAptitude}).Error)

	dupLogical = models.Course{Title: "Logical Aptitude", Category: models.CategoryAptitude}
	require.NoError(t, db.Create(&dupLogical).Error)
	require.NoError(t, db.Create(&models.Course{Title: "Stray", Category: models.CategoryAptitude}).Error)

	for _, title := range []string{"IT 1", "IT 2", "IT 3", "IT 4"} {
		_, err := CreateCourse(db, title, "", "", models.CategoryIT)
		require.NoError(t, err)
	}
	return keepLogical, dupLogical
}

func TestNormalizeDeduplicatesAndTrims(t *testing.T) {
	db := openTestDB(t)
	keepLogical, dupLogical := seedCatalogForNormalize(t, db)

	// History hanging off the duplicate must be scrubbed with it.
	require.NoError(t, db.Create(&models.Question{CourseID: dupLogical.ID, Question: "Q", Answer: 1}).Error)
	require.NoError(t, db.Create(&models.Enrollment{UserID: 1, CourseID: dupLogical.ID}).Error)
	require.NoError(t, db.Create(&models.Mark{UserID: 1, CourseID: dupLogical.ID, Score: 4}).Error)

	require.NoError(t, Normalize(db))

	apt, err := ListCourses(db, models.CategoryAptitude)
	require.NoError(t, err)
	require.Len(t, apt, 3)
	titles := []string{apt[0].Title, apt[1].Title, apt[2].Title}
	require.ElementsMatch(t, models.AptitudeTitles, titles)
	require.Equal(t, keepLogical.ID, apt[0].ID, "earliest-created duplicate survives")

	it, err := ListCourses(db, models.CategoryIT)
	require.NoError(t, err)
	require.Len(t, it, 3)
	require.Equal(t, []string{"IT 1", "IT 2", "IT 3"}, []string{it[0].Title, it[1].Title, it[2].Title})

	// Dense 0..n-1 per category after normalization.
	for idx, course := range apt {
		require.Equal(t, idx, course.OrderIndex)
	}
	for idx, course := range it {
		require.Equal(t, idx, course.OrderIndex)
	}

	// Full cascade for normalized deletions, marks included.
	var questions, enrollments, marks int64
	require.NoError(t, db.Model(&models.Question{}).Where("course_id = ?", dupLogical.ID).Count(&questions).Error)
	require.NoError(t, db.Model(&models.Enrollment{}).Where("course_id = ?", dupLogical.ID).Count(&enrollments).Error)
	require.NoError(t, db.Model(&models.Mark{}).Where("course_id = ?", dupLogical.ID).Count(&marks).Error)
	require.Zero(t, questions)
	require.Zero(t, enrollments)
	require.Zero(t, marks)
}

func TestNormalizeIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	seedCatalogForNormalize(t, db)

	require.NoError(t, Normalize(db))

	var after []models.Course
	require.NoError(t, db.Order("id asc").Find(&after).Error)

	require.NoError(t, Normalize(db))

	var again []models.Course
	require.NoError(t, db.Order("id asc").Find(&again).Error)

	require.Len(t, again, len(after))
	for i := range after {
		require.Equal(t, after[i].ID, again[i].ID)
		require.Equal(t, after[i].Category, again[i].Category)
		require.Equal(t, after[i].OrderIndex, again[i].OrderIndex)
	}
}
