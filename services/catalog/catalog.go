package catalog

import (
	"errors"

	"gorm.io/gorm"

	"lms/models"
)

var (
	// ErrCourseNotFound is returned for an unknown course id.
	ErrCourseNotFound = errors.New("course not found")
	// ErrInvalidCategory is returned when a course is created or reordered
	// with a category outside the allowed set.
	ErrInvalidCategory = errors.New("invalid course category")
	// ErrAptitudeCapExceeded is returned when a category change would push
	// the Aptitude course count above its fixed cap of three.
	ErrAptitudeCapExceeded = errors.New("aptitude course cap exceeded")
)

// aptitudeCap is the fixed number of Aptitude courses (Logical, Quantitative,
// Communication). They are seeded at migration and never created via the API.
const aptitudeCap = 3

// ListCourses returns courses sorted ascending by display order. An empty
// category lists the whole catalog.
func ListCourses(db *gorm.DB, category string) ([]models.Course, error) {
	q := db.Order("order_index asc, id asc")
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var courses []models.Course
	if err := q.Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

// CreateCourse adds an IT or Business course at the end of its category's
// display order. Aptitude courses cannot be created through this path.
func CreateCourse(db *gorm.DB, title, description, videoURL, category string) (models.Course, error) {
	if category != models.CategoryIT && category != models.CategoryBusiness {
		return models.Course{}, ErrInvalidCategory
	}

	var maxIndex int
	row := db.Model(&models.Course{}).
		Where("category = ?", category).
		Select("COALESCE(MAX(order_index), 0)").
		Row()
	if err := row.Scan(&maxIndex); err != nil {
		return models.Course{}, err
	}

	course := models.Course{
		Title:       title,
		Description: description,
		VideoURL:    videoURL,
		Category:    category,
		OrderIndex:  maxIndex + 1,
	}
	if err := db.Create(&course).Error; err != nil {
		return models.Course{}, err
	}
	return course, nil
}

// UpdateCourseInput carries the editable course fields. An empty VideoURL
// leaves the stored media reference untouched.
type UpdateCourseInput struct {
	Title       string
	Description string
	Category    string
	VideoURL    string
}

// UpdateCourse edits a course. Moving a non-Aptitude course into Aptitude is
// refused once the Aptitude cap is reached; the reverse move is allowed.
func UpdateCourse(db *gorm.DB, id uint, in UpdateCourseInput) (models.Course, error) {
	if !models.ValidCategory(in.Category) {
		return models.Course{}, ErrInvalidCategory
	}

	var course models.Course
	if err := db.First(&course, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Course{}, ErrCourseNotFound
		}
		return models.Course{}, err
	}

	if course.Category != models.CategoryAptitude && in.Category == models.CategoryAptitude {
		var aptCount int64
		if err := db.Model(&models.Course{}).Where("category = ?", models.CategoryAptitude).Count(&aptCount).Error; err != nil {
			return models.Course{}, err
		}
		if aptCount >= aptitudeCap {
			return models.Course{}, ErrAptitudeCapExceeded
		}
	}

	course.Title = in.Title
	course.Description = in.Description
	course.Category = in.Category
	if in.VideoURL != "" {
		course.VideoURL = in.VideoURL
	}
	if err := db.Save(&course).Error; err != nil {
		return models.Course{}, err
	}
	return course, nil
}

// DeleteCourse removes a course and its children per the cascade policy:
// questions and enrollments go with it, marks stay behind as orphaned
// history.
func DeleteCourse(db *gorm.DB, id uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var course models.Course
		if err := tx.First(&course, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCourseNotFound
			}
			return err
		}
		return applyCascade(tx, course.ID, courseChildren)
	})
}

// GetCourse fetches a single course by id.
func GetCourse(db *gorm.DB, id uint) (models.Course, error) {
	var course models.Course
	if err := db.First(&course, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Course{}, ErrCourseNotFound
		}
		return models.Course{}, err
	}
	return course, nil
}
