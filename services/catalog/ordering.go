package catalog

import (
	"gorm.io/gorm"

	"lms/models"
)

// categoryCap is the size each open category is trimmed to during
// normalization.
const categoryCap = 3

// Reorder assigns each listed course the order index matching its position,
// scoped to the given category. Ids belonging to another category are
// silently skipped. The whole reorder runs in one transaction so readers
// never observe a mixed old/new ordering.
func Reorder(db *gorm.DB, category string, orderedIDs []uint) error {
	if !models.ValidCategory(category) {
		return ErrInvalidCategory
	}
	return db.Transaction(func(tx *gorm.DB) error {
		for idx, id := range orderedIDs {
			err := tx.Model(&models.Course{}).
				Where("id = ? AND category = ?", id, category).
				Update("order_index", idx).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// Normalize is the destructive catalog maintenance pass: duplicate Aptitude
// courses are collapsed onto the earliest-created row of each canonical
// title, IT and Business are trimmed to their earliest three, every removed
// course is scrubbed with full cascade, and the survivors get a dense
// 0..n-1 order per category in creation order. Running it twice changes
// nothing the second time.
func Normalize(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		// Creation order is the auto-increment id order throughout.
		var aptCourses []models.Course
		if err := tx.Where("category = ?", models.CategoryAptitude).Order("id asc").Find(&aptCourses).Error; err != nil {
			return err
		}

		canonical := make(map[string]bool, len(models.AptitudeTitles))
		for _, title := range models.AptitudeTitles {
			canonical[title] = false
		}

		for _, course := range aptCourses {
			seen, isCanonical := canonical[course.Title]
			if isCanonical && !seen {
				canonical[course.Title] = true
				continue
			}
			if err := applyCascade(tx, course.ID, normalizeChildren); err != nil {
				return err
			}
		}

		for _, category := range []string{models.CategoryIT, models.CategoryBusiness} {
			var courses []models.Course
			if err := tx.Where("category = ?", category).Order("id asc").Find(&courses).Error; err != nil {
				return err
			}
			if len(courses) <= categoryCap {
				continue
			}
			for _, course := range courses[categoryCap:] {
				if err := applyCascade(tx, course.ID, normalizeChildren); err != nil {
					return err
				}
			}
		}

		for _, category := range models.Categories {
			var survivors []models.Course
			if err := tx.Where("category = ?", category).Order("id asc").Find(&survivors).Error; err != nil {
				return err
			}
			for idx, course := range survivors {
				if course.OrderIndex == idx {
					continue
				}
				err := tx.Model(&models.Course{}).
					Where("id = ?", course.ID).
					Update("order_index", idx).Error
				if err != nil {
					return err
				}
			}
		}
		return nil
	})
}
