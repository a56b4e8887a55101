package catalog

import (
	"gorm.io/gorm"

	"lms/models"
)

// DeleteAction says what happens to a child table when its parent course is
// deleted.
type DeleteAction string

const (
	// CascadeDelete removes the child rows together with the course.
	CascadeDelete DeleteAction = "cascade"
	// LeaveOrphaned keeps the child rows; they stay queryable as history
	// referencing a course id that no longer exists.
	LeaveOrphaned DeleteAction = "orphan"
)

// CascadeRule binds one course child relationship to its delete action, so
// every deletion path runs off the same auditable table instead of ad hoc
// per-route statements.
type CascadeRule struct {
	Child    interface{}
	OnDelete DeleteAction
}

// courseChildren is the delete policy for an administrator course deletion.
// Marks deliberately stay orphaned, matching the accumulated history the
// rest of the system expects to keep.
var courseChildren = []CascadeRule{
	{Child: &models.Question{}, OnDelete: CascadeDelete},
	{Child: &models.Enrollment{}, OnDelete: CascadeDelete},
	{Child: &models.Mark{}, OnDelete: LeaveOrphaned},
}

// normalizeChildren is the delete policy for catalog normalization, which
// scrubs every trace of the removed course, marks included.
var normalizeChildren = []CascadeRule{
	{Child: &models.Question{}, OnDelete: CascadeDelete},
	{Child: &models.Enrollment{}, OnDelete: CascadeDelete},
	{Child: &models.Mark{}, OnDelete: CascadeDelete},
}

// applyCascade hard-deletes the children of a course according to the given
// policy, then the course row itself.
func applyCascade(tx *gorm.DB, courseID uint, rules []CascadeRule) error {
	for _, rule := range rules {
		if rule.OnDelete != CascadeDelete {
			continue
		}
		if err := tx.Unscoped().Where("course_id = ?", courseID).Delete(rule.Child).Error; err != nil {
			return err
		}
	}
	return tx.Unscoped().Delete(&models.Course{}, courseID).Error
}
