package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"lms/database"
	"lms/middleware"
	"lms/models"
	"lms/services/assessment"
	"lms/services/catalog"
	"lms/services/ledger"
	"lms/services/progression"
)

// GateDeniedMessage is the user-visible message when the Aptitude
// prerequisite is unmet. Shown, never thrown.
const GateDeniedMessage = "Complete all Aptitude modules first to access other courses."

// courseSummary is one dashboard row: the course plus the learner's standing
// in it.
type courseSummary struct {
	models.Course
	Enrolled  bool `json:"enrolled"`
	Completed bool `json:"completed"`
	LastScore *int `json:"last_score"`
	Passed    bool `json:"passed"`
}

// StudentDashboard returns the full catalog annotated with the learner's
// enrollments, latest scores and the Aptitude gate status.
func StudentDashboard(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	db := database.Database.Db

	courses, err := catalog.ListCourses(db, "")
	if err != nil {
		log.Printf("Error listing courses: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	var enrollments []models.Enrollment
	if err := db.Where("user_id = ?", userID).Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}
	enrolledBy := make(map[uint]models.Enrollment, len(enrollments))
	for _, e := range enrollments {
		enrolledBy[e.CourseID] = e
	}

	// Latest score per course: marks come newest first, keep the first one
	// seen for each course id.
	var marks []models.Mark
	if err := db.Where("user_id = ?", userID).Order("created_at desc, id desc").Find(&marks).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch marks!", nil)
	}
	lastScores := make(map[uint]int)
	for _, m := range marks {
		if _, seen := lastScores[m.CourseID]; !seen {
			lastScores[m.CourseID] = m.Score
		}
	}

	var aptitude, others []courseSummary
	enrolledAptitude := 0
	for _, course := range courses {
		row := courseSummary{Course: course}
		if e, ok := enrolledBy[course.ID]; ok {
			row.Enrolled = true
			row.Completed = e.Completed
		}
		if score, ok := lastScores[course.ID]; ok {
			s := score
			row.LastScore = &s
			row.Passed = score >= assessment.PassThreshold
		}
		if course.Category == models.CategoryAptitude {
			if row.Enrolled {
				enrolledAptitude++
			}
			aptitude = append(aptitude, row)
		} else {
			others = append(others, row)
		}
	}

	gateOpen, err := progression.IsAptitudeCompleted(db, userID)
	if err != nil {
		log.Printf("Error evaluating aptitude gate: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to evaluate progress!", nil)
	}

	aptitudeProgress := 0.0
	if len(aptitude) > 0 {
		aptitudeProgress = float64(enrolledAptitude) / float64(len(aptitude)) * 100
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", fiber.Map{
		"aptitude_courses":  aptitude,
		"other_courses":     others,
		"aptitude_done":     gateOpen,
		"aptitude_progress": aptitudeProgress,
	})
}

// GetCourseDetails returns one course with the learner's enrollment. Detail
// views of non-Aptitude courses sit behind the progression gate.
func GetCourseDetails(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	courseID := uint(c.Locals("courseID").(int))
	db := database.Database.Db

	course, err := catalog.GetCourse(db, courseID)
	if err != nil {
		if err == catalog.ErrCourseNotFound {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course!", nil)
	}

	if course.Category != models.CategoryAptitude {
		open, err := progression.IsAptitudeCompleted(db, userID)
		if err != nil {
			log.Printf("Error evaluating aptitude gate: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to evaluate progress!", nil)
		}
		if !open {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, GateDeniedMessage, nil)
		}
	}

	response := fiber.Map{"course": course}
	if enrollment, err := ledger.Get(db, userID, courseID); err == nil {
		response["enrollment"] = enrollment
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", response)
}
