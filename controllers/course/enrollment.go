package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"lms/database"
	"lms/middleware"
	"lms/models"
	"lms/services/catalog"
	"lms/services/ledger"
	"lms/services/progression"
)

// EnrollInCourse enrolls the learner after consulting the progression gate.
// Enrolling twice is a no-op success, never an error.
func EnrollInCourse(c *fiber.Ctx) error {
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

	// Aptitude courses are exempt from the gate they feed.
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

	enrollment, err := ledger.Enroll(db, userID, courseID)
	if err != nil {
		log.Printf("Error enrolling user %d in course %d: %v", userID, courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled in course successfully!", fiber.Map{
		"enrollment": enrollment,
		"next":       "/course/" + c.Params("id"),
	})
}

// CompleteVideo marks the course video watched (behind the gate for
// non-Aptitude courses) and hands the learner on to the quiz.
func CompleteVideo(c *fiber.Ctx) error {
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

	if err := ledger.CompleteVideo(db, userID, courseID); err != nil {
		if err == ledger.ErrNotEnrolled {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Enroll in the course first!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update enrollment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Video marked as watched!", fiber.Map{
		"next": "/course/" + c.Params("id") + "/quiz",
	})
}
