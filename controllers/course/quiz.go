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
	courseValidator "lms/validators/course"
)

// GetQuiz returns the course's question bank for an enrolled learner. The
// correct answers never leave the server; the learner's latest mark rides
// along when one exists.
func GetQuiz(c *fiber.Ctx) error {
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

	if _, err := ledger.Get(db, userID, courseID); err != nil {
		if err == ledger.ErrNotEnrolled {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Enroll in the course first!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollment!", nil)
	}

	var questions []models.Question
	if err := db.Where("course_id = ?", courseID).Order("id asc").Find(&questions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch questions!", nil)
	}

	response := fiber.Map{
		"course":    course,
		"questions": questions,
	}
	if mark, err := assessment.LatestMark(db, userID, courseID); err == nil {
		response["last_mark"] = mark
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz fetched successfully!", response)
}

// SubmitQuizAnswers scores the submission, appends the attempt and points
// the learner at the certificate view.
func SubmitQuizAnswers(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	courseID := uint(c.Locals("courseID").(int))
	db := database.Database.Db

	reqData, ok := c.Locals("validatedQuiz").(*courseValidator.QuizSubmission)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if _, err := catalog.GetCourse(db, courseID); err != nil {
		if err == catalog.ErrCourseNotFound {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course!", nil)
	}

	mark, err := assessment.SubmitQuiz(db, userID, courseID, reqData.Answers)
	if err != nil {
		log.Printf("Error scoring quiz for user %d course %d: %v", userID, courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz submitted successfully!", fiber.Map{
		"mark": mark,
		"next": "/course/" + c.Params("id") + "/certificate",
	})
}
