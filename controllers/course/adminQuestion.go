package controllers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lms/database"
	"lms/middleware"
	"lms/models"
	"lms/services/catalog"
	courseValidator "lms/validators/course"
)

// questionWithAnswer exposes the correct option to administrators only; the
// model itself never serializes it.
type questionWithAnswer struct {
	models.Question
	Answer int `json:"answer"`
}

// AdminListQuestions returns a course's question bank, answers included.
func AdminListQuestions(c *fiber.Ctx) error {
	courseID := uint(c.Locals("courseID").(int))
	db := database.Database.Db

	course, err := catalog.GetCourse(db, courseID)
	if err != nil {
		if err == catalog.ErrCourseNotFound {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course!", nil)
	}

	var questions []models.Question
	if err := db.Where("course_id = ?", courseID).Order("id asc").Find(&questions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch questions!", nil)
	}

	result := make([]questionWithAnswer, len(questions))
	for i, q := range questions {
		result[i] = questionWithAnswer{Question: q, Answer: q.Answer}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Questions fetched successfully!", fiber.Map{
		"course":    course,
		"questions": result,
	})
}

// AdminAddQuestion appends a question to a course's bank.
func AdminAddQuestion(c *fiber.Ctx) error {
	courseID := uint(c.Locals("courseID").(int))
	reqData, ok := c.Locals("validatedQuestion").(*courseValidator.QuestionBody)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	db := database.Database.Db

	if _, err := catalog.GetCourse(db, courseID); err != nil {
		if err == catalog.ErrCourseNotFound {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course!", nil)
	}

	question := models.Question{
		CourseID: courseID,
		Question: reqData.Question,
		Option1:  reqData.Option1,
		Option2:  reqData.Option2,
		Option3:  reqData.Option3,
		Option4:  reqData.Option4,
		Answer:   reqData.Answer,
	}
	if err := db.Create(&question).Error; err != nil {
		log.Printf("Error creating question: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Question added successfully!",
		questionWithAnswer{Question: question, Answer: question.Answer})
}

// AdminUpdateQuestion edits an existing question.
func AdminUpdateQuestion(c *fiber.Ctx) error {
	questionID := uint(c.Locals("questionID").(int))
	reqData, ok := c.Locals("validatedQuestion").(*courseValidator.QuestionBody)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	db := database.Database.Db

	var question models.Question
	if err := db.First(&question, questionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Question not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch question!", nil)
	}

	question.Question = reqData.Question
	question.Option1 = reqData.Option1
	question.Option2 = reqData.Option2
	question.Option3 = reqData.Option3
	question.Option4 = reqData.Option4
	question.Answer = reqData.Answer
	if err := db.Save(&question).Error; err != nil {
		log.Printf("Error updating question %d: %v", questionID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Question updated successfully!",
		questionWithAnswer{Question: question, Answer: question.Answer})
}

// AdminDeleteQuestion removes one question.
func AdminDeleteQuestion(c *fiber.Ctx) error {
	questionID := uint(c.Locals("questionID").(int))
	db := database.Database.Db

	var question models.Question
	if err := db.First(&question, questionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Question not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch question!", nil)
	}

	if err := db.Unscoped().Delete(&question).Error; err != nil {
		log.Printf("Error deleting question %d: %v", questionID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Question deleted successfully!", nil)
}
