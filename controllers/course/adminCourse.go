package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/models"
	"lms/services/catalog"
	"lms/utils"
	courseValidator "lms/validators/course"
)

// AdminGetAllCourses lists the catalog grouped by category, each group in
// display order.
func AdminGetAllCourses(c *fiber.Ctx) error {
	db := database.Database.Db

	grouped := make(map[string][]models.Course, len(models.Categories))
	for _, category := range models.Categories {
		courses, err := catalog.ListCourses(db, category)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
		}
		grouped[category] = courses
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", grouped)
}

// AdminCreateCourse creates an IT or Business course. Aptitude courses are
// seeded at migration and cannot be added here.
func AdminCreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CourseBody)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	videoURL := reqData.VideoURL
	if file, err := c.FormFile("video_file"); err == nil && file != nil {
		url, err := utils.SaveCourseVideo(file, config.AppConfig.UploadDir)
		if err != nil {
			log.Printf("Error saving course video: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store video!", nil)
		}
		videoURL = url
	}

	course, err := catalog.CreateCourse(database.Database.Db, reqData.Title, reqData.Description, videoURL, reqData.Category)
	if err != nil {
		if err == catalog.ErrInvalidCategory {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid category! Only IT and Business courses can be created.", nil)
		}
		log.Printf("Error creating course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// AdminUpdateCourse edits a course; moving one into Aptitude is capped at
// the three canonical courses.
func AdminUpdateCourse(c *fiber.Ctx) error {
	courseID := uint(c.Locals("courseID").(int))
	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CourseBody)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	videoURL := reqData.VideoURL
	if file, err := c.FormFile("video_file"); err == nil && file != nil {
		url, err := utils.SaveCourseVideo(file, config.AppConfig.UploadDir)
		if err != nil {
			log.Printf("Error saving course video: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store video!", nil)
		}
		videoURL = url
	}

	course, err := catalog.UpdateCourse(database.Database.Db, courseID, catalog.UpdateCourseInput{
		Title:       reqData.Title,
		Description: reqData.Description,
		Category:    reqData.Category,
		VideoURL:    videoURL,
	})
	if err != nil {
		switch err {
		case catalog.ErrCourseNotFound:
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		case catalog.ErrInvalidCategory:
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid category!", nil)
		case catalog.ErrAptitudeCapExceeded:
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Cannot change category to Aptitude. Maximum of 3 Aptitude courses allowed.", nil)
		}
		log.Printf("Error updating course %d: %v", courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// AdminDeleteCourse removes a course with its questions and enrollments.
// Marks survive as orphaned history per the cascade policy.
func AdminDeleteCourse(c *fiber.Ctx) error {
	courseID := uint(c.Locals("courseID").(int))

	if err := catalog.DeleteCourse(database.Database.Db, courseID); err != nil {
		if err == catalog.ErrCourseNotFound {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		log.Printf("Error deleting course %d: %v", courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}
