package courseValidator

import (
	"github.com/gofiber/fiber/v2"

	"lms/middleware"
	"lms/models"
)

// ReorderBody is the admin reorder payload: the full intended order of one
// category's courses.
type ReorderBody struct {
	Category  string `json:"category"`
	CourseIDs []uint `json:"course_ids"`
}

func ReorderCourses() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ReorderBody)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if !models.ValidCategory(reqData.Category) {
			errors["category"] = "Category must be one of Aptitude, IT, Business!"
		}
		if len(reqData.CourseIDs) == 0 {
			errors["course_ids"] = "At least one course id is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedReorder", reqData)
		return c.Next()
	}
}
