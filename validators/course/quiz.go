package courseValidator

import (
	"github.com/gofiber/fiber/v2"

	"lms/middleware"
)

// QuizSubmission maps question ids to selected options, both as strings.
// Unanswered questions are simply absent; unparsable entries are scored as
// wrong, not rejected.
type QuizSubmission struct {
	Answers map[string]string `json:"answers"`
}

func SubmitQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
		}

		reqData := new(QuizSubmission)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if reqData.Answers == nil {
			reqData.Answers = map[string]string{}
		}

		c.Locals("courseID", id)
		c.Locals("validatedQuiz", reqData)
		return c.Next()
	}
}
