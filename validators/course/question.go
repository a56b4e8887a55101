package courseValidator

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"lms/middleware"
)

// QuestionBody carries the question create/update fields. Answer is the
// 1-indexed correct option.
type QuestionBody struct {
	Question string `json:"question" form:"question"`
	Option1  string `json:"option1" form:"option1"`
	Option2  string `json:"option2" form:"option2"`
	Option3  string `json:"option3" form:"option3"`
	Option4  string `json:"option4" form:"option4"`
	Answer   int    `json:"answer" form:"answer"`
}

func validateQuestionBody(reqData *QuestionBody) map[string]string {
	errors := make(map[string]string)

	if strings.TrimSpace(reqData.Question) == "" {
		errors["question"] = "Question text is required!"
	}
	options := map[string]string{
		"option1": reqData.Option1,
		"option2": reqData.Option2,
		"option3": reqData.Option3,
		"option4": reqData.Option4,
	}
	for field, value := range options {
		if strings.TrimSpace(value) == "" {
			errors[field] = "All four options are required!"
		}
	}
	if reqData.Answer < 1 || reqData.Answer > 4 {
		errors["answer"] = "Answer must be between 1 and 4!"
	}

	return errors
}

func CreateQuestion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
		}

		reqData := new(QuestionBody)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validateQuestionBody(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("courseID", id)
		c.Locals("validatedQuestion", reqData)
		return c.Next()
	}
}

func UpdateQuestion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("question_id")
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid question id!", nil)
		}

		reqData := new(QuestionBody)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validateQuestionBody(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("questionID", id)
		c.Locals("validatedQuestion", reqData)
		return c.Next()
	}
}

func QuestionID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("question_id")
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid question id!", nil)
		}
		c.Locals("questionID", id)
		return c.Next()
	}
}
