package chatbotController

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"lms/middleware"
	"lms/services/chatbot"
)

var client *chatbot.Client

// Init wires the controller to the external classifier endpoint.
func Init(apiURL string) {
	client = chatbot.NewClient(apiURL)
}

// Respond forwards the learner's message to the intent classifier and
// returns its reply.
func Respond(c *fiber.Ctx) error {
	reqData := new(struct {
		Message string `json:"message"`
	})

	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}
	if strings.TrimSpace(reqData.Message) == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Message is required!", nil)
	}

	reply := client.Reply(c.UserContext(), reqData.Message)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reply generated!", fiber.Map{
		"response": reply,
	})
}
