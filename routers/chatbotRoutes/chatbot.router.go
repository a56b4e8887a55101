package chatbotRoutes

import (
	"github.com/gofiber/fiber/v2"

	chatbotController "lms/controllers/chatbot"
)

// SetupChatbotRoutes sets up the chatbot endpoint
func SetupChatbotRoutes(app *fiber.App) {
	app.Post("/chatbot", chatbotController.Respond)
}
